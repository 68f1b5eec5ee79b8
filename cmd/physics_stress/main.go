// Stress test for the physics step: drops piles of balls onto a floor and
// times the fixed steps.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"ballance/internal/components"
	"ballance/internal/config"
	"ballance/internal/engine"
	"ballance/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	steps := flag.Int("steps", 250, "fixed steps per run")
	flag.Parse()

	// Test various object counts
	testCounts := []int{100, 250, 500, 1000, 2000}

	for _, count := range testCounts {
		runPile(count, *steps)
	}
}

func runPile(count, steps int) {
	settings := config.Default().World
	w := world.New(settings)
	rng := rand.New(rand.NewSource(42)) // Consistent results

	floor := engine.NewGameObject("Floor")
	floor.Transform.Position = rl.Vector3{Y: -0.5}
	floor.AddComponent(components.NewBoxCollider(rl.Vector3{X: 200, Y: 1, Z: 200}))
	w.Add(floor)

	// Spawn in a column, footprint scales with count to keep density reasonable
	spawnSize := float32(10.0) + float32(count)/50.0
	balls := make([]*engine.GameObject, count)
	for i := range balls {
		radius := 0.25 + rng.Float32()*0.25
		ball := engine.NewGameObject(fmt.Sprintf("Ball_%d", i))
		ball.Transform.Position = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: 1 + rng.Float32()*spawnSize,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		ball.AddComponent(components.NewSphereCollider(radius))
		rb := components.NewRigidbody()
		rb.Bounciness = 0.2
		ball.AddComponent(rb)
		w.Add(ball)
		balls[i] = ball
	}
	w.Start()

	start := time.Now()
	var slowest time.Duration
	for i := 0; i < steps; i++ {
		stepStart := time.Now()
		w.Update(settings.FixedStep)
		slowest = max(slowest, time.Since(stepStart))
	}
	perStep := time.Since(start) / time.Duration(steps)

	resting := 0
	for _, ball := range balls {
		rb := engine.GetComponent[*components.Rigidbody](ball)
		if rl.Vector3Length(rb.Velocity) < 0.1 {
			resting++
		}
	}

	budget := time.Duration(float64(settings.FixedStep) * float64(time.Second))
	fmt.Printf("%5d balls: %10v/step (slowest %10v) | %5d resting | %.1f%% of step budget\n",
		count, perStep.Round(time.Microsecond), slowest.Round(time.Microsecond),
		resting, 100*float64(perStep)/float64(budget))
}
