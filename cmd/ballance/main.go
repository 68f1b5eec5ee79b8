package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"ballance/internal/config"
	"ballance/internal/game"
	"ballance/internal/world"
)

func main() {
	scenePath := flag.String("scene", "assets/scenes/level1.json", "scene file to play")
	tuningPath := flag.String("tuning", "configs/ball.yaml", "tuning profile (YAML)")
	watch := flag.Bool("watch", false, "reload the tuning profile when it changes")
	fps := flag.Int("fps", 120, "target frame rate")
	flag.Parse()

	// Paths given on the command line stay relative to the caller.
	flag.Visit(func(f *flag.Flag) {
		if f.Name != "scene" && f.Name != "tuning" {
			return
		}
		if abs, err := filepath.Abs(f.Value.String()); err == nil {
			_ = f.Value.Set(abs)
		}
	})

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			if err := os.Chdir(execDir); err != nil {
				log.Printf("Main: chdir %s: %v", execDir, err)
			}
		}
	}

	profile, err := config.Load(*tuningPath)
	if err != nil {
		log.Fatalf("Main: %v", err)
	}

	w := world.New(profile.World)
	if err := w.LoadScene(*scenePath); err != nil {
		log.Fatalf("Main: %v", err)
	}

	g := game.New(w, profile)
	g.TuningPath = *tuningPath

	if *watch {
		watcher, err := config.NewWatcher(*tuningPath)
		if err != nil {
			log.Fatalf("Main: watch %s: %v", *tuningPath, err)
		}
		defer watcher.Close()
		g.Watcher = watcher
	}

	g.Run("Ballance", int32(*fps))
}
