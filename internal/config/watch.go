package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reloads a tuning profile whenever its file changes. Reloaded
// profiles arrive on Profiles, unclamped; read errors arrive on Errors.
type Watcher struct {
	Profiles chan Profile
	Errors   chan error

	path    string
	watcher *fsnotify.Watcher
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
	err     error
}

// NewWatcher watches filename. The directory is watched rather than the file
// so editors that replace the file on save are still seen.
func NewWatcher(filename string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	path := filepath.Clean(filename)
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		Profiles: make(chan Profile, 4),
		Errors:   make(chan error, 1),
		path:     path,
		watcher:  w,
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes both channels.
func (w *Watcher) Close() error {
	w.once.Do(func() {
		close(w.closeCh)
		w.err = w.watcher.Close()
		<-w.done
	})
	return w.err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Errors)
	defer close(w.Profiles)

	// Saves arrive as several writes; reload once they settle.
	var timer *time.Timer
	var pending <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			pending = timer.C
		case <-pending:
			pending = nil
			p, err := Load(w.path)
			if err != nil {
				log.Printf("Config: reload failed: %v", err)
				if !w.sendError(err) {
					return
				}
				continue
			}
			log.Printf("Config: reloaded %s", w.path)
			select {
			case w.Profiles <- p:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if !w.sendError(err) {
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

// sendError reports false once the watcher is closing.
func (w *Watcher) sendError(err error) bool {
	select {
	case w.Errors <- err:
		return true
	case <-w.closeCh:
		return false
	}
}
