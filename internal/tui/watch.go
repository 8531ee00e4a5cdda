package tui

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file whenever it changes on disk.
//
// The parent directory is watched rather than the file, so editors that
// replace the file on save are still seen.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onChange func(FileConfig, error)

	closeOnce sync.Once
	done      chan struct{}
}

// Watch starts watching path. onChange runs on the watcher goroutine with
// the freshly loaded config or the load error.
func Watch(path string, onChange func(FileConfig, error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		watcher:  fsw,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.onChange(LoadFileConfig(w.path))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("config watcher: %v", err)
		}
	}
}

// Close stops watching and waits for the watcher goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.watcher.Close()
		<-w.done
	})
	return err
}
