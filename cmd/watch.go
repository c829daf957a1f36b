package cmd

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tokentools/tokendiff/internal/utils"
)

// watchDebounce is how long to wait after the last event before re-running.
// Editors that save atomically fire several events per write.
const watchDebounce = 500 * time.Millisecond

// watchFiles blocks and invokes onChange whenever one of the given files is
// written, created, or renamed. The containing directories are watched
// instead of the files themselves so atomic saves (vim, emacs) keep working.
func watchFiles(paths []string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	names := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		names[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			eventAbs, _ := filepath.Abs(event.Name)
			if !names[eventAbs] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(watchDebounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			debounceTimer = nil
			debounceCh = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			utils.Log.Warnf("Watch error: %v", err)
		}
	}
}
