package internal

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sasstools/slin/internal/sass"
	tt "github.com/sasstools/slin/internal/types"
)

// watchDebounce is how long to wait after a write before re-linting,
// so a burst of writes to the same file is handled once.
const watchDebounce = 100 * time.Millisecond

// Watch configures the engine to re-lint the given directories on change.
// The report callback receives the issues of each re-linted file; when nil,
// results go to the standard logger.
func (e *Engine) Watch(dirs []string, report func(filename string, issues []tt.Issue)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	e.watcher = watcher
	e.watchDirs = dirs
	e.onIssues = report
	e.debounce = make(map[string]*time.Timer)
	return nil
}

func (e *Engine) StartWatching() error {
	if e.watcher == nil {
		return fmt.Errorf("watcher not configured")
	}
	if e.watching.Swap(true) {
		return fmt.Errorf("already watching")
	}

	for _, dir := range e.watchDirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return e.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			e.watching.Store(false)
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	go e.watchLoop()
	return nil
}

func (e *Engine) StopWatching() error {
	if !e.watching.Swap(false) {
		log.Println("not watching")
	}

	e.debounceMu.Lock()
	for name, timer := range e.debounce {
		timer.Stop()
		delete(e.debounce, name)
	}
	e.debounceMu.Unlock()

	return e.watcher.Close()
}

func (e *Engine) watchLoop() {
	for e.watching.Load() {
		select {
		case event, ok := <-e.watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event)
		case err, ok := <-e.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("error: %v", err)
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write == fsnotify.Write {
		if sass.Supported(event.Name) {
			e.scheduleLint(event.Name)
		}
	}
}

// scheduleLint arms a per-file timer so a burst of writes to the same
// file triggers a single lint run. Repeated writes reset the timer.
func (e *Engine) scheduleLint(filename string) {
	e.debounceMu.Lock()
	defer e.debounceMu.Unlock()

	if timer, ok := e.debounce[filename]; ok {
		timer.Reset(watchDebounce)
		return
	}
	e.debounce[filename] = time.AfterFunc(watchDebounce, func() {
		e.debounceMu.Lock()
		delete(e.debounce, filename)
		e.debounceMu.Unlock()

		if !e.watching.Load() {
			return
		}
		issues, err := e.Run(filename)
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
		e.reportIssues(filename, issues)
	})
}

func (e *Engine) reportIssues(filename string, issues []tt.Issue) {
	if e.onIssues != nil {
		e.onIssues(filename, issues)
		return
	}

	if len(issues) == 0 {
		log.Printf("no issues found in %s", filename)
		return
	}

	log.Printf("found %d issues in %s", len(issues), filename)
	for _, issue := range issues {
		log.Printf("- %s: %s", issue.Rule, issue.Message)
	}
}
