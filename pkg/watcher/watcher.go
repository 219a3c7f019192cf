// Package watcher reports debounced changes to a set of files. Changes are
// delivered on a channel so a frame loop can poll them between frames.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches files for changes
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	files    map[string]bool
	dirs     map[string]bool
	debounce time.Duration
	timers   map[string]*time.Timer
	changes  chan string
	done     chan struct{}
	once     sync.Once
}

// NewFileWatcher creates a new file watcher
func NewFileWatcher(debounce time.Duration) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:  watcher,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		debounce: debounce,
		timers:   make(map[string]*time.Timer),
		changes:  make(chan string, 1),
		done:     make(chan struct{}),
	}, nil
}

// Watch adds files to the watch set. The parent directory is watched so
// editors that replace the file on save are still seen.
func (fw *FileWatcher) Watch(files ...string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		dir := filepath.Dir(absPath)
		if !fw.dirs[dir] {
			if err := fw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			fw.dirs[dir] = true
		}

		fw.files[absPath] = true
	}

	return nil
}

// Start begins watching for file changes
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}

				// Only trigger on write or create events
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					fw.handleFileChange(filepath.Clean(event.Name))
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Warning: watcher error: %v\n", err)
			}
		}
	}()
}

// handleFileChange handles a file change event with debouncing
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if !fw.files[filePath] {
		return
	}

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}

	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		fw.notify(filePath)
	})
}

// notify queues a change without blocking; if a change is already pending
// it is left in place, the consumer reloads everything anyway.
func (fw *FileWatcher) notify(filePath string) {
	select {
	case <-fw.done:
	case fw.changes <- filePath:
	default:
	}
}

// Changes returns the channel changed file paths are delivered on
func (fw *FileWatcher) Changes() <-chan string {
	return fw.changes
}

// Poll returns a pending change without blocking
func (fw *FileWatcher) Poll() (string, bool) {
	select {
	case path := <-fw.changes:
		return path, true
	default:
		return "", false
	}
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	fw.once.Do(func() {
		close(fw.done)

		fw.mu.Lock()
		for _, timer := range fw.timers {
			timer.Stop()
		}
		fw.mu.Unlock()
	})
	return fw.watcher.Close()
}
