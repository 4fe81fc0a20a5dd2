package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/linmath/engine/core"
)

var ErrWatcherClosed = errors.New("watcher already closed")

type AssetInfo struct {
	Path        string
	LastChanged time.Time
}

/**
 * @brief Watches individual files for changes. The parent directory of
 * each file is watched so that editors which replace a file by renaming
 * over it are still seen.
 */
type Watcher struct {
	mutex  sync.RWMutex
	assets map[string]AssetInfo

	fsnotify  *fsnotify.Watcher
	done      chan struct{}
	finished  chan struct{}
	closeOnce sync.Once
	events    chan AssetInfo
	errors    chan error
}

func NewWatcher() (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{
		assets:   make(map[string]AssetInfo),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		finished: make(chan struct{}),
		events:   make(chan AssetInfo),
		errors:   make(chan error),
	}
	go w.start()
	return w, nil
}

// Add starts watching the named file.
func (w *Watcher) Add(path string) error {
	select {
	case <-w.done:
		return ErrWatcherClosed
	default:
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	w.mutex.Lock()
	w.assets[abs] = AssetInfo{Path: abs}
	w.mutex.Unlock()
	if err := w.fsnotify.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	return nil
}

// Events delivers one AssetInfo per create or write of a watched file.
// The channel is closed by Close.
func (w *Watcher) Events() <-chan AssetInfo {
	return w.events
}

func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher goroutine and closes both channels. It is safe
// to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		<-w.finished
		err = w.fsnotify.Close()
	})
	return err
}

func (w *Watcher) start() {
	defer func() {
		close(w.events)
		close(w.errors)
		close(w.finished)
	}()
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			info, tracked := w.handleFileEvent(e.Name)
			if !tracked {
				continue
			}
			select {
			case w.events <- info:
			case <-w.done:
				return
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("%v", err)
			select {
			case w.errors <- err:
			case <-w.done:
				return
			}

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handleFileEvent(name string) (AssetInfo, bool) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return AssetInfo{}, false
	}
	w.mutex.Lock()
	defer w.mutex.Unlock()

	info, ok := w.assets[abs]
	if !ok {
		return AssetInfo{}, false
	}
	info.LastChanged = time.Now()
	w.assets[abs] = info
	return info, true
}
