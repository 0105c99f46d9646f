// Package watcher reloads the ked configuration when its file changes.
//
// The config file's directory is watched rather than the file itself so
// that editors which replace the file on save are still observed. Bursts
// of events are coalesced and the reload runs once the file has been
// quiet for the debounce delay.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/ked/internal/config"
	"github.com/dshills/ked/internal/logging"
)

// DefaultDelay is the debounce delay used when none is configured.
const DefaultDelay = 100 * time.Millisecond

// ErrNoPath is returned by New when no config file is given.
var ErrNoPath = errors.New("watcher: no config path")

// Reloader produces a fresh configuration.
type Reloader func() (*config.Config, error)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDelay sets the debounce delay.
func WithDelay(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.delay = d
		}
	}
}

// WithLogger sets the logger for reload diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l.WithComponent("config-watcher")
		}
	}
}

// Watcher publishes a new configuration each time the file changes.
// Only the most recent unread configuration is kept.
type Watcher struct {
	fsw    *fsnotify.Watcher
	path   string
	delay  time.Duration
	reload Reloader
	logger *logging.Logger

	updates chan *config.Config
	errors  chan error

	closeOnce sync.Once
	closeCh   chan struct{}
	wg        sync.WaitGroup
}

// New starts watching path. The directory containing path must exist;
// the file itself may be created later.
func New(path string, reload Reloader, opts ...Option) (*Watcher, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		path:    abs,
		delay:   DefaultDelay,
		reload:  reload,
		logger:  logging.Null,
		updates: make(chan *config.Config, 1),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Updates delivers reloaded configurations.
func (w *Watcher) Updates() <-chan *config.Config {
	return w.updates
}

// Errors delivers reload and watch failures.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
		w.wg.Wait()
		close(w.updates)
		close(w.errors)
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("config file event: %s", ev.Op)
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			fire = timer.C
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		case <-fire:
			fire = nil
			w.fire()
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func (w *Watcher) fire() {
	cfg, err := w.reload()
	if err != nil {
		w.logger.Warn("reload %s: %v", w.path, err)
		w.sendError(err)
		return
	}
	w.logger.Info("reloaded %s", w.path)

	// Replace any update the reader has not taken yet.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
		w.logger.Warn("dropped watcher error: %v", err)
	}
}
