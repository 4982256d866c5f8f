// Package watch regenerates documentation when schema files change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDelay is how long the watcher waits for a burst of changes to
// settle before reporting it.
const DefaultDelay = 100 * time.Millisecond

// ChangeFunc is called with the sorted, de-duplicated paths of a burst of
// changes.
type ChangeFunc func(ctx context.Context, files []string) error

// Watcher monitors directories and reports debounced changes of the files
// accepted by its matcher.
type Watcher struct {
	watcher  *fsnotify.Watcher
	delay    time.Duration
	match    func(path string) bool
	onChange ChangeFunc
	logger   *zap.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger. The default logger discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithDelay sets the debounce delay.
func WithDelay(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.delay = d
		}
	}
}

// WithExtensions restricts reported changes to files with one of the given
// extensions, with or without the leading dot.
func WithExtensions(exts ...string) Option {
	return func(w *Watcher) {
		set := make(map[string]struct{}, len(exts))
		for _, ext := range exts {
			set["."+strings.TrimPrefix(strings.ToLower(ext), ".")] = struct{}{}
		}
		w.match = func(path string) bool {
			_, ok := set[strings.ToLower(filepath.Ext(path))]
			return ok
		}
	}
}

// New creates a watcher over the directories behind patterns (see Roots).
// Directories are watched recursively and watching starts immediately;
// changes are reported once Run is called.
func New(patterns []string, onChange ChangeFunc, opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{
		watcher:  fw,
		delay:    DefaultDelay,
		match:    func(string) bool { return true },
		onChange: onChange,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	roots, err := Roots(patterns...)
	if err != nil {
		_ = fw.Close()
		return nil, err
	}
	for _, root := range roots {
		if err := w.addTree(root); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}
	return w, nil
}

// globMeta are the characters that make a path a doublestar pattern.
const globMeta = "*?[{"

// Roots returns the existing directories to watch for patterns: a directory
// stands for itself, a file for its parent and a glob for its static
// prefix. A path without glob characters must exist.
func Roots(patterns ...string) ([]string, error) {
	seen := make(map[string]struct{})
	for _, p := range patterns {
		root := p
		if info, err := os.Stat(p); err == nil {
			if !info.IsDir() {
				root = filepath.Dir(p)
			}
		} else {
			base, pattern := doublestar.SplitPattern(filepath.ToSlash(p))
			if !strings.ContainsAny(pattern, globMeta) {
				return nil, fmt.Errorf("watch %s: %w", p, fs.ErrNotExist)
			}
			root = filepath.FromSlash(base)
		}
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("watch %s: %s is not a directory", p, root)
		}
		seen[filepath.Clean(root)] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen)), nil
}

// addTree watches root and every non-hidden directory below it.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", path, err)
		}
		w.logger.Debug("watching directory", zap.String("dir", path))
		return nil
	})
}

// Dirs returns the watched directories.
func (w *Watcher) Dirs() []string {
	return slices.Sorted(slices.Values(w.watcher.WatchList()))
}

// Close stops watching. Run closes the watcher itself when it returns.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Run reports changes until ctx is done, then releases the watcher.
// Errors returned by the change callback are logged, not returned.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	debouncer := NewDebouncer(w.delay)
	defer debouncer.Stop()
	debouncer.SetCallback(func(files []string) {
		w.logger.Info("schema changed", zap.Strings("files", files))
		if err := w.onChange(ctx, files); err != nil {
			w.logger.Error("regenerate", zap.Error(err))
		}
	})

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(event, debouncer)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event, debouncer *Debouncer) {
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return
	}
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				w.logger.Warn("watch new directory", zap.String("dir", event.Name), zap.Error(err))
			}
			return
		}
	}
	if !event.Has(fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename) {
		return
	}
	if !w.match(event.Name) {
		return
	}
	w.logger.Debug("file changed", zap.String("file", event.Name), zap.Stringer("op", event.Op))
	debouncer.Add(event.Name)
}

// Debouncer collects file changes and triggers callbacks after a delay
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	files    map[string]struct{}
	mutex    sync.Mutex
	callback func([]string)
	stopped  bool
}

// NewDebouncer creates a new debouncer instance
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{
		duration: duration,
		files:    make(map[string]struct{}),
	}
}

// Add adds a file to the debouncer and restarts the delay.
func (d *Debouncer) Add(file string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.stopped {
		return
	}
	d.files[file] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, d.flush)
}

// flush triggers the callback with accumulated files. The callback runs
// without the lock held.
func (d *Debouncer) flush() {
	d.mutex.Lock()
	if len(d.files) == 0 || d.stopped {
		d.mutex.Unlock()
		return
	}
	files := slices.Sorted(maps.Keys(d.files))
	d.files = make(map[string]struct{})
	callback := d.callback
	d.mutex.Unlock()

	if callback != nil {
		callback(files)
	}
}

// SetCallback sets the callback function
func (d *Debouncer) SetCallback(callback func([]string)) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.callback = callback
}

// Stop stops the debouncer. Pending changes are dropped.
func (d *Debouncer) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.stopped = true
}
