// Package watch re-runs analysis whenever an export on disk changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/linkscope/internal/core/domain"
	"github.com/custodia-labs/linkscope/internal/core/ports/driving"
	"github.com/custodia-labs/linkscope/internal/logger"
)

// Defaults for Options.
const (
	DefaultDebounce    = 2 * time.Second
	DefaultMinInterval = 10 * time.Second
)

// ErrMissingAnalysisService is returned when no analysis service is wired.
var ErrMissingAnalysisService = errors.New("watch: analysis service is required")

// Options tunes the watcher.
type Options struct {
	// Debounce is how long the export must be quiet before a re-run.
	Debounce time.Duration

	// MinInterval is the minimum time between two runs. Negative disables the limit.
	MinInterval time.Duration

	// Analyze is passed through to every run. Now is always left zero so
	// each run reads the clock.
	Analyze driving.AnalyzeOptions
}

// ResultFunc receives the outcome of every run.
type ResultFunc func(snapshot *domain.Snapshot, err error)

// Watcher watches one export path.
type Watcher struct {
	analysis driving.AnalysisService
	path     string
	opts     Options
	limiter  *rate.Limiter
	onResult ResultFunc
}

// New creates a watcher for the export at path.
func New(analysis driving.AnalysisService, path string, opts Options, onResult ResultFunc) *Watcher {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.MinInterval == 0 {
		opts.MinInterval = DefaultMinInterval
	}
	opts.Analyze.Now = time.Time{}

	limit := rate.Inf
	if opts.MinInterval > 0 {
		limit = rate.Every(opts.MinInterval)
	}
	if onResult == nil {
		onResult = func(*domain.Snapshot, error) {}
	}

	return &Watcher{
		analysis: analysis,
		path:     filepath.Clean(path),
		opts:     opts,
		limiter:  rate.NewLimiter(limit, 1),
		onResult: onResult,
	}
}

// Run analyses once, then again after every settled burst of changes,
// until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if w.analysis == nil {
		return ErrMissingAnalysisService
	}

	info, err := os.Stat(w.path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrExportUnreadable, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := addWatches(fsw, w.path, info.IsDir()); err != nil {
		return err
	}
	logger.Info("watching %s (debounce %s)", w.path, w.opts.Debounce)

	w.run(ctx)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event, info.IsDir()) {
				continue
			}
			logger.Debug("watch: %s %s", event.Op, event.Name)
			if event.Has(fsnotify.Create) && info.IsDir() {
				_ = watchNewDir(fsw, event.Name)
			}
			if timer == nil {
				timer = time.NewTimer(w.opts.Debounce)
			} else {
				timer.Reset(w.opts.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.limiter.Wait(ctx); err != nil {
				return nil
			}
			w.run(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

func (w *Watcher) run(ctx context.Context) {
	snapshot, err := w.analysis.Analyze(ctx, w.path, w.opts.Analyze)
	if err != nil {
		logger.Warn("watch: analysis failed: %v", err)
	}
	w.onResult(snapshot, err)
}

// relevant reports whether an event touches the export. In directory mode
// any table file or new directory counts; in file mode only the file itself.
func (w *Watcher) relevant(event fsnotify.Event, dirMode bool) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Clean(event.Name)
	if !dirMode {
		return name == w.path
	}
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		return true
	}
	fi, err := os.Stat(name)
	return err == nil && fi.IsDir()
}

// addWatches watches the directory tree of an extracted export, or the
// parent directory of an archive. fsnotify is not recursive.
// watchNewDir starts watching a directory created under a watched export.
// Failures are logged and returned; the watch keeps running without it.
func watchNewDir(fsw *fsnotify.Watcher, name string) error {
	fi, err := os.Stat(name)
	if err != nil || !fi.IsDir() {
		return nil
	}
	if err := fsw.Add(name); err != nil {
		logger.Warn("watch: cannot watch new directory %s: %v", name, err)
		return err
	}
	return nil
}

func addWatches(fsw *fsnotify.Watcher, path string, dirMode bool) error {
	if !dirMode {
		if err := fsw.Add(filepath.Dir(path)); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := fsw.Add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		return nil
	})
}
