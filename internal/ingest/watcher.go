package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pcaldeira/contractdraft/constants"
)

// WatchConfig configures intake-directory watching. Files dropped into a
// watched root are emitted on the returned channel for enqueueing.
type WatchConfig struct {
	Roots       []string
	InitialScan bool
	// Debounce coalesces rapid write/rename bursts into one emit.
	Debounce time.Duration
}

func StartWatcher(ctx context.Context, cfg WatchConfig, logger *slog.Logger) (<-chan string, <-chan error, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(cfg.Roots) == 0 {
		return nil, nil, errors.New("no intake roots provided")
	}

	evCh := make(chan string, 256)
	errCh := make(chan error, 1)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("failed to create fsnotify watcher", "error", err)
		return nil, nil, err
	}

	// Emitted from the event goroutine so a backlog larger than the
	// channel buffer cannot block startup.
	var backlog []string
	addRoot := func(root string) error {
		return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if IsHidden(path) && path != root {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return w.Add(path)
			}
			if cfg.InitialScan && allowedPath(path) {
				backlog = append(backlog, path)
			}
			return nil
		})
	}
	for _, r := range cfg.Roots {
		if err := addRoot(r); err != nil {
			logger.Error("failed to watch intake root", "root", r, "error", err)
			_ = w.Close()
			return nil, nil, err
		}
	}

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer w.Close()

		retry := cfg.Debounce
		if retry <= 0 {
			retry = 100 * time.Millisecond
		}

		// pendingMu guards pending, timer and closed; sendPending runs
		// on the timer goroutine as well as inline.
		var pendingMu sync.Mutex
		var timer *time.Timer
		var closed bool
		pending := map[string]struct{}{}

		// A retry timer must not fire into the closed channel.
		defer func() {
			pendingMu.Lock()
			closed = true
			if timer != nil {
				timer.Stop()
			}
			pendingMu.Unlock()
		}()

		var sendPending func()
		sendPending = func() {
			pendingMu.Lock()
			defer pendingMu.Unlock()
			if closed {
				return
			}
			for p := range pending {
				select {
				case evCh <- p:
					delete(pending, p)
				default:
					// Consumer is lagging. Keep the backlog queued and
					// retry once it has had a chance to drain.
					logger.Warn("intake event channel full, retrying", "pending", len(pending))
					timer = time.AfterFunc(retry, sendPending)
					return
				}
			}
		}

		for _, path := range backlog {
			select {
			case evCh <- path:
			case <-ctx.Done():
				return
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-w.Events:
				if !ok {
					return
				}
				if e.Op.Has(fsnotify.Create) {
					// A new directory starts getting watched too.
					if err := tryAddDir(w, e.Name); err != nil {
						logger.Warn("failed to watch new directory", "path", e.Name, "error", err)
					}
				}
				if allowedPath(e.Name) && e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
					pendingMu.Lock()
					pending[e.Name] = struct{}{}
					if cfg.Debounce > 0 {
						if timer != nil {
							timer.Stop()
						}
						timer = time.AfterFunc(cfg.Debounce, sendPending)
					}
					pendingMu.Unlock()
					if cfg.Debounce <= 0 {
						sendPending()
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Error("watcher error", "error", err)
				select {
				case errCh <- err:
				default:
				}
			}
		}
	}()

	return evCh, errCh, nil
}

func tryAddDir(w *fsnotify.Watcher, path string) error {
	fi, err := os.Stat(path)
	if err != nil || !fi.IsDir() {
		return nil
	}
	return w.Add(path)
}

func allowedPath(path string) bool {
	if IsHidden(path) {
		return false
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return constants.AllowedExt(ext)
}
