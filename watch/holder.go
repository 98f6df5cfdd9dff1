// Package watch keeps a descriptor loaded from disk current while the file
// is edited.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/agiangrant/twconfig/descriptor"
	twlog "github.com/agiangrant/twconfig/internal/log"
)

// Holder holds the descriptor last loaded from path. Reloads swap the whole
// value; a failed reload keeps the previous descriptor.
type Holder struct {
	path   string
	logger zerolog.Logger

	mu      sync.RWMutex
	current *descriptor.Descriptor

	subMu       sync.Mutex
	subscribers []chan *descriptor.Descriptor
}

// NewHolder loads path and returns a holder for it.
func NewHolder(path string) (*Holder, error) {
	d, err := descriptor.Load(path)
	if err != nil {
		return nil, err
	}
	return &Holder{
		path:    path,
		logger:  twlog.WithComponent("watch").With().Str("path", path).Logger(),
		current: d,
	}, nil
}

// Get returns the current descriptor.
func (h *Holder) Get() *descriptor.Descriptor {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Subscribe returns a channel receiving every descriptor applied by a
// reload. A subscriber that falls behind only sees the latest value.
func (h *Holder) Subscribe() <-chan *descriptor.Descriptor {
	ch := make(chan *descriptor.Descriptor, 1)
	h.subMu.Lock()
	h.subscribers = append(h.subscribers, ch)
	h.subMu.Unlock()
	return ch
}

// Reload re-reads the file. On error the current descriptor is kept. It
// reports whether the descriptor changed.
func (h *Holder) Reload(_ context.Context) (bool, error) {
	next, err := descriptor.Load(h.path)
	if err != nil {
		h.logger.Error().Err(err).Str("event", "descriptor.reload_failed").Msg("keeping previous descriptor")
		return false, fmt.Errorf("reload: %w", err)
	}

	h.mu.Lock()
	prev := h.current
	if prev.Equal(next) {
		h.mu.Unlock()
		h.logger.Debug().Str("event", "descriptor.reload_unchanged").Msg("descriptor unchanged")
		return false, nil
	}
	h.current = next
	h.mu.Unlock()

	h.logger.Info().
		Str("event", "descriptor.reloaded").
		Str("diff", descriptor.Diff(prev, next)).
		Msg("descriptor reloaded")
	h.notify(next)
	return true, nil
}

func (h *Holder) notify(d *descriptor.Descriptor) {
	h.subMu.Lock()
	defer h.subMu.Unlock()
	for _, ch := range h.subscribers {
		// drop a stale pending value so the newest one fits
		select {
		case <-ch:
		default:
		}
		ch <- d
	}
}

// Start watches the file until ctx is done. The parent directory is watched
// so editors that replace the file by rename are picked up.
func (h *Holder) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(h.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	h.logger.Info().Str("event", "descriptor.watch_started").Msg("watching descriptor")

	go func() {
		defer watcher.Close()
		target := filepath.Clean(h.path)
		for {
			select {
			case <-ctx.Done():
				h.logger.Info().Str("event", "descriptor.watch_stopped").Msg("stopped watching descriptor")
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				// failures are logged by Reload
				_, _ = h.Reload(ctx)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				h.logger.Warn().Err(err).Str("event", "descriptor.watch_error").Msg("watcher error")
			}
		}
	}()
	return nil
}
