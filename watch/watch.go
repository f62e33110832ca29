// Package watch revalidates the configuration whenever the file
// changes on disk, keeping the last good version when an edit breaks
// validation. It exists for the authoring loop: plume.yaml is edited
// by hand, and feedback should not wait for the next build.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/plumekit/plume/config"
	"github.com/plumekit/plume/utils"
)

// Holder holds the current configuration with atomic reload. Reload
// either swaps in a fully valid config or leaves the old one in place.
type Holder struct {
	mu      sync.RWMutex
	current *config.Config
	path    string

	listenerMu sync.Mutex
	listeners  []chan<- *config.Config
}

func NewHolder(initial *config.Config) *Holder {
	return &Holder{
		current: initial,
		path:    initial.Path(),
	}
}

func (h *Holder) Get() *config.Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Subscribe returns a channel receiving each successfully reloaded
// configuration. Slow receivers miss intermediate versions.
func (h *Holder) Subscribe() <-chan *config.Config {
	ch := make(chan *config.Config, 1)
	h.listenerMu.Lock()
	h.listeners = append(h.listeners, ch)
	h.listenerMu.Unlock()
	return ch
}

// Reload re-runs the full load pipeline. On any error the previous
// configuration stays current.
func (h *Holder) Reload() error {
	newCfg, err := config.Load(h.path)
	if err != nil {
		log.Logger.Error().Err(err).Str("path", h.path).Msg("reload failed, keeping previous configuration")
		return fmt.Errorf("reload %s: %w", h.path, err)
	}

	h.mu.Lock()
	h.current = newCfg
	h.mu.Unlock()

	if hash, err := utils.ComputeFileHash(h.path); err == nil {
		log.Logger.Info().Str("path", h.path).Str("hash", hash).Msg("configuration reloaded")
	}

	h.notify(newCfg)
	return nil
}

func (h *Holder) notify(cfg *config.Config) {
	h.listenerMu.Lock()
	defer h.listenerMu.Unlock()
	for _, ch := range h.listeners {
		select {
		case ch <- cfg:
		default:
		}
	}
}

// Watch blocks until ctx is done, reloading on every write to the
// config file. The parent directory is watched because editors often
// replace the file by rename.
func (h *Holder) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(h.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Logger.Info().Str("path", h.path).Msg("watching configuration")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(h.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Errors are already logged; watching continues with the
			// last good configuration.
			_ = h.Reload()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Logger.Warn().Err(err).Msg("watcher error")
		}
	}
}
