package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Live holds the portfolio currently being served and swaps it when the source file changes.
type Live struct {
	cur atomic.Pointer[Portfolio]
}

func NewLive(p *Portfolio) *Live {
	l := &Live{}
	l.cur.Store(p)
	return l
}

func (l *Live) Current() *Portfolio {
	return l.cur.Load()
}

// Watch reloads path whenever it is written, created or renamed into place, until ctx is done.
// A file that fails to parse is logged and the previous portfolio is kept.
func (l *Live) Watch(ctx context.Context, path string, log zerolog.Logger) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve content path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files instead of writing them, so watch the directory.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	log.Info().Str("path", abs).Msg("watching content file")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			p, err := LoadFile(abs)
			if err != nil {
				log.Warn().Err(err).Msg("content reload failed, keeping previous content")
				continue
			}
			l.cur.Store(p)
			log.Info().Str("path", abs).Msg("content reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("content watcher error")
		}
	}
}
