package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/gommon/log"
)

// Store serves the current tables and swaps them on reload. Readers never see
// a partially loaded document.
type Store struct {
	mu      sync.RWMutex
	current *Content
	version uint64
	path    string // empty means built-in tables only

	// Debounce coalesces editor save bursts (write + chmod + rename).
	Debounce time.Duration
	// OnReload, when set, is called after every successful reload.
	OnReload func(version uint64)
}

// NewStore loads path, or the built-in tables when path is empty.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path, Debounce: 250 * time.Millisecond}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the current tables and their version.
func (s *Store) Get() (*Content, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.version
}

// Reload re-reads the source. On failure the previous tables stay in place.
func (s *Store) Reload() error {
	var (
		c   *Content
		err error
	)
	if s.path == "" {
		c = Default()
	} else {
		c, err = LoadFile(s.path)
		if err != nil {
			return err
		}
	}
	s.mu.Lock()
	s.current = c
	s.version++
	v := s.version
	s.mu.Unlock()
	if s.OnReload != nil {
		s.OnReload(v)
	}
	return nil
}

// Watch reloads the tables whenever the source file changes, until ctx is
// done. The parent directory is watched so atomic-rename saves are seen.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		<-ctx.Done()
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content: watcher: %w", err)
	}
	defer w.Close()

	target, err := filepath.Abs(s.path)
	if err != nil {
		return fmt.Errorf("content: resolve %s: %w", s.path, err)
	}
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("content: watch %s: %w", filepath.Dir(target), err)
	}

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(s.Debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			if err := s.Reload(); err != nil {
				log.Warnf("content: reload %s failed, keeping previous tables: %v", s.path, err)
				continue
			}
			_, v := s.Get()
			log.Infof("content: reloaded %s (version %d)", s.path, v)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warnf("content: watcher: %v", err)
		}
	}
}
