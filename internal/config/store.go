package config

import (
	"sync/atomic"

	"github.com/averycrespi/foldtodef/internal/fold"
)

// Store holds the current settings snapshot.
// Readers always see a complete snapshot; updates swap the whole value.
type Store struct {
	current atomic.Pointer[Settings]
}

// NewStore creates a store holding the given settings
func NewStore(initial *Settings) *Store {
	if initial == nil {
		initial = Default()
	}
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Current returns the latest settings snapshot
func (s *Store) Current() *Settings {
	return s.current.Load()
}

// Fold returns the fold configuration of the latest snapshot
func (s *Store) Fold() fold.Config {
	return s.current.Load().Fold
}

// Set replaces the current snapshot
func (s *Store) Set(settings *Settings) {
	s.current.Store(settings)
}
