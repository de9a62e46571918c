// Package session owns the in-memory configuration record for one client
// session. The store is constructed explicitly and handed to whoever needs
// it; there is no ambient package-level instance, so tests build their own.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/minatoaquaMK2/vibe-kanban/internal/models"
)

// ConfigService is the slice of the persistence service the store uses.
// *api.Client satisfies it.
type ConfigService interface {
	LoadConfig(ctx context.Context) (*models.UserConfig, error)
	SaveConfig(ctx context.Context, cfg models.UserConfig) (*models.UserConfig, error)
}

// Store is the single source of truth for the session's UserConfig record.
// Reads never block; Update is a synchronous optimistic merge that is
// visible to the next Get before any remote write resolves.
type Store struct {
	svc ConfigService

	mu      sync.RWMutex
	cfg     models.UserConfig
	loading bool
	loaded  bool
}

// NewStore creates a store backed by the given persistence service.
func NewStore(svc ConfigService) *Store {
	return &Store{svc: svc}
}

// Load fetches the record from the persistence service. It runs the fetch at
// most once per session; later calls are no-ops. While the fetch is in
// flight the store reports Loading, and callers must not act on Get until
// Load returns.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.loaded {
		s.mu.Unlock()
		return nil
	}
	s.loading = true
	s.mu.Unlock()

	cfg, err := s.svc.LoadConfig(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	s.cfg = *cfg
	s.loaded = true
	return nil
}

// Loading reports whether the initial fetch is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Loaded reports whether the record has been fetched.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Get returns a copy of the current in-memory record. Never blocks.
func (s *Store) Get() models.UserConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update merges the partial record into the in-memory record and returns
// immediately. It does not contact the persistence service.
func (s *Store) Update(u models.ConfigUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Apply(u)
}

// Save transmits the full current record to the persistence service with the
// next version token. Each Save bumps the counter under the lock, so a
// superseded in-flight write carries a smaller version and the service
// rejects it instead of clobbering newer fields.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	s.cfg.Version++
	snapshot := s.cfg
	s.mu.Unlock()

	if _, err := s.svc.SaveConfig(ctx, snapshot); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}
