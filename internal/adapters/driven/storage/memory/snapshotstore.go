package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/linkscope/internal/core/domain"
	"github.com/custodia-labs/linkscope/internal/core/ports/driven"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is an in-memory implementation of driven.SnapshotStore.
type SnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string]storedSnapshot
	seq       int
}

type storedSnapshot struct {
	snapshot domain.Snapshot
	seq      int
}

// NewSnapshotStore creates a new in-memory snapshot store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{
		snapshots: make(map[string]storedSnapshot),
	}
}

// Save stores or replaces a snapshot.
func (s *SnapshotStore) Save(_ context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil || snapshot.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.snapshots[snapshot.ID] = storedSnapshot{snapshot: *snapshot, seq: s.seq}
	return nil
}

// Get retrieves a snapshot by ID.
func (s *SnapshotStore) Get(_ context.Context, id string) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.snapshots[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	snap := stored.snapshot
	return &snap, nil
}

// Latest retrieves the most recently created snapshot.
func (s *SnapshotStore) Latest(_ context.Context) (*domain.Snapshot, error) {
	s.mu.RLock()
	ordered := s.ordered()
	s.mu.RUnlock()
	if len(ordered) == 0 {
		return nil, domain.ErrNotFound
	}
	snap := ordered[0].snapshot
	return &snap, nil
}

// List returns all snapshots, newest first.
func (s *SnapshotStore) List(_ context.Context) ([]domain.SnapshotInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ordered := s.ordered()
	result := make([]domain.SnapshotInfo, 0, len(ordered))
	for i := range ordered {
		result = append(result, ordered[i].snapshot.Info())
	}
	return result, nil
}

// Delete removes a snapshot.
func (s *SnapshotStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.snapshots[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.snapshots, id)
	return nil
}

// ordered returns snapshots newest first; equal times put the later save first.
// Callers must hold the lock.
func (s *SnapshotStore) ordered() []storedSnapshot {
	out := make([]storedSnapshot, 0, len(s.snapshots))
	for _, stored := range s.snapshots {
		out = append(out, stored)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.snapshot.CreatedAt.Equal(b.snapshot.CreatedAt) {
			return a.snapshot.CreatedAt.After(b.snapshot.CreatedAt)
		}
		return a.seq > b.seq
	})
	return out
}
