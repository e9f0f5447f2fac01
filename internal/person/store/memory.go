// Package store holds the registry of persons in process memory.
package store

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"sync"

	"pessoas/internal/person/models"
	id "pessoas/pkg/domain"
	"pessoas/pkg/platform/sentinel"
)

// ErrNotFound is returned when no person is stored under an id.
var ErrNotFound = sentinel.ErrNotFound

// InMemory is the person registry. One RWMutex guards the map: reads share
// the lock and Insert holds it exclusively for the duration of a map write.
// Callers only ever see copies of stored persons.
type InMemory struct {
	mu      sync.RWMutex
	persons map[id.PersonID]*models.Person
}

func NewInMemory() *InMemory {
	return &InMemory{
		persons: make(map[id.PersonID]*models.Person),
	}
}

// Insert stores a copy of p. An existing entry is never overwritten; a
// second insert under the same id fails with sentinel.ErrConflict.
func (s *InMemory) Insert(_ context.Context, p *models.Person) error {
	stored := p.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.persons[stored.ID()]; exists {
		return fmt.Errorf("person %s already stored: %w", stored.ID(), sentinel.ErrConflict)
	}
	s.persons[stored.ID()] = stored
	return nil
}

// FindByID returns a copy of the person stored under personID.
func (s *InMemory) FindByID(_ context.Context, personID id.PersonID) (*models.Person, error) {
	s.mu.RLock()
	p, ok := s.persons[personID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	// Stored persons are never mutated, so copying outside the lock is safe.
	return p.Clone(), nil
}

// Count returns the number of stored persons.
func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.persons), nil
}

// Snapshot returns copies of every stored person ordered by id, which for
// version 7 ids is creation order.
func (s *InMemory) Snapshot(_ context.Context) ([]*models.Person, error) {
	s.mu.RLock()
	out := make([]*models.Person, 0, len(s.persons))
	for _, p := range s.persons {
		out = append(out, p)
	}
	s.mu.RUnlock()

	for i, p := range out {
		out[i] = p.Clone()
	}
	slices.SortFunc(out, func(a, b *models.Person) int {
		ak, bk := a.ID(), b.ID()
		return bytes.Compare(ak[:], bk[:])
	})
	return out, nil
}
