// Package store contains the default [domain.Store] implementation: a
// registry of named collections created lazily on first access.
package store

import (
	"sync"

	"anonboard/adapter/collection"
	"anonboard/domain"
)

// Store implements domain.Store. A store owns its collections for the
// lifetime of the process; collections are never destroyed.
type Store struct {
	mu          sync.Mutex
	collections map[string]domain.Collection
	options     []collection.Option
}

// NewStore returns a new implementation of domain.Store. The given
// options are applied to every collection it creates.
func NewStore(options ...collection.Option) domain.Store {
	return &Store{
		collections: make(map[string]domain.Collection),
		options:     options,
	}
}

// Collection implements domain.Store.
func (s *Store) Collection(name string) domain.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.collections[name]; ok {
		return c
	}
	c := collection.NewCollection(s.options...)
	s.collections[name] = c
	return c
}
