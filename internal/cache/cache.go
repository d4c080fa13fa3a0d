// Package cache keeps submitted allocations in memory, keyed by user and
// week.
package cache

import (
	"sort"
	"sync"

	"github.com/theo886/weekly-time-allocation/internal/allocation"
)

// Store caches allocation entries per user and week key.
//
// Entries are copied on the way in and on the way out, so callers can
// never modify cached data through a slice they passed in or got back.
// A Store is safe for concurrent use. The zero value is ready to use.
type Store struct {
	mu      sync.RWMutex
	entries map[string]map[string][]allocation.Entry
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Set stores the entries for the user and week.
func (s *Store) Set(userID, weekKey string, entries []allocation.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entries == nil {
		s.entries = make(map[string]map[string][]allocation.Entry)
	}

	weeks, ok := s.entries[userID]
	if !ok {
		weeks = make(map[string][]allocation.Entry)
		s.entries[userID] = weeks
	}

	weeks[weekKey] = clone(entries)
}

// Get returns a copy of the entries for the user and week.
func (s *Store) Get(userID, weekKey string) ([]allocation.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, ok := s.entries[userID][weekKey]
	if !ok {
		return nil, false
	}

	return clone(entries), true
}

// Keys returns the sorted week keys cached for the user.
func (s *Store) Keys(userID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries[userID]))
	for k := range s.entries[userID] {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Clear removes cached data.
//
// With a user and a week key, only that week is removed. With only a user,
// all weeks of that user are removed. Without both, the whole cache is
// emptied. A week key without a user removes nothing.
func (s *Store) Clear(userID, weekKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case userID != "" && weekKey != "":
		delete(s.entries[userID], weekKey)
	case userID != "":
		delete(s.entries, userID)
	case weekKey != "":
		return
	default:
		s.entries = nil
	}
}

func clone(entries []allocation.Entry) []allocation.Entry {
	if entries == nil {
		return nil
	}

	c := make([]allocation.Entry, len(entries))
	copy(c, entries)
	return c
}
