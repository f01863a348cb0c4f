// Package watchlist keeps the per-device ordered set of item ids the bidder
// has engaged with. Entries are added on accepted bids, removable one at a
// time, and wiped wholesale on logout. The set lives only on this device.
package watchlist

import (
	"errors"
	"fmt"
	"sync"

	"silent-auction/internal/localstore"
)

const storageKey = "watchlistItems"

// Set is a persisted, insertion-ordered set of item identifiers. Every
// mutation is written through to the local store before returning.
type Set struct {
	mu    sync.Mutex
	local *localstore.Store
	ids   []string
	seen  map[string]bool
}

// Load opens the watchlist from the local store. An absent key yields an
// empty set.
func Load(local *localstore.Store) (*Set, error) {
	s := &Set{local: local, seen: make(map[string]bool)}
	err := local.Get(storageKey, &s.ids)
	if err != nil && !errors.Is(err, localstore.ErrNotFound) {
		return nil, fmt.Errorf("load watchlist: %w", err)
	}
	for _, id := range s.ids {
		s.seen[id] = true
	}
	return s, nil
}

// Add appends an item id to the watchlist. Adding an id already present is
// a no-op, so repeat bids on the same item never duplicate entries.
func (s *Set) Add(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seen[itemID] {
		return nil
	}
	s.ids = append(s.ids, itemID)
	s.seen[itemID] = true
	return s.persistLocked()
}

// Remove drops one item id from the watchlist. Removing an absent id is a
// no-op. Callers are expected to have collected the user's confirmation.
func (s *Set) Remove(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seen[itemID] {
		return nil
	}
	delete(s.seen, itemID)
	kept := s.ids[:0]
	for _, id := range s.ids {
		if id != itemID {
			kept = append(kept, id)
		}
	}
	s.ids = kept
	return s.persistLocked()
}

// Contains reports whether an item id is on the watchlist.
func (s *Set) Contains(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen[itemID]
}

// List returns the watched item ids in insertion order.
func (s *Set) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ids...)
}

// Clear empties the watchlist. The only bulk-destroy path, invoked on logout.
func (s *Set) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ids = nil
	s.seen = make(map[string]bool)
	if err := s.local.Delete(storageKey); err != nil {
		return fmt.Errorf("clear watchlist: %w", err)
	}
	return nil
}

func (s *Set) persistLocked() error {
	if err := s.local.Set(storageKey, s.ids); err != nil {
		return fmt.Errorf("persist watchlist: %w", err)
	}
	return nil
}
