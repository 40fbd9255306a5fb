package cache

import (
	"sync"
	"time"

	"github.com/incial/Incial/internal/domain/entities"
)

// Snapshot is the in-memory derived calendar state: the CalendarItem
// collection plus the company lookup, rebuilt wholesale on each refresh and
// patched in place by optimistic mutations. Nothing here is durable; the
// upstream API owns the records.
//
// The generation counter guards against the lost-update race between a slow
// refresh and a newer optimistic edit: Replace only commits when no patch
// landed after the refresh began. Stored items are treated as immutable;
// every patch installs a fresh value.
type Snapshot struct {
	mu          sync.RWMutex
	items       []*entities.CalendarItem
	index       map[string]int
	companies   entities.CompanyMap
	generation  uint64
	refreshedAt time.Time
}

// NewSnapshot creates an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{
		index:     make(map[string]int),
		companies: entities.CompanyMap{},
	}
}

// Begin returns the generation a refresh must present to Replace.
func (s *Snapshot) Begin() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Replace swaps in a freshly normalized item collection and company map.
// It returns false without committing when an optimistic patch advanced the
// generation since Begin; the caller should re-run its fetch.
func (s *Snapshot) Replace(gen uint64, items []*entities.CalendarItem, companies entities.CompanyMap) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		return false
	}

	s.items = items
	s.index = make(map[string]int, len(items))
	for i, item := range items {
		s.index[item.ID] = i
	}
	s.companies = companies
	s.refreshedAt = time.Now()
	return true
}

// Patch upserts a single item, preserving list position for existing ids,
// and advances the generation.
func (s *Snapshot) Patch(item *entities.CalendarItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	if i, ok := s.index[item.ID]; ok {
		s.items[i] = item
		return
	}
	s.index[item.ID] = len(s.items)
	s.items = append(s.items, item)
}

// Remove deletes an item by id and advances the generation.
func (s *Snapshot) Remove(itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[itemID]
	if !ok {
		return false
	}

	s.generation++
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, itemID)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].ID] = j
	}
	return true
}

// Get retrieves an item by its composite id
func (s *Snapshot) Get(itemID string) (*entities.CalendarItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[itemID]
	if !ok {
		return nil, false
	}
	return s.items[i], true
}

// Items returns the item collection in list order
func (s *Snapshot) Items() []*entities.CalendarItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entities.CalendarItem, len(s.items))
	copy(out, s.items)
	return out
}

// Companies returns the company lookup of the last committed refresh
func (s *Snapshot) Companies() entities.CompanyMap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.companies
}

// RefreshedAt returns the commit time of the last successful refresh
func (s *Snapshot) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt
}
