package bloom

import "sync"

// SyncFilter guards a Filter with a reader/writer lock. Queries share the
// lock and every write is exclusive, so a reader never sees a key half
// inserted.
type SyncFilter struct {
	mu sync.RWMutex
	f  *Filter
}

// NewSyncFilter wraps f. f must not be used directly afterwards.
func NewSyncFilter(f *Filter) *SyncFilter {
	return &SyncFilter{f: f}
}

func (s *SyncFilter) Insert(key []byte) {
	s.mu.Lock()
	s.f.Insert(key)
	s.mu.Unlock()
}

func (s *SyncFilter) ContainsKey(key []byte) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.f.ContainsKey(key)
}

func (s *SyncFilter) TestAndInsert(key []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.TestAndInsert(key)
}

func (s *SyncFilter) TestOrInsert(key []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.TestOrInsert(key)
}

// Locations needs no lock since m and the hashers never change.
func (s *SyncFilter) Locations(key []byte) []uint64 {
	return s.f.Locations(key)
}

// Merge unions g into the guarded filter. g must not be written concurrently.
func (s *SyncFilter) Merge(g *Filter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Merge(g)
}

func (s *SyncFilter) ApproximatedSize() uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.f.ApproximatedSize()
}

func (s *SyncFilter) Cap() uint { return s.f.Cap() }

func (s *SyncFilter) K() uint { return s.f.K() }
