package profile

// Store exposes the owner profile snapshot for prompt construction.
type Store interface {
	Get() Profile
}

// MemoryStore implements Store with a compiled-in snapshot. It is shared
// safely across concurrent requests since it is never written after
// construction.
type MemoryStore struct {
	snapshot Profile
}

// NewMemoryStore returns a MemoryStore holding the supplied profile.
func NewMemoryStore(p Profile) *MemoryStore {
	return &MemoryStore{snapshot: p}
}

// Get returns the profile snapshot.
func (s *MemoryStore) Get() Profile {
	return s.snapshot
}
