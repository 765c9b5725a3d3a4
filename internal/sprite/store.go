// Package sprite provides the in-memory sprite store, content
// fingerprinting, and the pixel codec used by snapshot I/O.
package sprite

import (
	"errors"
	"sort"
)

// EmptyID is the reserved identifier meaning "no sprite". Reference
// slots holding EmptyID are empty cells, not dangling references.
const EmptyID uint32 = 0

var (
	// ErrInvalidID is returned when a sprite ID below 1 is used.
	ErrInvalidID = errors.New("sprite ID must be >= 1")

	// ErrDuplicateID is returned when storing under an ID already present.
	ErrDuplicateID = errors.New("sprite ID already in store")
)

// Store maps sprite identifiers to opaque compressed pixel buffers.
// Identifiers start at 1 and need not be contiguous. Buffers are
// immutable once stored: callers must not modify a buffer after Put,
// and must not modify buffers returned by Get.
type Store struct {
	sprites map[uint32][]byte
}

// NewStore creates an empty sprite store.
func NewStore() *Store {
	return &Store{
		sprites: make(map[uint32][]byte),
	}
}

// Put stores data under the given ID.
func (s *Store) Put(id uint32, data []byte) error {
	if id == EmptyID {
		return ErrInvalidID
	}
	if _, ok := s.sprites[id]; ok {
		return ErrDuplicateID
	}
	s.sprites[id] = data
	return nil
}

// Get returns the buffer stored under id. The second return value
// reports whether the ID is present. An empty buffer is a valid sprite.
func (s *Store) Get(id uint32) ([]byte, bool) {
	data, ok := s.sprites[id]
	return data, ok
}

// Has reports whether id is present in the store.
func (s *Store) Has(id uint32) bool {
	_, ok := s.sprites[id]
	return ok
}

// Count returns the number of sprites in the store.
func (s *Store) Count() int {
	return len(s.sprites)
}

// IDs returns all sprite IDs in ascending order.
func (s *Store) IDs() []uint32 {
	ids := make([]uint32, 0, len(s.sprites))
	for id := range s.sprites {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// MaxID returns the highest sprite ID in the store, or 0 when empty.
func (s *Store) MaxID() uint32 {
	var max uint32
	for id := range s.sprites {
		if id > max {
			max = id
		}
	}
	return max
}

// Clone returns a deep copy of the store. Buffers are copied so the
// clone shares no memory with the original.
func (s *Store) Clone() *Store {
	out := NewStore()
	for id, data := range s.sprites {
		cp := make([]byte, len(data))
		copy(cp, data)
		out.sprites[id] = cp
	}
	return out
}
