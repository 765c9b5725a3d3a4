package optimizer

import (
	"testing"

	"github.com/spriteforge/spriteforge/internal/sprite"
)

func storeWith(t *testing.T, entries map[uint32][]byte) *sprite.Store {
	t.Helper()
	s := sprite.NewStore()
	for id, data := range entries {
		if err := s.Put(id, data); err != nil {
			t.Fatalf("Put(%d) failed: %v", id, err)
		}
	}
	return s
}

func TestResolveDuplicates_LowestIDWins(t *testing.T) {
	// Duplicates at 5, 9 and 12: the canonical owner must be 5 no
	// matter what order slots are scanned in elsewhere.
	s := storeWith(t, map[uint32][]byte{
		5:  []byte("X"),
		9:  []byte("X"),
		12: []byte("X"),
		7:  []byte("Y"),
	})

	canonical := resolveDuplicates(s)

	if len(canonical) != 2 {
		t.Fatalf("canonical map has %d entries, want 2: %v", len(canonical), canonical)
	}
	if canonical[9] != 5 {
		t.Errorf("canonical[9] = %d, want 5", canonical[9])
	}
	if canonical[12] != 5 {
		t.Errorf("canonical[12] = %d, want 5", canonical[12])
	}
	if _, ok := canonical[5]; ok {
		t.Error("the canonical owner must not map to anything")
	}
	if _, ok := canonical[7]; ok {
		t.Error("unique content must not appear in the canonical map")
	}
}

func TestResolveDuplicates_NoDuplicates(t *testing.T) {
	s := storeWith(t, map[uint32][]byte{
		1: []byte("a"),
		2: []byte("b"),
		3: []byte("c"),
	})
	if canonical := resolveDuplicates(s); len(canonical) != 0 {
		t.Errorf("canonical map should be empty, got %v", canonical)
	}
}

func TestResolveDuplicates_EmptyStore(t *testing.T) {
	if canonical := resolveDuplicates(sprite.NewStore()); len(canonical) != 0 {
		t.Errorf("canonical map should be empty, got %v", canonical)
	}
}

func TestResolveDuplicates_EmptyBuffers(t *testing.T) {
	// Zero-length buffers are valid sprites and dedup like any other
	// content.
	s := storeWith(t, map[uint32][]byte{
		2: {},
		4: {},
		6: []byte("x"),
	})

	canonical := resolveDuplicates(s)
	if canonical[4] != 2 {
		t.Errorf("canonical[4] = %d, want 2", canonical[4])
	}
	if len(canonical) != 1 {
		t.Errorf("canonical map has %d entries, want 1", len(canonical))
	}
}

func TestResolveDuplicates_SameLengthDistinctContent(t *testing.T) {
	// Same length is not enough: content must match byte for byte.
	s := storeWith(t, map[uint32][]byte{
		1: []byte("abcd"),
		2: []byte("abce"),
	})
	if canonical := resolveDuplicates(s); len(canonical) != 0 {
		t.Errorf("distinct same-length buffers must not merge, got %v", canonical)
	}
}
