package optimizer

import (
	"testing"

	"github.com/RoaringBitmap/roaring"
)

func TestCompactStore_DenseAscending(t *testing.T) {
	store := storeWith(t, map[uint32][]byte{
		2:   []byte("a"),
		10:  []byte("b"),
		11:  []byte("c"),
		500: []byte("d"),
	})

	live := roaring.BitmapOf(500, 2, 11)

	newStore, remap := compactStore(store, live)

	if newStore.Count() != 3 {
		t.Fatalf("new store has %d sprites, want 3", newStore.Count())
	}
	if remap[2] != 1 || remap[11] != 2 || remap[500] != 3 {
		t.Errorf("remap = %v, want 2->1 11->2 500->3", remap)
	}
	if _, ok := remap[10]; ok {
		t.Error("non-live sprite must not be remapped")
	}

	for oldID, newID := range remap {
		want, _ := store.Get(oldID)
		got, ok := newStore.Get(newID)
		if !ok || string(got) != string(want) {
			t.Errorf("sprite %d -> %d lost its content", oldID, newID)
		}
	}
}

func TestCompactStore_CopiesBuffers(t *testing.T) {
	store := storeWith(t, map[uint32][]byte{1: {1, 2, 3}})
	newStore, _ := compactStore(store, roaring.BitmapOf(1))

	buf, _ := newStore.Get(1)
	buf[0] = 99

	orig, _ := store.Get(1)
	if orig[0] != 1 {
		t.Error("compaction shared a buffer with the input store")
	}
}

func TestCompactStore_EmptyLiveSet(t *testing.T) {
	store := storeWith(t, map[uint32][]byte{1: []byte("x")})
	newStore, remap := compactStore(store, roaring.NewBitmap())

	if newStore.Count() != 0 {
		t.Errorf("new store has %d sprites, want 0", newStore.Count())
	}
	if len(remap) != 0 {
		t.Errorf("remap has %d entries, want 0", len(remap))
	}
}
