package sprite

import (
	"bytes"
	"errors"
	"testing"
)

func TestStore_PutGet(t *testing.T) {
	s := NewStore()

	if err := s.Put(1, []byte("a")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put(7, []byte("b")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	data, ok := s.Get(1)
	if !ok || !bytes.Equal(data, []byte("a")) {
		t.Errorf("Get(1) = %q, %v; want %q, true", data, ok, "a")
	}
	if _, ok := s.Get(2); ok {
		t.Error("Get(2) should report missing")
	}
	if !s.Has(7) {
		t.Error("Has(7) should be true")
	}
	if s.Count() != 2 {
		t.Errorf("Count() = %d, want 2", s.Count())
	}
}

func TestStore_PutRejectsInvalidID(t *testing.T) {
	s := NewStore()
	if err := s.Put(0, []byte("x")); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Put(0) error = %v, want ErrInvalidID", err)
	}
}

func TestStore_PutRejectsDuplicateID(t *testing.T) {
	s := NewStore()
	if err := s.Put(3, []byte("x")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put(3, []byte("y")); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("second Put(3) error = %v, want ErrDuplicateID", err)
	}
}

func TestStore_EmptyBufferIsValid(t *testing.T) {
	s := NewStore()
	if err := s.Put(1, nil); err != nil {
		t.Fatalf("Put of empty buffer failed: %v", err)
	}
	data, ok := s.Get(1)
	if !ok {
		t.Fatal("Get(1) should find the empty sprite")
	}
	if len(data) != 0 {
		t.Errorf("empty sprite has %d bytes", len(data))
	}
}

func TestStore_IDsSortedAscending(t *testing.T) {
	s := NewStore()
	for _, id := range []uint32{9, 2, 300, 1, 42} {
		if err := s.Put(id, []byte{byte(id)}); err != nil {
			t.Fatalf("Put(%d) failed: %v", id, err)
		}
	}

	ids := s.IDs()
	want := []uint32{1, 2, 9, 42, 300}
	if len(ids) != len(want) {
		t.Fatalf("IDs() returned %d entries, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs()[%d] = %d, want %d", i, ids[i], want[i])
		}
	}

	if s.MaxID() != 300 {
		t.Errorf("MaxID() = %d, want 300", s.MaxID())
	}
}

func TestStore_CloneIsIndependent(t *testing.T) {
	s := NewStore()
	buf := []byte{1, 2, 3}
	if err := s.Put(1, buf); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	clone := s.Clone()
	cloned, _ := clone.Get(1)
	cloned[0] = 99

	original, _ := s.Get(1)
	if original[0] != 1 {
		t.Error("modifying a cloned buffer changed the original store")
	}

	if err := clone.Put(2, []byte("new")); err != nil {
		t.Fatalf("Put on clone failed: %v", err)
	}
	if s.Has(2) {
		t.Error("Put on clone changed the original store")
	}
}
