package optimizer

import (
	"time"

	"github.com/spriteforge/spriteforge/internal/thing"
)

// Warning reports a sprite reference with no backing buffer in the
// store. The slot survives canonicalization untouched and is cleared
// to empty during reindexing; the run itself never fails on it.
type Warning struct {
	Category thing.Category
	ThingID  uint32
	SpriteID uint32
}

// Result summarizes a completed optimizer run.
type Result struct {
	RunID string

	// OldCount and NewCount are the store sizes before and after the
	// run; RemovedCount is their difference.
	OldCount     int
	NewCount     int
	RemovedCount int

	// DuplicateCount is the number of sprites that were byte-identical
	// to a lower-numbered sprite and collapsed into it.
	DuplicateCount int

	// ChangedByCategory counts things whose sprite references differ
	// from the input. Unchanged things are returned as the original
	// pointer, so callers can skip cache invalidation for them.
	ChangedByCategory map[thing.Category]int

	// Warnings lists dangling sprite references found during the run.
	Warnings []Warning

	Duration time.Duration
}

// ChangedCount returns the total number of changed things across all
// categories.
func (r *Result) ChangedCount() int {
	n := 0
	for _, c := range r.ChangedByCategory {
		n += c
	}
	return n
}
