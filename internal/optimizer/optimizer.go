// Package optimizer implements sprite deduplication and store
// compaction: byte-identical sprites are collapsed into one canonical
// copy, unreferenced sprites are dropped, and the survivors are
// renumbered into a dense identifier space with every thing reference
// rewritten to match.
package optimizer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spriteforge/spriteforge/internal/logging"
	"github.com/spriteforge/spriteforge/internal/metrics"
	"github.com/spriteforge/spriteforge/internal/sprite"
	"github.com/spriteforge/spriteforge/internal/thing"
)

// Step identifies one stage of the optimizer pipeline. Steps run
// strictly in order; the progress callback fires once per step, so a
// host can drive a progress bar and repaint between stages.
type Step int

const (
	StepHashing Step = iota
	StepRewritingReferences
	StepAnalyzingLiveness
	StepReindexing
	StepUpdatingReferences
	StepDone
)

// TotalSteps is the number of steps in a run.
const TotalSteps = int(StepDone) + 1

// Label returns the human-readable label for the step.
func (s Step) Label() string {
	switch s {
	case StepHashing:
		return "hashing sprites"
	case StepRewritingReferences:
		return "replacing duplicate references"
	case StepAnalyzingLiveness:
		return "finding used sprites"
	case StepReindexing:
		return "reindexing sprites"
	case StepUpdatingReferences:
		return "updating references"
	case StepDone:
		return "complete"
	default:
		return "unknown"
	}
}

func (s Step) String() string {
	return s.Label()
}

// Progress is delivered to the host between steps.
type Progress struct {
	RunID      string
	Step       Step
	TotalSteps int
	Label      string
}

// ProgressFunc receives progress events. It is invoked synchronously
// at each step boundary; the host must not assume any particular
// wall-clock spacing between calls.
type ProgressFunc func(Progress)

// Options configures an Optimizer.
type Options struct {
	// OnProgress, if set, is called once per step.
	OnProgress ProgressFunc

	// Logger defaults to a discard logger when nil.
	Logger *logging.Logger
}

// Optimizer runs the dedup/compact pipeline. It holds no state between
// runs; every derived structure is computed fresh and discarded.
type Optimizer struct {
	opts Options
}

// New creates an Optimizer with the given options.
func New(opts Options) *Optimizer {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Optimizer{opts: opts}
}

// Output bundles the optimized store and things with the run summary.
// The input store and things are never mutated; things whose
// references did not change are returned as the original pointer.
type Output struct {
	Store  *sprite.Store
	Things *thing.Set
	Result *Result
}

// Run executes the pipeline over the given store and things. The
// inputs are read-only for the whole run and all outputs are freshly
// constructed, so an abort at any step boundary leaves the caller's
// state untouched. Cancellation is cooperative: ctx is checked between
// steps, never inside one, so a cancelled run never exposes a
// half-rewritten thing set.
func (o *Optimizer) Run(ctx context.Context, store *sprite.Store, things *thing.Set) (*Output, error) {
	runID := uuid.NewString()
	start := time.Now()
	ctx = logging.ContextWithRunID(ctx, runID)
	log := o.opts.Logger.WithContext(ctx)

	oldCount := store.Count()
	log.Info("optimizer run started",
		"sprites", oldCount,
		"things", things.Count(),
	)

	fail := func(err error) (*Output, error) {
		metrics.ObserveOptimizerRun(time.Since(start).Seconds(), 0, 0, 0, err)
		log.Error("optimizer run aborted", "error", err)
		return nil, err
	}

	if err := o.step(ctx, runID, StepHashing); err != nil {
		return fail(err)
	}
	canonical := resolveDuplicates(store)

	if err := o.step(ctx, runID, StepRewritingReferences); err != nil {
		return fail(err)
	}
	canonicalized := rewriteCanonical(things, canonical)

	if err := o.step(ctx, runID, StepAnalyzingLiveness); err != nil {
		return fail(err)
	}
	live, warnings := collectLive(canonicalized, store)

	if err := o.step(ctx, runID, StepReindexing); err != nil {
		return fail(err)
	}
	newStore, remap := compactStore(store, live)

	if err := o.step(ctx, runID, StepUpdatingReferences); err != nil {
		return fail(err)
	}
	final := rewriteCompacted(canonicalized, remap)

	if err := o.step(ctx, runID, StepDone); err != nil {
		return fail(err)
	}

	result := &Result{
		RunID:             runID,
		OldCount:          oldCount,
		NewCount:          newStore.Count(),
		RemovedCount:      oldCount - newStore.Count(),
		DuplicateCount:    len(canonical),
		ChangedByCategory: changedCounts(things, final),
		Warnings:          warnings,
		Duration:          time.Since(start),
	}

	metrics.ObserveOptimizerRun(result.Duration.Seconds(), result.RemovedCount, result.DuplicateCount, len(warnings), nil)
	metrics.SetStoreSprites(result.NewCount)

	log.Info("optimizer run complete",
		"removed", result.RemovedCount,
		"duplicates", result.DuplicateCount,
		"changed_things", result.ChangedCount(),
		"warnings", len(result.Warnings),
		"duration_ms", result.Duration.Milliseconds(),
	)

	return &Output{Store: newStore, Things: final, Result: result}, nil
}

// step is the yield point between stages: it checks for cancellation
// and emits the progress event for the step about to run.
func (o *Optimizer) step(ctx context.Context, runID string, s Step) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("optimizer cancelled before %q: %w", s.Label(), err)
	}
	if o.opts.OnProgress != nil {
		o.opts.OnProgress(Progress{
			RunID:      runID,
			Step:       s,
			TotalSteps: TotalSteps,
			Label:      s.Label(),
		})
	}
	return nil
}

// changedCounts compares the final things against the input by pointer
// identity. applySlotMap returns the original pointer for untouched
// things, so a pointer difference in either pass marks the thing as
// changed.
func changedCounts(before, after *thing.Set) map[thing.Category]int {
	counts := make(map[thing.Category]int, len(thing.Categories()))
	for _, cat := range thing.Categories() {
		b := before.ByCategory(cat)
		a := after.ByCategory(cat)
		changed := 0
		for i := range a {
			if a[i] != b[i] {
				changed++
			}
		}
		counts[cat] = changed
	}
	return counts
}
