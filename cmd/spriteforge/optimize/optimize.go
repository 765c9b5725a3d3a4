// Package optimize implements the optimize subcommand: load a project
// snapshot, run the sprite optimizer, and save the result.
package optimize

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/spriteforge/spriteforge/internal/config"
	"github.com/spriteforge/spriteforge/internal/logging"
	"github.com/spriteforge/spriteforge/internal/optimizer"
	"github.com/spriteforge/spriteforge/internal/snapshot"
	"github.com/spriteforge/spriteforge/internal/thing"
	"github.com/spriteforge/spriteforge/pkg/objectstore"
)

func Run(args []string) {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	prefix := fs.String("prefix", "", "Snapshot prefix (overrides config)")
	out := fs.String("out", "", "Output snapshot prefix (defaults to the input prefix)")
	dryRun := fs.Bool("dry-run", false, "Run the optimizer but do not save the result")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *prefix != "" {
		cfg.Snapshot.Prefix = *prefix
	}
	outPrefix := cfg.Snapshot.Prefix
	if *out != "" {
		outPrefix = *out
	}

	ctx := context.Background()
	ctx = logging.ContextWithProject(ctx, cfg.Project)
	ctx = logging.ContextWithCommand(ctx, "optimize")
	log := logging.New().WithContext(ctx)

	store, err := cfg.NewStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open object store: %v\n", err)
		os.Exit(1)
	}

	sprites, things, err := snapshot.Load(ctx, store, cfg.Snapshot.Prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load snapshot: %v\n", err)
		os.Exit(1)
	}

	opt := optimizer.New(optimizer.Options{
		Logger: log,
		OnProgress: func(p optimizer.Progress) {
			fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", int(p.Step)+1, p.TotalSteps, p.Label)
		},
	})

	output, err := opt.Run(ctx, sprites, things)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Optimizer failed: %v\n", err)
		os.Exit(1)
	}

	printSummary(output.Result)

	if *dryRun {
		fmt.Println("Dry run: result not saved.")
		return
	}

	manifest, err := snapshot.Save(ctx, store, outPrefix, output.Store, output.Things)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save snapshot: %v\n", err)
		os.Exit(1)
	}

	// Saving over the input prefix leaves sprite objects from dropped
	// IDs behind; remove them so the store only holds what the
	// manifest references.
	if err := cleanupStaleSprites(ctx, store, outPrefix, manifest); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to clean up stale sprites: %v\n", err)
	}

	fmt.Printf("Saved snapshot %s under %s\n", manifest.SnapshotID, outPrefix)
}

func printSummary(r *optimizer.Result) {
	fmt.Printf("Sprites: %d -> %d (%d removed, %d duplicates collapsed)\n",
		r.OldCount, r.NewCount, r.RemovedCount, r.DuplicateCount)
	for _, cat := range thing.Categories() {
		if n := r.ChangedByCategory[cat]; n > 0 {
			fmt.Printf("  changed %ss: %d\n", cat, n)
		}
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s %d references missing sprite %d\n", w.Category, w.ThingID, w.SpriteID)
	}
	fmt.Printf("Completed in %s\n", r.Duration)
}

// cleanupStaleSprites deletes sprite objects under prefix that the
// manifest no longer references.
func cleanupStaleSprites(ctx context.Context, store objectstore.Store, prefix string, manifest *snapshot.Manifest) error {
	want := make(map[string]struct{}, len(manifest.SpriteIDs))
	for _, id := range manifest.SpriteIDs {
		want[snapshot.SpriteKey(prefix, id)] = struct{}{}
	}

	marker := ""
	spritePrefix := prefix + "/sprites/"
	for {
		result, err := store.List(ctx, &objectstore.ListOptions{
			Prefix:  spritePrefix,
			Marker:  marker,
			MaxKeys: 1000,
		})
		if err != nil {
			return err
		}
		for _, obj := range result.Objects {
			if _, ok := want[obj.Key]; ok {
				continue
			}
			if err := store.Delete(ctx, obj.Key); err != nil {
				return err
			}
		}
		if !result.IsTruncated || result.NextMarker == "" {
			break
		}
		marker = result.NextMarker
	}
	return nil
}
