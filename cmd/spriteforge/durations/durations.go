// Package durations implements the durations subcommand: set every
// animated frame group's durations to a uniform range.
package durations

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/spriteforge/spriteforge/internal/config"
	"github.com/spriteforge/spriteforge/internal/snapshot"
	"github.com/spriteforge/spriteforge/internal/thing"
)

func Run(args []string) {
	fs := flag.NewFlagSet("durations", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	prefix := fs.String("prefix", "", "Snapshot prefix (overrides config)")
	min := fs.Int("min", 100, "Minimum frame duration in milliseconds")
	max := fs.Int("max", 100, "Maximum frame duration in milliseconds")
	fs.Parse(args)

	if *min <= 0 || *max < *min {
		fmt.Fprintln(os.Stderr, "Invalid duration range: need 0 < min <= max")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *prefix != "" {
		cfg.Snapshot.Prefix = *prefix
	}

	store, err := cfg.NewStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open object store: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	sprites, things, err := snapshot.Load(ctx, store, cfg.Snapshot.Prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load snapshot: %v\n", err)
		os.Exit(1)
	}

	total := 0
	for _, cat := range thing.Categories() {
		updated, changed := thing.NormalizeDurations(things.ByCategory(cat), *min, *max)
		things.SetCategory(cat, updated)
		total += changed
	}

	if total == 0 {
		fmt.Println("No durations to change.")
		return
	}

	manifest, err := snapshot.Save(ctx, store, cfg.Snapshot.Prefix, sprites, things)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Updated durations on %d things; saved snapshot %s\n", total, manifest.SnapshotID)
}
