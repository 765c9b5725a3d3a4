// Package groups implements the groups subcommand: convert outfits
// between single-group and idle/moving frame group layouts.
package groups

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
	fs := flag.NewFlagSet("groups", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	prefix := fs.String("prefix", "", "Snapshot prefix (overrides config)")
	mode := fs.String("mode", "", "Conversion mode: split or merge")
	fs.Parse(args)

	if *mode != "split" && *mode != "merge" {
		fmt.Fprintln(os.Stderr, "Mode must be 'split' or 'merge'")
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

	var (
		updated []*thing.Thing
		changed int
	)
	if *mode == "split" {
		updated, changed = thing.SplitFrameGroups(things.Outfits)
	} else {
		updated, changed = thing.MergeFrameGroups(things.Outfits)
	}
	things.Outfits = updated

	if changed == 0 {
		fmt.Println("No outfits to convert.")
		return
	}

	manifest, err := snapshot.Save(ctx, store, cfg.Snapshot.Prefix, sprites, things)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Converted %d outfits (%s); saved snapshot %s\n", changed, *mode, manifest.SnapshotID)
}
