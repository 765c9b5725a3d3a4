// Package snapshot persists a project (sprite store plus thing
// definitions) to object storage as a JSON manifest and one object per
// sprite buffer. This is the optimizer tooling's own interchange
// format, not the game client's on-disk format.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/spriteforge/spriteforge/internal/sprite"
	"github.com/spriteforge/spriteforge/internal/thing"
	"github.com/spriteforge/spriteforge/pkg/objectstore"
)

const manifestVersion = 1

// Manifest describes one stored snapshot.
type Manifest struct {
	FormatVersion int       `json:"format_version"`
	SnapshotID    string    `json:"snapshot_id"`
	CreatedAt     time.Time `json:"created_at"`

	// SpriteIDs lists every sprite object in the snapshot, ascending.
	SpriteIDs []uint32 `json:"sprite_ids"`

	Things map[string][]ThingRecord `json:"things"`
}

// ThingRecord is the stored form of a thing.
type ThingRecord struct {
	ID          uint32             `json:"id"`
	FrameGroups []FrameGroupRecord `json:"frame_groups"`
}

// FrameGroupRecord is the stored form of a frame group.
type FrameGroupRecord struct {
	Type      string           `json:"type"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Layers    int              `json:"layers"`
	PatternX  int              `json:"pattern_x"`
	PatternY  int              `json:"pattern_y"`
	PatternZ  int              `json:"pattern_z"`
	Frames    int              `json:"frames"`
	Durations []DurationRecord `json:"durations,omitempty"`
	SpriteIDs []uint32         `json:"sprite_ids"`
}

// DurationRecord is the stored form of a frame duration.
type DurationRecord struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ManifestKey returns the manifest object key under prefix.
func ManifestKey(prefix string) string {
	return prefix + "/manifest.json"
}

// SpriteKey returns the object key for one sprite buffer under prefix.
func SpriteKey(prefix string, id uint32) string {
	return fmt.Sprintf("%s/sprites/%08d", prefix, id)
}

// Save writes the project to the store under prefix. Sprite buffers
// are zstd-compressed on the wire, and sprites are written first so a
// reader never sees a manifest referencing missing objects.
func Save(ctx context.Context, store objectstore.Store, prefix string, sprites *sprite.Store, things *thing.Set) (*Manifest, error) {
	codec, err := sprite.NewCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to create sprite codec: %w", err)
	}
	defer codec.Close()

	manifest := &Manifest{
		FormatVersion: manifestVersion,
		SnapshotID:    uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		SpriteIDs:     sprites.IDs(),
		Things:        make(map[string][]ThingRecord),
	}

	spriteOpts := &objectstore.PutOptions{ContentType: "application/zstd"}
	for _, id := range manifest.SpriteIDs {
		buf, _ := sprites.Get(id)
		packed := codec.Compress(buf)
		key := SpriteKey(prefix, id)
		if _, err := store.Put(ctx, key, bytes.NewReader(packed), int64(len(packed)), spriteOpts); err != nil {
			return nil, fmt.Errorf("failed to write sprite %d: %w", id, err)
		}
	}

	for _, cat := range thing.Categories() {
		list := things.ByCategory(cat)
		records := make([]ThingRecord, 0, len(list))
		for _, t := range list {
			records = append(records, encodeThing(t))
		}
		manifest.Things[cat.String()] = records
	}

	data, err := json.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	opts := &objectstore.PutOptions{ContentType: "application/json"}
	if _, err := store.Put(ctx, ManifestKey(prefix), bytes.NewReader(data), int64(len(data)), opts); err != nil {
		return nil, fmt.Errorf("failed to write manifest: %w", err)
	}

	return manifest, nil
}

// Load reads the project stored under prefix.
func Load(ctx context.Context, store objectstore.Store, prefix string) (*sprite.Store, *thing.Set, error) {
	manifest, err := LoadManifest(ctx, store, prefix)
	if err != nil {
		return nil, nil, err
	}

	codec, err := sprite.NewCodec()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create sprite codec: %w", err)
	}
	defer codec.Close()

	sprites := sprite.NewStore()
	for _, id := range manifest.SpriteIDs {
		rc, _, err := store.Get(ctx, SpriteKey(prefix, id))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read sprite %d: %w", id, err)
		}
		packed, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read sprite %d: %w", id, err)
		}
		buf, err := codec.Decompress(packed)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decompress sprite %d: %w", id, err)
		}
		if err := sprites.Put(id, buf); err != nil {
			return nil, nil, fmt.Errorf("invalid sprite %d in manifest: %w", id, err)
		}
	}

	things := &thing.Set{}
	for _, cat := range thing.Categories() {
		records := manifest.Things[cat.String()]
		list := make([]*thing.Thing, 0, len(records))
		for _, rec := range records {
			t, err := decodeThing(cat, rec)
			if err != nil {
				return nil, nil, err
			}
			list = append(list, t)
		}
		things.SetCategory(cat, list)
	}

	return sprites, things, nil
}

// LoadManifest reads and validates only the manifest under prefix.
func LoadManifest(ctx context.Context, store objectstore.Store, prefix string) (*Manifest, error) {
	rc, _, err := store.Get(ctx, ManifestKey(prefix))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to unmarshal manifest: %w", err)
	}
	if manifest.FormatVersion != manifestVersion {
		return nil, fmt.Errorf("unsupported manifest version %d", manifest.FormatVersion)
	}

	return &manifest, nil
}

func encodeThing(t *thing.Thing) ThingRecord {
	rec := ThingRecord{
		ID:          t.ID,
		FrameGroups: make([]FrameGroupRecord, len(t.FrameGroups)),
	}
	for i, g := range t.FrameGroups {
		gr := FrameGroupRecord{
			Type:      g.Type.String(),
			Width:     g.Width,
			Height:    g.Height,
			Layers:    g.Layers,
			PatternX:  g.PatternX,
			PatternY:  g.PatternY,
			PatternZ:  g.PatternZ,
			Frames:    g.Frames,
			SpriteIDs: g.SpriteIDs,
		}
		for _, d := range g.Durations {
			gr.Durations = append(gr.Durations, DurationRecord{Min: d.Min, Max: d.Max})
		}
		rec.FrameGroups[i] = gr
	}
	return rec
}

func decodeThing(cat thing.Category, rec ThingRecord) (*thing.Thing, error) {
	t := &thing.Thing{
		ID:          rec.ID,
		Category:    cat,
		FrameGroups: make([]*thing.FrameGroup, len(rec.FrameGroups)),
	}
	for i, gr := range rec.FrameGroups {
		typ, err := parseGroupType(gr.Type)
		if err != nil {
			return nil, fmt.Errorf("%s %d: %w", cat, rec.ID, err)
		}
		g := &thing.FrameGroup{
			Type:     typ,
			Width:    gr.Width,
			Height:   gr.Height,
			Layers:   gr.Layers,
			PatternX: gr.PatternX,
			PatternY: gr.PatternY,
			PatternZ: gr.PatternZ,
			Frames:   gr.Frames,
		}
		if want := g.TotalSprites(); len(gr.SpriteIDs) != want {
			return nil, fmt.Errorf("%s %d: frame group has %d sprite slots, shape requires %d", cat, rec.ID, len(gr.SpriteIDs), want)
		}
		g.SpriteIDs = make([]uint32, len(gr.SpriteIDs))
		copy(g.SpriteIDs, gr.SpriteIDs)
		for _, d := range gr.Durations {
			g.Durations = append(g.Durations, thing.FrameDuration{Min: d.Min, Max: d.Max})
		}
		t.FrameGroups[i] = g
	}
	return t, nil
}

func parseGroupType(s string) (thing.GroupType, error) {
	switch s {
	case "default":
		return thing.GroupDefault, nil
	case "idle":
		return thing.GroupIdle, nil
	case "moving":
		return thing.GroupMoving, nil
	default:
		return 0, fmt.Errorf("unknown frame group type %q", s)
	}
}
