package thing

// Frame group conversion for outfits. Clients with improved animations
// store outfits as two groups, idle (one frame) and moving; older
// clients store a single group. Both converters follow the same
// clone-if-changed discipline as the optimizer: converted things are
// deep copies, untouched things are returned as the original pointer.

// SplitFrameGroups converts single-group outfits into idle plus moving
// groups. The idle group is the first frame of the original group; the
// moving group is the original group unchanged. Outfits that already
// have more than one group, and things of other categories, pass
// through untouched.
func SplitFrameGroups(things []*Thing) ([]*Thing, int) {
	out := make([]*Thing, len(things))
	changed := 0
	for i, t := range things {
		if t.Category != CategoryOutfit || len(t.FrameGroups) != 1 {
			out[i] = t
			continue
		}
		src := t.FrameGroups[0]

		nt := t.Clone()
		moving := nt.FrameGroups[0]
		moving.Type = GroupMoving

		idle := extractFrame(src, 0)
		idle.Type = GroupIdle

		nt.FrameGroups = []*FrameGroup{idle, moving}
		out[i] = nt
		changed++
	}
	return out, changed
}

// MergeFrameGroups converts two-group outfits back into a single
// default group, keeping the moving group (it carries the full
// animation; the idle pose is its first frame).
func MergeFrameGroups(things []*Thing) ([]*Thing, int) {
	out := make([]*Thing, len(things))
	changed := 0
	for i, t := range things {
		if t.Category != CategoryOutfit || len(t.FrameGroups) < 2 {
			out[i] = t
			continue
		}

		keep := t.FrameGroups[len(t.FrameGroups)-1]
		for _, g := range t.FrameGroups {
			if g.Type == GroupMoving {
				keep = g
				break
			}
		}

		nt := &Thing{ID: t.ID, Category: t.Category}
		merged := keep.Clone()
		merged.Type = GroupDefault
		nt.FrameGroups = []*FrameGroup{merged}
		out[i] = nt
		changed++
	}
	return out, changed
}

// extractFrame builds a single-frame group holding frame f of src.
func extractFrame(src *FrameGroup, f int) *FrameGroup {
	g := NewFrameGroup(src.Type, src.Width, src.Height, src.Layers, src.PatternX, src.PatternY, src.PatternZ, 1)
	for pz := 0; pz < src.PatternZ; pz++ {
		for py := 0; py < src.PatternY; py++ {
			for px := 0; px < src.PatternX; px++ {
				for l := 0; l < src.Layers; l++ {
					for h := 0; h < src.Height; h++ {
						for w := 0; w < src.Width; w++ {
							id := src.SpriteIDs[src.SpriteIndex(w, h, l, px, py, pz, f)]
							g.SpriteIDs[g.SpriteIndex(w, h, l, px, py, pz, 0)] = id
						}
					}
				}
			}
		}
	}
	return g
}
