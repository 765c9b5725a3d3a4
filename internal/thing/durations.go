package thing

// NormalizeDurations sets every animated frame group's frame durations
// to the given range. Things are never mutated in place: a thing with
// at least one updated duration is replaced by a deep copy, unchanged
// things are returned as the original pointer. The second return value
// is the number of changed things.
func NormalizeDurations(things []*Thing, min, max int) ([]*Thing, int) {
	out := make([]*Thing, len(things))
	changed := 0
	for i, t := range things {
		nt := t
		cloned := false
		for gi, g := range t.FrameGroups {
			for di, d := range g.Durations {
				if d.Min == min && d.Max == max {
					continue
				}
				if !cloned {
					nt = t.Clone()
					cloned = true
				}
				nt.FrameGroups[gi].Durations[di] = FrameDuration{Min: min, Max: max}
			}
		}
		if cloned {
			changed++
		}
		out[i] = nt
	}
	return out, changed
}
