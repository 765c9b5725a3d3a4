package thing

// GroupType distinguishes an outfit's animation groups. Things other
// than outfits always carry a single GroupDefault frame group.
type GroupType int

const (
	GroupDefault GroupType = iota
	GroupIdle
	GroupMoving
)

func (g GroupType) String() string {
	switch g {
	case GroupDefault:
		return "default"
	case GroupIdle:
		return "idle"
	case GroupMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// FrameDuration is the display time range of one animation frame in
// milliseconds. Min == Max for fixed-duration frames.
type FrameDuration struct {
	Min int
	Max int
}

// FrameGroup is a multi-dimensional array of sprite references plus
// its shape metadata. SpriteIDs is laid out row-major with frame as
// the slowest axis and tile-width as the fastest; SpriteIndex is the
// single addressing function every consumer must use.
type FrameGroup struct {
	Type GroupType

	// Tile span of the drawn object.
	Width  int
	Height int

	Layers   int
	PatternX int
	PatternY int
	PatternZ int
	Frames   int

	// Durations has one entry per frame for animated groups, and is
	// nil for single-frame groups.
	Durations []FrameDuration

	// SpriteIDs holds one sprite reference per cell. Length is always
	// TotalSprites(). A zero entry is an empty cell.
	SpriteIDs []uint32
}

// NewFrameGroup creates a frame group of the given shape with all
// cells empty.
func NewFrameGroup(typ GroupType, width, height, layers, patternX, patternY, patternZ, frames int) *FrameGroup {
	g := &FrameGroup{
		Type:     typ,
		Width:    width,
		Height:   height,
		Layers:   layers,
		PatternX: patternX,
		PatternY: patternY,
		PatternZ: patternZ,
		Frames:   frames,
	}
	g.SpriteIDs = make([]uint32, g.TotalSprites())
	if frames > 1 {
		g.Durations = make([]FrameDuration, frames)
	}
	return g
}

// TotalSprites returns the number of cells in the group: the product
// of all shape dimensions.
func (g *FrameGroup) TotalSprites() int {
	return g.Width * g.Height * g.Layers * g.PatternX * g.PatternY * g.PatternZ * g.Frames
}

// SpriteIndex maps a cell coordinate to its flat position in
// SpriteIDs. The layout is fixed: frame is the slowest-varying axis,
// then pattern-z, pattern-y, pattern-x, layer, tile-y, tile-x.
func (g *FrameGroup) SpriteIndex(w, h, layer, patternX, patternY, patternZ, frame int) int {
	return ((((((frame%g.Frames)*g.PatternZ+patternZ)*g.PatternY+patternY)*g.PatternX+patternX)*g.Layers+layer)*g.Height+h)*g.Width + w
}

// Clone returns a deep copy of the frame group.
func (g *FrameGroup) Clone() *FrameGroup {
	out := &FrameGroup{
		Type:     g.Type,
		Width:    g.Width,
		Height:   g.Height,
		Layers:   g.Layers,
		PatternX: g.PatternX,
		PatternY: g.PatternY,
		PatternZ: g.PatternZ,
		Frames:   g.Frames,
	}
	if g.Durations != nil {
		out.Durations = make([]FrameDuration, len(g.Durations))
		copy(out.Durations, g.Durations)
	}
	if g.SpriteIDs != nil {
		out.SpriteIDs = make([]uint32, len(g.SpriteIDs))
		copy(out.SpriteIDs, g.SpriteIDs)
	}
	return out
}
