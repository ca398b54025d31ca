package game

import (
	"github.com/ndanilko/flaptty/internal/core"
)

// Edge identifies which field edge an obstacle hangs from. The opposite
// edge of the obstacle is the open one the player flies past.
type Edge int

const (
	EdgeTop    Edge = iota // Spans from the field top down to the gap
	EdgeBottom             // Spans from below the gap to the field bottom
)

// String returns a human-readable name for the edge.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "Top"
	case EdgeBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Obstacle is one half of a spawned pair. Pair identity is explicit:
// scoring and despawn never infer it from the obstacle's position in the
// live slice, which changes as obstacles are removed.
type Obstacle struct {
	X    float64 // Left edge, continuous field coordinates
	Y    int     // Top edge in cells
	W    int     // Width in cells
	H    int     // Height in cells
	Edge Edge    // Which field edge this half hangs from
	Pair uint64  // Shared by both halves of one spawn

	passed bool // Scoring flag, flipped once per pair
}

// Bounds returns the obstacle's collision box.
func (o Obstacle) Bounds() core.RectF {
	return core.NewRectF(o.X, float64(o.Y), float64(o.W), float64(o.H))
}

// Entity is the falling actor. X is constant for the whole session; only
// Y and Vel change, and nothing clamps Y: leaving the field is detected
// as a terminal collision, not prevented.
type Entity struct {
	X   int     // Fixed horizontal position (left edge)
	Y   float64 // Vertical position (top edge), continuous
	W   int     // Hitbox width
	H   int     // Hitbox height
	Vel float64 // Vertical velocity, positive = down
}

// Bounds returns the entity's collision box.
func (e Entity) Bounds() core.RectF {
	return core.NewRectF(float64(e.X), e.Y, float64(e.W), float64(e.H))
}

// spawnPair appends a new obstacle pair at the field's right edge. The
// gap position is drawn uniformly so that the gap never starts closer
// than MinGapY to either field edge; NewSession has already verified the
// range is non-degenerate.
func (s *Session) spawnPair() {
	gapHeight := s.cfg.Obstacles.GapHeight
	minGapY := s.cfg.Obstacles.MinGapY
	maxGapY := s.fieldH - gapHeight - minGapY

	gapY := minGapY
	if maxGapY > minGapY {
		gapY = minGapY + s.rng.Intn(maxGapY-minGapY+1)
	}

	s.nextPair++
	width := s.cfg.Obstacles.Width
	x := float64(s.fieldW)

	s.obstacles = append(s.obstacles,
		Obstacle{
			X:    x,
			Y:    0,
			W:    width,
			H:    gapY,
			Edge: EdgeTop,
			Pair: s.nextPair,
		},
		Obstacle{
			X:    x,
			Y:    gapY + gapHeight,
			W:    width,
			H:    s.fieldH - (gapY + gapHeight),
			Edge: EdgeBottom,
			Pair: s.nextPair,
		},
	)
}
