package board

import (
	"fmt"
	"math"
)

// Size is the number of lines in each direction.
const Size = 19

// Position is a grid intersection. X is the column, Y the row, both in [0, Size).
type Position struct {
	X, Y int
}

// gtpColumns skips 'I' as board coordinates traditionally do.
const gtpColumns = "ABCDEFGHJKLMNOPQRST"

// String formats the position in board notation, e.g. "D16". Row 1 is the bottom line.
func (p Position) String() string {
	if p.X < 0 || p.X >= Size || p.Y < 0 || p.Y >= Size {
		return "<invalid position>"
	}
	return fmt.Sprintf("%c%d", gtpColumns[p.X], Size-p.Y)
}

// Layout places the grid in window space.
type Layout struct {
	Origin    Point   // screen coordinate of intersection (0,0)
	Spacing   float64 // distance between adjacent lines
	Tolerance float64 // placeable radius around each line
}

// DefaultLayout matches a 1000×1000 window with a 50px margin.
func DefaultLayout() Layout {
	return Layout{
		Origin:    Point{X: 50, Y: 50},
		Spacing:   50,
		Tolerance: 10,
	}
}

// Extent is the length of one grid line.
func (l Layout) Extent() float64 {
	return float64(Size-1) * l.Spacing
}

// StoneRadius is the outer radius of a settled stone.
func (l Layout) StoneRadius() float64 {
	return l.Spacing / 2
}

// Mapper converts pointer coordinates relative to the board origin into
// grid positions.
type Mapper struct {
	Spacing   float64
	Tolerance float64
	N         int
}

// NewMapper builds a Mapper for a Size×Size grid with the layout's spacing.
func NewMapper(l Layout) Mapper {
	return Mapper{Spacing: l.Spacing, Tolerance: l.Tolerance, N: Size}
}

// Locate resolves a relative coordinate pair. It reports false when either
// axis falls outside the board or into the dead zone between tolerance bands.
func (m Mapper) Locate(relX, relY float64) (Position, bool) {
	x, ok := m.axis(relX)
	if !ok {
		return Position{}, false
	}
	y, ok := m.axis(relY)
	if !ok {
		return Position{}, false
	}
	if x < 0 || y < 0 || x >= m.N || y >= m.N {
		return Position{}, false
	}
	return Position{X: x, Y: y}, true
}

// axis snaps one coordinate. The band below index 0 is [-tol, tol); every
// later line accepts a remainder within tol on either side, checked
// low side first so overlapping bands favour the lower index.
func (m Mapper) axis(c float64) (int, bool) {
	switch {
	case c < -m.Tolerance:
		return 0, false
	case c < m.Tolerance:
		return 0, true
	}
	q := math.Floor(c / m.Spacing)
	// Reject before converting: NaN and huge values do not fit an int.
	if !(q < float64(m.N)) {
		return 0, false
	}
	r := c - q*m.Spacing
	switch {
	case r <= m.Tolerance:
		return int(q), true
	case r >= m.Spacing-m.Tolerance:
		return int(q) + 1, true
	}
	return 0, false
}

// Canonical returns the screen coordinate of an intersection.
func (l Layout) Canonical(p Position) Point {
	return Point{
		X: l.Origin.X + float64(p.X)*l.Spacing,
		Y: l.Origin.Y + float64(p.Y)*l.Spacing,
	}
}
