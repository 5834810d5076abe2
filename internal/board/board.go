package board

import (
	"image/color"

	"github.com/sirupsen/logrus"
)

// Cursor is the pointer affordance the surrounding window should show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
)

// cell is a tagged optional stone.
type cell struct {
	occupied bool
	stone    Stone
}

// Move is one accepted placement.
type Move struct {
	Number int // 1-based
	Pos    Position
	Color  Color
}

// Board owns the grid of stones. Cells are filled once and never cleared.
type Board struct {
	layout Layout
	mapper Mapper
	cells  [Size][Size]cell
	moves  []Move
	next   Color
}

// New creates an empty board. Black moves first.
func New(l Layout) *Board {
	return &Board{
		layout: l,
		mapper: NewMapper(l),
		next:   Black,
	}
}

// Layout returns the board's screen layout.
func (b *Board) Layout() Layout { return b.layout }

// Next returns the color PlayAt will place.
func (b *Board) Next() Color { return b.next }

// Locate maps a window coordinate to an intersection.
func (b *Board) Locate(x, y float64) (Position, bool) {
	return b.mapper.Locate(x-b.layout.Origin.X, y-b.layout.Origin.Y)
}

// Get returns the stone at p, if the cell is occupied.
func (b *Board) Get(p Position) (*Stone, bool) {
	if p.X < 0 || p.X >= Size || p.Y < 0 || p.Y >= Size {
		return nil, false
	}
	c := &b.cells[p.Y][p.X]
	if !c.occupied {
		return nil, false
	}
	return &c.stone, true
}

func (b *Board) set(p Position, s Stone) {
	b.cells[p.Y][p.X] = cell{occupied: true, stone: s}
}

// IsPlaceable reports whether a window coordinate resolves to an empty cell.
func (b *Board) IsPlaceable(x, y float64) bool {
	p, ok := b.Locate(x, y)
	if !ok {
		return false
	}
	return !b.cells[p.Y][p.X].occupied
}

// Hover returns the cursor the window should show at (x, y).
func (b *Board) Hover(x, y float64) Cursor {
	if b.IsPlaceable(x, y) {
		return CursorPointer
	}
	return CursorDefault
}

// Place puts a stone of color c at the intersection under (x, y). Misses and
// occupied cells are no-ops; the bool reports whether a stone was placed.
func (b *Board) Place(x, y float64, c Color) (Position, bool) {
	p, ok := b.Locate(x, y)
	if !ok {
		logrus.WithFields(logrus.Fields{"x": x, "y": y}).Debug("placement missed the grid")
		return Position{}, false
	}
	if b.cells[p.Y][p.X].occupied {
		logrus.WithFields(logrus.Fields{"pos": p.String(), "color": c}).Debug("placement on occupied point ignored")
		return p, false
	}
	b.set(p, NewStone(c, b.layout.Canonical(p), b.layout.Spacing))
	b.moves = append(b.moves, Move{Number: len(b.moves) + 1, Pos: p, Color: c})
	logrus.WithFields(logrus.Fields{"pos": p.String(), "color": c, "move": len(b.moves)}).Debug("stone placed")
	return p, true
}

// PlayAt places the side to move and hands the turn over on success.
func (b *Board) PlayAt(x, y float64) (Move, bool) {
	if _, ok := b.Place(x, y, b.next); !ok {
		return Move{}, false
	}
	b.next = b.next.Other()
	return b.moves[len(b.moves)-1], true
}

// Moves returns accepted placements in order.
func (b *Board) Moves() []Move {
	return b.moves
}

// Each visits occupied cells in row-major order.
func (b *Board) Each(fn func(Position, *Stone)) {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			c := &b.cells[y][x]
			if c.occupied {
				fn(Position{X: x, Y: y}, &c.stone)
			}
		}
	}
}

// Update advances every stone by dt seconds and returns the positions that
// settled during this call.
func (b *Board) Update(dt float64) []Position {
	var done []Position
	b.Each(func(p Position, s *Stone) {
		if s.Update(dt) {
			done = append(done, p)
			logrus.WithField("pos", p.String()).Debug("stone settled")
		}
	})
	return done
}

// Draw composites one frame. Shadows go first so every foreground element
// covers them; stones go last so they cover the grid.
func (b *Board) Draw(c Canvas) {
	b.drawLines(c, Point{X: shadowOffset, Y: shadowOffset}, ShadowColor)
	b.Each(func(_ Position, s *Stone) { s.DrawShadow(c) })
	b.drawLines(c, Point{}, LineColor)
	b.drawBorder(c)
	b.drawStarPoints(c)
	b.Each(func(_ Position, s *Stone) { s.Draw(c) })
}

func (b *Board) drawLines(c Canvas, offset Point, clr color.Color) {
	base := b.layout.Origin.Add(offset)
	ext := b.layout.Extent()
	for i := 0; i < Size; i++ {
		d := float64(i) * b.layout.Spacing
		c.StrokeLine(Point{X: base.X + d, Y: base.Y}, Point{X: base.X + d, Y: base.Y + ext}, lineWidth, clr)
		c.StrokeLine(Point{X: base.X, Y: base.Y + d}, Point{X: base.X + ext, Y: base.Y + d}, lineWidth, clr)
	}
}

func (b *Board) drawBorder(c Canvas) {
	o := b.layout.Origin
	ext := b.layout.Extent()
	m := b.layout.Spacing / 2
	c.StrokeRect(Point{X: o.X - m, Y: o.Y - m}, Point{X: o.X + ext + m, Y: o.Y + ext + m}, borderWidth, BorderOuterColor)
	m -= borderWidth * 1.5
	c.StrokeRect(Point{X: o.X - m, Y: o.Y - m}, Point{X: o.X + ext + m, Y: o.Y + ext + m}, borderWidth/2, BorderInnerColor)
}

func (b *Board) drawStarPoints(c Canvas) {
	for _, y := range starPoints {
		for _, x := range starPoints {
			c.FillCircle(b.layout.Canonical(Position{X: x, Y: y}), starPointRadius, LineColor)
		}
	}
}
