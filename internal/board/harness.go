package board

import (
	"fmt"
	"math"
	"strings"
)

// TestBoard is a headless board harness used by tests and the placement
// report. It mirrors Game.Update without any ebiten dependency: scheduled
// clicks are applied first, then every stone advances one frame.
type TestBoard struct {
	Board *Board
	Log   *EventLog
	Frame int
	TPS   int

	layout Layout
	clicks []scheduledClick
	phases map[Position]AnimPhase
}

type scheduledClick struct {
	frame int
	x, y  float64
}

// boardOptionKind controls the pass in which an option is applied.
type boardOptionKind int

const (
	boardOptLayout boardOptionKind = iota // layout, tps, verbose: applied before the board exists
	boardOptScript                        // clicks: applied after the board is built
)

// BoardOption is a builder function applied to a TestBoard during construction.
type BoardOption struct {
	kind boardOptionKind
	fn   func(*TestBoard)
}

// WithOrigin moves intersection (0,0).
func WithOrigin(x, y float64) BoardOption {
	return BoardOption{boardOptLayout, func(tb *TestBoard) {
		tb.layout.Origin = Point{X: x, Y: y}
	}}
}

// WithSpacing sets the distance between lines.
func WithSpacing(s float64) BoardOption {
	return BoardOption{boardOptLayout, func(tb *TestBoard) {
		tb.layout.Spacing = s
	}}
}

// WithTolerance sets the placeable radius.
func WithTolerance(t float64) BoardOption {
	return BoardOption{boardOptLayout, func(tb *TestBoard) {
		tb.layout.Tolerance = t
	}}
}

// WithTPS sets how many frames make up one second.
func WithTPS(tps int) BoardOption {
	return BoardOption{boardOptLayout, func(tb *TestBoard) {
		tb.TPS = tps
	}}
}

// WithVerbose enables per-frame phase logging.
func WithVerbose(v bool) BoardOption {
	return BoardOption{boardOptLayout, func(tb *TestBoard) {
		tb.Log = NewEventLog(v)
	}}
}

// WithClick presses the pointer at (x, y) before the first frame.
func WithClick(x, y float64) BoardOption {
	return WithClickAt(0, x, y)
}

// WithClickAt presses the pointer at (x, y) at the start of the given frame.
func WithClickAt(frame int, x, y float64) BoardOption {
	return BoardOption{boardOptScript, func(tb *TestBoard) {
		tb.clicks = append(tb.clicks, scheduledClick{frame: frame, x: x, y: y})
	}}
}

// NewTestBoard constructs a TestBoard from the given options in two passes:
//  1. Layout (origin, spacing, tolerance, tps, verbose)
//  2. Scripted clicks
func NewTestBoard(opts ...BoardOption) *TestBoard {
	tb := &TestBoard{
		TPS:    60,
		Log:    NewEventLog(false),
		layout: DefaultLayout(),
		phases: make(map[Position]AnimPhase),
	}
	for _, o := range opts {
		if o.kind == boardOptLayout {
			o.fn(tb)
		}
	}
	tb.Board = New(tb.layout)
	for _, o := range opts {
		if o.kind == boardOptScript {
			o.fn(tb)
		}
	}
	return tb
}

// Click places the side to move at (x, y) immediately and logs the outcome.
func (tb *TestBoard) Click(x, y float64) (Move, bool) {
	m, ok := tb.Board.PlayAt(x, y)
	if !ok {
		pos := "--"
		if p, hit := tb.Board.Locate(x, y); hit {
			pos = p.String()
		}
		tb.Log.Add(tb.Frame, pos, "place", "rejected", fmt.Sprintf("(%.1f,%.1f)", x, y), 0)
		return m, false
	}
	tb.phases[m.Pos] = PhaseAiming
	tb.Log.Add(tb.Frame, m.Pos.String(), "place", "accepted", fmt.Sprintf("%s #%d", m.Color, m.Number), float64(m.Number))
	return m, true
}

// Step runs one frame.
func (tb *TestBoard) Step() {
	kept := tb.clicks[:0]
	for _, c := range tb.clicks {
		if c.frame == tb.Frame {
			tb.Click(c.x, c.y)
			continue
		}
		kept = append(kept, c)
	}
	tb.clicks = kept

	dt := 1 / float64(tb.TPS)
	settled := tb.Board.Update(dt)
	tb.Frame++

	tb.Board.Each(func(p Position, s *Stone) {
		a, ok := s.Animation()
		if !ok {
			return
		}
		ph := a.Phase()
		if ph != tb.phases[p] {
			tb.Log.AddVerbose(tb.Frame, p.String(), "anim", "phase", fmt.Sprintf("%s → %s", tb.phases[p], ph), a.Elapsed())
			tb.phases[p] = ph
		}
	})
	for _, p := range settled {
		delete(tb.phases, p)
		tb.Log.Add(tb.Frame, p.String(), "anim", "settled", "", 0)
	}
}

// RunFrames runs n frames.
func (tb *TestBoard) RunFrames(n int) {
	for i := 0; i < n; i++ {
		tb.Step()
	}
}

// RunSeconds runs enough frames to cover d seconds, plus one to absorb
// floating-point drift in the accumulated delta.
func (tb *TestBoard) RunSeconds(d float64) {
	tb.RunFrames(int(math.Ceil(d*float64(tb.TPS))) + 1)
}

// Render draws the current frame into a fresh Recorder.
func (tb *TestBoard) Render() *Recorder {
	r := &Recorder{}
	tb.Board.Draw(r)
	return r
}

// Diagram renders the board as text. Settled stones are X/O, animating
// stones x/o, star points '+'.
func (tb *TestBoard) Diagram() string {
	var grid [Size][Size]byte
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}
	for _, y := range starPoints {
		for _, x := range starPoints {
			grid[y][x] = '+'
		}
	}
	tb.Board.Each(func(p Position, s *Stone) {
		ch := byte('X')
		if s.Color() == White {
			ch = 'O'
		}
		if s.Animating() {
			ch += 'a' - 'A'
		}
		grid[p.Y][p.X] = ch
	})

	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < Size; x++ {
		sb.WriteByte(' ')
		sb.WriteByte(gtpColumns[x])
	}
	sb.WriteByte('\n')
	for y := 0; y < Size; y++ {
		fmt.Fprintf(&sb, "%3d", Size-y)
		for x := 0; x < Size; x++ {
			sb.WriteByte(' ')
			sb.WriteByte(grid[y][x])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
