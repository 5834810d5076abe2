package board

import (
	"image/color"
	"math"
)

// Phase boundaries in seconds of elapsed animation time.
const (
	AimEnd    = 0.5 // aiming hexagon has collapsed to one spacing
	FlashEnd  = 0.9 // flashing window is [AimEnd, FlashEnd)
	RingStart = 0.9
	RingEnd   = 1.5 // terminal threshold

	flashPeriod = 0.1
)

// Geometry multipliers, relative to the grid spacing.
const (
	aimStartScale   = 4.0
	crosshairScale  = 1.0
	tickScale       = 0.3
	ringStepScale   = 0.5
	ringGapScale    = 0.08
	ringPairs       = 3
	aimOutlineWidth = 2.0
)

// ringColors fade outward: the innermost pair is the most opaque.
var ringColors = [ringPairs]color.NRGBA{
	{R: 166, G: 143, B: 247, A: 153},
	{R: 166, G: 143, B: 247, A: 102},
	{R: 166, G: 143, B: 247, A: 51},
}

// AnimPhase names the window an elapsed time falls in.
type AnimPhase int

const (
	PhaseAiming AnimPhase = iota
	PhaseFlashing
	PhaseRings
	PhaseDone
)

func (p AnimPhase) String() string {
	switch p {
	case PhaseAiming:
		return "aiming"
	case PhaseFlashing:
		return "flashing"
	case PhaseRings:
		return "rings"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// PhaseAt classifies an elapsed time.
func PhaseAt(elapsed float64) AnimPhase {
	switch {
	case elapsed < AimEnd:
		return PhaseAiming
	case elapsed < FlashEnd:
		return PhaseFlashing
	case elapsed < RingEnd:
		return PhaseRings
	}
	return PhaseDone
}

// RingPair is two nested hexagon outlines sharing one color.
type RingPair struct {
	Outer, Inner float64
	Color        color.NRGBA
}

// Frame is the complete geometry of an animation at one instant.
type Frame struct {
	Center      Point
	OuterRadius float64
	Outer       [6]Point
	Crosshair   [4]Segment // +X, -X, +Y, -Y; From is the far end
	Ticks       [6]Segment // From sits on an Outer vertex
	Flash       bool
	FlashHex    [6]Point
	Rings       []RingPair // empty outside [RingStart, RingEnd)
}

// FrameAt computes the animation geometry for a stone centred at center on a
// grid with the given spacing. It depends on nothing but its arguments.
func FrameAt(center Point, spacing, elapsed float64) Frame {
	scale := 1 - elapsed/AimEnd
	if scale < 0 {
		scale = 0
	}
	if scale > 1 {
		scale = 1
	}
	shrink := aimStartScale * spacing * scale

	f := Frame{Center: center}
	// Interpolates from aimStartScale spacings down to exactly one at AimEnd.
	f.OuterRadius = spacing + (aimStartScale-1)*spacing*scale
	f.Outer = Hexagon(center, f.OuterRadius)

	inner := math.Max(shrink, spacing/2)
	outer := inner + crosshairScale*spacing
	dirs := [4]Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	for i, d := range dirs {
		f.Crosshair[i] = Segment{
			From: Point{X: center.X + d.X*outer, Y: center.Y + d.Y*outer},
			To:   Point{X: center.X + d.X*inner, Y: center.Y + d.Y*inner},
		}
	}

	tick := tickScale * spacing
	for i, v := range f.Outer {
		ux := (v.X - center.X) / f.OuterRadius
		uy := (v.Y - center.Y) / f.OuterRadius
		f.Ticks[i] = Segment{From: v, To: Point{X: v.X + ux*tick, Y: v.Y + uy*tick}}
	}

	if elapsed >= AimEnd && elapsed < FlashEnd {
		if math.Mod(elapsed-AimEnd, flashPeriod) >= flashPeriod/2 {
			f.Flash = true
			f.FlashHex = Hexagon(center, spacing/2)
		}
	}

	if elapsed >= RingStart && elapsed < RingEnd {
		p := (elapsed - RingStart) / (RingEnd - RingStart)
		stoneR := spacing / 2
		gap := ringGapScale * spacing
		f.Rings = make([]RingPair, ringPairs)
		for i := range f.Rings {
			r := math.Max(stoneR+float64(i+1)*ringStepScale*spacing*(1-p), stoneR)
			f.Rings[i] = RingPair{Outer: r, Inner: r - gap, Color: ringColors[i]}
		}
	}
	return f
}

// Draw paints the frame: aiming geometry first, then the flash, then rings.
func (f Frame) Draw(c Canvas) {
	c.StrokePolygon(f.Outer[:], aimOutlineWidth, WhitePurpleColor)
	for _, s := range f.Crosshair {
		c.StrokeLine(s.From, s.To, aimOutlineWidth, WhiteColor)
	}
	for _, s := range f.Ticks {
		c.StrokeLine(s.From, s.To, aimOutlineWidth, WhitePurpleColor)
	}
	if f.Flash {
		c.StrokePolygon(f.FlashHex[:], aimOutlineWidth, WhiteColor)
	}
	// Largest pair first so smaller ones blend over it.
	for i := len(f.Rings) - 1; i >= 0; i-- {
		rp := f.Rings[i]
		outer := Hexagon(f.Center, rp.Outer)
		inner := Hexagon(f.Center, rp.Inner)
		c.StrokePolygon(outer[:], aimOutlineWidth, rp.Color)
		c.StrokePolygon(inner[:], aimOutlineWidth, rp.Color)
	}
}

// Animation is the placement effect owned by a single stone.
type Animation struct {
	center   Point
	spacing  float64
	elapsed  float64
	finished bool
}

// NewAnimation starts an animation at elapsed time zero.
func NewAnimation(center Point, spacing float64) *Animation {
	return &Animation{center: center, spacing: spacing}
}

// Advance adds dt seconds. Once finished, the flag never clears.
func (a *Animation) Advance(dt float64) {
	a.elapsed += dt
	if a.elapsed >= RingEnd {
		a.finished = true
	}
}

// Elapsed returns the accumulated time in seconds.
func (a *Animation) Elapsed() float64 { return a.elapsed }

// Finished reports whether the terminal threshold has been reached.
func (a *Animation) Finished() bool { return a.finished }

// Phase returns the window the animation is currently in.
func (a *Animation) Phase() AnimPhase { return PhaseAt(a.elapsed) }

// Frame returns the current geometry.
func (a *Animation) Frame() Frame {
	return FrameAt(a.center, a.spacing, a.elapsed)
}

// Draw paints the current frame.
func (a *Animation) Draw(c Canvas) {
	a.Frame().Draw(c)
}
