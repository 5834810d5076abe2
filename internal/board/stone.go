package board

import "image/color"

// Color is the side a stone belongs to.
type Color int

const (
	Black Color = iota
	White
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == Black {
		return White
	}
	return Black
}

// Ring is one filled hexagon of a settled stone. Scale is relative to the
// stone radius.
type Ring struct {
	Scale float64
	Color color.RGBA
}

var (
	blackRings = []Ring{
		{Scale: 1.0, Color: BlackColor},
		{Scale: 0.84, Color: BorderInnerColor},
		{Scale: 0.68, Color: BlackColor},
		{Scale: 0.4, Color: BorderInnerColor},
	}
	whiteRings = []Ring{
		{Scale: 1.0, Color: WhiteColor},
		{Scale: 0.84, Color: WhitePurpleColor},
		{Scale: 0.68, Color: WhiteColor},
		{Scale: 0.48, Color: WhitePurpleColor},
		{Scale: 0.24, Color: WhiteColor},
	}
)

// Rings returns the ring list for a color, outermost first.
func Rings(c Color) []Ring {
	if c == White {
		return whiteRings
	}
	return blackRings
}

// stonePhase is either animating or settled.
type stonePhase interface {
	isStonePhase()
}

type animating struct {
	anim *Animation
}

type settled struct{}

func (animating) isStonePhase() {}
func (settled) isStonePhase()   {}

// Stone is a placed stone. Its center never changes after construction.
type Stone struct {
	color  Color
	center Point
	radius float64
	phase  stonePhase
}

// NewStone creates a stone whose placement animation starts immediately.
func NewStone(c Color, center Point, spacing float64) Stone {
	return Stone{
		color:  c,
		center: center,
		radius: spacing / 2,
		phase:  animating{anim: NewAnimation(center, spacing)},
	}
}

func (s *Stone) Color() Color  { return s.color }
func (s *Stone) Center() Point { return s.center }

// Animating reports whether the placement animation is still running.
func (s *Stone) Animating() bool {
	_, ok := s.phase.(animating)
	return ok
}

// Animation returns the running animation, if any.
func (s *Stone) Animation() (*Animation, bool) {
	if p, ok := s.phase.(animating); ok {
		return p.anim, true
	}
	return nil, false
}

// Update advances the animation. It returns true on the call that settles
// the stone.
func (s *Stone) Update(dt float64) bool {
	switch p := s.phase.(type) {
	case animating:
		p.anim.Advance(dt)
		if p.anim.Finished() {
			s.phase = settled{}
			return true
		}
	case settled:
	}
	return false
}

// Draw paints the animation while it runs, otherwise the static rings from
// the outside in.
func (s *Stone) Draw(c Canvas) {
	switch p := s.phase.(type) {
	case animating:
		p.anim.Draw(c)
	case settled:
		for _, r := range Rings(s.color) {
			hex := Hexagon(s.center, s.radius*r.Scale)
			c.FillPolygon(hex[:], r.Color)
		}
	}
}

// DrawShadow paints the offset shadow hexagon of a settled stone.
func (s *Stone) DrawShadow(c Canvas) {
	if _, ok := s.phase.(settled); !ok {
		return
	}
	hex := Hexagon(s.center.Add(Point{X: shadowOffset, Y: shadowOffset}), s.radius)
	c.FillPolygon(hex[:], ShadowColor)
}
