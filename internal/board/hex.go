package board

import (
	"image/color"
	"math"
)

// Point is a screen-space coordinate in pixels.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Segment is a straight line between two points.
type Segment struct {
	From, To Point
}

// Hexagon returns the six vertices of a regular hexagon. Vertex i sits at
// angle π/6·(2i+1), so the first vertex is 30° below the +X axis in screen space.
func Hexagon(center Point, radius float64) [6]Point {
	var pts [6]Point
	for i := range pts {
		a := math.Pi / 6 * float64(2*i+1)
		pts[i] = Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	return pts
}

// Canvas is the drawing surface every visual element paints through.
// The game package backs it with an ebiten image; tests use a Recorder.
type Canvas interface {
	StrokeLine(from, to Point, width float64, clr color.Color)
	StrokePolygon(pts []Point, width float64, clr color.Color)
	FillPolygon(pts []Point, clr color.Color)
	FillCircle(center Point, radius float64, clr color.Color)
	StrokeRect(min, max Point, width float64, clr color.Color)
}

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpLine OpKind = iota
	OpStrokePolygon
	OpFillPolygon
	OpFillCircle
	OpStrokeRect
)

func (k OpKind) String() string {
	switch k {
	case OpLine:
		return "line"
	case OpStrokePolygon:
		return "stroke_polygon"
	case OpFillPolygon:
		return "fill_polygon"
	case OpFillCircle:
		return "fill_circle"
	case OpStrokeRect:
		return "stroke_rect"
	}
	return "unknown"
}

// Op is one draw call captured by a Recorder.
type Op struct {
	Kind   OpKind
	Points []Point
	Radius float64
	Width  float64
	Color  color.Color
}

// Recorder is a Canvas that keeps every call in order instead of drawing.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) StrokeLine(from, to Point, width float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Points: []Point{from, to}, Width: width, Color: clr})
}

func (r *Recorder) StrokePolygon(pts []Point, width float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokePolygon, Points: append([]Point(nil), pts...), Width: width, Color: clr})
}

func (r *Recorder) FillPolygon(pts []Point, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillPolygon, Points: append([]Point(nil), pts...), Color: clr})
}

func (r *Recorder) FillCircle(center Point, radius float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, Points: []Point{center}, Radius: radius, Color: clr})
}

func (r *Recorder) StrokeRect(min, max Point, width float64, clr color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRect, Points: []Point{min, max}, Width: width, Color: clr})
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
