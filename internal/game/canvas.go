package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/fancy-go/internal/board"
)

// screenCanvas paints board geometry onto an ebiten image.
type screenCanvas struct {
	dst *ebiten.Image
}

func (c screenCanvas) StrokeLine(from, to board.Point, width float64, clr color.Color) {
	vector.StrokeLine(c.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), clr, true)
}

func (c screenCanvas) StrokePolygon(pts []board.Point, width float64, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	var path vector.Path
	polygonPath(&path, pts)
	opts := &vector.DrawPathOptions{AntiAlias: true}
	opts.ColorScale.ScaleWithColor(clr)
	vector.StrokePath(c.dst, &path, &vector.StrokeOptions{Width: float32(width), LineJoin: vector.LineJoinMiter, MiterLimit: 4}, opts)
}

func (c screenCanvas) FillPolygon(pts []board.Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	polygonPath(&path, pts)
	opts := &vector.DrawPathOptions{AntiAlias: true}
	opts.ColorScale.ScaleWithColor(clr)
	vector.FillPath(c.dst, &path, &vector.FillOptions{}, opts)
}

func (c screenCanvas) FillCircle(center board.Point, radius float64, clr color.Color) {
	vector.FillCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

func (c screenCanvas) StrokeRect(min, max board.Point, width float64, clr color.Color) {
	vector.StrokeRect(c.dst, float32(min.X), float32(min.Y), float32(max.X-min.X), float32(max.Y-min.Y), float32(width), clr, true)
}

func polygonPath(path *vector.Path, pts []board.Point) {
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
}
