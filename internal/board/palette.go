package board

import "image/color"

// Board palette. Translucent entries use NRGBA so alpha stays straight.
var (
	BackgroundColor  = color.RGBA{R: 59, G: 64, B: 99, A: 255}
	LineColor        = color.RGBA{R: 110, G: 145, B: 194, A: 255}
	ShadowColor      = color.RGBA{R: 46, G: 54, B: 87, A: 255}
	BorderOuterColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BorderInnerColor = color.RGBA{R: 138, G: 138, B: 207, A: 255}
	BlackColor       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	WhiteColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	WhitePurpleColor = color.RGBA{R: 224, G: 201, B: 242, A: 255}
	PurpleColor      = color.NRGBA{R: 166, G: 143, B: 247, A: 77}
)

const (
	lineWidth       = 2.0
	borderWidth     = 4.0
	shadowOffset    = 8.0
	starPointRadius = 10.0
	outlineWidth    = 2.0
)

// starPoints are the hoshi indices on a 19×19 board.
var starPoints = [...]int{3, 9, 15}
