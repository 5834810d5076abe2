package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Garsondee/fancy-go/internal/board"
)

const hudFontSize = 14

var hudTextColor = color.RGBA{R: 224, G: 201, B: 242, A: 255}

// hud draws the status line, the move log and an optional TPS readout.
type hud struct {
	face  *text.GoTextFace
	debug bool
}

func newHUD(debug bool) (*hud, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load HUD font: %w", err)
	}
	return &hud{
		face:  &text.GoTextFace{Source: src, Size: hudFontSize},
		debug: debug,
	}, nil
}

// statusLine describes the side to move and the hovered intersection.
func statusLine(moveCount int, next board.Color, hover board.Position, hoverOK bool) string {
	s := fmt.Sprintf("Move %d   %s to play", moveCount+1, next)
	if hoverOK {
		s += "   " + hover.String()
	}
	return s
}

func (h *hud) draw(screen *ebiten.Image, status, moves string) {
	h.drawText(screen, status, 8, 4)
	h.drawText(screen, moves, 8, float64(screen.Bounds().Dy()-hudFontSize-6))
	if h.debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
			screen.Bounds().Dx()-120, 4)
	}
}

func (h *hud) drawText(screen *ebiten.Image, s string, x, y float64) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudTextColor)
	text.Draw(screen, s, h.face, op)
}
