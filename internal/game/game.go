package game

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/fancy-go/internal/board"
	"github.com/Garsondee/fancy-go/internal/config"
	"github.com/Garsondee/fancy-go/internal/record"
)

// Sounder plays the placement cue.
type Sounder interface {
	PlayPlacement(c board.Color)
}

// Option customises a Game at construction.
type Option func(*Game)

// WithSound plays a cue on every accepted placement.
func WithSound(s Sounder) Option {
	return func(g *Game) { g.sound = s }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(g *Game) { g.copyText = write }
}

// WithClock replaces time.Now for record dates.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

type Game struct {
	width  int
	height int
	board  *board.Board
	moves  *MoveLog
	hud    *hud

	sound    Sounder
	copyText func(string) error
	now      func() time.Time

	// Pointer state from the last handled frame.
	cursor          board.Cursor
	hover           board.Position
	hoverOK         bool
	prevMouseLeft   bool
	prevMouseMiddle bool
}

// New builds a game from a validated config.
func New(cfg *config.Config, opts ...Option) (*Game, error) {
	h, err := newHUD(cfg.Level() >= logrus.DebugLevel)
	if err != nil {
		return nil, err
	}
	g := &Game{
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		board:    board.New(cfg.Layout()),
		moves:    NewMoveLog(),
		hud:      h,
		copyText: clipboard.WriteAll,
		now:      time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	return g, nil
}

// Board exposes the board for tools and tests.
func (g *Game) Board() *board.Board { return g.board }

func (g *Game) Update() error {
	// Input first so a click lands before this frame's animation step and draw.
	g.handleInput()
	g.advance(1 / float64(ebiten.TPS()))
	return nil
}

// handleInput reads the pointer and applies the cursor the board asks for.
func (g *Game) handleInput() {
	mx, my := ebiten.CursorPosition()
	prev := g.cursor
	cur := g.pointer(float64(mx), float64(my),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle))
	if cur != prev {
		ebiten.SetCursorShape(cursorShape(cur))
	}
}

// pointer processes one frame of pointer state. Buttons are edge-triggered.
// It returns the cursor to show afterwards.
func (g *Game) pointer(x, y float64, left, middle bool) board.Cursor {
	if left && !g.prevMouseLeft {
		g.play(x, y)
	}
	g.prevMouseLeft = left

	if middle && !g.prevMouseMiddle {
		if err := g.exportRecord(); err != nil {
			logrus.WithError(err).Warn("could not export game record")
		}
	}
	g.prevMouseMiddle = middle

	g.hover, g.hoverOK = g.board.Locate(x, y)
	g.cursor = g.board.Hover(x, y)
	return g.cursor
}

func (g *Game) play(x, y float64) {
	m, ok := g.board.PlayAt(x, y)
	if !ok {
		return
	}
	g.moves.Add(m)
	if g.sound != nil {
		g.sound.PlayPlacement(m.Color)
	}
	logrus.WithFields(logrus.Fields{
		"move":  m.Number,
		"color": m.Color,
		"pos":   m.Pos.String(),
	}).Info("stone placed")
}

// advance steps every animation by dt seconds.
func (g *Game) advance(dt float64) {
	g.board.Update(dt)
}

// exportRecord copies the SGF record of the game so far to the clipboard.
func (g *Game) exportRecord() error {
	moves := g.board.Moves()
	sgf := record.FromMoves(moves, g.now()).String()
	if err := g.copyText(sgf); err != nil {
		return fmt.Errorf("copy record to clipboard: %w", err)
	}
	logrus.WithField("moves", len(moves)).Info("game record copied to clipboard")
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(board.BackgroundColor)
	g.board.Draw(screenCanvas{dst: screen})
	g.hud.draw(screen, g.status(), g.moves.Line())
}

func (g *Game) status() string {
	return statusLine(len(g.board.Moves()), g.board.Next(), g.hover, g.hoverOK)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func cursorShape(c board.Cursor) ebiten.CursorShapeType {
	if c == board.CursorPointer {
		return ebiten.CursorShapePointer
	}
	return ebiten.CursorShapeDefault
}
