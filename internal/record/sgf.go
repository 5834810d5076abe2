// Package record formats placed stones as an SGF FF[4] game record.
package record

import (
	"fmt"
	"strings"
	"time"

	"github.com/Garsondee/fancy-go/internal/board"
)

// GameRecord holds the header and move list of one game.
type GameRecord struct {
	BoardSize   int
	Komi        float64
	PlayerBlack string
	PlayerWhite string
	Date        string
	moves       []string // ";B[pd]", ";W[dp]", ...
}

// New creates an empty record dated d.
func New(d time.Time) *GameRecord {
	return &GameRecord{
		BoardSize:   board.Size,
		Komi:        6.5,
		PlayerBlack: "Black",
		PlayerWhite: "White",
		Date:        d.Format("2006-01-02"),
	}
}

// FromMoves builds a record from a board's move list.
func FromMoves(moves []board.Move, d time.Time) *GameRecord {
	r := New(d)
	for _, m := range moves {
		r.Add(m)
	}
	return r
}

// sgfCoord converts 0-indexed board coordinates to an SGF letter pair.
// (0,0) -> "aa", (3,4) -> "de", (18,18) -> "ss".
func sgfCoord(p board.Position) string {
	return string(rune('a'+p.X)) + string(rune('a'+p.Y))
}

// Add appends a move.
func (r *GameRecord) Add(m board.Move) {
	colorChar := "B"
	if m.Color == board.White {
		colorChar = "W"
	}
	r.moves = append(r.moves, fmt.Sprintf(";%s[%s]", colorChar, sgfCoord(m.Pos)))
}

// Len returns the number of recorded moves.
func (r *GameRecord) Len() int { return len(r.moves) }

// String renders the full SGF text.
func (r *GameRecord) String() string {
	var b strings.Builder
	b.WriteString("(;GM[1]FF[4]CA[UTF-8]")
	b.WriteString("AP[fancy-go:1.0]")
	fmt.Fprintf(&b, "SZ[%d]", r.BoardSize)
	fmt.Fprintf(&b, "KM[%.1f]", r.Komi)
	fmt.Fprintf(&b, "PB[%s]", r.PlayerBlack)
	fmt.Fprintf(&b, "PW[%s]", r.PlayerWhite)
	fmt.Fprintf(&b, "DT[%s]", r.Date)
	b.WriteString("\n")
	for _, m := range r.moves {
		b.WriteString(m)
	}
	b.WriteString(")\n")
	return b.String()
}
