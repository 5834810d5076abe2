package record

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Garsondee/fancy-go/internal/board"
)

func TestSgfCoord(t *testing.T) {
	tests := []struct {
		x, y int
		want string
	}{
		{0, 0, "aa"},
		{3, 4, "de"},
		{18, 18, "ss"},
		{15, 3, "pd"},
		{3, 15, "dp"},
	}
	for _, tt := range tests {
		got := sgfCoord(board.Position{X: tt.x, Y: tt.y})
		if got != tt.want {
			t.Errorf("sgfCoord(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFromMoves(t *testing.T) {
	day := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	moves := []board.Move{
		{Number: 1, Pos: board.Position{X: 15, Y: 3}, Color: board.Black},
		{Number: 2, Pos: board.Position{X: 3, Y: 15}, Color: board.White},
	}
	r := FromMoves(moves, day)
	assert.Equal(t, 2, r.Len())

	out := r.String()
	assert.True(t, strings.HasPrefix(out, "(;GM[1]FF[4]CA[UTF-8]"))
	assert.Contains(t, out, "SZ[19]")
	assert.Contains(t, out, "DT[2026-10-19]")
	assert.Contains(t, out, ";B[pd];W[dp])")
}

func TestFromBoardPlacements(t *testing.T) {
	b := board.New(board.DefaultLayout())
	b.PlayAt(50, 50)
	b.PlayAt(50, 50) // rejected
	b.PlayAt(950, 950)

	out := FromMoves(b.Moves(), time.Now()).String()
	assert.Contains(t, out, ";B[aa];W[ss])")
}

func TestEmptyRecord(t *testing.T) {
	out := New(time.Now()).String()
	assert.True(t, strings.HasSuffix(out, "\n)\n"))
}
