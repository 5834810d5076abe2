package game

import (
	"fmt"
	"strings"

	"github.com/Garsondee/fancy-go/internal/board"
)

const moveLogMaxEntries = 8

// MoveEntry is a single line in the move log.
type MoveEntry struct {
	Number int
	Color  board.Color
	Pos    board.Position
}

func (e MoveEntry) String() string {
	c := "B"
	if e.Color == board.White {
		c = "W"
	}
	return fmt.Sprintf("%d.%s %s", e.Number, c, e.Pos)
}

// MoveLog is a ring buffer of the most recent placements shown in the HUD.
type MoveLog struct {
	entries []MoveEntry
	head    int
	count   int
}

// NewMoveLog creates a move log with a fixed capacity.
func NewMoveLog() *MoveLog {
	return &MoveLog{
		entries: make([]MoveEntry, moveLogMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (ml *MoveLog) Add(m board.Move) {
	ml.entries[ml.head] = MoveEntry{
		Number: m.Number,
		Color:  m.Color,
		Pos:    m.Pos,
	}
	ml.head = (ml.head + 1) % moveLogMaxEntries
	if ml.count < moveLogMaxEntries {
		ml.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (ml *MoveLog) Recent() []MoveEntry {
	result := make([]MoveEntry, ml.count)
	for i := 0; i < ml.count; i++ {
		idx := (ml.head - ml.count + i + moveLogMaxEntries) % moveLogMaxEntries
		result[i] = ml.entries[idx]
	}
	return result
}

// Line joins the recent moves into one HUD line.
func (ml *MoveLog) Line() string {
	recent := ml.Recent()
	parts := make([]string, len(recent))
	for i, e := range recent {
		parts[i] = e.String()
	}
	return strings.Join(parts, "  ")
}
