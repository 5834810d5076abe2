package main

import (
	"flag"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Garsondee/fancy-go/internal/board"
)

type click struct {
	frame int
	x, y  float64
}

type runStats struct {
	accepted int
	rejected int
	frames   int

	firstAcceptFrame int
	lastSettleFrame  int
	unsettled        int
	settledAt        map[string]int
	settleSpan       map[string]int
	rejectedAt       []string
}

func main() {
	var clickList string
	var gap int
	var frames int
	var tps int
	var spacing float64
	var tolerance float64
	var verbose bool

	flag.StringVar(&clickList, "clicks", "200,200;250,200;250,205;225,225;500,500", "semicolon-separated x,y window coordinates")
	flag.IntVar(&gap, "gap", 10, "frames between scripted clicks")
	flag.IntVar(&frames, "frames", 180, "frames to run")
	flag.IntVar(&tps, "tps", 60, "frames per second")
	flag.Float64Var(&spacing, "spacing", 50, "point spacing in pixels")
	flag.Float64Var(&tolerance, "tolerance", 10, "placeable radius in pixels")
	flag.BoolVar(&verbose, "verbose", false, "print the full event log")
	flag.Parse()

	if frames <= 0 || tps <= 0 || gap < 0 {
		fmt.Println("error: -frames and -tps must be > 0, -gap must be >= 0")
		return
	}
	clicks, err := parseClicks(clickList, gap)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Placement Report ===\n")
	fmt.Printf("clicks=%d frames=%d tps=%d spacing=%.1f tolerance=%.1f\n\n", len(clicks), frames, tps, spacing, tolerance)

	opts := []board.BoardOption{
		board.WithSpacing(spacing),
		board.WithTolerance(tolerance),
		board.WithTPS(tps),
		board.WithVerbose(verbose),
	}
	for _, c := range clicks {
		opts = append(opts, board.WithClickAt(c.frame, c.x, c.y))
	}
	tb := board.NewTestBoard(opts...)
	tb.RunFrames(frames)

	rs := summarize(tb)
	printRun(rs)
	if verbose {
		fmt.Println("--- Event log ---")
		fmt.Print(tb.Log.Format())
		fmt.Println()
	}
	fmt.Println("--- Board ---")
	fmt.Print(tb.Diagram())
}

// parseClicks reads "x,y;x,y" and schedules click i at frame i*gap.
func parseClicks(list string, gap int) ([]click, error) {
	var out []click
	for i, part := range strings.Split(list, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		xy := strings.Split(part, ",")
		if len(xy) != 2 {
			return nil, fmt.Errorf("click %d: want x,y, got %q", i+1, part)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("click %d: bad x: %w", i+1, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("click %d: bad y: %w", i+1, err)
		}
		out = append(out, click{frame: len(out) * gap, x: x, y: y})
	}
	return out, nil
}

func summarize(tb *board.TestBoard) runStats {
	rs := runStats{
		frames:           tb.Frame,
		firstAcceptFrame: firstFrame(tb.Log.Entries(), "place", "accepted"),
		lastSettleFrame:  -1,
		settledAt:        map[string]int{},
		settleSpan:       map[string]int{},
	}
	for _, e := range tb.Log.Entries() {
		switch e.Category {
		case "place":
			switch e.Key {
			case "accepted":
				rs.accepted++
			case "rejected":
				rs.rejected++
				rs.rejectedAt = append(rs.rejectedAt, e.Value)
			}
		case "anim":
			if e.Key == "settled" {
				rs.settledAt[e.Pos] = e.Frame
				rs.settleSpan[e.Pos] = settleFrames(tb.Log, e.Pos)
				if e.Frame > rs.lastSettleFrame {
					rs.lastSettleFrame = e.Frame
				}
			}
		}
	}
	tb.Board.Each(func(_ board.Position, s *board.Stone) {
		if s.Animating() {
			rs.unsettled++
		}
	})
	return rs
}

func firstFrame(entries []board.EventEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Frame
		}
	}
	return -1
}

// settleFrames returns how many frames a stone animated, from its accepted
// placement to its settle event, or -1 if either is missing.
func settleFrames(log *board.EventLog, pos string) int {
	placed, settled := -1, -1
	for _, e := range log.FilterPos(pos) {
		switch {
		case e.Category == "place" && e.Key == "accepted":
			placed = e.Frame
		case e.Category == "anim" && e.Key == "settled":
			settled = e.Frame
		}
	}
	if placed < 0 || settled < 0 {
		return -1
	}
	return settled - placed
}

func printRun(rs runStats) {
	fmt.Printf("placements: accepted=%d rejected=%d\n", rs.accepted, rs.rejected)
	fmt.Printf("frames: run=%d first_accept=%d last_settle=%d still_animating=%d\n",
		rs.frames, rs.firstAcceptFrame, rs.lastSettleFrame, rs.unsettled)
	if len(rs.rejectedAt) > 0 {
		fmt.Printf("rejected_clicks: %s\n", strings.Join(rs.rejectedAt, " "))
	}
	if len(rs.settledAt) > 0 {
		positions := make([]string, 0, len(rs.settledAt))
		for p := range rs.settledAt {
			positions = append(positions, p)
		}
		sort.Strings(positions)
		parts := make([]string, len(positions))
		for i, p := range positions {
			parts[i] = fmt.Sprintf("%s@%d(+%d)", p, rs.settledAt[p], rs.settleSpan[p])
		}
		fmt.Printf("settled: %s\n", strings.Join(parts, " "))
	}
	fmt.Println()
}
