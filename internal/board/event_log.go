package board

import (
	"fmt"
	"strings"
)

// EventEntry is one recorded event during a headless board run.
type EventEntry struct {
	Frame    int
	Pos      string // board notation, or "--" for global events
	Category string // place, anim, frame
	Key      string // specific event name within the category
	Value    string // human-readable detail
	NumVal   float64
}

// String formats the entry as a fixed-width log line.
//
//	[F=042] D16  place    accepted         black #3
func (e EventEntry) String() string {
	return fmt.Sprintf("[F=%03d] %-4s %-8s %-16s %s",
		e.Frame, e.Pos, e.Category, e.Key, e.Value)
}

// EventLog collects structured events during a headless run.
// Unlike the on-screen move log it is unbounded and machine-readable.
type EventLog struct {
	entries []EventEntry
	verbose bool
}

// NewEventLog creates an EventLog. If verbose is true, per-frame phase
// transitions are recorded as well.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records a new entry.
func (el *EventLog) Add(frame int, pos, category, key, value string, numVal float64) {
	el.entries = append(el.entries, EventEntry{
		Frame:    frame,
		Pos:      pos,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (el *EventLog) AddVerbose(frame int, pos, category, key, value string, numVal float64) {
	if !el.verbose {
		return
	}
	el.Add(frame, pos, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (el *EventLog) Entries() []EventEntry {
	return el.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (el *EventLog) Filter(category, key string) []EventEntry {
	var out []EventEntry
	for _, e := range el.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterPos returns entries for one intersection.
func (el *EventLog) FilterPos(pos string) []EventEntry {
	var out []EventEntry
	for _, e := range el.entries {
		if e.Pos == pos {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (el *EventLog) CountCategory(category, key string) int {
	return len(el.Filter(category, key))
}

// FirstOf returns the earliest entry matching category, key and value substring.
func (el *EventLog) FirstOf(category, key, valueSubstr string) (EventEntry, bool) {
	for _, e := range el.entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if valueSubstr == "" || strings.Contains(e.Value, valueSubstr) {
			return e, true
		}
	}
	return EventEntry{}, false
}

// Format returns the full log as a single string for t.Log output.
func (el *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range el.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
