package board

import (
	"fmt"
	"strings"
)

// Event categories recorded by the board.
const (
	CatStart  = "start"
	CatReveal = "reveal"
	CatFlood  = "flood"
	CatFlag   = "flag"
	CatState  = "state"
)

// EventLogEntry is one recorded board event.
type EventLogEntry struct {
	Seq      int
	X, Y     int    // -1 for board-wide events
	Category string // start, reveal, flood, flag, state
	Key      string // specific event name within the category
	Value    string // human-readable detail
	NumVal   int    // optional numeric value (mine count, cells opened, ...)
}

// String formats the entry as a fixed-width log line.
//
//	[#007] (4,4)  reveal  open     value=0
func (e EventLogEntry) String() string {
	pos := "  --  "
	if e.X >= 0 && e.Y >= 0 {
		pos = fmt.Sprintf("(%d,%d)", e.X, e.Y)
	}
	return fmt.Sprintf("[#%03d] %-7s %-7s %-9s %s",
		e.Seq, pos, e.Category, e.Key, e.Value)
}

// EventLog collects structured board events. It is unbounded and
// machine-readable; on-screen views keep their own ring buffers.
type EventLog struct {
	entries []EventLogEntry
	verbose bool
	seq     int
}

// NewEventLog creates an EventLog. If verbose is true, per-cell flood entries
// are also recorded.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records a new entry.
func (el *EventLog) Add(x, y int, category, key, value string, numVal int) {
	el.seq++
	el.entries = append(el.entries, EventLogEntry{
		Seq:      el.seq,
		X:        x,
		Y:        y,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (el *EventLog) AddVerbose(x, y int, category, key, value string, numVal int) {
	if !el.verbose {
		return
	}
	el.Add(x, y, category, key, value, numVal)
}

// Len returns the number of recorded entries.
func (el *EventLog) Len() int {
	return len(el.entries)
}

// Entries returns all recorded entries.
func (el *EventLog) Entries() []EventLogEntry {
	return el.entries
}

// Since returns entries with a sequence number greater than seq.
func (el *EventLog) Since(seq int) []EventLogEntry {
	for i, e := range el.entries {
		if e.Seq > seq {
			return el.entries[i:]
		}
	}
	return nil
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (el *EventLog) Filter(category, key string) []EventLogEntry {
	var out []EventLogEntry
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

// CountCategory returns how many entries match the given category and key.
func (el *EventLog) CountCategory(category, key string) int {
	return len(el.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (el *EventLog) LastOf(category, key string) (EventLogEntry, bool) {
	entries := el.Filter(category, key)
	if len(entries) == 0 {
		return EventLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (el *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range el.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
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
