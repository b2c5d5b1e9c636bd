// internal/advisor/log.go
package advisor

import "time"

// EntryKind tells wave descriptions from summaries.
type EntryKind string

const (
	EntryWave    EntryKind = "WAVE"
	EntrySummary EntryKind = "SUMMARY"
)

// DefaultLogCap is how many advisor messages are kept.
const DefaultLogCap = 3

// Entry is one advisor message.
type Entry struct {
	Kind EntryKind
	Wave int
	Text string
	At   time.Time
}

// Log keeps the most recent entries, newest first.
type Log struct {
	cap     int
	entries []Entry
}

func NewLog(capacity int) *Log {
	if capacity < 1 {
		capacity = DefaultLogCap
	}
	return &Log{cap: capacity, entries: make([]Entry, 0, capacity)}
}

// Add prepends e and drops the oldest entry beyond capacity.
func (l *Log) Add(e Entry) {
	l.entries = append([]Entry{e}, l.entries...)
	if len(l.entries) > l.cap {
		l.entries = l.entries[:l.cap]
	}
}

// Entries returns a copy, newest first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	return len(l.entries)
}

func (l *Log) Clear() {
	l.entries = l.entries[:0]
}
