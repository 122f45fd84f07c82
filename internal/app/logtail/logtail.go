package logtail

import (
	"strings"
)

// Level is the severity of a device log entry
type Level string

// Log levels
const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// TimeFormat is the layout used for generated entry timestamps
const TimeFormat = "2006-01-02 15:04:05"

// ParseLevel maps boundary severities onto the three console levels
func ParseLevel(raw string) Level {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR", "ERR", "CRITICAL", "FATAL":
		return LevelError
	default:
		return LevelInfo
	}
}

// Entry is one immutable device log line
type Entry struct {
	Time    string
	Level   Level
	Message string
}

// Key identifies an entry for deduplication
type Key struct {
	Time    string
	Message string
}

// Key returns the identity of the entry
func (e Entry) Key() Key {
	return Key{Time: e.Time, Message: e.Message}
}

// Tail is a bounded, deduplicated, arrival ordered buffer of entries
type Tail struct {
	entries []Entry
	seen    map[Key]int
	limit   int
}

// NewTail creates a tail that keeps at most limit entries, zero means unlimited
func NewTail(limit int) *Tail {
	if limit < 0 {
		limit = 0
	}

	return &Tail{
		seen:  make(map[Key]int),
		limit: limit,
	}
}

// Merge adds entries whose identity is not yet present and returns how many were added
func (t *Tail) Merge(batch []Entry) int {
	added := 0

	for _, entry := range batch {
		key := entry.Key()
		if _, ok := t.seen[key]; ok {
			continue
		}

		t.push(entry)
		added++
	}

	t.evict()

	return added
}

// Append adds an entry without checking identity
func (t *Tail) Append(entry Entry) {
	t.push(entry)
	t.evict()
}

// Clear drops all entries
func (t *Tail) Clear() {
	t.entries = nil
	t.seen = make(map[Key]int)
}

// Snapshot returns a copy of the entries, oldest first
func (t *Tail) Snapshot() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)

	return out
}

// Len returns the number of entries
func (t *Tail) Len() int {
	return len(t.entries)
}

// Limit returns the configured cap, zero means unlimited
func (t *Tail) Limit() int {
	return t.limit
}

func (t *Tail) push(entry Entry) {
	t.entries = append(t.entries, entry)
	t.seen[entry.Key()]++
}

func (t *Tail) evict() {
	if t.limit == 0 || len(t.entries) <= t.limit {
		return
	}

	over := len(t.entries) - t.limit
	for _, entry := range t.entries[:over] {
		key := entry.Key()

		t.seen[key]--
		if t.seen[key] <= 0 {
			delete(t.seen, key)
		}
	}

	t.entries = append(t.entries[:0:0], t.entries[over:]...)
}
