package logtail

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func entry(t, msg string) Entry {
	return Entry{Time: t, Level: LevelInfo, Message: msg}
}

func assertUnique(t *testing.T, entries []Entry) {
	t.Helper()

	seen := make(map[Key]bool)
	for _, e := range entries {
		assert.False(t, seen[e.Key()], "duplicate %v", e.Key())
		seen[e.Key()] = true
	}
}

func Test_ParseLevel(t *testing.T) {
	tests := []struct {
		raw      string
		expected Level
	}{
		{raw: "", expected: LevelInfo},
		{raw: "INFO", expected: LevelInfo},
		{raw: "debug", expected: LevelInfo},
		{raw: "trace", expected: LevelInfo},
		{raw: "WARN", expected: LevelWarn},
		{raw: "warning", expected: LevelWarn},
		{raw: "ERROR", expected: LevelError},
		{raw: "err", expected: LevelError},
		{raw: "CRITICAL", expected: LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.raw))
		})
	}
}

func Test_Tail_Merge(t *testing.T) {
	t.Run("same entry across two cycles is kept once", func(t *testing.T) {
		tail := NewTail(500)

		assert.Equal(t, 1, tail.Merge([]Entry{entry("t1", "A")}))
		assert.Equal(t, 0, tail.Merge([]Entry{entry("t1", "A")}))

		assert.Equal(t, []Entry{entry("t1", "A")}, tail.Snapshot())
	})

	t.Run("duplicates within one batch are skipped", func(t *testing.T) {
		tail := NewTail(500)

		added := tail.Merge([]Entry{entry("t1", "A"), entry("t1", "A"), entry("t1", "B")})

		assert.Equal(t, 2, added)
		assert.Equal(t, []Entry{entry("t1", "A"), entry("t1", "B")}, tail.Snapshot())
	})

	t.Run("existing entry is not overwritten", func(t *testing.T) {
		tail := NewTail(500)
		tail.Merge([]Entry{entry("t1", "A")})
		tail.Merge([]Entry{{Time: "t1", Level: LevelError, Message: "A"}})

		assert.Equal(t, LevelInfo, tail.Snapshot()[0].Level)
	})

	t.Run("merging the same batch twice is idempotent", func(t *testing.T) {
		batch := []Entry{entry("t1", "A"), entry("t2", "B"), entry("t2", "C")}

		once := NewTail(500)
		once.Merge(batch)

		twice := NewTail(500)
		twice.Merge(batch)
		twice.Merge(batch)

		assert.Equal(t, once.Snapshot(), twice.Snapshot())
	})

	t.Run("head eviction keeps most recent entries", func(t *testing.T) {
		tail := NewTail(3)

		for i := 1; i <= 5; i++ {
			tail.Merge([]Entry{entry(fmt.Sprintf("t%d", i), "A")})
		}

		assert.Equal(t, []Entry{entry("t3", "A"), entry("t4", "A"), entry("t5", "A")}, tail.Snapshot())
	})

	t.Run("evicted identity may return", func(t *testing.T) {
		tail := NewTail(1)
		tail.Merge([]Entry{entry("t1", "A")})
		tail.Merge([]Entry{entry("t2", "B")})

		assert.Equal(t, 1, tail.Merge([]Entry{entry("t1", "A")}))
	})

	t.Run("no duplicates for any merge sequence", func(t *testing.T) {
		tail := NewTail(7)

		for i := 0; i < 50; i++ {
			tail.Merge([]Entry{
				entry(fmt.Sprintf("t%d", i%4), "A"),
				entry(fmt.Sprintf("t%d", i%6), "B"),
				entry(fmt.Sprintf("t%d", i%4), "A"),
			})

			assert.LessOrEqual(t, tail.Len(), 7)
			assertUnique(t, tail.Snapshot())
		}
	})

	t.Run("zero limit is unlimited", func(t *testing.T) {
		tail := NewTail(0)

		for i := 0; i < 1000; i++ {
			tail.Merge([]Entry{entry(fmt.Sprintf("t%d", i), "A")})
		}

		assert.Equal(t, 1000, tail.Len())
		assert.Equal(t, 0, tail.Limit())
	})
}

func Test_Tail_Append(t *testing.T) {
	t.Run("250 synthetic entries into limit 200 keep the last 200", func(t *testing.T) {
		tail := NewTail(200)

		for i := 1; i <= 250; i++ {
			tail.Append(entry(fmt.Sprintf("2026-10-18 12:00:00.%03d", i), "Link stable"))
		}

		snapshot := tail.Snapshot()
		assert.Len(t, snapshot, 200)
		assert.Equal(t, "2026-10-18 12:00:00.051", snapshot[0].Time)
		assert.Equal(t, "2026-10-18 12:00:00.250", snapshot[199].Time)
		assertUnique(t, snapshot)
	})
}

func Test_Tail_Clear(t *testing.T) {
	tail := NewTail(0)
	tail.Merge([]Entry{entry("t1", "A")})
	tail.Clear()

	assert.Equal(t, 0, tail.Len())
	assert.Equal(t, 1, tail.Merge([]Entry{entry("t1", "A")}))
}

func Test_Normalize(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		raw      string
		expected []Entry
	}{
		{
			name: "boundary shape",
			raw:  `[{"time":"2026-10-18 09:29:59","type":"INFO","message":"Link stable"},{"time":"2026-10-18 09:29:59","type":"WARN","message":"RSSI below optimal threshold"}]`,
			expected: []Entry{
				{Time: "2026-10-18 09:29:59", Level: LevelInfo, Message: "Link stable"},
				{Time: "2026-10-18 09:29:59", Level: LevelWarn, Message: "RSSI below optimal threshold"},
			},
		},
		{
			name: "alternate field names inside logs key",
			raw:  `{"logs":[{"timestamp":"t1","level":"warning","msg":"A"}]}`,
			expected: []Entry{
				{Time: "t1", Level: LevelWarn, Message: "A"},
			},
		},
		{
			name: "entries key with defaults",
			raw:  `{"entries":[{"message":"B"}]}`,
			expected: []Entry{
				{Time: "2026-10-18 09:30:00", Level: LevelInfo, Message: "B"},
			},
		},
		{
			name: "entries without a message are skipped",
			raw:  `[{"time":"t1"},{"time":"t2","message":""},"text",{"time":"t3","msg":"C"}]`,
			expected: []Entry{
				{Time: "t3", Level: LevelInfo, Message: "C"},
			},
		},
		{
			name:     "unexpected shape yields nothing",
			raw:      `{"detail":"Session not found"}`,
			expected: []Entry{},
		},
		{
			name:     "invalid body yields nothing",
			raw:      `not json`,
			expected: []Entry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize([]byte(tt.raw), now))
		})
	}
}
