package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metroems/internal/app/logtail"
)

func Test_NewFilter(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		active    bool
		expectErr bool
	}{
		{name: "empty", pattern: "", active: false},
		{name: "blank", pattern: "   ", active: false},
		{name: "substring", pattern: "rssi", active: true},
		{name: "glob", pattern: "snmp*", active: true},
		{name: "invalid", pattern: "[oops", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.pattern)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.active, f.Active())
		})
	}
}

func Test_Filter_Match(t *testing.T) {
	warn := logtail.Entry{Time: "t", Level: logtail.LevelWarn, Message: "RSSI below optimal threshold"}
	info := logtail.Entry{Time: "t", Level: logtail.LevelInfo, Message: "SNMP poll success"}

	tests := []struct {
		name    string
		pattern string
		entry   logtail.Entry
		expect  bool
	}{
		{name: "empty matches all", pattern: "", entry: info, expect: true},
		{name: "case insensitive substring", pattern: "rssi", entry: warn, expect: true},
		{name: "substring miss", pattern: "rssi", entry: info, expect: false},
		{name: "glob on message", pattern: "snmp*", entry: info, expect: true},
		{name: "glob on level", pattern: "warn *", entry: warn, expect: true},
		{name: "glob on level miss", pattern: "warn *", entry: info, expect: false},
		{name: "question mark", pattern: "?nmp*", entry: info, expect: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFilter(tt.pattern)
			require.NoError(t, err)

			assert.Equal(t, tt.expect, f.Match(tt.entry))
		})
	}
}
