package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultKeyMap(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		keys     []string
		expected []string
	}{
		{name: "page up", keys: keys.PageUp.Keys(), expected: []string{"pgup", "b"}},
		{name: "page down", keys: keys.PageDown.Keys(), expected: []string{"pgdown", "f", " "}},
		{name: "top", keys: keys.Top.Keys(), expected: []string{"home", "g"}},
		{name: "bottom", keys: keys.Bottom.Keys(), expected: []string{"end", "G"}},
		{name: "filter", keys: keys.Filter.Keys(), expected: []string{"/"}},
		{name: "clear", keys: keys.ClearLogs.Keys(), expected: []string{"ctrl+r"}},
		{name: "switch view", keys: keys.SwitchView.Keys(), expected: []string{"tab"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.keys)
		})
	}
}

func Test_Help(t *testing.T) {
	keys := DefaultKeyMap()

	assert.Contains(t, keys.ShortHelp(), keys.Filter)
	assert.Len(t, keys.FullHelp(), 2)
	assert.Len(t, keys.FilterHelp(), 2)
	assert.Equal(t, "monitoring", keys.SwitchView.Help().Desc)
}
