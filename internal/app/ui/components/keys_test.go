package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Up.Keys(), "up")
	assert.Contains(t, km.Up.Keys(), "k")
	assert.Contains(t, km.Down.Keys(), "down")
	assert.Contains(t, km.Down.Keys(), "j")
	assert.Contains(t, km.SwitchView.Keys(), "tab")
	assert.Contains(t, km.ToggleTips.Keys(), "t")
	assert.Contains(t, km.Quit.Keys(), "q")
	assert.Contains(t, km.ForceQuit.Keys(), "ctrl+c")
}

func Test_KeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, []string{"tab"}, km.ShortHelp()[0].Keys())
	assert.Len(t, km.FullHelp(), 1)
	assert.Len(t, km.FullHelp()[0], 4)
}
