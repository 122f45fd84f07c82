package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"metroems/internal/config"
)

func Test_RenderTitle(t *testing.T) {
	result := RenderTitle()

	assert.Contains(t, result, config.AppName)
	assert.Contains(t, result, config.Version)
	assert.Contains(t, result, config.AppDescription)
}

func Test_RenderHelp(t *testing.T) {
	f := newFixture(t, false)
	root := f.cli.buildCommands()

	t.Run("root", func(t *testing.T) {
		result := renderHelp(root)

		for _, s := range []string{"Usage:", "console", "init", "demo-backend", "version", "Examples:"} {
			assert.Contains(t, result, s)
		}
		assert.NotContains(t, result, "completion")
	})

	t.Run("subcommand", func(t *testing.T) {
		sub, _, err := root.Find([]string{"init"})
		assert.NoError(t, err)

		result := renderHelp(sub)

		assert.Contains(t, result, "--dry-run")
		assert.Contains(t, result, "--backend-url")
		assert.NotContains(t, result, "Examples:")
	})
}
