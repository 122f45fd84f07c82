package watcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewMatcher(t *testing.T) {
	tests := []struct {
		name      string
		patterns  []string
		expectErr bool
	}{
		{name: "config file", patterns: []string{"metroems.yaml"}},
		{name: "several patterns", patterns: []string{"metroems.yaml", ".env", "*.yml"}},
		{name: "no patterns", patterns: nil},
		{name: "invalid pattern", patterns: []string{"[invalid"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatcher(tt.patterns...)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, m)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, m)
		})
	}
}

func Test_Matcher_Match(t *testing.T) {
	m, err := NewMatcher("metroems.yaml", ".env")
	require.NoError(t, err)

	tests := []struct {
		name   string
		file   string
		expect bool
	}{
		{name: "config file", file: "metroems.yaml", expect: true},
		{name: "dot slash prefix", file: "./metroems.yaml", expect: true},
		{name: "env file", file: ".env", expect: true},
		{name: "editor swap file", file: ".metroems.yaml.swp", expect: false},
		{name: "backup file", file: "metroems.yaml~", expect: false},
		{name: "other file", file: "main.go", expect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, m.Match(tt.file))
		})
	}
}
