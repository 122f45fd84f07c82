package watcher

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Matcher decides whether a changed file name is one the console cares about
type Matcher interface {
	Match(name string) bool
}

type matcher struct {
	patterns []glob.Glob
}

// NewMatcher compiles the given glob patterns
func NewMatcher(patterns ...string) (Matcher, error) {
	m := &matcher{patterns: make([]glob.Glob, 0, len(patterns))}

	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, err
		}

		m.patterns = append(m.patterns, g)
	}

	return m, nil
}

// Match reports whether the name matches any pattern
func (m *matcher) Match(name string) bool {
	name = normalizePath(name)

	for _, p := range m.patterns {
		if p.Match(name) {
			return true
		}
	}

	return false
}

func normalizePath(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}
