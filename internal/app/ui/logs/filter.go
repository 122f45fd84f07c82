package logs

import (
	"strings"

	"github.com/gobwas/glob"

	"metroems/internal/app/logtail"
)

// Filter matches log entries against a case-insensitive glob.
// A pattern without glob characters matches as a substring.
type Filter struct {
	pattern string
	glob    glob.Glob
}

// NewFilter compiles a pattern, an empty pattern matches everything
func NewFilter(pattern string) (Filter, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return Filter{}, nil
	}

	expr := strings.ToLower(pattern)
	if !strings.ContainsAny(expr, "*?[{") {
		expr = "*" + expr + "*"
	}

	g, err := glob.Compile(expr)
	if err != nil {
		return Filter{}, err
	}

	return Filter{pattern: pattern, glob: g}, nil
}

// Pattern returns the pattern as typed
func (f Filter) Pattern() string {
	return f.pattern
}

// Active reports whether the filter excludes anything
func (f Filter) Active() bool {
	return f.glob != nil
}

// Match reports whether the entry's level or message matches
func (f Filter) Match(entry logtail.Entry) bool {
	if f.glob == nil {
		return true
	}

	return f.glob.Match(strings.ToLower(string(entry.Level)+" "+entry.Message)) ||
		f.glob.Match(strings.ToLower(entry.Message))
}
