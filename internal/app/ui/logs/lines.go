package logs

import (
	"metroems/internal/app/logtail"
)

// lineCache keeps rendered entries so a refresh only renders what arrived since the last one.
// Rendered lines depend on the width, so a width change starts over.
type lineCache struct {
	width    int
	lines    map[logtail.Entry]string
	rendered int
}

func newLineCache() *lineCache {
	return &lineCache{lines: make(map[logtail.Entry]string)}
}

func (c *lineCache) line(entry logtail.Entry, width int) string {
	if width != c.width {
		c.reset(width)
	}

	if line, ok := c.lines[entry]; ok {
		return line
	}

	line := renderEntry(entry, width)
	c.lines[entry] = line
	c.rendered++

	return line
}

// prune drops lines of entries evicted from the tail once the cache outgrows it
func (c *lineCache) prune(entries []logtail.Entry) {
	if len(c.lines) <= 2*len(entries) {
		return
	}

	kept := make(map[logtail.Entry]string, len(entries))
	for _, entry := range entries {
		if line, ok := c.lines[entry]; ok {
			kept[entry] = line
		}
	}

	c.lines = kept
}

func (c *lineCache) reset(width int) {
	c.width = width
	clear(c.lines)
}
