package logtail

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Field aliases accepted from the device-session boundary, in lookup order
var (
	timeAliases    = []string{"time", "timestamp"}
	levelAliases   = []string{"level", "type"}
	messageAliases = []string{"message", "msg"}
	listKeys       = []string{"logs", "entries"}
)

// Normalize converts a raw log response into canonical entries.
// Entries without a message are skipped; missing time defaults to now.
func Normalize(raw []byte, now time.Time) []Entry {
	list := entries(gjson.ParseBytes(raw))

	out := make([]Entry, 0, len(list))
	for _, item := range list {
		if !item.IsObject() {
			continue
		}

		message := first(item, messageAliases)
		if message == "" {
			continue
		}

		stamp := first(item, timeAliases)
		if stamp == "" {
			stamp = now.Format(TimeFormat)
		}

		out = append(out, Entry{
			Time:    stamp,
			Level:   ParseLevel(first(item, levelAliases)),
			Message: message,
		})
	}

	return out
}

// entries accepts a top-level array or an object wrapping one
func entries(doc gjson.Result) []gjson.Result {
	if doc.IsArray() {
		return doc.Array()
	}

	if doc.IsObject() {
		for _, key := range listKeys {
			if list := doc.Get(key); list.IsArray() {
				return list.Array()
			}
		}
	}

	return nil
}

func first(item gjson.Result, aliases []string) string {
	for _, alias := range aliases {
		value := item.Get(alias)
		if !value.Exists() || value.Type == gjson.Null {
			continue
		}

		if s := strings.TrimSpace(value.String()); s != "" {
			return s
		}
	}

	return ""
}
