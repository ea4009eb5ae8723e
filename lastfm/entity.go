package lastfm

import (
	"net/url"
	"strconv"
	"strings"

	"scrobbler/feed"
)

// feedSpec fixes the per-relationship constants: the path suffix under
// the entity's resource URL, the element name holding the records, the
// primary sort field, and whether the feed is a positional list with a
// leading self record.
type feedSpec struct {
	postfix   string
	recordKey string
	sortKey   string
	list      bool
}

// fallbackSortKey is consulted when a record lacks the primary sort
// field.
const fallbackSortKey = "count"

// resourceURL builds "<base>/<segment>/<escaped path...>". Every feed
// URL for an entity is this plus "/<postfix>".
func resourceURL(base, segment string, path ...string) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteByte('/')
	b.WriteString(segment)
	for _, p := range path {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(p))
	}
	return b.String()
}

// setIfEmpty applies the first-write-wins merge rule: a field already
// populated by an earlier feed is never overwritten.
func setIfEmpty(dst *string, val string) {
	if *dst == "" && val != "" {
		*dst = val
	}
}

// recString returns the first non-empty scalar among keys. A nested
// record stands in for its "content" pseudo-field, so an element like
// <artist mbid="x">Name</artist> still yields "Name".
func recString(rec feed.Record, keys ...string) string {
	for _, key := range keys {
		switch v := rec[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case feed.Record:
			if s, ok := v["content"].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// recFloat parses a numeric scalar field.
func recFloat(rec feed.Record, key string) (float64, bool) {
	s, ok := rec[key].(string)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
