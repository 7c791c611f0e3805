package conneg

import (
	"sort"
	"strconv"
	"strings"

	"github.com/munnerz/goautoneg"
)

const anyMedia = "*/*"

type acceptEntry struct {
	mediaType string
	q         float64
	index     int
}

// ParseAccept turns an Accept header into media types in preference order.
// Parameters other than q are dropped, q=0 entries are removed, and entries
// with equal q keep header order. A bare wildcard stands for text/html.
//
// goautoneg parses each range; ordering is done here because its own sort is
// not stable.
func ParseAccept(header string) []string {
	var entries []acceptEntry
	for i, part := range strings.Split(header, ",") {
		ranges := goautoneg.ParseAccept(part)
		if len(ranges) == 0 {
			continue
		}
		r := ranges[0]
		if r.Q <= 0 || r.Type == "" || r.SubType == "" {
			continue
		}
		entries = append(entries, acceptEntry{mediaType: r.Type + "/" + r.SubType, q: r.Q, index: i})
	}
	sortByQuality(entries)

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		mt := strings.ToLower(e.mediaType)
		if mt == anyMedia {
			mt = "text/html"
		}
		out = append(out, mt)
	}
	return out
}

// ParseAcceptProfile parses an Accept-Profile header. Values may be
// bracketed URIs or bare tokens.
func ParseAcceptProfile(header string) []string {
	entries := parseWeighted(header)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, strings.Trim(e.mediaType, "<>"))
	}
	return out
}

func parseWeighted(header string) []acceptEntry {
	var entries []acceptEntry
	for i, part := range splitOutsideBrackets(header) {
		fields := strings.Split(part, ";")
		value := strings.TrimSpace(fields[0])
		if value == "" {
			continue
		}
		q := 1.0
		for _, param := range fields[1:] {
			k, v, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(k), "q") {
				continue
			}
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				q = parsed
			}
		}
		if q <= 0 {
			continue
		}
		entries = append(entries, acceptEntry{mediaType: value, q: q, index: i})
	}
	sortByQuality(entries)
	return entries
}

func sortByQuality(entries []acceptEntry) {
	sort.SliceStable(entries, func(a, b int) bool { return entries[a].q > entries[b].q })
}

// splitOutsideBrackets splits on commas that are not inside <...>, so
// profile URIs containing commas survive.
func splitOutsideBrackets(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
