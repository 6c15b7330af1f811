package lines

import (
	"regexp"
	"strings"
)

// Line is a single trimmed line of input text tagged with the page it came from.
type Line struct {
	Page int
	Text string
}

var spaceRe = regexp.MustCompile(`\s+`)

// Collapse normalizes whitespace: internal runs become single spaces and
// leading/trailing whitespace is removed.
func Collapse(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// FromPages turns per-page text blocks into a flat, page-tagged line stream.
// Line endings are normalized, each line is trimmed, and runs of consecutive
// blank lines collapse to a single blank marker. The blank markers survive as
// soft paragraph boundaries; downstream stages mostly skip them.
func FromPages(pages []string) []Line {
	var out []Line
	for pageIdx, page := range pages {
		page = strings.ReplaceAll(page, "\r\n", "\n")
		page = strings.ReplaceAll(page, "\r", "\n")

		prevEmpty := false
		for _, raw := range strings.Split(page, "\n") {
			ln := strings.TrimSpace(raw)
			empty := ln == ""
			if empty && prevEmpty {
				continue
			}
			out = append(out, Line{Page: pageIdx, Text: ln})
			prevEmpty = empty
		}
	}
	return out
}

// FirstPage returns the prefix of the stream belonging to page 0.
func FirstPage(ls []Line) []Line {
	for i, ln := range ls {
		if ln.Page != 0 {
			return ls[:i]
		}
	}
	return ls
}
