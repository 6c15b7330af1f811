// Package dates finds a contract's effective date in the page text and
// normalizes it to ISO YYYY-MM-DD form.
package dates

import (
	"regexp"
	"sort"
	"strings"

	"github.com/araddon/dateparse"
)

// Only the first few pages are searched before falling back to the whole
// document; effective dates live in preambles.
const cueWindowPages = 3

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4}`),
	regexp.MustCompile(`(?i)\d{1,2}\s+(January|February|March|April|May|June|July|August|September|October|November|December),?\s+\d{4}`),
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
}

var isoRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var defaultCues = []string{
	"effective as of",
	"effective date",
	"dated as of",
	"becomes effective on",
	"effective on",
}

// Extractor scans page text for a date expression near a cue phrase.
type Extractor struct {
	cues []string
}

// New builds an Extractor. With no extra cues the default cue phrases apply;
// extras extend them.
func New(extraCues []string) *Extractor {
	cues := make([]string, 0, len(defaultCues)+len(extraCues))
	cues = append(cues, defaultCues...)
	for _, c := range extraCues {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			cues = append(cues, c)
		}
	}
	return &Extractor{cues: cues}
}

var defaultExtractor = New(nil)

// Extract runs the default extractor.
func Extract(pages []string) *string {
	return defaultExtractor.Extract(pages)
}

// Extract returns the ISO form of the first parseable date found near the
// earliest cue phrase within the leading pages, then anywhere in the leading
// pages, then anywhere in the document. Returns nil when nothing parses;
// date-parse failure is never an error.
func (e *Extractor) Extract(pages []string) *string {
	if len(pages) == 0 {
		return nil
	}

	window := pages
	if len(window) > cueWindowPages {
		window = window[:cueWindowPages]
	}
	windowText := strings.Join(window, "\n")

	// Restrict the scan to text from the earliest cue onward; with no cue the
	// whole window is searched.
	region := windowText
	if pos := e.earliestCue(windowText); pos >= 0 {
		region = windowText[pos:]
	}

	if iso := firstParseable(region); iso != nil {
		return iso
	}
	if region != windowText {
		if iso := firstParseable(windowText); iso != nil {
			return iso
		}
	}

	return firstParseable(strings.Join(pages, "\n"))
}

func (e *Extractor) earliestCue(text string) int {
	lower := strings.ToLower(text)
	pos := -1
	for _, cue := range e.cues {
		if i := strings.Index(lower, cue); i >= 0 && (pos < 0 || i < pos) {
			pos = i
		}
	}
	return pos
}

// firstParseable collects every date-like substring in order of appearance
// and returns the ISO form of the first one that parses.
func firstParseable(text string) *string {
	type candidate struct {
		pos int
		str string
	}
	var cands []candidate
	for _, pat := range datePatterns {
		for _, loc := range pat.FindAllStringIndex(text, -1) {
			cands = append(cands, candidate{pos: loc[0], str: text[loc[0]:loc[1]]})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].pos < cands[j].pos })

	for _, c := range cands {
		if iso := ToISO(c.str); iso != nil {
			return iso
		}
	}
	return nil
}

// ToISO normalizes a date string to YYYY-MM-DD. Strings already in ISO form
// pass through unchanged; everything else goes through natural-language
// parsing with month-first preference for ambiguous orderings. Returns nil
// when the string does not parse.
func ToISO(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if isoRe.MatchString(s) {
		return &s
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return nil
	}
	iso := t.Format("2006-01-02")
	return &iso
}
