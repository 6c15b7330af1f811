// Package classify guesses a document's title and coarse contract type from
// the first page of the line stream, using casing and keyword heuristics only.
package classify

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dgallion1/clauseparse/internal/lines"
)

// Title candidates are only taken from this many leading non-empty lines.
const maxTitleCandidates = 15

var (
	exhibitRe = regexp.MustCompile(`(?i)^\s*(EXHIBIT|SCHEDULE|ANNEX)\s+[A-Z0-9.\-]+`)

	agreementKeywordRe = regexp.MustCompile(
		`(?i)\b(AGREEMENT|CONTRACT|LEASE|AMENDMENT|ADDENDUM|NDA|STATEMENT OF WORK|SOW)\b`)

	// Most specific first. The first matching pattern names the type.
	typePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(Master [A-Za-z ]*Agreement)`),
		regexp.MustCompile(`(?i)([A-Za-z ]*Agreement)`),
		regexp.MustCompile(`(?i)([A-Za-z ]*Contract)`),
		regexp.MustCompile(`(?i)([A-Za-z ]*Lease)`),
		regexp.MustCompile(`(?i)(Non[- ]Disclosure Agreement|NDA)`),
		regexp.MustCompile(`(?i)(Statement of Work|SOW)`),
		regexp.MustCompile(`(?i)(Amendment|Addendum)`),
	}
)

// TitleAndType scans the first page for the document title and derives the
// contract type from it. Exhibit/schedule/annex headers are never title
// candidates. The scan relaxes in stages: title-style line containing an
// agreement keyword, then any title-style line, then the first surviving line
// verbatim, then the literal "Agreement" for an empty page.
func TitleAndType(ls []lines.Line) (title, contractType string) {
	var candidates []string
	for _, ln := range lines.FirstPage(ls) {
		if ln.Text != "" {
			candidates = append(candidates, ln.Text)
		}
	}

	limit := len(candidates)
	if limit > maxTitleCandidates {
		limit = maxTitleCandidates
	}

	for _, ln := range candidates[:limit] {
		if exhibitRe.MatchString(ln) {
			continue
		}
		if looksLikeTitle(ln) && agreementKeywordRe.MatchString(ln) {
			t := lines.Collapse(ln)
			return t, TypeFromTitle(t)
		}
	}

	for _, ln := range candidates[:limit] {
		if exhibitRe.MatchString(ln) {
			continue
		}
		if looksLikeTitle(ln) {
			t := lines.Collapse(ln)
			return t, TypeFromTitle(t)
		}
	}

	for _, ln := range candidates {
		if exhibitRe.MatchString(ln) {
			continue
		}
		t := lines.Collapse(ln)
		return t, TypeFromTitle(t)
	}

	return "Agreement", "Agreement"
}

// TypeFromTitle matches the ordered type patterns against a title and
// title-cases the first hit. Defaults to "Agreement".
func TypeFromTitle(title string) string {
	t := strings.TrimSpace(title)
	for _, pat := range typePatterns {
		if m := pat.FindStringSubmatch(t); m != nil {
			return titleCase(strings.TrimSpace(m[1]))
		}
	}
	return "Agreement"
}

// looksLikeTitle reports whether a line reads as a heading: upper-cased or
// title-cased, no terminal period, and at most 120 characters.
func looksLikeTitle(line string) bool {
	up := strings.TrimSpace(line)
	if len(up) <= 3 || len(up) > 120 {
		return false
	}
	if strings.HasSuffix(up, ".") {
		return false
	}
	if up == strings.ToUpper(up) {
		return true
	}
	words := strings.Fields(up)
	if len(words) == 0 || len(words) > 12 {
		return false
	}
	titled := 0
	for _, w := range words {
		if r := []rune(w)[0]; unicode.IsUpper(r) {
			titled++
		}
	}
	return float64(titled)/float64(len(words)) >= 0.8
}

// titleCase capitalizes the letter after every non-letter boundary and
// lowercases the rest, matching how type names are reported ("MASTER
// SERVICES AGREEMENT" -> "Master Services Agreement").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
