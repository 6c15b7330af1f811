// Package segment walks the normalized line stream and splits it into typed
// sections and clauses. Detection is an ordered rule list evaluated
// top-to-bottom with first-match-wins semantics: skip rules, numbered section
// header, bare header line, numbered-clause-as-heading, clause label,
// continuation. Order is the disambiguation mechanism; the rules overlap by
// construction.
package segment

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/dgallion1/clauseparse/internal/contract"
	"github.com/dgallion1/clauseparse/internal/lines"
)

var (
	pageMarkerRe = regexp.MustCompile(`^\s*-?\s*\d+\s*-?\s*$`)
	exhibitRe    = regexp.MustCompile(`(?i)^\s*(EXHIBIT|SCHEDULE|ANNEX)\s+[A-Z0-9.\-]+`)
	pageTitleRe  = regexp.MustCompile(`(?i)^Page\s+\d+\s*$`)

	// Leading numbering token followed by remainder text. Bare integers are
	// matched separately (bareIntHeaderRe) since they need the trailing word
	// to disambiguate from prose.
	sectionHeaderRe = regexp.MustCompile(
		`(?i)^\s*((?:\d+(?:\.\d+)+)|(?:\d+[.)])|(?:[IVXLCDM]+[.)])|(?:[A-Za-z][.)]))\s+(.*)$`)
	bareIntHeaderRe = regexp.MustCompile(`(?i)^\s*(\d+)\s+([A-Z][A-Za-z].*)$`)

	clauseLabelRe = regexp.MustCompile(
		`(?i)^\s*(\((?:\d+|[a-z]|[ivxlcdm]+)\)|(?:\d+(?:\.\d+)+)|(?:\d+[.)])|(?:[A-Za-z][.)])|(?:[IVXLCDM]+[.)]))\s+(.*)$`)

	labelTrailRe = regexp.MustCompile(`[.)]$`)

	// Heading split: short head, a separator, trailing clause text.
	splitHeadingRe = regexp.MustCompile(`^\s*([^.:;\-` + "–—" + `]{1,80}?)\s*[.:;\-` + "–—" + `]\s*(.*)$`)

	digitsRe = regexp.MustCompile(`^\d+$`)
)

// Verb cues that mark a line as prose rather than a heading. A line
// containing any of these never opens a section.
var defaultVerbCues = []string{
	"shall", "may", "agrees?", "agree", "use", "apply", "permit", "terminate",
	"means?", "includes?", "specif(?:y|ies)", "located", "notified",
	"submit(?:ted)?", "approved?", "distribute", "market", "sell", "provide",
	"deliver", "perform", "reimburse", "incurred", "participat(?:e|ing)",
	"subject", "reserved", "understand(?:s)?", "deliver(?:y)?",
}

// Segmenter holds the compiled verb-cue pattern. Zero extra cues gives the
// default behavior; extra cues extend the prose detector for document sets
// with unusual drafting vocabulary.
type Segmenter struct {
	verbish *regexp.Regexp
}

// New builds a Segmenter with the default verb cues plus any extras.
func New(extraVerbCues []string) *Segmenter {
	cues := make([]string, 0, len(defaultVerbCues)+len(extraVerbCues))
	cues = append(cues, defaultVerbCues...)
	for _, c := range extraVerbCues {
		c = strings.TrimSpace(c)
		if c != "" {
			cues = append(cues, regexp.QuoteMeta(strings.ToLower(c)))
		}
	}
	return &Segmenter{
		verbish: regexp.MustCompile(`(?i)\b(` + strings.Join(cues, "|") + `)\b`),
	}
}

var defaultSegmenter = New(nil)

// Sections runs the default segmenter over the line stream.
func Sections(ls []lines.Line, knownTitle string) []contract.Section {
	return defaultSegmenter.Sections(ls, knownTitle)
}

// Sections walks the line stream and returns the detected sections in
// document order. knownTitle, when non-empty, suppresses repeated title lines
// (case-insensitive exact match). Clause indices are recomputed at the end;
// sections that end up with no clauses and no title are dropped.
func (sg *Segmenter) Sections(ls []lines.Line, knownTitle string) []contract.Section {
	knownTitle = strings.TrimSpace(knownTitle)

	var sections []*contract.Section
	var cur *contract.Section

	start := func(title string, number *string) {
		sec := &contract.Section{Title: lines.Collapse(title)}
		if number != nil {
			n := strings.TrimSpace(*number)
			if n != "" {
				sec.Number = &n
			}
		}
		sections = append(sections, sec)
		cur = sec
	}

	for _, ln := range ls {
		raw := strings.TrimSpace(ln.Text)
		if raw == "" || pageMarkerRe.MatchString(raw) || exhibitRe.MatchString(raw) {
			continue
		}
		if knownTitle != "" && strings.EqualFold(raw, knownTitle) {
			continue
		}

		// Rule 1: numbered section header.
		if num, remainder, ok := matchSectionNumber(raw); ok {
			num = labelTrailRe.ReplaceAllString(num, "")
			remainder = strings.TrimSpace(remainder)
			bareInt := digitsRe.MatchString(num)

			switch {
			case bareInt && !isSmallInteger(num):
				// Large integers ("2024 ...") are prose, not numbering.
			case sg.isTitleishHeader(remainder):
				start(remainder, &num)
				continue
			case bareInt && sg.isShortTitle(remainder):
				// Plain "1 Definitions" headers without punctuation.
				start(remainder, &num)
				continue
			}
		} else if sg.isTitleishHeader(raw) && validSectionTitle(raw) {
			// Rule 2: bare header line, only for lines with no leading
			// numbering token.
			start(raw, nil)
			continue
		}

		if cur == nil {
			start("General", nil)
		}

		// Rule 3: clause label, with integer labels reinspected as headings.
		if label, rest, ok := matchClauseLabel(raw); ok {
			rest = strings.TrimSpace(rest)
			numTok := labelTrailRe.ReplaceAllString(label, "")

			if digitsRe.MatchString(numTok) {
				if sg.isShortTitle(rest) {
					start(rest, &numTok)
					continue
				}
				if head, tail, ok := splitShortHeading(rest); ok && sg.isShortTitle(head) {
					start(head, &numTok)
					if tail != "" {
						// One level only: the tail is re-matched for its own
						// label but never split again.
						if subLabel, subRest, ok := matchClauseLabel(tail); ok {
							cur.Clauses = append(cur.Clauses, contract.Clause{
								Text:  lines.Collapse(subRest),
								Label: lines.Collapse(subLabel),
							})
						} else {
							cur.Clauses = append(cur.Clauses, contract.Clause{
								Text: lines.Collapse(tail),
							})
						}
					}
					continue
				}
			}

			cur.Clauses = append(cur.Clauses, contract.Clause{
				Text:  lines.Collapse(rest),
				Label: lines.Collapse(label),
			})
			continue
		}

		// Rule 4: continuation.
		if len(cur.Clauses) == 0 {
			cur.Clauses = append(cur.Clauses, contract.Clause{Text: lines.Collapse(raw)})
		} else {
			last := &cur.Clauses[len(cur.Clauses)-1]
			last.Text = lines.Collapse(last.Text + " " + raw)
		}
	}

	out := make([]contract.Section, 0, len(sections))
	for _, sec := range sections {
		if len(sec.Clauses) == 0 && sec.Title == "" {
			continue
		}
		for i := range sec.Clauses {
			sec.Clauses[i].Index = i
		}
		out = append(out, *sec)
	}
	return out
}

func matchSectionNumber(line string) (num, remainder string, ok bool) {
	if m := sectionHeaderRe.FindStringSubmatch(line); m != nil {
		return m[1], m[2], true
	}
	if m := bareIntHeaderRe.FindStringSubmatch(line); m != nil {
		return m[1], m[2], true
	}
	return "", "", false
}

func matchClauseLabel(line string) (label, rest string, ok bool) {
	if m := clauseLabelRe.FindStringSubmatch(line); m != nil {
		return m[1], m[2], true
	}
	return "", "", false
}

// isTitleishHeader reports whether text reads as a multi-word section title:
// short, free of verb cues, and either dominated by uppercase letters or with
// nearly every word capitalized.
func (sg *Segmenter) isTitleishHeader(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" || len(t) > 120 {
		return false
	}
	if sg.verbish.MatchString(t) {
		return false
	}
	words := strings.Fields(t)
	if len(words) < 2 {
		return false
	}
	if upper, total := letterCounts(t); total >= 4 && float64(upper)/float64(total) >= 0.8 {
		return true
	}
	titled := 0
	for _, w := range words {
		if r := []rune(w)[0]; unicode.IsUpper(r) {
			titled++
		}
	}
	return float64(titled)/float64(len(words)) >= 0.8
}

// isShortTitle is the looser heading test used when a numbering token has
// already been seen: a single capitalized word, or a cue-free and
// separator-free phrase of at most 8 words.
func (sg *Segmenter) isShortTitle(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" || len(t) > 120 {
		return false
	}
	if sg.verbish.MatchString(t) {
		return false
	}
	// Separator punctuation means the text is a heading plus trailing prose;
	// the split rule owns that shape.
	if strings.ContainsAny(t, ".:;") {
		return false
	}
	words := strings.Fields(t)
	if len(words) == 1 {
		w := words[0]
		if strings.ContainsAny(w[len(w)-1:], ",!?") {
			return false
		}
		r := []rune(w)[0]
		return unicode.IsUpper(r) || w == strings.ToUpper(w)
	}
	return len(words) <= 8
}

// splitShortHeading splits "Heading: trailing clause text" style remainders.
func splitShortHeading(rest string) (head, tail string, ok bool) {
	m := splitHeadingRe.FindStringSubmatch(rest)
	if m == nil {
		return "", "", false
	}
	head = strings.TrimSpace(m[1])
	tail = strings.TrimSpace(m[2])
	if head == "" {
		return "", "", false
	}
	return head, tail, true
}

func validSectionTitle(line string) bool {
	return !pageTitleRe.MatchString(line)
}

func isSmallInteger(tok string) bool {
	n, err := strconv.Atoi(tok)
	return err == nil && n > 0 && n < 100
}

func letterCounts(s string) (upper, total int) {
	for _, r := range s {
		if unicode.IsLetter(r) {
			total++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	return upper, total
}
