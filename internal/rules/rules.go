// Package rules composes the deterministic structuring pipeline: line
// normalization, title/type classification, section segmentation, effective
// date extraction, assembly and canonical fixing.
package rules

import (
	"github.com/dgallion1/clauseparse/internal/classify"
	"github.com/dgallion1/clauseparse/internal/contract"
	"github.com/dgallion1/clauseparse/internal/dates"
	"github.com/dgallion1/clauseparse/internal/lines"
	"github.com/dgallion1/clauseparse/internal/schema"
	"github.com/dgallion1/clauseparse/internal/segment"
)

// Engine runs the rule-based structuring pipeline. The zero-ish Engine from
// New(nil, nil) uses the default heuristics.
type Engine struct {
	seg   *segment.Segmenter
	dates *dates.Extractor
}

// New builds an Engine, optionally extending the segmenter's verb cues and
// the date extractor's cue phrases.
func New(extraVerbCues, extraDateCues []string) *Engine {
	return &Engine{
		seg:   segment.New(extraVerbCues),
		dates: dates.New(extraDateCues),
	}
}

// Parse structures per-page text into a schema-conformant contract. Pure and
// synchronous; callers own any timeout. Empty input yields a contract with an
// empty section list (callers decide whether to substitute a placeholder).
func (e *Engine) Parse(pages []string) *contract.Contract {
	ls := lines.FromPages(pages)
	title, contractType := classify.TitleAndType(ls)
	sections := e.seg.Sections(ls, title)
	effectiveDate := e.dates.Extract(pages)
	return schema.Fix(contract.Assemble(title, contractType, effectiveDate, sections))
}
