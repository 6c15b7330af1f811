package contract

import (
	"strings"

	"github.com/dgallion1/clauseparse/internal/lines"
)

// Assemble merges the classifier, segmenter and date-extractor outputs into a
// canonical Contract. Every string is re-normalized, empty section numbers
// coerce to null, missing labels coerce to "", and clause indices are
// recomputed from position. Sections are reshaped but never dropped here;
// dropping clause-less sections belongs to the segmenter and the fixer.
func Assemble(title, contractType string, effectiveDate *string, sections []Section) *Contract {
	out := &Contract{
		Title:         lines.Collapse(title),
		ContractType:  lines.Collapse(contractType),
		EffectiveDate: effectiveDate,
		Sections:      make([]Section, 0, len(sections)),
	}

	for _, sec := range sections {
		var number *string
		if sec.Number != nil {
			if n := strings.TrimSpace(*sec.Number); n != "" {
				number = &n
			}
		}

		clauses := make([]Clause, 0, len(sec.Clauses))
		for i, cl := range sec.Clauses {
			clauses = append(clauses, Clause{
				Text:  lines.Collapse(cl.Text),
				Label: lines.Collapse(cl.Label),
				Index: i,
			})
		}

		out.Sections = append(out.Sections, Section{
			Title:   lines.Collapse(sec.Title),
			Number:  number,
			Clauses: clauses,
		})
	}

	return out
}
