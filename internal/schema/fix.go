package schema

import (
	"strings"

	"github.com/dgallion1/clauseparse/internal/contract"
	"github.com/dgallion1/clauseparse/internal/lines"
)

// Fix returns a canonical copy of the document: a non-ISO effective date
// becomes null, sections without clauses are dropped, section numbers are
// trimmed, labels are trimmed, clause text has whitespace runs collapsed, and
// clause indices are reassigned by position. Fix never touches the input,
// never invents missing required fields (title, contract_type), and is
// idempotent.
func Fix(c *contract.Contract) *contract.Contract {
	out := &contract.Contract{
		Title:        c.Title,
		ContractType: c.ContractType,
		Sections:     make([]contract.Section, 0, len(c.Sections)),
	}

	if c.EffectiveDate != nil && isoDateRe.MatchString(*c.EffectiveDate) {
		d := *c.EffectiveDate
		out.EffectiveDate = &d
	}

	for _, sec := range c.Sections {
		if len(sec.Clauses) == 0 {
			continue
		}

		fixed := contract.Section{
			Title:   sec.Title,
			Clauses: make([]contract.Clause, 0, len(sec.Clauses)),
		}
		if sec.Number != nil {
			n := strings.TrimSpace(*sec.Number)
			fixed.Number = &n
		}

		for i, cl := range sec.Clauses {
			fixed.Clauses = append(fixed.Clauses, contract.Clause{
				Text:  lines.Collapse(cl.Text),
				Label: strings.TrimSpace(cl.Label),
				Index: i,
			})
		}

		out.Sections = append(out.Sections, fixed)
	}

	return out
}
