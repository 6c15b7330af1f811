// Package schema is the conformance boundary for contract documents. A single
// validation routine backs both entry points (Check and Assert), and the
// auto-fixer repairs candidates from any producer, the rule pipeline or the
// LLM path, into the canonical shape.
package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dgallion1/clauseparse/internal/contract"
)

var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate walks the document against the schema rules and returns the
// ordered list of violations, one message per offending field. It never
// mutates its input and never fails; an empty list means conformance.
func Validate(c *contract.Contract) []string {
	var errs []string

	if c == nil {
		return []string{"document missing"}
	}
	if strings.TrimSpace(c.Title) == "" {
		errs = append(errs, "title invalid")
	}
	if strings.TrimSpace(c.ContractType) == "" {
		errs = append(errs, "contract_type invalid")
	}
	if c.EffectiveDate != nil && !isoDateRe.MatchString(*c.EffectiveDate) {
		errs = append(errs, "effective_date not ISO YYYY-MM-DD or null")
	}

	for si, sec := range c.Sections {
		if strings.TrimSpace(sec.Title) == "" {
			errs = append(errs, fmt.Sprintf("sections[%d].title invalid", si))
		}
		if len(sec.Clauses) == 0 {
			errs = append(errs, fmt.Sprintf("sections[%d].clauses missing or empty", si))
			continue
		}
		for ci, cl := range sec.Clauses {
			if strings.TrimSpace(cl.Text) == "" {
				errs = append(errs, fmt.Sprintf("sections[%d].clauses[%d].text invalid", si, ci))
			}
			if cl.Index != ci {
				errs = append(errs, fmt.Sprintf("sections[%d].clauses[%d].index must be %d", si, ci, ci))
			}
		}
	}

	return errs
}

// Check reports conformance along with the violation list.
func Check(c *contract.Contract) (bool, []string) {
	errs := Validate(c)
	return len(errs) == 0, errs
}

// Assert returns an error describing the first violations, or nil when the
// document conforms.
func Assert(c *contract.Contract) error {
	errs := Validate(c)
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("contract does not conform: %s", strings.Join(errs, "; "))
}
