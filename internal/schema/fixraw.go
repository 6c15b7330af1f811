package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dgallion1/clauseparse/internal/contract"
	"github.com/dgallion1/clauseparse/internal/lines"
)

// FixRaw repairs a loosely typed candidate (decoded JSON from an untrusted
// producer) into a canonical Contract. It applies the same repairs as Fix
// plus the type coercions a typed document cannot need: numeric section
// numbers and labels are stringified, null labels become "".
//
// It returns an error only for structural malformation the fixer cannot
// safely coerce: sections or clauses that are not arrays, entries that are
// not objects. The input map is never mutated. Missing title/contract_type
// are not invented; the result simply fails validation.
func FixRaw(doc map[string]any) (*contract.Contract, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is not an object")
	}

	c := &contract.Contract{Sections: []contract.Section{}}
	c.Title, _ = doc["title"].(string)
	c.ContractType, _ = doc["contract_type"].(string)

	if s, ok := doc["effective_date"].(string); ok && isoDateRe.MatchString(s) {
		c.EffectiveDate = &s
	}

	rawSections, ok := doc["sections"]
	if !ok || rawSections == nil {
		return c, nil
	}
	sections, ok := rawSections.([]any)
	if !ok {
		return nil, fmt.Errorf("sections is not a list")
	}

	for si, rawSec := range sections {
		sec, ok := rawSec.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("sections[%d] is not an object", si)
		}

		rawClauses, ok := sec["clauses"]
		if !ok || rawClauses == nil {
			continue // clause-less sections are dropped
		}
		clauseList, ok := rawClauses.([]any)
		if !ok {
			return nil, fmt.Errorf("sections[%d].clauses is not a list", si)
		}
		if len(clauseList) == 0 {
			continue
		}

		fixed := contract.Section{Clauses: make([]contract.Clause, 0, len(clauseList))}
		fixed.Title, _ = sec["title"].(string)
		if num, ok := sec["number"]; ok && num != nil {
			n := strings.TrimSpace(stringify(num))
			fixed.Number = &n
		}

		for ci, rawCl := range clauseList {
			cl, ok := rawCl.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("sections[%d].clauses[%d] is not an object", si, ci)
			}
			clause := contract.Clause{Index: ci}
			if text, ok := cl["text"].(string); ok {
				clause.Text = lines.Collapse(text)
			}
			if label, ok := cl["label"]; ok && label != nil {
				clause.Label = strings.TrimSpace(stringify(label))
			}
			fixed.Clauses = append(fixed.Clauses, clause)
		}

		c.Sections = append(c.Sections, fixed)
	}

	return c, nil
}

// FixJSON decodes candidate JSON bytes and repairs them with FixRaw.
func FixJSON(data []byte) (*contract.Contract, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode candidate: %w", err)
	}
	return FixRaw(doc)
}

// stringify renders JSON scalars the way their producers wrote them:
// integers without a fraction, everything else via fmt.
func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
