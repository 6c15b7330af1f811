package contract

// Contract is the canonical structured form of a parsed agreement. The JSON
// shape is the persisted artifact format: effective_date is either an ISO
// YYYY-MM-DD string or null, section numbers are strings or null, and clause
// labels are plain strings ("" when the source has no marker).
type Contract struct {
	Title         string    `json:"title"`
	ContractType  string    `json:"contract_type"`
	EffectiveDate *string   `json:"effective_date"`
	Sections      []Section `json:"sections"`
}

// Section groups one or more clauses under an optional numbering token.
// Number carries the raw token ("1.2", "II") and is never interpreted.
type Section struct {
	Title   string   `json:"title"`
	Number  *string  `json:"number"`
	Clauses []Clause `json:"clauses"`
}

// Clause is the smallest structural unit. Index is the clause's 0-based
// position within its parent section and always equals its array position.
type Clause struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Index int    `json:"index"`
}

// Placeholder is the document substituted when no text at all could be
// extracted from the input. It conforms to the schema as-is.
func Placeholder() *Contract {
	return &Contract{
		Title:         "Extraction Failed",
		ContractType:  "Unknown",
		EffectiveDate: nil,
		Sections:      []Section{},
	}
}
