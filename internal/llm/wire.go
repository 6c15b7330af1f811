package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// candidateSchema is the wire shape check applied to model output before
// decode. Deliberately loose: it pins the top-level object and the collection
// types but leaves field-level repairs (null labels, bad dates, stray
// indices) to the schema auto-fixer.
const candidateSchema = `{
	"type": "object",
	"required": ["title", "contract_type", "effective_date", "sections"],
	"properties": {
		"title": {"type": "string"},
		"contract_type": {"type": "string"},
		"effective_date": {"type": ["string", "null"]},
		"sections": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["title", "clauses"],
				"properties": {
					"clauses": {"type": "array", "items": {"type": "object"}}
				}
			}
		}
	}
}`

var compiledCandidateSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("candidate.json", bytes.NewReader([]byte(candidateSchema))); err != nil {
		panic(err)
	}
	return compiler.MustCompile("candidate.json")
}

// DecodeCandidate validates raw model output against the wire schema and
// decodes it into a loosely typed document for the auto-fixer.
func DecodeCandidate(data []byte) (map[string]any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse contract json: %w (raw: %s)", err, truncate(string(data), 200))
	}
	if err := compiledCandidateSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("model output does not match contract shape: %w", err)
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("model output is not an object")
	}
	return doc, nil
}
