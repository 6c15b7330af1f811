package llm

import "strings"

// SystemPrompt instructs the model to emit exactly the persisted artifact
// shape. The auto-fixer still runs on whatever comes back.
const SystemPrompt = `You are a highly accurate legal document parsing expert. Your task is to analyze the provided contract text and convert it into a structured JSON object. Adhere to the following schema and rules EXACTLY.

JSON Schema:
{
  "title": "Contract Title",
  "contract_type": "Agreement Type",
  "effective_date": "YYYY-MM-DD or null",
  "sections": [
    {
      "title": "Section Title",
      "number": "Section Number or null",
      "clauses": [
        {
          "text": "Clause text",
          "label": "Label, title, and number/letter assigned to this clause if any, otherwise an empty string.",
          "index": 0
        }
      ]
    }
  ]
}

Rules:
1. "title": The main title of the document.
2. "effective_date": Extract the effective date and format it as YYYY-MM-DD. If no date is found, the value MUST be null.
3. "sections": The list of major sections or articles, in the document's reading order.
4. "sections[n].number": The number of the section (e.g., "1", "1.2", "II"). If the section has no number, the value MUST be null.
5. "clauses": The list of clauses within a section, in reading order.
6. "clauses[n].label": The label of the clause (e.g., "1.2 (a)", "(b)"). If there is no label, the value MUST be an empty string "". DO NOT use null here.
7. "clauses[n].index": A 0-based integer index that resets to 0 for each new section.
8. "clauses[n].text": The full text of the clause. Normalize all internal whitespace to a single space.
9. The output must be a single, valid JSON object and nothing else.`

// BuildUserPrompt wraps the contract text for the user turn.
func BuildUserPrompt(contractText string) string {
	var sb strings.Builder
	sb.WriteString("Please parse the following contract text:\n\n---\n\n")
	sb.WriteString(contractText)
	return sb.String()
}

