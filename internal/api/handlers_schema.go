package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/dgallion1/clauseparse/internal/contract"
	"github.com/dgallion1/clauseparse/internal/schema"
)

// handleValidate checks a contract document against the output shape rules.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var doc contract.Contract
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&doc); err != nil {
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}

	passed, violations := schema.Check(&doc)
	if violations == nil {
		violations = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"passed":     passed,
		"violations": violations,
	})
}

// handleAutoFix repairs an arbitrary candidate document and returns the fixed
// form. Structurally unrepairable input yields 422.
func (s *Server) handleAutoFix(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	data, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "failed to read body: "+err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := schema.FixJSON(data)
	if err != nil {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	passed, violations := schema.Check(doc)
	if violations == nil {
		violations = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"document":   doc,
		"passed":     passed,
		"violations": violations,
	})
}
