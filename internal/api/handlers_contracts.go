package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleListContracts lists stored contract artifacts, newest first.
func (s *Server) handleListContracts(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	recs, err := s.orchestrator.ArtifactStore().List(r.Context(), limit)
	if err != nil {
		jsonError(w, "failed to list contracts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	contracts := make([]map[string]any, 0, len(recs))
	for _, rec := range recs {
		contracts = append(contracts, map[string]any{
			"doc_id":         rec.DocID,
			"filename":       rec.Filename,
			"title":          rec.Title,
			"contract_type":  rec.ContractType,
			"effective_date": rec.EffectiveDate,
			"engine":         rec.Engine,
			"created_at":     rec.CreatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"contracts": contracts})
}

// handleGetContract returns the full stored document for a doc ID.
func (s *Server) handleGetContract(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	rec, err := s.orchestrator.ArtifactStore().Get(r.Context(), docID)
	if err != nil {
		jsonError(w, "failed to get contract: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if rec == nil {
		jsonError(w, "contract not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id":   rec.DocID,
		"filename": rec.Filename,
		"engine":   rec.Engine,
		"document": rec.Document,
	})
}

// handleDeleteContract removes a stored artifact.
func (s *Server) handleDeleteContract(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	deleted, err := s.orchestrator.ArtifactStore().Delete(r.Context(), docID)
	if err != nil {
		jsonError(w, "failed to delete contract: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if !deleted {
		jsonError(w, "contract not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": docID})
}
