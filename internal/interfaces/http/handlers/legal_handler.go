package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/K-dessa/VHM-api-sub000/internal/application/legalsearch"
	"github.com/K-dessa/VHM-api-sub000/pkg/errors"
	"github.com/K-dessa/VHM-api-sub000/pkg/types/analysis"
)

// CaseSearcher searches the public case index for one company.
type CaseSearcher interface {
	Search(ctx context.Context, p legalsearch.SearchParams) analysis.LegalFindings
}

// LegalHandler serves GET /api/v1/legal-cases, the legal-only search
// endpoint that skips the full analysis pipeline.
type LegalHandler struct {
	searcher CaseSearcher
}

// NewLegalHandler creates a LegalHandler.
func NewLegalHandler(searcher CaseSearcher) *LegalHandler {
	return &LegalHandler{searcher: searcher}
}

// Search runs a case search for the company named in the query string.
func (h *LegalHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	company := strings.TrimSpace(q.Get("company"))
	if len(company) < 2 {
		writeError(w, r, errors.Validation("query parameter company must be at least 2 characters"))
		return
	}

	findings := h.searcher.Search(r.Context(), legalsearch.SearchParams{
		CompanyName:   company,
		TradeName:     strings.TrimSpace(q.Get("trade_name")),
		ContactPerson: strings.TrimSpace(q.Get("contact")),
	})

	writeJSON(w, r, http.StatusOK, findings)
}

//Personal.AI order the ending
