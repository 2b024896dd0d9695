package handlers

import (
	"encoding/json"
	"net/http"

	"century-cleaning/go_backend/internal/domain/quotation"
)

type ParseQuotationRequest struct {
	Document string `json:"document"`
}

// ParseQuotation turns a raw document back into its structured view.
// An unrecognized document is not an error at the HTTP level: the
// response carries the raw text so the caller can show the fallback
// view instead of crashing the page.
func (h *Handlers) ParseQuotation(w http.ResponseWriter, r *http.Request) {
	var req ParseQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Document == "" {
		h.respondError(w, http.StatusBadRequest, "document is required")
		return
	}

	parsed, err := quotation.Parse(req.Document)
	if err != nil {
		h.respondJSON(w, http.StatusOK, map[string]any{
			"parsed":  nil,
			"raw":     req.Document,
			"message": "unable to parse quotation data",
		})
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"parsed": parsed})
}
