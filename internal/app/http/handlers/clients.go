package handlers

import (
	"net/http"

	"century-cleaning/go_backend/internal/domain/ai"
)

// SuggestClient completes a partial client name from the directory.
func (h *Handlers) SuggestClient(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	client, ok := ai.SuggestClient(name)
	if !ok {
		h.respondError(w, http.StatusNotFound, "no matching client")
		return
	}
	h.respondJSON(w, http.StatusOK, client)
}

// QuotationTemplate returns the recommended service set for a typical
// office cleaning quotation.
func (h *Handlers) QuotationTemplate(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]any{"items": ai.TemplateItems()})
}
