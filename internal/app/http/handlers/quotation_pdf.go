package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"century-cleaning/go_backend/internal/domain/quotation"
)

const pdfFilename = "Century_Cleaning_Quotation.pdf"

// QuotationPDF renders a document into the downloadable PDF.
func (h *Handlers) QuotationPDF(w http.ResponseWriter, r *http.Request) {
	var req ParseQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	parsed, err := quotation.Parse(req.Document)
	if err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, "unable to parse quotation data")
		return
	}

	out, err := h.PDF.Generate(parsed)
	if err != nil {
		h.Logger.Error("pdf generation", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "pdf generation failed")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+pdfFilename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}
