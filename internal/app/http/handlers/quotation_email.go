package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"century-cleaning/go_backend/internal/domain/quotation"
	"century-cleaning/go_backend/internal/infra/mail"
)

type EmailQuotationRequest struct {
	To       string `json:"to" validate:"required,email"`
	Document string `json:"document" validate:"required"`
}

// EmailQuotation renders the document to PDF and mails it: PDF first,
// then the send, awaited in that order. Only one send runs at a time;
// a second request while one is in flight gets 409. A transport
// failure leaves the quotation untouched so the caller can retry.
func (h *Handlers) EmailQuotation(w http.ResponseWriter, r *http.Request) {
	var req EmailQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "To" {
			h.respondError(w, http.StatusBadRequest, "please enter a valid email address")
			return
		}
		h.respondError(w, http.StatusBadRequest, "document is required")
		return
	}

	if !h.sending.CompareAndSwap(false, true) {
		h.respondError(w, http.StatusConflict, "a quotation email is already being sent")
		return
	}
	defer h.sending.Store(false)

	parsed, err := quotation.Parse(req.Document)
	if err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, "unable to parse quotation data")
		return
	}

	attachment, err := h.PDF.Generate(parsed)
	if err != nil {
		h.Logger.Error("pdf generation", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "pdf generation failed")
		return
	}

	msg := mail.Message{
		To:             req.To,
		Subject:        "Century Cleaning Agency - Your Quotation",
		Body:           req.Document,
		Attachment:     attachment,
		AttachmentName: pdfFilename,
	}
	if err := h.Mailer.Send(r.Context(), msg); err != nil {
		h.Logger.Error("send quotation email", zap.Error(err), zap.String("to", req.To))
		h.respondError(w, http.StatusBadGateway, "failed to send email, please try again")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("quotation has been sent to %s", req.To),
	})
}
