package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"century-cleaning/go_backend/internal/domain/ai"
	"century-cleaning/go_backend/internal/domain/quotation"
	"century-cleaning/go_backend/internal/infra/history"
)

type CreateQuotationItem struct {
	Description string `json:"description" validate:"required"`
	Unity       string `json:"unity"`
	Qty         int    `json:"qty" validate:"gt=0"`
	PricePerUnit int64 `json:"price_per_unit" validate:"gte=0"`

	// AIDescription, when set, overrides the describer lookup. The
	// override travels on the item record itself so reordering or
	// removing items cannot shift it onto a neighbor.
	AIDescription string `json:"ai_description"`
}

type CreateQuotationRequest struct {
	Client              string                `json:"client" validate:"required,min=2"`
	Location            string                `json:"location" validate:"required,min=2"`
	Date                string                `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Items               []CreateQuotationItem `json:"items" validate:"required,min=1,max=99,dive"`
	IncludeTax          bool                  `json:"include_ebm"`
	SpecialInstructions string                `json:"special_instructions"`
}

type CreateQuotationResponse struct {
	ID       string            `json:"id"`
	Document string            `json:"document"`
	Subtotal int64             `json:"subtotal"`
	Tax      float64           `json:"tax"`
	Total    float64           `json:"grand_total"`
	Parsed   *quotation.Parsed `json:"parsed"`
	History  history.Entry     `json:"history_entry"`
}

// CreateQuotation validates the form input, resolves every item's
// description concurrently, formats the canonical document, records it
// in the session's history and returns both the document and its parsed
// view. History only ever sees a fully resolved document.
func (h *Handlers) CreateQuotation(w http.ResponseWriter, r *http.Request) {
	var req CreateQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if fields := h.validateRequest(req); len(fields) > 0 {
		h.respondJSON(w, http.StatusBadRequest, map[string]any{"error": "validation failed", "fields": fields})
		return
	}

	date := time.Now()
	if req.Date != "" {
		date, _ = time.Parse("2006-01-02", req.Date)
	}

	q := quotation.Quotation{
		ID:                  quotation.NewID(),
		Client:              req.Client,
		Location:            req.Location,
		Date:                date,
		IncludeTax:          req.IncludeTax,
		SpecialInstructions: req.SpecialInstructions,
	}

	titles := make([]string, len(req.Items))
	for i, it := range req.Items {
		titles[i] = it.Description
	}
	descriptions, err := ai.DescribeAll(r.Context(), h.Describer, titles)
	if err != nil {
		h.Logger.Error("describe services", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to generate quotation")
		return
	}

	for i, it := range req.Items {
		unity := it.Unity
		if unity == "" {
			unity = "-"
		}
		aiDesc := descriptions[i]
		if it.AIDescription != "" {
			aiDesc = it.AIDescription
		}
		q.Items = append(q.Items, quotation.Item{
			Description:   it.Description,
			AIDescription: aiDesc,
			Unity:         unity,
			Qty:           it.Qty,
			PricePerUnit:  it.PricePerUnit,
			LineTotal:     int64(it.Qty) * it.PricePerUnit,
		})
	}

	doc, err := quotation.Format(q)
	if err != nil {
		var verr *quotation.ValidationError
		if errors.As(err, &verr) {
			h.respondJSON(w, http.StatusBadRequest, map[string]any{"error": "validation failed", "fields": verr.Fields})
			return
		}
		h.Logger.Error("format quotation", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to generate quotation")
		return
	}

	sess := session(r.Header.Get("X-Session-ID"))
	entry := history.NewEntry(doc, time.Now())
	entries, err := h.History.Load(r.Context(), sess)
	if err != nil {
		h.Logger.Warn("history load", zap.Error(err), zap.String("session", sess))
		entries = nil
	}
	entries = history.Append(entries, entry)
	entry = entries[0] // Append may bump the id to keep it unique
	if err := h.History.Save(r.Context(), sess, entries); err != nil {
		// The quotation itself is fine; a history failure must not
		// block delivering it.
		h.Logger.Warn("history save", zap.Error(err), zap.String("session", sess))
	}

	parsed, err := quotation.Parse(doc)
	if err != nil {
		h.Logger.Error("re-parse generated document", zap.Error(err), zap.String("id", q.ID))
	}

	totals := quotation.ComputeTotals(q.Items, q.IncludeTax)
	h.respondJSON(w, http.StatusCreated, CreateQuotationResponse{
		ID:       q.ID,
		Document: doc,
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.GrandTotal,
		Parsed:   parsed,
		History:  entry,
	})
}

// validateRequest maps validator failures to inline field errors in the
// request's json naming.
func (h *Handlers) validateRequest(req CreateQuotationRequest) []quotation.FieldError {
	err := h.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []quotation.FieldError{{Field: "request", Message: err.Error()}}
	}
	fields := make([]quotation.FieldError, 0, len(verrs))
	for _, e := range verrs {
		name := strings.TrimPrefix(e.Namespace(), "CreateQuotationRequest.")
		fields = append(fields, quotation.FieldError{
			Field:   name,
			Message: fmt.Sprintf("failed on the %q rule", e.Tag()),
		})
	}
	return fields
}
