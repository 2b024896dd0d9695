package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"century-cleaning/go_backend/internal/app/http/handlers"
	"century-cleaning/go_backend/internal/app/http/middleware"
)

func NewRouter(h *handlers.Handlers, logger *zap.Logger, internalToken string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(logger))

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.InternalAuth(internalToken))

		r.Post("/quotations", h.CreateQuotation)
		r.Post("/quotations/parse", h.ParseQuotation)
		r.Post("/quotations/pdf", h.QuotationPDF)
		r.Post("/quotations/email", h.EmailQuotation)
		r.Get("/quotations/template", h.QuotationTemplate)

		r.Get("/clients/suggest", h.SuggestClient)

		r.Get("/history", h.ListHistory)
		r.Delete("/history/{id}", h.DeleteHistoryEntry)
	})

	return r
}
