package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"century-cleaning/go_backend/internal/app/config"
	"century-cleaning/go_backend/internal/app/http/handlers"
	"century-cleaning/go_backend/internal/domain/ai"
	pdfgen "century-cleaning/go_backend/internal/domain/quotation/pdf/gofpdf"
	"century-cleaning/go_backend/internal/infra/history"
	"century-cleaning/go_backend/internal/infra/mail"
)

func TestRouterAuth(t *testing.T) {
	h := handlers.New(
		config.Config{},
		zap.NewNop(),
		history.NewMemoryStore(),
		ai.NewCannedDescriber(0),
		pdfgen.New(),
		mail.NewSMTPMailer(mail.SMTPConfig{}),
	)
	router := NewRouter(h, zap.NewNop(), "secret")

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code, "health is public")

	r = httptest.NewRequest(http.MethodGet, "/v1/history", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	r = httptest.NewRequest(http.MethodGet, "/v1/history", nil)
	r.Header.Set("X-Internal-Token", "secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}
