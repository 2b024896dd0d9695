package handlers

import (
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"century-cleaning/go_backend/internal/app/config"
	"century-cleaning/go_backend/internal/domain/ai"
	"century-cleaning/go_backend/internal/domain/quotation/pdf"
	"century-cleaning/go_backend/internal/infra/history"
	"century-cleaning/go_backend/internal/infra/mail"
)

type Handlers struct {
	Cfg       config.Config
	Logger    *zap.Logger
	History   history.Store
	Describer ai.Describer
	PDF       pdf.Generator
	Mailer    mail.Mailer

	validate *validator.Validate

	// One email send at a time; mirrors the disabled "Sending..."
	// state of the original UI.
	sending atomic.Bool
}

func New(cfg config.Config, logger *zap.Logger, store history.Store, describer ai.Describer, gen pdf.Generator, mailer mail.Mailer) *Handlers {
	return &Handlers{
		Cfg:       cfg,
		Logger:    logger,
		History:   store,
		Describer: describer,
		PDF:       gen,
		Mailer:    mailer,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

// session identifies whose history a request touches.
func session(headerValue string) string {
	if headerValue == "" {
		return "default"
	}
	return headerValue
}
