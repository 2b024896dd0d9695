package app

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"century-cleaning/go_backend/internal/app/config"
	apphttp "century-cleaning/go_backend/internal/app/http"
	"century-cleaning/go_backend/internal/app/http/handlers"
	"century-cleaning/go_backend/internal/domain/ai"
	pdfgen "century-cleaning/go_backend/internal/domain/quotation/pdf/gofpdf"
	"century-cleaning/go_backend/internal/infra/db/postgres"
	"century-cleaning/go_backend/internal/infra/history"
	"century-cleaning/go_backend/internal/infra/mail"
)

func Run() {
	cfg := config.MustLoad()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var store history.Store
	if cfg.DatabaseURL != "" {
		db, err := postgres.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db", zap.Error(err))
		}
		defer db.Close()
		store, err = history.NewPostgresStore(context.Background(), db, logger)
		if err != nil {
			logger.Fatal("history store", zap.Error(err))
		}
	} else {
		logger.Info("no DATABASE_URL, history kept in memory")
		store = history.NewMemoryStore()
	}

	h := handlers.New(
		cfg,
		logger,
		store,
		ai.NewCannedDescriber(cfg.DescribeDelay),
		pdfgen.New(),
		mail.NewSMTPMailer(mail.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		}),
	)

	router := apphttp.NewRouter(h, logger, cfg.InternalToken)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
	logger.Fatal("server", zap.Error(srv.ListenAndServe()))
}
