package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/rhenlumbo/portfolio-backend/internal/config"
	"github.com/rhenlumbo/portfolio-backend/internal/handler"
	"github.com/rhenlumbo/portfolio-backend/internal/model/profile"
	"github.com/rhenlumbo/portfolio-backend/internal/service/ai"
	"github.com/rhenlumbo/portfolio-backend/internal/service/mail"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := newLogger()

	if err := godotenv.Load(); err != nil {
		log.WithError(err).Warn("no .env file loaded, continuing with system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	profileStore := profile.NewMemoryStore(profile.Seed())

	// The AI service is optional: without a credential the chat endpoint
	// reports a configuration error instead of the process refusing to start.
	var aiService *ai.Service
	if cfg.AI.Enabled() {
		generator, err := ai.NewGeminiGenerator(ctx, cfg.AI)
		if err != nil {
			log.WithError(err).Warn("failed to initialize Gemini generator, chat disabled")
		} else {
			aiService = ai.NewService(generator, profileStore, log)
			log.WithField("model", cfg.AI.Model).Info("AI service initialized")
		}
	} else {
		log.Warn("GOOGLE_API_KEY not set, chat requests will fail with a configuration error")
	}

	var sender mail.Sender
	if cfg.Mail.Enabled() {
		sender = mail.NewSMTPSender(cfg.Mail)
		log.WithField("host", cfg.Mail.Host).Info("mail relay configured")
	} else {
		log.Warn("EMAIL_* settings incomplete, contact requests will fail with a configuration error")
	}

	router := handler.NewRouter(aiService, sender, cfg.CORS, log)

	startServer(ctx, cfg.Server, router, log)
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})

	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}
	return log
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, log *logrus.Logger) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.WithField("addr", serverCfg.Addr).Info("portfolio backend listening")
	if err := runServer(ctx, srv); err != nil {
		log.WithError(err).Fatal("server error")
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
