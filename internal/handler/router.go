package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/rhenlumbo/portfolio-backend/internal/config"
	"github.com/rhenlumbo/portfolio-backend/internal/handler/chat"
	"github.com/rhenlumbo/portfolio-backend/internal/handler/contact"
	"github.com/rhenlumbo/portfolio-backend/internal/middleware"
	aiservice "github.com/rhenlumbo/portfolio-backend/internal/service/ai"
	mailservice "github.com/rhenlumbo/portfolio-backend/internal/service/mail"
)

// NewRouter wires HTTP routes to the chat and contact services. Either
// service may be nil when its credentials are absent; the handlers then
// report a configuration error per request.
func NewRouter(aiSvc *aiservice.Service, sender mailservice.Sender, corsCfg config.CORSConfig, log *logrus.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(corsCfg))

	chatHandler := chat.New(aiSvc, log)
	contactHandler := contact.New(sender, log)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Backend is running!"))
	})

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		contactHandler.RegisterRoutes(api)
	})

	return r
}
