package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"harker-site-backend/pkg/chat"
	"harker-site-backend/pkg/config"
	"harker-site-backend/pkg/email"
	"harker-site-backend/pkg/handlers"
	"harker-site-backend/pkg/metrics"
	"harker-site-backend/pkg/ratelimit"
)

func NewHTTPServer(cfg *config.Config, engine *chat.Engine, sender email.Sender, limiter ratelimit.Store, logger *logrus.Logger, m *metrics.Metrics) *http.Server {
	handler := handlers.NewHandler(engine, sender, limiter, cfg, logger, m)

	router := NewRouter(handler, logger, m)

	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// NewRouter wires all routes; split out so handler tests can exercise
// the full middleware stack.
func NewRouter(handler *handlers.Handler, logger *logrus.Logger, m *metrics.Metrics) *mux.Router {
	router := mux.NewRouter()

	// API routes
	router.HandleFunc("/api/contact", handler.Contact).Methods("POST")
	router.HandleFunc("/api/chat/sessions", handler.OpenChatSession).Methods("POST")
	router.HandleFunc("/api/chat/sessions/{id}", handler.ChatTranscript).Methods("GET")
	router.HandleFunc("/api/chat/sessions/{id}", handler.CloseChatSession).Methods("DELETE")
	router.HandleFunc("/api/chat/sessions/{id}/messages", handler.ChatMessage).Methods("POST")
	router.HandleFunc("/health", handler.Health).Methods("GET")
	router.HandleFunc("/status", handler.Status).Methods("GET")

	// Metrics endpoint
	router.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})).Methods("GET")

	router.Use(recoveryMiddleware(logger))
	router.Use(loggingMiddleware(logger))

	return router
}

func loggingMiddleware(logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start),
				"remote":   r.RemoteAddr,
			}).Debug("HTTP request processed")
		})
	}
}

// recoveryMiddleware converts panics into the generic 500 contract:
// internal details are logged, the caller only sees a retry hint.
func recoveryMiddleware(logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.WithFields(logrus.Fields{
						"panic": rec,
						"path":  r.URL.Path,
					}).Error("Handler panic recovered")
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"success":false,"error":"An error occurred processing your request. Please try again or call us directly."}`))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
