// Package api charseq REST API
//
// @title           charseq REST API
// @version         1.0.0
// @description     Text sequence and binary codec operations with a persistent text store.
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Key
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

const (
	shutdownTimeout       = 5 * time.Second
	metricsUpdateInterval = 30 * time.Second
)

const swaggerUI = `<!DOCTYPE html>
<html>
<head>
	 <title>charseq API Documentation</title>
	 <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui.css" />
</head>
<body>
	 <div id="swagger-ui"></div>
	 <script src="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui-bundle.js"></script>
	 <script>
	   window.onload = function() {
	     SwaggerUIBundle({
	       url: '/swagger/swagger.json',
	       dom_id: '#swagger-ui',
	       presets: [
	         SwaggerUIBundle.presets.apis,
	         SwaggerUIBundle.presets.standalone
	       ]
	     });
	   };
	 </script>
</body>
</html>`

// NewRouter builds the HTTP handler with all routes configured
func NewRouter(s *Server) http.Handler {
	m := s.metrics

	instrument := func(method, endpoint string, h http.HandlerFunc) http.HandlerFunc {
		if m == nil {
			return h
		}
		return m.InstrumentHandler(method, endpoint, h)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(s.config.APIKey))

		r.Get("/health", instrument("GET", "/api/v1/health", s.handleHealth))

		// Codec operations
		r.Post("/hex", instrument("POST", "/api/v1/hex", s.handleHex))
		r.Post("/ints/encode", instrument("POST", "/api/v1/ints/encode", s.handleIntEncode))
		r.Post("/ints/decode", instrument("POST", "/api/v1/ints/decode", s.handleIntDecode))

		// Text operations
		r.Post("/texts/concat", instrument("POST", "/api/v1/texts/concat", s.handleConcat))
		r.Post("/texts/compare", instrument("POST", "/api/v1/texts/compare", s.handleCompare))

		// Stored texts
		r.Post("/texts", instrument("POST", "/api/v1/texts", s.handleCreateText))
		r.Get("/texts", instrument("GET", "/api/v1/texts", s.handleListTexts))
		r.Get("/texts/{id}", instrument("GET", "/api/v1/texts/{id}", s.handleGetText))
		r.Put("/texts/{id}", instrument("PUT", "/api/v1/texts/{id}", s.handleUpdateText))
		r.Delete("/texts/{id}", instrument("DELETE", "/api/v1/texts/{id}", s.handleDeleteText))
	})

	// Swagger documentation (unprotected)
	r.Get("/swagger/*", s.handleSwagger)

	return r
}

func (s *Server) handleSwagger(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/swagger/", "/swagger/index.html":
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerUI))
	case "/swagger/swagger.json":
		doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
		if err != nil {
			s.logger.WithError(err).Error("failed to generate swagger doc")
			http.Error(w, "Failed to generate Swagger documentation", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	default:
		http.NotFound(w, r)
	}
}

// StartServer serves the API until ctx is cancelled, then shuts down gracefully
func StartServer(ctx context.Context, s *Server) error {
	addr := net.JoinHostPort(s.config.Bind, fmt.Sprintf("%d", s.config.Port))
	SwaggerInfo.Host = addr

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(s),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	updaterDone := make(chan struct{})
	go func() {
		defer close(updaterDone)
		s.startMetricsUpdater(ctx)
	}()
	defer func() {
		cancel()
		<-updaterDone
	}()

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("starting charseq REST API server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "server failed")
	case <-ctx.Done():
		s.logger.Info("shutting down charseq REST API server")
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "server shutdown failed")
		}
		return nil
	}
}

// startMetricsUpdater periodically refreshes the stored text gauge
func (s *Server) startMetricsUpdater(ctx context.Context) {
	if s.metrics == nil || s.store == nil {
		return
	}

	ticker := time.NewTicker(metricsUpdateInterval)
	defer ticker.Stop()

	s.updateStoreStats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.updateStoreStats()
		}
	}
}

func (s *Server) updateStoreStats() {
	count, err := s.store.Count()
	if err != nil {
		s.logger.WithError(err).Warn("failed to count stored texts")
		return
	}
	s.metrics.UpdateStoreStats(count)
}
