package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/mgonzagajr/xrpl-stablecoin-sub001/internal/handler"
)

// SetupRouter sets up router with handlers
func SetupRouter(h *handler.Handler, log *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/healthz", h.Health)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/wallet", h.GetWallet)
		r.Post("/wallet/init", h.InitWallet)

		r.Get("/config", h.GetConfig)
		r.Put("/config", h.PutConfig)

		r.Get("/nft/log", h.GetNFTLog)
		r.Post("/nft/log", h.AppendNFTEvent)

		r.Post("/trustline/authorize", h.AuthorizeTrustLine)

		r.Get("/networks", h.ListNetworks)
		r.Get("/networks/{id}", h.GetNetwork)
	})

	return r
}

// requestLogger logs one line per request
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)))
		})
	}
}
