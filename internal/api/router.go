package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mvermeer/Dividend-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/mvermeer/Dividend-Tracker-Backend/internal/api/middleware"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/config"
	"github.com/mvermeer/Dividend-Tracker-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	dividendService *service.DividendService,
	syncService *service.SyncService,
	credentialService *service.CredentialService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/dividends", func(r chi.Router) {
			dividendHandler := handlers.NewDividendHandler(dividendService)
			r.Route("/portfolio/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", dividendHandler.RecordsPerPortfolio)
			})
			r.Route("/summary/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", dividendHandler.SummaryPerPortfolio)
			})
		})

		r.Route("/sync", func(r chi.Router) {
			syncHandler := handlers.NewSyncHandler(syncService)
			r.Post("/", syncHandler.Sync)
		})

		r.Route("/jobs", func(r chi.Router) {
			jobHandler := handlers.NewJobHandler(syncService)
			r.Get("/", jobHandler.Jobs)
		})

		r.Route("/broker", func(r chi.Router) {
			brokerHandler := handlers.NewBrokerHandler(credentialService)
			r.Put("/credential", brokerHandler.SetCredential)
		})
	})

	return r
}
