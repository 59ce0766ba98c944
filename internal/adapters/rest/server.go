package rest

import (
	"context"
	"fmt"
	"net/http"

	core_port "listing-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server - наш REST API сервер.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewServer создает новый экземпляр сервера и собирает все роуты.
func NewServer(port string,
	discoveryHandlers *DiscoveryHandler,
	listingHandlers *ListingHandler,
	favoritesHandlers *FavoritesHandler,
	uploadHandlers *UploadHandler,
	allowedOrigins []string,
	uploadDir string,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		// AllowedOrigins - список доменов, с которых разрешены запросы
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-User-ID", "X-User-Role", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// публичные роуты: поиск, карточка, похожие, калькулятор
		r.Get("/listings", discoveryHandlers.FindListings)
		r.Get("/listings/{listingID}", listingHandlers.GetListingDetails)
		r.Get("/listings/{listingID}/similar", discoveryHandlers.GetSimilarListings)
		r.Get("/mortgage/estimate", discoveryHandlers.EstimateMortgage)

		// приватные роуты (личность проставляет API Gateway)
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware)

			r.Post("/listings", listingHandlers.SaveListing)
			r.Put("/listings/{listingID}", listingHandlers.UpdateListing)
			r.Patch("/listings/{listingID}/status", listingHandlers.UpdateListingStatus)
			r.Delete("/listings/{listingID}", listingHandlers.DeleteListing)
			r.Get("/my/listings", listingHandlers.GetOwnerListings)

			r.Get("/favorites", favoritesHandlers.GetUserFavorites)
			r.Post("/favorites/{listingID}/toggle", favoritesHandlers.ToggleFavorite)

			r.Post("/attachments", uploadHandlers.UploadAttachment)
		})
	})

	// Раздача загруженных файлов
	if uploadDir != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

// Start запускает HTTP-сервер.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
