package server

import (
	"fmt"
	"net/http"
	"time"

	"catalog-api/internal/config"
	custommiddleware "catalog-api/internal/middleware"
	"catalog-api/internal/repository"
	"catalog-api/internal/service"
	"catalog-api/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	store  *repository.Store
	redis  *redis.Client
}

// NewServer wires the store, services and handlers into a chi router and
// returns a configured HTTP server. redisClient may be nil; rate limiting
// is skipped without it.
func NewServer(cfg *config.Config, logger *zap.Logger, store *repository.Store, redisClient *redis.Client) *Server {
	router := chi.NewRouter()

	for _, mw := range custommiddleware.DefaultMiddlewareStack() {
		router.Use(mw)
	}
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))

	// Health check endpoint backed by store consistency checks
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		report := store.ValidateState()
		status := http.StatusOK
		payload := map[string]interface{}{
			"status":    "ok",
			"products":  report.ProductCount,
			"users":     report.UserCount,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}
		if !report.IsValid {
			status = http.StatusServiceUnavailable
			payload["status"] = "degraded"
		}
		custommiddleware.RespondWithJSON(w, status, payload)
	})

	// Initialize services
	tokenExpiry := time.Duration(cfg.JWT.ExpiryHours) * time.Hour
	userService := service.NewUserService(store, cfg.JWT.Secret, tokenExpiry)
	cartService := service.NewCartService(logger)

	// Initialize handlers
	authHandler := transport.NewAuthHandler(userService, int64(tokenExpiry.Seconds()), logger)
	catalogHandler := transport.NewCatalogHandler(store, logger)
	cartHandler := transport.NewCartHandler(cartService, logger)

	authMiddleware := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)

	router.Route("/api/v1", func(r chi.Router) {
		if redisClient != nil {
			r.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
				RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
				Window:            time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute,
				KeyPrefix:         "ratelimit",
			}, logger))
		}

		r.Route("/auth", func(r chi.Router) {
			authHandler.RegisterPublicRoutes(r)
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				authHandler.RegisterProtectedRoutes(r)
			})
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware)
				r.Use(custommiddleware.RequireAdmin(logger))
				authHandler.RegisterAdminRoutes(r)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(authMiddleware)
			cartHandler.RegisterRoutes(r)
		})

		catalogHandler.RegisterRoutes(r)
	})

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		store:  store,
		redis:  redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
