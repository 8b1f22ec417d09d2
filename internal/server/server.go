package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lvicens/blanca-med/backend/config"
	"github.com/lvicens/blanca-med/backend/internal/api"
	"github.com/lvicens/blanca-med/backend/internal/router"
	"github.com/lvicens/blanca-med/backend/internal/service"
)

// Server wires the services together and owns the HTTP listener
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
}

// New builds a server from the loaded configuration and connections. It
// fails if the allergen dataset does not validate: a dataset with
// duplicate or malformed entries must never be served.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	allergenService, err := service.NewAllergenService(db, redisClient)
	if err != nil {
		return nil, err
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	personalService := service.NewPersonalAllergenService(db)
	protocolService := service.NewProtocolService(db)

	var exportService *service.ExportService
	if s3Config, err := config.NewS3Config(context.Background(), cfg.ExportBucket); err != nil {
		log.Printf("export storage unavailable: %v", err)
	} else {
		exportService = service.NewExportService(s3Config)
	}

	r := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewAllergenHandler(allergenService, exportService, cfg.SearchMinQueryLength),
		api.NewProfileHandler(profileService, personalService),
		api.NewProtocolHandler(protocolService),
		authService,
		redisClient,
	)

	return &Server{
		cfg:    cfg,
		router: r,
	}, nil
}

// Router exposes the configured handler, used by tests to serve requests
// without binding a listener
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start begins serving HTTP and blocks until the listener stops
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.router,
	}

	log.Printf("listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
