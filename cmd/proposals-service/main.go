package main

import (
	"fmt"
	"os"

	"github.com/brightwave-agency/proposals-service/internal/auth"
	"github.com/brightwave-agency/proposals-service/internal/config"
	"github.com/brightwave-agency/proposals-service/internal/db"
	"github.com/brightwave-agency/proposals-service/internal/excel"
	httphandler "github.com/brightwave-agency/proposals-service/internal/http"
	"github.com/brightwave-agency/proposals-service/internal/http/middleware"
	"github.com/brightwave-agency/proposals-service/internal/logger"
	"github.com/brightwave-agency/proposals-service/internal/pdf"
	"github.com/brightwave-agency/proposals-service/internal/repository"
	"github.com/brightwave-agency/proposals-service/internal/service"
	"github.com/brightwave-agency/proposals-service/internal/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	proposalRepo := repository.NewProposalRepository(database)
	eventRepo := repository.NewEventRepository(database)
	templateRepo := repository.NewTemplateRepository(database)

	proposalService := service.NewProposalService(proposalRepo, eventRepo, templateRepo, pdf.NewGenerator())
	eventService := service.NewEventService(eventRepo, proposalRepo, excel.NewGenerator())

	tokens := auth.NewManager(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)
	authService := auth.NewService(tokens, cfg.Auth.AdminEmail, cfg.Auth.AdminPasswordHash)

	uploader, err := upload.New(cfg.Upload.Dir, cfg.Upload.MaxSizeBytes)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init upload dir")
	}

	handler := httphandler.NewHandler(proposalService, eventService, authService, uploader, log)
	authMiddleware := middleware.Auth(tokens)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, cfg.Upload.Dir, cfg.HTTP.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting proposals service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
