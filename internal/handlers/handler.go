package handlers

import (
	"log/slog"

	"vrmhub/internal/config"
	"vrmhub/internal/services"

	"gorm.io/gorm"
)

type Handler struct {
	cfg            config.Config
	logger         *slog.Logger
	db             *gorm.DB
	tokenService   *services.TokenService
	libraryService *services.LibraryService
	auditService   *services.AuditService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	tokenService *services.TokenService,
	libraryService *services.LibraryService,
	auditService *services.AuditService,
) *Handler {
	return &Handler{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		tokenService:   tokenService,
		libraryService: libraryService,
		auditService:   auditService,
	}
}
