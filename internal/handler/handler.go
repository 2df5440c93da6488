package handler

import (
	"log/slog"

	"github.com/poproshayka/standup-bot/internal/service"
)

type Handler struct {
	statusService service.StatusService
	logger        *slog.Logger
}

func NewHandler(statusService service.StatusService, logger *slog.Logger) *Handler {
	return &Handler{
		statusService: statusService,
		logger:        logger,
	}
}
