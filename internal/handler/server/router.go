package server

import (
	"net/http"

	"github.com/poproshayka/standup-bot/internal/handler"
)

// SetupRoutes вешает вебхук на путь с токеном бота: секрет в пути -
// единственная аутентификация, которую даёт Telegram.
func SetupRoutes(mux *http.ServeMux, h *handler.Handler, webhookToken string) {
	mux.HandleFunc("POST /"+webhookToken, h.Webhook)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /healthz", h.Health)
}
