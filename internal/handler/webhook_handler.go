package handler

import (
	"encoding/json"
	"net/http"
)

// Webhook принимает апдейт от Telegram. Апстриму всегда отвечаем 200 "ok":
// любой другой статус провоцирует бесконечные повторные доставки.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	var update Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		// Кривое тело - не ошибка, а чужой или пустой апдейт.
		h.ack(w)
		return
	}

	if update.Message == nil || update.Message.Text == "" {
		h.ack(w)
		return
	}

	h.statusService.HandleMessage(r.Context(), update.Message.Chat.ID, update.Message.Text)
	h.ack(w)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}

func (h *Handler) ack(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
