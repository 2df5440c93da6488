package repository

import (
	"context"
	"time"
)

// ConversationCache хранит привязку chat_id -> conversation_id бэкенда.
// Привязка необязательна: её отсутствие означает "начать новый диалог".
type ConversationCache interface {
	Get(ctx context.Context, chatID int64) (string, bool, error)
	Set(ctx context.Context, chatID int64, conversationID string, ttl time.Duration) error
}
