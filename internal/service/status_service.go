package service

import (
	"context"

	"github.com/poproshayka/standup-bot/internal/dify"
)

// StatusService прогоняет входящее сообщение через весь конвейер:
// диалог -> бэкенд -> извлечение сводки -> сохранение -> ответ в чат.
type StatusService interface {
	// HandleMessage обрабатывает одно сообщение. Ошибок не возвращает:
	// любой сбой логируется и по возможности показывается пользователю,
	// вебхук в любом случае подтверждается.
	HandleMessage(ctx context.Context, chatID int64, text string)
}

// Sender отправляет текст в чат мессенджера.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// AIGateway - клиент conversational-бэкенда.
type AIGateway interface {
	ResolveConversation(ctx context.Context, chatID int64) (string, bool)
	Converse(ctx context.Context, chatID int64, query, conversationID string) (*dify.ChatResult, error)
}
