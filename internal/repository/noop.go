package repository

import (
	"context"
	"time"

	"github.com/poproshayka/standup-bot/internal/domain"
)

// No-op реализации хранилищ. Подставляются при старте, когда REDIS_URL
// или DATABASE_URL не заданы: бот продолжает работать на оставшемся
// ярусе, сервисам не нужны проверки на nil.

type NoopAnswerRepository struct{}

func (NoopAnswerRepository) Upsert(ctx context.Context, day time.Time, chatID int64, name, summary string) error {
	return nil
}

func (NoopAnswerRepository) ListByDay(ctx context.Context, day time.Time) ([]*domain.Answer, error) {
	return nil, nil
}

type NoopAnswerCache struct{}

func (NoopAnswerCache) SetAnswer(ctx context.Context, day time.Time, chatID int64, answer domain.DayAnswer) error {
	return nil
}

func (NoopAnswerCache) GetDay(ctx context.Context, day time.Time) (map[int64]domain.DayAnswer, error) {
	return nil, nil
}

func (NoopAnswerCache) FillDay(ctx context.Context, day time.Time, answers map[int64]domain.DayAnswer) error {
	return nil
}

func (NoopAnswerCache) ClearDay(ctx context.Context, day time.Time) error {
	return nil
}

type NoopConversationCache struct{}

func (NoopConversationCache) Get(ctx context.Context, chatID int64) (string, bool, error) {
	return "", false, nil
}

func (NoopConversationCache) Set(ctx context.Context, chatID int64, conversationID string, ttl time.Duration) error {
	return nil
}
