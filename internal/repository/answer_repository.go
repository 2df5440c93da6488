package repository

import (
	"context"
	"time"

	"github.com/poproshayka/standup-bot/internal/domain"
)

// AnswerRepository - долговременная история ответов (Postgres).
// Источник истины: кэш может протухнуть, эта таблица - нет.
type AnswerRepository interface {
	Upsert(ctx context.Context, day time.Time, chatID int64, name, summary string) error
	ListByDay(ctx context.Context, day time.Time) ([]*domain.Answer, error)
}
