package repository

import (
	"context"
	"time"

	"github.com/poproshayka/standup-bot/internal/domain"
)

// AnswerCache - быстрый дневной буфер ответов (Redis-hash на день).
// Ускоритель поверх AnswerRepository, никогда не источник истины.
type AnswerCache interface {
	// SetAnswer кладёт ответ пользователя в бакет дня и продлевает
	// срок жизни бакета.
	SetAnswer(ctx context.Context, day time.Time, chatID int64, answer domain.DayAnswer) error

	// GetDay возвращает все ответы за день; пустая карта - бакета нет.
	GetDay(ctx context.Context, day time.Time) (map[int64]domain.DayAnswer, error)

	// FillDay прогревает бакет дня целиком (после чтения из Postgres).
	FillDay(ctx context.Context, day time.Time, answers map[int64]domain.DayAnswer) error

	// ClearDay удаляет только бакет дня, историю в Postgres не трогает.
	ClearDay(ctx context.Context, day time.Time) error
}
