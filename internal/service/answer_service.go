package service

import (
	"context"
	"time"

	"github.com/poproshayka/standup-bot/internal/domain"
)

// AnswerService - единая точка двойной записи "кэш + история".
// Снаружи не видно, какой ярус ответил: кэш лучше всего, Postgres - истина.
type AnswerService interface {
	// Save сохраняет ответ за (day, chatID) в оба яруса. Ошибка
	// возвращается, только если не записался ни один.
	Save(ctx context.Context, day time.Time, chatID int64, name, summary string) error

	// LoadDay отдаёт все ответы за день: сначала кэш, при промахе -
	// Postgres с прогревом кэша. Пустая карта - ответов нет нигде.
	LoadDay(ctx context.Context, day time.Time) (map[int64]domain.DayAnswer, error)

	// ClearDay чистит только дневной бакет кэша, история остаётся.
	ClearDay(ctx context.Context, day time.Time) error
}
