package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/poproshayka/standup-bot/internal/domain"
	"github.com/poproshayka/standup-bot/internal/repository"
)

type answerService struct {
	answerRepo  repository.AnswerRepository
	answerCache repository.AnswerCache
	logger      *slog.Logger
}

func NewAnswerService(
	answerRepo repository.AnswerRepository,
	answerCache repository.AnswerCache,
	logger *slog.Logger,
) AnswerService {
	return &answerService{
		answerRepo:  answerRepo,
		answerCache: answerCache,
		logger:      logger,
	}
}

func (s *answerService) Save(ctx context.Context, day time.Time, chatID int64, name, summary string) error {
	// Отказ Postgres не мешает записи в кэш: сегодняшнюю правду
	// менеджеры всё равно получат из дневного бакета.
	repoErr := s.answerRepo.Upsert(ctx, day, chatID, name, summary)
	if repoErr != nil {
		s.logger.Error("answers: durable upsert failed", "chat_id", chatID, "error", repoErr)
	}

	cacheErr := s.answerCache.SetAnswer(ctx, day, chatID, domain.DayAnswer{Name: name, Summary: summary})
	if cacheErr != nil {
		s.logger.Error("answers: cache write failed", "chat_id", chatID, "error", cacheErr)
	}

	if repoErr != nil && cacheErr != nil {
		return fmt.Errorf("save answer: %w", repoErr)
	}
	return nil
}

func (s *answerService) LoadDay(ctx context.Context, day time.Time) (map[int64]domain.DayAnswer, error) {
	cached, err := s.answerCache.GetDay(ctx, day)
	if err != nil {
		s.logger.Error("answers: cache read failed", "day", domain.DayKey(day), "error", err)
	}
	if len(cached) > 0 {
		return cached, nil
	}

	rows, err := s.answerRepo.ListByDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("load answers for %s: %w", domain.DayKey(day), err)
	}

	out := make(map[int64]domain.DayAnswer, len(rows))
	for _, row := range rows {
		out[row.ChatID] = domain.DayAnswer{Name: row.Name, Summary: row.Summary}
	}

	// Прогреваем кэш, чтобы следующий отчёт того же дня не ходил в базу.
	if len(out) > 0 {
		if err := s.answerCache.FillDay(ctx, day, out); err != nil {
			s.logger.Error("answers: cache warmup failed", "day", domain.DayKey(day), "error", err)
		}
	}

	return out, nil
}

func (s *answerService) ClearDay(ctx context.Context, day time.Time) error {
	return s.answerCache.ClearDay(ctx, day)
}
