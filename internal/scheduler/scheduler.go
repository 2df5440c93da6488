// Package scheduler запускает плановые рассылки по cron-расписанию
// в часовом поясе бота.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/poproshayka/standup-bot/internal/domain"
	"github.com/poproshayka/standup-bot/internal/service"
)

// Утренние вопросы: будни, 09:00 по часовому поясу бота.
const questionsCron = "0 9 * * 1-5"

type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// New собирает расписание: одна общая рассылка вопросов и по одному
// отчёту на команду в её собственное время.
func New(
	location *time.Location,
	reports service.ReportService,
	roster *domain.Roster,
	logger *slog.Logger,
) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(location))

	if _, err := c.AddFunc(questionsCron, func() {
		reports.SendQuestions(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("schedule questions: %w", err)
	}

	for _, team := range roster.Teams {
		teamID := team.ID
		if _, err := c.AddFunc(team.DigestCron, func() {
			reports.SendDigest(context.Background(), teamID)
		}); err != nil {
			return nil, fmt.Errorf("schedule digest for team %d: %w", teamID, err)
		}
	}

	return &Scheduler{cron: c, logger: logger}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop останавливает расписание и ждёт завершения уже запущенных задач.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}
