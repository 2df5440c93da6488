package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/poproshayka/standup-bot/internal/domain"
)

const questionTextWeekday = "Доброе утро! ☀️\n\n" +
	"Пожалуйста, ответьте на 3 вопроса:\n" +
	"1. Что делали вчера?\n" +
	"2. Что планируете сегодня?\n" +
	"3. Есть ли блокеры?"

const questionTextMonday = "Доброе утро! ☀️\n\n" +
	"Пожалуйста, ответьте на 3 вопроса:\n" +
	"1. Что делали в пятницу?\n" +
	"2. Что планируете сегодня?\n" +
	"3. Есть ли блокеры?"

const digestHeader = "📝 Статусы на отчётное время:\n"

// Пауза между отправками, чтобы не упереться в лимиты Telegram.
const defaultThrottle = time.Second

type reportService struct {
	answers  AnswerService
	sender   Sender
	roster   *domain.Roster
	location *time.Location
	throttle time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

func NewReportService(
	answers AnswerService,
	sender Sender,
	roster *domain.Roster,
	location *time.Location,
	logger *slog.Logger,
) ReportService {
	return &reportService{
		answers:  answers,
		sender:   sender,
		roster:   roster,
		location: location,
		throttle: defaultThrottle,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *reportService) SendQuestions(ctx context.Context) {
	today := s.now().In(s.location)
	if isWeekend(today) {
		s.logger.Info("reports: weekend, skipping questions")
		return
	}

	text := questionTextWeekday
	if today.Weekday() == time.Monday {
		text = questionTextMonday
	}

	// Вчерашний бакет дню уже не принадлежит: чистим сегодняшний,
	// чтобы отчёт собирал только свежие ответы.
	if err := s.answers.ClearDay(ctx, today); err != nil {
		s.logger.Error("reports: clear day failed", "error", err)
	}

	for _, team := range s.roster.Teams {
		for _, chatID := range sortedMemberIDs(team.Members) {
			if err := s.sender.SendMessage(ctx, chatID, text); err != nil {
				s.logger.Error("reports: question send failed",
					"team", team.ID, "chat_id", chatID, "error", err)
			} else {
				s.logger.Info("reports: question sent",
					"team", team.ID, "chat_id", chatID, "name", team.Members[chatID])
			}
			time.Sleep(s.throttle)
		}
	}
}

func (s *reportService) SendDigest(ctx context.Context, teamID int) {
	today := s.now().In(s.location)
	if isWeekend(today) {
		s.logger.Info("reports: weekend, skipping digest", "team", teamID)
		return
	}

	team, ok := s.teamByID(teamID)
	if !ok {
		s.logger.Error("reports: unknown team", "team", teamID)
		return
	}

	answers, err := s.answers.LoadDay(ctx, today)
	if err != nil {
		s.logger.Error("reports: load answers failed", "team", teamID, "error", err)
		answers = nil
	}

	digest := buildDigest(team, answers)

	for _, managerID := range team.Managers {
		if err := s.sender.SendMessage(ctx, managerID, digest); err != nil {
			s.logger.Error("reports: digest send failed",
				"team", teamID, "manager", managerID, "error", err)
		} else {
			s.logger.Info("reports: digest sent", "team", teamID, "manager", managerID)
		}
		time.Sleep(s.throttle)
	}
}

func (s *reportService) teamByID(teamID int) (domain.Team, bool) {
	for _, team := range s.roster.Teams {
		if team.ID == teamID {
			return team, true
		}
	}
	return domain.Team{}, false
}

// buildDigest собирает отчёт: каждый участник со своей сводкой или
// прочерком, в конце счётчик ответивших.
func buildDigest(team domain.Team, answers map[int64]domain.DayAnswer) string {
	lines := []string{digestHeader}
	total := len(team.Members)
	responded := 0

	for _, chatID := range sortedMemberIDs(team.Members) {
		name := team.Members[chatID]
		if answer, ok := answers[chatID]; ok {
			lines = append(lines, fmt.Sprintf("— %s:\n%s\n", name, answer.Summary))
			responded++
		} else {
			lines = append(lines, fmt.Sprintf("— %s:\n- (прочерк)\n", name))
		}
	}

	lines = append(lines, fmt.Sprintf("Отчитались: %d/%d", responded, total))
	return strings.Join(lines, "\n")
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// sortedMemberIDs даёт стабильный порядок обхода: карты в Go
// итерируются случайно, а отчёт должен быть воспроизводимым.
func sortedMemberIDs(members map[int64]string) []int64 {
	ids := make([]int64, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
