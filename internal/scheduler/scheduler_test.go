package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poproshayka/standup-bot/internal/domain"
)

type noopReports struct{}

func (noopReports) SendQuestions(ctx context.Context)          {}
func (noopReports) SendDigest(ctx context.Context, teamID int) {}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew(t *testing.T) {
	t.Run("по задаче на рассылку и на каждый отчёт", func(t *testing.T) {
		roster := &domain.Roster{Teams: []domain.Team{
			{ID: 1, Members: map[int64]string{1: "Анна"}, Managers: []int64{2}, DigestCron: "30 9 * * 1-5"},
			{ID: 2, Members: map[int64]string{3: "Пётр"}, Managers: []int64{4}, DigestCron: "0 11 * * 1-5"},
		}}

		sched, err := New(time.UTC, noopReports{}, roster, testLogger())

		require.NoError(t, err)
		assert.Len(t, sched.cron.Entries(), 3)
	})

	t.Run("кривое расписание отчёта - ошибка при старте, а не молчание", func(t *testing.T) {
		roster := &domain.Roster{Teams: []domain.Team{
			{ID: 1, Members: map[int64]string{1: "Анна"}, Managers: []int64{2}, DigestCron: "not a cron"},
		}}

		_, err := New(time.UTC, noopReports{}, roster, testLogger())

		assert.Error(t, err)
	})
}
