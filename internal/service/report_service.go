package service

import "context"

// ReportService - плановые рассылки: утренние вопросы сотрудникам
// и дневные отчёты менеджерам.
type ReportService interface {
	// SendQuestions чистит дневной бакет и рассылает вопросы всем
	// участникам всех команд. В выходные - no-op.
	SendQuestions(ctx context.Context)

	// SendDigest собирает отчёт команды за сегодня и шлёт её менеджерам.
	// В выходные - no-op.
	SendDigest(ctx context.Context, teamID int)
}
