package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/poproshayka/standup-bot/internal/domain"
)

type answerRepository struct {
	executor DBExecutor
}

func NewAnswerRepository(db *sql.DB) *answerRepository {
	return &answerRepository{executor: db}
}

func NewAnswerRepositoryWithTx(tx *sql.Tx) *answerRepository {
	return &answerRepository{executor: tx}
}

// Upsert пишет ответ за (day, chat_id). Повторная запись за тот же день
// перетирает текст и имя, created_at не меняется.
func (r *answerRepository) Upsert(ctx context.Context, day time.Time, chatID int64, name, summary string) error {
	query := `
		INSERT INTO answers (day, chat_id, user_name, summary)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (day, chat_id)
		DO UPDATE SET user_name  = EXCLUDED.user_name,
		              summary    = EXCLUDED.summary,
		              updated_at = now()
	`

	_, err := r.executor.ExecContext(ctx, query, day.Format(domain.DayFormat), chatID, name, summary)
	return err
}

func (r *answerRepository) ListByDay(ctx context.Context, day time.Time) ([]*domain.Answer, error) {
	query := `
		SELECT id, day, chat_id, user_name, summary, created_at, updated_at
		FROM answers
		WHERE day = $1
		ORDER BY chat_id
	`

	rows, err := r.executor.QueryContext(ctx, query, day.Format(domain.DayFormat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []*domain.Answer
	for rows.Next() {
		answer := &domain.Answer{}
		err := rows.Scan(
			&answer.ID,
			&answer.Day,
			&answer.ChatID,
			&answer.Name,
			&answer.Summary,
			&answer.CreatedAt,
			&answer.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}

	return answers, rows.Err()
}
