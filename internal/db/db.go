package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// pgx работает через extended protocol: по одному statement на Exec.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS answers (
	  id          bigserial PRIMARY KEY,
	  day         date        NOT NULL,
	  chat_id     bigint      NOT NULL,
	  user_name   text        NOT NULL,
	  summary     text        NOT NULL,
	  created_at  timestamptz NOT NULL DEFAULT now(),
	  updated_at  timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_answers_day_chat
	  ON answers(day, chat_id)`,
}

func NewPostgres(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// InitSchema создаёт таблицу ответов и уникальный индекс (day, chat_id),
// если их ещё нет. Идемпотентно, вызывается при каждом старте.
func InitSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to init schema: %w", err)
		}
	}
	return nil
}
