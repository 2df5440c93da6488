package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/poproshayka/standup-bot/internal/domain"
)

// Бакет дня живёт 21 день: достаточно, чтобы пережить любые выходные
// и праздники, история всё равно в Postgres.
const answersTTL = 21 * 24 * time.Hour

type answerCache struct {
	client *redis.Client
}

func NewAnswerCache(client *redis.Client) *answerCache {
	return &answerCache{client: client}
}

func answersKey(day time.Time) string {
	return "answers:" + domain.DayKey(day)
}

func (c *answerCache) SetAnswer(ctx context.Context, day time.Time, chatID int64, answer domain.DayAnswer) error {
	raw, err := json.Marshal(answer)
	if err != nil {
		return fmt.Errorf("marshal answer: %w", err)
	}

	key := answersKey(day)
	pipe := c.client.Pipeline()
	pipe.HSet(ctx, key, strconv.FormatInt(chatID, 10), raw)
	pipe.Expire(ctx, key, answersTTL)
	_, err = pipe.Exec(ctx)
	return err
}

func (c *answerCache) GetDay(ctx context.Context, day time.Time) (map[int64]domain.DayAnswer, error) {
	raw, err := c.client.HGetAll(ctx, answersKey(day)).Result()
	if err != nil {
		return nil, err
	}

	out := make(map[int64]domain.DayAnswer, len(raw))
	for field, value := range raw {
		chatID, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			continue
		}
		var answer domain.DayAnswer
		if err := json.Unmarshal([]byte(value), &answer); err != nil {
			continue
		}
		out[chatID] = answer
	}
	return out, nil
}

func (c *answerCache) FillDay(ctx context.Context, day time.Time, answers map[int64]domain.DayAnswer) error {
	if len(answers) == 0 {
		return nil
	}

	key := answersKey(day)
	pipe := c.client.Pipeline()
	for chatID, answer := range answers {
		raw, err := json.Marshal(answer)
		if err != nil {
			return fmt.Errorf("marshal answer: %w", err)
		}
		pipe.HSet(ctx, key, strconv.FormatInt(chatID, 10), raw)
	}
	pipe.Expire(ctx, key, answersTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *answerCache) ClearDay(ctx context.Context, day time.Time) error {
	return c.client.Del(ctx, answersKey(day)).Err()
}
