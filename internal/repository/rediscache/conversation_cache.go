package rediscache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type conversationCache struct {
	client *redis.Client
}

func NewConversationCache(client *redis.Client) *conversationCache {
	return &conversationCache{client: client}
}

func conversationKey(chatID int64) string {
	return "conv:" + strconv.FormatInt(chatID, 10)
}

func (c *conversationCache) Get(ctx context.Context, chatID int64) (string, bool, error) {
	value, err := c.client.Get(ctx, conversationKey(chatID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (c *conversationCache) Set(ctx context.Context, chatID int64, conversationID string, ttl time.Duration) error {
	return c.client.Set(ctx, conversationKey(chatID), conversationID, ttl).Err()
}
