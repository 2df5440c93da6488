// Package dify разговаривает с conversational-бэкендом Dify:
// blocking-обмен /chat-messages и поиск существующего диалога
// через /conversations.
package dify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// HTTPStatusError captures non-2xx upstream responses with status-aware context.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("dify: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

type chatRequest struct {
	Inputs         map[string]any `json:"inputs"`
	Query          string         `json:"query"`
	ResponseMode   string         `json:"response_mode"`
	User           string         `json:"user"`
	ConversationID string         `json:"conversation_id,omitempty"`
}

type chatResponse struct {
	Answer         string `json:"answer"`
	ConversationID string `json:"conversation_id"`
}

type conversationsResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ChatResult - исход успешного обмена. ConversationID непустой, только
// если бэкенд выдал новый диалог, который нужно сохранить.
type ChatResult struct {
	Answer         string
	ConversationID string
}

type Client struct {
	apiKey     string
	baseURL    string
	chatClient *http.Client
	listClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
}

func WithChatClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.chatClient = httpClient
	}
}

func WithListClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.listClient = httpClient
	}
}

func NewClient(apiKey, baseURL string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		// Blocking-режим может думать долго, листинг диалогов - нет.
		chatClient: &http.Client{Timeout: 60 * time.Second},
		listClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResolveConversation спрашивает у бэкенда последний диалог пользователя.
// Строго вспомогательная операция: любая ошибка превращается в
// "диалога нет", наверх не поднимается.
func (c *Client) ResolveConversation(ctx context.Context, chatID int64) (string, bool) {
	endpoint := c.baseURL + "/conversations?" + url.Values{
		"user": {strconv.FormatInt(chatID, 10)},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.listClient.Do(req)
	if err != nil {
		c.logger.Error("dify: list conversations failed", "chat_id", chatID, "error", err)
		return "", false
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		c.logger.Error("dify: list conversations failed", "chat_id", chatID, "status", res.StatusCode)
		return "", false
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return "", false
	}

	var payload conversationsResponse
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Data) == 0 {
		return "", false
	}
	return payload.Data[0].ID, true
}

// Converse отправляет сообщение в /chat-messages. Если бэкенд отвечает 404
// на переданный conversation_id (диалог протух), делает ровно одну повторную
// попытку без conversation_id, и её результат считается окончательным.
func (c *Client) Converse(ctx context.Context, chatID int64, query, conversationID string) (*ChatResult, error) {
	result, status, err := c.chat(ctx, chatID, query, conversationID)
	if conversationID != "" && status == http.StatusNotFound {
		c.logger.Info("dify: conversation not found, retrying fresh", "chat_id", chatID)
		result, _, err = c.chat(ctx, chatID, query, "")
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) chat(ctx context.Context, chatID int64, query, conversationID string) (*ChatResult, int, error) {
	body, err := json.Marshal(chatRequest{
		Inputs:         map[string]any{},
		Query:          query,
		ResponseMode:   "blocking",
		User:           strconv.FormatInt(chatID, 10),
		ConversationID: conversationID,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("dify: marshal request: %w", err)
	}

	endpoint := c.baseURL + "/chat-messages"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("dify: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.chatClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("dify: request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	c.logger.Info("dify: chat exchange", "chat_id", chatID, "status", res.StatusCode)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, res.StatusCode, &HTTPStatusError{
			StatusCode: res.StatusCode,
			URL:        endpoint,
			Body:       string(buf),
		}
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, res.StatusCode, fmt.Errorf("dify: read response body: %w", err)
	}

	var payload chatResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, res.StatusCode, fmt.Errorf("dify: decode response: %w", err)
	}

	result := &ChatResult{Answer: payload.Answer}
	if conversationID == "" {
		result.ConversationID = payload.ConversationID
	}
	return result, res.StatusCode, nil
}
