package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatusService struct {
	calls []call
}

type call struct {
	chatID int64
	text   string
}

func (f *fakeStatusService) HandleMessage(ctx context.Context, chatID int64, text string) {
	f.calls = append(f.calls, call{chatID: chatID, text: text})
}

func setupHandler() (*Handler, *fakeStatusService) {
	svc := &fakeStatusService{}
	return NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil))), svc
}

func postWebhook(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/test-token", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Webhook(rec, req)
	return rec
}

func TestHandler_Webhook(t *testing.T) {
	t.Run("текстовое сообщение уходит в конвейер", func(t *testing.T) {
		h, svc := setupHandler()

		rec := postWebhook(h, `{"message":{"chat":{"id":42},"text":"мой статус"}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
		require.Len(t, svc.calls, 1)
		assert.Equal(t, int64(42), svc.calls[0].chatID)
		assert.Equal(t, "мой статус", svc.calls[0].text)
	})

	t.Run("апдейт без текста подтверждается и ничего не запускает", func(t *testing.T) {
		h, svc := setupHandler()

		rec := postWebhook(h, `{"message":{"chat":{"id":42},"photo":[]}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
		assert.Empty(t, svc.calls)
	})

	t.Run("апдейт без message подтверждается", func(t *testing.T) {
		h, svc := setupHandler()

		rec := postWebhook(h, `{"edited_message":{"chat":{"id":42}}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, svc.calls)
	})

	t.Run("кривое тело - всё равно 200, иначе Telegram будет ретраить", func(t *testing.T) {
		h, svc := setupHandler()

		rec := postWebhook(h, `{not json`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
		assert.Empty(t, svc.calls)
	})
}

func TestHandler_Health(t *testing.T) {
	h, _ := setupHandler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
