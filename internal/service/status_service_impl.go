package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/poproshayka/standup-bot/internal/dify"
	"github.com/poproshayka/standup-bot/internal/domain"
	"github.com/poproshayka/standup-bot/internal/repository"
	"github.com/poproshayka/standup-bot/internal/summary"
)

const (
	// Привязка к диалогу живёт неделю: дальше бэкенд начнёт новый.
	conversationTTL = 7 * 24 * time.Hour

	unknownUserName = "Неизвестный"

	// Ответ пользователю, когда маркер есть, а текста после него нет.
	emptySummaryReply = "Принято."
)

type statusService struct {
	conversations repository.ConversationCache
	gateway       AIGateway
	answers       AnswerService
	sender        Sender
	roster        *domain.Roster
	location      *time.Location
	logger        *slog.Logger
	now           func() time.Time
}

func NewStatusService(
	conversations repository.ConversationCache,
	gateway AIGateway,
	answers AnswerService,
	sender Sender,
	roster *domain.Roster,
	location *time.Location,
	logger *slog.Logger,
) StatusService {
	return &statusService{
		conversations: conversations,
		gateway:       gateway,
		answers:       answers,
		sender:        sender,
		roster:        roster,
		location:      location,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *statusService) HandleMessage(ctx context.Context, chatID int64, text string) {
	conversationID := s.resolveConversation(ctx, chatID)

	result, err := s.gateway.Converse(ctx, chatID, text, conversationID)
	if err != nil {
		s.logger.Error("status: gateway exchange failed", "chat_id", chatID, "error", err)
		s.reply(ctx, chatID, "⚠️ Ошибка при обращении к Dify: "+gatewayErrorCause(err))
		return
	}

	if result.ConversationID != "" {
		if err := s.conversations.Set(ctx, chatID, result.ConversationID, conversationTTL); err != nil {
			s.logger.Error("status: save conversation failed", "chat_id", chatID, "error", err)
		} else {
			s.logger.Info("status: new conversation", "chat_id", chatID, "conversation_id", result.ConversationID)
		}
	}

	summaryText, ok := summary.Extract(result.Answer)
	if !ok {
		// Промежуточная реплика диалога: проксируем как есть.
		s.reply(ctx, chatID, result.Answer)
		return
	}

	name, known := s.roster.Name(chatID)
	if !known {
		name = unknownUserName
	}

	day := s.now().In(s.location)
	if err := s.answers.Save(ctx, day, chatID, name, summaryText); err != nil {
		s.logger.Error("status: save answer failed", "chat_id", chatID, "error", err)
	}

	replyText := summaryText
	if replyText == "" {
		replyText = emptySummaryReply
	}
	s.reply(ctx, chatID, replyText)
}

// resolveConversation достаёт привязку из кэша, при промахе спрашивает
// бэкенд. Пустая строка - диалога нет, начинаем новый.
func (s *statusService) resolveConversation(ctx context.Context, chatID int64) string {
	conversationID, ok, err := s.conversations.Get(ctx, chatID)
	if err != nil {
		// Недоступный кэш - это всего лишь "диалог неизвестен".
		s.logger.Error("status: conversation cache read failed", "chat_id", chatID, "error", err)
	}
	if ok {
		return conversationID
	}

	conversationID, ok = s.gateway.ResolveConversation(ctx, chatID)
	if !ok {
		s.logger.Info("status: no existing conversation", "chat_id", chatID)
		return ""
	}

	if err := s.conversations.Set(ctx, chatID, conversationID, conversationTTL); err != nil {
		s.logger.Error("status: save conversation failed", "chat_id", chatID, "error", err)
	}
	return conversationID
}

func (s *statusService) reply(ctx context.Context, chatID int64, text string) {
	if err := s.sender.SendMessage(ctx, chatID, text); err != nil {
		s.logger.Error("status: reply failed", "chat_id", chatID, "error", err)
	}
}

func gatewayErrorCause(err error) string {
	var statusErr *dify.HTTPStatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.StatusCode)
	}
	return "нет ответа"
}
