package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/poproshayka/standup-bot/internal/dify"
	"github.com/poproshayka/standup-bot/internal/domain"
)

type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) Upsert(ctx context.Context, day time.Time, chatID int64, name, summary string) error {
	args := m.Called(ctx, day, chatID, name, summary)
	return args.Error(0)
}

func (m *MockAnswerRepository) ListByDay(ctx context.Context, day time.Time) ([]*domain.Answer, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Answer), args.Error(1)
}

type MockAnswerCache struct {
	mock.Mock
}

func (m *MockAnswerCache) SetAnswer(ctx context.Context, day time.Time, chatID int64, answer domain.DayAnswer) error {
	args := m.Called(ctx, day, chatID, answer)
	return args.Error(0)
}

func (m *MockAnswerCache) GetDay(ctx context.Context, day time.Time) (map[int64]domain.DayAnswer, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.DayAnswer), args.Error(1)
}

func (m *MockAnswerCache) FillDay(ctx context.Context, day time.Time, answers map[int64]domain.DayAnswer) error {
	args := m.Called(ctx, day, answers)
	return args.Error(0)
}

func (m *MockAnswerCache) ClearDay(ctx context.Context, day time.Time) error {
	args := m.Called(ctx, day)
	return args.Error(0)
}

type MockConversationCache struct {
	mock.Mock
}

func (m *MockConversationCache) Get(ctx context.Context, chatID int64) (string, bool, error) {
	args := m.Called(ctx, chatID)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockConversationCache) Set(ctx context.Context, chatID int64, conversationID string, ttl time.Duration) error {
	args := m.Called(ctx, chatID, conversationID, ttl)
	return args.Error(0)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	args := m.Called(ctx, chatID, text)
	return args.Error(0)
}

type MockAIGateway struct {
	mock.Mock
}

func (m *MockAIGateway) ResolveConversation(ctx context.Context, chatID int64) (string, bool) {
	args := m.Called(ctx, chatID)
	return args.String(0), args.Bool(1)
}

func (m *MockAIGateway) Converse(ctx context.Context, chatID int64, query, conversationID string) (*dify.ChatResult, error) {
	args := m.Called(ctx, chatID, query, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dify.ChatResult), args.Error(1)
}

type MockAnswerService struct {
	mock.Mock
}

func (m *MockAnswerService) Save(ctx context.Context, day time.Time, chatID int64, name, summary string) error {
	args := m.Called(ctx, day, chatID, name, summary)
	return args.Error(0)
}

func (m *MockAnswerService) LoadDay(ctx context.Context, day time.Time) (map[int64]domain.DayAnswer, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.DayAnswer), args.Error(1)
}

func (m *MockAnswerService) ClearDay(ctx context.Context, day time.Time) error {
	args := m.Called(ctx, day)
	return args.Error(0)
}
