package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/poproshayka/standup-bot/internal/domain"
)

var testDay = time.Date(2025, 9, 1, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAnswerService_Save(t *testing.T) {
	t.Run("пишет в оба яруса", func(t *testing.T) {
		repo := new(MockAnswerRepository)
		cache := new(MockAnswerCache)
		svc := NewAnswerService(repo, cache, discardLogger())

		repo.On("Upsert", mock.Anything, testDay, int64(42), "Алиса", "сделала X").Return(nil)
		cache.On("SetAnswer", mock.Anything, testDay, int64(42),
			domain.DayAnswer{Name: "Алиса", Summary: "сделала X"}).Return(nil)

		err := svc.Save(context.Background(), testDay, 42, "Алиса", "сделала X")

		require.NoError(t, err)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("отказ Postgres не мешает записи в кэш", func(t *testing.T) {
		repo := new(MockAnswerRepository)
		cache := new(MockAnswerCache)
		svc := NewAnswerService(repo, cache, discardLogger())

		repo.On("Upsert", mock.Anything, testDay, int64(42), "Алиса", "сделала X").
			Return(errors.New("db down"))
		cache.On("SetAnswer", mock.Anything, testDay, int64(42),
			domain.DayAnswer{Name: "Алиса", Summary: "сделала X"}).Return(nil)

		err := svc.Save(context.Background(), testDay, 42, "Алиса", "сделала X")

		require.NoError(t, err, "один живой ярус - операция удалась")
		cache.AssertExpectations(t)
	})

	t.Run("отказ кэша не ломает операцию", func(t *testing.T) {
		repo := new(MockAnswerRepository)
		cache := new(MockAnswerCache)
		svc := NewAnswerService(repo, cache, discardLogger())

		repo.On("Upsert", mock.Anything, testDay, int64(42), "Алиса", "сделала X").Return(nil)
		cache.On("SetAnswer", mock.Anything, testDay, int64(42), mock.Anything).
			Return(errors.New("redis down"))

		err := svc.Save(context.Background(), testDay, 42, "Алиса", "сделала X")

		require.NoError(t, err)
	})

	t.Run("отказ обоих ярусов - ошибка", func(t *testing.T) {
		repo := new(MockAnswerRepository)
		cache := new(MockAnswerCache)
		svc := NewAnswerService(repo, cache, discardLogger())

		repo.On("Upsert", mock.Anything, testDay, int64(42), "Алиса", "сделала X").
			Return(errors.New("db down"))
		cache.On("SetAnswer", mock.Anything, testDay, int64(42), mock.Anything).
			Return(errors.New("redis down"))

		err := svc.Save(context.Background(), testDay, 42, "Алиса", "сделала X")

		assert.Error(t, err)
	})
}

func TestAnswerService_LoadDay(t *testing.T) {
	t.Run("кэш отвечает первым", func(t *testing.T) {
		repo := new(MockAnswerRepository)
		cache := new(MockAnswerCache)
		svc := NewAnswerService(repo, cache, discardLogger())

		cache.On("GetDay", mock.Anything, testDay).Return(map[int64]domain.DayAnswer{
			42: {Name: "Алиса", Summary: "сделала X"},
		}, nil)

		answers, err := svc.LoadDay(context.Background(), testDay)

		require.NoError(t, err)
		assert.Equal(t, domain.DayAnswer{Name: "Алиса", Summary: "сделала X"}, answers[42])
		repo.AssertNotCalled(t, "ListByDay", mock.Anything, mock.Anything)
	})

	t.Run("промах кэша проваливается в Postgres и прогревает кэш", func(t *testing.T) {
		repo := new(MockAnswerRepository)
		cache := new(MockAnswerCache)
		svc := NewAnswerService(repo, cache, discardLogger())

		cache.On("GetDay", mock.Anything, testDay).Return(map[int64]domain.DayAnswer{}, nil)
		repo.On("ListByDay", mock.Anything, testDay).Return([]*domain.Answer{
			{ChatID: 42, Name: "Алиса", Summary: "сделала X"},
		}, nil)
		cache.On("FillDay", mock.Anything, testDay, map[int64]domain.DayAnswer{
			42: {Name: "Алиса", Summary: "сделала X"},
		}).Return(nil)

		answers, err := svc.LoadDay(context.Background(), testDay)

		require.NoError(t, err)
		assert.Equal(t, "Алиса", answers[42].Name)
		cache.AssertExpectations(t)
	})

	t.Run("недоступный кэш - читаем из Postgres", func(t *testing.T) {
		repo := new(MockAnswerRepository)
		cache := new(MockAnswerCache)
		svc := NewAnswerService(repo, cache, discardLogger())

		cache.On("GetDay", mock.Anything, testDay).Return(nil, errors.New("redis down"))
		repo.On("ListByDay", mock.Anything, testDay).Return([]*domain.Answer{
			{ChatID: 42, Name: "Алиса", Summary: "сделала X"},
		}, nil)
		cache.On("FillDay", mock.Anything, testDay, mock.Anything).Return(errors.New("redis down"))

		answers, err := svc.LoadDay(context.Background(), testDay)

		require.NoError(t, err)
		assert.Len(t, answers, 1)
	})

	t.Run("пусто везде - пустая карта", func(t *testing.T) {
		repo := new(MockAnswerRepository)
		cache := new(MockAnswerCache)
		svc := NewAnswerService(repo, cache, discardLogger())

		cache.On("GetDay", mock.Anything, testDay).Return(map[int64]domain.DayAnswer{}, nil)
		repo.On("ListByDay", mock.Anything, testDay).Return([]*domain.Answer{}, nil)

		answers, err := svc.LoadDay(context.Background(), testDay)

		require.NoError(t, err)
		assert.Empty(t, answers)
		cache.AssertNotCalled(t, "FillDay", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAnswerService_ClearDay(t *testing.T) {
	t.Run("чистится только кэш, Postgres не трогаем", func(t *testing.T) {
		repo := new(MockAnswerRepository)
		cache := new(MockAnswerCache)
		svc := NewAnswerService(repo, cache, discardLogger())

		cache.On("ClearDay", mock.Anything, testDay).Return(nil)

		require.NoError(t, svc.ClearDay(context.Background(), testDay))

		cache.AssertExpectations(t)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
