package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/poproshayka/standup-bot/internal/cache"
	"github.com/poproshayka/standup-bot/internal/config"
	"github.com/poproshayka/standup-bot/internal/db"
	"github.com/poproshayka/standup-bot/internal/dify"
	"github.com/poproshayka/standup-bot/internal/handler"
	"github.com/poproshayka/standup-bot/internal/handler/server"
	"github.com/poproshayka/standup-bot/internal/repository"
	"github.com/poproshayka/standup-bot/internal/repository/postgres"
	"github.com/poproshayka/standup-bot/internal/repository/rediscache"
	"github.com/poproshayka/standup-bot/internal/scheduler"
	"github.com/poproshayka/standup-bot/internal/service"
	"github.com/poproshayka/standup-bot/internal/telegram"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	roster, err := config.LoadRoster(cfg.RosterPath)
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}

	ctx := context.Background()

	// Каждый ярус хранения опционален: без него бот деградирует,
	// но не отказывается стартовать.
	var answerRepo repository.AnswerRepository = repository.NoopAnswerRepository{}
	if cfg.DatabaseURL != "" {
		database, err := db.NewPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()
		if err := db.InitSchema(ctx, database); err != nil {
			log.Fatalf("Failed to init schema: %v", err)
		}
		log.Println("Successfully connected to database!")
		answerRepo = postgres.NewAnswerRepository(database)
	} else {
		log.Println("WARN: DATABASE_URL is not set, history is disabled")
	}

	var answerCache repository.AnswerCache = repository.NoopAnswerCache{}
	var conversations repository.ConversationCache = repository.NoopConversationCache{}
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		log.Println("Successfully connected to redis!")
		answerCache = rediscache.NewAnswerCache(redisClient)
		conversations = rediscache.NewConversationCache(redisClient)
	} else {
		log.Println("WARN: REDIS_URL is not set, day cache is disabled")
	}

	sender := telegram.NewClient(cfg.TelegramToken)
	gateway := dify.NewClient(cfg.DifyAPIKey, cfg.DifyAPIURL, logger)

	answerService := service.NewAnswerService(answerRepo, answerCache, logger)
	statusService := service.NewStatusService(
		conversations, gateway, answerService, sender, roster, cfg.Location, logger)
	reportService := service.NewReportService(
		answerService, sender, roster, cfg.Location, logger)

	sched, err := scheduler.New(cfg.Location, reportService, roster, logger)
	if err != nil {
		log.Fatalf("Failed to build schedule: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	h := handler.NewHandler(statusService, logger)
	srv := server.NewServer(h, cfg.ListenAddr, cfg.TelegramToken)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
