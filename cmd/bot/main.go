package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/scorepad/internal/common/clock"
	"github.com/KirkDiggler/scorepad/internal/common/uuid"
	"github.com/KirkDiggler/scorepad/internal/config"
	"github.com/KirkDiggler/scorepad/internal/handlers/discord"
	"github.com/KirkDiggler/scorepad/internal/repositories/result"
	"github.com/KirkDiggler/scorepad/internal/repositories/scoresheet"
	"github.com/KirkDiggler/scorepad/internal/services/messaging"
	"github.com/KirkDiggler/scorepad/internal/services/scorepad"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	sheetRepo, err := scoresheet.NewRedis(&scoresheet.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create score sheet repository: %v", err)
	}

	resultRepo, err := result.NewRedis(&result.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create result repository: %v", err)
	}

	// Initialize score pad service
	scorepadSvc, err := scorepad.New(&scorepad.Config{
		MaxPlayers:    10,
		SheetRepo:     sheetRepo,
		ResultRepo:    resultRepo,
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create score pad service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		ScorepadService:  scorepadSvc,
		MessagingService: messagingSvc,
		DefaultTargets:   cfg.DefaultTargets,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Bot has been shut down")
}
