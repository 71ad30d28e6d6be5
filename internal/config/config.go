package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/KirkDiggler/scorepad/internal/scorer"
	"github.com/joho/godotenv"
)

// Config holds process configuration read from the environment
type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DiscordToken  string
	ApplicationID string
	GuildID       string

	// DefaultTargets maps game keys to the target used when none is given
	DefaultTargets map[string]int
}

// Load reads a .env file if present, then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	} else {
		log.Println("Loaded environment variables from .env")
	}

	return FromEnv()
}

// FromEnv reads configuration from the environment only
func FromEnv() (*Config, error) {
	redisDB, err := GetEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	setbackScore, err := GetEnvInt("DEFAULT_SETBACK_SCORE", 21)
	if err != nil {
		return nil, err
	}

	skyjoScore, err := GetEnvInt("DEFAULT_SKYJO_SCORE", 100)
	if err != nil {
		return nil, err
	}

	return &Config{
		RedisAddr:     GetEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		DiscordToken:  GetEnv("DISCORD_TOKEN", ""),
		ApplicationID: GetEnv("APPLICATION_ID", ""),
		GuildID:       GetEnv("GUILD_ID", ""),
		DefaultTargets: map[string]int{
			scorer.SetbackKey: setbackScore,
			scorer.SkyjoKey:   skyjoScore,
		},
	}, nil
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt gets an integer environment variable or returns a default value
func GetEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q is not an integer", key, value)
	}
	return n, nil
}
