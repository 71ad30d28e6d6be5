package scoresheet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/scorepad/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sheetKeyPrefix   = "sheet:"
	channelKeyPrefix = "channel_sheet:"
	activeSheetsKey  = "active_sheets"
)

// ErrSheetNotFound is returned when a sheet is not found
var ErrSheetNotFound = errors.New("score sheet not found")

// Config holds configuration for the Redis score sheet repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed score sheet repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSheet persists a sheet to Redis
func (r *redisRepository) SaveSheet(ctx context.Context, input *SaveSheetInput) error {
	if input == nil || input.Sheet == nil {
		return errors.New("input and sheet cannot be nil")
	}

	if input.Sheet.ID == "" {
		return errors.New("sheet ID cannot be empty")
	}

	sheetJSON, err := json.Marshal(input.Sheet)
	if err != nil {
		return fmt.Errorf("failed to marshal sheet: %w", err)
	}

	pipe := r.client.TxPipeline()

	sheetKey := sheetKeyPrefix + input.Sheet.ID
	pipe.Set(ctx, sheetKey, sheetJSON, 0)

	// The channel always points at its most recently saved sheet
	if input.Sheet.ChannelID != "" {
		pipe.Set(ctx, channelKeyPrefix+input.Sheet.ChannelID, input.Sheet.ID, 0)
	}

	if input.Sheet.Status.IsOpen() {
		pipe.SAdd(ctx, activeSheetsKey, input.Sheet.ID)
	} else {
		pipe.SRem(ctx, activeSheetsKey, input.Sheet.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save sheet: %w", err)
	}

	return nil
}

// GetSheet retrieves a sheet by ID from Redis
func (r *redisRepository) GetSheet(ctx context.Context, input *GetSheetInput) (*models.ScoreSheet, error) {
	if input == nil || input.SheetID == "" {
		return nil, errors.New("input and sheet ID cannot be empty")
	}

	sheetJSON, err := r.client.Get(ctx, sheetKeyPrefix+input.SheetID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSheetNotFound
		}
		return nil, fmt.Errorf("failed to get sheet: %w", err)
	}

	var sheet models.ScoreSheet
	if err := json.Unmarshal([]byte(sheetJSON), &sheet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sheet: %w", err)
	}

	return &sheet, nil
}

// GetSheetByChannel retrieves the latest sheet for a channel from Redis
func (r *redisRepository) GetSheetByChannel(ctx context.Context, input *GetSheetByChannelInput) (*models.ScoreSheet, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	sheetID, err := r.client.Get(ctx, channelKeyPrefix+input.ChannelID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSheetNotFound
		}
		return nil, fmt.Errorf("failed to get sheet ID for channel: %w", err)
	}

	return r.GetSheet(ctx, &GetSheetInput{
		SheetID: sheetID,
	})
}

// DeleteSheet removes a sheet from Redis
func (r *redisRepository) DeleteSheet(ctx context.Context, input *DeleteSheetInput) error {
	if input == nil || input.SheetID == "" {
		return errors.New("input and sheet ID cannot be empty")
	}

	sheet, err := r.GetSheet(ctx, &GetSheetInput{
		SheetID: input.SheetID,
	})
	if err != nil {
		return err
	}

	// Leave the channel mapping alone if a newer sheet owns it
	var channelKey string
	if sheet.ChannelID != "" {
		channelKey = channelKeyPrefix + sheet.ChannelID
		current, err := r.client.Get(ctx, channelKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to get sheet ID for channel: %w", err)
		}
		if current != sheet.ID {
			channelKey = ""
		}
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, sheetKeyPrefix+input.SheetID)
	if channelKey != "" {
		pipe.Del(ctx, channelKey)
	}
	pipe.SRem(ctx, activeSheetsKey, input.SheetID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete sheet: %w", err)
	}

	return nil
}

// GetActiveSheets retrieves all open sheets from Redis, oldest first
func (r *redisRepository) GetActiveSheets(ctx context.Context, input *GetActiveSheetsInput) (*GetActiveSheetsOutput, error) {
	sheetIDs, err := r.client.SMembers(ctx, activeSheetsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active sheet IDs: %w", err)
	}

	if len(sheetIDs) == 0 {
		return &GetActiveSheetsOutput{
			Sheets: []*models.ScoreSheet{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(sheetIDs))
	for i, sheetID := range sheetIDs {
		cmds[i] = pipe.Get(ctx, sheetKeyPrefix+sheetID)
	}

	// redis.Nil on individual commands is handled below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get active sheets: %w", err)
	}

	sheets := make([]*models.ScoreSheet, 0, len(sheetIDs))
	for i, cmd := range cmds {
		sheetJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Sheet was deleted between reading the set and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get sheet %s: %w", sheetIDs[i], err)
		}

		var sheet models.ScoreSheet
		if err := json.Unmarshal([]byte(sheetJSON), &sheet); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sheet %s: %w", sheetIDs[i], err)
		}

		sheets = append(sheets, &sheet)
	}

	sort.Slice(sheets, func(i, j int) bool {
		return sheets[i].CreatedAt.Before(sheets[j].CreatedAt)
	})

	return &GetActiveSheetsOutput{
		Sheets: sheets,
	}, nil
}
