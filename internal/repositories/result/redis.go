package result

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/scorepad/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	resultKeyPrefix         = "result:"
	channelResultsKeyPrefix = "channel_results:"
	channelWinsKeyPrefix    = "channel_wins:"
	sheetResultKeyPrefix    = "sheet_result:"
)

// ErrResultNotFound is returned when a result is not found
var ErrResultNotFound = errors.New("game result not found")

// Config holds configuration for the Redis result repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed result repository
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

// AddResult records a finished game
func (r *redisRepository) AddResult(ctx context.Context, input *AddResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}

	result := input.Result
	if result.ID == "" {
		return errors.New("result ID cannot be empty")
	}

	if result.SheetID == "" {
		return errors.New("sheet ID cannot be empty")
	}

	if result.Timestamp.IsZero() {
		result.Timestamp = time.Now()
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, resultKeyPrefix+result.ID, resultJSON, 0)
	pipe.Set(ctx, sheetResultKeyPrefix+result.SheetID, result.ID, 0)

	if result.ChannelID != "" {
		pipe.ZAdd(ctx, channelResultsKeyPrefix+result.ChannelID, redis.Z{
			Score:  float64(result.Timestamp.UnixNano()),
			Member: result.ID,
		})
		pipe.HIncrBy(ctx, channelWinsKeyPrefix+result.ChannelID, result.Winner.Name, 1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add result: %w", err)
	}

	return nil
}

// GetResultsForChannel retrieves all results for a channel, oldest first
func (r *redisRepository) GetResultsForChannel(ctx context.Context, input *GetResultsForChannelInput) (*GetResultsForChannelOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	resultIDs, err := r.client.ZRange(ctx, channelResultsKeyPrefix+input.ChannelID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get result IDs for channel: %w", err)
	}

	if len(resultIDs) == 0 {
		return &GetResultsForChannelOutput{
			Results: []*models.GameResult{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(resultIDs))
	for i, resultID := range resultIDs {
		cmds[i] = pipe.Get(ctx, resultKeyPrefix+resultID)
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	results := make([]*models.GameResult, 0, len(resultIDs))
	for i, cmd := range cmds {
		resultJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get result %s: %w", resultIDs[i], err)
		}

		var result models.GameResult
		if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result %s: %w", resultIDs[i], err)
		}

		results = append(results, &result)
	}

	return &GetResultsForChannelOutput{
		Results: results,
	}, nil
}

// GetWinCounts retrieves the number of wins per player name in a channel
func (r *redisRepository) GetWinCounts(ctx context.Context, input *GetWinCountsInput) (*GetWinCountsOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	raw, err := r.client.HGetAll(ctx, channelWinsKeyPrefix+input.ChannelID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get win counts: %w", err)
	}

	wins := make(map[string]int, len(raw))
	for name, value := range raw {
		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid win count for %s: %w", name, err)
		}
		if count > 0 {
			wins[name] = count
		}
	}

	return &GetWinCountsOutput{
		Wins: wins,
	}, nil
}

// DeleteResultForSheet removes the result recorded for a sheet
func (r *redisRepository) DeleteResultForSheet(ctx context.Context, input *DeleteResultForSheetInput) error {
	if input == nil || input.SheetID == "" {
		return errors.New("input and sheet ID cannot be empty")
	}

	sheetKey := sheetResultKeyPrefix + input.SheetID
	resultID, err := r.client.Get(ctx, sheetKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrResultNotFound
		}
		return fmt.Errorf("failed to get result ID for sheet: %w", err)
	}

	resultJSON, err := r.client.Get(ctx, resultKeyPrefix+resultID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrResultNotFound
		}
		return fmt.Errorf("failed to get result: %w", err)
	}

	var result models.GameResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return fmt.Errorf("failed to unmarshal result: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, resultKeyPrefix+resultID, sheetKey)
	if result.ChannelID != "" {
		pipe.ZRem(ctx, channelResultsKeyPrefix+result.ChannelID, resultID)
		pipe.HIncrBy(ctx, channelWinsKeyPrefix+result.ChannelID, result.Winner.Name, -1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}

	return nil
}
