package round_result

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/minefest/internal/models"
)

const (
	// Key prefixes for Redis
	roundKeyPrefix            = "round_result:"
	matchRoundsKeyPrefix      = "match_rounds:"
	participantStatsKeyPrefix = "participant_stats:"
)

// Config holds configuration for the Redis round result repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed round result repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func roundKey(matchID string, round int) string {
	return fmt.Sprintf("%s%s:%d", roundKeyPrefix, matchID, round)
}

// AddRoundResult stores the round and updates every ranked participant's totals
func (r *redisRepository) AddRoundResult(ctx context.Context, input *AddRoundResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}

	result := input.Result
	if result.MatchID == "" {
		return errors.New("match ID cannot be empty")
	}

	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal round result: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.TxPipeline()

	key := roundKey(result.MatchID, result.Round)
	pipe.Set(ctx, key, resultJSON, 0)

	// Index the round under its match, scored by round number
	pipe.ZAdd(ctx, matchRoundsKeyPrefix+result.MatchID, redis.Z{
		Score:  float64(result.Round),
		Member: key,
	})

	for _, standing := range result.Standings {
		statsKey := participantStatsKeyPrefix + standing.ParticipantID
		pipe.HIncrBy(ctx, statsKey, "played", 1)
		pipe.HIncrBy(ctx, statsKey, "damage", int64(standing.HealthLost()))
		if standing.Rank == 0 {
			pipe.HIncrBy(ctx, statsKey, "won", 1)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add round result: %w", err)
	}

	return nil
}

// GetRoundResultsForMatch retrieves all rounds recorded for a match
func (r *redisRepository) GetRoundResultsForMatch(ctx context.Context, input *GetRoundResultsForMatchInput) (*GetRoundResultsForMatchOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	keys, err := r.client.ZRange(ctx, matchRoundsKeyPrefix+input.MatchID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get rounds for match: %w", err)
	}

	if len(keys) == 0 {
		return &GetRoundResultsForMatchOutput{
			Results: []*models.RoundResult{},
		}, nil
	}

	// Fetch every round in one round trip
	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(keys))
	for i, key := range keys {
		commands[i] = pipe.Get(ctx, key)
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get round results: %w", err)
	}

	results := make([]*models.RoundResult, 0, len(keys))
	for i, cmd := range commands {
		resultJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Round was deleted between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get round result %s: %w", keys[i], err)
		}

		var result models.RoundResult
		if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal round result %s: %w", keys[i], err)
		}

		results = append(results, &result)
	}

	return &GetRoundResultsForMatchOutput{
		Results: results,
	}, nil
}

// GetParticipantStats reads a participant's totals; unknown participants have zero totals
func (r *redisRepository) GetParticipantStats(ctx context.Context, input *GetParticipantStatsInput) (*GetParticipantStatsOutput, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, participantStatsKeyPrefix+input.ParticipantID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get participant stats: %w", err)
	}

	stats := &ParticipantStats{ParticipantID: input.ParticipantID}
	for field, target := range map[string]*int{
		"played": &stats.RoundsPlayed,
		"won":    &stats.RoundsWon,
		"damage": &stats.DamageTaken,
	} {
		raw, ok := fields[field]
		if !ok {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s count for %s: %w", field, input.ParticipantID, err)
		}
		*target = value
	}

	return &GetParticipantStatsOutput{
		Stats: stats,
	}, nil
}

// DeleteRoundResults removes every round recorded for a match. Participant
// totals are kept.
func (r *redisRepository) DeleteRoundResults(ctx context.Context, input *DeleteRoundResultsInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	indexKey := matchRoundsKeyPrefix + input.MatchID
	keys, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get rounds for match: %w", err)
	}

	pipe := r.client.TxPipeline()
	for _, key := range keys {
		pipe.Del(ctx, key)
	}
	pipe.Del(ctx, indexKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete round results: %w", err)
	}

	return nil
}
