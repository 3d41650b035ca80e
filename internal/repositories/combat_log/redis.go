package combatlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/tactics-engine/internal/errors"
	"github.com/KirkDiggler/tactics-engine/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/tactics-engine/internal/redis"
)

const (
	// Key pattern: combat_log:{encounter_id}
	logKeyPrefix = "combat_log:"
	defaultTTL   = 24 * time.Hour

	errEncounterIDEmpty = "encounter ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for combat logs
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

func logKey(encounterID string) string {
	return fmt.Sprintf("%s%s", logKeyPrefix, encounterID)
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	entry := input.Entry
	if entry.At.IsZero() {
		entry.At = r.clock.Now()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal log entry")
	}

	key := logKey(input.EncounterID)
	if err := r.client.RPush(ctx, key, data).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to append log entry")
	}
	if err := r.client.Expire(ctx, key, defaultTTL).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to refresh log TTL")
	}

	return &AppendOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	raw, err := r.client.LRange(ctx, logKey(input.EncounterID), 0, -1).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read log")
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal log entry")
		}
		entries = append(entries, entry)
	}

	return &GetOutput{Entries: entries}, nil
}

func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.EncounterID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	if err := r.client.Del(ctx, logKey(input.EncounterID)).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to clear log")
	}

	return &ClearOutput{}, nil
}
