// stats.go provides a Redis-backed cache for the dashboard statistics.
// The stats query aggregates over several tables, so the result is held
// for a short TTL instead of recomputed on every dashboard poll.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"gazete/internal/models"
)

const (
	statsKey = "stats:dashboard"

	// DefaultStatsTTL is how long computed statistics stay cached.
	DefaultStatsTTL = time.Minute
)

// StatsCache holds the computed dashboard statistics in Redis. A nil
// *StatsCache is valid and behaves as a permanent miss, so callers do
// not branch on whether Redis is configured.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsCache creates a stats cache backed by the given Redis client.
func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	if ttl == 0 {
		ttl = DefaultStatsTTL
	}
	return &StatsCache{client: client, ttl: ttl}
}

// Get retrieves the cached statistics. Returns nil on miss or when the
// cache is disabled. Cache errors degrade to a miss.
func (c *StatsCache) Get(ctx context.Context) *models.Stats {
	if c == nil {
		return nil
	}
	val, err := c.client.Get(ctx, statsKey).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		slog.Warn("stats cache get error", "error", err)
		return nil
	}
	var stats models.Stats
	if err := json.Unmarshal(val, &stats); err != nil {
		slog.Warn("stats cache decode error", "error", err)
		return nil
	}
	return &stats
}

// Set stores the computed statistics with the configured TTL.
func (c *StatsCache) Set(ctx context.Context, stats *models.Stats) {
	if c == nil {
		return
	}
	val, err := json.Marshal(stats)
	if err != nil {
		slog.Warn("stats cache encode error", "error", err)
		return
	}
	if err := c.client.Set(ctx, statsKey, val, c.ttl).Err(); err != nil {
		slog.Warn("stats cache set error", "error", err)
	}
}

// Invalidate drops the cached statistics, forcing the next read to
// recompute.
func (c *StatsCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, statsKey).Err(); err != nil {
		slog.Warn("stats cache invalidate error", "error", err)
	}
}
