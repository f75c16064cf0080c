package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NoteStatsCache keeps a note's derived rating aggregates in Redis so hot
// notes don't hit Mongo on every read. The rating engine invalidates an
// entry whenever it recomputes the aggregates.
type NoteStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

type CachedNoteStats struct {
	AverageRating float64   `json:"average_rating"`
	TotalRatings  int       `json:"total_ratings"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewNoteStatsCache creates and connects the cache.
func NewNoteStatsCache(redisURL string, ttl time.Duration) (*NoteStatsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &NoteStatsCache{client: client, ttl: ttl}, nil
}

// Get retrieves cached stats for a note, or nil on a cache miss.
func (c *NoteStatsCache) Get(ctx context.Context, noteID string) (*CachedNoteStats, error) {
	data, err := c.client.Get(ctx, statsKey(noteID)).Bytes()
	if err == redis.Nil {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read note stats from cache: %w", err)
	}

	var stats CachedNoteStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached note stats: %w", err)
	}
	return &stats, nil
}

// Set stores a note's stats with the configured TTL.
func (c *NoteStatsCache) Set(ctx context.Context, noteID string, average float64, total int) error {
	stats := CachedNoteStats{
		AverageRating: average,
		TotalRatings:  total,
		UpdatedAt:     time.Now(),
	}
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal note stats: %w", err)
	}
	if err := c.client.Set(ctx, statsKey(noteID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache note stats: %w", err)
	}
	return nil
}

// Invalidate drops a note's cached stats.
func (c *NoteStatsCache) Invalidate(ctx context.Context, noteID string) error {
	if err := c.client.Del(ctx, statsKey(noteID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate note stats: %w", err)
	}
	return nil
}

func statsKey(noteID string) string {
	return "note_stats:" + noteID
}
