package config

import (
	"time"

	"edushare/utils"
)

type CacheConfig struct {
	RedisURL     string
	NoteStatsTTL time.Duration
}

func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		RedisURL:     utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379/0"),
		NoteStatsTTL: utils.GetEnvAsDuration("NOTE_STATS_CACHE_TTL", 5*time.Minute),
	}
}
