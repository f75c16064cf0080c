package services

import (
	"context"
	"fmt"
	"time"

	"edushare/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// RedisTokenBlacklist invalidates issued tokens on logout. Entries expire
// with the token itself.
type RedisTokenBlacklist struct {
	Client *redis.Client
}

// TokenBlacklist is the global instance
var TokenBlacklist *RedisTokenBlacklist

// NewTokenBlacklist creates a new Redis-backed token blacklist
func NewTokenBlacklist(redisURL string) (*RedisTokenBlacklist, error) {
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

	return &RedisTokenBlacklist{Client: client}, nil
}

// BlacklistTokens adds both access and refresh tokens to the blacklist
func BlacklistTokens(accessToken, refreshToken string) error {
	if TokenBlacklist == nil {
		return fmt.Errorf("token blacklist not initialized")
	}
	if err := TokenBlacklist.blacklist(accessToken); err != nil {
		return err
	}
	if refreshToken != "" {
		return TokenBlacklist.blacklist(refreshToken)
	}
	return nil
}

// IsTokenBlacklisted reports whether a token has been invalidated.
func IsTokenBlacklisted(token string) bool {
	if TokenBlacklist == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	exists, err := TokenBlacklist.Client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false
	}
	return exists > 0
}

func (b *RedisTokenBlacklist) blacklist(tokenString string) error {
	ttl := time.Duration(utils.JWTExpirationTime) * time.Second

	// Use the token's own remaining lifetime when parseable.
	parser := jwt.NewParser()
	if token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{}); err == nil {
		if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
			remaining := time.Until(exp.Time)
			if remaining <= 0 {
				return nil // already expired, nothing to do
			}
			ttl = remaining
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := b.Client.Set(ctx, blacklistKey(tokenString), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func blacklistKey(token string) string {
	return "blacklist:" + token
}
