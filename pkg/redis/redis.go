package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/NguyenMaiPhuong311/ISD-Final/config"
)

// Client wraps the Redis connection. Used for the session-token blacklist
// and request rate limiting.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to Redis and pings it.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// --- token blacklist ---

const (
	blacklistPrefix   = "token:blacklist:"
	revokedUserPrefix = "token:revoked_user:"
)

// BlacklistToken blacklists a single JWT ID until the token would expire.
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted reports whether a JWT ID is blacklisted.
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RevokeUser invalidates every outstanding token of an account. Used when
// an account is deleted from the identity provider; ttl should cover the
// longest possible token lifetime.
func (c *Client) RevokeUser(ctx context.Context, userID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.rdb.Set(ctx, revokedUserPrefix+userID, "1", ttl).Err()
}

// IsUserRevoked reports whether an account has been revoked.
func (c *Client) IsUserRevoked(ctx context.Context, userID string) (bool, error) {
	n, err := c.rdb.Exists(ctx, revokedUserPrefix+userID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// --- rate limiting ---

// CheckRateLimit implements a fixed-window counter. Returns false when the
// window's request budget is exhausted.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
