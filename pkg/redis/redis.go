package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sutefu23/report/config"
)

// Client Redis クライアントのラッパー。
// トークンのブラックリストとレート制限に使う。
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient Redis へ接続し Ping で疎通を確認する
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 接続に失敗: %w", err)
	}

	logger.Info("Redis 接続に成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── トークンブラックリスト ──

const blacklistPrefix = "token:blacklist:"

// BlacklistToken JWT ID をブラックリストへ登録する。TTL はトークンの残り有効期間
func (c *Client) BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // 既に失効しているトークンは登録不要
	}
	return c.rdb.Set(ctx, blacklistPrefix+jti, "1", ttl).Err()
}

// IsBlacklisted JWT ID がブラックリストに含まれるかを返す
func (c *Client) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ── レート制限 ──

const rateLimitPrefix = "ratelimit:"

// CheckRateLimit 固定ウィンドウでのレート制限判定。
// window 内のカウントが limit を超えたら false を返す。
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	redisKey := rateLimitPrefix + key

	count, err := c.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// ウィンドウの起点。EXPIRE の失敗はキーが残留するので伝播させる
		if err := c.rdb.Expire(ctx, redisKey, window).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(limit), nil
}

// Close Redis 接続を閉じる
func (c *Client) Close() error {
	return c.rdb.Close()
}
