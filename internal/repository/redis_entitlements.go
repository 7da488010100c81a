package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Aryant96/telegram-pdf-to-word-bot/internal/model"
)

// RedisEntitlementRepository stores entitlements as JSON values in Redis.
// Records carry no TTL; an entitlement lives until explicitly overwritten.
type RedisEntitlementRepository struct {
	client *redis.Client
}

func NewRedisEntitlementRepository(addr, password string, db int) (*RedisEntitlementRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisEntitlementRepository{client: client}, nil
}

func (r *RedisEntitlementRepository) key(userID int64) string {
	return fmt.Sprintf("entitlement:user:%d", userID)
}

func (r *RedisEntitlementRepository) Get(ctx context.Context, userID int64) (*model.Entitlement, error) {
	v, err := r.client.Get(ctx, r.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var e model.Entitlement
	if err := json.Unmarshal(v, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *RedisEntitlementRepository) Save(ctx context.Context, e *model.Entitlement) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(e.UserID), b, 0).Err()
}

// Close shuts down the Redis client.
func (r *RedisEntitlementRepository) Close() error {
	return r.client.Close()
}
