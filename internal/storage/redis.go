package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStorage implements the Storage interface using Redis. Records expire
// after the configured TTL; the game setup flow only needs recent missions.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// Ensure RedisStorage implements Storage interface
var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance
func NewRedisStorage(redisURL string, ttl time.Duration, logger *slog.Logger) *RedisStorage {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	return &RedisStorage{
		client: rdb,
		logger: logger,
		ttl:    ttl,
	}
}

func recordKey(id uuid.UUID) string {
	return "scenario:" + id.String()
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	cmd := r.client.Ping(ctx)
	if err := cmd.Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func (r *RedisStorage) SaveRecord(ctx context.Context, rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario record: %w", err)
	}

	if err := r.client.Set(ctx, recordKey(rec.ID), data, r.ttl).Err(); err != nil {
		r.logger.Error("Redis SET failed", "key", recordKey(rec.ID), "error", err)
		return fmt.Errorf("failed to save scenario record: %w", err)
	}

	r.logger.Debug("Scenario record saved", "id", rec.ID, "ttl", r.ttl)
	return nil
}

func (r *RedisStorage) GetRecord(ctx context.Context, id uuid.UUID) (*Record, error) {
	data, err := r.client.Get(ctx, recordKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("scenario record not found: %s", id)
		}
		return nil, fmt.Errorf("failed to load scenario record: %w", err)
	}

	var rec Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario record %s: %w", id, err)
	}
	return &rec, nil
}

func (r *RedisStorage) ListRecords(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	iter := r.client.Scan(ctx, 0, "scenario:*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		id, err := uuid.Parse(key[len("scenario:"):])
		if err != nil {
			r.logger.Warn("Skipping malformed scenario key", "key", key)
			continue
		}
		ids = append(ids, id)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list scenario records: %w", err)
	}
	return ids, nil
}

func (r *RedisStorage) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	deleted, err := r.client.Del(ctx, recordKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete scenario record: %w", err)
	}
	if deleted == 0 {
		return fmt.Errorf("scenario record not found: %s", id)
	}
	return nil
}
