package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func NewRedis(cfg RedisConfig) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &Redis{
		rdb: rdb,
		ttl: cfg.TTL,
	}
}

func (s *Redis) Create(ctx context.Context, accountID int64) (string, error) {
	token := uuid.NewString()
	if err := s.rdb.Set(ctx, keyPrefix+token, accountID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

func (s *Redis) AccountID(ctx context.Context, token string) (int64, error) {
	id, err := s.rdb.Get(ctx, keyPrefix+token).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotFound
		}

		return 0, fmt.Errorf("load session: %w", err)
	}

	return id, nil
}

func (s *Redis) Delete(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (s *Redis) Close() error {
	return s.rdb.Close()
}
