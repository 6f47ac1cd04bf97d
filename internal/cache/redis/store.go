package redis

import (
	"context"
	"errors"
	"time"

	"github.com/Gunvolt24/wb_shop/internal/ports"
	"github.com/Gunvolt24/wb_shop/pkg/metrics"
	"github.com/redis/go-redis/v9"
)

// Проверка, что Store удовлетворяет интерфейсу CacheStore.
var _ ports.CacheStore = (*Store)(nil)

type Config struct {
	Addr     string
	DB       int
	Password string
}

// Store — реализация кэша на Redis. Контракт тот же, что и у памяти:
// Get различает промах (redis.Nil) и ошибку соединения.
type Store struct {
	rdb        *redis.Client
	defaultTTL time.Duration
}

// NewStore — подключается и делает Ping для fail-fast.
func NewStore(ctx context.Context, cfg Config, defaultTTL time.Duration) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		DB:       cfg.DB,
		Password: cfg.Password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return &Store{rdb: rdb, defaultTTL: defaultTTL}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	metrics.CacheOps.WithLabelValues("hit").Inc()
	return b, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

func (s *Store) Has(ctx context.Context, key string) (bool, error) {
	n, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	n, err := s.rdb.Del(ctx, keys...).Result()
	if err != nil {
		return err
	}
	for ; n > 0; n-- {
		metrics.CacheOps.WithLabelValues("invalidated").Inc()
	}
	return nil
}

func (s *Store) Close() error { return s.rdb.Close() }
