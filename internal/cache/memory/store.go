package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_shop/internal/ports"
	"github.com/Gunvolt24/wb_shop/pkg/metrics"
)

// Проверка, что Store удовлетворяет интерфейсу CacheStore.
var _ ports.CacheStore = (*Store)(nil)

type entry struct {
	value     []byte
	expiresAt time.Time // нулевое время = без истечения
}

// Store — in-process реализация кэша: map + ленивое истечение по TTL.
// Значения копируются на входе и выходе, чтобы вызывающий не мог
// поменять содержимое кэша через срез.
type Store struct {
	defaultTTL time.Duration

	mu    sync.RWMutex
	items map[string]entry
}

func NewStore(defaultTTL time.Duration) *Store {
	return &Store{
		defaultTTL: defaultTTL,
		items:      make(map[string]entry),
	}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	now := time.Now()

	s.mu.RLock()
	ent, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if expired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		s.remove(key)
		return nil, false, nil
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return append([]byte(nil), ent.value...), true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	ent := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		ent.expiresAt = time.Now().Add(ttl)
	}

	s.mu.Lock()
	s.items[key] = ent
	metrics.CacheSize.Set(float64(len(s.items)))
	s.mu.Unlock()
	return nil
}

func (s *Store) Has(_ context.Context, key string) (bool, error) {
	now := time.Now()

	s.mu.RLock()
	ent, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if expired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		s.remove(key)
		return false, nil
	}
	return true, nil
}

// Delete — пачка ключей за один проход под одной блокировкой.
func (s *Store) Delete(_ context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	s.mu.Lock()
	for _, key := range keys {
		if _, ok := s.items[key]; ok {
			delete(s.items, key)
			metrics.CacheOps.WithLabelValues("invalidated").Inc()
		}
	}
	metrics.CacheSize.Set(float64(len(s.items)))
	s.mu.Unlock()
	return nil
}

// ------вспомогательные функции------

func (s *Store) remove(key string) {
	s.mu.Lock()
	delete(s.items, key)
	metrics.CacheSize.Set(float64(len(s.items)))
	s.mu.Unlock()
}

func expired(ent entry, now time.Time) bool {
	return !ent.expiresAt.IsZero() && now.After(ent.expiresAt)
}
