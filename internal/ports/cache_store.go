package ports

import (
	"context"
	"time"
)

// CacheStore — key-value хранилище кэша. Значения — непрозрачные JSON-блобы.
// Требования к реализации: потокобезопасность; Delete принимает пачку ключей
// и удаляет их за один вызов.
type CacheStore interface {
	// Get — (value, true, nil) при попадании, (nil, false, nil) при промахе.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set — сохранить значение; при ttl <= 0 реализация применяет свой
	// TTL по умолчанию (0 у самой реализации = без истечения).
	// TTL здесь — страховочная граница, а не механизм корректности:
	// консистентность обеспечивается явной инвалидацией.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Has — есть ли живой (неистёкший) ключ.
	Has(ctx context.Context, key string) (bool, error)

	// Delete — удалить все перечисленные ключи одной операцией.
	Delete(ctx context.Context, keys ...string) error
}
