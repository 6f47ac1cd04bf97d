package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Gunvolt24/wb_shop/internal/ports"
)

// ReadThrough — чтение через кэш (cache-aside).
// Попадание: декодируем и возвращаем снимок. Промах: зовём loader против
// системы записи, кладём сериализованный результат под key и возвращаем его.
// Ошибка loader'а пробрасывается, кэш остаётся нетронутым — негативного
// кэширования нет. Ошибки самого кэша (Get/Set) деградируют до loader'а
// и никогда не маскируют успешную загрузку.
func ReadThrough[T any](
	ctx context.Context,
	store ports.CacheStore,
	log ports.Logger,
	key string,
	ttl time.Duration,
	loader func(ctx context.Context) (T, error),
) (T, error) {
	var zero T

	raw, found, err := store.Get(ctx, key)
	switch {
	case err != nil:
		log.Warnf(ctx, "cache get failed key=%s err=%v (falling back to store)", key, err)
	case found:
		var v T
		if decErr := json.Unmarshal(raw, &v); decErr == nil {
			return v, nil
		}
		// Битое значение — считаем промахом и перезапишем ниже.
		log.Warnf(ctx, "cache payload broken key=%s, reloading", key)
	}

	v, err := loader(ctx)
	if err != nil {
		return zero, err
	}

	encoded, err := json.Marshal(v)
	if err != nil {
		log.Warnf(ctx, "cache encode failed key=%s err=%v", key, err)
		return v, nil
	}
	if setErr := store.Set(ctx, key, encoded, ttl); setErr != nil {
		log.Warnf(ctx, "cache set failed key=%s err=%v", key, setErr)
	}
	return v, nil
}
