// Пакет ctxmeta — метаданные запроса (request_id, trace_id),
// прокидываемые через context.Context. HTTP-слой и логгер зависят
// от этого общего пакета, но не друг от друга.
package ctxmeta

import "context"

// неэкспортируемый тип ключа исключает коллизии с чужими значениями
type ctxKey string

const (
	KeyRequestID ctxKey = "request_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
