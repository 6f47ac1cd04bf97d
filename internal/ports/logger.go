package ports

import "context"

// Logger — минимальный контракт логгера. Контекст нужен, чтобы
// реализация подмешивала request/trace id.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
