package ports

import "context"

// MessageConsumer — цикл чтения платёжных событий; Run блокируется
// до отмены контекста.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
