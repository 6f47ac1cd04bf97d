package ports

import (
	"context"

	"github.com/Gunvolt24/wb_shop/internal/domain"
)

// ProductValidator — проверка товара из фида (cmd/validate-products).
type ProductValidator interface {
	Validate(ctx context.Context, p *domain.Product) error
}

// PaymentValidator — проверка платёжного события из Kafka.
type PaymentValidator interface {
	Validate(ctx context.Context, p *domain.Payment) error
}
