package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_shop/internal/domain"
	"github.com/Gunvolt24/wb_shop/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.PaymentRepository = (*PaymentRepository)(nil)

// PaymentRepository — записи о платежах на Postgres (pgxpool).
type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	if p == nil || p.ID == "" {
		return errors.New("payment is empty or id is required")
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO payments (id, order_id, user_id, status, gateway_order_id, gateway_payment_id, gateway_signature, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.ID, p.OrderID, p.UserID, p.Status, p.GatewayOrderID, p.GatewayPaymentID, p.GatewaySignature, p.CreatedAt); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) DeleteByOrder(ctx context.Context, orderID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM payments WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("delete payments by order: %w", err)
	}
	return nil
}
