package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_shop/internal/domain"
	"github.com/Gunvolt24/wb_shop/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.CouponRepository = (*CouponRepository)(nil)

// CouponRepository — купоны на Postgres (pgxpool).
type CouponRepository struct {
	pool *pgxpool.Pool
}

func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository { return &CouponRepository{pool: pool} }

func scanCoupon(row pgx.Row) (*domain.Coupon, error) {
	var c domain.Coupon
	err := row.Scan(&c.ID, &c.Code, &c.Amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan coupon: %w", err)
	}
	return &c, nil
}

func (r *CouponRepository) Create(ctx context.Context, c *domain.Coupon) error {
	if c == nil || c.ID == "" {
		return errors.New("coupon is empty or id is required")
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO coupons (id, code, amount) VALUES ($1, $2, $3)
	`, c.ID, c.Code, c.Amount); err != nil {
		return fmt.Errorf("insert coupon: %w", err)
	}
	return nil
}

func (r *CouponRepository) GetByID(ctx context.Context, id string) (*domain.Coupon, error) {
	return scanCoupon(r.pool.QueryRow(ctx, `SELECT id, code, amount FROM coupons WHERE id = $1`, id))
}

func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	return scanCoupon(r.pool.QueryRow(ctx, `SELECT id, code, amount FROM coupons WHERE code = $1`, code))
}

func (r *CouponRepository) All(ctx context.Context) ([]*domain.Coupon, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, code, amount FROM coupons ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("select coupons: %w", err)
	}
	defer rows.Close()

	var coupons []*domain.Coupon
	for rows.Next() {
		var c domain.Coupon
		if err := rows.Scan(&c.ID, &c.Code, &c.Amount); err != nil {
			return nil, fmt.Errorf("scan coupon: %w", err)
		}
		coupons = append(coupons, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("coupons rows: %w", err)
	}
	return coupons, nil
}

func (r *CouponRepository) Save(ctx context.Context, c *domain.Coupon) error {
	tag, err := r.pool.Exec(ctx, `UPDATE coupons SET code = $2, amount = $3 WHERE id = $1`, c.ID, c.Code, c.Amount)
	if err != nil {
		return fmt.Errorf("update coupon: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update coupon %s: no rows affected", c.ID)
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}
	return nil
}
