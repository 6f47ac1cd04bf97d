package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/wb_shop/internal/domain"
	"github.com/Gunvolt24/wb_shop/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.StatsRepository = (*StatsRepository)(nil)

// StatsRepository — выборки для админских агрегатов. Держит собственный
// OrderRepository только ради LatestOrders: позиции дочитываются тем же
// механизмом, что и в обычных списках заказов.
type StatsRepository struct {
	pool   *pgxpool.Pool
	orders *OrderRepository
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool, orders: NewOrderRepository(pool)}
}

func (r *StatsRepository) Counts(ctx context.Context) (domain.Counts, error) {
	var c domain.Counts
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM products),
			(SELECT count(*) FROM users),
			(SELECT count(*) FROM orders),
			(SELECT COALESCE(SUM(total), 0) FROM orders)
	`).Scan(&c.Products, &c.Users, &c.Orders, &c.Revenue)
	if err != nil {
		return domain.Counts{}, fmt.Errorf("select counts: %w", err)
	}
	return c, nil
}

func (r *StatsRepository) OrdersSince(ctx context.Context, since time.Time) ([]domain.OrderPoint, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT created_at, total, discount, status FROM orders
		WHERE created_at >= $1
		ORDER BY created_at
	`, since)
	if err != nil {
		return nil, fmt.Errorf("select order points: %w", err)
	}
	defer rows.Close()

	var points []domain.OrderPoint
	for rows.Next() {
		var p domain.OrderPoint
		if err := rows.Scan(&p.CreatedAt, &p.Total, &p.Discount, &p.Status); err != nil {
			return nil, fmt.Errorf("scan order point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order points rows: %w", err)
	}
	return points, nil
}

func (r *StatsRepository) ProductsCreatedSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	return r.createdSince(ctx, "products", since)
}

func (r *StatsRepository) UsersCreatedSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	return r.createdSince(ctx, "users", since)
}

func (r *StatsRepository) createdSince(ctx context.Context, table string, since time.Time) ([]time.Time, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT created_at FROM `+table+` WHERE created_at >= $1 ORDER BY created_at
	`, since)
	if err != nil {
		return nil, fmt.Errorf("select %s created_at: %w", table, err)
	}
	defer rows.Close()

	var stamps []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan %s created_at: %w", table, err)
		}
		stamps = append(stamps, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s created_at rows: %w", table, err)
	}
	return stamps, nil
}

func (r *StatsRepository) CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT category, count(*) FROM products GROUP BY category ORDER BY category
	`)
	if err != nil {
		return nil, fmt.Errorf("select category counts: %w", err)
	}
	defer rows.Close()

	var counts []domain.CategoryCount
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category counts rows: %w", err)
	}
	return counts, nil
}

func (r *StatsRepository) StockAvailability(ctx context.Context) (inStock, outOfStock int64, err error) {
	err = r.pool.QueryRow(ctx, `
		SELECT
			count(*) FILTER (WHERE stock > 0),
			count(*) FILTER (WHERE stock = 0)
		FROM products
	`).Scan(&inStock, &outOfStock)
	if err != nil {
		return 0, 0, fmt.Errorf("select stock availability: %w", err)
	}
	return inStock, outOfStock, nil
}

func (r *StatsRepository) StatusCounts(ctx context.Context) (processing, shipped, delivered int64, err error) {
	err = r.pool.QueryRow(ctx, `
		SELECT
			count(*) FILTER (WHERE status = $1),
			count(*) FILTER (WHERE status = $2),
			count(*) FILTER (WHERE status = $3)
		FROM orders
	`, domain.StatusProcessing, domain.StatusShipped, domain.StatusDelivered).
		Scan(&processing, &shipped, &delivered)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("select status counts: %w", err)
	}
	return processing, shipped, delivered, nil
}

func (r *StatsRepository) GenderCounts(ctx context.Context) (male, female int64, err error) {
	err = r.pool.QueryRow(ctx, `
		SELECT
			count(*) FILTER (WHERE gender = 'male'),
			count(*) FILTER (WHERE gender = 'female')
		FROM users
	`).Scan(&male, &female)
	if err != nil {
		return 0, 0, fmt.Errorf("select gender counts: %w", err)
	}
	return male, female, nil
}

func (r *StatsRepository) RoleCounts(ctx context.Context) (admins, users int64, err error) {
	err = r.pool.QueryRow(ctx, `
		SELECT
			count(*) FILTER (WHERE role = $1),
			count(*) FILTER (WHERE role = $2)
		FROM users
	`, domain.RoleAdmin, domain.RoleUser).Scan(&admins, &users)
	if err != nil {
		return 0, 0, fmt.Errorf("select role counts: %w", err)
	}
	return admins, users, nil
}

func (r *StatsRepository) LatestOrders(ctx context.Context, n int) ([]*domain.Order, error) {
	return r.orders.queryOrders(ctx, `
		SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC LIMIT $1
	`, n)
}
