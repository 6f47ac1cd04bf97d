package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/wb_shop/internal/domain"
)

// Репозитории — доступ к системе записи (Postgres). Контракт общий для всех:
// GetByID возвращает (nil, nil), если записи нет; запись считается
// зафиксированной к моменту возврата из метода — на этом держится порядок
// «сначала запись, потом инвалидация кэша».

type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Save(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	All(ctx context.Context) ([]*domain.Product, error)
	Latest(ctx context.Context, n int) ([]*domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Search(ctx context.Context, f domain.ProductFilter) ([]*domain.Product, int, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	All(ctx context.Context) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	All(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountAdmins(ctx context.Context) (int64, error)
}

type CouponRepository interface {
	Create(ctx context.Context, c *domain.Coupon) error
	GetByID(ctx context.Context, id string) (*domain.Coupon, error)
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
	All(ctx context.Context) ([]*domain.Coupon, error)
	Save(ctx context.Context, c *domain.Coupon) error
	Delete(ctx context.Context, id string) error
}

type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error)
	Delete(ctx context.Context, id string) error
	DeleteByProduct(ctx context.Context, productID string) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	DeleteByOrder(ctx context.Context, orderID string) error
}

// StatsRepository — выборки для админских агрегатов. Сами редьюсеры
// (проценты, помесячные ряды) живут в usecase и не имеют состояния.
type StatsRepository interface {
	Counts(ctx context.Context) (domain.Counts, error)
	OrdersSince(ctx context.Context, since time.Time) ([]domain.OrderPoint, error)
	ProductsCreatedSince(ctx context.Context, since time.Time) ([]time.Time, error)
	UsersCreatedSince(ctx context.Context, since time.Time) ([]time.Time, error)
	CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error)
	StockAvailability(ctx context.Context) (inStock, outOfStock int64, err error)
	StatusCounts(ctx context.Context) (processing, shipped, delivered int64, err error)
	GenderCounts(ctx context.Context) (male, female int64, err error)
	RoleCounts(ctx context.Context) (admins, users int64, err error)
	LatestOrders(ctx context.Context, n int) ([]*domain.Order, error)
}
