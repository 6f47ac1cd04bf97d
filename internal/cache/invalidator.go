package cache

import (
	"context"

	"github.com/Gunvolt24/wb_shop/internal/ports"
)

// Invalidation — флаги доменов, затронутых записью, плюс уточняющие id.
// Флаг без id инвалидирует коллекционные ключи домена; флаг с id — ещё и
// ключи конкретной сущности (и зависимые: product id + Review ⇒ reviews-{id}).
type Invalidation struct {
	Product bool
	Order   bool
	User    bool
	Coupon  bool
	Review  bool
	Admin   bool

	ProductIDs []string
	OrderID    string
	UserID     string
	CouponID   string
}

// Invalidator — вычисляет точный набор ключей по событию записи и удаляет
// их одной пачкой. Вызывается строго после фиксации записи в системе записи,
// иначе конкурентный читатель может вернуть в кэш данные до записи.
type Invalidator struct {
	store ports.CacheStore
	log   ports.Logger
}

func NewInvalidator(store ports.CacheStore, log ports.Logger) *Invalidator {
	return &Invalidator{store: store, log: log}
}

// Keys — детерминированный список затронутых ключей.
func (i *Invalidator) Keys(req Invalidation) []string {
	var keys []string

	if req.Product {
		keys = append(keys, KeyAllProducts, KeyLatestProducts, KeyCategories)
		for _, id := range req.ProductIDs {
			keys = append(keys, ProductKey(id))
			if req.Review {
				keys = append(keys, ReviewsKey(id))
			}
		}
	}
	if req.Order {
		keys = append(keys, KeyAllOrders)
		if req.UserID != "" {
			keys = append(keys, MyOrdersKey(req.UserID))
		}
		if req.OrderID != "" {
			keys = append(keys, OrderKey(req.OrderID))
		}
	}
	if req.User {
		keys = append(keys, KeyAllUsers)
		if req.UserID != "" {
			keys = append(keys, UserKey(req.UserID))
		}
	}
	if req.Coupon {
		keys = append(keys, KeyAllCoupons)
		if req.CouponID != "" {
			keys = append(keys, CouponKey(req.CouponID))
		}
	}
	if req.Admin {
		keys = append(keys, AdminKeys()...)
	}

	return keys
}

// Invalidate — best-effort: ошибка удаления логируется и глотается,
// путь записи от доступности кэша не зависит. Запись к этому моменту уже
// зафиксирована и считается успешной в любом случае.
func (i *Invalidator) Invalidate(ctx context.Context, req Invalidation) {
	keys := i.Keys(req)
	if len(keys) == 0 {
		return
	}
	if err := i.store.Delete(ctx, keys...); err != nil {
		i.log.Warnf(ctx, "cache invalidation failed keys=%v err=%v (stale values remain until next write)", keys, err)
	}
}
