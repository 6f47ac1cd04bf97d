package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/wb_shop/internal/cache"
	"github.com/Gunvolt24/wb_shop/internal/domain"
	"github.com/Gunvolt24/wb_shop/internal/ports"
	"github.com/Gunvolt24/wb_shop/pkg/metrics"
	"github.com/google/uuid"
)

// OrderService — жизненный цикл заказа: оформление, переходы статуса,
// отмена и удаление, плюс чтение через кэш. Каждая запись идёт по схеме
// «зафиксировать в системе записи → инвалидировать кэш»; инвалидация
// best-effort и не влияет на результат операции.
type OrderService struct {
	orders   ports.OrderRepository
	payments ports.PaymentRepository
	users    ports.UserRepository
	ledger   *StockLedger
	store    ports.CacheStore
	inv      *cache.Invalidator
	log      ports.Logger
	listTTL  time.Duration
}

func NewOrderService(
	orders ports.OrderRepository,
	payments ports.PaymentRepository,
	users ports.UserRepository,
	ledger *StockLedger,
	store ports.CacheStore,
	inv *cache.Invalidator,
	log ports.Logger,
	listTTL time.Duration,
) *OrderService {
	return &OrderService{
		orders:   orders,
		payments: payments,
		users:    users,
		ledger:   ledger,
		store:    store,
		inv:      inv,
		log:      log,
		listTTL:  listTTL,
	}
}

// CreateOrderInput — оформление заказа. В позициях значимы только
// ProductID и Quantity: имя и цена берутся из каталога при резервировании.
type CreateOrderInput struct {
	UserID          string              `json:"user_id"`
	ShippingInfo    domain.ShippingInfo `json:"shipping_info"`
	Items           []domain.OrderItem  `json:"items"`
	Tax             int64               `json:"tax"`
	ShippingCharges int64               `json:"shipping_charges"`
	Discount        int64               `json:"discount"`
}

// Create — резервирует остатки и создаёт заказ в статусе Processing.
// Суммы фиксируются здесь и больше не пересчитываются.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	if in.UserID == "" || len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: user id and items are required", domain.ErrValidation)
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item must have product id and positive quantity", domain.ErrValidation)
		}
	}

	items, err := s.ledger.Reserve(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	var subtotal int64
	for _, item := range items {
		subtotal += item.Price * item.Quantity
	}

	order := &domain.Order{
		ID:              uuid.New().String(),
		UserID:          in.UserID,
		Status:          domain.StatusProcessing,
		ShippingInfo:    in.ShippingInfo,
		Items:           items,
		Subtotal:        subtotal,
		Tax:             in.Tax,
		ShippingCharges: in.ShippingCharges,
		Discount:        in.Discount,
		Total:           subtotal + in.Tax + in.ShippingCharges - in.Discount,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.inv.Invalidate(ctx, cache.Invalidation{
		Product:    true,
		ProductIDs: productIDs(items),
		Order:      true,
		UserID:     order.UserID,
		Admin:      true,
	})

	s.log.Infof(ctx, "order created id=%s user=%s items=%d total=%d", order.ID, order.UserID, len(order.Items), order.Total)
	return order, nil
}

// GetOrder — заказ по id через кэш (order-{id}).
func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return cache.ReadThrough(ctx, s.store, s.log, cache.OrderKey(id), 0,
		func(ctx context.Context) (*domain.Order, error) {
			order, err := s.orders.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if order == nil {
				return nil, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
			}
			return order, nil
		})
}

// MyOrders — заказы пользователя (my-orders-{userId}).
func (s *OrderService) MyOrders(ctx context.Context, userID string) ([]*domain.Order, error) {
	return cache.ReadThrough(ctx, s.store, s.log, cache.MyOrdersKey(userID), s.listTTL,
		func(ctx context.Context) ([]*domain.Order, error) {
			return s.orders.ListByUser(ctx, userID)
		})
}

// AllOrders — все заказы (all-orders); доступ ограничивает транспорт.
func (s *OrderService) AllOrders(ctx context.Context) ([]*domain.Order, error) {
	return cache.ReadThrough(ctx, s.store, s.log, cache.KeyAllOrders, s.listTTL,
		func(ctx context.Context) ([]*domain.Order, error) {
			return s.orders.All(ctx)
		})
}

// Advance — продвижение статуса: Processing → Shipped → Delivered.
// Любой другой статус «зажимается» в Delivered без ошибки — поведение
// унаследовано от исходной реализации и требует подтверждения владельцем
// продукта; полагаться на него в новом коде нельзя.
func (s *OrderService) Advance(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}

	switch order.Status {
	case domain.StatusProcessing:
		order.Status = domain.StatusShipped
	case domain.StatusShipped:
		order.Status = domain.StatusDelivered
	default:
		order.Status = domain.StatusDelivered
	}

	if err := s.orders.UpdateStatus(ctx, order.ID, order.Status); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	metrics.OrderTransitions.WithLabelValues(string(order.Status)).Inc()

	s.inv.Invalidate(ctx, cache.Invalidation{
		Order:   true,
		OrderID: order.ID,
		UserID:  order.UserID,
		Admin:   true,
	})

	s.log.Infof(ctx, "order advanced id=%s status=%s", order.ID, order.Status)
	return order, nil
}

// Cancel — отмена заказа владельцем или администратором.
// Допустима только из Processing/Shipped; из терминального статуса —
// ErrConflict, так что повторная отмена никогда не вернёт остаток дважды.
func (s *OrderService) Cancel(ctx context.Context, id, actorID string) error {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}

	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if actor == nil {
		return fmt.Errorf("user %s: %w", actorID, domain.ErrNotFound)
	}
	if actorID != order.UserID && actor.Role != domain.RoleAdmin {
		return fmt.Errorf("cancel order %s: %w", id, domain.ErrUnauthorized)
	}

	if order.Status.Terminal() {
		return fmt.Errorf("order %s is already %s: %w", id, order.Status, domain.ErrConflict)
	}

	if err := s.orders.UpdateStatus(ctx, order.ID, domain.StatusCancelled); err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	metrics.OrderTransitions.WithLabelValues(string(domain.StatusCancelled)).Inc()

	// Статус уже зафиксирован — инвалидация должна случиться даже если
	// возврат остатка упадёт на середине.
	defer s.inv.Invalidate(ctx, cache.Invalidation{
		Product:    true,
		ProductIDs: productIDs(order.Items),
		Order:      true,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Admin:      true,
	})

	if err := s.ledger.Release(ctx, order.Items); err != nil {
		return fmt.Errorf("release stock: %w", err)
	}

	s.log.Infof(ctx, "order cancelled id=%s by=%s", order.ID, actorID)
	return nil
}

// Delete — удаление заказа вместе с записью о платеже.
// Пока заказ в Processing или Shipped — отказ (нужно сперва довести его
// до терминального статуса). В старой ревизии блокировался только
// Shipped; тот вариант считается устаревшим.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}

	if order.Status == domain.StatusProcessing || order.Status == domain.StatusShipped {
		return fmt.Errorf("order %s is still %s: %w", id, order.Status, domain.ErrConflict)
	}

	// Страховка: если сюда когда-нибудь попадёт нетерминальный заказ,
	// остаток возвращается ровно один раз. При текущем барьере выше
	// эта ветка недостижима.
	if !order.Status.Terminal() {
		if err := s.ledger.Release(ctx, order.Items); err != nil {
			return fmt.Errorf("release stock: %w", err)
		}
	}

	if err := s.payments.DeleteByOrder(ctx, order.ID); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if err := s.orders.Delete(ctx, order.ID); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	s.inv.Invalidate(ctx, cache.Invalidation{
		Order:   true,
		OrderID: order.ID,
		UserID:  order.UserID,
		Admin:   true,
	})

	s.log.Infof(ctx, "order deleted id=%s", order.ID)
	return nil
}

func productIDs(items []domain.OrderItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	return ids
}
