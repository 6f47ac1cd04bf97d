package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/wb_shop/internal/cache"
	"github.com/Gunvolt24/wb_shop/internal/domain"
	"github.com/Gunvolt24/wb_shop/internal/ports"
	"github.com/google/uuid"
)

// CouponService — купоны и применение скидки. Генерация кодов — забота
// вызывающего, здесь код хранится как есть.
type CouponService struct {
	coupons ports.CouponRepository
	store   ports.CacheStore
	inv     *cache.Invalidator
	log     ports.Logger
	listTTL time.Duration
}

func NewCouponService(
	coupons ports.CouponRepository,
	store ports.CacheStore,
	inv *cache.Invalidator,
	log ports.Logger,
	listTTL time.Duration,
) *CouponService {
	return &CouponService{coupons: coupons, store: store, inv: inv, log: log, listTTL: listTTL}
}

func (s *CouponService) Create(ctx context.Context, code string, amount int64) (*domain.Coupon, error) {
	if code == "" || amount <= 0 {
		return nil, fmt.Errorf("%w: code and positive amount are required", domain.ErrValidation)
	}

	coupon := &domain.Coupon{ID: uuid.New().String(), Code: code, Amount: amount}
	if err := s.coupons.Create(ctx, coupon); err != nil {
		return nil, fmt.Errorf("create coupon: %w", err)
	}

	s.inv.Invalidate(ctx, cache.Invalidation{Coupon: true, CouponID: coupon.ID})
	return coupon, nil
}

// Get — купон по id (coupon-{id}).
func (s *CouponService) Get(ctx context.Context, id string) (*domain.Coupon, error) {
	return cache.ReadThrough(ctx, s.store, s.log, cache.CouponKey(id), 0,
		func(ctx context.Context) (*domain.Coupon, error) {
			coupon, err := s.coupons.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if coupon == nil {
				return nil, fmt.Errorf("coupon %s: %w", id, domain.ErrNotFound)
			}
			return coupon, nil
		})
}

// All — все купоны (all-coupons).
func (s *CouponService) All(ctx context.Context) ([]*domain.Coupon, error) {
	return cache.ReadThrough(ctx, s.store, s.log, cache.KeyAllCoupons, s.listTTL,
		func(ctx context.Context) ([]*domain.Coupon, error) {
			return s.coupons.All(ctx)
		})
}

func (s *CouponService) Update(ctx context.Context, id, code string, amount int64) (*domain.Coupon, error) {
	coupon, err := s.coupons.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load coupon: %w", err)
	}
	if coupon == nil {
		return nil, fmt.Errorf("coupon %s: %w", id, domain.ErrNotFound)
	}

	if code != "" {
		coupon.Code = code
	}
	if amount > 0 {
		coupon.Amount = amount
	}
	if err := s.coupons.Save(ctx, coupon); err != nil {
		return nil, fmt.Errorf("save coupon: %w", err)
	}

	s.inv.Invalidate(ctx, cache.Invalidation{Coupon: true, CouponID: id})
	return coupon, nil
}

func (s *CouponService) Delete(ctx context.Context, id string) error {
	coupon, err := s.coupons.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load coupon: %w", err)
	}
	if coupon == nil {
		return fmt.Errorf("coupon %s: %w", id, domain.ErrNotFound)
	}

	if err := s.coupons.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}

	s.inv.Invalidate(ctx, cache.Invalidation{Coupon: true, CouponID: id})
	return nil
}

// ApplyDiscount — размер скидки по коду; неизвестный код — ErrValidation
// (клиент ввёл неправильный купон, это не «ресурс не найден»).
func (s *CouponService) ApplyDiscount(ctx context.Context, code string) (int64, error) {
	if code == "" {
		return 0, fmt.Errorf("%w: coupon code is required", domain.ErrValidation)
	}

	coupon, err := s.coupons.GetByCode(ctx, code)
	if err != nil {
		return 0, fmt.Errorf("load coupon: %w", err)
	}
	if coupon == nil {
		return 0, fmt.Errorf("%w: invalid coupon code", domain.ErrValidation)
	}
	return coupon.Amount, nil
}
