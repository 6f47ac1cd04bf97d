package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/wb_shop/internal/cache"
	"github.com/Gunvolt24/wb_shop/internal/domain"
	"github.com/Gunvolt24/wb_shop/internal/ports"
)

// UserService — пользователи. Идентификатор приходит извне (внешняя
// аутентификация), пароли и сессии здесь не живут.
type UserService struct {
	users   ports.UserRepository
	store   ports.CacheStore
	inv     *cache.Invalidator
	log     ports.Logger
	listTTL time.Duration
}

func NewUserService(
	users ports.UserRepository,
	store ports.CacheStore,
	inv *cache.Invalidator,
	log ports.Logger,
	listTTL time.Duration,
) *UserService {
	return &UserService{users: users, store: store, inv: inv, log: log, listTTL: listTTL}
}

// Get — пользователь по id (user-{id}).
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return cache.ReadThrough(ctx, s.store, s.log, cache.UserKey(id), 0,
		func(ctx context.Context) (*domain.User, error) {
			user, err := s.users.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if user == nil {
				return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
			}
			return user, nil
		})
}

// All — все пользователи (all-users).
func (s *UserService) All(ctx context.Context) ([]*domain.User, error) {
	return cache.ReadThrough(ctx, s.store, s.log, cache.KeyAllUsers, s.listTTL,
		func(ctx context.Context) ([]*domain.User, error) {
			return s.users.All(ctx)
		})
}

// CreateUserInput — регистрация по внешнему id; повторная регистрация
// существующего id — не ошибка, возвращается существующий пользователь.
type CreateUserInput struct {
	ID     string              `json:"id"`
	Name   string              `json:"name"`
	Email  string              `json:"email"`
	Gender string              `json:"gender"`
	DOB    time.Time           `json:"dob"`
	Ship   domain.ShippingInfo `json:"shipping_info"`
}

// Create — первый зарегистрированный пользователь становится админом.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	if in.ID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}

	if existing, err := s.users.GetByID(ctx, in.ID); err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	} else if existing != nil {
		return existing, nil
	}

	if in.Name == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	role := domain.RoleUser
	if total == 0 {
		role = domain.RoleAdmin
	}

	user := &domain.User{
		ID:           in.ID,
		Name:         in.Name,
		Email:        in.Email,
		Role:         role,
		Gender:       in.Gender,
		DOB:          in.DOB,
		ShippingInfo: in.Ship,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.inv.Invalidate(ctx, cache.Invalidation{User: true, UserID: user.ID, Admin: true})

	s.log.Infof(ctx, "user created id=%s role=%s", user.ID, user.Role)
	return user, nil
}

// UpdateRole — смена роли; последнего админа разжаловать нельзя.
func (s *UserService) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	if role != domain.RoleAdmin && role != domain.RoleUser {
		return fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	if user.Role == domain.RoleAdmin && role != domain.RoleAdmin {
		if err := s.ensureNotLastAdmin(ctx); err != nil {
			return err
		}
	}

	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		return fmt.Errorf("update role: %w", err)
	}

	s.inv.Invalidate(ctx, cache.Invalidation{User: true, UserID: id, Admin: true})
	return nil
}

// Delete — удаление пользователя; последнего админа удалить нельзя.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	if user.Role == domain.RoleAdmin {
		if err := s.ensureNotLastAdmin(ctx); err != nil {
			return err
		}
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.inv.Invalidate(ctx, cache.Invalidation{User: true, UserID: id, Admin: true})

	s.log.Infof(ctx, "user deleted id=%s", id)
	return nil
}

// IsAdmin — проверка роли для транспортного слоя.
func (s *UserService) IsAdmin(ctx context.Context, id string) (bool, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	return user.Role == domain.RoleAdmin, nil
}

func (s *UserService) ensureNotLastAdmin(ctx context.Context) error {
	admins, err := s.users.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if admins <= 1 {
		return fmt.Errorf("%w: there should be at least one admin", domain.ErrConflict)
	}
	return nil
}
