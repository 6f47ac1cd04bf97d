package validate

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"unicode/utf8"

	"github.com/Gunvolt24/wb_shop/internal/domain"
	"github.com/Gunvolt24/wb_shop/internal/ports"
)

// Проверка, что ProductValidator удовлетворяет интерфейсу ProductValidator.
var _ ports.ProductValidator = (*ProductValidator)(nil)

// ErrInvalidProduct — базовая (sentinel error) ошибка валидации товара.
var ErrInvalidProduct = errors.New("product validation failed")

const maxProductNameLen = 200

// ProductValidator — структура для валидации товара из фида.
type ProductValidator struct{}

// NewProductValidator — конструктор ProductValidator.
// Возвращает ErrInvalidProduct (с обёрнутой причиной) при любой проблеме.
func NewProductValidator() *ProductValidator { return &ProductValidator{} }

// Validate — проверяет корректность полей товара.
func (v *ProductValidator) Validate(_ context.Context, p *domain.Product) error {
	if p == nil {
		return fmt.Errorf("%w: товар не может быть nil", ErrInvalidProduct)
	}
	if p.ID == "" {
		return fmt.Errorf("%w: id обязателен", ErrInvalidProduct)
	}
	if p.Name == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidProduct)
	}
	if utf8.RuneCountInString(p.Name) > maxProductNameLen {
		return fmt.Errorf("%w: name длиннее %d символов", ErrInvalidProduct, maxProductNameLen)
	}
	if p.Category == "" {
		return fmt.Errorf("%w: category обязательна", ErrInvalidProduct)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%w: price должен быть положительным", ErrInvalidProduct)
	}
	if p.Stock < 0 {
		return fmt.Errorf("%w: stock должен быть неотрицательным", ErrInvalidProduct)
	}
	if p.PhotoURL != "" {
		if u, err := url.Parse(p.PhotoURL); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: photo_url некорректен", ErrInvalidProduct)
		}
	}
	return nil
}
