package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_shop/internal/domain"
	"github.com/Gunvolt24/wb_shop/internal/ports"
)

// Проверка, что PaymentValidator удовлетворяет интерфейсу PaymentValidator.
var _ ports.PaymentValidator = (*PaymentValidator)(nil)

// ErrInvalidPayment — базовая (sentinel error) ошибка валидации платежа.
// Консьюмер Kafka по ней отличает «мусорное» событие от временной ошибки.
var ErrInvalidPayment = errors.New("payment validation failed")

// Статусы, которые шлёт платёжный шлюз.
var paymentStatuses = map[string]struct{}{
	"created":  {},
	"captured": {},
	"failed":   {},
	"refunded": {},
}

// PaymentValidator — структура для валидации платёжного события.
type PaymentValidator struct{}

// NewPaymentValidator — конструктор PaymentValidator.
// Возвращает ErrInvalidPayment (с обёрнутой причиной) при любой проблеме.
func NewPaymentValidator() *PaymentValidator { return &PaymentValidator{} }

// Validate — проверяет корректность полей платежа.
func (v *PaymentValidator) Validate(_ context.Context, p *domain.Payment) error {
	if p == nil {
		return fmt.Errorf("%w: платёж не может быть nil", ErrInvalidPayment)
	}
	if p.OrderID == "" {
		return fmt.Errorf("%w: order_id обязателен", ErrInvalidPayment)
	}
	if p.UserID == "" {
		return fmt.Errorf("%w: user_id обязателен", ErrInvalidPayment)
	}
	if p.Status == "" {
		return fmt.Errorf("%w: status обязателен", ErrInvalidPayment)
	}
	if _, ok := paymentStatuses[p.Status]; !ok {
		return fmt.Errorf("%w: неизвестный status %q", ErrInvalidPayment, p.Status)
	}
	return nil
}
