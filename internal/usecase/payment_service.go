package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/Gunvolt24/wb_shop/internal/domain"
	"github.com/Gunvolt24/wb_shop/internal/ports"
	"github.com/google/uuid"
)

// PaymentService — записи о платежах, подтверждённых шлюзом.
// Создание заказа в шлюзе и проверка подписи — вне ядра; сюда приходит
// уже свершившийся факт: по HTTP или событием из Kafka.
type PaymentService struct {
	payments  ports.PaymentRepository
	orders    ports.OrderRepository
	validator ports.PaymentValidator
	log       ports.Logger
}

func NewPaymentService(
	payments ports.PaymentRepository,
	orders ports.OrderRepository,
	validator ports.PaymentValidator,
	log ports.Logger,
) *PaymentService {
	return &PaymentService{payments: payments, orders: orders, validator: validator, log: log}
}

// Create — сохранить платёж, привязанный к существующему заказу.
func (s *PaymentService) Create(ctx context.Context, payment *domain.Payment) error {
	if err := s.validator.Validate(ctx, payment); err != nil {
		return err
	}

	order, err := s.orders.GetByID(ctx, payment.OrderID)
	if err != nil {
		return fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return fmt.Errorf("order %s: %w", payment.OrderID, domain.ErrNotFound)
	}

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now().UTC()
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return fmt.Errorf("create payment: %w", err)
	}

	s.log.Infof(ctx, "payment recorded id=%s order=%s status=%s", payment.ID, payment.OrderID, payment.Status)
	return nil
}

// SaveFromMessage — платёжное событие из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields);
//  2. валидация (вернёт validate.ErrInvalidPayment — такие события
//     консьюмер коммитит и пропускает);
//  3. сохранение через Create.
func (s *PaymentService) SaveFromMessage(ctx context.Context, raw []byte) error {
	var payment domain.Payment
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payment); err != nil {
		s.log.Warnf(ctx, "invalid payment json err=%v", err)
		return fmt.Errorf("invalid json: %w", err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		s.log.Warnf(ctx, "invalid payment json: trailing data")
		return fmt.Errorf("invalid json: trailing data")
	}

	return s.Create(ctx, &payment)
}
