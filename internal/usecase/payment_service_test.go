package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/wb_shop/internal/domain"
	"github.com/Gunvolt24/wb_shop/internal/ports/mocks"
	"github.com/Gunvolt24/wb_shop/internal/usecase"
	"github.com/Gunvolt24/wb_shop/pkg/validate"
)

func newPaymentEnv(t *testing.T) (*mocks.MockPaymentRepository, *mocks.MockOrderRepository, *usecase.PaymentService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	payments := mocks.NewMockPaymentRepository(ctrl)
	orders := mocks.NewMockOrderRepository(ctrl)
	svc := usecase.NewPaymentService(payments, orders, validate.NewPaymentValidator(), noopLogger{})
	return payments, orders, svc
}

func TestPaymentCreate_OK(t *testing.T) {
	payments, orders, svc := newPaymentEnv(t)

	orders.EXPECT().GetByID(gomock.Any(), "o-1").
		Return(&domain.Order{ID: "o-1", UserID: "u-1"}, nil)
	payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Payment) error {
			if p.ID == "" || p.CreatedAt.IsZero() {
				t.Fatalf("id and created_at must be filled: %+v", p)
			}
			return nil
		})

	err := svc.Create(context.Background(), &domain.Payment{OrderID: "o-1", UserID: "u-1", Status: "captured"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
}

func TestPaymentCreate_InvalidPayment(t *testing.T) {
	_, _, svc := newPaymentEnv(t)

	err := svc.Create(context.Background(), &domain.Payment{OrderID: "o-1", UserID: "u-1", Status: "weird"})
	if !errors.Is(err, validate.ErrInvalidPayment) {
		t.Fatalf("want ErrInvalidPayment, got %v", err)
	}
}

func TestPaymentCreate_UnknownOrder(t *testing.T) {
	_, orders, svc := newPaymentEnv(t)

	orders.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, nil)

	err := svc.Create(context.Background(), &domain.Payment{OrderID: "ghost", UserID: "u-1", Status: "captured"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestSaveFromMessage_OK(t *testing.T) {
	payments, orders, svc := newPaymentEnv(t)

	orders.EXPECT().GetByID(gomock.Any(), "o-1").
		Return(&domain.Order{ID: "o-1", UserID: "u-1"}, nil)
	payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	raw, err := json.Marshal(&domain.Payment{OrderID: "o-1", UserID: "u-1", Status: "captured"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := svc.SaveFromMessage(context.Background(), raw); err != nil {
		t.Fatalf("save from message: %v", err)
	}
}

func TestSaveFromMessage_InvalidJSON(t *testing.T) {
	_, _, svc := newPaymentEnv(t)

	err := svc.SaveFromMessage(context.Background(), []byte("{"))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("want invalid json error, got %v", err)
	}
}

func TestSaveFromMessage_UnknownField(t *testing.T) {
	_, _, svc := newPaymentEnv(t)

	err := svc.SaveFromMessage(context.Background(), []byte(`{"order_id":"o-1","user_id":"u-1","status":"captured","hacker_field":1}`))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("want invalid json error, got %v", err)
	}
}

func TestSaveFromMessage_TrailingData(t *testing.T) {
	_, _, svc := newPaymentEnv(t)

	err := svc.SaveFromMessage(context.Background(), []byte(`{"order_id":"o-1","user_id":"u-1","status":"captured"} trailing`))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("want trailing data error, got %v", err)
	}
}

func TestSaveFromMessage_InvalidPayment(t *testing.T) {
	_, _, svc := newPaymentEnv(t)

	err := svc.SaveFromMessage(context.Background(), []byte(`{"order_id":"","user_id":"u-1","status":"captured"}`))
	if !errors.Is(err, validate.ErrInvalidPayment) {
		t.Fatalf("want ErrInvalidPayment, got %v", err)
	}
}
