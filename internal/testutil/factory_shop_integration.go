//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/wb_shop/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного товара.
func MakeProduct(opts ...func(*domain.Product)) domain.Product {
	id := "prod-" + UniqSuffix()
	now := time.Now().UTC().Truncate(time.Second)

	p := domain.Product{
		ID:        id,
		Name:      "Widget " + UniqSuffix(),
		Category:  "widgets",
		Price:     1000,
		Stock:     10,
		PhotoURL:  "https://img.example.com/" + id + ".jpg",
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, fn := range opts {
		fn(&p)
	}
	return p
}

func WithStock(n int64) func(*domain.Product) {
	return func(p *domain.Product) { p.Stock = n }
}

func WithCategory(c string) func(*domain.Product) {
	return func(p *domain.Product) { p.Category = c }
}

func WithPrice(price int64) func(*domain.Product) {
	return func(p *domain.Product) { p.Price = price }
}

// Мини-генератор пользователя.
func MakeUser(opts ...func(*domain.User)) domain.User {
	id := "user-" + UniqSuffix()
	now := time.Now().UTC().Truncate(time.Second)

	u := domain.User{
		ID:     id,
		Name:   "John Smith",
		Email:  id + "@example.com",
		Role:   domain.RoleUser,
		Gender: "male",
		DOB:    now.AddDate(-30, 0, 0),
		ShippingInfo: domain.ShippingInfo{
			Address: "Main st 1",
			City:    "Metropolis",
			State:   "NA",
			Country: "US",
			PinCode: "000000",
		},
		CreatedAt: now,
	}

	for _, fn := range opts {
		fn(&u)
	}
	return u
}

func AsAdmin() func(*domain.User) {
	return func(u *domain.User) { u.Role = domain.RoleAdmin }
}

// Мини-генератор заказа на один товар; суммы согласованы между собой.
func MakeOrder(userID string, product domain.Product, qty int64, opts ...func(*domain.Order)) domain.Order {
	now := time.Now().UTC().Truncate(time.Second)
	subtotal := product.Price * qty

	o := domain.Order{
		ID:     "ord-" + UniqSuffix(),
		UserID: userID,
		Status: domain.StatusProcessing,
		ShippingInfo: domain.ShippingInfo{
			Address: "Main st 1",
			City:    "Metropolis",
			State:   "NA",
			Country: "US",
			PinCode: "000000",
		},
		Items: []domain.OrderItem{
			{ProductID: product.ID, Name: product.Name, Price: product.Price, Quantity: qty},
		},
		Subtotal:        subtotal,
		Tax:             subtotal / 10,
		ShippingCharges: 50,
		Total:           subtotal + subtotal/10 + 50,
		CreatedAt:       now,
	}

	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithStatus(s domain.OrderStatus) func(*domain.Order) {
	return func(o *domain.Order) { o.Status = s }
}

// Мини-генератор купона.
func MakeCoupon(amount int64) domain.Coupon {
	return domain.Coupon{
		ID:     "cpn-" + UniqSuffix(),
		Code:   "SALE-" + UniqSuffix(),
		Amount: amount,
	}
}

// Мини-генератор платёжного события под заказ.
func MakePayment(orderID, userID string) domain.Payment {
	return domain.Payment{
		ID:               "pay-" + UniqSuffix(),
		OrderID:          orderID,
		UserID:           userID,
		Status:           "captured",
		GatewayOrderID:   "gw-ord-" + UniqSuffix(),
		GatewayPaymentID: "gw-pay-" + UniqSuffix(),
		GatewaySignature: randHex(16),
		CreatedAt:        time.Now().UTC().Truncate(time.Second),
	}
}
