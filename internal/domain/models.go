package domain

import "time"

// OrderStatus — статус заказа. Начальный — Processing.
type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

// Terminal — из Delivered и Cancelled переходов больше нет.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Role — роль пользователя.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Product — товар каталога. Stock меняется только через StockLedger.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     int64     `json:"price"`
	Stock     int64     `json:"stock"`
	PhotoURL  string    `json:"photo_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem — позиция заказа; цена фиксируется на момент оформления.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

// ShippingInfo — адрес доставки.
type ShippingInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	PinCode string `json:"pin_code"`
}

// Order — заказ. Суммы считаются при создании и больше не пересчитываются.
type Order struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id"`
	Status          OrderStatus  `json:"status"`
	ShippingInfo    ShippingInfo `json:"shipping_info"`
	Items           []OrderItem  `json:"items"`
	Subtotal        int64        `json:"subtotal"`
	Tax             int64        `json:"tax"`
	ShippingCharges int64        `json:"shipping_charges"`
	Discount        int64        `json:"discount"`
	Total           int64        `json:"total"`
	CreatedAt       time.Time    `json:"created_at"`
}

// User — пользователь; идентификатор приходит извне (внешняя аутентификация).
type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Role         Role         `json:"role"`
	Gender       string       `json:"gender"`
	DOB          time.Time    `json:"dob"`
	ShippingInfo ShippingInfo `json:"shipping_info"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Coupon — купон на фиксированную скидку.
type Coupon struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Amount int64  `json:"amount"`
}

// Review — отзыв к товару.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// Payment — запись о платеже, подтверждённом шлюзом.
type Payment struct {
	ID               string    `json:"id"`
	OrderID          string    `json:"order_id"`
	UserID           string    `json:"user_id"`
	Status           string    `json:"status"`
	GatewayOrderID   string    `json:"gateway_order_id"`
	GatewayPaymentID string    `json:"gateway_payment_id"`
	GatewaySignature string    `json:"gateway_signature"`
	CreatedAt        time.Time `json:"created_at"`
}
