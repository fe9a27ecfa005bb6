package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido y de pago.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"

	PaymentStatusPaid = "paid"
	DefaultCurrency   = "EUR"
)

// Order cabecera de un pedido a un negocio.
type Order struct {
	ID          string
	BusinessID  string
	CustomerID  string
	TotalAmount decimal.Decimal
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem línea de pedido; Price es el precio unitario al momento del pedido.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	Price     decimal.Decimal
	CreatedAt time.Time
}

// Payment registro de pago de un pedido (simulado, sin pasarela).
type Payment struct {
	ID            string
	OrderID       string
	Amount        decimal.Decimal
	Currency      string
	Status        string
	PaymentMethod *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderListing pedido con el nombre del negocio y del cliente.
type OrderListing struct {
	Order
	BusinessName *string
	CustomerName *string
}

// OrderDetail pedido con sus líneas y su pago (si existe).
type OrderDetail struct {
	Order
	Items   []OrderItem
	Payment *Payment
}
