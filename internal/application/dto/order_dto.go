package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en el checkout simulado.
const (
	PaymentMethodIDEAL  = "ideal"
	PaymentMethodCard   = "card"
	PaymentMethodPayPal = "paypal"
)

// ListOrdersRequest filtros de los listados de pedidos.
type ListOrdersRequest struct {
	Status string `query:"status"`
}

// OrderResponse cabecera de un pedido.
type OrderResponse struct {
	ID           string          `json:"id"`
	BusinessID   string          `json:"business_id"`
	CustomerID   string          `json:"customer_id"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	BusinessName *string         `json:"business_name,omitempty"`
	CustomerName *string         `json:"customer_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// OrderItemResponse línea de pedido con el precio congelado.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PaymentResponse pago registrado de un pedido.
type PaymentResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// OrderDetailResponse pedido con líneas y pago.
type OrderDetailResponse struct {
	OrderResponse
	Items   []OrderItemResponse `json:"items"`
	Payment *PaymentResponse    `json:"payment,omitempty"`
}

// OrderListResponse listado de pedidos, más recientes primero.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
}

// CheckoutRequest entrada del checkout. Método vacío = iDEAL.
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=ideal card paypal"`
}

// CheckoutResponse un pedido por negocio del carrito.
type CheckoutResponse struct {
	Orders      []OrderDetailResponse `json:"orders"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
}
