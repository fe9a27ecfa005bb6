package dto

import "github.com/shopspring/decimal"

// AddToCartRequest añade un producto al carrito de la sesión.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// UpdateCartItemRequest nueva cantidad de una línea; 0 la elimina.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse línea del carrito.
type CartLineResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	ImageURL     string          `json:"image_url"`
	BusinessID   string          `json:"business_id"`
	BusinessName string          `json:"business_name"`
	Stock        int             `json:"stock"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// CartResponse carrito con sus agregados.
type CartResponse struct {
	Items      []CartLineResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}
