package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de la tienda de un negocio.
// Los productos inactivos no aparecen en los listados públicos.
type Product struct {
	ID          string
	BusinessID  string
	Name        string
	Description *string
	Price       decimal.Decimal // >= 0
	Stock       int             // >= 0
	ImageURL    *string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
