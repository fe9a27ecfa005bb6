package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Los bloques presentes dependen del rol del usuario.
type DashboardSummaryDTO struct {
	Role string `json:"role"`

	// Administrador
	TotalBusinesses int `json:"total_businesses,omitempty"`
	TotalCategories int `json:"total_categories,omitempty"`

	// Propietario: un resumen por negocio propio
	Businesses []OwnerBusinessSummaryDTO `json:"businesses,omitempty"`

	// Visitante
	FavoriteBusinesses int             `json:"favorite_businesses,omitempty"`
	TotalSpent         decimal.Decimal `json:"total_spent"`

	TotalOrders int `json:"total_orders"`
}

// OwnerBusinessSummaryDTO métricas de un negocio para su propietario.
type OwnerBusinessSummaryDTO struct {
	BusinessID        string          `json:"business_id"`
	Name              string          `json:"name"`
	Plan              string          `json:"plan"`
	TotalProducts     int             `json:"total_products"`
	MaxProducts       int             `json:"max_products"`
	RemainingProducts int             `json:"remaining_products"`
	TotalOrders       int             `json:"total_orders"`
	Revenue           decimal.Decimal `json:"revenue"`
	ReviewCount       int64           `json:"review_count"`
	AverageRating     decimal.Decimal `json:"average_rating"`
}
