package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListBusinessesRequest filtros de GET /api/businesses.
type ListBusinessesRequest struct {
	CategoryID string `query:"category_id"`
	Search     string `query:"search"`
	Limit      int    `query:"limit" validate:"min=0,max=100"`
	Offset     int    `query:"offset" validate:"min=0"`
}

// CreateBusinessRequest alta de un negocio.
type CreateBusinessRequest struct {
	Name             string   `json:"name" validate:"required,min=1,max=200"`
	Description      *string  `json:"description"`
	CategoryID       *string  `json:"category_id"`
	Address          string   `json:"address" validate:"required"`
	PostalCode       string   `json:"postal_code" validate:"required"`
	City             string   `json:"city"`
	Phone            *string  `json:"phone"`
	Email            *string  `json:"email"`
	Website          *string  `json:"website"`
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
	ThemeColor       string   `json:"theme_color"`
	SubscriptionPlan string   `json:"subscription_plan"`
}

// UpdateBusinessRequest actualización parcial de un negocio.
type UpdateBusinessRequest struct {
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	CategoryID       *string  `json:"category_id"`
	Address          *string  `json:"address"`
	PostalCode       *string  `json:"postal_code"`
	City             *string  `json:"city"`
	Phone            *string  `json:"phone"`
	Email            *string  `json:"email"`
	Website          *string  `json:"website"`
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
	ThemeColor       *string  `json:"theme_color"`
	SubscriptionPlan *string  `json:"subscription_plan"`
}

// BusinessResponse campos propios de un negocio.
type BusinessResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      *string   `json:"description,omitempty"`
	CategoryID       *string   `json:"category_id,omitempty"`
	Address          string    `json:"address"`
	PostalCode       string    `json:"postal_code"`
	City             string    `json:"city"`
	Phone            *string   `json:"phone,omitempty"`
	Email            *string   `json:"email,omitempty"`
	Website          *string   `json:"website,omitempty"`
	Lat              *float64  `json:"lat,omitempty"`
	Lng              *float64  `json:"lng,omitempty"`
	OwnerID          *string   `json:"owner_id,omitempty"`
	Claimed          bool      `json:"claimed"`
	ThemeColor       string    `json:"theme_color"`
	SubscriptionPlan string    `json:"subscription_plan"`
	ImageURL         string    `json:"image_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CategoryRefResponse categoría embebida en un negocio.
type CategoryRefResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

// BusinessListItem negocio en un listado, con categoría y señal de reseñas.
type BusinessListItem struct {
	BusinessResponse
	Category      *CategoryRefResponse `json:"category,omitempty"`
	ReviewCount   int64                `json:"review_count"`
	AverageRating decimal.Decimal      `json:"average_rating"`
}

// BusinessListResponse listado paginado de negocios.
type BusinessListResponse struct {
	Items []BusinessListItem `json:"items"`
	Page  PageResponse       `json:"page"`
}

// OwnerResponse propietario mostrado en la ficha.
type OwnerResponse struct {
	ID        string  `json:"id"`
	FullName  *string `json:"full_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// BusinessImageResponse imagen de la galería.
type BusinessImageResponse struct {
	ID        string `json:"id"`
	ImageURL  string `json:"image_url"`
	IsPrimary bool   `json:"is_primary"`
}

// BusinessHoursResponse horario de un día (0 = domingo).
type BusinessHoursResponse struct {
	DayOfWeek int     `json:"day_of_week"`
	OpenTime  *string `json:"open_time,omitempty"`
	CloseTime *string `json:"close_time,omitempty"`
	Closed    bool    `json:"closed"`
}

// SubscriptionResponse suscripción vigente y capacidades del plan.
type SubscriptionResponse struct {
	Plan          string     `json:"plan"`
	Status        string     `json:"status"`
	MaxProducts   int        `json:"max_products"`
	MaxImages     int        `json:"max_images"`
	IncludesVideo bool       `json:"includes_video"`
	IncludesChat  bool       `json:"includes_chat"`
	PeriodEnd     *time.Time `json:"current_period_end,omitempty"`
}

// BusinessDetailResponse ficha completa de un negocio.
type BusinessDetailResponse struct {
	BusinessResponse
	Category      *CategoryRefResponse    `json:"category,omitempty"`
	Owner         *OwnerResponse          `json:"owner,omitempty"`
	Images        []BusinessImageResponse `json:"images"`
	Hours         []BusinessHoursResponse `json:"hours"`
	Reviews       []ReviewResponse        `json:"reviews"`
	ReviewCount   int64                   `json:"review_count"`
	AverageRating decimal.Decimal         `json:"average_rating"`
	Subscription  *SubscriptionResponse   `json:"subscription,omitempty"`
}
