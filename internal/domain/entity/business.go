package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCity ciudad por defecto de los negocios del directorio.
const DefaultCity = "Schiedam"

// ThemeColors paleta cerrada de colores de tema; el primero es el valor por defecto.
var ThemeColors = []string{
	"#3B82F6", // azul
	"#10B981", // esmeralda
	"#F59E0B", // ámbar
	"#EF4444", // rojo
	"#8B5CF6", // violeta
	"#EC4899", // rosa
	"#06B6D4", // cian
	"#84CC16", // lima
	"#F97316", // naranja
	"#6366F1", // índigo
}

// DefaultThemeColor color asignado cuando el negocio no elige uno.
var DefaultThemeColor = ThemeColors[0]

// IsThemeColor informa si c pertenece a la paleta.
func IsThemeColor(c string) bool {
	for _, tc := range ThemeColors {
		if tc == c {
			return true
		}
	}
	return false
}

// Business representa un negocio local del directorio.
// Invariante: Claimed == (OwnerID != nil); el reclamo fija ambos en una sola sentencia.
type Business struct {
	ID               string
	Name             string
	Description      *string
	CategoryID       *string // nil = sin categoría
	Address          string
	PostalCode       string
	City             string
	Phone            *string
	Email            *string
	Website          *string
	Lat              *float64
	Lng              *float64
	OwnerID          *string // nil = no reclamado
	Claimed          bool
	ThemeColor       string
	SubscriptionPlan Plan
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CategoryRef categoría embebida en las vistas de negocio.
type CategoryRef struct {
	ID          string
	Name        string
	Description *string
	Icon        *string
}

// OwnerRef datos de presentación del propietario.
type OwnerRef struct {
	ID        string
	FullName  *string
	AvatarURL *string
}

// ReviewStats señal agregada de reseñas (conteo y media; media 0 sin reseñas).
type ReviewStats struct {
	Count         int64
	AverageRating decimal.Decimal
}

// BusinessListing vista de un negocio en listados: fila + categoría + agregado de reseñas.
type BusinessListing struct {
	Business
	Category *CategoryRef
	Reviews  ReviewStats
}

// BusinessImage imagen de la galería de un negocio.
type BusinessImage struct {
	ID         string
	BusinessID string
	ImageURL   string
	IsPrimary  bool
	UploadedAt time.Time
}

// BusinessHours horario de un día de la semana (0 = domingo).
type BusinessHours struct {
	ID         string
	BusinessID string
	DayOfWeek  int
	OpenTime   *string // "09:00"
	CloseTime  *string
	Closed     bool
}

// BusinessDetail vista completa de la ficha de un negocio.
// Se ensambla con lecturas independientes (imágenes, horario, reseñas, suscripción) sin transacción.
type BusinessDetail struct {
	Business
	Category     *CategoryRef
	Owner        *OwnerRef
	Images       []BusinessImage
	Hours        []BusinessHours
	Reviews      []ReviewWithAuthor
	Subscription *Subscription
}

// MaxProducts límite efectivo de productos: el de la suscripción vigente si fija
// uno, si no el del plan del negocio.
func (d *BusinessDetail) MaxProducts() int {
	if d.Subscription != nil && d.Subscription.MaxProducts > 0 {
		return d.Subscription.MaxProducts
	}
	return d.SubscriptionPlan.Limits().MaxProducts
}
