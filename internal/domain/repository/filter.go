package repository

import (
	"strings"

	"github.com/triple000-it/schiedam/internal/domain"
)

// BusinessFilter filtro tipado de ListBusinesses. Todos los campos son opcionales
// y se combinan con AND. Limit/Offset solo se aplican si están presentes.
type BusinessFilter struct {
	CategoryID *string
	OwnerID    *string
	Search     *string
	Limit      *int
	Offset     *int
}

// Normalize valida el filtro una sola vez en la frontera del repositorio.
// Las cadenas vacías y los Limit/Offset en cero se tratan como ausentes.
func (f BusinessFilter) Normalize() (BusinessFilter, error) {
	out := BusinessFilter{
		CategoryID: nonEmpty(f.CategoryID),
		OwnerID:    nonEmpty(f.OwnerID),
		Search:     nonEmpty(f.Search),
	}
	if f.Limit != nil {
		if *f.Limit < 0 {
			return BusinessFilter{}, domain.Validation("business.List", "limit no puede ser negativo")
		}
		if *f.Limit > 0 {
			out.Limit = f.Limit
		}
	}
	if f.Offset != nil {
		if *f.Offset < 0 {
			return BusinessFilter{}, domain.Validation("business.List", "offset no puede ser negativo")
		}
		if *f.Offset > 0 {
			out.Offset = f.Offset
		}
	}
	return out, nil
}

// OrderFilter filtro de ListOrders (AND).
type OrderFilter struct {
	BusinessID *string
	CustomerID *string
	Status     *string
}

// Normalize descarta cadenas vacías.
func (f OrderFilter) Normalize() OrderFilter {
	return OrderFilter{
		BusinessID: nonEmpty(f.BusinessID),
		CustomerID: nonEmpty(f.CustomerID),
		Status:     nonEmpty(f.Status),
	}
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// Ptr devuelve un puntero a v (azúcar para construir filtros y parches).
func Ptr[T any](v T) *T {
	return &v
}
