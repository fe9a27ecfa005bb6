package entity

import "time"

// Favorite relación usuario-negocio; como máximo una fila por par.
type Favorite struct {
	ID         string
	UserID     string
	BusinessID string
	CreatedAt  time.Time
}

// FavoriteBusiness datos básicos del negocio para la lista de favoritos.
type FavoriteBusiness struct {
	ID          string
	Name        string
	Description *string
	Address     string
	City        string
}

// FavoriteWithBusiness favorito con el negocio embebido (nil si el negocio ya no existe).
type FavoriteWithBusiness struct {
	Favorite
	Business *FavoriteBusiness
}
