package dto

import "time"

// CreateReviewRequest alta de una reseña (1 a 5 estrellas).
type CreateReviewRequest struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

// ReviewResponse salida de una reseña; el autor solo viene en la ficha del negocio.
type ReviewResponse struct {
	ID           string    `json:"id"`
	BusinessID   string    `json:"business_id"`
	UserID       string    `json:"user_id"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	AuthorName   *string   `json:"author_name,omitempty"`
	AuthorAvatar *string   `json:"author_avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// FavoriteBusinessResponse datos del negocio en la lista de favoritos.
type FavoriteBusinessResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
}

// FavoriteResponse favorito de un usuario.
type FavoriteResponse struct {
	ID         string                    `json:"id"`
	BusinessID string                    `json:"business_id"`
	CreatedAt  time.Time                 `json:"created_at"`
	Business   *FavoriteBusinessResponse `json:"business,omitempty"`
}

// FavoriteListResponse favoritos del usuario, más recientes primero.
type FavoriteListResponse struct {
	Items []FavoriteResponse `json:"items"`
}

// ToggleFavoriteResponse estado resultante tras alternar un favorito.
type ToggleFavoriteResponse struct {
	BusinessID string `json:"business_id"`
	Favorite   bool   `json:"favorite"`
}
