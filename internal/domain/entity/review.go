package entity

import "time"

// Rango válido de puntuación de una reseña.
const (
	MinRating = 1
	MaxRating = 5
)

// Review reseña de un usuario sobre un negocio.
type Review struct {
	ID         string
	BusinessID string
	UserID     string
	Rating     int
	Comment    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ReviewWithAuthor reseña con nombre y avatar del autor (ficha de negocio).
type ReviewWithAuthor struct {
	Review
	AuthorName   *string
	AuthorAvatar *string
}
