package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación de ReviewRepository. El rango de rating lo impone el CHECK de la tabla.
type ReviewRepo struct {
	q Querier
}

// NewReviewRepository construye el adaptador.
func NewReviewRepository(q Querier) *ReviewRepo {
	return &ReviewRepo{q: q}
}

// CreateReview inserta una reseña.
func (r *ReviewRepo) CreateReview(ctx context.Context, in repository.NewReview) (*entity.Review, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var rv entity.Review
	err := r.q.QueryRow(ctx, `
		INSERT INTO reviews (id, business_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, business_id, user_id, rating, comment, created_at, updated_at`,
		uuid.New().String(), in.BusinessID, in.UserID, in.Rating, in.Comment,
	).Scan(&rv.ID, &rv.BusinessID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return nil, storageErr("review.Create", err)
	}
	return &rv, nil
}
