package usecase

import (
	"context"
	"errors"

	"github.com/triple000-it/schiedam/internal/application/dto"
	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

// ReviewUseCase reseñas de negocios.
type ReviewUseCase struct {
	reviews    repository.ReviewRepository
	businesses repository.BusinessRepository
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(reviews repository.ReviewRepository, businesses repository.BusinessRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, businesses: businesses}
}

// Create publica una reseña del actor. La puntuación va de 1 a 5.
func (uc *ReviewUseCase) Create(ctx context.Context, actor Actor, businessID string, in dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	const op = "review.Create"
	if in.Rating < entity.MinRating || in.Rating > entity.MaxRating {
		return nil, domain.Validation(op, "rating debe estar entre 1 y 5")
	}
	if _, err := uc.businesses.GetBusiness(ctx, businessID); err != nil {
		return nil, err
	}
	r, err := uc.reviews.CreateReview(ctx, repository.NewReview{
		BusinessID: businessID,
		UserID:     actor.UserID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	})
	if err != nil {
		return nil, err
	}
	out := toReviewResponse(r)
	return &out, nil
}

// FavoriteUseCase negocios favoritos del usuario.
type FavoriteUseCase struct {
	favorites  repository.FavoriteRepository
	businesses repository.BusinessRepository
}

// NewFavoriteUseCase construye el caso de uso.
func NewFavoriteUseCase(favorites repository.FavoriteRepository, businesses repository.BusinessRepository) *FavoriteUseCase {
	return &FavoriteUseCase{favorites: favorites, businesses: businesses}
}

// Add marca el negocio como favorito. Repetirlo es Conflict (ErrDuplicateFavorite).
func (uc *FavoriteUseCase) Add(ctx context.Context, actor Actor, businessID string) (*dto.FavoriteResponse, error) {
	if _, err := uc.businesses.GetBusiness(ctx, businessID); err != nil {
		return nil, err
	}
	f, err := uc.favorites.AddFavorite(ctx, actor.UserID, businessID)
	if err != nil {
		return nil, err
	}
	return &dto.FavoriteResponse{ID: f.ID, BusinessID: f.BusinessID, CreatedAt: f.CreatedAt}, nil
}

// Remove quita el favorito; es idempotente.
func (uc *FavoriteUseCase) Remove(ctx context.Context, actor Actor, businessID string) error {
	return uc.favorites.RemoveFavorite(ctx, actor.UserID, businessID)
}

// Toggle alterna el favorito y devuelve el estado resultante.
func (uc *FavoriteUseCase) Toggle(ctx context.Context, actor Actor, businessID string) (*dto.ToggleFavoriteResponse, error) {
	_, err := uc.Add(ctx, actor, businessID)
	switch {
	case err == nil:
		return &dto.ToggleFavoriteResponse{BusinessID: businessID, Favorite: true}, nil
	case errors.Is(err, domain.ErrDuplicateFavorite):
		if err := uc.Remove(ctx, actor, businessID); err != nil {
			return nil, err
		}
		return &dto.ToggleFavoriteResponse{BusinessID: businessID, Favorite: false}, nil
	default:
		return nil, err
	}
}

// List devuelve los favoritos del actor con los datos básicos del negocio.
func (uc *FavoriteUseCase) List(ctx context.Context, actor Actor) (*dto.FavoriteListResponse, error) {
	list, err := uc.favorites.ListFavorites(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FavoriteResponse, 0, len(list))
	for _, f := range list {
		item := dto.FavoriteResponse{ID: f.ID, BusinessID: f.BusinessID, CreatedAt: f.CreatedAt}
		if b := f.Business; b != nil {
			item.Business = &dto.FavoriteBusinessResponse{
				ID: b.ID, Name: b.Name, Description: b.Description, Address: b.Address, City: b.City,
			}
		}
		items = append(items, item)
	}
	return &dto.FavoriteListResponse{Items: items}, nil
}
