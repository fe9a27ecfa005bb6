package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

var _ repository.FavoriteRepository = (*FavoriteRepo)(nil)

// FavoriteRepo implementación de FavoriteRepository. La unicidad (user_id, business_id)
// la garantiza un índice único; el duplicado se traduce a Conflict.
type FavoriteRepo struct {
	q Querier
}

// NewFavoriteRepository construye el adaptador.
func NewFavoriteRepository(q Querier) *FavoriteRepo {
	return &FavoriteRepo{q: q}
}

// AddFavorite inserta la relación; un duplicado devuelve Conflict(ErrDuplicateFavorite).
func (r *FavoriteRepo) AddFavorite(ctx context.Context, userID, businessID string) (*entity.Favorite, error) {
	const op = "favorite.Add"
	if userID == "" || businessID == "" {
		return nil, domain.Validation(op, "user_id y business_id son requeridos")
	}
	var f entity.Favorite
	err := r.q.QueryRow(ctx, `
		INSERT INTO favorites (id, user_id, business_id)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, business_id, created_at`,
		uuid.New().String(), userID, businessID,
	).Scan(&f.ID, &f.UserID, &f.BusinessID, &f.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Conflict(op, domain.ErrDuplicateFavorite)
		}
		return nil, storageErr(op, err)
	}
	return &f, nil
}

// RemoveFavorite elimina la relación; si no existe no es error.
func (r *FavoriteRepo) RemoveFavorite(ctx context.Context, userID, businessID string) error {
	if !validID(userID) || !validID(businessID) {
		return nil
	}
	_, err := r.q.Exec(ctx, `DELETE FROM favorites WHERE user_id = $1 AND business_id = $2`, userID, businessID)
	if err != nil {
		return storageErr("favorite.Remove", err)
	}
	return nil
}

// ListFavorites devuelve los favoritos del usuario con los datos básicos del negocio.
func (r *FavoriteRepo) ListFavorites(ctx context.Context, userID string) ([]entity.FavoriteWithBusiness, error) {
	const op = "favorite.List"
	if !validID(userID) {
		return []entity.FavoriteWithBusiness{}, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT f.id, f.user_id, f.business_id, f.created_at,
			b.id, b.name, b.description, b.address, b.city
		FROM favorites f
		LEFT JOIN businesses b ON b.id = f.business_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`, userID)
	if err != nil {
		return nil, storageErr(op, err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.FavoriteWithBusiness, error) {
		var fw entity.FavoriteWithBusiness
		var bID, bName, bAddress, bCity, bDesc *string
		err := row.Scan(&fw.ID, &fw.UserID, &fw.BusinessID, &fw.CreatedAt, &bID, &bName, &bDesc, &bAddress, &bCity)
		if err == nil && bID != nil {
			fw.Business = &entity.FavoriteBusiness{
				ID: *bID, Name: deref(bName), Description: bDesc, Address: deref(bAddress), City: deref(bCity),
			}
		}
		return fw, err
	})
	if err != nil {
		return nil, storageErr(op, err)
	}
	return list, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
