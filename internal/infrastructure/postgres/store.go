package postgres

import "github.com/triple000-it/schiedam/internal/domain/repository"

var _ repository.Store = (*Store)(nil)

// Store agrupa los repositorios sobre un mismo Querier (pool o tx).
type Store struct {
	*BusinessRepo
	*CategoryRepo
	*ProductRepo
	*OrderRepo
	*ReviewRepo
	*FavoriteRepo
	*ProfileRepo
}

// NewStore construye todos los repositorios sobre q.
func NewStore(q Querier) *Store {
	return &Store{
		BusinessRepo: NewBusinessRepository(q),
		CategoryRepo: NewCategoryRepository(q),
		ProductRepo:  NewProductRepository(q),
		OrderRepo:    NewOrderRepository(q),
		ReviewRepo:   NewReviewRepository(q),
		FavoriteRepo: NewFavoriteRepository(q),
		ProfileRepo:  NewProfileRepository(q),
	}
}
