package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func scanCategory(row pgx.CollectableRow) (entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.CreatedAt)
	return c, err
}

// ListCategories devuelve todas las categorías ordenadas por nombre.
func (r *CategoryRepo) ListCategories(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, description, icon, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, storageErr("category.List", err)
	}
	list, err := pgx.CollectRows(rows, scanCategory)
	if err != nil {
		return nil, storageErr("category.List", err)
	}
	return list, nil
}

// CreateCategory inserta una categoría; un nombre repetido es Conflict.
func (r *CategoryRepo) CreateCategory(ctx context.Context, in repository.NewCategory) (*entity.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var c entity.Category
	err := r.q.QueryRow(ctx, `
		INSERT INTO categories (id, name, description, icon)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, icon, created_at`,
		uuid.New().String(), in.Name, in.Description, in.Icon,
	).Scan(&c.ID, &c.Name, &c.Description, &c.Icon, &c.CreatedAt)
	if err != nil {
		return nil, storageErr("category.Create", err)
	}
	return &c, nil
}
