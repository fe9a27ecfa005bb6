package usecase

import (
	"context"

	"github.com/triple000-it/schiedam/internal/application/dto"
	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

// CategoryUseCase categorías del directorio; solo un admin las crea.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for i := range list {
		out = append(out, toCategoryResponse(&list[i]))
	}
	return out, nil
}

// Create crea una categoría. Un nombre repetido es Conflict.
func (uc *CategoryUseCase) Create(ctx context.Context, actor Actor, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if !actor.IsAdmin() {
		return nil, domain.Forbidden("category.Create", "solo un administrador crea categorías")
	}
	c, err := uc.repo.CreateCategory(ctx, repository.NewCategory{Name: in.Name, Description: in.Description, Icon: in.Icon})
	if err != nil {
		return nil, err
	}
	out := toCategoryResponse(c)
	return &out, nil
}
