package usecase

import (
	"context"

	"github.com/triple000-it/schiedam/internal/application/dto"
	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/repository"
	"github.com/triple000-it/schiedam/pkg/placeholder"
)

// ProductUseCase tienda de cada negocio. Las escrituras exigen ser propietario o admin
// y el alta respeta el máximo de productos del plan.
type ProductUseCase struct {
	products   repository.ProductRepository
	businesses repository.BusinessRepository
	images     placeholder.Resolver
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, businesses repository.BusinessRepository, images placeholder.Resolver) *ProductUseCase {
	return &ProductUseCase{products: products, businesses: businesses, images: images}
}

// ListByBusiness lista los productos activos del negocio, más recientes primero.
func (uc *ProductUseCase) ListByBusiness(ctx context.Context, businessID string) (*dto.ProductListResponse, error) {
	list, err := uc.products.ListProducts(ctx, businessID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for i := range list {
		items = append(items, toProductResponse(&list[i], uc.images))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(p, uc.images)
	return &out, nil
}

// Create añade un producto a la tienda. El conteo incluye los inactivos.
func (uc *ProductUseCase) Create(ctx context.Context, actor Actor, businessID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	const op = "product.Create"
	b, err := managedBusiness(ctx, uc.businesses, actor, op, businessID)
	if err != nil {
		return nil, err
	}
	count, err := uc.products.CountProducts(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if count >= b.MaxProducts() {
		return nil, domain.Conflict(op, domain.ErrPlanLimitReached)
	}
	p, err := uc.products.CreateProduct(ctx, repository.NewProduct{
		BusinessID:  b.ID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		Active:      in.Active,
	})
	if err != nil {
		return nil, err
	}
	out := toProductResponse(p, uc.images)
	return &out, nil
}

// Update actualiza parcialmente un producto del negocio del actor.
func (uc *ProductUseCase) Update(ctx context.Context, actor Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	const op = "product.Update"
	if err := uc.authorize(ctx, actor, op, id); err != nil {
		return nil, err
	}
	p, err := uc.products.UpdateProduct(ctx, id, repository.ProductPatch{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		Active:      in.Active,
	})
	if err != nil {
		return nil, err
	}
	out := toProductResponse(p, uc.images)
	return &out, nil
}

// Delete elimina un producto del negocio del actor.
func (uc *ProductUseCase) Delete(ctx context.Context, actor Actor, id string) error {
	const op = "product.Delete"
	if err := uc.authorize(ctx, actor, op, id); err != nil {
		return err
	}
	return uc.products.DeleteProduct(ctx, id)
}

func (uc *ProductUseCase) authorize(ctx context.Context, actor Actor, op, productID string) error {
	p, err := uc.products.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	_, err = managedBusiness(ctx, uc.businesses, actor, op, p.BusinessID)
	return err
}
