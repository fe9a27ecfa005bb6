package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/triple000-it/schiedam/internal/application/dto"
	"github.com/triple000-it/schiedam/internal/cart"
	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/repository"
	"github.com/triple000-it/schiedam/pkg/placeholder"
)

// CartUseCase rellena el carrito de la sesión con datos del catálogo. Precio,
// nombre y stock se toman del producto en el momento de añadirlo.
type CartUseCase struct {
	products   repository.ProductRepository
	businesses repository.BusinessRepository
	images     placeholder.Resolver
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(products repository.ProductRepository, businesses repository.BusinessRepository, images placeholder.Resolver) *CartUseCase {
	return &CartUseCase{products: products, businesses: businesses, images: images}
}

// View devuelve el carrito con sus agregados.
func (uc *CartUseCase) View(c *cart.Store) *dto.CartResponse {
	lines := c.Items()
	out := &dto.CartResponse{
		Items:      make([]dto.CartLineResponse, 0, len(lines)),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
	for _, l := range lines {
		image, _ := imageOr(l.Image, l.Name, placeholder.Small, uc.images)
		out.Items = append(out.Items, dto.CartLineResponse{
			ID:           l.ID,
			ProductID:    l.ProductID,
			Name:         l.Name,
			Price:        l.Price,
			Quantity:     l.Quantity,
			ImageURL:     image,
			BusinessID:   l.BusinessID,
			BusinessName: l.BusinessName,
			Stock:        l.Stock,
			Subtotal:     l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}
	return out
}

// Add añade un producto activo. La cantidad queda acotada por el stock actual.
func (uc *CartUseCase) Add(ctx context.Context, c *cart.Store, in dto.AddToCartRequest) (*dto.CartResponse, error) {
	const op = "cart.Add"
	if in.Quantity <= 0 {
		return nil, domain.Validation(op, "quantity debe ser positiva")
	}
	p, err := uc.products.GetProduct(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, domain.NotFound(op, "producto no disponible")
	}
	if p.Stock <= 0 {
		return nil, domain.Conflict(op, domain.ErrInsufficientStock)
	}
	b, err := uc.businesses.GetBusiness(ctx, p.BusinessID)
	if err != nil {
		return nil, err
	}
	c.AddToCart(ctx, cart.Item{
		ProductID:    p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Quantity:     in.Quantity,
		Image:        p.ImageURL,
		BusinessID:   b.ID,
		BusinessName: b.Name,
		Stock:        p.Stock,
	})
	return uc.View(c), nil
}

// Update fija la cantidad de una línea; 0 la elimina.
func (uc *CartUseCase) Update(ctx context.Context, c *cart.Store, lineID string, in dto.UpdateCartItemRequest) *dto.CartResponse {
	c.UpdateQuantity(ctx, lineID, in.Quantity)
	return uc.View(c)
}

// Remove quita una línea.
func (uc *CartUseCase) Remove(ctx context.Context, c *cart.Store, lineID string) *dto.CartResponse {
	c.RemoveFromCart(ctx, lineID)
	return uc.View(c)
}

// Clear vacía el carrito.
func (uc *CartUseCase) Clear(ctx context.Context, c *cart.Store) *dto.CartResponse {
	c.ClearCart(ctx)
	return uc.View(c)
}
