package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

// ListProducts productos activos del negocio, más recientes primero.
func (s *Store) ListProducts(_ context.Context, businessID string) ([]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := []entity.Product{}
	for _, p := range s.t.products {
		if p.BusinessID == businessID && p.Active {
			list = append(list, p)
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

// GetProduct obtiene un producto (activo o no).
func (s *Store) GetProduct(_ context.Context, id string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.t.products[id]
	if !ok {
		return nil, domain.NotFound("product.Get", "producto no encontrado")
	}
	return &p, nil
}

// CountProducts cuenta activos e inactivos.
func (s *Store) CountProducts(_ context.Context, businessID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, p := range s.t.products {
		if p.BusinessID == businessID {
			n++
		}
	}
	return n, nil
}

// CreateProduct inserta un producto de un negocio existente.
func (s *Store) CreateProduct(_ context.Context, in repository.NewProduct) (*entity.Product, error) {
	const op = "product.Create"
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.t.businesses[in.BusinessID]; !ok {
		return nil, fkErr(op, "businesses", in.BusinessID)
	}
	now := s.now()
	p := entity.Product{
		ID: uuid.New().String(), BusinessID: in.BusinessID, Name: in.Name, Description: in.Description,
		Price: in.Price, Stock: in.Stock, ImageURL: in.ImageURL, Active: in.IsActive(),
		CreatedAt: now, UpdatedAt: now,
	}
	rememberKey(s, productsOf, p.ID)
	s.t.products[p.ID] = p
	return &p, nil
}

// UpdateProduct aplica el parche y refresca updated_at.
func (s *Store) UpdateProduct(_ context.Context, id string, patch repository.ProductPatch) (*entity.Product, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.t.products[id]
	if !ok {
		return nil, domain.NotFound("product.Update", "producto no encontrado")
	}
	patch.Apply(&p)
	p.UpdatedAt = s.now()
	rememberKey(s, productsOf, id)
	s.t.products[id] = p
	return &p, nil
}

// DecrementStock descuenta qty bajo el mismo cerrojo que la comprobación.
func (s *Store) DecrementStock(_ context.Context, id string, qty int) (*entity.Product, error) {
	const op = "product.DecrementStock"
	if qty <= 0 {
		return nil, domain.Validation(op, "quantity debe ser positiva")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.t.products[id]
	if !ok {
		return nil, domain.NotFound(op, "producto no encontrado")
	}
	if p.Stock < qty {
		return nil, domain.Conflict(op, domain.ErrInsufficientStock)
	}
	p.Stock -= qty
	p.UpdatedAt = s.now()
	rememberKey(s, productsOf, id)
	s.t.products[id] = p
	return &p, nil
}

// DeleteProduct elimina un producto.
func (s *Store) DeleteProduct(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.t.products[id]; !ok {
		return domain.NotFound("product.Delete", "producto no encontrado")
	}
	for _, it := range s.t.items {
		if it.ProductID == id {
			return fkErr("product.Delete", "order_items", it.ID)
		}
	}
	rememberKey(s, productsOf, id)
	delete(s.t.products, id)
	return nil
}
