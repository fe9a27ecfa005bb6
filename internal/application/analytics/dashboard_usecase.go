// Package analytics contiene el resumen del panel de control según el rol del usuario.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/triple000-it/schiedam/internal/application/dto"
	"github.com/triple000-it/schiedam/internal/application/usecase"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

// DashboardUseCase genera el resumen del panel.
//
//   - admin:     total de negocios, categorías y pedidos
//   - eigenaar:  por negocio propio, productos frente al límite del plan, pedidos e ingresos
//   - bezoeker:  favoritos, pedidos y gasto total
type DashboardUseCase struct {
	store repository.Store
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.Store) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

// GetSummary construye el DashboardSummaryDTO para el actor.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, actor usecase.Actor) (*dto.DashboardSummaryDTO, error) {
	switch actor.Role {
	case entity.RoleAdmin:
		return uc.adminSummary(ctx)
	case entity.RoleOwner:
		return uc.ownerSummary(ctx, actor)
	default:
		return uc.visitorSummary(ctx, actor)
	}
}

type countResult struct {
	n   int
	err error
}

type ordersResult struct {
	orders []entity.OrderListing
	err    error
}

func (uc *DashboardUseCase) adminSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	// ── Tres lecturas independientes en paralelo ──────────────────────────────
	businessCh := make(chan countResult, 1)
	categoryCh := make(chan countResult, 1)
	ordersCh := make(chan ordersResult, 1)

	go func() {
		list, err := uc.store.ListBusinesses(ctx, repository.BusinessFilter{})
		businessCh <- countResult{len(list), err}
	}()
	go func() {
		list, err := uc.store.ListCategories(ctx)
		categoryCh <- countResult{len(list), err}
	}()
	go func() {
		list, err := uc.store.ListOrders(ctx, repository.OrderFilter{})
		ordersCh <- ordersResult{list, err}
	}()

	businesses := <-businessCh
	categories := <-categoryCh
	orders := <-ordersCh

	if businesses.err != nil {
		return nil, fmt.Errorf("dashboard: negocios: %w", businesses.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: categorías: %w", categories.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos: %w", orders.err)
	}
	return &dto.DashboardSummaryDTO{
		Role:            string(entity.RoleAdmin),
		TotalBusinesses: businesses.n,
		TotalCategories: categories.n,
		TotalOrders:     len(orders.orders),
		TotalSpent:      decimal.Zero,
	}, nil
}

func (uc *DashboardUseCase) ownerSummary(ctx context.Context, actor usecase.Actor) (*dto.DashboardSummaryDTO, error) {
	owned, err := uc.store.ListBusinesses(ctx, repository.BusinessFilter{OwnerID: &actor.UserID})
	if err != nil {
		return nil, fmt.Errorf("dashboard: negocios propios: %w", err)
	}
	out := &dto.DashboardSummaryDTO{
		Role:       string(entity.RoleOwner),
		Businesses: make([]dto.OwnerBusinessSummaryDTO, 0, len(owned)),
		TotalSpent: decimal.Zero,
	}
	for i := range owned {
		s, err := uc.businessSummary(ctx, &owned[i])
		if err != nil {
			return nil, err
		}
		out.Businesses = append(out.Businesses, *s)
		out.TotalOrders += s.TotalOrders
	}
	return out, nil
}

// businessSummary conteo de productos, pedidos y límite efectivo del negocio, en paralelo.
func (uc *DashboardUseCase) businessSummary(ctx context.Context, b *entity.BusinessListing) (*dto.OwnerBusinessSummaryDTO, error) {
	productsCh := make(chan countResult, 1)
	ordersCh := make(chan ordersResult, 1)
	limitCh := make(chan countResult, 1)

	go func() {
		n, err := uc.store.CountProducts(ctx, b.ID)
		productsCh <- countResult{n, err}
	}()
	go func() {
		list, err := uc.store.ListOrders(ctx, repository.OrderFilter{BusinessID: &b.ID})
		ordersCh <- ordersResult{list, err}
	}()
	go func() {
		d, err := uc.store.GetBusiness(ctx, b.ID)
		if err != nil {
			limitCh <- countResult{err: err}
			return
		}
		limitCh <- countResult{n: d.MaxProducts()}
	}()

	products := <-productsCh
	orders := <-ordersCh
	limit := <-limitCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos de %s: %w", b.ID, products.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos de %s: %w", b.ID, orders.err)
	}
	if limit.err != nil {
		return nil, fmt.Errorf("dashboard: límite de %s: %w", b.ID, limit.err)
	}
	return &dto.OwnerBusinessSummaryDTO{
		BusinessID:        b.ID,
		Name:              b.Name,
		Plan:              string(b.SubscriptionPlan),
		TotalProducts:     products.n,
		MaxProducts:       limit.n,
		RemainingProducts: max(limit.n-products.n, 0),
		TotalOrders:       len(orders.orders),
		Revenue:           sumTotals(orders.orders),
		ReviewCount:       b.Reviews.Count,
		AverageRating:     b.Reviews.AverageRating.Round(2),
	}, nil
}

func (uc *DashboardUseCase) visitorSummary(ctx context.Context, actor usecase.Actor) (*dto.DashboardSummaryDTO, error) {
	favoritesCh := make(chan countResult, 1)
	ordersCh := make(chan ordersResult, 1)

	go func() {
		list, err := uc.store.ListFavorites(ctx, actor.UserID)
		favoritesCh <- countResult{len(list), err}
	}()
	go func() {
		list, err := uc.store.ListOrders(ctx, repository.OrderFilter{CustomerID: &actor.UserID})
		ordersCh <- ordersResult{list, err}
	}()

	favorites := <-favoritesCh
	orders := <-ordersCh

	if favorites.err != nil {
		return nil, fmt.Errorf("dashboard: favoritos: %w", favorites.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos: %w", orders.err)
	}
	return &dto.DashboardSummaryDTO{
		Role:               string(entity.RoleVisitor),
		FavoriteBusinesses: favorites.n,
		TotalOrders:        len(orders.orders),
		TotalSpent:         sumTotals(orders.orders),
	}, nil
}

func sumTotals(orders []entity.OrderListing) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalAmount)
	}
	return total.Round(2)
}
