package analytics_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triple000-it/schiedam/internal/application/analytics"
	"github.com/triple000-it/schiedam/internal/application/dto"
	"github.com/triple000-it/schiedam/internal/application/usecase"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
	"github.com/triple000-it/schiedam/internal/infrastructure/memory"
)

var ctx = context.Background()

const leeuwHaring = "40000000-0000-0000-0000-000000000001"

func seededWithOrder(t *testing.T) (*memory.Store, usecase.Actor) {
	t.Helper()
	s := memory.New()
	s.SeedDemo()

	v := usecase.Actor{UserID: uuid.NewString(), Role: entity.RoleVisitor}
	_, err := s.UpsertProfile(ctx, entity.Profile{ID: v.UserID, Email: "klant@example.nl"})
	require.NoError(t, err)
	_, err = s.AddFavorite(ctx, v.UserID, memory.DemoBusinessLeeuw)
	require.NoError(t, err)

	o, err := s.CreateOrder(ctx, repository.NewOrder{
		BusinessID: memory.DemoBusinessLeeuw, CustomerID: v.UserID, TotalAmount: decimal.RequireFromString("17.00"),
	})
	require.NoError(t, err)
	_, err = s.AddOrderItems(ctx, o.ID, []repository.NewOrderItem{
		{ProductID: leeuwHaring, Quantity: 2, Price: decimal.RequireFromString("8.50")},
	})
	require.NoError(t, err)
	return s, v
}

func TestGetSummary_Admin(t *testing.T) {
	s, _ := seededWithOrder(t)
	admin := usecase.Actor{UserID: uuid.NewString(), Role: entity.RoleAdmin}

	out, err := analytics.NewDashboardUseCase(s).GetSummary(ctx, admin)
	require.NoError(t, err)

	assert.Equal(t, "admin", out.Role)
	assert.Equal(t, 5, out.TotalBusinesses)
	assert.Equal(t, 10, out.TotalCategories)
	assert.Equal(t, 1, out.TotalOrders)
}

func TestGetSummary_PropietarioVeLimiteDelPlan(t *testing.T) {
	s, _ := seededWithOrder(t)
	owner := usecase.Actor{UserID: memory.DemoOwnerID, Role: entity.RoleOwner}

	out, err := analytics.NewDashboardUseCase(s).GetSummary(ctx, owner)
	require.NoError(t, err)

	assert.Equal(t, "eigenaar", out.Role)
	require.Len(t, out.Businesses, 4, "Sportcentrum De Haven no está reclamado")
	assert.Equal(t, 1, out.TotalOrders)

	var leeuw *dto.OwnerBusinessSummaryDTO
	for i := range out.Businesses {
		if out.Businesses[i].BusinessID == memory.DemoBusinessLeeuw {
			leeuw = &out.Businesses[i]
		}
	}
	require.NotNil(t, leeuw)
	assert.Equal(t, "business", leeuw.Plan)
	assert.Equal(t, 2, leeuw.TotalProducts)
	assert.Equal(t, 50, leeuw.MaxProducts)
	assert.Equal(t, 48, leeuw.RemainingProducts)
	assert.Equal(t, 1, leeuw.TotalOrders)
	assert.True(t, leeuw.Revenue.Equal(decimal.NewFromInt(17)))
}

func TestGetSummary_LimiteDeLaSuscripcionPrevaleceSobreElPlan(t *testing.T) {
	s, _ := seededWithOrder(t)
	free := entity.PlanFree
	_, err := s.UpdateBusiness(ctx, memory.DemoBusinessLeeuw, repository.BusinessPatch{SubscriptionPlan: &free})
	require.NoError(t, err)
	owner := usecase.Actor{UserID: memory.DemoOwnerID, Role: entity.RoleOwner}

	out, err := analytics.NewDashboardUseCase(s).GetSummary(ctx, owner)
	require.NoError(t, err)

	var leeuw *dto.OwnerBusinessSummaryDTO
	for i := range out.Businesses {
		if out.Businesses[i].BusinessID == memory.DemoBusinessLeeuw {
			leeuw = &out.Businesses[i]
		}
	}
	require.NotNil(t, leeuw)
	assert.Equal(t, "free", leeuw.Plan)
	assert.Equal(t, 50, leeuw.MaxProducts, "la suscripción vigente fija 50 aunque el plan free permita 10")
	assert.Equal(t, 48, leeuw.RemainingProducts)
}

func TestGetSummary_Visitante(t *testing.T) {
	s, v := seededWithOrder(t)

	out, err := analytics.NewDashboardUseCase(s).GetSummary(ctx, v)
	require.NoError(t, err)

	assert.Equal(t, "bezoeker", out.Role)
	assert.Equal(t, 1, out.FavoriteBusinesses)
	assert.Equal(t, 1, out.TotalOrders)
	assert.True(t, out.TotalSpent.Equal(decimal.NewFromInt(17)))
	assert.Empty(t, out.Businesses)
}
