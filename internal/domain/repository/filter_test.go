package repository_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

func TestBusinessFilter_Normalize_DescartaVacios(t *testing.T) {
	f, err := repository.BusinessFilter{
		CategoryID: repository.Ptr("  "),
		Search:     repository.Ptr(" cafe "),
		Limit:      repository.Ptr(0),
		Offset:     repository.Ptr(0),
	}.Normalize()
	require.NoError(t, err)

	assert.Nil(t, f.CategoryID)
	require.NotNil(t, f.Search)
	assert.Equal(t, "cafe", *f.Search)
	assert.Nil(t, f.Limit, "limit 0 se trata como ausente")
	assert.Nil(t, f.Offset)
}

func TestBusinessFilter_Normalize_RechazaNegativos(t *testing.T) {
	_, err := repository.BusinessFilter{Limit: repository.Ptr(-1)}.Normalize()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = repository.BusinessFilter{Offset: repository.Ptr(-5)}.Normalize()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewBusiness_Validate(t *testing.T) {
	cases := []struct {
		name string
		in   repository.NewBusiness
	}{
		{"sin nombre", repository.NewBusiness{Address: "Hoogstraat 1", PostalCode: "3111 HG"}},
		{"sin dirección", repository.NewBusiness{Name: "Café", PostalCode: "3111 HG"}},
		{"sin código postal", repository.NewBusiness{Name: "Café", Address: "Hoogstraat 1"}},
		{"plan inválido", repository.NewBusiness{Name: "Café", Address: "Hoogstraat 1", PostalCode: "3111 HG", SubscriptionPlan: "gold"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	ok := repository.NewBusiness{Name: " Café Central ", Address: "Lange Haven 45", PostalCode: "3111 CD"}
	require.NoError(t, ok.Validate())
	assert.Equal(t, "Café Central", ok.Name)
	assert.Equal(t, entity.DefaultCity, ok.City)
	assert.Equal(t, entity.DefaultThemeColor, ok.ThemeColor)
	assert.Equal(t, entity.PlanFree, ok.SubscriptionPlan)
}

func TestProductPatch_ApplyYValidate(t *testing.T) {
	p := entity.Product{Name: "Jenever", Price: decimal.NewFromInt(20), Stock: 3, Active: true}
	patch := repository.ProductPatch{
		Price:  repository.Ptr(decimal.RequireFromString("18.50")),
		Active: repository.Ptr(false),
	}
	require.NoError(t, patch.Validate())
	patch.Apply(&p)

	assert.Equal(t, "Jenever", p.Name)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("18.5")))
	assert.Equal(t, 3, p.Stock)
	assert.False(t, p.Active)

	bad := repository.ProductPatch{Stock: repository.Ptr(-1)}
	assert.ErrorIs(t, bad.Validate(), domain.ErrInvalidInput)
}

func TestRole_Satisfies(t *testing.T) {
	assert.True(t, entity.RoleAdmin.Satisfies(entity.RoleOwner), "admin cumple cualquier rol")
	assert.True(t, entity.RoleOwner.Satisfies(entity.RoleOwner, entity.RoleVisitor))
	assert.False(t, entity.RoleVisitor.Satisfies(entity.RoleOwner))
	assert.False(t, entity.Role("root").Valid())
}

func TestPlan_Limits(t *testing.T) {
	assert.Equal(t, 10, entity.PlanFree.Limits().MaxProducts)
	assert.Equal(t, 250, entity.PlanVIP.Limits().MaxProducts)
	assert.Nil(t, entity.PlanVIP.Limits().Price)
	assert.Equal(t, 10, entity.Plan("desconocido").Limits().MaxProducts)
}
