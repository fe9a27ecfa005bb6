package cart_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triple000-it/schiedam/internal/cart"
)

var ctx = context.Background()

func haring(q, stock int) cart.Item {
	return cart.Item{
		ProductID: "p-haring", Name: "Hollandse Nieuwe Haring", Price: decimal.RequireFromString("8.50"),
		Quantity: q, BusinessID: "b-leeuw", BusinessName: "De Gouden Leeuw", Stock: stock,
	}
}

func stamppot(q, stock int) cart.Item {
	return cart.Item{
		ProductID: "p-stamppot", Name: "Stamppot Boerenkool", Price: decimal.RequireFromString("12.95"),
		Quantity: q, BusinessID: "b-leeuw", BusinessName: "De Gouden Leeuw", Stock: stock,
	}
}

func openEmpty(t *testing.T) (*cart.Store, *cart.MemorySlot) {
	t.Helper()
	slot := cart.NewMemorySlot()
	return cart.Open(ctx, slot, "", zerolog.Nop()), slot
}

func expectedTotal(items []cart.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// assertSameLines compara líneas; los precios por valor, no por representación.
func assertSameLines(t *testing.T, want, got []cart.LineItem) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Price.Equal(got[i].Price), "precio línea %d", i)
		w, g := want[i], got[i]
		w.Price, g.Price = decimal.Zero, decimal.Zero
		assert.Equal(t, w, g)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AddToCart
// ──────────────────────────────────────────────────────────────────────────────

func TestAddToCart_MismoProductoFusionaEnUnaLinea(t *testing.T) {
	s, _ := openEmpty(t)
	s.AddToCart(ctx, haring(2, 10))
	s.AddToCart(ctx, haring(2, 10))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
	assert.NotEqual(t, items[0].ProductID, items[0].ID, "el ID de línea es propio")
}

func TestAddToCart_SeAcotaAlStock(t *testing.T) {
	s, _ := openEmpty(t)
	s.AddToCart(ctx, haring(3, 5))
	s.AddToCart(ctx, haring(4, 5))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddToCart_StockDeLaLlamadaRefrescaElTecho(t *testing.T) {
	s, _ := openEmpty(t)
	s.AddToCart(ctx, haring(2, 10))
	s.AddToCart(ctx, haring(1, 2))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, items[0].Stock)

	s.UpdateQuantity(ctx, items[0].ID, 9)
	assert.Equal(t, 2, s.Items()[0].Quantity)
}

func TestAddToCart_LineaNuevaAcotadaYSinStock(t *testing.T) {
	s, _ := openEmpty(t)
	s.AddToCart(ctx, haring(8, 3))
	assert.Equal(t, 3, s.TotalItems())

	s.AddToCart(ctx, stamppot(1, 0))
	s.AddToCart(ctx, stamppot(0, 10))
	s.AddToCart(ctx, stamppot(-2, 10))
	assert.False(t, s.IsInCart("p-stamppot"))
	assert.True(t, s.IsInCart("p-haring"))
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateQuantity / RemoveFromCart / ClearCart
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateQuantity_CeroEquivaleARemove(t *testing.T) {
	a, _ := openEmpty(t)
	b, _ := openEmpty(t)
	for _, s := range []*cart.Store{a, b} {
		s.AddToCart(ctx, haring(2, 10))
		s.AddToCart(ctx, stamppot(1, 10))
	}
	before := a.TotalItems()

	a.UpdateQuantity(ctx, a.Items()[0].ID, 0)
	b.RemoveFromCart(ctx, b.Items()[0].ID)

	assert.False(t, a.IsInCart("p-haring"))
	assert.Equal(t, before-2, a.TotalItems())
	assert.Equal(t, b.TotalItems(), a.TotalItems())
	assert.True(t, a.TotalPrice().Equal(b.TotalPrice()))
}

func TestUpdateQuantity_AcotaEIgnoraLineaDesconocida(t *testing.T) {
	s, _ := openEmpty(t)
	s.AddToCart(ctx, haring(1, 4))
	id := s.Items()[0].ID

	s.UpdateQuantity(ctx, id, 100)
	assert.Equal(t, 4, s.TotalItems())
	s.UpdateQuantity(ctx, id, 2)
	assert.Equal(t, 2, s.TotalItems())

	s.UpdateQuantity(ctx, "no-existe", 3)
	s.RemoveFromCart(ctx, "no-existe")
	assert.Equal(t, 2, s.TotalItems())
}

func TestClearCart(t *testing.T) {
	s, _ := openEmpty(t)
	s.AddToCart(ctx, haring(1, 4))
	s.ClearCart(ctx)

	assert.Empty(t, s.Items())
	assert.Zero(t, s.TotalItems())
	assert.True(t, s.TotalPrice().IsZero())
}

func TestTotalPrice_SiempreIgualALaSuma(t *testing.T) {
	s, _ := openEmpty(t)
	steps := []func(){
		func() { s.AddToCart(ctx, haring(2, 10)) },
		func() { s.AddToCart(ctx, stamppot(3, 10)) },
		func() { s.UpdateQuantity(ctx, s.Items()[0].ID, 5) },
		func() { s.AddToCart(ctx, stamppot(20, 4)) },
		func() { s.RemoveFromCart(ctx, s.Items()[1].ID) },
		func() { s.ClearCart(ctx) },
	}
	for _, step := range steps {
		step()
		assert.True(t, expectedTotal(s.Items()).Equal(s.TotalPrice()), s.TotalPrice().String())
	}
}

func TestTotales(t *testing.T) {
	s, _ := openEmpty(t)
	s.AddToCart(ctx, haring(2, 10))
	s.AddToCart(ctx, stamppot(1, 10))

	assert.Equal(t, 3, s.TotalItems())
	assert.Equal(t, "29.95", s.TotalPrice().StringFixed(2))
}

// ──────────────────────────────────────────────────────────────────────────────
// Persistencia
// ──────────────────────────────────────────────────────────────────────────────

func TestPersistencia_IdaYVuelta(t *testing.T) {
	s, slot := openEmpty(t)
	s.AddToCart(ctx, haring(2, 10))
	s.AddToCart(ctx, stamppot(3, 10))
	items, total, price := s.Items(), s.TotalItems(), s.TotalPrice()

	saved, ok, err := slot.Get(ctx, cart.DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)

	s.ClearCart(ctx)
	require.NoError(t, slot.Set(ctx, cart.DefaultKey, saved))

	restored := cart.Open(ctx, slot, cart.DefaultKey, zerolog.Nop())
	assertSameLines(t, items, restored.Items())
	assert.Equal(t, total, restored.TotalItems())
	assert.True(t, price.Equal(restored.TotalPrice()))
}

func TestPersistencia_CadaMutacionSeEscribe(t *testing.T) {
	s, slot := openEmpty(t)
	s.AddToCart(ctx, haring(1, 10))

	reopened := cart.Open(ctx, slot, "", zerolog.Nop())
	assert.True(t, reopened.IsInCart("p-haring"))

	s.ClearCart(ctx)
	raw, ok, err := slot.Get(ctx, cart.DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestOpen_EstadoCorruptoEsCarritoVacio(t *testing.T) {
	slot := cart.NewMemorySlot()
	require.NoError(t, slot.Set(ctx, "k", "{no es json"))

	s := cart.Open(ctx, slot, "k", zerolog.Nop())
	assert.Empty(t, s.Items())

	s.AddToCart(ctx, haring(1, 1))
	assert.Equal(t, 1, s.TotalItems())
}

func TestOpen_DescartaLineasInvalidas(t *testing.T) {
	slot := cart.NewMemorySlot()
	require.NoError(t, slot.Set(ctx, "k", `[{"productId":"a","price":"1.5","quantity":2,"stock":5},{"productId":"","quantity":1},{"id":"x","productId":"b","price":2,"quantity":0}]`))

	s := cart.Open(ctx, slot, "k", zerolog.Nop())
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ProductID)
	assert.NotEmpty(t, items[0].ID)
	assert.Equal(t, "3", s.TotalPrice().String())
}

func TestOpen_AcotaCantidadAlStockPersistido(t *testing.T) {
	slot := cart.NewMemorySlot()
	require.NoError(t, slot.Set(ctx, "k", `[{"productId":"a","price":"1","quantity":9,"stock":4},{"productId":"b","price":"1","quantity":2,"stock":0}]`))

	s := cart.Open(ctx, slot, "k", zerolog.Nop())
	items := s.Items()
	require.Len(t, items, 1, "sin stock la línea se descarta")
	assert.Equal(t, "a", items[0].ProductID)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, 4, s.TotalItems())

	s.UpdateQuantity(ctx, items[0].ID, 3)
	assert.Equal(t, 3, s.TotalItems())
}

type failingSlot struct{}

func (failingSlot) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("slot caído")
}
func (failingSlot) Set(context.Context, string, string) error { return errors.New("slot caído") }

func TestSlotCaido_NoRompeElCarrito(t *testing.T) {
	s := cart.Open(ctx, failingSlot{}, "k", zerolog.Nop())
	s.AddToCart(ctx, haring(2, 5))
	assert.Equal(t, 2, s.TotalItems())
}

func TestSessions_ClavePorSesion(t *testing.T) {
	slot := cart.NewMemorySlot()
	m := cart.NewSessions(slot, "", zerolog.Nop())
	assert.Equal(t, "schiedam-cart:abc", m.Key("abc"))

	m.Open(ctx, "abc").AddToCart(ctx, haring(1, 5))
	assert.True(t, m.Open(ctx, "abc").IsInCart("p-haring"))
	assert.False(t, m.Open(ctx, "otra").IsInCart("p-haring"))
}

func TestSessions_MismaSesionCompartenCarrito(t *testing.T) {
	slot := cart.NewMemorySlot()
	m := cart.NewSessions(slot, "", zerolog.Nop())

	first := m.Open(ctx, "abc")
	second := m.Open(ctx, "abc")
	first.AddToCart(ctx, haring(1, 5))
	second.AddToCart(ctx, stamppot(2, 5))

	assert.Len(t, m.Open(ctx, "abc").Items(), 2)
	persisted := cart.Open(ctx, slot, m.Key("abc"), zerolog.Nop())
	assert.Len(t, persisted.Items(), 2, "el slot guarda ambas líneas")
}

func TestSessions_PeticionesConcurrentesNoPierdenLineas(t *testing.T) {
	slot := cart.NewMemorySlot()
	m := cart.NewSessions(slot, "", zerolog.Nop())

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Open(ctx, "abc").AddToCart(ctx, haring(1, 100))
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, m.Open(ctx, "abc").TotalItems())
	assert.Equal(t, 20, cart.Open(ctx, slot, m.Key("abc"), zerolog.Nop()).TotalItems())
}

func TestSessions_DesalojadaSeRehidrataDelSlot(t *testing.T) {
	slot := cart.NewMemorySlot()
	m := cart.NewSessionsWithLimits(slot, "", 1, time.Hour)

	m.Open(ctx, "a").AddToCart(ctx, haring(2, 5))
	m.Open(ctx, "b").AddToCart(ctx, stamppot(1, 5))

	a := m.Open(ctx, "a")
	assert.True(t, a.IsInCart("p-haring"))
	assert.Equal(t, 2, a.TotalItems())
}
