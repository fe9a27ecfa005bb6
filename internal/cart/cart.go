// Package cart mantiene el carrito de una sesión: líneas con cantidad acotada por
// el stock, agregados derivados y persistencia completa tras cada mutación.
package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultKey clave del slot cuando no se configura otra.
const DefaultKey = "schiedam-cart"

// Slot almacenamiento clave-valor duradero donde vive el carrito serializado.
type Slot interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// LineItem línea del carrito. Stock es la instantánea del techo de cantidad.
type LineItem struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"productId"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Image        *string         `json:"image,omitempty"`
	BusinessID   string          `json:"businessId"`
	BusinessName string          `json:"businessName"`
	Stock        int             `json:"stock"`
}

// Item datos para AddToCart: una línea sin ID.
type Item struct {
	ProductID    string
	Name         string
	Price        decimal.Decimal
	Quantity     int
	Image        *string
	BusinessID   string
	BusinessName string
	Stock        int
}

// Store carrito de una sesión. Las mutaciones no fallan: las entradas inválidas se
// acotan o se ignoran y los fallos de persistencia solo se registran.
type Store struct {
	mu    sync.Mutex
	slot  Slot
	key   string
	log   zerolog.Logger
	items []LineItem
}

// Open crea el carrito y lo rehidrata una vez desde el slot. Un estado ausente
// o corrupto produce un carrito vacío.
func Open(ctx context.Context, slot Slot, key string, log zerolog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	s := &Store{slot: slot, key: key, log: log.With().Str("cart_key", key).Logger()}
	s.items = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) []LineItem {
	raw, ok, err := s.slot.Get(ctx, s.key)
	if err != nil {
		s.log.Warn().Err(err).Msg("no se pudo leer el carrito; se inicia vacío")
		return nil
	}
	if !ok || raw == "" {
		return nil
	}
	items, err := decode(raw)
	if err != nil {
		s.log.Warn().Err(err).Msg("carrito persistido corrupto; se inicia vacío")
		return nil
	}
	return items
}

func decode(raw string) ([]LineItem, error) {
	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	out := items[:0]
	for _, it := range items {
		// Mismo techo que AddToCart y UpdateQuantity: min(cantidad, stock).
		it.Quantity = min(it.Quantity, it.Stock)
		if it.ProductID == "" || it.Quantity <= 0 {
			continue
		}
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		out = append(out, it)
	}
	return out, nil
}

// persist escribe la colección completa. Requiere mu.
func (s *Store) persist(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		s.log.Error().Err(err).Msg("no se pudo serializar el carrito")
		return
	}
	if err := s.slot.Set(ctx, s.key, string(raw)); err != nil {
		s.log.Error().Err(err).Msg("no se pudo persistir el carrito")
	}
}

// AddToCart fusiona por producto: min(existente + pedido, stock), con el stock de
// esta llamada. Un producto nuevo recibe un ID de línea propio.
func (s *Store) AddToCart(ctx context.Context, item Item) {
	if item.Quantity <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID != item.ProductID {
			continue
		}
		q := min(s.items[i].Quantity+item.Quantity, item.Stock)
		if q <= 0 {
			s.removeAt(i)
		} else {
			s.items[i].Quantity = q
			s.items[i].Stock = item.Stock
		}
		s.persist(ctx)
		return
	}

	q := min(item.Quantity, item.Stock)
	if q <= 0 {
		return
	}
	s.items = append(s.items, LineItem{
		ID:           uuid.NewString(),
		ProductID:    item.ProductID,
		Name:         item.Name,
		Price:        item.Price,
		Quantity:     q,
		Image:        item.Image,
		BusinessID:   item.BusinessID,
		BusinessName: item.BusinessName,
		Stock:        item.Stock,
	})
	s.persist(ctx)
}

// UpdateQuantity q <= 0 elimina la línea; si no, la deja en min(q, stock).
// Una línea desconocida no hace nada.
func (s *Store) UpdateQuantity(ctx context.Context, lineID string, q int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(lineID)
	if i < 0 {
		return
	}
	if q <= 0 {
		s.removeAt(i)
	} else {
		s.items[i].Quantity = min(q, s.items[i].Stock)
	}
	s.persist(ctx)
}

// RemoveFromCart elimina la línea si existe.
func (s *Store) RemoveFromCart(ctx context.Context, lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(lineID); i >= 0 {
		s.removeAt(i)
		s.persist(ctx)
	}
}

// ClearCart vacía el carrito.
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist(ctx)
}

// IsInCart informa si hay una línea del producto.
func (s *Store) IsInCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ProductID == productID {
			return true
		}
	}
	return false
}

// Items copia de las líneas en orden de alta.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]LineItem{}, s.items...)
}

// TotalItems suma de cantidades.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// TotalPrice suma de precio unitario por cantidad.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

func (s *Store) indexOf(lineID string) int {
	for i, it := range s.items {
		if it.ID == lineID {
			return i
		}
	}
	return -1
}

func (s *Store) removeAt(i int) {
	s.items = append(s.items[:i], s.items[i+1:]...)
}
