package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

// CreateOrder inserta la cabecera del pedido.
func (s *Store) CreateOrder(_ context.Context, in repository.NewOrder) (*entity.Order, error) {
	const op = "order.Create"
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.t.businesses[in.BusinessID]; !ok {
		return nil, fkErr(op, "businesses", in.BusinessID)
	}
	if _, ok := s.t.profiles[in.CustomerID]; !ok {
		return nil, fkErr(op, "profiles", in.CustomerID)
	}
	now := s.now()
	o := entity.Order{
		ID: uuid.New().String(), BusinessID: in.BusinessID, CustomerID: in.CustomerID,
		TotalAmount: in.TotalAmount, Status: in.Status, CreatedAt: now, UpdatedAt: now,
	}
	rememberKey(s, ordersOf, o.ID)
	s.t.orders[o.ID] = o
	return &o, nil
}

// AddOrderItems inserta las líneas en orden; se detiene en la primera inválida.
func (s *Store) AddOrderItems(_ context.Context, orderID string, items []repository.NewOrderItem) ([]entity.OrderItem, error) {
	const op = "order.AddItems"
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		if _, ok := s.t.orders[orderID]; !ok {
			return nil, fkErr(op, "orders", orderID)
		}
		if _, ok := s.t.products[it.ProductID]; !ok {
			return nil, fkErr(op, "products", it.ProductID)
		}
		oi := entity.OrderItem{
			ID: uuid.New().String(), OrderID: orderID, ProductID: it.ProductID,
			Quantity: it.Quantity, Price: it.Price, CreatedAt: s.now(),
		}
		s.remember(func(t *tables) {
			t.items = withoutFunc(t.items, func(x entity.OrderItem) bool { return x.ID == oi.ID })
		})
		s.t.items = append(s.t.items, oi)
		out = append(out, oi)
	}
	return out, nil
}

// CreatePayment registra el pago; un segundo pago del mismo pedido es Conflict.
func (s *Store) CreatePayment(_ context.Context, in repository.NewPayment) (*entity.Payment, error) {
	const op = "payment.Create"
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.t.orders[in.OrderID]; !ok {
		return nil, fkErr(op, "orders", in.OrderID)
	}
	if _, dup := s.t.payments[in.OrderID]; dup {
		return nil, domain.Conflict(op, nil)
	}
	now := s.now()
	p := entity.Payment{
		ID: uuid.New().String(), OrderID: in.OrderID, Amount: in.Amount, Currency: in.Currency,
		Status: in.Status, PaymentMethod: in.PaymentMethod, CreatedAt: now, UpdatedAt: now,
	}
	rememberKey(s, paymentsOf, in.OrderID)
	s.t.payments[in.OrderID] = p
	return &p, nil
}

// GetOrder pedido con líneas y pago.
func (s *Store) GetOrder(_ context.Context, id string) (*entity.OrderDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.t.orders[id]
	if !ok {
		return nil, domain.NotFound("order.Get", "pedido no encontrado")
	}
	d := &entity.OrderDetail{Order: o, Items: []entity.OrderItem{}}
	for _, it := range s.t.items {
		if it.OrderID == id {
			d.Items = append(d.Items, it)
		}
	}
	if p, ok := s.t.payments[id]; ok {
		d.Payment = &p
	}
	return d, nil
}

// ListOrders filtra por negocio, cliente y estado; más recientes primero.
func (s *Store) ListOrders(_ context.Context, filter repository.OrderFilter) ([]entity.OrderListing, error) {
	f := filter.Normalize()
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := []entity.OrderListing{}
	for _, o := range s.t.orders {
		switch {
		case f.BusinessID != nil && o.BusinessID != *f.BusinessID,
			f.CustomerID != nil && o.CustomerID != *f.CustomerID,
			f.Status != nil && o.Status != *f.Status:
			continue
		}
		ol := entity.OrderListing{Order: o}
		if b, ok := s.t.businesses[o.BusinessID]; ok {
			name := b.Name
			ol.BusinessName = &name
		}
		if p, ok := s.t.profiles[o.CustomerID]; ok {
			ol.CustomerName = p.FullName
		}
		list = append(list, ol)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}
