package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `o.id, o.business_id, o.customer_id, o.total_amount, o.status, o.created_at, o.updated_at`

// OrderRepo implementación de OrderRepository (usable con pool o tx).
// No integra pasarela de pago: los pagos se registran tal cual llegan.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

func orderTargets(o *entity.Order) []any {
	return []any{&o.ID, &o.BusinessID, &o.CustomerID, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt}
}

// CreateOrder inserta solo la cabecera; las líneas y el pago van aparte.
func (r *OrderRepo) CreateOrder(ctx context.Context, in repository.NewOrder) (*entity.Order, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var o entity.Order
	err := r.q.QueryRow(ctx, `
		INSERT INTO orders AS o (id, business_id, customer_id, total_amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+orderColumns,
		uuid.New().String(), in.BusinessID, in.CustomerID, in.TotalAmount, in.Status,
	).Scan(orderTargets(&o)...)
	if err != nil {
		return nil, storageErr("order.Create", err)
	}
	return &o, nil
}

// AddOrderItems inserta las líneas con el precio unitario congelado.
// Para atomicidad entre líneas debe llamarse dentro de TxRunner.
func (r *OrderRepo) AddOrderItems(ctx context.Context, orderID string, items []repository.NewOrderItem) ([]entity.OrderItem, error) {
	const op = "order.AddItems"
	out := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		var oi entity.OrderItem
		err := r.q.QueryRow(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, order_id, product_id, quantity, price, created_at`,
			uuid.New().String(), orderID, it.ProductID, it.Quantity, it.Price,
		).Scan(&oi.ID, &oi.OrderID, &oi.ProductID, &oi.Quantity, &oi.Price, &oi.CreatedAt)
		if err != nil {
			return nil, storageErr(op, err)
		}
		out = append(out, oi)
	}
	return out, nil
}

// CreatePayment registra el pago de un pedido (uno por pedido).
func (r *OrderRepo) CreatePayment(ctx context.Context, in repository.NewPayment) (*entity.Payment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var p entity.Payment
	err := r.q.QueryRow(ctx, `
		INSERT INTO payments (id, order_id, amount, currency, status, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, order_id, amount, currency, status, payment_method, created_at, updated_at`,
		uuid.New().String(), in.OrderID, in.Amount, in.Currency, in.Status, in.PaymentMethod,
	).Scan(&p.ID, &p.OrderID, &p.Amount, &p.Currency, &p.Status, &p.PaymentMethod, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, storageErr("payment.Create", err)
	}
	return &p, nil
}

// GetOrder obtiene un pedido con sus líneas y su pago.
func (r *OrderRepo) GetOrder(ctx context.Context, id string) (*entity.OrderDetail, error) {
	const op = "order.Get"
	if !validID(id) {
		return nil, domain.NotFound(op, "pedido no encontrado")
	}
	var d entity.OrderDetail
	err := r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id).Scan(orderTargets(&d.Order)...)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NotFound(op, "pedido no encontrado")
		}
		return nil, storageErr(op, err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, order_id, product_id, quantity, price, created_at
		FROM order_items WHERE order_id = $1 ORDER BY created_at`, id)
	if err != nil {
		return nil, storageErr(op, err)
	}
	d.Items, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.OrderItem, error) {
		var oi entity.OrderItem
		err := row.Scan(&oi.ID, &oi.OrderID, &oi.ProductID, &oi.Quantity, &oi.Price, &oi.CreatedAt)
		return oi, err
	})
	if err != nil {
		return nil, storageErr(op, err)
	}

	var p entity.Payment
	err = r.q.QueryRow(ctx, `
		SELECT id, order_id, amount, currency, status, payment_method, created_at, updated_at
		FROM payments WHERE order_id = $1`, id).
		Scan(&p.ID, &p.OrderID, &p.Amount, &p.Currency, &p.Status, &p.PaymentMethod, &p.CreatedAt, &p.UpdatedAt)
	switch {
	case err == nil:
		d.Payment = &p
	case !isNoRows(err):
		return nil, storageErr(op, err)
	}
	return &d, nil
}

// ListOrders filtra por negocio, cliente y/o estado (AND), más recientes primero,
// con el nombre del negocio y del cliente.
func (r *OrderRepo) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]entity.OrderListing, error) {
	const op = "order.List"
	f := filter.Normalize()
	var qb queryBuilder
	if f.BusinessID != nil {
		if !validID(*f.BusinessID) {
			return []entity.OrderListing{}, nil
		}
		qb.where("o.business_id = ?", *f.BusinessID)
	}
	if f.CustomerID != nil {
		if !validID(*f.CustomerID) {
			return []entity.OrderListing{}, nil
		}
		qb.where("o.customer_id = ?", *f.CustomerID)
	}
	if f.Status != nil {
		qb.where("o.status = ?", *f.Status)
	}
	query, args := qb.build(`
		SELECT `+orderColumns+`, b.name, p.full_name
		FROM orders o
		LEFT JOIN businesses b ON b.id = o.business_id
		LEFT JOIN profiles p ON p.id = o.customer_id`,
		"ORDER BY o.created_at DESC", nil, nil)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, storageErr(op, err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.OrderListing, error) {
		var ol entity.OrderListing
		err := row.Scan(append(orderTargets(&ol.Order), &ol.BusinessName, &ol.CustomerName)...)
		return ol, err
	})
	if err != nil {
		return nil, storageErr(op, err)
	}
	return list, nil
}
