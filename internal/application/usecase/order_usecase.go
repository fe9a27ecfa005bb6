package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/triple000-it/schiedam/internal/application/dto"
	"github.com/triple000-it/schiedam/internal/cart"
	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

// OrderUseCase pedidos: listados por cliente y por negocio, detalle y checkout.
type OrderUseCase struct {
	orders     repository.OrderRepository
	businesses repository.BusinessRepository
	profiles   repository.ProfileRepository
	tx         repository.TxRunner
	log        zerolog.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(store repository.Store, tx repository.TxRunner, log zerolog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: store, businesses: store, profiles: store, tx: tx, log: log}
}

// ListMine pedidos del actor como cliente.
func (uc *OrderUseCase) ListMine(ctx context.Context, actor Actor, in dto.ListOrdersRequest) (*dto.OrderListResponse, error) {
	return uc.list(ctx, repository.OrderFilter{CustomerID: &actor.UserID, Status: &in.Status})
}

// ListForBusiness pedidos recibidos por un negocio; solo su propietario o un admin.
func (uc *OrderUseCase) ListForBusiness(ctx context.Context, actor Actor, businessID string, in dto.ListOrdersRequest) (*dto.OrderListResponse, error) {
	if _, err := managedBusiness(ctx, uc.businesses, actor, "order.List", businessID); err != nil {
		return nil, err
	}
	return uc.list(ctx, repository.OrderFilter{BusinessID: &businessID, Status: &in.Status})
}

func (uc *OrderUseCase) list(ctx context.Context, filter repository.OrderFilter) (*dto.OrderListResponse, error) {
	list, err := uc.orders.ListOrders(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for i := range list {
		o := toOrderResponse(&list[i].Order)
		o.BusinessName, o.CustomerName = list[i].BusinessName, list[i].CustomerName
		items = append(items, o)
	}
	return &dto.OrderListResponse{Items: items}, nil
}

// Get detalle de un pedido; visible para su cliente y para quien gestiona el negocio.
func (uc *OrderUseCase) Get(ctx context.Context, actor Actor, id string) (*dto.OrderDetailResponse, error) {
	const op = "order.Get"
	o, err := uc.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.CustomerID != actor.UserID {
		if _, err := managedBusiness(ctx, uc.businesses, actor, op, o.BusinessID); err != nil {
			return nil, err
		}
	}
	out := toOrderDetailResponse(&o.Order, o.Items, o.Payment)
	return &out, nil
}

// checkoutGroup líneas del carrito de un mismo negocio.
type checkoutGroup struct {
	businessID string
	lines      []cart.LineItem
}

func groupByBusiness(lines []cart.LineItem) []checkoutGroup {
	var groups []checkoutGroup
	index := map[string]int{}
	for _, l := range lines {
		i, ok := index[l.BusinessID]
		if !ok {
			i = len(groups)
			index[l.BusinessID] = i
			groups = append(groups, checkoutGroup{businessID: l.BusinessID})
		}
		groups[i].lines = append(groups[i].lines, l)
	}
	return groups
}

// Checkout convierte el carrito en un pedido por negocio dentro de una transacción:
// precio unitario congelado desde el producto, descuento de stock, pedido pending y
// pago simulado paid. Si todo confirma, vacía el carrito.
func (uc *OrderUseCase) Checkout(ctx context.Context, actor Actor, c *cart.Store, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	const op = "order.Checkout"
	lines := c.Items()
	if len(lines) == 0 {
		return nil, domain.Validation(op, "el carrito está vacío")
	}
	method := in.PaymentMethod
	switch method {
	case "":
		method = dto.PaymentMethodIDEAL
	case dto.PaymentMethodIDEAL, dto.PaymentMethodCard, dto.PaymentMethodPayPal:
	default:
		return nil, domain.Validation(op, "payment_method debe ser ideal, card o paypal")
	}
	if _, err := uc.profiles.GetProfile(ctx, actor.UserID); err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, domain.Forbidden(op, "el usuario no tiene perfil")
		}
		return nil, err
	}

	resp := &dto.CheckoutResponse{TotalAmount: decimal.Zero}
	err := uc.tx.Run(ctx, func(tx repository.Store) error {
		resp.Orders = resp.Orders[:0]
		resp.TotalAmount = decimal.Zero
		for _, g := range groupByBusiness(lines) {
			detail, err := placeOrder(ctx, tx, op, actor.UserID, method, g)
			if err != nil {
				return err
			}
			resp.Orders = append(resp.Orders, *detail)
			resp.TotalAmount = resp.TotalAmount.Add(detail.TotalAmount)
		}
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("customer_id", actor.UserID).Msg("checkout rechazado")
		return nil, err
	}
	c.ClearCart(ctx)
	uc.log.Info().
		Str("customer_id", actor.UserID).
		Int("orders", len(resp.Orders)).
		Str("total", resp.TotalAmount.StringFixed(2)).
		Msg("checkout completado")
	return resp, nil
}

func placeOrder(ctx context.Context, tx repository.Store, op, customerID, method string, g checkoutGroup) (*dto.OrderDetailResponse, error) {
	total := decimal.Zero
	items := make([]repository.NewOrderItem, 0, len(g.lines))
	for _, l := range g.lines {
		p, err := tx.GetProduct(ctx, l.ProductID)
		if err != nil {
			return nil, err
		}
		if !p.Active || p.BusinessID != g.businessID {
			return nil, domain.NotFound(op, "producto no disponible: "+l.Name)
		}
		// Descuento condicional; nunca deja stock negativo.
		if _, err := tx.DecrementStock(ctx, p.ID, l.Quantity); err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				return nil, &domain.Error{Kind: domain.KindConflict, Op: op, Msg: "stock insuficiente: " + p.Name, Err: domain.ErrInsufficientStock}
			}
			return nil, err
		}
		items = append(items, repository.NewOrderItem{ProductID: p.ID, Quantity: l.Quantity, Price: p.Price})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	order, err := tx.CreateOrder(ctx, repository.NewOrder{
		BusinessID:  g.businessID,
		CustomerID:  customerID,
		TotalAmount: total,
		Status:      entity.OrderStatusPending,
	})
	if err != nil {
		return nil, err
	}
	created, err := tx.AddOrderItems(ctx, order.ID, items)
	if err != nil {
		return nil, err
	}
	payment, err := tx.CreatePayment(ctx, repository.NewPayment{
		OrderID:       order.ID,
		Amount:        total,
		Currency:      entity.DefaultCurrency,
		Status:        entity.PaymentStatusPaid,
		PaymentMethod: &method,
	})
	if err != nil {
		return nil, err
	}
	out := toOrderDetailResponse(order, created, payment)
	return &out, nil
}
