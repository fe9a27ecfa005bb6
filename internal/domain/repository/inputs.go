package repository

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/entity"
)

// NewBusiness campos de alta de un negocio.
type NewBusiness struct {
	Name             string
	Description      *string
	CategoryID       *string
	Address          string
	PostalCode       string
	City             string
	Phone            *string
	Email            *string
	Website          *string
	Lat              *float64
	Lng              *float64
	OwnerID          *string
	ThemeColor       string
	SubscriptionPlan entity.Plan
}

// Validate comprueba los campos obligatorios y aplica valores por defecto.
func (n *NewBusiness) Validate() error {
	const op = "business.Create"
	n.Name = strings.TrimSpace(n.Name)
	n.Address = strings.TrimSpace(n.Address)
	n.PostalCode = strings.TrimSpace(n.PostalCode)
	switch {
	case n.Name == "":
		return domain.Validation(op, "name es requerido")
	case n.Address == "":
		return domain.Validation(op, "address es requerido")
	case n.PostalCode == "":
		return domain.Validation(op, "postal_code es requerido")
	}
	if strings.TrimSpace(n.City) == "" {
		n.City = entity.DefaultCity
	}
	if n.ThemeColor == "" {
		n.ThemeColor = entity.DefaultThemeColor
	}
	if n.SubscriptionPlan == "" {
		n.SubscriptionPlan = entity.PlanFree
	}
	if !n.SubscriptionPlan.Valid() {
		return domain.Validation(op, "subscription_plan inválido")
	}
	n.OwnerID = nonEmpty(n.OwnerID)
	n.CategoryID = nonEmpty(n.CategoryID)
	return nil
}

// BusinessPatch actualización parcial; solo se aplican los campos no nil.
type BusinessPatch struct {
	Name             *string
	Description      *string
	CategoryID       *string
	Address          *string
	PostalCode       *string
	City             *string
	Phone            *string
	Email            *string
	Website          *string
	Lat              *float64
	Lng              *float64
	ThemeColor       *string
	SubscriptionPlan *entity.Plan
}

// Validate rechaza parches que dejarían vacíos campos obligatorios.
func (p BusinessPatch) Validate() error {
	const op = "business.Update"
	required := []struct {
		field string
		v     *string
	}{{"name", p.Name}, {"address", p.Address}, {"postal_code", p.PostalCode}}
	for _, r := range required {
		if r.v != nil && strings.TrimSpace(*r.v) == "" {
			return domain.Validation(op, r.field+" no puede estar vacío")
		}
	}
	if p.SubscriptionPlan != nil && !p.SubscriptionPlan.Valid() {
		return domain.Validation(op, "subscription_plan inválido")
	}
	return nil
}

// Apply aplica el parche sobre b (backends sin SQL).
func (p BusinessPatch) Apply(b *entity.Business) {
	setStr(&b.Name, p.Name)
	setOpt(&b.Description, p.Description)
	setOpt(&b.CategoryID, p.CategoryID)
	setStr(&b.Address, p.Address)
	setStr(&b.PostalCode, p.PostalCode)
	setStr(&b.City, p.City)
	setOpt(&b.Phone, p.Phone)
	setOpt(&b.Email, p.Email)
	setOpt(&b.Website, p.Website)
	setOpt(&b.Lat, p.Lat)
	setOpt(&b.Lng, p.Lng)
	setStr(&b.ThemeColor, p.ThemeColor)
	if p.SubscriptionPlan != nil {
		b.SubscriptionPlan = *p.SubscriptionPlan
	}
}

// NewCategory campos de alta de una categoría.
type NewCategory struct {
	Name        string
	Description *string
	Icon        *string
}

// Validate exige nombre.
func (n *NewCategory) Validate() error {
	n.Name = strings.TrimSpace(n.Name)
	if n.Name == "" {
		return domain.Validation("category.Create", "name es requerido")
	}
	return nil
}

// NewProduct campos de alta de un producto. Active nil = activo.
type NewProduct struct {
	BusinessID  string
	Name        string
	Description *string
	Price       decimal.Decimal
	Stock       int
	ImageURL    *string
	Active      *bool
}

// Validate comprueba negocio, nombre, precio y stock no negativos.
func (n *NewProduct) Validate() error {
	const op = "product.Create"
	n.Name = strings.TrimSpace(n.Name)
	switch {
	case n.BusinessID == "":
		return domain.Validation(op, "business_id es requerido")
	case n.Name == "":
		return domain.Validation(op, "name es requerido")
	case n.Price.IsNegative():
		return domain.Validation(op, "price no puede ser negativo")
	case n.Stock < 0:
		return domain.Validation(op, "stock no puede ser negativo")
	}
	return nil
}

// IsActive resuelve el valor por defecto de Active.
func (n NewProduct) IsActive() bool {
	return n.Active == nil || *n.Active
}

// ProductPatch actualización parcial de un producto.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int
	ImageURL    *string
	Active      *bool
}

// Validate mantiene los invariantes de precio y stock.
func (p ProductPatch) Validate() error {
	const op = "product.Update"
	switch {
	case p.Name != nil && strings.TrimSpace(*p.Name) == "":
		return domain.Validation(op, "name no puede estar vacío")
	case p.Price != nil && p.Price.IsNegative():
		return domain.Validation(op, "price no puede ser negativo")
	case p.Stock != nil && *p.Stock < 0:
		return domain.Validation(op, "stock no puede ser negativo")
	}
	return nil
}

// Apply aplica el parche sobre pr.
func (p ProductPatch) Apply(pr *entity.Product) {
	setStr(&pr.Name, p.Name)
	setOpt(&pr.Description, p.Description)
	if p.Price != nil {
		pr.Price = *p.Price
	}
	if p.Stock != nil {
		pr.Stock = *p.Stock
	}
	setOpt(&pr.ImageURL, p.ImageURL)
	if p.Active != nil {
		pr.Active = *p.Active
	}
}

// NewOrder cabecera de pedido. Status vacío = pending.
type NewOrder struct {
	BusinessID  string
	CustomerID  string
	TotalAmount decimal.Decimal
	Status      string
}

// Validate comprueba referencias e importe.
func (n *NewOrder) Validate() error {
	const op = "order.Create"
	switch {
	case n.BusinessID == "":
		return domain.Validation(op, "business_id es requerido")
	case n.CustomerID == "":
		return domain.Validation(op, "customer_id es requerido")
	case n.TotalAmount.IsNegative():
		return domain.Validation(op, "total_amount no puede ser negativo")
	}
	if n.Status == "" {
		n.Status = entity.OrderStatusPending
	}
	return nil
}

// NewOrderItem línea de pedido con el precio congelado.
type NewOrderItem struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
}

// Validate comprueba cantidad positiva y precio no negativo.
func (n NewOrderItem) Validate() error {
	const op = "order.AddItems"
	switch {
	case n.ProductID == "":
		return domain.Validation(op, "product_id es requerido")
	case n.Quantity <= 0:
		return domain.Validation(op, "quantity debe ser positiva")
	case n.Price.IsNegative():
		return domain.Validation(op, "price no puede ser negativo")
	}
	return nil
}

// NewPayment registro de pago simulado.
type NewPayment struct {
	OrderID       string
	Amount        decimal.Decimal
	Currency      string
	Status        string
	PaymentMethod *string
}

// Validate aplica moneda y estado por defecto.
func (n *NewPayment) Validate() error {
	if n.OrderID == "" {
		return domain.Validation("payment.Create", "order_id es requerido")
	}
	if n.Currency == "" {
		n.Currency = entity.DefaultCurrency
	}
	if n.Status == "" {
		n.Status = entity.PaymentStatusPaid
	}
	return nil
}

// NewReview alta de reseña. El rango de Rating es responsabilidad del llamador;
// el almacenamiento lo rechaza con un error de almacenamiento.
type NewReview struct {
	BusinessID string
	UserID     string
	Rating     int
	Comment    *string
}

// Validate exige las referencias.
func (n NewReview) Validate() error {
	const op = "review.Create"
	switch {
	case n.BusinessID == "":
		return domain.Validation(op, "business_id es requerido")
	case n.UserID == "":
		return domain.Validation(op, "user_id es requerido")
	}
	return nil
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setOpt[T any](dst **T, v *T) {
	if v != nil {
		c := *v
		*dst = &c
	}
}
