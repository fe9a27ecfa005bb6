package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/entity"
	"github.com/triple000-it/schiedam/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, business_id, name, description, price, stock, image_url, active, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// No verifica la propiedad del negocio: lo hace la capa de aplicación.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func productTargets(p *entity.Product) []any {
	return []any{&p.ID, &p.BusinessID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL,
		&p.Active, &p.CreatedAt, &p.UpdatedAt}
}

// ListProducts lista los productos activos de un negocio, más recientes primero.
func (r *ProductRepo) ListProducts(ctx context.Context, businessID string) ([]entity.Product, error) {
	const op = "product.List"
	list := []entity.Product{}
	if !validID(businessID) {
		return list, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT `+productColumns+`
		FROM products WHERE business_id = $1 AND active = true
		ORDER BY created_at DESC`, businessID)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(productTargets(&p)...); err != nil {
			return nil, storageErr(op, err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}
	return list, nil
}

// GetProduct obtiene un producto por ID (activo o no).
func (r *ProductRepo) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	const op = "product.Get"
	if !validID(id) {
		return nil, domain.NotFound(op, "producto no encontrado")
	}
	var p entity.Product
	err := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id).Scan(productTargets(&p)...)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.NotFound(op, "producto no encontrado")
		}
		return nil, storageErr(op, err)
	}
	return &p, nil
}

// CountProducts cuenta todos los productos del negocio (activos e inactivos) para el límite del plan.
func (r *ProductRepo) CountProducts(ctx context.Context, businessID string) (int, error) {
	if !validID(businessID) {
		return 0, nil
	}
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE business_id = $1`, businessID).Scan(&n); err != nil {
		return 0, storageErr("product.Count", err)
	}
	return n, nil
}

// CreateProduct persiste un nuevo producto.
func (r *ProductRepo) CreateProduct(ctx context.Context, in repository.NewProduct) (*entity.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var p entity.Product
	err := r.q.QueryRow(ctx, `
		INSERT INTO products (id, business_id, name, description, price, stock, image_url, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+productColumns,
		uuid.New().String(), in.BusinessID, in.Name, in.Description, in.Price, in.Stock, in.ImageURL, in.IsActive(),
	).Scan(productTargets(&p)...)
	if err != nil {
		return nil, storageErr("product.Create", err)
	}
	return &p, nil
}

// UpdateProduct aplica un parche parcial y refresca updated_at.
func (r *ProductRepo) UpdateProduct(ctx context.Context, id string, patch repository.ProductPatch) (*entity.Product, error) {
	const op = "product.Update"
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if !validID(id) {
		return nil, domain.NotFound(op, "producto no encontrado")
	}
	sb := newSetBuilder(id)
	setIf(sb, "name", patch.Name)
	setIf(sb, "description", patch.Description)
	setIf(sb, "price", patch.Price)
	setIf(sb, "stock", patch.Stock)
	setIf(sb, "image_url", patch.ImageURL)
	setIf(sb, "active", patch.Active)
	query, args := sb.build("products", productColumns)

	var p entity.Product
	if err := r.q.QueryRow(ctx, query, args...).Scan(productTargets(&p)...); err != nil {
		if isNoRows(err) {
			return nil, domain.NotFound(op, "producto no encontrado")
		}
		return nil, storageErr(op, err)
	}
	return &p, nil
}

// DecrementStock descuenta qty unidades en una sola sentencia condicional, de modo
// que dos checkouts concurrentes no pueden vender más stock del que hay.
// Sin filas afectadas: NotFound si el producto no existe, si no Conflict(ErrInsufficientStock).
func (r *ProductRepo) DecrementStock(ctx context.Context, id string, qty int) (*entity.Product, error) {
	const op = "product.DecrementStock"
	if qty <= 0 {
		return nil, domain.Validation(op, "quantity debe ser positiva")
	}
	if !validID(id) {
		return nil, domain.NotFound(op, "producto no encontrado")
	}
	var p entity.Product
	err := r.q.QueryRow(ctx,
		`UPDATE products SET stock = stock - $2, updated_at = now() WHERE id = $1 AND stock >= $2 RETURNING `+productColumns,
		id, qty).Scan(productTargets(&p)...)
	if err == nil {
		return &p, nil
	}
	if !isNoRows(err) {
		return nil, storageErr(op, err)
	}
	var stock int
	if err := r.q.QueryRow(ctx, `SELECT stock FROM products WHERE id = $1`, id).Scan(&stock); err != nil {
		if isNoRows(err) {
			return nil, domain.NotFound(op, "producto no encontrado")
		}
		return nil, storageErr(op, err)
	}
	return nil, domain.Conflict(op, domain.ErrInsufficientStock)
}

// DeleteProduct elimina un producto por ID.
func (r *ProductRepo) DeleteProduct(ctx context.Context, id string) error {
	const op = "product.Delete"
	if !validID(id) {
		return domain.NotFound(op, "producto no encontrado")
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return storageErr(op, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound(op, "producto no encontrado")
	}
	return nil
}
