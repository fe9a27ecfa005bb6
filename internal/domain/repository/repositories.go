package repository

import (
	"context"

	"github.com/triple000-it/schiedam/internal/domain/entity"
)

// Contrato de acceso a datos (DIP). Cada operación devuelve el dato o un *domain.Error,
// nunca ambos; los errores del motor se envuelven como KindStorage en la frontera.

// BusinessRepository puerto de persistencia de negocios.
type BusinessRepository interface {
	ListBusinesses(ctx context.Context, filter BusinessFilter) ([]entity.BusinessListing, error)
	GetBusiness(ctx context.Context, id string) (*entity.BusinessDetail, error)
	CreateBusiness(ctx context.Context, in NewBusiness) (*entity.Business, error)
	UpdateBusiness(ctx context.Context, id string, patch BusinessPatch) (*entity.Business, error)
	ClaimBusiness(ctx context.Context, businessID, ownerID string) (*entity.Business, error)
}

// CategoryRepository puerto de persistencia de categorías.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
	CreateCategory(ctx context.Context, in NewCategory) (*entity.Category, error)
}

// ProductRepository puerto de persistencia de productos.
// No verifica propiedad: eso corresponde a la capa de aplicación.
type ProductRepository interface {
	ListProducts(ctx context.Context, businessID string) ([]entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	CountProducts(ctx context.Context, businessID string) (int, error)
	CreateProduct(ctx context.Context, in NewProduct) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (*entity.Product, error)
	// DecrementStock descuenta qty de forma atómica; stock insuficiente es
	// Conflict(ErrInsufficientStock) y no modifica nada.
	DecrementStock(ctx context.Context, id string, qty int) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// OrderRepository puerto de persistencia de pedidos, líneas y pagos.
type OrderRepository interface {
	CreateOrder(ctx context.Context, in NewOrder) (*entity.Order, error)
	AddOrderItems(ctx context.Context, orderID string, items []NewOrderItem) ([]entity.OrderItem, error)
	CreatePayment(ctx context.Context, in NewPayment) (*entity.Payment, error)
	GetOrder(ctx context.Context, id string) (*entity.OrderDetail, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]entity.OrderListing, error)
}

// ReviewRepository puerto de persistencia de reseñas.
type ReviewRepository interface {
	CreateReview(ctx context.Context, in NewReview) (*entity.Review, error)
}

// FavoriteRepository puerto de persistencia de favoritos.
type FavoriteRepository interface {
	AddFavorite(ctx context.Context, userID, businessID string) (*entity.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, businessID string) error
	ListFavorites(ctx context.Context, userID string) ([]entity.FavoriteWithBusiness, error)
}

// ProfileRepository puerto de perfiles (los crea el proveedor de sesión).
type ProfileRepository interface {
	GetProfile(ctx context.Context, id string) (*entity.Profile, error)
	UpsertProfile(ctx context.Context, p entity.Profile) (*entity.Profile, error)
}

// Store agrega todos los puertos; lo implementan el backend PostgreSQL y el backend en memoria.
type Store interface {
	BusinessRepository
	CategoryRepository
	ProductRepository
	OrderRepository
	ReviewRepository
	FavoriteRepository
	ProfileRepository
}

// TxRunner ejecuta fn dentro de una transacción con un Store atado a ella.
// Si fn devuelve error se hace Rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx Store) error) error
}
