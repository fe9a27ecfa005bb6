package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/triple000-it/schiedam/internal/application/analytics"
	"github.com/triple000-it/schiedam/internal/application/usecase"
	"github.com/triple000-it/schiedam/internal/cart"
	"github.com/triple000-it/schiedam/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BusinessUC  *usecase.BusinessUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	ReviewUC    *usecase.ReviewUseCase
	FavoriteUC  *usecase.FavoriteUseCase
	ProfileUC   *usecase.ProfileUseCase
	OrderUC     *usecase.OrderUseCase
	CartUC      *usecase.CartUseCase
	DashboardUC *analytics.DashboardUseCase
	Carts       *cart.Sessions
	JWTSecret   string
}

// Router registra las rutas de la API. La autenticación se aplica por ruta
// para que lectura pública y escritura protegida compartan prefijo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	auth := AuthMiddleware(deps.JWTSecret)
	ownerOrAdmin := RequireRole(string(entity.RoleOwner))
	adminOnly := RequireRole(string(entity.RoleAdmin))

	// Categorías
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	api.Get("/categories", categoryHandler.List)
	api.Post("/categories", auth, adminOnly, categoryHandler.Create)

	// Negocios (lectura pública)
	businessHandler := NewBusinessHandler(deps.BusinessUC)
	productHandler := NewProductHandler(deps.ProductUC)
	socialHandler := NewSocialHandler(deps.ReviewUC, deps.FavoriteUC, deps.ProfileUC)
	orderHandler := NewOrderHandler(deps.OrderUC)

	businesses := api.Group("/businesses")
	businesses.Get("/", businessHandler.List)
	businesses.Get("/:id", businessHandler.GetByID)
	businesses.Get("/:id/products", productHandler.ListByBusiness)
	businesses.Post("/", auth, ownerOrAdmin, businessHandler.Create)
	businesses.Put("/:id", auth, businessHandler.Update)
	businesses.Post("/:id/claim", auth, businessHandler.Claim)
	businesses.Post("/:id/products", auth, ownerOrAdmin, productHandler.Create)
	businesses.Post("/:id/reviews", auth, socialHandler.CreateReview)
	businesses.Get("/:id/orders", auth, ownerOrAdmin, orderHandler.ListForBusiness)

	// Productos
	products := api.Group("/products")
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", auth, productHandler.Update)
	products.Delete("/:id", auth, productHandler.Delete)

	// Carrito por sesión (sin login); el checkout exige token
	cartHandler := NewCartHandler(deps.Carts, deps.CartUC, deps.OrderUC)
	cartGroup := api.Group("/cart")
	cartGroup.Get("/", cartHandler.View)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/items", cartHandler.Add)
	cartGroup.Put("/items/:lineId", cartHandler.Update)
	cartGroup.Delete("/items/:lineId", cartHandler.Remove)
	api.Post("/checkout", auth, cartHandler.Checkout)

	// Rutas del usuario autenticado
	me := api.Group("/me", auth)
	me.Get("/", socialHandler.Me)
	me.Put("/", socialHandler.SyncProfile)

	favorites := api.Group("/favorites", auth)
	favorites.Get("/", socialHandler.ListFavorites)
	favorites.Post("/:businessId", socialHandler.AddFavorite)
	favorites.Delete("/:businessId", socialHandler.RemoveFavorite)
	favorites.Post("/:businessId/toggle", socialHandler.ToggleFavorite)

	orders := api.Group("/orders", auth)
	orders.Get("/", orderHandler.ListMine)
	orders.Get("/:id", orderHandler.GetByID)

	dashboard := api.Group("/dashboard", auth)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
