package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	_ "github.com/triple000-it/schiedam/docs"
	"github.com/triple000-it/schiedam/internal/application/analytics"
	"github.com/triple000-it/schiedam/internal/application/usecase"
	"github.com/triple000-it/schiedam/internal/cart"
	"github.com/triple000-it/schiedam/internal/domain/repository"
	"github.com/triple000-it/schiedam/internal/infrastructure/memory"
	"github.com/triple000-it/schiedam/internal/infrastructure/postgres"
	httpRouter "github.com/triple000-it/schiedam/internal/interfaces/http"
	"github.com/triple000-it/schiedam/pkg/config"
	"github.com/triple000-it/schiedam/pkg/logger"
	"github.com/triple000-it/schiedam/pkg/placeholder"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.Backend).
		Str("cart", cfg.Cart.Backend).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: todas las rutas protegidas responderán 401")
	}

	ctx := context.Background()

	var (
		store    repository.Store
		txRunner repository.TxRunner
	)
	switch cfg.Store.Backend {
	case config.BackendMemory:
		mem := memory.New()
		if cfg.Store.SeedDemo {
			mem.SeedDemo()
			log.Info().Msg("datos de demostración cargados")
		}
		store, txRunner = mem, memory.NewTxRunner(mem)
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
				log.Fatal().Err(err).Msg("migración del esquema")
			}
		}
		store, txRunner = postgres.NewStore(pool), postgres.NewTxRunner(pool)
	}

	var slot cart.Slot
	switch cfg.Cart.Backend {
	case config.CartRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		slot = cart.NewRedisSlot(client, 30*24*time.Hour)
	case config.CartFile:
		fs, err := cart.NewFileSlot(cfg.Cart.Dir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Cart.Dir).Msg("directorio del carrito")
		}
		slot = fs
	default:
		slot = cart.NewMemorySlot()
	}
	carts := cart.NewSessions(slot, cfg.Cart.Key, log.Component("cart"))

	images := placeholder.New(cfg.Placeholder.BaseURL)

	businessUC := usecase.NewBusinessUseCase(store, images)
	categoryUC := usecase.NewCategoryUseCase(store)
	productUC := usecase.NewProductUseCase(store, store, images)
	reviewUC := usecase.NewReviewUseCase(store, store)
	favoriteUC := usecase.NewFavoriteUseCase(store, store)
	profileUC := usecase.NewProfileUseCase(store)
	cartUC := usecase.NewCartUseCase(store, store, images)
	orderUC := usecase.NewOrderUseCase(store, txRunner, log.Component("checkout"))
	dashboardUC := analytics.NewDashboardUseCase(store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Schiedam Directory API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Backend})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BusinessUC:  businessUC,
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		ReviewUC:    reviewUC,
		FavoriteUC:  favoriteUC,
		ProfileUC:   profileUC,
		OrderUC:     orderUC,
		CartUC:      cartUC,
		DashboardUC: dashboardUC,
		Carts:       carts,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
