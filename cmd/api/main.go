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

	"github.com/Pixoll/db-uni-project-api/internal/application/auth"
	"github.com/Pixoll/db-uni-project-api/internal/application/inventory"
	"github.com/Pixoll/db-uni-project-api/internal/application/sales"
	"github.com/Pixoll/db-uni-project-api/internal/application/usecase"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
	infrakafka "github.com/Pixoll/db-uni-project-api/internal/infrastructure/kafka"
	infrapdf "github.com/Pixoll/db-uni-project-api/internal/infrastructure/pdf"
	"github.com/Pixoll/db-uni-project-api/internal/infrastructure/postgres"
	"github.com/Pixoll/db-uni-project-api/internal/infrastructure/session"
	httpRouter "github.com/Pixoll/db-uni-project-api/internal/interfaces/http"
	"github.com/Pixoll/db-uni-project-api/pkg/config"
	"github.com/Pixoll/db-uni-project-api/pkg/logger"
)

const saleEventBuffer = 1024

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("tax_rate", cfg.Sales.TaxRate.String()).
		Msg("iniciando aplicación")

	if cfg.Session.Secret == "" {
		log.Fatal().Msg("SESSION_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Strs("applied", applied).Msg("migraciones aplicadas")
	}

	// Registro de sesiones: Redis si está configurado, memoria en desarrollo.
	var sessions repository.SessionStore
	if cfg.Redis.Addr != "" {
		rs, err := session.NewRedisStore(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		sessions = rs
	} else {
		log.Warn().Msg("REDIS_ADDR vacío, sesiones en memoria")
		sessions = session.NewMemoryStore()
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar registro de sesiones")
		}
	}()

	// Eventos de venta: Kafka si hay brokers.
	var publisher sales.EventPublisher = infrakafka.NopPublisher{}
	var producer *infrakafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = infrakafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.SaleTopic, saleEventBuffer, log)
		producer.Start()
		publisher = infrakafka.NewSaleEventPublisher(producer)
	}

	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	refRepo := postgres.NewReferenceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	taxRate := cfg.Sales.TaxRate
	productUC := usecase.NewProductUseCase(productRepo, stockRepo, taxRate)
	referenceUC := usecase.NewReferenceUseCase(refRepo, supplierRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	staffUC := usecase.NewStaffUseCase(employeeRepo, employeeRepo, sessions, log)
	stockUC := inventory.NewStockUseCase(txRunner, log)
	catalogUC := inventory.NewCatalogUseCase(txRunner, log)
	replenishmentUC := inventory.NewReplenishmentUseCase(productRepo, taxRate)

	recordSaleUC := sales.NewRecordSaleUseCase(txRunner, employeeRepo, clientRepo, publisher, taxRate, log)
	saleQueryUC := sales.NewQueryUseCase(saleRepo, taxRate)
	// PDF: boleta / factura de la venta
	salePDFUC := sales.NewPDFUseCase(saleQueryUC, clientRepo, employeeRepo, refRepo, infrapdf.NewMarotoPDFGenerator())

	authUC := auth.NewAuthUseCase(employeeRepo, sessions, auth.JWTConfig{
		Secret:     cfg.Session.Secret,
		ExpMinutes: cfg.Session.ExpMinutes,
		Issuer:     cfg.Session.Issuer,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI: http://localhost:<port>/docs
	if cfg.Docs.Enabled {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.FilePath,
			Path:     "docs",
			Title:    "Retail API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Auth:      authUC,
		Products:  httpRouter.NewProductHandler(productUC, stockUC, replenishmentUC),
		Sales:     httpRouter.NewSaleHandler(recordSaleUC, saleQueryUC, salePDFUC),
		Sessions:  httpRouter.NewAuthHandler(authUC, employeeUC),
		Staff:     httpRouter.NewStaffHandler(staffUC, employeeUC),
		Catalog:   httpRouter.NewCatalogHandler(catalogUC),
		Clients:   httpRouter.NewClientHandler(clientUC),
		Reference: httpRouter.NewReferenceHandler(referenceUC),
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

	// Los eventos encolados se escriben antes de cerrar.
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar productor kafka")
		}
	}

	log.Info().Msg("aplicación detenida")
}
