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

	"github.com/beiplas/nexpot/internal/application/catalogs"
	"github.com/beiplas/nexpot/internal/application/customers"
	"github.com/beiplas/nexpot/internal/application/orders"
	"github.com/beiplas/nexpot/internal/application/wizardsession"
	"github.com/beiplas/nexpot/internal/domain/validate"
	"github.com/beiplas/nexpot/internal/infrastructure/restapi"
	httpRouter "github.com/beiplas/nexpot/internal/interfaces/http"
	"github.com/beiplas/nexpot/pkg/config"
	"github.com/beiplas/nexpot/pkg/logger"
)

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
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("iniciando aplicación")

	client := restapi.NewClient(restapi.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout(),
	}, log.Zerolog())

	orderRepo := restapi.NewPurchaseOrderRepository(client)
	paymentRepo := restapi.NewPaymentRepository(client)
	detailRepo := restapi.NewDetailRepository(client)
	customerRepo := restapi.NewCustomerRepository(client)
	referenceRepo := restapi.NewReferenceRepository(client)
	catalogRepo := restapi.NewCatalogRepository(client)
	employeeRepo := restapi.NewEmployeeRepository(client)

	clock := validate.BogotaClock{}
	loader := catalogs.NewLoader(catalogRepo)
	pipeline := orders.NewPipeline(orderRepo, paymentRepo, detailRepo, clock, log.Zerolog())
	sessions := wizardsession.NewManager(loader, orderRepo, referenceRepo, pipeline, clock, log.Zerolog())
	customerSvc := customers.NewService(customerRepo, orderRepo, log.Zerolog())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "NEXPOT API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:      sessions,
		CustomerSvc:   customerSvc,
		CatalogLoader: loader,
		Pipeline:      pipeline,
		Orders:        orderRepo,
		References:    referenceRepo,
		Catalogs:      catalogRepo,
		Employees:     employeeRepo,
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
