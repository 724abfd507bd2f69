package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beiplas/nexpot/internal/application/catalogs"
	"github.com/beiplas/nexpot/internal/application/customers"
	"github.com/beiplas/nexpot/internal/application/orders"
	"github.com/beiplas/nexpot/internal/application/wizardsession"
	"github.com/beiplas/nexpot/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions      *wizardsession.Manager
	CustomerSvc   *customers.Service
	CatalogLoader *catalogs.Loader
	Pipeline      *orders.Pipeline

	Orders     repository.PurchaseOrderRepository
	References repository.ReferenceRepository
	Catalogs   repository.CatalogRepository
	Employees  repository.EmployeeRepository
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sesiones del asistente de órdenes de compra
	wizardHandler := NewWizardHandler(deps.Sessions)
	sessions := api.Group("/wizard/sessions")
	sessions.Post("/", wizardHandler.Start)
	sessions.Post("/from-order/:orderId", wizardHandler.StartEdit)
	sessions.Get("/:id", wizardHandler.Get)
	sessions.Patch("/:id/header", wizardHandler.PatchHeader)
	sessions.Patch("/:id/detail", wizardHandler.PatchDetail)
	sessions.Patch("/:id/closing", wizardHandler.PatchClosing)
	sessions.Post("/:id/next", wizardHandler.Next)
	sessions.Post("/:id/previous", wizardHandler.Previous)
	sessions.Post("/:id/reference/:refId", wizardHandler.SelectReference)
	sessions.Put("/:id/manual-code", wizardHandler.SetManualCode)
	sessions.Get("/:id/layout", wizardHandler.Layout)
	sessions.Post("/:id/submit", wizardHandler.Submit)
	sessions.Delete("/:id", wizardHandler.Cancel)

	// Órdenes de compra (consulta y anulación)
	orderHandler := NewOrderHandler(deps.Orders, deps.Pipeline)
	ordersGroup := api.Group("/purchaseOrders")
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Delete("/:id", orderHandler.Annul)

	// Clientes
	customerHandler := NewCustomerHandler(deps.CustomerSvc)
	customersGroup := api.Group("/customers")
	customersGroup.Get("/", customerHandler.List)
	customersGroup.Post("/", customerHandler.Create)
	customersGroup.Get("/nit/:nit/verification-digit", customerHandler.VerificationDigit)
	customersGroup.Get("/:id", customerHandler.GetByID)
	customersGroup.Put("/:id", customerHandler.Update)
	customersGroup.Delete("/:id", customerHandler.Delete)

	// Referencias por cliente y previsualización de código
	referenceHandler := NewReferenceHandler(deps.References, deps.CatalogLoader)
	customersGroup.Get("/:id/references", referenceHandler.ListByCustomer)
	api.Post("/references/preview-code", referenceHandler.PreviewCode)

	// Catálogos y empleados
	catalogHandler := NewCatalogHandler(deps.Catalogs, deps.Employees)
	api.Get("/productTypes", catalogHandler.ProductTypes)
	api.Get("/materials", catalogHandler.Materials)
	api.Get("/employees", catalogHandler.Employees)
}
