package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beiplas/nexpot/internal/domain/repository"
)

// CatalogHandler catálogos y empleados (solo lectura desde esta aplicación).
type CatalogHandler struct {
	catalogs  repository.CatalogRepository
	employees repository.EmployeeRepository
}

func NewCatalogHandler(catalogs repository.CatalogRepository, employees repository.EmployeeRepository) *CatalogHandler {
	return &CatalogHandler{catalogs: catalogs, employees: employees}
}

type catalogItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// ProductTypes GET /api/productTypes
func (h *CatalogHandler) ProductTypes(c *fiber.Ctx) error {
	list, err := h.catalogs.ProductTypes(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]catalogItem, 0, len(list))
	for _, pt := range list {
		out = append(out, catalogItem{ID: pt.ID, Name: pt.Name, IsActive: pt.IsActive})
	}
	return c.JSON(out)
}

// Materials GET /api/materials
func (h *CatalogHandler) Materials(c *fiber.Ctx) error {
	list, err := h.catalogs.Materials(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]catalogItem, 0, len(list))
	for _, m := range list {
		out = append(out, catalogItem{ID: m.ID, Name: m.Name, IsActive: m.IsActive})
	}
	return c.JSON(out)
}

type employeeItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	IsActive bool   `json:"isActive"`
}

// Employees GET /api/employees
func (h *CatalogHandler) Employees(c *fiber.Ctx) error {
	list, err := h.employees.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]employeeItem, 0, len(list))
	for _, e := range list {
		out = append(out, employeeItem{ID: e.ID, Name: e.Name, Position: e.Position, IsActive: e.IsActive})
	}
	return c.JSON(out)
}
