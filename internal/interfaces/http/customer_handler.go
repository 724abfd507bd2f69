package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/beiplas/nexpot/internal/application/customers"
	"github.com/beiplas/nexpot/internal/application/dto"
	"github.com/beiplas/nexpot/internal/domain"
	"github.com/beiplas/nexpot/internal/domain/validate"
	"github.com/beiplas/nexpot/pkg/nit"
)

// CustomerHandler maneja las peticiones HTTP de clientes. La validación de
// unicidad corre en el caso de uso antes de tocar el servicio de negocio.
type CustomerHandler struct {
	svc *customers.Service
}

func NewCustomerHandler(svc *customers.Service) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// List GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.svc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badBody(c)
	}
	customer, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, errs, err := h.svc.Create(c.Context(), in.ToEntity(0))
	if err != nil {
		return respondError(c, err)
	}
	if errs.HasErrors() {
		return fieldErrors(c, errs)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badBody(c)
	}
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	errs, err := h.svc.Update(c.Context(), in.ToEntity(id))
	if err != nil {
		return respondError(c, err)
	}
	if errs.HasErrors() {
		return fieldErrors(c, errs)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badBody(c)
	}
	if err := h.svc.Delete(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// VerificationDigit GET /api/customers/nit/:nit/verification-digit — dígito de
// verificación sugerido para el NIT (módulo 11 DIAN). Es consultivo: el NIT se
// guarda tal como lo digita el usuario.
func (h *CustomerHandler) VerificationDigit(c *fiber.Ctx) error {
	raw := c.Params("nit")
	if err := nit.ValidateFormat(raw); err != nil {
		return fieldErrors(c, validate.Errors{
			"nit": "el NIT debe tener de 8 a 10 dígitos, con dígito de verificación opcional",
		})
	}
	digit, err := nit.ComputeVerificationDigit(raw)
	if err != nil {
		return respondError(c, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error()))
	}
	return c.JSON(fiber.Map{"nit": raw, "verificationDigit": string(rune(digit))})
}
