package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/beiplas/nexpot/internal/application/dto"
	"github.com/beiplas/nexpot/internal/domain"
	"github.com/beiplas/nexpot/internal/infrastructure/restapi"
)

// respondError traduce los errores de dominio a estados HTTP. Los errores del
// servicio de negocio se reportan como 502 conservando su mensaje.
func respondError(c *fiber.Ctx, err error) error {
	var upstream *restapi.UpstreamError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrOrderAnnulled):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ORDER_ANNULLED", Message: err.Error()})
	case errors.Is(err, domain.ErrDetailCountFixed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DETAIL_COUNT_FIXED", Message: err.Error()})
	case errors.Is(err, domain.ErrSubmitInFlight):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUBMIT_IN_FLIGHT", Message: err.Error()})
	case errors.Is(err, domain.ErrHasDependents):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_DEPENDENTS", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.As(err, &upstream):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: upstream.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// badBody respuesta estándar para un cuerpo que no parsea.
func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// fieldErrors respuesta 422 con los errores de validación por campo.
func fieldErrors(c *fiber.Ctx, errs map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.FieldErrorsResponse{Errors: errs})
}
