package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/beiplas/nexpot/internal/application/catalogs"
	"github.com/beiplas/nexpot/internal/application/dto"
	"github.com/beiplas/nexpot/internal/domain/refcode"
	"github.com/beiplas/nexpot/internal/domain/repository"
)

// ReferenceHandler referencias guardadas por cliente y previsualización del
// código de referencia.
type ReferenceHandler struct {
	refs   repository.ReferenceRepository
	loader *catalogs.Loader
}

func NewReferenceHandler(refs repository.ReferenceRepository, loader *catalogs.Loader) *ReferenceHandler {
	return &ReferenceHandler{refs: refs, loader: loader}
}

type referenceSummary struct {
	ID            int    `json:"id"`
	Customer      int    `json:"customer"`
	ReferenceCode string `json:"referenceCode"`
	IsActive      bool   `json:"isActive"`
}

// ListByCustomer GET /api/customers/:id/references
func (h *ReferenceHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badBody(c)
	}
	refs, err := h.refs.ListByCustomer(c.Context(), customerID)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]referenceSummary, 0, len(refs))
	for _, r := range refs {
		out = append(out, referenceSummary{
			ID:            r.ID,
			Customer:      r.CustomerID,
			ReferenceCode: r.Config.ReferenceCode,
			IsActive:      r.IsActive,
		})
	}
	return c.JSON(out)
}

// PreviewCode POST /api/references/preview-code — genera el código de
// referencia para una configuración sin necesidad de sesión. Devuelve "" si el
// tipo de producto o el material no resuelven en los catálogos.
func (h *ReferenceHandler) PreviewCode(c *fiber.Ctx) error {
	var in dto.CodePreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	cat, err := h.loader.Load(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	code := refcode.Generate(in.ToConfig(), cat)
	return c.JSON(dto.CodePreviewResponse{ReferenceCode: code})
}
