package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/beiplas/nexpot/internal/application/orders"
	"github.com/beiplas/nexpot/internal/domain"
	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/repository"
)

// OrderHandler consulta y anulación de órdenes de compra. La creación y la
// edición pasan por las sesiones del asistente, no por aquí.
type OrderHandler struct {
	repo     repository.PurchaseOrderRepository
	pipeline *orders.Pipeline
}

func NewOrderHandler(repo repository.PurchaseOrderRepository, pipeline *orders.Pipeline) *OrderHandler {
	return &OrderHandler{repo: repo, pipeline: pipeline}
}

// orderSummary vista de listado.
type orderSummary struct {
	ID           int             `json:"id"`
	Customer     int             `json:"customer"`
	Employee     int             `json:"employee"`
	OrderDate    string          `json:"orderDate,omitempty"`
	DeliveryDate string          `json:"deliveryDate,omitempty"`
	Total        decimal.Decimal `json:"total"`
	WasAnnulled  bool            `json:"wasAnnulled"`
}

func toSummary(o *entity.PurchaseOrder) orderSummary {
	s := orderSummary{
		ID:          o.ID,
		Customer:    o.CustomerID,
		Employee:    o.EmployeeID,
		Total:       o.Total,
		WasAnnulled: o.WasAnnulled,
	}
	if !o.OrderDate.IsZero() {
		s.OrderDate = o.OrderDate.Format("2006-01-02")
	}
	if !o.DeliveryDate.IsZero() {
		s.DeliveryDate = o.DeliveryDate.Format("2006-01-02")
	}
	return s
}

// List GET /api/purchaseOrders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	list, err := h.repo.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]orderSummary, 0, len(list))
	for _, o := range list {
		out = append(out, toSummary(o))
	}
	return c.JSON(out)
}

// GetByID GET /api/purchaseOrders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badBody(c)
	}
	order, err := h.repo.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	if order == nil {
		return respondError(c, domain.ErrNotFound)
	}
	return c.JSON(toSummary(order))
}

// Annul DELETE /api/purchaseOrders/:id — anulación suave e irreversible. La
// confirmación es responsabilidad del cliente que llama.
func (h *OrderHandler) Annul(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badBody(c)
	}
	if err := h.pipeline.Annul(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success", "message": "orden anulada"})
}
