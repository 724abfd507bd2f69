// Package orders pipeline de envío de órdenes de compra contra el servicio de
// negocio. El servicio no ofrece transacciones multi-recurso: la creación es
// una secuencia ordenada de llamadas (orden → pago → detalles) con borrado
// compensatorio manual ante fallas parciales.
package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/beiplas/nexpot/internal/domain"
	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/repository"
	"github.com/beiplas/nexpot/internal/domain/validate"
)

// Pipeline orquesta las llamadas secuenciales al servicio de negocio.
type Pipeline struct {
	orders   repository.PurchaseOrderRepository
	payments repository.PaymentRepository
	details  repository.DetailRepository
	clock    validate.Clock
	log      zerolog.Logger
}

// NewPipeline construye el pipeline.
func NewPipeline(
	orders repository.PurchaseOrderRepository,
	payments repository.PaymentRepository,
	details repository.DetailRepository,
	clock validate.Clock,
	log zerolog.Logger,
) *Pipeline {
	return &Pipeline{orders: orders, payments: payments, details: details, clock: clock, log: log}
}

// Result ids producidos por un envío.
type Result struct {
	OrderID   int
	PaymentID int
	DetailIDs []int
	// FailedDetailIDs detalles cuyo PUT falló en el flujo de actualización
	// (se registra y se continúa, sin compensación).
	FailedDetailIDs []int
	// OrphanedDetailIDs detalles creados antes de una falla que quedaron
	// referenciando la orden compensada; el backend debe hacer cascada o
	// conciliarse manualmente.
	OrphanedDetailIDs []int
}

// Create ejecuta el flujo de creación: re-valida pago y fecha de entrega,
// POST de la orden con el subtotal calculado en el cliente, POST del pago y
// POST secuencial de cada detalle. Cualquier falla posterior a la creación de
// la orden intenta la anulación compensatoria antes de propagar el error.
func (p *Pipeline) Create(ctx context.Context, order *entity.PurchaseOrder) (*Result, error) {
	if errs := validate.Closing(order.Payment, order.DeliveryDate, p.clock); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, errs)
	}
	order.ComputeTotals(order.Details)

	orderID, err := p.orders.Create(ctx, order)
	if err != nil {
		// Nada que compensar: no se creó estado parcial.
		return nil, fmt.Errorf("crear orden de compra: %w", err)
	}
	res := &Result{OrderID: orderID}
	p.log.Info().Int("order_id", orderID).Msg("orden de compra creada")

	payment := order.Payment
	payment.PurchaseOrderID = orderID
	paymentID, err := p.payments.Create(ctx, &payment)
	if err != nil {
		p.compensate(ctx, orderID, res)
		return nil, fmt.Errorf("crear pago de la orden %d: %w", orderID, err)
	}
	res.PaymentID = paymentID

	for i, d := range order.Details {
		detail := *d
		detail.PurchaseOrderID = orderID
		detailID, err := p.details.Create(ctx, &detail)
		if err != nil {
			p.log.Error().Err(err).
				Int("order_id", orderID).
				Int("detail_index", i).
				Msg("falla creando detalle, se compensa la orden")
			p.compensate(ctx, orderID, res)
			if len(res.OrphanedDetailIDs) > 0 {
				return nil, fmt.Errorf("crear detalle %d de la orden %d (detalles huérfanos: %v): %w",
					i+1, orderID, res.OrphanedDetailIDs, err)
			}
			return nil, fmt.Errorf("crear detalle %d de la orden %d: %w", i+1, orderID, err)
		}
		res.DetailIDs = append(res.DetailIDs, detailID)
	}

	p.log.Info().Int("order_id", orderID).Ints("detail_ids", res.DetailIDs).Msg("orden enviada completa")
	return res, nil
}

// compensate intenta anular la orden recién creada. Es el mejor esfuerzo
// posible sin transacción de backend: si la anulación también falla solo queda
// registrarlo; los detalles ya creados quedan como huérfanos reportados.
func (p *Pipeline) compensate(ctx context.Context, orderID int, res *Result) {
	res.OrphanedDetailIDs = res.DetailIDs
	res.DetailIDs = nil
	if err := p.orders.Annul(ctx, orderID); err != nil {
		p.log.Error().Err(err).Int("order_id", orderID).
			Msg("la anulación compensatoria también falló; conciliar manualmente")
	}
}

// Update ejecuta el flujo de edición: PUT de la cabecera, del pago y de cada
// detalle por su id, en secuencia. La cantidad de detalles quedó fija en la
// creación. A diferencia del flujo de creación, una falla en un detalle se
// registra y se continúa con el siguiente; no hay compensación.
func (p *Pipeline) Update(ctx context.Context, order *entity.PurchaseOrder) (*Result, error) {
	if order.ID == 0 {
		return nil, fmt.Errorf("%w: la orden a actualizar no tiene id", domain.ErrInvalidInput)
	}
	if order.WasAnnulled {
		return nil, domain.ErrOrderAnnulled
	}
	if errs := validate.Closing(order.Payment, order.DeliveryDate, p.clock); errs.HasErrors() {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, errs)
	}
	for _, d := range order.Details {
		if d.ID == 0 {
			return nil, domain.ErrDetailCountFixed
		}
	}
	order.ComputeTotals(order.Details)

	if err := p.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("actualizar orden %d: %w", order.ID, err)
	}
	res := &Result{OrderID: order.ID}

	payment := order.Payment
	payment.PurchaseOrderID = order.ID
	if err := p.payments.Update(ctx, &payment); err != nil {
		return nil, fmt.Errorf("actualizar pago de la orden %d: %w", order.ID, err)
	}
	res.PaymentID = payment.ID

	for _, d := range order.Details {
		detail := *d
		detail.PurchaseOrderID = order.ID
		if err := p.details.Update(ctx, &detail); err != nil {
			p.log.Error().Err(err).
				Int("order_id", order.ID).
				Int("detail_id", detail.ID).
				Msg("falla actualizando detalle, se continúa con el siguiente")
			res.FailedDetailIDs = append(res.FailedDetailIDs, detail.ID)
			continue
		}
		res.DetailIDs = append(res.DetailIDs, detail.ID)
	}
	return res, nil
}

// Annul anulación suave de una orden, irreversible desde la aplicación. Una
// orden ya anulada es inmutable.
func (p *Pipeline) Annul(ctx context.Context, id int) error {
	order, err := p.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.WasAnnulled {
		return domain.ErrOrderAnnulled
	}
	if err := p.orders.Annul(ctx, id); err != nil {
		return fmt.Errorf("anular orden %d: %w", id, err)
	}
	p.log.Info().Int("order_id", id).Msg("orden de compra anulada")
	return nil
}

// IsValidationError indica si el error proviene de la re-validación previa al
// envío (no llegó a la red).
func IsValidationError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput)
}
