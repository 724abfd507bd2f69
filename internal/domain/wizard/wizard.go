// Package wizard máquina de estados del asistente de órdenes de compra.
// Paso 1: cabecera (cliente, empleado, cantidad de productos). Pasos 2..N+1: un
// detalle por producto. Paso N+2: pago, fecha de entrega y resumen financiero.
// La cantidad del paso 1 redimensiona dinámicamente el total de pasos
// (totalSteps = N+2). Todo el estado vive en memoria hasta el envío final.
package wizard

import (
	"fmt"
	"time"

	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/refcode"
	"github.com/beiplas/nexpot/internal/domain/validate"
)

// Header campos del paso 1.
type Header struct {
	CustomerID      int
	EmployeeID      int
	OrderedQuantity int
}

// Closing campos del paso final.
type Closing struct {
	Payment      entity.Payment
	DeliveryDate time.Time
	Observations string
	HasIVA       bool
}

// Wizard asistente en curso. No es seguro para uso concurrente: la sesión que
// lo contiene serializa el acceso.
type Wizard struct {
	cat   entity.Catalogs
	clock validate.Clock

	header  Header
	details []*entity.PurchaseOrderDetail // buffers guardados, uno por paso de detalle
	buffer  *entity.PurchaseOrderDetail   // buffer de trabajo del paso de detalle actual
	closing Closing

	current    int // 1..TotalSteps
	stepErrors map[int]validate.Errors
	manualCode bool

	// editingOrderID 0 en creación; el id de la orden en edición. En edición la
	// cantidad de detalles queda fija a la de la creación.
	editingOrderID int
}

// New crea un asistente de creación con cantidad inicial de un producto.
func New(cat entity.Catalogs, clock validate.Clock) *Wizard {
	return &Wizard{
		cat:        cat,
		clock:      clock,
		header:     Header{OrderedQuantity: 1},
		details:    make([]*entity.PurchaseOrderDetail, 1),
		current:    1,
		stepErrors: make(map[int]validate.Errors),
	}
}

// NewForEdit crea un asistente precargado con una orden existente. El número de
// pasos de detalle queda fijado por los detalles originales.
func NewForEdit(cat entity.Catalogs, clock validate.Clock, order *entity.PurchaseOrder) (*Wizard, error) {
	if order.WasAnnulled {
		return nil, fmt.Errorf("orden %d: no se puede editar una orden anulada", order.ID)
	}
	w := New(cat, clock)
	w.editingOrderID = order.ID
	w.header = Header{
		CustomerID:      order.CustomerID,
		EmployeeID:      order.EmployeeID,
		OrderedQuantity: len(order.Details),
	}
	w.details = make([]*entity.PurchaseOrderDetail, len(order.Details))
	for i, d := range order.Details {
		copied := *d
		copied.Config = d.Config.Clone()
		w.details[i] = &copied
	}
	w.closing = Closing{
		Payment:      order.Payment,
		DeliveryDate: order.DeliveryDate,
		Observations: order.Observations,
		HasIVA:       order.HasIVA,
	}
	return w, nil
}

// CurrentStep paso actual (1-based).
func (w *Wizard) CurrentStep() int { return w.current }

// TotalSteps invariante: cantidad de productos + cabecera + cierre.
func (w *Wizard) TotalSteps() int { return w.header.OrderedQuantity + 2 }

// IsEditing indica modo edición y el id de la orden.
func (w *Wizard) IsEditing() (int, bool) { return w.editingOrderID, w.editingOrderID != 0 }

// Header copia de la cabecera actual.
func (w *Wizard) Header() Header { return w.header }

// Closing copia del paso de cierre actual.
func (w *Wizard) Closing() Closing { return w.closing }

// ManualCode indica si el código de referencia está en edición manual.
func (w *Wizard) ManualCode() bool { return w.manualCode }

// onDetailStep true si el paso actual es un paso de detalle.
func (w *Wizard) onDetailStep() bool {
	return w.current >= 2 && w.current <= w.header.OrderedQuantity+1
}

// detailIndex índice del buffer para el paso actual.
func (w *Wizard) detailIndex() int { return w.current - 2 }

// Buffer buffer de trabajo del paso de detalle actual; nil fuera de un paso de
// detalle.
func (w *Wizard) Buffer() *entity.PurchaseOrderDetail {
	if !w.onDetailStep() {
		return nil
	}
	return w.buffer
}

// StepErrors errores registrados para un paso.
func (w *Wizard) StepErrors(step int) validate.Errors { return w.stepErrors[step] }

// ErrorSteps mapa paso → tiene-errores, para el indicador visual de pasos.
func (w *Wizard) ErrorSteps() map[int]bool {
	out := make(map[int]bool, len(w.stepErrors))
	for step, errs := range w.stepErrors {
		if errs.HasErrors() {
			out[step] = true
		}
	}
	return out
}

// freshDetail buffer de detalle por defecto: solo hereda el vínculo con la
// orden, nada más.
func (w *Wizard) freshDetail() *entity.PurchaseOrderDetail {
	return &entity.PurchaseOrderDetail{
		PurchaseOrderID: w.editingOrderID,
		Config:          entity.ProductConfiguration{MeasureUnit: entity.UnitCentimeters},
	}
}

// loadBuffer carga el buffer del índice si ya fue visitado, o uno nuevo.
func (w *Wizard) loadBuffer() {
	idx := w.detailIndex()
	if idx >= 0 && idx < len(w.details) && w.details[idx] != nil {
		w.buffer = w.details[idx]
		return
	}
	w.buffer = w.freshDetail()
}

// saveBuffer persiste el buffer de trabajo en la colección indexada.
func (w *Wizard) saveBuffer() {
	if !w.onDetailStep() || w.buffer == nil {
		return
	}
	w.details[w.detailIndex()] = w.buffer
}

// Next valida los campos del paso actual y avanza. En caso de fallo registra el
// mapa de errores del paso, no avanza y no persiste el detalle en curso.
func (w *Wizard) Next() (validate.Errors, error) {
	if w.current >= w.TotalSteps() {
		return nil, fmt.Errorf("no hay paso siguiente: el paso %d es el último", w.current)
	}

	var errs validate.Errors
	switch {
	case w.current == 1:
		errs = validate.Header(w.header.CustomerID, w.header.EmployeeID, w.header.OrderedQuantity)
	case w.onDetailStep():
		errs = validate.Detail(w.buffer, w.cat)
	}
	if errs.HasErrors() {
		w.stepErrors[w.current] = errs
		return errs, nil
	}
	delete(w.stepErrors, w.current)

	w.saveBuffer()
	w.current++
	if w.onDetailStep() {
		w.loadBuffer()
	}
	return nil, nil
}

// Previous persiste el buffer en curso sin validar, retrocede y limpia todos
// los mapas de errores: los errores de un paso no sobreviven a la navegación.
func (w *Wizard) Previous() error {
	if w.current <= 1 {
		return fmt.Errorf("no hay paso anterior: el paso actual es el primero")
	}
	w.saveBuffer()
	w.current--
	if w.onDetailStep() {
		w.loadBuffer()
	}
	w.stepErrors = make(map[int]validate.Errors)
	return nil
}

// SelectReference sobrescribe en bloque los campos de configuración de producto
// del buffer con la referencia elegida. Los campos propios de la línea
// (cantidades, precios, lugar de entrega) no se tocan.
func (w *Wizard) SelectReference(ref entity.Reference) error {
	if !w.onDetailStep() {
		return fmt.Errorf("solo se puede seleccionar una referencia en un paso de detalle")
	}
	w.buffer.Config = ref.Config.Clone()
	if !w.manualCode {
		w.buffer.Config.ReferenceCode = refcode.Generate(w.buffer.Config, w.cat)
	}
	return nil
}

// SetManualCode activa o desactiva la edición manual del código de referencia.
// Al desactivar no se regenera de inmediato: la regeneración se reanuda en el
// siguiente cambio de un campo dependiente y sobrescribe el valor manual.
func (w *Wizard) SetManualCode(manual bool) { w.manualCode = manual }

// CanSubmit el envío solo se habilita en el último paso.
func (w *Wizard) CanSubmit() bool { return w.current == w.TotalSteps() }

// ValidateSubmit re-valida pago y fecha de entrega antes del envío final.
func (w *Wizard) ValidateSubmit() validate.Errors {
	errs := validate.Closing(w.closing.Payment, w.closing.DeliveryDate, w.clock)
	if errs.HasErrors() {
		w.stepErrors[w.TotalSteps()] = errs
	}
	return errs
}

// BuildOrder arma la orden con pago y detalles y calcula los totales a partir
// de los buffers acumulados. Solo tiene sentido tras ValidateSubmit sin errores.
func (w *Wizard) BuildOrder() *entity.PurchaseOrder {
	order := &entity.PurchaseOrder{
		ID:           w.editingOrderID,
		CustomerID:   w.header.CustomerID,
		EmployeeID:   w.header.EmployeeID,
		DeliveryDate: w.closing.DeliveryDate,
		Observations: w.closing.Observations,
		HasIVA:       w.closing.HasIVA,
		Payment:      w.closing.Payment,
		Details:      w.details,
	}
	order.ComputeTotals(w.details)
	return order
}
