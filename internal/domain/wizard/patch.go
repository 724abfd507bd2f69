package wizard

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/refcode"
)

// Los cambios de campo llegan como parches tipados por formulario (cabecera,
// detalle, cierre) en lugar de un solo handler que enruta por prefijo del
// nombre del campo. Un puntero nil significa "campo no tocado".

// HeaderPatch cambios del paso 1.
type HeaderPatch struct {
	CustomerID      *int
	EmployeeID      *int
	OrderedQuantity *int
}

// ApplyHeader aplica cambios de cabecera. Solo es válido en el paso 1; cambiar
// la cantidad redimensiona la colección de buffers conservando los visitados.
func (w *Wizard) ApplyHeader(p HeaderPatch) error {
	if w.current != 1 {
		return fmt.Errorf("la cabecera solo se edita en el paso 1 (paso actual: %d)", w.current)
	}
	if p.CustomerID != nil {
		w.header.CustomerID = *p.CustomerID
	}
	if p.EmployeeID != nil {
		w.header.EmployeeID = *p.EmployeeID
	}
	if p.OrderedQuantity != nil {
		n := *p.OrderedQuantity
		if _, editing := w.IsEditing(); editing && n != len(w.details) {
			return fmt.Errorf("orden en edición: la cantidad de detalles está fija en %d", len(w.details))
		}
		if n < 1 {
			n = 1
		}
		w.header.OrderedQuantity = n
		resized := make([]*entity.PurchaseOrderDetail, n)
		copy(resized, w.details)
		w.details = resized
	}
	return nil
}

// DetailPatch cambios del paso de detalle. Additives y PantoneCodes van por
// índice para poder editar una sola casilla.
type DetailPatch struct {
	ProductTypeID *int
	MaterialID    *int

	Width       *decimal.Decimal
	Length      *decimal.Decimal
	MeasureUnit *entity.MeasureUnit
	Caliber     *decimal.Decimal
	RollerSize  *decimal.Decimal

	GussetsType  *entity.GussetsType
	FirstGusset  *decimal.Decimal
	SecondGusset *decimal.Decimal

	FlapType *entity.FlapType
	FlapSize *decimal.Decimal
	Tape     *entity.TapeType

	DieCutType  *entity.DieCutType
	SealingType *entity.SealingType
	FilmColor   *string

	AdditiveCount *int
	Additives     map[int]string

	HasPrint         *bool
	DynasTreatyFaces *int
	PantonesQuantity *int
	PantoneCodes     map[int]string

	Kilograms     *decimal.Decimal
	KilogramPrice *decimal.Decimal
	Units         *decimal.Decimal
	UnitPrice     *decimal.Decimal

	DeliveryLocation       *string
	ProductionObservations *string
	IsNewSketch            *bool
	SketchURL              *string

	// ReferenceCode solo se honra con el modo de edición manual activo.
	ReferenceCode *string
}

// touchesGenerator true si el parche toca algún campo del que depende el
// código de referencia.
func (p DetailPatch) touchesGenerator() bool {
	return p.ProductTypeID != nil || p.MaterialID != nil || p.Width != nil ||
		p.Length != nil || p.MeasureUnit != nil || p.Caliber != nil ||
		p.GussetsType != nil || p.FirstGusset != nil || p.SecondGusset != nil ||
		p.FlapType != nil || p.FlapSize != nil || p.Tape != nil || p.DieCutType != nil
}

// ApplyDetail aplica el parche al buffer de trabajo con las reglas de
// interacción entre campos: exclusividad kilos/unidades, reseteo de campos
// dependientes al volver a "ninguno", troquel forzado con fuelle lateral, color
// forzado para maíz y regeneración del código de referencia.
func (w *Wizard) ApplyDetail(p DetailPatch) error {
	if !w.onDetailStep() {
		return fmt.Errorf("el detalle solo se edita en un paso de detalle (paso actual: %d)", w.current)
	}
	d := w.buffer
	cfg := &d.Config

	if p.ProductTypeID != nil {
		cfg.ProductTypeID = *p.ProductTypeID
	}
	if p.MaterialID != nil {
		cfg.MaterialID = *p.MaterialID
	}
	if p.Width != nil {
		cfg.Width = *p.Width
	}
	if p.Length != nil {
		cfg.Length = *p.Length
	}
	if p.MeasureUnit != nil {
		cfg.MeasureUnit = *p.MeasureUnit
	}
	if p.Caliber != nil {
		cfg.Caliber = *p.Caliber
	}
	if p.RollerSize != nil {
		cfg.RollerSize = *p.RollerSize
	}

	if p.GussetsType != nil {
		cfg.GussetsType = *p.GussetsType
		if cfg.GussetsType == entity.GussetsNone {
			cfg.FirstGusset = decimal.Zero
			cfg.SecondGusset = decimal.Zero
			w.clearFieldErrors("firstGusset", "secondGusset")
		}
	}
	if p.FirstGusset != nil {
		cfg.FirstGusset = *p.FirstGusset
	}
	if p.SecondGusset != nil {
		cfg.SecondGusset = *p.SecondGusset
	}

	if p.FlapType != nil {
		cfg.FlapType = *p.FlapType
		if cfg.FlapType == entity.FlapNone {
			cfg.FlapSize = decimal.Zero
			w.clearFieldErrors("flapSize")
		}
	}
	if p.FlapSize != nil {
		cfg.FlapSize = *p.FlapSize
	}
	if p.Tape != nil {
		cfg.Tape = *p.Tape
	}
	// La cinta solo aplica con solapa volada.
	if cfg.FlapType != entity.FlapFlying && cfg.Tape != entity.TapeNone {
		cfg.Tape = entity.TapeNone
		w.clearFieldErrors("tape")
	}

	if p.DieCutType != nil && dieCutAllowed(*p.DieCutType, cfg.GussetsType) {
		cfg.DieCutType = *p.DieCutType
	}
	// Fuelle lateral fuerza camiseta y bloquea la elección manual; al salir del
	// fuelle lateral la camiseta deja de ser una opción válida.
	if cfg.GussetsType == entity.GussetsLateral {
		cfg.DieCutType = entity.DieCutCamiseta
	} else if cfg.DieCutType == entity.DieCutCamiseta {
		cfg.DieCutType = entity.DieCutNone
	}

	if p.SealingType != nil {
		cfg.SealingType = *p.SealingType
	}
	if p.FilmColor != nil {
		cfg.FilmColor = *p.FilmColor
	}
	// El material a base de maíz fuerza el color de película.
	if w.cat.IsCornMaterial(cfg.MaterialID) {
		cfg.FilmColor = entity.CornFilmColor
	}

	if p.AdditiveCount != nil {
		cfg.ResizeAdditives(*p.AdditiveCount)
	}
	for i, v := range p.Additives {
		if i >= 0 && i < len(cfg.Additives) {
			cfg.Additives[i] = v
		}
	}

	if p.HasPrint != nil {
		if *p.HasPrint {
			cfg.HasPrint = true
		} else {
			cfg.ClearPrint()
			d.IsNewSketch = false
			w.clearFieldErrors("dynasTreatyFaces", "pantonesQuantity", "pantonesCodes")
		}
	}
	if cfg.HasPrint {
		if p.DynasTreatyFaces != nil {
			n := *p.DynasTreatyFaces
			if n < 0 {
				n = 0
			}
			if n > 2 {
				n = 2
			}
			cfg.DynasTreatyFaces = n
		}
		if p.PantonesQuantity != nil {
			cfg.ResizePantones(*p.PantonesQuantity)
		}
		for i, v := range p.PantoneCodes {
			if i >= 0 && i < len(cfg.PantoneCodes) {
				cfg.PantoneCodes[i] = v
			}
		}
		if p.IsNewSketch != nil {
			d.IsNewSketch = *p.IsNewSketch
		}
		if p.SketchURL != nil {
			cfg.SketchURL = *p.SketchURL
		}
	}

	// Exclusividad kilos/unidades: escribir un par pone el otro en cero. Se
	// aplica en la escritura, no solo en la presentación.
	if p.Kilograms != nil || p.KilogramPrice != nil {
		if p.Kilograms != nil {
			d.Kilograms = *p.Kilograms
		}
		if p.KilogramPrice != nil {
			d.KilogramPrice = *p.KilogramPrice
		}
		d.Units = decimal.Zero
		d.UnitPrice = decimal.Zero
	}
	if p.Units != nil || p.UnitPrice != nil {
		if p.Units != nil {
			d.Units = *p.Units
		}
		if p.UnitPrice != nil {
			d.UnitPrice = *p.UnitPrice
		}
		d.Kilograms = decimal.Zero
		d.KilogramPrice = decimal.Zero
	}

	if p.DeliveryLocation != nil {
		d.DeliveryLocation = *p.DeliveryLocation
	}
	if p.ProductionObservations != nil {
		d.ProductionObservations = *p.ProductionObservations
	}

	if w.manualCode {
		if p.ReferenceCode != nil {
			cfg.ReferenceCode = *p.ReferenceCode
		}
	} else if p.touchesGenerator() {
		cfg.ReferenceCode = refcode.Generate(*cfg, w.cat)
	}
	return nil
}

// ClosingPatch cambios del paso final.
type ClosingPatch struct {
	PaymentMethod *entity.PaymentMethod
	PaymentTerm   *int
	Advance       *decimal.Decimal
	DeliveryDate  *time.Time
	Observations  *string
	HasIVA        *bool
}

// ApplyClosing aplica cambios del paso final. Pasar a contado limpia el plazo.
func (w *Wizard) ApplyClosing(p ClosingPatch) error {
	if w.current != w.TotalSteps() {
		return fmt.Errorf("el cierre solo se edita en el último paso (paso actual: %d)", w.current)
	}
	if p.PaymentMethod != nil {
		w.closing.Payment.Method = *p.PaymentMethod
		if w.closing.Payment.Method == entity.PaymentCash {
			w.closing.Payment.PaymentTerm = 0
			w.clearFieldErrors("paymentTerm")
		}
	}
	if p.PaymentTerm != nil {
		w.closing.Payment.PaymentTerm = *p.PaymentTerm
	}
	if p.Advance != nil {
		w.closing.Payment.Advance = *p.Advance
	}
	if p.DeliveryDate != nil {
		w.closing.DeliveryDate = *p.DeliveryDate
	}
	if p.Observations != nil {
		w.closing.Observations = *p.Observations
	}
	if p.HasIVA != nil {
		w.closing.HasIVA = *p.HasIVA
	}
	return nil
}

// clearFieldErrors elimina errores registrados de campos puntuales del paso
// actual (campos que dejaron de ser relevantes).
func (w *Wizard) clearFieldErrors(fields ...string) {
	errs, ok := w.stepErrors[w.current]
	if !ok {
		return
	}
	for _, f := range fields {
		delete(errs, f)
	}
	if !errs.HasErrors() {
		delete(w.stepErrors, w.current)
	}
}

func dieCutAllowed(d entity.DieCutType, g entity.GussetsType) bool {
	for _, allowed := range entity.AllowedDieCuts(g) {
		if allowed == d {
			return true
		}
	}
	return false
}
