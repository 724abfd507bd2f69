// Package dto formas de entrada y salida de la API propia. Los parches del
// asistente usan punteros: un campo ausente en el JSON es un campo no tocado.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/wizard"
)

// ErrorResponse error genérico de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrorsResponse errores de validación campo → mensaje.
type FieldErrorsResponse struct {
	Errors map[string]string `json:"errors"`
}

// HeaderPatchRequest parche del paso 1.
type HeaderPatchRequest struct {
	CustomerID      *int `json:"customer"`
	EmployeeID      *int `json:"employee"`
	OrderedQuantity *int `json:"orderedQuantity"`
}

// ToPatch convierte al parche de dominio.
func (r HeaderPatchRequest) ToPatch() wizard.HeaderPatch {
	return wizard.HeaderPatch{
		CustomerID:      r.CustomerID,
		EmployeeID:      r.EmployeeID,
		OrderedQuantity: r.OrderedQuantity,
	}
}

// DetailPatchRequest parche de un paso de detalle. Los enums viajan como
// enteros; la unidad de medida como texto ("CM"/"PULG").
type DetailPatchRequest struct {
	ProductTypeID *int `json:"productType"`
	MaterialID    *int `json:"material"`

	Width       *decimal.Decimal `json:"width"`
	Length      *decimal.Decimal `json:"length"`
	MeasureUnit *string          `json:"measureUnit"`
	Caliber     *decimal.Decimal `json:"caliber"`
	RollerSize  *decimal.Decimal `json:"rollerSize"`

	GussetsType  *int             `json:"gussetsType"`
	FirstGusset  *decimal.Decimal `json:"firstGusset"`
	SecondGusset *decimal.Decimal `json:"secondGusset"`

	FlapType *int             `json:"flapType"`
	FlapSize *decimal.Decimal `json:"flapSize"`
	Tape     *int             `json:"tape"`

	DieCutType  *int    `json:"dieCutType"`
	SealingType *int    `json:"sealingType"`
	FilmColor   *string `json:"filmColor"`

	AdditiveCount *int           `json:"additiveCount"`
	Additives     map[int]string `json:"additives"`

	HasPrint         *bool          `json:"hasPrint"`
	DynasTreatyFaces *int           `json:"dynasTreatyFaces"`
	PantonesQuantity *int           `json:"pantonesQuantity"`
	PantoneCodes     map[int]string `json:"pantonesCodes"`

	Kilograms     *decimal.Decimal `json:"kilograms"`
	KilogramPrice *decimal.Decimal `json:"kilogramPrice"`
	Units         *decimal.Decimal `json:"units"`
	UnitPrice     *decimal.Decimal `json:"unitPrice"`

	DeliveryLocation       *string `json:"deliveryLocation"`
	ProductionObservations *string `json:"productionObservations"`
	IsNewSketch            *bool   `json:"isNewSketch"`
	SketchURL              *string `json:"sketchUrl"`

	ReferenceCode *string `json:"referenceCode"`
}

// ToPatch convierte al parche de dominio, tipando los enums.
func (r DetailPatchRequest) ToPatch() wizard.DetailPatch {
	p := wizard.DetailPatch{
		ProductTypeID:          r.ProductTypeID,
		MaterialID:             r.MaterialID,
		Width:                  r.Width,
		Length:                 r.Length,
		Caliber:                r.Caliber,
		RollerSize:             r.RollerSize,
		FirstGusset:            r.FirstGusset,
		SecondGusset:           r.SecondGusset,
		FlapSize:               r.FlapSize,
		FilmColor:              r.FilmColor,
		AdditiveCount:          r.AdditiveCount,
		Additives:              r.Additives,
		HasPrint:               r.HasPrint,
		DynasTreatyFaces:       r.DynasTreatyFaces,
		PantonesQuantity:       r.PantonesQuantity,
		PantoneCodes:           r.PantoneCodes,
		Kilograms:              r.Kilograms,
		KilogramPrice:          r.KilogramPrice,
		Units:                  r.Units,
		UnitPrice:              r.UnitPrice,
		DeliveryLocation:       r.DeliveryLocation,
		ProductionObservations: r.ProductionObservations,
		IsNewSketch:            r.IsNewSketch,
		SketchURL:              r.SketchURL,
		ReferenceCode:          r.ReferenceCode,
	}
	if r.MeasureUnit != nil {
		unit := entity.MeasureUnit(*r.MeasureUnit)
		p.MeasureUnit = &unit
	}
	if r.GussetsType != nil {
		g := entity.GussetsType(*r.GussetsType)
		p.GussetsType = &g
	}
	if r.FlapType != nil {
		f := entity.FlapType(*r.FlapType)
		p.FlapType = &f
	}
	if r.Tape != nil {
		t := entity.TapeType(*r.Tape)
		p.Tape = &t
	}
	if r.DieCutType != nil {
		d := entity.DieCutType(*r.DieCutType)
		p.DieCutType = &d
	}
	if r.SealingType != nil {
		s := entity.SealingType(*r.SealingType)
		p.SealingType = &s
	}
	return p
}

// ClosingPatchRequest parche del paso final.
type ClosingPatchRequest struct {
	PaymentMethod *int             `json:"paymentMethod"`
	PaymentTerm   *int             `json:"paymentTerm"`
	Advance       *decimal.Decimal `json:"advance"`
	DeliveryDate  *string          `json:"deliveryDate"` // YYYY-MM-DD
	Observations  *string          `json:"observations"`
	HasIVA        *bool            `json:"hasIva"`
}

// ToPatch convierte al parche de dominio. Una fecha que no parsea se entrega
// como fecha cero: el validador de cierre la reporta como obligatoria.
func (r ClosingPatchRequest) ToPatch() wizard.ClosingPatch {
	p := wizard.ClosingPatch{
		PaymentTerm:  r.PaymentTerm,
		Advance:      r.Advance,
		Observations: r.Observations,
		HasIVA:       r.HasIVA,
	}
	if r.PaymentMethod != nil {
		m := entity.PaymentMethod(*r.PaymentMethod)
		p.PaymentMethod = &m
	}
	if r.DeliveryDate != nil {
		t, err := time.Parse("2006-01-02", *r.DeliveryDate)
		if err != nil {
			t = time.Time{}
		}
		p.DeliveryDate = &t
	}
	return p
}

// SessionResponse estado observable de una sesión del asistente.
type SessionResponse struct {
	ID             string            `json:"id"`
	CurrentStep    int               `json:"currentStep"`
	TotalSteps     int               `json:"totalSteps"`
	EditingOrderID int               `json:"editingOrderId,omitempty"`
	ManualCode     bool              `json:"manualCode"`
	CanSubmit      bool              `json:"canSubmit"`
	ErrorSteps     map[int]bool      `json:"errorSteps,omitempty"`
	StepErrors     map[string]string `json:"stepErrors,omitempty"`

	Header  HeaderResponse   `json:"header"`
	Detail  *DetailResponse  `json:"detail,omitempty"`
	Closing *ClosingResponse `json:"closing,omitempty"`
}

// HeaderResponse cabecera actual.
type HeaderResponse struct {
	CustomerID      int `json:"customer"`
	EmployeeID      int `json:"employee"`
	OrderedQuantity int `json:"orderedQuantity"`
}

// DetailResponse buffer del paso de detalle actual.
type DetailResponse struct {
	ProductTypeID int             `json:"productType"`
	MaterialID    int             `json:"material"`
	Width         decimal.Decimal `json:"width"`
	Length        decimal.Decimal `json:"length"`
	MeasureUnit   string          `json:"measureUnit"`
	Caliber       decimal.Decimal `json:"caliber"`
	RollerSize    decimal.Decimal `json:"rollerSize"`

	GussetsType  int             `json:"gussetsType"`
	FirstGusset  decimal.Decimal `json:"firstGusset"`
	SecondGusset decimal.Decimal `json:"secondGusset"`

	FlapType int             `json:"flapType"`
	FlapSize decimal.Decimal `json:"flapSize"`
	Tape     int             `json:"tape"`

	DieCutType  int    `json:"dieCutType"`
	SealingType int    `json:"sealingType"`
	FilmColor   string `json:"filmColor"`

	Additives []string `json:"additives"`

	HasPrint         bool     `json:"hasPrint"`
	DynasTreatyFaces int      `json:"dynasTreatyFaces"`
	PantonesQuantity int      `json:"pantonesQuantity"`
	PantoneCodes     []string `json:"pantonesCodes"`
	SketchURL        string   `json:"sketchUrl"`

	ReferenceCode string `json:"referenceCode"`

	Kilograms     decimal.Decimal `json:"kilograms"`
	KilogramPrice decimal.Decimal `json:"kilogramPrice"`
	Units         decimal.Decimal `json:"units"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`

	DeliveryLocation       string `json:"deliveryLocation"`
	ProductionObservations string `json:"productionObservations"`
	IsNewSketch            bool   `json:"isNewSketch"`
	WONumber               string `json:"woNumber,omitempty"`
}

// ClosingResponse cierre actual con el resumen financiero calculado.
type ClosingResponse struct {
	PaymentMethod int             `json:"paymentMethod"`
	PaymentTerm   int             `json:"paymentTerm"`
	Advance       decimal.Decimal `json:"advance"`
	DeliveryDate  string          `json:"deliveryDate,omitempty"`
	Observations  string          `json:"observations"`
	HasIVA        bool            `json:"hasIva"`

	Subtotal decimal.Decimal `json:"subtotal"`
	IVA      decimal.Decimal `json:"iva"`
	Total    decimal.Decimal `json:"total"`
	Debt     decimal.Decimal `json:"debt"`
}

// SubmitResponse ids producidos por un envío exitoso.
type SubmitResponse struct {
	OrderID         int   `json:"orderId"`
	PaymentID       int   `json:"paymentId"`
	DetailIDs       []int `json:"detailIds,omitempty"`
	FailedDetailIDs []int `json:"failedDetailIds,omitempty"`
}

// CustomerRequest alta o edición de un cliente.
type CustomerRequest struct {
	NIT         string `json:"nit"`
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	IsActive    bool   `json:"isActive"`
}

// ToEntity convierte al modelo de dominio.
func (r CustomerRequest) ToEntity(id int) *entity.Customer {
	return &entity.Customer{
		ID:          id,
		NIT:         r.NIT,
		CompanyName: r.CompanyName,
		ContactName: r.ContactName,
		Email:       r.Email,
		Phone:       r.Phone,
		Location:    r.Location,
		IsActive:    r.IsActive,
	}
}

// CodePreviewRequest configuración mínima para previsualizar el código de
// referencia sin sesión.
type CodePreviewRequest struct {
	ProductTypeID int              `json:"productType"`
	MaterialID    int              `json:"material"`
	Width         decimal.Decimal  `json:"width"`
	Length        decimal.Decimal  `json:"length"`
	MeasureUnit   string           `json:"measureUnit"`
	Caliber       decimal.Decimal  `json:"caliber"`
	GussetsType   int              `json:"gussetsType"`
	FirstGusset   decimal.Decimal  `json:"firstGusset"`
	SecondGusset  decimal.Decimal  `json:"secondGusset"`
	FlapType      int              `json:"flapType"`
	FlapSize      decimal.Decimal  `json:"flapSize"`
	Tape          int              `json:"tape"`
	DieCutType    int              `json:"dieCutType"`
}

// ToConfig convierte a la configuración que consume el generador.
func (r CodePreviewRequest) ToConfig() entity.ProductConfiguration {
	unit := entity.MeasureUnit(r.MeasureUnit)
	if unit == "" {
		unit = entity.UnitCentimeters
	}
	return entity.ProductConfiguration{
		ProductTypeID: r.ProductTypeID,
		MaterialID:    r.MaterialID,
		Width:         r.Width,
		Length:        r.Length,
		MeasureUnit:   unit,
		Caliber:       r.Caliber,
		GussetsType:   entity.GussetsType(r.GussetsType),
		FirstGusset:   r.FirstGusset,
		SecondGusset:  r.SecondGusset,
		FlapType:      entity.FlapType(r.FlapType),
		FlapSize:      r.FlapSize,
		Tape:          entity.TapeType(r.Tape),
		DieCutType:    entity.DieCutType(r.DieCutType),
	}
}

// CodePreviewResponse código generado.
type CodePreviewResponse struct {
	ReferenceCode string `json:"referenceCode"`
}

// FromDetail arma la respuesta de detalle a partir del buffer.
func FromDetail(d *entity.PurchaseOrderDetail) *DetailResponse {
	if d == nil {
		return nil
	}
	c := d.Config
	return &DetailResponse{
		ProductTypeID:          c.ProductTypeID,
		MaterialID:             c.MaterialID,
		Width:                  c.Width,
		Length:                 c.Length,
		MeasureUnit:            string(c.MeasureUnit),
		Caliber:                c.Caliber,
		RollerSize:             c.RollerSize,
		GussetsType:            int(c.GussetsType),
		FirstGusset:            c.FirstGusset,
		SecondGusset:           c.SecondGusset,
		FlapType:               int(c.FlapType),
		FlapSize:               c.FlapSize,
		Tape:                   int(c.Tape),
		DieCutType:             int(c.DieCutType),
		SealingType:            int(c.SealingType),
		FilmColor:              c.FilmColor,
		Additives:              c.Additives,
		HasPrint:               c.HasPrint,
		DynasTreatyFaces:       c.DynasTreatyFaces,
		PantonesQuantity:       c.PantonesQuantity,
		PantoneCodes:           c.PantoneCodes,
		SketchURL:              c.SketchURL,
		ReferenceCode:          c.ReferenceCode,
		Kilograms:              d.Kilograms,
		KilogramPrice:          d.KilogramPrice,
		Units:                  d.Units,
		UnitPrice:              d.UnitPrice,
		DeliveryLocation:       d.DeliveryLocation,
		ProductionObservations: d.ProductionObservations,
		IsNewSketch:            d.IsNewSketch,
		WONumber:               d.WONumber,
	}
}
