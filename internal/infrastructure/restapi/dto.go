package restapi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/beiplas/nexpot/internal/domain/entity"
)

// Formas de intercambio del servicio de negocio. Los enums viajan como enteros
// salvo la unidad de medida, que viaja como texto ("CM"/"PULG").

type productConfigDTO struct {
	ProductType      int             `json:"productType"`
	Material         int             `json:"material"`
	Width            decimal.Decimal `json:"width"`
	Length           decimal.Decimal `json:"length"`
	MeasureUnit      string          `json:"measureUnit"`
	Caliber          decimal.Decimal `json:"caliber"`
	RollerSize       decimal.Decimal `json:"rollerSize"`
	GussetsType      int             `json:"gussetsType"`
	FirstGusset      decimal.Decimal `json:"firstGusset"`
	SecondGusset     decimal.Decimal `json:"secondGusset"`
	FlapType         int             `json:"flapType"`
	FlapSize         decimal.Decimal `json:"flapSize"`
	Tape             int             `json:"tape"`
	DieCutType       int             `json:"dieCutType"`
	SealingType      int             `json:"sealingType"`
	FilmColor        string          `json:"filmColor"`
	Additive         []string        `json:"additive"`
	HasPrint         bool            `json:"hasPrint"`
	DynasTreatyFaces int             `json:"dynasTreatyFaces"`
	PantonesQuantity int             `json:"pantonesQuantity"`
	PantonesCodes    []string        `json:"pantonesCodes"`
	SketchURL        string          `json:"sketchUrl"`
	Reference        string          `json:"reference"`
}

func toConfigDTO(c entity.ProductConfiguration) productConfigDTO {
	return productConfigDTO{
		ProductType:      c.ProductTypeID,
		Material:         c.MaterialID,
		Width:            c.Width,
		Length:           c.Length,
		MeasureUnit:      string(c.MeasureUnit),
		Caliber:          c.Caliber,
		RollerSize:       c.RollerSize,
		GussetsType:      int(c.GussetsType),
		FirstGusset:      c.FirstGusset,
		SecondGusset:     c.SecondGusset,
		FlapType:         int(c.FlapType),
		FlapSize:         c.FlapSize,
		Tape:             int(c.Tape),
		DieCutType:       int(c.DieCutType),
		SealingType:      int(c.SealingType),
		FilmColor:        c.FilmColor,
		Additive:         c.Additives,
		HasPrint:         c.HasPrint,
		DynasTreatyFaces: c.DynasTreatyFaces,
		PantonesQuantity: c.PantonesQuantity,
		PantonesCodes:    c.PantoneCodes,
		SketchURL:        c.SketchURL,
		Reference:        c.ReferenceCode,
	}
}

func (d productConfigDTO) toEntity() entity.ProductConfiguration {
	unit := entity.MeasureUnit(d.MeasureUnit)
	if unit == "" {
		unit = entity.UnitCentimeters
	}
	return entity.ProductConfiguration{
		ProductTypeID:    d.ProductType,
		MaterialID:       d.Material,
		Width:            d.Width,
		Length:           d.Length,
		MeasureUnit:      unit,
		Caliber:          d.Caliber,
		RollerSize:       d.RollerSize,
		GussetsType:      entity.GussetsType(d.GussetsType),
		FirstGusset:      d.FirstGusset,
		SecondGusset:     d.SecondGusset,
		FlapType:         entity.FlapType(d.FlapType),
		FlapSize:         d.FlapSize,
		Tape:             entity.TapeType(d.Tape),
		DieCutType:       entity.DieCutType(d.DieCutType),
		SealingType:      entity.SealingType(d.SealingType),
		FilmColor:        d.FilmColor,
		Additives:        d.Additive,
		HasPrint:         d.HasPrint,
		DynasTreatyFaces: d.DynasTreatyFaces,
		PantonesQuantity: d.PantonesQuantity,
		PantoneCodes:     d.PantonesCodes,
		SketchURL:        d.SketchURL,
		ReferenceCode:    d.Reference,
	}
}

type purchaseOrderDTO struct {
	ID           int             `json:"id,omitempty"`
	Customer     int             `json:"customer"`
	Employee     int             `json:"employee"`
	OrderDate    isoDate         `json:"orderDate,omitempty"`
	DeliveryDate isoDate         `json:"deliveryDate"`
	Observations string          `json:"observations"`
	HasIVA       bool            `json:"hasIva"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	IVA          decimal.Decimal `json:"iva"`
	Total        decimal.Decimal `json:"total"`
	WasAnnulled  bool            `json:"wasAnnulled,omitempty"`

	Payment *paymentDTO         `json:"payment,omitempty"`
	Details []purchaseDetailDTO `json:"details,omitempty"`
}

func toOrderDTO(o *entity.PurchaseOrder) purchaseOrderDTO {
	return purchaseOrderDTO{
		ID:           o.ID,
		Customer:     o.CustomerID,
		Employee:     o.EmployeeID,
		OrderDate:    isoDate(o.OrderDate),
		DeliveryDate: isoDate(o.DeliveryDate),
		Observations: o.Observations,
		HasIVA:       o.HasIVA,
		Subtotal:     o.Subtotal,
		IVA:          o.IVA,
		Total:        o.Total,
	}
}

func (d purchaseOrderDTO) toEntity() *entity.PurchaseOrder {
	o := &entity.PurchaseOrder{
		ID:           d.ID,
		CustomerID:   d.Customer,
		EmployeeID:   d.Employee,
		OrderDate:    time.Time(d.OrderDate),
		DeliveryDate: time.Time(d.DeliveryDate),
		Observations: d.Observations,
		HasIVA:       d.HasIVA,
		Subtotal:     d.Subtotal,
		IVA:          d.IVA,
		Total:        d.Total,
		WasAnnulled:  d.WasAnnulled,
	}
	if d.Payment != nil {
		o.Payment = d.Payment.toEntity()
	}
	for _, det := range d.Details {
		o.Details = append(o.Details, det.toEntity())
	}
	return o
}

type purchaseDetailDTO struct {
	ID            int `json:"id,omitempty"`
	PurchaseOrder int `json:"purchaseOrder"`
	productConfigDTO
	Kilograms              decimal.Decimal `json:"kilograms"`
	KilogramPrice          decimal.Decimal `json:"kilogramPrice"`
	Units                  decimal.Decimal `json:"units"`
	UnitPrice              decimal.Decimal `json:"unitPrice"`
	DeliveryLocation       string          `json:"deliveryLocation"`
	ProductionObservations string          `json:"productionObservations"`
	IsNewSketch            bool            `json:"isNewSketch"`
	WONumber               string          `json:"wONumber,omitempty"`
}

func toDetailDTO(d *entity.PurchaseOrderDetail) purchaseDetailDTO {
	return purchaseDetailDTO{
		ID:                     d.ID,
		PurchaseOrder:          d.PurchaseOrderID,
		productConfigDTO:       toConfigDTO(d.Config),
		Kilograms:              d.Kilograms,
		KilogramPrice:          d.KilogramPrice,
		Units:                  d.Units,
		UnitPrice:              d.UnitPrice,
		DeliveryLocation:       d.DeliveryLocation,
		ProductionObservations: d.ProductionObservations,
		IsNewSketch:            d.IsNewSketch,
	}
}

func (d purchaseDetailDTO) toEntity() *entity.PurchaseOrderDetail {
	return &entity.PurchaseOrderDetail{
		ID:                     d.ID,
		PurchaseOrderID:        d.PurchaseOrder,
		Config:                 d.productConfigDTO.toEntity(),
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

type paymentDTO struct {
	ID            int             `json:"id,omitempty"`
	PurchaseOrder int             `json:"purchaseOrder"`
	PaymentMethod int             `json:"paymentMethod"`
	PaymentTerm   int             `json:"paymentTerm"`
	Advance       decimal.Decimal `json:"advance"`
}

func toPaymentDTO(p *entity.Payment) paymentDTO {
	return paymentDTO{
		ID:            p.ID,
		PurchaseOrder: p.PurchaseOrderID,
		PaymentMethod: int(p.Method),
		PaymentTerm:   p.PaymentTerm,
		Advance:       p.Advance,
	}
}

func (d paymentDTO) toEntity() entity.Payment {
	return entity.Payment{
		ID:              d.ID,
		PurchaseOrderID: d.PurchaseOrder,
		Method:          entity.PaymentMethod(d.PaymentMethod),
		PaymentTerm:     d.PaymentTerm,
		Advance:         d.Advance,
	}
}

type customerDTO struct {
	ID          int    `json:"id,omitempty"`
	NIT         string `json:"nit"`
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	IsActive    bool   `json:"isActive"`
}

func toCustomerDTO(c *entity.Customer) customerDTO {
	return customerDTO{
		ID:          c.ID,
		NIT:         c.NIT,
		CompanyName: c.CompanyName,
		ContactName: c.ContactName,
		Email:       c.Email,
		Phone:       c.Phone,
		Location:    c.Location,
		IsActive:    c.IsActive,
	}
}

func (d customerDTO) toEntity() *entity.Customer {
	return &entity.Customer{
		ID:          d.ID,
		NIT:         d.NIT,
		CompanyName: d.CompanyName,
		ContactName: d.ContactName,
		Email:       d.Email,
		Phone:       d.Phone,
		Location:    d.Location,
		IsActive:    d.IsActive,
	}
}

type referenceDTO struct {
	ID       int `json:"id,omitempty"`
	Customer int `json:"customer"`
	productConfigDTO
	IsActive bool `json:"isActive"`
}

func toReferenceDTO(r *entity.Reference) referenceDTO {
	return referenceDTO{
		ID:               r.ID,
		Customer:         r.CustomerID,
		productConfigDTO: toConfigDTO(r.Config),
		IsActive:         r.IsActive,
	}
}

func (d referenceDTO) toEntity() *entity.Reference {
	return &entity.Reference{
		ID:         d.ID,
		CustomerID: d.Customer,
		Config:     d.productConfigDTO.toEntity(),
		IsActive:   d.IsActive,
	}
}

type catalogItemDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

type employeeDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	IsActive bool   `json:"isActive"`
}
