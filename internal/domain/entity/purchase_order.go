package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// IVARate tarifa de IVA vigente en Colombia (19 %).
var IVARate = decimal.NewFromFloat(0.19)

// MinDeliveryDays días mínimos entre la fecha de negocio y la fecha de entrega.
const MinDeliveryDays = 15

// PurchaseOrder cabecera de una orden de compra. OrderDate la asigna el sistema
// y es inmutable; WasAnnulled es la anulación suave, irreversible desde la
// aplicación.
type PurchaseOrder struct {
	ID           int
	CustomerID   int
	EmployeeID   int
	OrderDate    time.Time
	DeliveryDate time.Time
	Observations string
	HasIVA       bool

	Subtotal decimal.Decimal
	IVA      decimal.Decimal
	Total    decimal.Decimal

	WasAnnulled bool

	Payment Payment
	Details []*PurchaseOrderDetail
}

// PurchaseOrderDetail línea de una orden: configuración de producto más campos
// de la línea. Kilos/precio-kilo y unidades/precio-unidad son mutuamente
// excluyentes: escribir un par pone el otro en cero.
type PurchaseOrderDetail struct {
	ID              int
	PurchaseOrderID int

	Config ProductConfiguration

	Kilograms     decimal.Decimal
	KilogramPrice decimal.Decimal
	Units         decimal.Decimal
	UnitPrice     decimal.Decimal

	DeliveryLocation       string
	ProductionObservations string
	IsNewSketch            bool   // solo con impresión
	WONumber               string // orden de trabajo, la asigna producción (solo lectura)
}

// LineTotal valor de la línea: kilos*precioKilo + unidades*precioUnidad
// (por exclusividad, solo un sumando es distinto de cero).
func (d *PurchaseOrderDetail) LineTotal() decimal.Decimal {
	return d.Kilograms.Mul(d.KilogramPrice).Add(d.Units.Mul(d.UnitPrice))
}

// Payment pago uno-a-uno de la orden. PaymentTerm (días) solo aplica a crédito.
type Payment struct {
	ID              int
	PurchaseOrderID int
	Method          PaymentMethod
	PaymentTerm     int
	Advance         decimal.Decimal
}

// Subtotal suma de los totales de línea de todos los detalles.
func Subtotal(details []*PurchaseOrderDetail) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range details {
		sum = sum.Add(d.LineTotal())
	}
	return sum
}

// ComputeTotals recalcula subtotal, IVA y total a partir de los detalles.
// Invariante: iva = hasIVA ? subtotal*0.19 : 0; total = subtotal + iva.
func (o *PurchaseOrder) ComputeTotals(details []*PurchaseOrderDetail) {
	o.Subtotal = Subtotal(details)
	if o.HasIVA {
		o.IVA = o.Subtotal.Mul(IVARate)
	} else {
		o.IVA = decimal.Zero
	}
	o.Total = o.Subtotal.Add(o.IVA)
}

// Debt saldo pendiente: total menos el anticipo del pago.
func (o *PurchaseOrder) Debt() decimal.Decimal {
	return o.Total.Sub(o.Payment.Advance)
}
