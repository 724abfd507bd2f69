// Package validate validadores puros de campo para los formularios del
// asistente (cabecera, detalle, cierre) y de clientes. Nunca lanzan: devuelven
// un mensaje para el usuario o cadena vacía, y el llamador agrega por paso.
package validate

import (
	"fmt"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/pkg/nit"
)

// Errors mapa campo → mensaje de una pasada de validación.
type Errors map[string]string

// HasErrors indica si hay al menos un mensaje.
func (e Errors) HasErrors() bool { return len(e) > 0 }

func (e Errors) add(field, msg string) {
	if msg != "" {
		e[field] = msg
	}
}

// RequiredPositive mensaje si el valor no es mayor que cero.
func RequiredPositive(label string, v decimal.Decimal) string {
	if !v.IsPositive() {
		return fmt.Sprintf("%s es obligatorio y debe ser mayor que cero", label)
	}
	return ""
}

// NonNegative mensaje si el valor es negativo (cero permitido).
func NonNegative(label string, v decimal.Decimal) string {
	if v.IsNegative() {
		return fmt.Sprintf("%s no puede ser negativo", label)
	}
	return ""
}

// DeliveryDate valida el piso de 15 días sobre la hora de negocio (Colombia,
// UTC-5) a granularidad de medianoche. El mensaje incluye la fecha mínima.
func DeliveryDate(d time.Time, clock Clock) string {
	if d.IsZero() {
		return "la fecha de entrega es obligatoria"
	}
	min := MinDeliveryDate(clock.Now(), entity.MinDeliveryDays)
	if Midnight(d).Before(min) {
		return fmt.Sprintf("la fecha de entrega debe ser igual o posterior al %s", min.Format("02/01/2006"))
	}
	return ""
}

// Header valida el paso 1 del asistente.
func Header(customerID, employeeID, orderedQuantity int) Errors {
	errs := Errors{}
	if customerID <= 0 {
		errs.add("customer", "seleccione un cliente")
	}
	if employeeID <= 0 {
		errs.add("employee", "seleccione un empleado")
	}
	if orderedQuantity < 1 {
		errs.add("orderedQuantity", "la cantidad de productos debe ser al menos 1")
	}
	return errs
}

// Detail valida el conjunto completo de campos de una línea de detalle según el
// tipo de producto y los selectores condicionales vigentes.
func Detail(d *entity.PurchaseOrderDetail, cat entity.Catalogs) Errors {
	errs := Errors{}
	cfg := d.Config

	if cfg.ProductTypeID <= 0 || cat.ProductTypeName(cfg.ProductTypeID) == "" {
		errs.add("productType", "seleccione un tipo de producto")
	}
	if cfg.MaterialID <= 0 || cat.MaterialName(cfg.MaterialID) == "" {
		errs.add("material", "seleccione un material")
	}

	errs.add("width", RequiredPositive("el ancho", cfg.Width))
	errs.add("caliber", RequiredPositive("el calibre", cfg.Caliber))
	errs.add("rollerSize", RequiredPositive("el tamaño del rodillo", cfg.RollerSize))

	if cat.IsSheetKind(cfg.ProductTypeID) {
		errs.add("length", RequiredPositive("el largo", cfg.Length))
	}
	if cfg.GussetsType != entity.GussetsNone {
		errs.add("firstGusset", RequiredPositive("el primer fuelle", cfg.FirstGusset))
	}
	if cfg.FlapType != entity.FlapNone && cfg.GussetsType != entity.GussetsLateral {
		errs.add("flapSize", RequiredPositive("el tamaño de la solapa", cfg.FlapSize))
	}

	// Cantidades según el tipo: tubulares por kilos, lámina y bolsa por unidades.
	if cat.IsTubularKind(cfg.ProductTypeID) {
		errs.add("kilograms", RequiredPositive("los kilogramos", d.Kilograms))
		errs.add("kilogramPrice", RequiredPositive("el precio por kilogramo", d.KilogramPrice))
	}
	if cat.IsSheetKind(cfg.ProductTypeID) {
		errs.add("units", RequiredPositive("las unidades", d.Units))
		errs.add("unitPrice", RequiredPositive("el precio por unidad", d.UnitPrice))
	}

	if cfg.HasPrint {
		if cfg.PantonesQuantity < 1 {
			errs.add("pantonesQuantity", "la cantidad de pantones es obligatoria y debe ser mayor que cero")
		} else {
			errs.add("pantonesCodes", PantoneCodes(cfg.PantoneCodes, cfg.PantonesQuantity))
		}
	}

	if d.DeliveryLocation == "" {
		errs.add("deliveryLocation", "el lugar de entrega es obligatorio")
	}
	return errs
}

// PantoneCodes exige un código no vacío por cada pantone declarado. Vacío
// parcial y vacío total son errores distintos: el parcial señala los faltantes.
func PantoneCodes(codes []string, quantity int) string {
	if quantity <= 0 {
		return ""
	}
	empty := 0
	for i := 0; i < quantity; i++ {
		if i >= len(codes) || codes[i] == "" {
			empty++
		}
	}
	switch {
	case empty == 0:
		return ""
	case empty == quantity:
		return "ingrese los códigos pantone"
	default:
		return fmt.Sprintf("faltan %d códigos pantone por diligenciar", empty)
	}
}

// Closing valida el paso final: pago, fecha de entrega y anticipo.
func Closing(p entity.Payment, deliveryDate time.Time, clock Clock) Errors {
	errs := Errors{}
	if p.Method == entity.PaymentCredit && p.PaymentTerm <= 0 {
		errs.add("paymentTerm", "el plazo de pago es obligatorio para crédito y debe ser mayor que cero")
	}
	errs.add("advance", NonNegative("el anticipo", p.Advance))
	errs.add("deliveryDate", DeliveryDate(deliveryDate, clock))
	return errs
}

// Customer valida un cliente contra la colección cargada (unicidad de NIT,
// razón social y email, excluyendo el registro en edición).
func Customer(c entity.Customer, existing []*entity.Customer) Errors {
	errs := Errors{}
	if err := nit.ValidateFormat(c.NIT); err != nil {
		errs.add("nit", "el NIT debe tener de 8 a 10 dígitos, con dígito de verificación opcional")
	}
	if len([]rune(c.CompanyName)) < 3 {
		errs.add("companyName", "la razón social debe tener al menos 3 caracteres")
	}
	if c.Location == "" {
		errs.add("location", "la ubicación es obligatoria")
	}
	for _, other := range existing {
		if other.ID == c.ID {
			continue
		}
		if Fold(other.NIT) == Fold(c.NIT) {
			errs.add("nit", "ya existe un cliente con ese NIT")
		}
		if Fold(other.CompanyName) == Fold(c.CompanyName) {
			errs.add("companyName", "ya existe un cliente con esa razón social")
		}
		if c.Email != "" && Fold(other.Email) == Fold(c.Email) {
			errs.add("email", "ya existe un cliente con ese email")
		}
	}
	return errs
}

// UniqueName verifica unicidad de un nombre de catálogo (posición, material,
// tipo de producto) sin distinguir mayúsculas ni tildes, excluyendo excludeID.
func UniqueName(name string, existing map[int]string, excludeID int) string {
	folded := Fold(name)
	for id, other := range existing {
		if id == excludeID {
			continue
		}
		if Fold(other) == folded {
			return "ya existe un registro con ese nombre"
		}
	}
	return ""
}

// quita marcas diacríticas (NFD + eliminación de Mn + NFC).
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza para comparación: sin tildes y con case folding Unicode.
// "Maíz", "MAIZ" y "maiz" comparan iguales.
func Fold(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}
