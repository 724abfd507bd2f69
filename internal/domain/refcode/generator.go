// Package refcode: generación del código de referencia canónico a partir de una
// configuración de producto. Fórmula de concatenación en el orden estricto que
// usan las referencias persistidas; cualquier cambio rompe la comparación de
// cadenas contra el histórico.
package refcode

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/beiplas/nexpot/internal/domain/entity"
)

// Generate construye el código de referencia legible para la configuración.
// Determinista y sin estado: seguro de invocar en cada cambio de campo.
// Devuelve "" si el tipo de producto o el material no resuelven en los catálogos
// (catálogos sin cargar, o id 0 sentinel).
//
// Formato: "{TIPO} {MATERIAL} {ancho}{fuelles}{x largo}{solapa + unidad} CAL {calibre} {sufijo}"
// Ejemplo: "BOLSA MAÍZ 20 + F5 x 30 CM CAL 2 CAMISETA".
func Generate(cfg entity.ProductConfiguration, cat entity.Catalogs) string {
	productTypeName := strings.ToUpper(cat.ProductTypeName(cfg.ProductTypeID))
	materialName := strings.ToUpper(cat.MaterialName(cfg.MaterialID))
	if productTypeName == "" || materialName == "" {
		return ""
	}

	// Sufijo tras el ancho: fuelles laterales (F por cada fuelle con valor).
	var afterWidth string
	if cfg.GussetsType == entity.GussetsLateral {
		if cfg.FirstGusset.IsPositive() {
			afterWidth += " + F" + dim(cfg.FirstGusset)
		}
		if cfg.SecondGusset.IsPositive() {
			afterWidth += " + F" + dim(cfg.SecondGusset)
		}
	}

	// Sufijo tras el largo: fuelle de fondo (FF), solapa (S) y unidad de medida.
	// El fuelle de fondo usa el valor del primer fuelle; así lo hace el
	// histórico de referencias y se conserva tal cual.
	var afterLength string
	if cfg.GussetsType == entity.GussetsBottom && cfg.FirstGusset.IsPositive() {
		afterLength += " + FF" + dim(cfg.FirstGusset)
	}
	if cfg.FlapType != entity.FlapNone && cfg.FlapSize.IsPositive() {
		afterLength += " + S" + dim(cfg.FlapSize)
	}
	if cfg.MeasureUnit == entity.UnitInches {
		afterLength += " PULG"
	} else {
		afterLength += " CM"
	}

	// Sufijo final único, por prioridad (cadena else-if, no chequeos independientes).
	var afterAll string
	switch {
	case cfg.Tape == entity.TapeResellable:
		afterAll = "CINTA RES"
	case cfg.Tape == entity.TapeSecurity:
		afterAll = "CINTA SEG"
	case cfg.DieCutType == entity.DieCutRinon:
		afterAll = "RIÑON"
	case cfg.DieCutType == entity.DieCutCamiseta:
		afterAll = "CAMISETA"
	case cfg.DieCutType == entity.DieCutPerforaciones:
		afterAll = "PERFORACIONES"
	}

	// Los tubulares no llevan largo.
	var lengthSegment string
	if !cat.IsTubularKind(cfg.ProductTypeID) {
		lengthSegment = " x " + dim(cfg.Length)
	}

	var b strings.Builder
	b.WriteString(productTypeName)
	b.WriteString(" ")
	b.WriteString(materialName)
	b.WriteString(" ")
	b.WriteString(dim(cfg.Width))
	b.WriteString(afterWidth)
	b.WriteString(lengthSegment)
	b.WriteString(afterLength)
	if cfg.Caliber.IsPositive() {
		// afterAll se concatena aunque esté vacío: el espacio final resultante
		// está presente en todas las referencias persistidas.
		b.WriteString(" CAL " + dim(cfg.Caliber) + " " + afterAll)
	}
	return b.String()
}

// dim formatea una dimensión sin ceros a la derecha ("20", "2.5").
func dim(d decimal.Decimal) string {
	return d.String()
}

// DependentFields campos cuyo cambio obliga a regenerar el código de referencia
// (salvo que el modo de edición manual esté activo).
var DependentFields = []string{
	"productType", "material", "width", "length", "measureUnit", "caliber",
	"gussetsType", "firstGusset", "secondGusset", "flapType", "flapSize",
	"tape", "dieCutType",
}
