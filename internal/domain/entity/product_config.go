package entity

import "github.com/shopspring/decimal"

// MaxAdditives máximo de aditivos por configuración.
const MaxAdditives = 4

// MaxPantones máximo de códigos pantone por configuración.
const MaxPantones = 4

// ProductConfiguration configuración de producto de una línea de detalle o de
// una referencia guardada. ReferenceCode es el código legible derivado de los
// demás campos, salvo cuando la edición manual lo sobrescribe.
type ProductConfiguration struct {
	ProductTypeID int
	MaterialID    int

	Width       decimal.Decimal
	Length      decimal.Decimal
	MeasureUnit MeasureUnit
	Caliber     decimal.Decimal
	RollerSize  decimal.Decimal

	GussetsType  GussetsType
	FirstGusset  decimal.Decimal
	SecondGusset decimal.Decimal

	FlapType FlapType
	FlapSize decimal.Decimal
	Tape     TapeType

	DieCutType  DieCutType
	SealingType SealingType
	FilmColor   string

	Additives []string

	HasPrint         bool
	DynasTreatyFaces int
	PantonesQuantity int
	PantoneCodes     []string
	SketchURL        string

	ReferenceCode string
}

// ResizeAdditives ajusta la lista de aditivos a n casillas (0 a MaxAdditives)
// conservando los valores ya diligenciados.
func (c *ProductConfiguration) ResizeAdditives(n int) {
	c.Additives = resizeStrings(c.Additives, clamp(n, 0, MaxAdditives))
}

// ResizePantones ajusta la cantidad de pantones y su lista de códigos (0 a
// MaxPantones) conservando los códigos ya diligenciados.
func (c *ProductConfiguration) ResizePantones(n int) {
	n = clamp(n, 0, MaxPantones)
	c.PantonesQuantity = n
	c.PantoneCodes = resizeStrings(c.PantoneCodes, n)
}

// ClearPrint apaga la impresión y vacía todos sus campos dependientes.
func (c *ProductConfiguration) ClearPrint() {
	c.HasPrint = false
	c.DynasTreatyFaces = 0
	c.PantonesQuantity = 0
	c.PantoneCodes = nil
	c.SketchURL = ""
}

// Clone copia profunda (las listas no comparten memoria con el original).
func (c ProductConfiguration) Clone() ProductConfiguration {
	out := c
	if c.Additives != nil {
		out.Additives = append([]string(nil), c.Additives...)
	}
	if c.PantoneCodes != nil {
		out.PantoneCodes = append([]string(nil), c.PantoneCodes...)
	}
	return out
}

func resizeStrings(s []string, n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	copy(out, s)
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
