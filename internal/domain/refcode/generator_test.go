package refcode_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/refcode"
)

// Catálogos de prueba con los cuatro tipos de producto y dos materiales.
func testCatalogs() entity.Catalogs {
	return entity.Catalogs{
		ProductTypes: map[int]entity.ProductType{
			1: {ID: 1, Name: "Tubular", IsActive: true},
			2: {ID: 2, Name: "Semitubular", IsActive: true},
			3: {ID: 3, Name: "Lámina", IsActive: true},
			4: {ID: 4, Name: "Bolsa", IsActive: true},
		},
		Materials: map[int]entity.Material{
			1: {ID: 1, Name: "Alta densidad", IsActive: true},
			2: {ID: 2, Name: "Maíz", IsActive: true},
		},
	}
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// TestGenerate_VectorBolsaMaiz fija el vector completo de referencia: bolsa de
// maíz con fuelle lateral, camiseta forzada y calibre. Si alguien altera el
// orden de concatenación o el formato de las dimensiones, este test falla.
func TestGenerate_VectorBolsaMaiz(t *testing.T) {
	cfg := entity.ProductConfiguration{
		ProductTypeID: 4,
		MaterialID:    2,
		Width:         dec("20"),
		Length:        dec("30"),
		MeasureUnit:   entity.UnitCentimeters,
		Caliber:       dec("2"),
		GussetsType:   entity.GussetsLateral,
		FirstGusset:   dec("5"),
		DieCutType:    entity.DieCutCamiseta,
	}

	got := refcode.Generate(cfg, testCatalogs())
	assert.Equal(t, "BOLSA MAÍZ 20 + F5 x 30 CM CAL 2 CAMISETA", got)
}

// TestGenerate_Determinista mismo input, mismo output (función pura, sin contadores).
func TestGenerate_Determinista(t *testing.T) {
	cfg := entity.ProductConfiguration{
		ProductTypeID: 1, MaterialID: 1,
		Width: dec("40"), Caliber: dec("3"), MeasureUnit: entity.UnitCentimeters,
	}
	cat := testCatalogs()
	assert.Equal(t, refcode.Generate(cfg, cat), refcode.Generate(cfg, cat))
}

// TestGenerate_CatalogoSinResolver si el tipo de producto o el material no
// existen en el catálogo (ids 0 o catálogo sin cargar), el resultado es "".
func TestGenerate_CatalogoSinResolver(t *testing.T) {
	cat := testCatalogs()

	cfg := entity.ProductConfiguration{ProductTypeID: 0, MaterialID: 1, Width: dec("10")}
	assert.Empty(t, refcode.Generate(cfg, cat))

	cfg = entity.ProductConfiguration{ProductTypeID: 4, MaterialID: 99, Width: dec("10")}
	assert.Empty(t, refcode.Generate(cfg, cat))

	cfg = entity.ProductConfiguration{ProductTypeID: 4, MaterialID: 1, Width: dec("10")}
	assert.Empty(t, refcode.Generate(cfg, entity.Catalogs{}))
}

// TestGenerate_FuelleLateralNuncaFF con fuelle lateral los dos fuelles van como
// "F{n}" tras el ancho y jamás aparece "FF".
func TestGenerate_FuelleLateralNuncaFF(t *testing.T) {
	cfg := entity.ProductConfiguration{
		ProductTypeID: 4, MaterialID: 1,
		Width: dec("25"), Length: dec("35"), MeasureUnit: entity.UnitCentimeters,
		GussetsType: entity.GussetsLateral,
		FirstGusset: dec("4"), SecondGusset: dec("6"),
	}
	got := refcode.Generate(cfg, testCatalogs())

	assert.NotContains(t, got, "FF")
	assert.Contains(t, got, "+ F4")
	assert.Contains(t, got, "+ F6")
}

// TestGenerate_FuelleFondoSoloFF con fuelle de fondo el único token de fuelle es
// "FF{n}" después del largo, usando el valor del primer fuelle (comportamiento
// histórico que se conserva tal cual).
func TestGenerate_FuelleFondoSoloFF(t *testing.T) {
	cfg := entity.ProductConfiguration{
		ProductTypeID: 4, MaterialID: 1,
		Width: dec("25"), Length: dec("35"), MeasureUnit: entity.UnitCentimeters,
		GussetsType: entity.GussetsBottom,
		FirstGusset: dec("7"),
	}
	got := refcode.Generate(cfg, testCatalogs())

	assert.Contains(t, got, "+ FF7")
	// Ningún "F7" suelto proveniente de la lógica de ancho: el único F7 es el del FF7.
	assert.Equal(t, 1, strings.Count(got, "F7"))
	assert.Equal(t, "BOLSA ALTA DENSIDAD 25 x 35 + FF7 CM", got)
}

// TestGenerate_TubularesSinLargo tubular y semitubular no llevan el segmento " x ".
func TestGenerate_TubularesSinLargo(t *testing.T) {
	cat := testCatalogs()
	for _, ptID := range []int{1, 2} {
		cfg := entity.ProductConfiguration{
			ProductTypeID: ptID, MaterialID: 1,
			Width: dec("50"), Length: dec("90"), MeasureUnit: entity.UnitCentimeters,
		}
		assert.NotContains(t, refcode.Generate(cfg, cat), " x ",
			"tipo de producto %d no debe llevar largo", ptID)
	}
	for _, ptID := range []int{3, 4} {
		cfg := entity.ProductConfiguration{
			ProductTypeID: ptID, MaterialID: 1,
			Width: dec("50"), Length: dec("90"), MeasureUnit: entity.UnitCentimeters,
		}
		assert.Contains(t, refcode.Generate(cfg, cat), " x 90",
			"tipo de producto %d debe llevar largo", ptID)
	}
}

// TestGenerate_SolapaYUnidad la solapa con tamaño agrega " + S{n}" y la unidad
// cierra siempre el segmento de dimensiones.
func TestGenerate_SolapaYUnidad(t *testing.T) {
	cfg := entity.ProductConfiguration{
		ProductTypeID: 3, MaterialID: 1,
		Width: dec("15"), Length: dec("20"), MeasureUnit: entity.UnitInches,
		FlapType: entity.FlapInternal, FlapSize: dec("3"),
	}
	got := refcode.Generate(cfg, testCatalogs())
	assert.Equal(t, "LÁMINA ALTA DENSIDAD 15 x 20 + S3 PULG", got)
}

// TestGenerate_SufijoFinalPorPrioridad la cinta resellable gana sobre la de
// seguridad y sobre el troquel; solo aplica la primera regla que coincida.
func TestGenerate_SufijoFinalPorPrioridad(t *testing.T) {
	base := entity.ProductConfiguration{
		ProductTypeID: 4, MaterialID: 1,
		Width: dec("10"), Length: dec("10"), MeasureUnit: entity.UnitCentimeters,
		Caliber: dec("1.5"),
	}
	cat := testCatalogs()

	cfg := base
	cfg.Tape = entity.TapeResellable
	cfg.DieCutType = entity.DieCutRinon
	assert.True(t, strings.HasSuffix(refcode.Generate(cfg, cat), "CAL 1.5 CINTA RES"))

	cfg = base
	cfg.Tape = entity.TapeSecurity
	assert.True(t, strings.HasSuffix(refcode.Generate(cfg, cat), "CAL 1.5 CINTA SEG"))

	cfg = base
	cfg.DieCutType = entity.DieCutRinon
	assert.True(t, strings.HasSuffix(refcode.Generate(cfg, cat), "CAL 1.5 RIÑON"))

	cfg = base
	cfg.DieCutType = entity.DieCutPerforaciones
	assert.True(t, strings.HasSuffix(refcode.Generate(cfg, cat), "CAL 1.5 PERFORACIONES"))
}

// TestGenerate_EspacioFinalConSufijoVacio con calibre y sin cinta ni troquel
// relevante el código termina en espacio. Es el formato de las referencias ya
// persistidas: se conserva byte a byte.
func TestGenerate_EspacioFinalConSufijoVacio(t *testing.T) {
	cfg := entity.ProductConfiguration{
		ProductTypeID: 1, MaterialID: 1,
		Width: dec("30"), MeasureUnit: entity.UnitCentimeters,
		Caliber: dec("2"),
	}
	got := refcode.Generate(cfg, testCatalogs())
	require.True(t, strings.HasSuffix(got, "CAL 2 "), "got %q", got)
}

// TestGenerate_SinCalibreSinSegmentoCAL calibre cero no agrega el segmento CAL.
func TestGenerate_SinCalibreSinSegmentoCAL(t *testing.T) {
	cfg := entity.ProductConfiguration{
		ProductTypeID: 1, MaterialID: 1,
		Width: dec("30"), MeasureUnit: entity.UnitCentimeters,
	}
	got := refcode.Generate(cfg, testCatalogs())
	assert.Equal(t, "TUBULAR ALTA DENSIDAD 30 CM", got)
}

// TestGenerate_DimensionesSinCerosDerecha "2.50" se imprime "2.5" y "20.00" "20".
func TestGenerate_DimensionesSinCerosDerecha(t *testing.T) {
	cfg := entity.ProductConfiguration{
		ProductTypeID: 1, MaterialID: 1,
		Width: dec("20.00"), MeasureUnit: entity.UnitCentimeters,
		Caliber: dec("2.50"),
	}
	got := refcode.Generate(cfg, testCatalogs())
	assert.Contains(t, got, " 20 ")
	assert.Contains(t, got, "CAL 2.5 ")
}
