package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/beiplas/nexpot/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// TestComputeTotals subtotal = Σ kilos*precioKilo + unidades*precioUnidad;
// iva = 19 % solo con hasIva; total = subtotal + iva.
func TestComputeTotals(t *testing.T) {
	details := []*entity.PurchaseOrderDetail{
		{Kilograms: dec("10"), KilogramPrice: dec("1000")},
		{Units: dec("5"), UnitPrice: dec("2000")},
	}

	o := &entity.PurchaseOrder{HasIVA: true}
	o.ComputeTotals(details)
	assert.True(t, o.Subtotal.Equal(dec("20000")), "subtotal = %s", o.Subtotal)
	assert.True(t, o.IVA.Equal(dec("3800")), "iva = %s", o.IVA)
	assert.True(t, o.Total.Equal(dec("23800")), "total = %s", o.Total)

	o = &entity.PurchaseOrder{HasIVA: false}
	o.ComputeTotals(details)
	assert.True(t, o.IVA.IsZero())
	assert.True(t, o.Total.Equal(dec("20000")))
}

// TestDebt saldo = total - anticipo.
func TestDebt(t *testing.T) {
	o := &entity.PurchaseOrder{
		HasIVA:  true,
		Payment: entity.Payment{Advance: dec("5000")},
	}
	o.ComputeTotals([]*entity.PurchaseOrderDetail{
		{Units: dec("10"), UnitPrice: dec("2000")},
	})
	assert.True(t, o.Debt().Equal(dec("18800")), "saldo = %s", o.Debt())
}

// TestCatalogs_NombresNormalizados la lógica condicional por tipo de producto
// resuelve por nombre sin distinguir mayúsculas ni tildes.
func TestCatalogs_NombresNormalizados(t *testing.T) {
	cat := entity.Catalogs{
		ProductTypes: map[int]entity.ProductType{
			1: {ID: 1, Name: "Tubular"},
			2: {ID: 2, Name: "Semi-tubular"},
			3: {ID: 3, Name: "Lámina"},
			4: {ID: 4, Name: "bolsa"},
		},
		Materials: map[int]entity.Material{
			1: {ID: 1, Name: "Maíz"},
			2: {ID: 2, Name: "Alta densidad"},
		},
	}

	assert.True(t, cat.IsTubularKind(1))
	assert.True(t, cat.IsTubularKind(2))
	assert.False(t, cat.IsTubularKind(4))

	assert.True(t, cat.IsSheetKind(3))
	assert.True(t, cat.IsSheetKind(4))
	assert.False(t, cat.IsSheetKind(1))

	assert.True(t, cat.IsBagKind(4))
	assert.False(t, cat.IsBagKind(3))

	assert.True(t, cat.IsCornMaterial(1))
	assert.False(t, cat.IsCornMaterial(2))
	assert.False(t, cat.IsCornMaterial(99), "id sin resolver no es maíz")
}

// TestAllowedDieCuts con fuelle lateral solo camiseta; con cualquier otro la
// camiseta queda excluida.
func TestAllowedDieCuts(t *testing.T) {
	lateral := entity.AllowedDieCuts(entity.GussetsLateral)
	assert.Equal(t, []entity.DieCutType{entity.DieCutCamiseta}, lateral)

	rest := entity.AllowedDieCuts(entity.GussetsNone)
	assert.NotContains(t, rest, entity.DieCutCamiseta)
	assert.Contains(t, rest, entity.DieCutRinon)
	assert.Len(t, rest, 8)
}

// TestResizePantones conserva los códigos diligenciados y respeta el máximo.
func TestResizePantones(t *testing.T) {
	var cfg entity.ProductConfiguration
	cfg.ResizePantones(3)
	assert.Equal(t, 3, cfg.PantonesQuantity)
	assert.Len(t, cfg.PantoneCodes, 3)

	cfg.PantoneCodes[0] = "485 C"
	cfg.ResizePantones(2)
	assert.Equal(t, "485 C", cfg.PantoneCodes[0])
	assert.Len(t, cfg.PantoneCodes, 2)

	cfg.ResizePantones(9)
	assert.Equal(t, entity.MaxPantones, cfg.PantonesQuantity)
}

// TestClone las listas del clon no comparten memoria con el original.
func TestClone(t *testing.T) {
	cfg := entity.ProductConfiguration{
		Additives:    []string{"UV"},
		PantoneCodes: []string{"485 C"},
	}
	clone := cfg.Clone()
	clone.Additives[0] = "AB"
	clone.PantoneCodes[0] = "300 C"

	assert.Equal(t, "UV", cfg.Additives[0])
	assert.Equal(t, "485 C", cfg.PantoneCodes[0])
}
