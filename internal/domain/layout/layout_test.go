package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/layout"
)

func testCatalogs() entity.Catalogs {
	return entity.Catalogs{
		ProductTypes: map[int]entity.ProductType{
			1: {ID: 1, Name: "Tubular"},
			4: {ID: 4, Name: "Bolsa"},
		},
		Materials: map[int]entity.Material{
			1: {ID: 1, Name: "Alta densidad"},
			2: {ID: 2, Name: "Maíz"},
		},
	}
}

func fieldByID(rows []layout.Row, id string) (layout.Field, bool) {
	for _, r := range rows {
		for _, f := range r.Fields {
			if f.ID == id {
				return f, true
			}
		}
	}
	return layout.Field{}, false
}

func TestRows_TubularSinLargoNiSelle(t *testing.T) {
	rows := layout.Rows(layout.Input{ProductTypeID: 1, MaterialID: 1}, testCatalogs())

	_, hasLength := fieldByID(rows, "length")
	_, hasSealing := fieldByID(rows, "sealingType")
	assert.False(t, hasLength)
	assert.False(t, hasSealing)
}

func TestRows_BolsaConLargoYSelle(t *testing.T) {
	rows := layout.Rows(layout.Input{ProductTypeID: 4, MaterialID: 1}, testCatalogs())

	length, ok := fieldByID(rows, "length")
	require.True(t, ok)
	assert.True(t, length.Required)
	_, hasSealing := fieldByID(rows, "sealingType")
	assert.True(t, hasSealing)
}

// TestRows_FuelleLateralForzaCamiseta el troquel aparece deshabilitado y con
// camiseta como valor forzado; la solapa no pide tamaño.
func TestRows_FuelleLateralForzaCamiseta(t *testing.T) {
	rows := layout.Rows(layout.Input{
		ProductTypeID: 4, MaterialID: 1,
		GussetsType: entity.GussetsLateral,
		FlapType:    entity.FlapInternal,
	}, testCatalogs())

	die, ok := fieldByID(rows, "dieCutType")
	require.True(t, ok)
	assert.True(t, die.Disabled)
	assert.Equal(t, "CAMISETA", die.Forced)

	_, hasFlapSize := fieldByID(rows, "flapSize")
	assert.False(t, hasFlapSize)
}

func TestRows_MaterialMaizForzaColor(t *testing.T) {
	rows := layout.Rows(layout.Input{ProductTypeID: 4, MaterialID: 2}, testCatalogs())

	film, ok := fieldByID(rows, "filmColor")
	require.True(t, ok)
	assert.True(t, film.Disabled)
	assert.Equal(t, entity.CornFilmColor, film.Forced)
}

func TestRows_CintaSoloConSolapaVolada(t *testing.T) {
	rows := layout.Rows(layout.Input{ProductTypeID: 4, MaterialID: 1, FlapType: entity.FlapInternal}, testCatalogs())
	_, hasTape := fieldByID(rows, "tape")
	assert.False(t, hasTape)

	rows = layout.Rows(layout.Input{ProductTypeID: 4, MaterialID: 1, FlapType: entity.FlapFlying}, testCatalogs())
	_, hasTape = fieldByID(rows, "tape")
	assert.True(t, hasTape)
}

func TestRows_ImpresionDespliegaCampos(t *testing.T) {
	rows := layout.Rows(layout.Input{ProductTypeID: 4, MaterialID: 1}, testCatalogs())
	_, hasPantones := fieldByID(rows, "pantonesQuantity")
	assert.False(t, hasPantones)

	rows = layout.Rows(layout.Input{ProductTypeID: 4, MaterialID: 1, HasPrint: true}, testCatalogs())
	_, hasPantones = fieldByID(rows, "pantonesQuantity")
	assert.True(t, hasPantones)
}
