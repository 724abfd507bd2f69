// Package layout descriptor declarativo del formulario de detalle: una lista
// ordenada de filas de campos calculada a partir de los selectores que cambian
// la forma del formulario. La lógica condicional queda testeable sin ninguna
// capa de presentación.
package layout

import "github.com/beiplas/nexpot/internal/domain/entity"

// Field un campo del formulario con su estado calculado.
type Field struct {
	ID       string
	Label    string
	Required bool
	// Disabled el campo se muestra pero no admite edición manual (valor forzado).
	Disabled bool
	// Forced valor impuesto por otra selección ("" si no aplica).
	Forced string
}

// Row fila del formulario: campos que se presentan juntos.
type Row struct {
	Title  string
	Fields []Field
}

// Input selectores que alteran la forma del formulario de detalle.
type Input struct {
	ProductTypeID int
	MaterialID    int
	GussetsType   entity.GussetsType
	FlapType      entity.FlapType
	HasPrint      bool
}

// Rows calcula el descriptor de filas para el estado dado. Función pura: el
// renderizador genérico la consume tal cual.
func Rows(in Input, cat entity.Catalogs) []Row {
	sheet := cat.IsSheetKind(in.ProductTypeID)
	bag := cat.IsBagKind(in.ProductTypeID)
	corn := cat.IsCornMaterial(in.MaterialID)
	lateral := in.GussetsType == entity.GussetsLateral

	rows := []Row{
		{Title: "Producto", Fields: []Field{
			{ID: "productType", Label: "Tipo de producto", Required: true},
			{ID: "material", Label: "Material", Required: true},
			filmColorField(corn),
		}},
	}

	dims := Row{Title: "Dimensiones", Fields: []Field{
		{ID: "width", Label: "Ancho", Required: true},
	}}
	if sheet {
		dims.Fields = append(dims.Fields, Field{ID: "length", Label: "Largo", Required: true})
	}
	dims.Fields = append(dims.Fields,
		Field{ID: "measureUnit", Label: "Unidad de medida", Required: true},
		Field{ID: "caliber", Label: "Calibre", Required: true},
		Field{ID: "rollerSize", Label: "Rodillo", Required: true},
	)
	rows = append(rows, dims)

	finish := Row{Title: "Acabados", Fields: []Field{
		{ID: "gussetsType", Label: "Tipo de fuelle"},
	}}
	if in.GussetsType != entity.GussetsNone {
		finish.Fields = append(finish.Fields,
			Field{ID: "firstGusset", Label: "Primer fuelle", Required: true},
			Field{ID: "secondGusset", Label: "Segundo fuelle"},
		)
	}
	finish.Fields = append(finish.Fields, Field{ID: "flapType", Label: "Tipo de solapa"})
	if in.FlapType != entity.FlapNone && !lateral {
		finish.Fields = append(finish.Fields, Field{ID: "flapSize", Label: "Tamaño de solapa", Required: true})
	}
	if in.FlapType == entity.FlapFlying {
		finish.Fields = append(finish.Fields, Field{ID: "tape", Label: "Cinta"})
	}
	finish.Fields = append(finish.Fields, dieCutField(lateral))
	if bag {
		finish.Fields = append(finish.Fields, Field{ID: "sealingType", Label: "Tipo de selle"})
	}
	rows = append(rows, finish)

	rows = append(rows, Row{Title: "Aditivos", Fields: []Field{
		{ID: "additiveCount", Label: "Cantidad de aditivos"},
		{ID: "additives", Label: "Aditivos"},
	}})

	print := Row{Title: "Impresión", Fields: []Field{
		{ID: "hasPrint", Label: "Lleva impresión"},
	}}
	if in.HasPrint {
		print.Fields = append(print.Fields,
			Field{ID: "dynasTreatyFaces", Label: "Caras tratadas", Required: true},
			Field{ID: "pantonesQuantity", Label: "Cantidad de pantones", Required: true},
			Field{ID: "pantonesCodes", Label: "Códigos pantone", Required: true},
			Field{ID: "isNewSketch", Label: "Arte nuevo"},
			Field{ID: "sketchURL", Label: "Arte"},
		)
	}
	rows = append(rows, print)

	return rows
}

func filmColorField(corn bool) Field {
	f := Field{ID: "filmColor", Label: "Color de película"}
	if corn {
		f.Disabled = true
		f.Forced = entity.CornFilmColor
	}
	return f
}

func dieCutField(lateral bool) Field {
	f := Field{ID: "dieCutType", Label: "Tipo de troquel"}
	if lateral {
		// Con fuelle lateral el troquel queda forzado a camiseta.
		f.Disabled = true
		f.Forced = entity.DieCutCamiseta.String()
	}
	return f
}
