package entity

import "strings"

// ProductType tipo de producto del catálogo (tubular, semitubular, lámina,
// bolsa). El nombre decide qué campos del detalle aplican.
type ProductType struct {
	ID       int
	Name     string
	IsActive bool
}

// Material material del catálogo. El material a base de maíz fuerza el color
// de película.
type Material struct {
	ID       int
	Name     string
	IsActive bool
}

// CornFilmColor color de película forzado para el material de maíz.
const CornFilmColor = "NATURAL"

// Catalogs catálogos cargados del servicio de negocio, indexados por id. El
// comportamiento condicional del formulario se decide por el nombre del
// registro, no por el id: los ids varían entre ambientes.
type Catalogs struct {
	ProductTypes map[int]ProductType
	Materials    map[int]Material
}

// ProductTypeName nombre del tipo de producto, o "" si el id no resuelve.
func (c Catalogs) ProductTypeName(id int) string {
	return c.ProductTypes[id].Name
}

// MaterialName nombre del material, o "" si el id no resuelve.
func (c Catalogs) MaterialName(id int) string {
	return c.Materials[id].Name
}

// IsCornMaterial true si el material es el de maíz.
func (c Catalogs) IsCornMaterial(id int) bool {
	return normalizeName(c.MaterialName(id)) == "MAIZ"
}

// IsTubularKind tubulares y semitubulares: se venden por kilos y no llevan
// largo en el código de referencia.
func (c Catalogs) IsTubularKind(id int) bool {
	switch normalizeName(c.ProductTypeName(id)) {
	case "TUBULAR", "SEMITUBULAR", "SEMI-TUBULAR":
		return true
	}
	return false
}

// IsSheetKind láminas y bolsas: llevan largo y se venden por unidades.
func (c Catalogs) IsSheetKind(id int) bool {
	switch normalizeName(c.ProductTypeName(id)) {
	case "LAMINA", "BOLSA":
		return true
	}
	return false
}

// IsBagKind solo las bolsas llevan tipo de selle.
func (c Catalogs) IsBagKind(id int) bool {
	return normalizeName(c.ProductTypeName(id)) == "BOLSA"
}

var accentReplacer = strings.NewReplacer(
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "Ü", "U",
	"á", "A", "é", "E", "í", "I", "ó", "O", "ú", "U", "ü", "U",
)

// normalizeName mayúsculas sin tildes, para comparar nombres de catálogo.
func normalizeName(name string) string {
	return accentReplacer.Replace(strings.ToUpper(strings.TrimSpace(name)))
}
