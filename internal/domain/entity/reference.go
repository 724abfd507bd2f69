package entity

// Reference configuración de producto con nombre, persistida y asociada a un
// cliente. Al seleccionarla en un detalle del asistente se copian sus campos de
// configuración; los campos propios de la línea (cantidades, precios, lugar de
// entrega) no se tocan.
type Reference struct {
	ID         int
	CustomerID int
	Config     ProductConfiguration
	IsActive   bool
}
