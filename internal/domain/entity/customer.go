package entity

// Customer cliente de Beiplas. El NIT lleva 8 a 10 dígitos con dígito de
// verificación opcional como sufijo ("-d"). La unicidad de NIT, razón social y
// email se valida contra la colección cargada (el servicio de negocio la
// re-valida al persistir).
type Customer struct {
	ID          int
	NIT         string
	CompanyName string
	ContactName string
	Email       string
	Phone       string
	Location    string
	IsActive    bool
}

// Employee empleado que registra la orden de compra.
type Employee struct {
	ID       int
	Name     string
	Position string
	IsActive bool
}
