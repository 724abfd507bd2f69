// Package repository puertos de salida hacia el servicio de negocio. La
// implementación concreta habla REST; para pruebas se inyectan dobles.
package repository

import (
	"context"

	"github.com/beiplas/nexpot/internal/domain/entity"
)

// PurchaseOrderRepository recurso purchaseOrders.
type PurchaseOrderRepository interface {
	List(ctx context.Context) ([]*entity.PurchaseOrder, error)
	GetByID(ctx context.Context, id int) (*entity.PurchaseOrder, error)
	// Create envía la cabecera con el subtotal calculado por el cliente y
	// devuelve el id asignado.
	Create(ctx context.Context, order *entity.PurchaseOrder) (int, error)
	Update(ctx context.Context, order *entity.PurchaseOrder) error
	// Annul anulación suave: la orden queda marcada, no se borra.
	Annul(ctx context.Context, id int) error
}

// PaymentRepository recurso payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) (int, error)
	Update(ctx context.Context, payment *entity.Payment) error
}

// DetailRepository recurso poDetails.
type DetailRepository interface {
	Create(ctx context.Context, detail *entity.PurchaseOrderDetail) (int, error)
	Update(ctx context.Context, detail *entity.PurchaseOrderDetail) error
	Delete(ctx context.Context, id int) error
}

// CustomerRepository recurso customers.
type CustomerRepository interface {
	List(ctx context.Context) ([]*entity.Customer, error)
	GetByID(ctx context.Context, id int) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) (int, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int) error
}

// ReferenceRepository recurso references.
type ReferenceRepository interface {
	ListByCustomer(ctx context.Context, customerID int) ([]*entity.Reference, error)
	GetByID(ctx context.Context, id int) (*entity.Reference, error)
	Create(ctx context.Context, ref *entity.Reference) (int, error)
	Update(ctx context.Context, ref *entity.Reference) error
	Delete(ctx context.Context, id int) error
}

// EmployeeRepository recurso employees.
type EmployeeRepository interface {
	List(ctx context.Context) ([]*entity.Employee, error)
}

// CatalogRepository recursos productTypes y materials.
type CatalogRepository interface {
	ProductTypes(ctx context.Context) ([]entity.ProductType, error)
	Materials(ctx context.Context) ([]entity.Material, error)
}
