package restapi

import (
	"context"
	"net/http"

	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/repository"
)

// CatalogRepository recursos productTypes y materials.
type CatalogRepository struct {
	client *Client
}

var _ repository.CatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(client *Client) *CatalogRepository {
	return &CatalogRepository{client: client}
}

func (r *CatalogRepository) ProductTypes(ctx context.Context) ([]entity.ProductType, error) {
	var dtos []catalogItemDTO
	if err := r.client.do(ctx, http.MethodGet, "/productTypes", nil, &dtos); err != nil {
		return nil, err
	}
	items := make([]entity.ProductType, 0, len(dtos))
	for _, d := range dtos {
		items = append(items, entity.ProductType{ID: d.ID, Name: d.Name, IsActive: d.IsActive})
	}
	return items, nil
}

func (r *CatalogRepository) Materials(ctx context.Context) ([]entity.Material, error) {
	var dtos []catalogItemDTO
	if err := r.client.do(ctx, http.MethodGet, "/materials", nil, &dtos); err != nil {
		return nil, err
	}
	items := make([]entity.Material, 0, len(dtos))
	for _, d := range dtos {
		items = append(items, entity.Material{ID: d.ID, Name: d.Name, IsActive: d.IsActive})
	}
	return items, nil
}

// EmployeeRepository recurso employees (solo lectura).
type EmployeeRepository struct {
	client *Client
}

var _ repository.EmployeeRepository = (*EmployeeRepository)(nil)

func NewEmployeeRepository(client *Client) *EmployeeRepository {
	return &EmployeeRepository{client: client}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]*entity.Employee, error) {
	var dtos []employeeDTO
	if err := r.client.do(ctx, http.MethodGet, "/employees", nil, &dtos); err != nil {
		return nil, err
	}
	employees := make([]*entity.Employee, 0, len(dtos))
	for _, d := range dtos {
		employees = append(employees, &entity.Employee{
			ID: d.ID, Name: d.Name, Position: d.Position, IsActive: d.IsActive,
		})
	}
	return employees, nil
}
