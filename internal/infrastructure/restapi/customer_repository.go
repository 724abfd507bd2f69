package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/repository"
)

// CustomerRepository recurso customers.
type CustomerRepository struct {
	client *Client
}

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(client *Client) *CustomerRepository {
	return &CustomerRepository{client: client}
}

func (r *CustomerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	var dtos []customerDTO
	if err := r.client.do(ctx, http.MethodGet, "/customers", nil, &dtos); err != nil {
		return nil, err
	}
	customers := make([]*entity.Customer, 0, len(dtos))
	for _, d := range dtos {
		customers = append(customers, d.toEntity())
	}
	return customers, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int) (*entity.Customer, error) {
	var dto customerDTO
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil, &dto); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if dto.ID == 0 {
		return nil, nil
	}
	return dto.toEntity(), nil
}

func (r *CustomerRepository) Create(ctx context.Context, customer *entity.Customer) (int, error) {
	var created idPayload
	if err := r.client.do(ctx, http.MethodPost, "/customers", toCustomerDTO(customer), &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.client.do(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", customer.ID), toCustomerDTO(customer), nil)
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	return r.client.do(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil, nil)
}
