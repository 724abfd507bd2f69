package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/repository"
)

// ReferenceRepository recurso references (configuraciones de producto guardadas
// por cliente).
type ReferenceRepository struct {
	client *Client
}

var _ repository.ReferenceRepository = (*ReferenceRepository)(nil)

func NewReferenceRepository(client *Client) *ReferenceRepository {
	return &ReferenceRepository{client: client}
}

func (r *ReferenceRepository) ListByCustomer(ctx context.Context, customerID int) ([]*entity.Reference, error) {
	var dtos []referenceDTO
	path := fmt.Sprintf("/references?customer=%d", customerID)
	if err := r.client.do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	refs := make([]*entity.Reference, 0, len(dtos))
	for _, d := range dtos {
		refs = append(refs, d.toEntity())
	}
	return refs, nil
}

func (r *ReferenceRepository) GetByID(ctx context.Context, id int) (*entity.Reference, error) {
	var dto referenceDTO
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/references/%d", id), nil, &dto); err != nil {
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

func (r *ReferenceRepository) Create(ctx context.Context, ref *entity.Reference) (int, error) {
	var created idPayload
	if err := r.client.do(ctx, http.MethodPost, "/references", toReferenceDTO(ref), &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (r *ReferenceRepository) Update(ctx context.Context, ref *entity.Reference) error {
	return r.client.do(ctx, http.MethodPut, fmt.Sprintf("/references/%d", ref.ID), toReferenceDTO(ref), nil)
}

func (r *ReferenceRepository) Delete(ctx context.Context, id int) error {
	return r.client.do(ctx, http.MethodDelete, fmt.Sprintf("/references/%d", id), nil, nil)
}
