package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/repository"
)

// DetailRepository recurso poDetails. Los detalles se crean uno a uno en
// secuencia; el pipeline de envío decide la compensación ante fallas.
type DetailRepository struct {
	client *Client
}

var _ repository.DetailRepository = (*DetailRepository)(nil)

func NewDetailRepository(client *Client) *DetailRepository {
	return &DetailRepository{client: client}
}

func (r *DetailRepository) Create(ctx context.Context, detail *entity.PurchaseOrderDetail) (int, error) {
	var created idPayload
	if err := r.client.do(ctx, http.MethodPost, "/poDetails", toDetailDTO(detail), &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (r *DetailRepository) Update(ctx context.Context, detail *entity.PurchaseOrderDetail) error {
	return r.client.do(ctx, http.MethodPut, fmt.Sprintf("/poDetails/%d", detail.ID), toDetailDTO(detail), nil)
}

// Delete borrado duro (204 sin cuerpo).
func (r *DetailRepository) Delete(ctx context.Context, id int) error {
	return r.client.do(ctx, http.MethodDelete, fmt.Sprintf("/poDetails/%d", id), nil, nil)
}
