package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/repository"
)

// PurchaseOrderRepository recurso purchaseOrders del servicio de negocio.
type PurchaseOrderRepository struct {
	client *Client
}

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepository)(nil)

func NewPurchaseOrderRepository(client *Client) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{client: client}
}

func (r *PurchaseOrderRepository) List(ctx context.Context) ([]*entity.PurchaseOrder, error) {
	var dtos []purchaseOrderDTO
	if err := r.client.do(ctx, http.MethodGet, "/purchaseOrders", nil, &dtos); err != nil {
		return nil, err
	}
	orders := make([]*entity.PurchaseOrder, 0, len(dtos))
	for _, d := range dtos {
		orders = append(orders, d.toEntity())
	}
	return orders, nil
}

func (r *PurchaseOrderRepository) GetByID(ctx context.Context, id int) (*entity.PurchaseOrder, error) {
	var dto purchaseOrderDTO
	if err := r.client.do(ctx, http.MethodGet, fmt.Sprintf("/purchaseOrders/%d", id), nil, &dto); err != nil {
		// Un 404 del servicio es una orden inexistente, no una falla upstream.
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

func (r *PurchaseOrderRepository) Create(ctx context.Context, order *entity.PurchaseOrder) (int, error) {
	var created idPayload
	if err := r.client.do(ctx, http.MethodPost, "/purchaseOrders", toOrderDTO(order), &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (r *PurchaseOrderRepository) Update(ctx context.Context, order *entity.PurchaseOrder) error {
	return r.client.do(ctx, http.MethodPut, fmt.Sprintf("/purchaseOrders/%d", order.ID), toOrderDTO(order), nil)
}

// Annul anulación suave: el DELETE de purchaseOrders no borra, marca la orden y
// responde 200 con sobre (a diferencia de los borrados duros, que responden 204).
func (r *PurchaseOrderRepository) Annul(ctx context.Context, id int) error {
	return r.client.do(ctx, http.MethodDelete, fmt.Sprintf("/purchaseOrders/%d", id), nil, nil)
}
