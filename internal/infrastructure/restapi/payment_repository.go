package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/repository"
)

// PaymentRepository recurso payments. El pago es uno-a-uno con la orden y se
// crea inmediatamente después de ella, encadenando su id.
type PaymentRepository struct {
	client *Client
}

var _ repository.PaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository(client *Client) *PaymentRepository {
	return &PaymentRepository{client: client}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) (int, error) {
	var created idPayload
	if err := r.client.do(ctx, http.MethodPost, "/payments", toPaymentDTO(payment), &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	return r.client.do(ctx, http.MethodPut, fmt.Sprintf("/payments/%d", payment.ID), toPaymentDTO(payment), nil)
}
