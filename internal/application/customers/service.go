// Package customers casos de uso de clientes: CRUD contra el servicio de
// negocio con la validación de unicidad hecha en el cliente (el servicio la
// re-valida al persistir).
package customers

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/beiplas/nexpot/internal/domain"
	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/repository"
	"github.com/beiplas/nexpot/internal/domain/validate"
)

// Service casos de uso de clientes.
type Service struct {
	customers repository.CustomerRepository
	orders    repository.PurchaseOrderRepository
	log       zerolog.Logger
}

func NewService(
	customers repository.CustomerRepository,
	orders repository.PurchaseOrderRepository,
	log zerolog.Logger,
) *Service {
	return &Service{customers: customers, orders: orders, log: log}
}

// List clientes cargados del servicio de negocio.
func (s *Service) List(ctx context.Context) ([]*entity.Customer, error) {
	return s.customers.List(ctx)
}

// Get cliente por id.
func (s *Service) Get(ctx context.Context, id int) (*entity.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Create valida formato de NIT y unicidad (NIT, razón social, email, sin
// distinguir mayúsculas ni tildes) antes del POST.
func (s *Service) Create(ctx context.Context, c *entity.Customer) (int, validate.Errors, error) {
	existing, err := s.customers.List(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("cargar clientes para validar unicidad: %w", err)
	}
	if errs := validate.Customer(*c, existing); errs.HasErrors() {
		return 0, errs, nil
	}
	id, err := s.customers.Create(ctx, c)
	if err != nil {
		return 0, nil, fmt.Errorf("crear cliente: %w", err)
	}
	s.log.Info().Int("customer_id", id).Str("nit", c.NIT).Msg("cliente creado")
	return id, nil, nil
}

// Update igual que Create pero excluyendo el propio registro de la unicidad.
func (s *Service) Update(ctx context.Context, c *entity.Customer) (validate.Errors, error) {
	if c.ID == 0 {
		return nil, fmt.Errorf("%w: el cliente a actualizar no tiene id", domain.ErrInvalidInput)
	}
	existing, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar clientes para validar unicidad: %w", err)
	}
	if errs := validate.Customer(*c, existing); errs.HasErrors() {
		return errs, nil
	}
	if err := s.customers.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("actualizar cliente %d: %w", c.ID, err)
	}
	return nil, nil
}

// Delete rechaza el borrado si el cliente tiene órdenes de compra: las órdenes
// históricas deben seguir resolviendo a su cliente.
func (s *Service) Delete(ctx context.Context, id int) error {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return fmt.Errorf("cargar órdenes para validar dependencias: %w", err)
	}
	for _, o := range orders {
		if o.CustomerID == id {
			return fmt.Errorf("%w: el cliente tiene órdenes de compra", domain.ErrHasDependents)
		}
	}
	if err := s.customers.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar cliente %d: %w", id, err)
	}
	s.log.Info().Int("customer_id", id).Msg("cliente eliminado")
	return nil
}
