// Package wizardsession sesiones del asistente alojadas en el servidor. Cada
// sesión contiene una máquina de estados del asistente y serializa su acceso:
// el asistente en sí no es seguro para uso concurrente. Las sesiones viven solo
// en memoria y se descartan al enviar o cancelar.
package wizardsession

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/beiplas/nexpot/internal/application/catalogs"
	"github.com/beiplas/nexpot/internal/application/orders"
	"github.com/beiplas/nexpot/internal/domain"
	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/repository"
	"github.com/beiplas/nexpot/internal/domain/validate"
	"github.com/beiplas/nexpot/internal/domain/wizard"
)

// Session una sesión de asistente en curso.
type Session struct {
	ID      string
	Wizard  *wizard.Wizard
	Catalog entity.Catalogs

	mu       sync.Mutex
	inFlight bool
}

// Manager almacén de sesiones y orquestador del envío.
type Manager struct {
	loader     *catalogs.Loader
	orders     repository.PurchaseOrderRepository
	references repository.ReferenceRepository
	pipeline   *orders.Pipeline
	clock      validate.Clock
	log        zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(
	loader *catalogs.Loader,
	orderRepo repository.PurchaseOrderRepository,
	references repository.ReferenceRepository,
	pipeline *orders.Pipeline,
	clock validate.Clock,
	log zerolog.Logger,
) *Manager {
	return &Manager{
		loader:     loader,
		orders:     orderRepo,
		references: references,
		pipeline:   pipeline,
		clock:      clock,
		log:        log,
		sessions:   make(map[string]*Session),
	}
}

// Start crea una sesión de creación con los catálogos recién cargados.
func (m *Manager) Start(ctx context.Context) (*Session, error) {
	cat, err := m.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:      uuid.NewString(),
		Wizard:  wizard.New(cat, m.clock),
		Catalog: cat,
	}
	m.put(s)
	m.log.Info().Str("session_id", s.ID).Msg("sesión de asistente creada")
	return s, nil
}

// StartEdit crea una sesión de edición precargada con una orden existente. Una
// orden anulada no es editable.
func (m *Manager) StartEdit(ctx context.Context, orderID int) (*Session, error) {
	cat, err := m.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	order, err := m.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("cargar orden %d: %w", orderID, err)
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.WasAnnulled {
		return nil, domain.ErrOrderAnnulled
	}
	w, err := wizard.NewForEdit(cat, m.clock, order)
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:      uuid.NewString(),
		Wizard:  w,
		Catalog: cat,
	}
	m.put(s)
	m.log.Info().Str("session_id", s.ID).Int("order_id", orderID).Msg("sesión de edición creada")
	return s, nil
}

func (m *Manager) put(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
}

// Get la sesión por id, o ErrNotFound.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("sesión %s: %w", id, domain.ErrNotFound)
	}
	return s, nil
}

// Cancel descarta la sesión y todo su estado en memoria.
func (m *Manager) Cancel(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return fmt.Errorf("sesión %s: %w", id, domain.ErrNotFound)
	}
	delete(m.sessions, id)
	m.log.Info().Str("session_id", id).Msg("sesión cancelada")
	return nil
}

// With ejecuta fn con la sesión bloqueada. Serializa los accesos concurrentes
// de un mismo cliente (doble clic, pestañas duplicadas).
func (m *Manager) With(id string, fn func(*Session) error) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

// SelectReference carga una referencia guardada y la vuelca en el buffer del
// paso de detalle actual.
func (m *Manager) SelectReference(ctx context.Context, sessionID string, referenceID int) error {
	ref, err := m.references.GetByID(ctx, referenceID)
	if err != nil {
		return fmt.Errorf("cargar referencia %d: %w", referenceID, err)
	}
	if ref == nil {
		return fmt.Errorf("referencia %d: %w", referenceID, domain.ErrNotFound)
	}
	return m.With(sessionID, func(s *Session) error {
		return s.Wizard.SelectReference(*ref)
	})
}

// Submit valida el cierre, arma la orden y la envía por el pipeline. Solo puede
// haber un envío en curso por sesión; al completar con éxito la sesión se
// descarta.
func (m *Manager) Submit(ctx context.Context, sessionID string) (*orders.Result, validate.Errors, error) {
	s, err := m.Get(sessionID)
	if err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, nil, domain.ErrSubmitInFlight
	}
	if !s.Wizard.CanSubmit() {
		s.mu.Unlock()
		return nil, nil, fmt.Errorf("%w: el envío solo se habilita en el último paso", domain.ErrConflict)
	}
	if errs := s.Wizard.ValidateSubmit(); errs.HasErrors() {
		s.mu.Unlock()
		return nil, errs, nil
	}
	order := s.Wizard.BuildOrder()
	s.inFlight = true
	s.mu.Unlock()

	var res *orders.Result
	_, editing := s.Wizard.IsEditing()
	if editing {
		res, err = m.pipeline.Update(ctx, order)
	} else {
		res, err = m.pipeline.Create(ctx, order)
	}

	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()

	if err != nil {
		return nil, nil, err
	}
	// Envío exitoso: la sesión cumplió su ciclo.
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
	return res, nil, nil
}
