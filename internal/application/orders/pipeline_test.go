package orders_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beiplas/nexpot/internal/application/orders"
	"github.com/beiplas/nexpot/internal/domain"
	"github.com/beiplas/nexpot/internal/domain/entity"
	"github.com/beiplas/nexpot/internal/domain/validate"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ── dobles de los puertos ─────────────────────────────────────────────────────

type fakeOrderRepo struct {
	nextID    int
	createErr error
	updateErr error
	annulErr  error
	annulled  []int
	updated   []*entity.PurchaseOrder
	byID      map[int]*entity.PurchaseOrder
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]*entity.PurchaseOrder, error) { return nil, nil }
func (f *fakeOrderRepo) GetByID(ctx context.Context, id int) (*entity.PurchaseOrder, error) {
	if o, ok := f.byID[id]; ok {
		return o, nil
	}
	return nil, nil
}
func (f *fakeOrderRepo) Create(ctx context.Context, o *entity.PurchaseOrder) (int, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.nextID++
	return f.nextID, nil
}
func (f *fakeOrderRepo) Update(ctx context.Context, o *entity.PurchaseOrder) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, o)
	return nil
}
func (f *fakeOrderRepo) Annul(ctx context.Context, id int) error {
	if f.annulErr != nil {
		return f.annulErr
	}
	f.annulled = append(f.annulled, id)
	return nil
}

type fakePaymentRepo struct {
	createErr error
	created   []*entity.Payment
	updated   []*entity.Payment
}

func (f *fakePaymentRepo) Create(ctx context.Context, p *entity.Payment) (int, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, p)
	return 100 + len(f.created), nil
}
func (f *fakePaymentRepo) Update(ctx context.Context, p *entity.Payment) error {
	f.updated = append(f.updated, p)
	return nil
}

type fakeDetailRepo struct {
	calls       int
	failAtCall  int // 0 = nunca falla (creación)
	failUpdates map[int]bool
	created     []*entity.PurchaseOrderDetail
	updated     []int
}

func (f *fakeDetailRepo) Create(ctx context.Context, d *entity.PurchaseOrderDetail) (int, error) {
	f.calls++
	if f.failAtCall != 0 && f.calls == f.failAtCall {
		return 0, errors.New("el servicio de negocio rechazó el detalle")
	}
	f.created = append(f.created, d)
	return 200 + f.calls, nil
}
func (f *fakeDetailRepo) Update(ctx context.Context, d *entity.PurchaseOrderDetail) error {
	if f.failUpdates[d.ID] {
		return errors.New("falla de red")
	}
	f.updated = append(f.updated, d.ID)
	return nil
}
func (f *fakeDetailRepo) Delete(ctx context.Context, id int) error { return nil }

// ── fixtures ──────────────────────────────────────────────────────────────────

func testClock() validate.Clock {
	return validate.FixedClock{T: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)}
}

func validOrder(details int) *entity.PurchaseOrder {
	o := &entity.PurchaseOrder{
		CustomerID:   1,
		EmployeeID:   2,
		DeliveryDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		HasIVA:       true,
		Payment:      entity.Payment{Method: entity.PaymentCash},
	}
	for i := 0; i < details; i++ {
		o.Details = append(o.Details, &entity.PurchaseOrderDetail{
			Kilograms: dec("10"), KilogramPrice: dec("1000"),
			DeliveryLocation: "Planta",
		})
	}
	return o
}

func newPipeline(or *fakeOrderRepo, pr *fakePaymentRepo, dr *fakeDetailRepo) *orders.Pipeline {
	return orders.NewPipeline(or, pr, dr, testClock(), zerolog.Nop())
}

// ── creación ──────────────────────────────────────────────────────────────────

// TestCreate_FlujoCompleto orden, pago y detalles quedan creados en secuencia y
// los totales se calculan en el cliente antes del POST.
func TestCreate_FlujoCompleto(t *testing.T) {
	or := &fakeOrderRepo{}
	pr := &fakePaymentRepo{}
	dr := &fakeDetailRepo{}

	res, err := newPipeline(or, pr, dr).Create(context.Background(), validOrder(3))
	require.NoError(t, err)
	assert.Equal(t, 1, res.OrderID)
	assert.Len(t, res.DetailIDs, 3)
	assert.Empty(t, res.OrphanedDetailIDs)
	require.Len(t, pr.created, 1)
	assert.Equal(t, 1, pr.created[0].PurchaseOrderID, "el pago debe encadenar el id de la orden")
	for _, d := range dr.created {
		assert.Equal(t, 1, d.PurchaseOrderID)
	}
}

// TestCreate_FallaDeOrdenNoDejaEstado si el POST de la orden falla no se crea
// ningún estado parcial ni se intenta compensación.
func TestCreate_FallaDeOrdenNoDejaEstado(t *testing.T) {
	or := &fakeOrderRepo{createErr: errors.New("503")}
	pr := &fakePaymentRepo{}
	dr := &fakeDetailRepo{}

	_, err := newPipeline(or, pr, dr).Create(context.Background(), validOrder(1))
	require.Error(t, err)
	assert.Empty(t, pr.created)
	assert.Empty(t, dr.created)
	assert.Empty(t, or.annulled)
}

// TestCreate_FallaDePagoCompensaOrden si el POST del pago falla, la orden recién
// creada se anula para no dejarla sin pago.
func TestCreate_FallaDePagoCompensaOrden(t *testing.T) {
	or := &fakeOrderRepo{}
	pr := &fakePaymentRepo{createErr: errors.New("400")}
	dr := &fakeDetailRepo{}

	_, err := newPipeline(or, pr, dr).Create(context.Background(), validOrder(1))
	require.Error(t, err)
	assert.Equal(t, []int{1}, or.annulled)
	assert.Empty(t, dr.created)
}

// TestCreate_FallaDetalle2de3 simula la falla del detalle 2 de 3: la orden se
// compensa, el detalle 3 no se intenta y el detalle 1 queda reportado como
// huérfano en el error y en el resultado interno.
func TestCreate_FallaDetalle2de3(t *testing.T) {
	or := &fakeOrderRepo{}
	pr := &fakePaymentRepo{}
	dr := &fakeDetailRepo{failAtCall: 2}

	_, err := newPipeline(or, pr, dr).Create(context.Background(), validOrder(3))
	require.Error(t, err)

	assert.Equal(t, []int{1}, or.annulled, "la orden debe anularse compensatoriamente")
	assert.Equal(t, 2, dr.calls, "el detalle 3 no debe intentarse tras la falla")
	assert.Contains(t, err.Error(), "201", "el error debe nombrar el detalle huérfano")
}

// TestCreate_RevalidaCierre una fecha de entrega por debajo del piso aborta
// antes de tocar la red.
func TestCreate_RevalidaCierre(t *testing.T) {
	or := &fakeOrderRepo{}
	o := validOrder(1)
	o.DeliveryDate = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	_, err := newPipeline(or, &fakePaymentRepo{}, &fakeDetailRepo{}).Create(context.Background(), o)
	require.Error(t, err)
	assert.True(t, orders.IsValidationError(err))
	assert.Zero(t, or.nextID, "no debe llegar ninguna llamada al servicio")
}

// ── actualización ─────────────────────────────────────────────────────────────

func validExistingOrder() *entity.PurchaseOrder {
	o := validOrder(3)
	o.ID = 9
	o.Payment.ID = 77
	for i, d := range o.Details {
		d.ID = 300 + i
	}
	return o
}

// TestUpdate_DetalleFallidoContinua a diferencia de la creación, una falla en
// un PUT de detalle se registra y la secuencia continúa (sin compensación).
func TestUpdate_DetalleFallidoContinua(t *testing.T) {
	or := &fakeOrderRepo{}
	pr := &fakePaymentRepo{}
	dr := &fakeDetailRepo{failUpdates: map[int]bool{301: true}}

	res, err := newPipeline(or, pr, dr).Update(context.Background(), validExistingOrder())
	require.NoError(t, err)
	assert.Equal(t, []int{300, 302}, res.DetailIDs)
	assert.Equal(t, []int{301}, res.FailedDetailIDs)
	assert.Empty(t, or.annulled)
}

// TestUpdate_CantidadDeDetallesFija un detalle sin id implica un cambio en la
// cantidad de líneas, que no está soportado en edición.
func TestUpdate_CantidadDeDetallesFija(t *testing.T) {
	o := validExistingOrder()
	o.Details = append(o.Details, &entity.PurchaseOrderDetail{
		Kilograms: dec("1"), KilogramPrice: dec("1"), DeliveryLocation: "Planta",
	})

	_, err := newPipeline(&fakeOrderRepo{}, &fakePaymentRepo{}, &fakeDetailRepo{}).
		Update(context.Background(), o)
	assert.ErrorIs(t, err, domain.ErrDetailCountFixed)
}

func TestUpdate_OrdenAnuladaInmutable(t *testing.T) {
	o := validExistingOrder()
	o.WasAnnulled = true

	_, err := newPipeline(&fakeOrderRepo{}, &fakePaymentRepo{}, &fakeDetailRepo{}).
		Update(context.Background(), o)
	assert.ErrorIs(t, err, domain.ErrOrderAnnulled)
}

// ── anulación ─────────────────────────────────────────────────────────────────

func TestAnnul_Suave(t *testing.T) {
	or := &fakeOrderRepo{byID: map[int]*entity.PurchaseOrder{5: {ID: 5}}}

	err := newPipeline(or, &fakePaymentRepo{}, &fakeDetailRepo{}).Annul(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, or.annulled)
}

func TestAnnul_YaAnulada(t *testing.T) {
	or := &fakeOrderRepo{byID: map[int]*entity.PurchaseOrder{5: {ID: 5, WasAnnulled: true}}}

	err := newPipeline(or, &fakePaymentRepo{}, &fakeDetailRepo{}).Annul(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrOrderAnnulled)
}

func TestAnnul_NoExiste(t *testing.T) {
	or := &fakeOrderRepo{byID: map[int]*entity.PurchaseOrder{}}

	err := newPipeline(or, &fakePaymentRepo{}, &fakeDetailRepo{}).Annul(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
