package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-saas-api/internal/application/dto"
	"github.com/jhoicas/pos-saas-api/internal/application/inventory"
	"github.com/jhoicas/pos-saas-api/internal/domain"
	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
	"github.com/jhoicas/pos-saas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doble de prueba: almacén mínimo de productos y movimientos con rollback.
// ──────────────────────────────────────────────────────────────────────────────

type entryStore struct {
	products  map[int64]*entity.Product
	movements []*entity.InventoryMovement
}

func newEntryStore(products ...*entity.Product) *entryStore {
	s := &entryStore{products: make(map[int64]*entity.Product)}
	for _, p := range products {
		cp := *p
		s.products[p.ID] = &cp
	}
	return s
}

type entryProductRepo struct{ s *entryStore }

func (r entryProductRepo) Create(_ context.Context, _ *entity.Product) (int64, error) {
	panic("no usado")
}

func (r entryProductRepo) GetByID(ctx context.Context, companyID, id int64) (*entity.Product, error) {
	return r.GetForUpdate(ctx, companyID, id)
}

func (r entryProductRepo) GetForUpdate(_ context.Context, companyID, id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r entryProductRepo) AdjustStock(_ context.Context, companyID, id, delta int64) (int64, error) {
	p, ok := r.s.products[id]
	if !ok || p.CompanyID != companyID {
		return 0, domain.ErrProductNotFound
	}
	p.Stock += delta
	return p.Stock, nil
}

func (r entryProductRepo) Update(_ context.Context, _ *entity.Product) error { panic("no usado") }
func (r entryProductRepo) Delete(_ context.Context, _, _ int64) error        { panic("no usado") }
func (r entryProductRepo) List(_ context.Context, _ *int64) ([]*repository.CatalogProductRow, error) {
	panic("no usado")
}

type entryMovementRepo struct{ s *entryStore }

func (r entryMovementRepo) Create(_ context.Context, movement *entity.InventoryMovement) error {
	cp := *movement
	cp.ID = int64(len(r.s.movements) + 1)
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r entryMovementRepo) List(_ context.Context, companyID int64, kind string, _, _ *time.Time) ([]*repository.MovementLogRow, error) {
	var out []*repository.MovementLogRow
	for _, m := range r.s.movements {
		if m.CompanyID != companyID {
			continue
		}
		if kind != "" && m.Kind != kind {
			continue
		}
		out = append(out, &repository.MovementLogRow{
			ID:             m.ID,
			ProductID:      m.ProductID,
			ProductName:    "producto",
			Kind:           m.Kind,
			Quantity:       m.Quantity,
			ResultingStock: m.ResultingStock,
			Reference:      m.Reference,
			Reason:         m.Reason,
			OccurredAt:     m.OccurredAt,
		})
	}
	return out, nil
}

type entryTxRunner struct{ s *entryStore }

func (r entryTxRunner) Run(_ context.Context, fn func(repos inventory.TxRepos) error) error {
	// Instantánea y rollback, como la transacción real.
	snapProducts := make(map[int64]*entity.Product, len(r.s.products))
	for k, v := range r.s.products {
		cp := *v
		snapProducts[k] = &cp
	}
	snapMovements := append([]*entity.InventoryMovement(nil), r.s.movements...)

	err := fn(inventory.TxRepos{
		Products:  entryProductRepo{r.s},
		Movements: entryMovementRepo{r.s},
	})
	if err != nil {
		r.s.products = snapProducts
		r.s.movements = snapMovements
	}
	return err
}

const (
	testCompanyID = int64(10)
	testUserID    = int64(7)
)

func entryProduct(id, stock int64) *entity.Product {
	return &entity.Product{
		ID:          id,
		CompanyID:   testCompanyID,
		Description: "producto de prueba",
		Stock:       stock,
		Cost:        decimal.RequireFromString("5.00"),
		Price:       decimal.RequireFromString("10.00"),
	}
}

func newEntriesUC(s *entryStore) *inventory.RecordEntriesUseCase {
	return inventory.NewRecordEntriesUseCase(entryTxRunner{s}, entryMovementRepo{s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Lote de entradas: stock acreditado y un movimiento ENTRADA por producto con
// la referencia por defecto.
func TestRecordEntries_LoteExitoso(t *testing.T) {
	store := newEntryStore(entryProduct(1, 10), entryProduct(2, 0))
	uc := newEntriesUC(store)

	count, err := uc.RecordEntries(context.Background(), testCompanyID, testUserID, dto.RecordEntriesRequest{
		Productos: []dto.EntryItemRequest{
			{ProductoID: 1, Cantidad: 5},
			{ProductoID: 2, Cantidad: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Equal(t, int64(15), store.products[1].Stock)
	assert.Equal(t, int64(3), store.products[2].Stock)

	require.Len(t, store.movements, 2)
	for _, mov := range store.movements {
		assert.Equal(t, entity.MovementEntrada, mov.Kind)
		assert.Equal(t, entity.ReferenceManualEntry, mov.Reference,
			"sin referencia explícita se usa COMPRA-MANUAL")
		assert.Positive(t, mov.Quantity, "las entradas llevan cantidad positiva")
	}
	assert.Equal(t, int64(15), store.movements[0].ResultingStock)
	assert.Equal(t, int64(3), store.movements[1].ResultingStock)
}

// Referencia y motivo explícitos se propagan a cada movimiento.
func TestRecordEntries_ReferenciaYMotivo(t *testing.T) {
	store := newEntryStore(entryProduct(1, 0))
	uc := newEntriesUC(store)

	ref := "  OC-2024-001  "
	motivo := "Recepción de orden de compra"
	_, err := uc.RecordEntries(context.Background(), testCompanyID, testUserID, dto.RecordEntriesRequest{
		Productos:  []dto.EntryItemRequest{{ProductoID: 1, Cantidad: 4}},
		Referencia: &ref,
		Motivo:     &motivo,
	})
	require.NoError(t, err)

	require.Len(t, store.movements, 1)
	assert.Equal(t, "OC-2024-001", store.movements[0].Reference, "la referencia se recorta")
	require.NotNil(t, store.movements[0].Reason)
	assert.Equal(t, motivo, *store.movements[0].Reason)
}

// Un producto inexistente a mitad del lote revierte las entradas previas.
func TestRecordEntries_ProductoInexistenteRevierteLote(t *testing.T) {
	store := newEntryStore(entryProduct(1, 10))
	uc := newEntriesUC(store)

	_, err := uc.RecordEntries(context.Background(), testCompanyID, testUserID, dto.RecordEntriesRequest{
		Productos: []dto.EntryItemRequest{
			{ProductoID: 1, Cantidad: 5},
			{ProductoID: 99, Cantidad: 3},
		},
	})
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.Equal(t, int64(10), store.products[1].Stock, "la entrada previa debe revertirse")
	assert.Empty(t, store.movements, "ningún movimiento del lote fallido debe persistir")
}

// Validación del lote antes de abrir la transacción.
func TestRecordEntries_Validacion(t *testing.T) {
	store := newEntryStore(entryProduct(1, 10))
	uc := newEntriesUC(store)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.RecordEntriesRequest
	}{
		{"lote vacío", dto.RecordEntriesRequest{}},
		{"cantidad cero", dto.RecordEntriesRequest{
			Productos: []dto.EntryItemRequest{{ProductoID: 1, Cantidad: 0}},
		}},
		{"cantidad negativa", dto.RecordEntriesRequest{
			Productos: []dto.EntryItemRequest{{ProductoID: 1, Cantidad: -4}},
		}},
		{"producto inválido", dto.RecordEntriesRequest{
			Productos: []dto.EntryItemRequest{{ProductoID: 0, Cantidad: 1}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RecordEntries(ctx, testCompanyID, testUserID, tc.in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Equal(t, int64(10), store.products[1].Stock)
}

// ListMovements: filtros de tipo válidos e inválidos.
func TestListMovements_FiltroTipo(t *testing.T) {
	store := newEntryStore(entryProduct(1, 0))
	uc := newEntriesUC(store)
	ctx := context.Background()

	_, err := uc.RecordEntries(ctx, testCompanyID, testUserID, dto.RecordEntriesRequest{
		Productos: []dto.EntryItemRequest{{ProductoID: 1, Cantidad: 2}},
	})
	require.NoError(t, err)

	out, err := uc.ListMovements(ctx, testCompanyID, "ENTRADA", nil, nil)
	require.NoError(t, err)
	assert.Len(t, out, 1)

	out, err = uc.ListMovements(ctx, testCompanyID, "salida", nil, nil)
	require.NoError(t, err, "el tipo se normaliza a mayúsculas")
	assert.Empty(t, out)

	for _, kind := range []string{"", "TODOS", "todos"} {
		out, err = uc.ListMovements(ctx, testCompanyID, kind, nil, nil)
		require.NoError(t, err)
		assert.Len(t, out, 1, "tipo %q lista todos los movimientos", kind)
	}

	_, err = uc.ListMovements(ctx, testCompanyID, "TRANSFERENCIA", nil, nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido se rechaza")
}

// El ledger rechaza cantidades no positivas también en créditos directos.
func TestStockLedger_CantidadInvalida(t *testing.T) {
	store := newEntryStore(entryProduct(1, 10))
	ledger := inventory.NewStockLedger(entryProductRepo{store})
	ctx := context.Background()

	_, _, err := ledger.Credit(ctx, testCompanyID, 1, 0)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = ledger.Debit(ctx, testCompanyID, 1, -5)
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Equal(t, int64(10), store.products[1].Stock)
}

// Debit agota el stock exacto pero nunca lo cruza a negativo.
func TestStockLedger_DebitoLimite(t *testing.T) {
	store := newEntryStore(entryProduct(1, 3))
	ledger := inventory.NewStockLedger(entryProductRepo{store})
	ctx := context.Background()

	_, newStock, err := ledger.Debit(ctx, testCompanyID, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), newStock, "vender el stock exacto es válido")

	_, _, err = ledger.Debit(ctx, testCompanyID, 1, 1)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(0), store.products[1].Stock)
}
