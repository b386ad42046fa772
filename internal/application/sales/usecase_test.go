package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/sales"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// fakePartRepo puerto de piezas en memoria, indexado por número de pieza.
type fakePartRepo struct {
	parts map[string]*entity.Part
}

func newFakePartRepo(parts ...*entity.Part) *fakePartRepo {
	r := &fakePartRepo{parts: make(map[string]*entity.Part)}
	for _, p := range parts {
		cp := *p
		r.parts[p.PartNumber] = &cp
	}
	return r
}

func (r *fakePartRepo) Create(part *entity.Part) error {
	cp := *part
	r.parts[part.PartNumber] = &cp
	return nil
}

func (r *fakePartRepo) GetByNumber(partNumber string) (*entity.Part, error) {
	p, ok := r.parts[partNumber]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePartRepo) GetByNumberForUpdate(partNumber string) (*entity.Part, error) {
	return r.GetByNumber(partNumber)
}

func (r *fakePartRepo) Search(string) ([]*entity.Part, error)     { return nil, nil }
func (r *fakePartRepo) ListByType(string) ([]*entity.Part, error) { return nil, nil }
func (r *fakePartRepo) Update(part *entity.Part) error {
	cp := *part
	r.parts[part.PartNumber] = &cp
	return nil
}

func (r *fakePartRepo) UpdateQuantity(id string, quantity int) error {
	for _, p := range r.parts {
		if p.ID == id {
			p.Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakePartRepo) LowStock(int) ([]*entity.Part, error) { return nil, nil }
func (r *fakePartRepo) Delete(string) error                  { return domain.ErrNotFound }

func (r *fakePartRepo) snapshot() map[string]*entity.Part {
	snap := make(map[string]*entity.Part, len(r.parts))
	for k, v := range r.parts {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

// fakeSaleRepo puerto de ventas en memoria; failCreate fuerza la falla de la
// inserción para los tests de atomicidad.
type fakeSaleRepo struct {
	sales      []*entity.Sale
	failCreate error
}

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *sale
	r.sales = append(r.sales, &cp)
	return nil
}

func (r *fakeSaleRepo) CountByPart(partID string) (int64, error) {
	var n int64
	for _, s := range r.sales {
		if s.PartID == partID {
			n++
		}
	}
	return n, nil
}

// fakeTxRunner imita la semántica transaccional: si fn falla, restaura el
// estado previo de ambos repos (rollback).
type fakeTxRunner struct {
	parts *fakePartRepo
	sales *fakeSaleRepo
}

func (tr *fakeTxRunner) Run(_ context.Context, fn func(repository.PartRepository, repository.SaleRepository) error) error {
	partsSnap := tr.parts.snapshot()
	salesSnap := append([]*entity.Sale(nil), tr.sales.sales...)
	if err := fn(tr.parts, tr.sales); err != nil {
		tr.parts.parts = partsSnap
		tr.sales.sales = salesSnap
		return err
	}
	return nil
}

func testPart() *entity.Part {
	return &entity.Part{
		ID:           "part-1",
		PartNumber:   "FLT-001",
		Name:         "Filtro de aceite",
		Type:         "filtros",
		Quantity:     100,
		CostPrice:    decimal.NewFromInt(100),
		SellingPrice: decimal.NewFromInt(150),
	}
}

func newFixture(parts ...*entity.Part) (*sales.RecordSaleUseCase, *fakePartRepo, *fakeSaleRepo) {
	partRepo := newFakePartRepo(parts...)
	saleRepo := &fakeSaleRepo{}
	tx := &fakeTxRunner{parts: partRepo, sales: saleRepo}
	return sales.NewRecordSaleUseCase(tx, partRepo), partRepo, saleRepo
}

func TestRecordSale_DecrementaStockYCalculaGanancia(t *testing.T) {
	uc, partRepo, saleRepo := newFixture(testPart())

	out, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		PartNumber:   "FLT-001",
		Quantity:     10,
		SellingPrice: decimal.NewFromInt(150),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// ganancia = (150 - 100) * 10 = 500
	assert.True(t, out.Profit.Equal(decimal.NewFromInt(500)), "ganancia esperada 500, obtuvo %s", out.Profit)
	assert.Equal(t, 10, out.Quantity)
	assert.Equal(t, "part-1", out.PartID)

	stored, err := partRepo.GetByNumber("FLT-001")
	require.NoError(t, err)
	assert.Equal(t, 90, stored.Quantity, "el stock debe decrementarse")
	assert.Len(t, saleRepo.sales, 1)
}

func TestRecordSale_CantidadSuperaStock(t *testing.T) {
	uc, partRepo, saleRepo := newFixture(testPart())

	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		PartNumber:   "FLT-001",
		Quantity:     101,
		SellingPrice: decimal.NewFromInt(150),
	})
	require.True(t, domain.IsValidation(err))
	assert.Equal(t, "la cantidad solicitada supera el stock disponible", err.Error())

	stored, _ := partRepo.GetByNumber("FLT-001")
	assert.Equal(t, 100, stored.Quantity, "la validación fallida no toca el stock")
	assert.Empty(t, saleRepo.sales)
}

func TestRecordSale_ValidacionEnOrden(t *testing.T) {
	uc, _, _ := newFixture(testPart())

	// Cantidad no positiva tiene precedencia sobre el precio inválido.
	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		PartNumber:   "FLT-001",
		Quantity:     0,
		SellingPrice: decimal.Zero,
	})
	require.True(t, domain.IsValidation(err))
	assert.Equal(t, "la cantidad debe ser mayor que cero", err.Error())

	_, err = uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		PartNumber:   "FLT-001",
		Quantity:     1,
		SellingPrice: decimal.Zero,
	})
	require.True(t, domain.IsValidation(err))
	assert.Equal(t, "el precio de venta debe ser mayor que cero", err.Error())
}

func TestRecordSale_PiezaInexistente(t *testing.T) {
	uc, _, saleRepo := newFixture()

	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		PartNumber:   "NO-EXISTE",
		Quantity:     1,
		SellingPrice: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, saleRepo.sales)
}

func TestRecordSale_RollbackSiFallaInsercion(t *testing.T) {
	uc, partRepo, saleRepo := newFixture(testPart())
	saleRepo.failCreate = errors.New("insert sale: conexión perdida")

	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		PartNumber:   "FLT-001",
		Quantity:     10,
		SellingPrice: decimal.NewFromInt(150),
	})
	require.Error(t, err)

	stored, _ := partRepo.GetByNumber("FLT-001")
	assert.Equal(t, 100, stored.Quantity, "el decremento debe revertirse junto con la inserción")
	assert.Empty(t, saleRepo.sales, "no debe quedar venta persistida")
}

func TestRecordSale_VentaExactaDejaStockEnCero(t *testing.T) {
	uc, partRepo, _ := newFixture(testPart())

	out, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		PartNumber:   "FLT-001",
		Quantity:     100,
		SellingPrice: decimal.NewFromInt(150),
	})
	require.NoError(t, err)
	assert.True(t, out.Profit.Equal(decimal.NewFromInt(5000)))

	stored, _ := partRepo.GetByNumber("FLT-001")
	assert.Equal(t, 0, stored.Quantity)
}

func TestRecordSale_PrecioBajoElCostoGeneraPerdida(t *testing.T) {
	// Vender por debajo del costo es legal: la ganancia sale negativa.
	uc, _, _ := newFixture(testPart())

	out, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		PartNumber:   "FLT-001",
		Quantity:     2,
		SellingPrice: decimal.NewFromInt(80),
	})
	require.NoError(t, err)
	assert.True(t, out.Profit.Equal(decimal.NewFromInt(-40)), "ganancia esperada -40, obtuvo %s", out.Profit)
}
