package reports_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Repuestos-api/internal/application/reports"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
	"github.com/jhoicas/Repuestos-api/pkg/logger"
)

// fakeReportRepo repositorio de reportes con filas y errores inyectables.
type fakeReportRepo struct {
	rows     []repository.SaleWithPart
	bestRows []repository.BestSellingRow
	totals   repository.ProfitTotals
	err      error
	gotLimit int
	gotFrom  time.Time
	gotTo    time.Time
}

func (r *fakeReportRepo) SalesWithParts(_ context.Context, from, to time.Time) ([]repository.SaleWithPart, error) {
	r.gotFrom, r.gotTo = from, to
	if r.err != nil {
		return nil, r.err
	}
	var out []repository.SaleWithPart
	for _, row := range r.rows {
		if !row.SaleDate.Before(from) && row.SaleDate.Before(to) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) BestSelling(_ context.Context, from, to time.Time, limit int) ([]repository.BestSellingRow, error) {
	r.gotFrom, r.gotTo, r.gotLimit = from, to, limit
	if r.err != nil {
		return nil, r.err
	}
	return r.bestRows, nil
}

func (r *fakeReportRepo) ProfitTotals(_ context.Context, from, to time.Time) (repository.ProfitTotals, error) {
	r.gotFrom, r.gotTo = from, to
	if r.err != nil {
		return repository.ProfitTotals{}, r.err
	}
	return r.totals, nil
}

func newReportsUC(repo *fakeReportRepo) *reports.ReportsUseCase {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return reports.NewReportsUseCase(repo, log)
}

func saleRow(id string, partID, partNumber string, qty int, price, profit int64, date time.Time) repository.SaleWithPart {
	return repository.SaleWithPart{
		SaleID:       id,
		PartID:       partID,
		PartNumber:   partNumber,
		PartName:     "Filtro de aceite",
		Quantity:     qty,
		SellingPrice: decimal.NewFromInt(price),
		Profit:       decimal.NewFromInt(profit),
		SaleDate:     date,
	}
}

func TestDailyReport_Totales(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	repo := &fakeReportRepo{rows: []repository.SaleWithPart{
		// 10 x 150 = 1500, ganancia 500
		saleRow("s1", "part-1", "FLT-001", 10, 150, 500, day.Add(9*time.Hour)),
		// 5 x 150 = 750, ganancia 250 (misma pieza)
		saleRow("s2", "part-1", "FLT-001", 5, 150, 250, day.Add(16*time.Hour)),
	}}
	uc := newReportsUC(repo)

	out := uc.DailyReport(context.Background(), day.Add(13*time.Hour))

	assert.Equal(t, "2025-03-10", out.Date)
	require.Len(t, out.Sales, 2)
	assert.True(t, out.Statistics.TotalSales.Equal(decimal.NewFromInt(2250)), "ingresos esperados 2250, obtuvo %s", out.Statistics.TotalSales)
	assert.True(t, out.Statistics.TotalProfit.Equal(decimal.NewFromInt(750)))
	assert.Equal(t, 15, out.Statistics.ItemsSold)
	assert.Equal(t, 1, out.Statistics.UniqueParts, "dos ventas de la misma pieza cuentan una sola pieza única")

	// El rango consultado es [inicio del día, inicio del día siguiente)
	assert.True(t, repo.gotFrom.Equal(day))
	assert.True(t, repo.gotTo.Equal(day.AddDate(0, 0, 1)))
}

func TestDailyReport_FailSoft(t *testing.T) {
	repo := &fakeReportRepo{err: errors.New("conexión perdida")}
	uc := newReportsUC(repo)

	out := uc.DailyReport(context.Background(), time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local))

	require.NotNil(t, out, "la reportería nunca devuelve error, degrada a vacío")
	assert.Equal(t, "2025-03-10", out.Date)
	assert.Empty(t, out.Sales)
	assert.True(t, out.Statistics.TotalSales.IsZero())
	assert.True(t, out.Statistics.TotalProfit.IsZero())
	assert.Equal(t, 0, out.Statistics.ItemsSold)
}

func TestMonthlyReport_PromedioSoloDiasConVentas(t *testing.T) {
	d1 := time.Date(2025, 3, 3, 10, 0, 0, 0, time.Local)
	d2 := time.Date(2025, 3, 20, 15, 0, 0, 0, time.Local)
	repo := &fakeReportRepo{rows: []repository.SaleWithPart{
		saleRow("s1", "part-1", "FLT-001", 10, 150, 500, d1), // día 3: 1500
		saleRow("s2", "part-2", "BUJ-002", 5, 100, 250, d2),  // día 20: 500
	}}
	uc := newReportsUC(repo)

	out := uc.MonthlyReport(context.Background(), 2025, 3)

	assert.Equal(t, "2025-03", out.Period)
	require.Len(t, out.DailyStats, 2)
	assert.Equal(t, "2025-03-03", out.DailyStats[0].Day)
	assert.Equal(t, "2025-03-20", out.DailyStats[1].Day)
	assert.True(t, out.Statistics.TotalSales.Equal(decimal.NewFromInt(2000)))
	// El promedio divide entre los 2 días con ventas, no entre 31
	assert.True(t, out.AverageDailySales.Equal(decimal.NewFromInt(1000)),
		"promedio esperado 1000, obtuvo %s", out.AverageDailySales)
	assert.Equal(t, 2, out.Statistics.UniqueParts)
}

func TestMonthlyReport_MesSinVentas(t *testing.T) {
	uc := newReportsUC(&fakeReportRepo{})

	out := uc.MonthlyReport(context.Background(), 2025, 4)

	assert.Equal(t, "2025-04", out.Period)
	assert.Empty(t, out.Sales)
	assert.Empty(t, out.DailyStats)
	assert.True(t, out.AverageDailySales.IsZero(), "sin días con ventas el promedio es cero, no división entre cero")
}

func TestBestSelling_LimitePorDefecto(t *testing.T) {
	repo := &fakeReportRepo{bestRows: []repository.BestSellingRow{
		{PartNumber: "FLT-001", PartName: "Filtro de aceite", TotalQuantity: 40, TotalProfit: decimal.NewFromInt(2000)},
		{PartNumber: "BUJ-002", PartName: "Bujía NGK", TotalQuantity: 25, TotalProfit: decimal.NewFromInt(500)},
	}}
	uc := newReportsUC(repo)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.Local)

	items := uc.BestSelling(context.Background(), from, to, 0)
	assert.Equal(t, reports.DefaultBestSellingLimit, repo.gotLimit, "límite 0 usa el valor por defecto")
	require.Len(t, items, 2)
	assert.Equal(t, "FLT-001", items[0].PartNumber)
	assert.EqualValues(t, 40, items[0].TotalQuantity)

	uc.BestSelling(context.Background(), from, to, 3)
	assert.Equal(t, 3, repo.gotLimit)
}

func TestBestSelling_FailSoft(t *testing.T) {
	uc := newReportsUC(&fakeReportRepo{err: errors.New("conexión perdida")})

	items := uc.BestSelling(context.Background(), time.Now(), time.Now(), 5)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestProfitAnalysis_MargenYPromedio(t *testing.T) {
	repo := &fakeReportRepo{totals: repository.ProfitTotals{
		Revenue: decimal.NewFromInt(1000),
		Cost:    decimal.NewFromInt(600),
		Profit:  decimal.NewFromInt(400),
		Count:   2,
	}}
	uc := newReportsUC(repo)

	out := uc.ProfitAnalysis(context.Background(), time.Now().AddDate(0, -1, 0), time.Now())

	assert.True(t, out.TotalRevenue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, out.ProfitMarginPct.Equal(decimal.NewFromInt(40)), "margen esperado 40%%, obtuvo %s", out.ProfitMarginPct)
	assert.True(t, out.AverageProfitPerSale.Equal(decimal.NewFromInt(200)))
}

func TestProfitAnalysis_SinVentas(t *testing.T) {
	uc := newReportsUC(&fakeReportRepo{})

	out := uc.ProfitAnalysis(context.Background(), time.Now().AddDate(0, -1, 0), time.Now())

	assert.True(t, out.ProfitMarginPct.IsZero(), "sin ingresos el margen es cero, no división entre cero")
	assert.True(t, out.AverageProfitPerSale.IsZero())
}

func TestSalesReport_ConteoYGananciaTotal(t *testing.T) {
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	repo := &fakeReportRepo{rows: []repository.SaleWithPart{
		saleRow("s1", "part-1", "FLT-001", 10, 150, 500, day),
		saleRow("s2", "part-1", "FLT-001", 5, 150, 250, day),
	}}
	uc := newReportsUC(repo)

	out := uc.SalesReport(context.Background(),
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local),
		time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local))

	assert.Equal(t, 2, out.TotalSales, "el total de ventas es el número de registros")
	assert.True(t, out.TotalProfit.Equal(decimal.NewFromInt(750)))
	require.Len(t, out.Sales, 2)
}

func TestSalesReport_FailSoft(t *testing.T) {
	uc := newReportsUC(&fakeReportRepo{err: errors.New("conexión perdida")})

	out := uc.SalesReport(context.Background(), time.Now().AddDate(0, 0, -7), time.Now())

	require.NotNil(t, out)
	assert.Empty(t, out.Sales)
	assert.Equal(t, 0, out.TotalSales)
	assert.True(t, out.TotalProfit.IsZero())
}
