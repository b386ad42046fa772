package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
	"github.com/jhoicas/Repuestos-api/pkg/logger"
)

// DefaultBestSellingLimit cuántas piezas devuelve el ranking si no se indica límite.
const DefaultBestSellingLimit = 5

// ReportsUseCase rollups de solo lectura sobre las ventas persistidas.
// Política fail-soft deliberada: ante un error de persistencia se registra un
// warn y se devuelve el reporte vacío con totales en cero, nunca un error.
// Esto aplica SOLO a reportería; la ruta transaccional de ventas jamás degrada.
type ReportsUseCase struct {
	repo repository.ReportRepository
	log  *logger.Logger
}

// NewReportsUseCase construye el agregador de reportes.
func NewReportsUseCase(repo repository.ReportRepository, log *logger.Logger) *ReportsUseCase {
	return &ReportsUseCase{repo: repo, log: log}
}

// DailyReport reporte de las ventas cuyo componente fecha es el día dado.
func (uc *ReportsUseCase) DailyReport(ctx context.Context, date time.Time) *dto.DailyReportResponse {
	from := startOfDay(date)
	to := from.AddDate(0, 0, 1)
	rows, err := uc.repo.SalesWithParts(ctx, from, to)
	if err != nil {
		uc.log.Warn().Err(err).Str("date", dayKey(date)).Msg("reporte diario degradado a vacío")
		return &dto.DailyReportResponse{
			Date:       dayKey(date),
			Sales:      []dto.SaleLine{},
			Statistics: emptyTotals(),
		}
	}
	return &dto.DailyReportResponse{
		Date:       dayKey(date),
		Sales:      toSaleLines(rows),
		Statistics: computeTotals(rows),
	}
}

// MonthlyReport reporte del mes calendario [día 1, día 1 del mes siguiente)
// con desglose por día. El promedio diario divide solo entre días CON ventas.
func (uc *ReportsUseCase) MonthlyReport(ctx context.Context, year, month int) *dto.MonthlyReportResponse {
	period := fmt.Sprintf("%04d-%02d", year, month)
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)
	rows, err := uc.repo.SalesWithParts(ctx, from, to)
	if err != nil {
		uc.log.Warn().Err(err).Str("period", period).Msg("reporte mensual degradado a vacío")
		return &dto.MonthlyReportResponse{
			Period:            period,
			Sales:             []dto.SaleLine{},
			DailyStats:        []dto.DayBreakdown{},
			Statistics:        emptyTotals(),
			AverageDailySales: decimal.Zero,
		}
	}

	// Agrupar por día calendario
	byDay := make(map[string]*dto.DayBreakdown)
	for _, r := range rows {
		key := dayKey(r.SaleDate)
		d, ok := byDay[key]
		if !ok {
			d = &dto.DayBreakdown{Day: key, Sales: decimal.Zero, Profit: decimal.Zero}
			byDay[key] = d
		}
		d.Sales = d.Sales.Add(r.SellingPrice.Mul(decimal.NewFromInt(int64(r.Quantity))))
		d.Profit = d.Profit.Add(r.Profit)
		d.Items += r.Quantity
	}
	days := make([]dto.DayBreakdown, 0, len(byDay))
	for _, d := range byDay {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })

	totals := computeTotals(rows)
	avg := decimal.Zero
	if len(days) > 0 {
		avg = totals.TotalSales.Div(decimal.NewFromInt(int64(len(days))))
	}
	return &dto.MonthlyReportResponse{
		Period:            period,
		Sales:             toSaleLines(rows),
		DailyStats:        days,
		Statistics:        totals,
		AverageDailySales: avg,
	}
}

// BestSelling ranking de piezas por cantidad vendida en [from, to).
// Empates deterministas por part_number ascendente (resuelto en SQL).
func (uc *ReportsUseCase) BestSelling(ctx context.Context, from, to time.Time, limit int) []dto.BestSellingItem {
	if limit <= 0 {
		limit = DefaultBestSellingLimit
	}
	rows, err := uc.repo.BestSelling(ctx, from, to, limit)
	if err != nil {
		uc.log.Warn().Err(err).Msg("ranking de más vendidas degradado a vacío")
		return []dto.BestSellingItem{}
	}
	items := make([]dto.BestSellingItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.BestSellingItem{
			PartNumber:    r.PartNumber,
			PartName:      r.PartName,
			TotalQuantity: r.TotalQuantity,
			TotalProfit:   r.TotalProfit,
		})
	}
	return items
}

// ProfitAnalysis totales de rentabilidad del período [from, to).
// El costo total usa el cost_price ACTUAL de cada pieza, no el del momento de
// la venta (paridad con el comportamiento original; ver DESIGN.md).
func (uc *ReportsUseCase) ProfitAnalysis(ctx context.Context, from, to time.Time) *dto.ProfitAnalysisResponse {
	totals, err := uc.repo.ProfitTotals(ctx, from, to)
	if err != nil {
		uc.log.Warn().Err(err).Msg("análisis de rentabilidad degradado a cero")
		return &dto.ProfitAnalysisResponse{
			TotalRevenue:         decimal.Zero,
			TotalCost:            decimal.Zero,
			TotalProfit:          decimal.Zero,
			ProfitMarginPct:      decimal.Zero,
			AverageProfitPerSale: decimal.Zero,
		}
	}
	margin := decimal.Zero
	if totals.Revenue.GreaterThan(decimal.Zero) {
		margin = totals.Profit.Div(totals.Revenue).Mul(decimal.NewFromInt(100))
	}
	avg := decimal.Zero
	if totals.Count > 0 {
		avg = totals.Profit.Div(decimal.NewFromInt(totals.Count))
	}
	return &dto.ProfitAnalysisResponse{
		TotalRevenue:         totals.Revenue,
		TotalCost:            totals.Cost,
		TotalProfit:          totals.Profit,
		ProfitMarginPct:      margin,
		AverageProfitPerSale: avg,
	}
}

// SalesReport listado simple de ventas en [from, to) con conteo y ganancia total.
func (uc *ReportsUseCase) SalesReport(ctx context.Context, from, to time.Time) *dto.SalesReportResponse {
	rows, err := uc.repo.SalesWithParts(ctx, from, to)
	if err != nil {
		uc.log.Warn().Err(err).Msg("reporte de ventas degradado a vacío")
		return &dto.SalesReportResponse{Sales: []dto.SaleLine{}, TotalProfit: decimal.Zero}
	}
	profit := decimal.Zero
	for _, r := range rows {
		profit = profit.Add(r.Profit)
	}
	return &dto.SalesReportResponse{
		Sales:       toSaleLines(rows),
		TotalSales:  len(rows),
		TotalProfit: profit,
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

func emptyTotals() dto.ReportTotals {
	return dto.ReportTotals{TotalSales: decimal.Zero, TotalProfit: decimal.Zero}
}

func computeTotals(rows []repository.SaleWithPart) dto.ReportTotals {
	totals := emptyTotals()
	parts := make(map[string]struct{})
	for _, r := range rows {
		totals.TotalSales = totals.TotalSales.Add(r.SellingPrice.Mul(decimal.NewFromInt(int64(r.Quantity))))
		totals.TotalProfit = totals.TotalProfit.Add(r.Profit)
		totals.ItemsSold += r.Quantity
		parts[r.PartID] = struct{}{}
	}
	totals.UniqueParts = len(parts)
	return totals
}

func toSaleLines(rows []repository.SaleWithPart) []dto.SaleLine {
	lines := make([]dto.SaleLine, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, dto.SaleLine{
			SaleID:       r.SaleID,
			PartNumber:   r.PartNumber,
			PartName:     r.PartName,
			Quantity:     r.Quantity,
			SellingPrice: r.SellingPrice,
			Profit:       r.Profit,
			SaleDate:     r.SaleDate,
		})
	}
	return lines
}
