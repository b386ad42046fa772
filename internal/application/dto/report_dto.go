package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLine fila de venta dentro de un reporte (venta + pieza).
type SaleLine struct {
	SaleID       string          `json:"sale_id"`
	PartNumber   string          `json:"part_number"`
	PartName     string          `json:"part_name"`
	Quantity     int             `json:"quantity"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Profit       decimal.Decimal `json:"profit"`
	SaleDate     time.Time       `json:"sale_date"`
}

// ReportTotals estadísticas agregadas de un reporte de ventas.
type ReportTotals struct {
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	ItemsSold   int             `json:"items_sold"`
	UniqueParts int             `json:"unique_parts"`
}

// DailyReportResponse reporte de ventas de un día calendario.
type DailyReportResponse struct {
	Date       string       `json:"date"`
	Sales      []SaleLine   `json:"sales"`
	Statistics ReportTotals `json:"statistics"`
}

// DayBreakdown agregado de ventas de un día dentro del reporte mensual.
type DayBreakdown struct {
	Day    string          `json:"day"`
	Sales  decimal.Decimal `json:"sales"`
	Profit decimal.Decimal `json:"profit"`
	Items  int             `json:"items"`
}

// MonthlyReportResponse reporte mensual con desglose por día.
// AverageDailySales divide el monto total entre los días CON ventas (0 si ninguno).
type MonthlyReportResponse struct {
	Period            string          `json:"period"`
	Sales             []SaleLine      `json:"sales"`
	DailyStats        []DayBreakdown  `json:"daily_stats"`
	Statistics        ReportTotals    `json:"statistics"`
	AverageDailySales decimal.Decimal `json:"average_daily_sales"`
}

// BestSellingItem pieza agregada del ranking de más vendidas.
type BestSellingItem struct {
	PartNumber    string          `json:"part_number"`
	PartName      string          `json:"part_name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
}

// SalesReportResponse listado simple de ventas de un rango de fechas.
// TotalSales es el NÚMERO de ventas (paridad con el reporte original),
// no el monto; el monto está en los reportes diario/mensual.
type SalesReportResponse struct {
	Sales       []SaleLine      `json:"sales"`
	TotalSales  int             `json:"total_sales"`
	TotalProfit decimal.Decimal `json:"total_profit"`
}

// ProfitAnalysisResponse análisis de rentabilidad de un período.
// TotalCost usa el cost_price ACTUAL de cada pieza (ver DESIGN.md).
type ProfitAnalysisResponse struct {
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	TotalCost            decimal.Decimal `json:"total_cost"`
	TotalProfit          decimal.Decimal `json:"total_profit"`
	ProfitMarginPct      decimal.Decimal `json:"profit_margin"`
	AverageProfitPerSale decimal.Decimal `json:"average_profit_per_sale"`
}
