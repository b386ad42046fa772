package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SaleWithPart fila de venta junto con los datos de su pieza.
// CostPrice es el costo ACTUAL de la pieza, no el del momento de la venta.
type SaleWithPart struct {
	SaleID       string
	PartID       string
	PartNumber   string
	PartName     string
	Quantity     int
	SellingPrice decimal.Decimal
	Profit       decimal.Decimal
	CostPrice    decimal.Decimal
	SaleDate     time.Time
}

// BestSellingRow agregado de ventas por pieza dentro de un período.
type BestSellingRow struct {
	PartID        string
	PartNumber    string
	PartName      string
	TotalQuantity int64
	TotalProfit   decimal.Decimal
}

// ProfitTotals totales agregados de un período para el análisis de rentabilidad.
type ProfitTotals struct {
	Revenue decimal.Decimal
	Cost    decimal.Decimal
	Profit  decimal.Decimal
	Count   int64
}

// ReportRepository consultas de solo lectura sobre ventas para reportería.
// Todos los rangos son semiabiertos [from, to): sale_date es un timestamp,
// así que el límite superior inclusivo lo convierte el caller sumando un día.
type ReportRepository interface {
	// SalesWithParts devuelve las ventas del rango [from, to) con su pieza.
	SalesWithParts(ctx context.Context, from, to time.Time) ([]SaleWithPart, error)
	// BestSelling agrega ventas por pieza en [from, to), ordenadas por cantidad
	// total descendente; empates se rompen por part_number ascendente.
	BestSelling(ctx context.Context, from, to time.Time, limit int) ([]BestSellingRow, error)
	// ProfitTotals totales del rango [from, to). El costo usa el cost_price
	// actual de cada pieza (paridad con el comportamiento original).
	ProfitTotals(ctx context.Context, from, to time.Time) (ProfitTotals, error)
}
