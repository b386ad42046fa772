package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura sobre ventas para reportería.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// SalesWithParts devuelve las ventas del rango [from, to) junto con su pieza.
// p.cost_price es el costo ACTUAL de la pieza.
func (r *ReportRepo) SalesWithParts(ctx context.Context, from, to time.Time) ([]repository.SaleWithPart, error) {
	const query = `
	SELECT
	    s.id,
	    s.part_id,
	    p.part_number,
	    p.name,
	    s.quantity,
	    s.selling_price,
	    s.profit,
	    p.cost_price,
	    s.sale_date
	FROM sales s
	JOIN parts p ON p.id = s.part_id
	WHERE s.sale_date >= $1 AND s.sale_date < $2
	ORDER BY s.sale_date`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("reports.SalesWithParts: %w", err)
	}
	defer rows.Close()

	var results []repository.SaleWithPart
	for rows.Next() {
		var row repository.SaleWithPart
		if err := rows.Scan(
			&row.SaleID,
			&row.PartID,
			&row.PartNumber,
			&row.PartName,
			&row.Quantity,
			&row.SellingPrice,
			&row.Profit,
			&row.CostPrice,
			&row.SaleDate,
		); err != nil {
			return nil, fmt.Errorf("reports.SalesWithParts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// BestSelling agrega ventas por pieza en [from, to), ordenadas por cantidad
// total descendente. El empate se rompe por part_number ascendente para que
// el ranking sea determinista. El límite superior es exclusivo porque
// sale_date es un timestamp: un BETWEEN con la medianoche del último día
// dejaría fuera las ventas de ese día.
func (r *ReportRepo) BestSelling(ctx context.Context, from, to time.Time, limit int) ([]repository.BestSellingRow, error) {
	const query = `
	SELECT
	    p.id                      AS part_id,
	    p.part_number,
	    p.name                    AS part_name,
	    SUM(s.quantity)           AS total_quantity,
	    SUM(s.profit)             AS total_profit
	FROM sales s
	JOIN parts p ON p.id = s.part_id
	WHERE s.sale_date >= $1 AND s.sale_date < $2
	GROUP BY p.id, p.part_number, p.name
	ORDER BY total_quantity DESC, p.part_number ASC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("reports.BestSelling: %w", err)
	}
	defer rows.Close()

	var results []repository.BestSellingRow
	for rows.Next() {
		var row repository.BestSellingRow
		if err := rows.Scan(
			&row.PartID,
			&row.PartNumber,
			&row.PartName,
			&row.TotalQuantity,
			&row.TotalProfit,
		); err != nil {
			return nil, fmt.Errorf("reports.BestSelling scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ProfitTotals totales del rango [from, to). COALESCE devuelve cero cuando el
// período no tiene ventas. El costo usa p.cost_price actual.
func (r *ReportRepo) ProfitTotals(ctx context.Context, from, to time.Time) (repository.ProfitTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(s.selling_price * s.quantity), 0) AS revenue,
	    COALESCE(SUM(p.cost_price * s.quantity), 0)    AS cost,
	    COALESCE(SUM(s.profit), 0)                     AS profit,
	    COUNT(*)                                       AS sale_count
	FROM sales s
	JOIN parts p ON p.id = s.part_id
	WHERE s.sale_date >= $1 AND s.sale_date < $2`

	var totals repository.ProfitTotals
	err := r.pool.QueryRow(ctx, query, from, to).Scan(
		&totals.Revenue, &totals.Cost, &totals.Profit, &totals.Count,
	)
	if err != nil {
		return repository.ProfitTotals{}, fmt.Errorf("reports.ProfitTotals: %w", err)
	}
	return totals, nil
}
