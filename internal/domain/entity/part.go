package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part representa una pieza de repuesto del catálogo del taller.
// PartNumber es el código externo único; Quantity nunca baja de cero
// (cada venta lo decrementa dentro de una transacción).
type Part struct {
	ID           string
	PartNumber   string // código único asignado externamente
	Name         string
	Type         string // etiqueta de categoría (filtro, freno, etc.)
	Quantity     int
	CostPrice    decimal.Decimal // > 0
	SellingPrice decimal.Decimal // > 0 y >= CostPrice al crear/editar
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
