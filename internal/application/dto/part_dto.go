package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartRequest entrada para crear una pieza.
type CreatePartRequest struct {
	PartNumber   string          `json:"part_number" validate:"required,min=1,max=50"`
	Name         string          `json:"name" validate:"required,min=1,max=100"`
	Type         string          `json:"type"`
	Quantity     int             `json:"quantity"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// UpdatePartRequest entrada para actualizar una pieza. Enumera solo los campos
// mutables; el part_number nunca cambia. Todos los campos se re-validan y se
// aplican completos (no es un patch parcial).
type UpdatePartRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=100"`
	Type         string          `json:"type"`
	Quantity     int             `json:"quantity"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// PartResponse salida de una pieza.
type PartResponse struct {
	ID           string          `json:"id"`
	PartNumber   string          `json:"part_number"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Quantity     int             `json:"quantity"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PartListResponse lista de piezas (búsqueda, tipo o stock bajo).
type PartListResponse struct {
	Items []PartResponse `json:"items"`
	Total int            `json:"total"`
}
