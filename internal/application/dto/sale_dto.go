package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada para registrar una venta.
type RecordSaleRequest struct {
	PartNumber   string          `json:"part_number" validate:"required"`
	Quantity     int             `json:"quantity"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// SaleResponse salida de una venta registrada.
type SaleResponse struct {
	ID           string          `json:"id"`
	PartID       string          `json:"part_id"`
	Quantity     int             `json:"quantity"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	SaleDate     time.Time       `json:"sale_date"`
	Profit       decimal.Decimal `json:"profit"`
}
