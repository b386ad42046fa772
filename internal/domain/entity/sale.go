package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registro inmutable de una venta: nunca se actualiza ni se borra.
// SellingPrice es el precio al momento de la venta (independiente del precio
// actual de la pieza); Profit se calcula una sola vez al registrar:
// (SellingPrice - CostPrice de la pieza en ese momento) * Quantity.
type Sale struct {
	ID           string
	PartID       string
	Quantity     int
	SellingPrice decimal.Decimal
	SaleDate     time.Time
	Profit       decimal.Decimal
}
