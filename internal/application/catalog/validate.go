package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Repuestos-api/internal/domain"
)

// Mensajes de validación del catálogo. Se devuelven tal cual al usuario.
const (
	msgPartNumberRequired = "el número de pieza es requerido"
	msgNameRequired       = "el nombre de la pieza es requerido"
	msgQuantityNegative   = "la cantidad debe ser mayor o igual a cero"
	msgCostNotPositive    = "el precio de costo debe ser mayor que cero"
	msgPriceNotPositive   = "el precio de venta debe ser mayor que cero"
	msgPriceBelowCost     = "el precio de venta no puede ser menor que el precio de costo"
)

// ValidatePart aplica las reglas del catálogo en orden fijo y devuelve un
// ValidationError con la primera regla violada:
// número de pieza → nombre → cantidad negativa → costo no positivo →
// precio no positivo → precio menor que costo.
func ValidatePart(partNumber, name string, quantity int, costPrice, sellingPrice decimal.Decimal) error {
	if partNumber == "" {
		return domain.NewValidation(msgPartNumberRequired)
	}
	if name == "" {
		return domain.NewValidation(msgNameRequired)
	}
	if quantity < 0 {
		return domain.NewValidation(msgQuantityNegative)
	}
	if !costPrice.GreaterThan(decimal.Zero) {
		return domain.NewValidation(msgCostNotPositive)
	}
	if !sellingPrice.GreaterThan(decimal.Zero) {
		return domain.NewValidation(msgPriceNotPositive)
	}
	if sellingPrice.LessThan(costPrice) {
		return domain.NewValidation(msgPriceBelowCost)
	}
	return nil
}
