package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Repuestos-api/internal/application/catalog"
	"github.com/jhoicas/Repuestos-api/internal/domain"
)

// Las reglas del catálogo se evalúan en orden fijo y se reporta solo la
// primera violada. Los tests cubren cada regla y la precedencia entre ellas.

func TestValidatePart_ReglasEnOrden(t *testing.T) {
	cost := decimal.NewFromInt(100)
	price := decimal.NewFromInt(150)

	cases := []struct {
		name         string
		partNumber   string
		partName     string
		quantity     int
		costPrice    decimal.Decimal
		sellingPrice decimal.Decimal
		wantReason   string
	}{
		{
			name:       "número de pieza vacío",
			partNumber: "", partName: "Filtro de aceite",
			quantity: 10, costPrice: cost, sellingPrice: price,
			wantReason: "el número de pieza es requerido",
		},
		{
			name:       "nombre vacío",
			partNumber: "FLT-001", partName: "",
			quantity: 10, costPrice: cost, sellingPrice: price,
			wantReason: "el nombre de la pieza es requerido",
		},
		{
			name:       "cantidad negativa",
			partNumber: "FLT-001", partName: "Filtro de aceite",
			quantity: -1, costPrice: cost, sellingPrice: price,
			wantReason: "la cantidad debe ser mayor o igual a cero",
		},
		{
			name:       "costo cero",
			partNumber: "FLT-001", partName: "Filtro de aceite",
			quantity: 10, costPrice: decimal.Zero, sellingPrice: price,
			wantReason: "el precio de costo debe ser mayor que cero",
		},
		{
			name:       "precio de venta cero",
			partNumber: "FLT-001", partName: "Filtro de aceite",
			quantity: 10, costPrice: cost, sellingPrice: decimal.Zero,
			wantReason: "el precio de venta debe ser mayor que cero",
		},
		{
			name:       "precio de venta menor que el costo",
			partNumber: "FLT-001", partName: "Filtro de aceite",
			quantity: 10, costPrice: cost, sellingPrice: decimal.NewFromInt(99),
			wantReason: "el precio de venta no puede ser menor que el precio de costo",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := catalog.ValidatePart(tc.partNumber, tc.partName, tc.quantity, tc.costPrice, tc.sellingPrice)
			require.Error(t, err)
			require.True(t, domain.IsValidation(err), "debe ser error de validación")
			assert.Equal(t, tc.wantReason, err.Error())
		})
	}
}

func TestValidatePart_PrecedenciaPrimeraRegla(t *testing.T) {
	// Varias reglas violadas a la vez: gana la primera del orden.
	err := catalog.ValidatePart("", "", -5, decimal.Zero, decimal.Zero)
	require.Error(t, err)
	assert.Equal(t, "el número de pieza es requerido", err.Error())
}

func TestValidatePart_PiezaValida(t *testing.T) {
	err := catalog.ValidatePart("FLT-001", "Filtro de aceite", 0,
		decimal.NewFromInt(100), decimal.NewFromInt(100))
	assert.NoError(t, err, "cantidad cero y precio igual al costo son válidos")
}
