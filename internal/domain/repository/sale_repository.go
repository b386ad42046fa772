package repository

import "github.com/jhoicas/Repuestos-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale.
// Las ventas son inmutables: solo altas y lecturas, nunca update ni delete.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// CountByPart cuenta las ventas que referencian una pieza (guard referencial del delete).
	CountByPart(partID string) (int64, error)
}
