package repository

import "github.com/jhoicas/Repuestos-api/internal/domain/entity"

// PartRepository define el puerto de persistencia para Part (DIP).
// Los métodos de lectura devuelven (nil, nil) cuando la pieza no existe.
type PartRepository interface {
	Create(part *entity.Part) error
	GetByNumber(partNumber string) (*entity.Part, error)
	// GetByNumberForUpdate bloquea la fila (SELECT FOR UPDATE); usar dentro de una tx.
	GetByNumberForUpdate(partNumber string) (*entity.Part, error)
	// Search busca por nombre o número de pieza (substring, case-insensitive).
	// Término vacío devuelve todo el catálogo.
	Search(term string) ([]*entity.Part, error)
	ListByType(partType string) ([]*entity.Part, error)
	Update(part *entity.Part) error
	// UpdateQuantity actualiza solo la cantidad (usado por el registrador de ventas).
	UpdateQuantity(id string, quantity int) error
	LowStock(threshold int) ([]*entity.Part, error)
	Delete(id string) error
}
