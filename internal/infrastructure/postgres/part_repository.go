package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

const partColumns = `id, part_number, name, type, quantity, cost_price, selling_price, created_at, updated_at`

// PartRepo implementación del puerto PartRepository sobre PostgreSQL (usable con pool o tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador de persistencia para piezas. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// Create persiste una pieza nueva. El constraint único de part_number se mapea a ErrDuplicate.
func (r *PartRepo) Create(part *entity.Part) error {
	query := `
		INSERT INTO parts (` + partColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.PartNumber, part.Name, part.Type, part.Quantity,
		part.CostPrice, part.SellingPrice, part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByNumber obtiene una pieza por su número. Devuelve (nil, nil) si no existe.
func (r *PartRepo) GetByNumber(partNumber string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE part_number = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, partNumber), "get part")
}

// GetByNumberForUpdate obtiene la pieza y bloquea la fila (SELECT FOR UPDATE).
func (r *PartRepo) GetByNumberForUpdate(partNumber string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE part_number = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, partNumber), "get part for update")
}

// Search busca por nombre o número (substring, case-insensitive vía ILIKE).
// Término vacío devuelve todo el catálogo.
func (r *PartRepo) Search(term string) ([]*entity.Part, error) {
	query := `
		SELECT ` + partColumns + ` FROM parts
		WHERE name ILIKE '%' || $1 || '%' OR part_number ILIKE '%' || $1 || '%'
		ORDER BY part_number`
	rows, err := r.q.Query(context.Background(), query, term)
	if err != nil {
		return nil, fmt.Errorf("search parts: %w", err)
	}
	return r.scanList(rows)
}

// ListByType lista las piezas de una categoría.
func (r *PartRepo) ListByType(partType string) ([]*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE type = $1 ORDER BY part_number`
	rows, err := r.q.Query(context.Background(), query, partType)
	if err != nil {
		return nil, fmt.Errorf("list parts by type: %w", err)
	}
	return r.scanList(rows)
}

// Update actualiza los campos mutables de una pieza. El part_number no cambia.
func (r *PartRepo) Update(part *entity.Part) error {
	query := `
		UPDATE parts SET name = $2, type = $3, quantity = $4, cost_price = $5, selling_price = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.Name, part.Type, part.Quantity, part.CostPrice, part.SellingPrice, part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update part: %w", err)
	}
	return nil
}

// UpdateQuantity actualiza solo la cantidad (usado por el registrador de ventas, dentro de tx).
func (r *PartRepo) UpdateQuantity(id string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE parts SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update part quantity: %w", err)
	}
	return nil
}

// LowStock lista las piezas con cantidad <= threshold.
func (r *PartRepo) LowStock(threshold int) ([]*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE quantity <= $1 ORDER BY quantity, part_number`
	rows, err := r.q.Query(context.Background(), query, threshold)
	if err != nil {
		return nil, fmt.Errorf("low stock parts: %w", err)
	}
	return r.scanList(rows)
}

// Delete elimina una pieza por ID. La FK de sales se mapea a ErrReferenced
// como último guard (el caso de uso ya verifica antes).
func (r *PartRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferenced
		}
		return fmt.Errorf("delete part: %w", err)
	}
	return nil
}

func (r *PartRepo) scanOne(row pgx.Row, op string) (*entity.Part, error) {
	var p entity.Part
	err := row.Scan(&p.ID, &p.PartNumber, &p.Name, &p.Type, &p.Quantity,
		&p.CostPrice, &p.SellingPrice, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (r *PartRepo) scanList(rows pgx.Rows) ([]*entity.Part, error) {
	defer rows.Close()
	var list []*entity.Part
	for rows.Next() {
		var p entity.Part
		if err := rows.Scan(&p.ID, &p.PartNumber, &p.Name, &p.Type, &p.Quantity,
			&p.CostPrice, &p.SellingPrice, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
