package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

var _ repository.WorkerRepository = (*WorkerRepo)(nil)

// WorkerRepo implementación de WorkerRepository sobre PostgreSQL.
type WorkerRepo struct {
	q Querier
}

// NewWorkerRepository construye el adaptador de trabajadores. Pasar pool o tx (Querier).
func NewWorkerRepository(q Querier) *WorkerRepo {
	return &WorkerRepo{q: q}
}

// Create persiste un trabajador nuevo.
func (r *WorkerRepo) Create(worker *entity.Worker) error {
	query := `
		INSERT INTO workers (id, name, phone, salary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		worker.ID, worker.Name, worker.Phone, worker.Salary, worker.CreatedAt, worker.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert worker: %w", err)
	}
	return nil
}

// GetByID obtiene un trabajador por ID. Devuelve (nil, nil) si no existe.
func (r *WorkerRepo) GetByID(id string) (*entity.Worker, error) {
	query := `
		SELECT id, name, phone, salary, created_at, updated_at
		FROM workers WHERE id = $1`
	var w entity.Worker
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.Name, &w.Phone, &w.Salary, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get worker: %w", err)
	}
	return &w, nil
}

// Update actualiza los campos mutables de un trabajador.
func (r *WorkerRepo) Update(worker *entity.Worker) error {
	query := `
		UPDATE workers SET name = $2, phone = $3, salary = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		worker.ID, worker.Name, worker.Phone, worker.Salary, worker.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update worker: %w", err)
	}
	return nil
}

// Delete elimina un trabajador y sus marcas de asistencia (ON DELETE CASCADE).
func (r *WorkerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete worker: %w", err)
	}
	return nil
}

// List lista todos los trabajadores ordenados por nombre.
func (r *WorkerRepo) List() ([]*entity.Worker, error) {
	query := `
		SELECT id, name, phone, salary, created_at, updated_at
		FROM workers ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Worker
	for rows.Next() {
		var w entity.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.Phone, &w.Salary, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
