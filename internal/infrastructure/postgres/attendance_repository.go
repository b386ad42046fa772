package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo implementación de AttendanceRepository sobre PostgreSQL.
type AttendanceRepo struct {
	q Querier
}

// NewAttendanceRepository construye el adaptador de asistencia. Pasar pool o tx (Querier).
func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

// Upsert inserta la marca del día o sobreescribe el estado si ya existe
// (constraint único sobre worker_id + date).
func (r *AttendanceRepo) Upsert(att *entity.Attendance) error {
	query := `
		INSERT INTO attendance (id, worker_id, date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (worker_id, date)
		DO UPDATE SET status = EXCLUDED.status`
	_, err := r.q.Exec(context.Background(), query, att.ID, att.WorkerID, att.Date, att.Status)
	if err != nil {
		return fmt.Errorf("upsert attendance: %w", err)
	}
	return nil
}

// ListByDate marcas de asistencia de un día calendario.
func (r *AttendanceRepo) ListByDate(date time.Time) ([]*entity.Attendance, error) {
	query := `
		SELECT a.id, a.worker_id, a.date, a.status
		FROM attendance a
		JOIN workers w ON w.id = a.worker_id
		WHERE a.date = $1::date
		ORDER BY w.name`
	rows, err := r.q.Query(context.Background(), query, date)
	if err != nil {
		return nil, fmt.Errorf("list attendance by date: %w", err)
	}
	defer rows.Close()
	var list []*entity.Attendance
	for rows.Next() {
		var a entity.Attendance
		if err := rows.Scan(&a.ID, &a.WorkerID, &a.Date, &a.Status); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// CountByStatus días por estado de un trabajador en [from, to] inclusive.
func (r *AttendanceRepo) CountByStatus(workerID string, from, to time.Time) (repository.AttendanceCounts, error) {
	const query = `
	SELECT
	    COUNT(*) FILTER (WHERE status = 'PRESENT')  AS present_days,
	    COUNT(*) FILTER (WHERE status = 'ABSENT')   AS absent_days,
	    COUNT(*) FILTER (WHERE status = 'LATE')     AS late_days,
	    COUNT(*) FILTER (WHERE status = 'VACATION') AS vacation_days
	FROM attendance
	WHERE worker_id = $1 AND date BETWEEN $2 AND $3`

	var counts repository.AttendanceCounts
	err := r.q.QueryRow(context.Background(), query, workerID, from, to).Scan(
		&counts.Present, &counts.Absent, &counts.Late, &counts.Vacation,
	)
	if err != nil {
		return repository.AttendanceCounts{}, fmt.Errorf("count attendance by status: %w", err)
	}
	return counts, nil
}

// SummaryByWorker resumen de asistencia de todos los trabajadores en [from, to].
// LEFT JOIN: los trabajadores sin marcas aparecen con conteos en cero.
func (r *AttendanceRepo) SummaryByWorker(from, to time.Time) ([]repository.WorkerAttendanceSummary, error) {
	const query = `
	SELECT
	    w.id,
	    w.name,
	    w.salary,
	    COUNT(*) FILTER (WHERE a.status = 'PRESENT')  AS present_days,
	    COUNT(*) FILTER (WHERE a.status = 'ABSENT')   AS absent_days,
	    COUNT(*) FILTER (WHERE a.status = 'LATE')     AS late_days,
	    COUNT(*) FILTER (WHERE a.status = 'VACATION') AS vacation_days
	FROM workers w
	LEFT JOIN attendance a ON a.worker_id = w.id AND a.date BETWEEN $1 AND $2
	GROUP BY w.id, w.name, w.salary
	ORDER BY w.name`

	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("attendance summary: %w", err)
	}
	defer rows.Close()
	var results []repository.WorkerAttendanceSummary
	for rows.Next() {
		var s repository.WorkerAttendanceSummary
		if err := rows.Scan(
			&s.WorkerID, &s.WorkerName, &s.Salary,
			&s.Counts.Present, &s.Counts.Absent, &s.Counts.Late, &s.Counts.Vacation,
		); err != nil {
			return nil, fmt.Errorf("scan attendance summary: %w", err)
		}
		results = append(results, s)
	}
	return results, rows.Err()
}
