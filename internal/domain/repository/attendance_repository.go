package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// AttendanceCounts días por estado dentro de un rango de fechas.
type AttendanceCounts struct {
	Present  int
	Absent   int
	Late     int
	Vacation int
}

// WorkerAttendanceSummary resumen mensual de asistencia por trabajador.
type WorkerAttendanceSummary struct {
	WorkerID   string
	WorkerName string
	Salary     decimal.Decimal
	Counts     AttendanceCounts
}

// AttendanceRepository define el puerto de persistencia para Attendance.
type AttendanceRepository interface {
	// Upsert inserta la marca del día o sobreescribe el estado si ya existe
	// (clave única worker_id + date).
	Upsert(att *entity.Attendance) error
	ListByDate(date time.Time) ([]*entity.Attendance, error)
	CountByStatus(workerID string, from, to time.Time) (AttendanceCounts, error)
	// SummaryByWorker resume la asistencia de todos los trabajadores en [from, to].
	SummaryByWorker(from, to time.Time) ([]WorkerAttendanceSummary, error)
}
