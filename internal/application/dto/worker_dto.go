package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWorkerRequest entrada para registrar un trabajador.
type CreateWorkerRequest struct {
	Name   string          `json:"name" validate:"required,min=1,max=100"`
	Phone  string          `json:"phone"`
	Salary decimal.Decimal `json:"salary"`
}

// UpdateWorkerRequest entrada para actualizar un trabajador (campos mutables explícitos).
type UpdateWorkerRequest struct {
	Name   string          `json:"name" validate:"required,min=1,max=100"`
	Phone  string          `json:"phone"`
	Salary decimal.Decimal `json:"salary"`
}

// WorkerResponse salida de un trabajador.
type WorkerResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Salary    decimal.Decimal `json:"salary"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// WorkerListResponse lista de trabajadores.
type WorkerListResponse struct {
	Items []WorkerResponse `json:"items"`
	Total int              `json:"total"`
}

// PayrollResponse liquidación mensual de un trabajador con descuentos por asistencia.
type PayrollResponse struct {
	WorkerID        string          `json:"worker_id"`
	Period          string          `json:"period"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	AbsentDays      int             `json:"absent_days"`
	LateDays        int             `json:"late_days"`
	AbsentDeduction decimal.Decimal `json:"absent_deduction"`
	LateDeduction   decimal.Decimal `json:"late_deduction"`
	FinalSalary     decimal.Decimal `json:"final_salary"`
}
