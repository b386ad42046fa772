package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Worker empleado del taller con salario mensual base.
type Worker struct {
	ID        string
	Name      string
	Phone     string
	Salary    decimal.Decimal // salario mensual, > 0
	CreatedAt time.Time
	UpdatedAt time.Time
}
