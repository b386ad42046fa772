package staff

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

const (
	msgAttendanceDateInvalid    = "fecha inválida, formato esperado 2006-01-02"
	msgAttendanceStatusInvalid  = "estado de asistencia inválido"
	attendanceDateLayout        = "2006-01-02"
	payrollDaysPerMonth         = 30 // convención del taller para la tarifa diaria
)

// lateDeductionFactor fracción del día descontada por llegada tarde.
var lateDeductionFactor = decimal.RequireFromString("0.25")

// RegisterAttendance marca la asistencia de un trabajador para un día.
// Volver a marcar el mismo día sobreescribe el estado anterior (upsert).
func (uc *StaffUseCase) RegisterAttendance(in dto.RegisterAttendanceRequest) (*dto.AttendanceResponse, error) {
	date, err := time.ParseInLocation(attendanceDateLayout, in.Date, time.Local)
	if err != nil {
		return nil, domain.NewValidation(msgAttendanceDateInvalid)
	}
	if !entity.ValidAttendanceStatus(in.Status) {
		return nil, domain.NewValidation(msgAttendanceStatusInvalid)
	}
	worker, err := uc.workerRepo.GetByID(in.WorkerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrNotFound
	}
	att := &entity.Attendance{
		ID:       uuid.New().String(),
		WorkerID: in.WorkerID,
		Date:     date,
		Status:   in.Status,
	}
	if err := uc.attRepo.Upsert(att); err != nil {
		return nil, err
	}
	return toAttendanceResponse(att), nil
}

// DailyAttendance marcas de asistencia de todos los trabajadores para un día.
func (uc *StaffUseCase) DailyAttendance(date time.Time) (*dto.AttendanceListResponse, error) {
	list, err := uc.attRepo.ListByDate(date)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AttendanceResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAttendanceResponse(a))
	}
	return &dto.AttendanceListResponse{Date: date.Format(attendanceDateLayout), Items: items}, nil
}

// MonthlyAttendance resumen de asistencia del mes por trabajador.
func (uc *StaffUseCase) MonthlyAttendance(year, month int) (*dto.MonthlyAttendanceResponse, error) {
	from, to := monthRange(year, month)
	summaries, err := uc.attRepo.SummaryByWorker(from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WorkerAttendanceSummaryItem, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, dto.WorkerAttendanceSummaryItem{
			WorkerID:     s.WorkerID,
			WorkerName:   s.WorkerName,
			PresentDays:  s.Counts.Present,
			AbsentDays:   s.Counts.Absent,
			LateDays:     s.Counts.Late,
			VacationDays: s.Counts.Vacation,
		})
	}
	return &dto.MonthlyAttendanceResponse{
		Period: fmt.Sprintf("%04d-%02d", year, month),
		Items:  items,
	}, nil
}

// MonthlyPayroll liquida el salario del mes con descuentos por asistencia:
// tarifa diaria = salario / 30; ausencia descuenta el día completo y la
// llegada tarde el 25% del día. Las vacaciones no descuentan.
func (uc *StaffUseCase) MonthlyPayroll(workerID string, year, month int) (*dto.PayrollResponse, error) {
	worker, err := uc.workerRepo.GetByID(workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domain.ErrNotFound
	}
	from, to := monthRange(year, month)
	counts, err := uc.attRepo.CountByStatus(workerID, from, to)
	if err != nil {
		return nil, err
	}

	dailyRate := worker.Salary.Div(decimal.NewFromInt(payrollDaysPerMonth))
	absentDeduction := dailyRate.Mul(decimal.NewFromInt(int64(counts.Absent)))
	lateDeduction := dailyRate.Mul(lateDeductionFactor).Mul(decimal.NewFromInt(int64(counts.Late)))
	finalSalary := worker.Salary.Sub(absentDeduction).Sub(lateDeduction)

	return &dto.PayrollResponse{
		WorkerID:        worker.ID,
		Period:          fmt.Sprintf("%04d-%02d", year, month),
		BaseSalary:      worker.Salary,
		AbsentDays:      counts.Absent,
		LateDays:        counts.Late,
		AbsentDeduction: absentDeduction,
		LateDeduction:   lateDeduction,
		FinalSalary:     finalSalary,
	}, nil
}

// monthRange devuelve el primer y el último día del mes (rango inclusivo).
func monthRange(year, month int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return from, from.AddDate(0, 1, -1)
}

func toAttendanceResponse(a *entity.Attendance) *dto.AttendanceResponse {
	if a == nil {
		return nil
	}
	return &dto.AttendanceResponse{
		ID:       a.ID,
		WorkerID: a.WorkerID,
		Date:     a.Date.Format(attendanceDateLayout),
		Status:   a.Status,
	}
}
