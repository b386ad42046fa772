package dto

// RegisterAttendanceRequest marca (o re-marca) la asistencia de un día.
type RegisterAttendanceRequest struct {
	WorkerID string `json:"worker_id" validate:"required"`
	Date     string `json:"date" validate:"required"` // formato 2006-01-02
	Status   string `json:"status" validate:"required"`
}

// AttendanceResponse marca de asistencia persistida.
type AttendanceResponse struct {
	ID       string `json:"id"`
	WorkerID string `json:"worker_id"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

// AttendanceListResponse marcas de un día calendario.
type AttendanceListResponse struct {
	Date  string               `json:"date"`
	Items []AttendanceResponse `json:"items"`
}

// WorkerAttendanceSummaryItem resumen mensual de asistencia de un trabajador.
type WorkerAttendanceSummaryItem struct {
	WorkerID     string `json:"worker_id"`
	WorkerName   string `json:"worker_name"`
	PresentDays  int    `json:"present_days"`
	AbsentDays   int    `json:"absent_days"`
	LateDays     int    `json:"late_days"`
	VacationDays int    `json:"vacation_days"`
}

// MonthlyAttendanceResponse resumen de asistencia del mes para todos los trabajadores.
type MonthlyAttendanceResponse struct {
	Period string                        `json:"period"`
	Items  []WorkerAttendanceSummaryItem `json:"items"`
}
