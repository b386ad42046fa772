package entity

import "time"

// Estados de asistencia. ABSENT descuenta día completo en la nómina;
// LATE descuenta el 25% del día; VACATION no descuenta.
const (
	AttendancePRESENT  = "PRESENT"
	AttendanceABSENT   = "ABSENT"
	AttendanceLATE     = "LATE"
	AttendanceVACATION = "VACATION"
)

// Attendance marca de asistencia de un trabajador para un día calendario.
// La pareja (WorkerID, Date) es única: volver a marcar el día sobreescribe el estado.
type Attendance struct {
	ID       string
	WorkerID string
	Date     time.Time // solo componente fecha
	Status   string
}

// ValidAttendanceStatus verifica que el estado sea uno de los permitidos.
func ValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePRESENT, AttendanceABSENT, AttendanceLATE, AttendanceVACATION:
		return true
	}
	return false
}
