package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/staff"
)

// AttendanceHandler maneja las marcas de asistencia.
type AttendanceHandler struct {
	uc *staff.StaffUseCase
}

// NewAttendanceHandler construye el handler.
func NewAttendanceHandler(uc *staff.StaffUseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// Register godoc
// @Summary      Marcar asistencia de un trabajador (remarcar el mismo día sobreescribe)
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterAttendanceRequest  true  "Marca de asistencia"
// @Success      201   {object}  dto.AttendanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/attendance [post]
func (h *AttendanceHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterAttendanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterAttendance(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Daily godoc
// @Summary      Asistencia de todos los trabajadores para un día
// @Tags         attendance
// @Produce      json
// @Param        date  query  string  true  "Fecha (2006-01-02)"
// @Success      200  {object}  dto.AttendanceListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/attendance [get]
func (h *AttendanceHandler) Daily(c *fiber.Ctx) error {
	date, err := time.ParseInLocation(dateLayout, c.Query("date"), time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "date requerido, formato 2006-01-02"})
	}
	out, err := h.uc.DailyAttendance(date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Monthly godoc
// @Summary      Resumen mensual de asistencia por trabajador
// @Tags         attendance
// @Produce      json
// @Param        year   query  int  true  "Año"
// @Param        month  query  int  true  "Mes (1-12)"
// @Success      200  {object}  dto.MonthlyAttendanceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/attendance/monthly [get]
func (h *AttendanceHandler) Monthly(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	if year <= 0 || month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "year y month (1-12) son requeridos"})
	}
	out, err := h.uc.MonthlyAttendance(year, month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
