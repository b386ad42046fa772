package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/reports"
)

const dateLayout = "2006-01-02"

// ReportHandler maneja los reportes de ventas (solo lectura, fail-soft).
type ReportHandler struct {
	uc *reports.ReportsUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportsUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Daily godoc
// @Summary      Reporte de ventas de un día
// @Tags         reports
// @Produce      json
// @Param        date  query  string  true  "Fecha (2006-01-02)"
// @Success      200  {object}  dto.DailyReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	date, err := time.ParseInLocation(dateLayout, c.Query("date"), time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "date requerido, formato 2006-01-02"})
	}
	return c.JSON(h.uc.DailyReport(c.Context(), date))
}

// Monthly godoc
// @Summary      Reporte mensual con desglose por día
// @Tags         reports
// @Produce      json
// @Param        year   query  int  true  "Año"
// @Param        month  query  int  true  "Mes (1-12)"
// @Success      200  {object}  dto.MonthlyReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	if year <= 0 || month < 1 || month > 12 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "year y month (1-12) son requeridos"})
	}
	return c.JSON(h.uc.MonthlyReport(c.Context(), year, month))
}

// BestSelling godoc
// @Summary      Piezas más vendidas de un período
// @Tags         reports
// @Produce      json
// @Param        from   query  string  true   "Fecha inicial (2006-01-02)"
// @Param        to     query  string  true   "Fecha final inclusive (2006-01-02)"
// @Param        limit  query  int     false  "Máximo de piezas"  default(5)
// @Success      200  {array}  dto.BestSellingItem
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/best-selling [get]
func (h *ReportHandler) BestSelling(c *fiber.Ctx) error {
	from, to, ok := h.parseRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: "from y to requeridos, formato 2006-01-02"})
	}
	return c.JSON(h.uc.BestSelling(c.Context(), from, to, c.QueryInt("limit", 0)))
}

// ProfitAnalysis godoc
// @Summary      Análisis de rentabilidad de un período
// @Tags         reports
// @Produce      json
// @Param        from  query  string  true  "Fecha inicial (2006-01-02)"
// @Param        to    query  string  true  "Fecha final inclusive (2006-01-02)"
// @Success      200  {object}  dto.ProfitAnalysisResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/profit-analysis [get]
func (h *ReportHandler) ProfitAnalysis(c *fiber.Ctx) error {
	from, to, ok := h.parseRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: "from y to requeridos, formato 2006-01-02"})
	}
	return c.JSON(h.uc.ProfitAnalysis(c.Context(), from, to))
}

// Sales godoc
// @Summary      Listado de ventas de un rango de fechas con totales
// @Tags         reports
// @Produce      json
// @Param        from  query  string  true  "Fecha inicial (2006-01-02)"
// @Param        to    query  string  true  "Fecha final inclusive (2006-01-02)"
// @Success      200  {object}  dto.SalesReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	from, to, ok := h.parseRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: "from y to requeridos, formato 2006-01-02"})
	}
	return c.JSON(h.uc.SalesReport(c.Context(), from, to))
}

// parseRange lee from/to como fechas calendario inclusivas y devuelve el rango
// semiabierto [from, día siguiente a to) que esperan los casos de uso. Sin la
// conversión, las ventas posteriores a la medianoche del último día quedarían
// fuera del reporte.
func (h *ReportHandler) parseRange(c *fiber.Ctx) (time.Time, time.Time, bool) {
	from, errFrom := time.ParseInLocation(dateLayout, c.Query("from"), time.Local)
	to, errTo := time.ParseInLocation(dateLayout, c.Query("to"), time.Local)
	if errFrom != nil || errTo != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, to.AddDate(0, 0, 1), true
}
