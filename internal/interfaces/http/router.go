package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Repuestos-api/internal/application/catalog"
	"github.com/jhoicas/Repuestos-api/internal/application/reports"
	"github.com/jhoicas/Repuestos-api/internal/application/sales"
	"github.com/jhoicas/Repuestos-api/internal/application/staff"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC  *catalog.CatalogUseCase
	RecordSale *sales.RecordSaleUseCase
	ReportsUC  *reports.ReportsUseCase
	StaffUC    *staff.StaffUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de piezas
	parts := api.Group("/parts")
	partHandler := NewPartHandler(deps.CatalogUC)
	parts.Post("/", partHandler.Create)
	parts.Get("/", partHandler.Search)
	parts.Get("/low-stock", partHandler.LowStock)
	parts.Get("/:part_number", partHandler.GetByNumber)
	parts.Put("/:part_number", partHandler.Update)
	parts.Delete("/:part_number", partHandler.Delete)

	// Ventas
	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.RecordSale)
	salesGroup.Post("/", saleHandler.Record)

	// Reportes
	reportsGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup.Get("/daily", reportHandler.Daily)
	reportsGroup.Get("/monthly", reportHandler.Monthly)
	reportsGroup.Get("/best-selling", reportHandler.BestSelling)
	reportsGroup.Get("/profit-analysis", reportHandler.ProfitAnalysis)
	reportsGroup.Get("/sales", reportHandler.Sales)

	// Trabajadores y nómina
	workers := api.Group("/workers")
	workerHandler := NewWorkerHandler(deps.StaffUC)
	workers.Post("/", workerHandler.Create)
	workers.Get("/", workerHandler.List)
	workers.Get("/:id", workerHandler.Get)
	workers.Put("/:id", workerHandler.Update)
	workers.Delete("/:id", workerHandler.Delete)
	workers.Get("/:id/payroll", workerHandler.Payroll)

	// Asistencia
	attendance := api.Group("/attendance")
	attendanceHandler := NewAttendanceHandler(deps.StaffUC)
	attendance.Post("/", attendanceHandler.Register)
	attendance.Get("/", attendanceHandler.Daily)
	attendance.Get("/monthly", attendanceHandler.Monthly)
}
