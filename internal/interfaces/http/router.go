package http

import (
	"github.com/gofiber/fiber/v2"

	apprestock "github.com/jhoicas/Inventario-restock/internal/application/restock"
	"github.com/jhoicas/Inventario-restock/internal/domain/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Report    *apprestock.ReportUseCase
	Export    *apprestock.ExportUseCase
	Snapshots *apprestock.SnapshotUseCase
	JWTSecret string
	JWTIssuer string
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	protected := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	protected.Get("/me/navigation", GetNavigation)

	restock := protected.Group("/restock")
	h := NewRestockHandler(deps.Report, deps.Export, deps.Snapshots)
	restock.Get("/low-stock", RequirePermission(authz.PermLowStockView), h.GetLowStock)
	restock.Get("/low-stock/export",
		RequireAnyPermission(authz.PermLowStockView, authz.PermReportView), h.Export)
	restock.Get("/snapshots",
		RequireAnyPermission(authz.PermLowStockView, authz.PermReportView), h.ListSnapshots)
	restock.Post("/snapshots", RequirePermission(authz.PermLowStockView), h.CreateSnapshot)
}
