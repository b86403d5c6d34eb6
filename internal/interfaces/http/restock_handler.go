package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-restock/internal/application/dto"
	apprestock "github.com/jhoicas/Inventario-restock/internal/application/restock"
)

// RestockHandler endpoints del reporte de bajo stock (protegido).
type RestockHandler struct {
	report    *apprestock.ReportUseCase
	export    *apprestock.ExportUseCase
	snapshots *apprestock.SnapshotUseCase
}

// NewRestockHandler construye el handler.
func NewRestockHandler(report *apprestock.ReportUseCase, export *apprestock.ExportUseCase, snapshots *apprestock.SnapshotUseCase) *RestockHandler {
	return &RestockHandler{report: report, export: export, snapshots: snapshots}
}

// GetLowStock godoc
// @Summary      Bajo stock con prioridad de demanda
// @Description  Une el feed de bajo stock con las ventas del mes en curso y clasifica
//
//	cada producto en High / Medium / Low. Si el reporte de ventas falla,
//	sales_available=false y todas las ventas quedan en 0.
//
// @Tags         restock
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "Filtro por nombre (subcadena, sin distinguir mayúsculas)"
// @Success      200  {object}  dto.LowStockReportDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/restock/low-stock [get]
func (h *RestockHandler) GetLowStock(c *fiber.Ctx) error {
	var q dto.LowStockQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	report, err := h.report.GetLowStockReport(c.UserContext(), GetPrincipal(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// Export godoc
// @Summary      Exportar bajo stock
// @Tags         restock
// @Security     Bearer
// @Produce      text/csv
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      application/pdf
// @Param        format  query  string  false  "csv | xlsx | pdf (default csv)"
// @Param        q       query  string  false  "Filtro por nombre"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/restock/low-stock/export [get]
func (h *RestockHandler) Export(c *fiber.Ctx) error {
	var q dto.ExportQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	file, err := h.export.Export(c.UserContext(), GetPrincipal(c), q)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(file.Name)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Data)
}

// ListSnapshots godoc
// @Summary      Snapshots del cliente
// @Tags         restock
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Máximo 100 (default 20)"
// @Param        offset  query  int  false  "Desplazamiento"
// @Success      200  {object}  dto.SnapshotListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/restock/snapshots [get]
func (h *RestockHandler) ListSnapshots(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "limit/offset inválidos"})
	}
	list, err := h.snapshots.List(c.UserContext(), GetPrincipal(c), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// CreateSnapshot godoc
// @Summary      Guardar snapshot ahora
// @Description  Calcula el reporte con el token del usuario y lo guarda para su cliente.
// @Tags         restock
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.SnapshotDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/restock/snapshots [post]
func (h *RestockHandler) CreateSnapshot(c *fiber.Ctx) error {
	s, err := h.snapshots.Create(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}
