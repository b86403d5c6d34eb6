package restock

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/Inventario-restock/internal/application/dto"
	"github.com/jhoicas/Inventario-restock/internal/domain"
	"github.com/jhoicas/Inventario-restock/internal/domain/authz"
)

// DefaultExportFormat formato cuando la petición no indica ninguno.
const DefaultExportFormat = "csv"

// ReportRenderer genera el archivo del reporte en un formato concreto.
// Lo implementan los adaptadores de infrastructure/export e infrastructure/pdf.
type ReportRenderer interface {
	Render(ctx context.Context, report *dto.LowStockReportDTO) ([]byte, error)
	ContentType() string
	Extension() string
}

// ExportFile archivo listo para descargar.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ExportUseCase exporta el reporte de bajo stock (botón "Export" de la consola).
type ExportUseCase struct {
	report    *ReportUseCase
	renderers map[string]ReportRenderer
}

// NewExportUseCase construye el caso de uso con los formatos disponibles (clave = formato).
func NewExportUseCase(report *ReportUseCase, renderers map[string]ReportRenderer) *ExportUseCase {
	return &ExportUseCase{report: report, renderers: renderers}
}

// Formats formatos registrados, en orden alfabético.
func (uc *ExportUseCase) Formats() []string {
	out := make([]string, 0, len(uc.renderers))
	for f := range uc.renderers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Export valida el formato antes de consultar el backend; formato desconocido → ErrInvalidInput.
// Con la lista vacía se genera igualmente el archivo (solo encabezados).
func (uc *ExportUseCase) Export(ctx context.Context, p *authz.Principal, q dto.ExportQuery) (*ExportFile, error) {
	format := strings.ToLower(strings.TrimSpace(q.Format))
	if format == "" {
		format = DefaultExportFormat
	}
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("formato de exporte %q, usar %s: %w",
			format, strings.Join(uc.Formats(), "|"), domain.ErrInvalidInput)
	}

	report, err := uc.report.GetLowStockReport(ctx, p, dto.LowStockQuery{Search: q.Search})
	if err != nil {
		return nil, err
	}

	data, err := renderer.Render(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("exporte %s: %w", format, err)
	}

	return &ExportFile{
		Name:        fmt.Sprintf("low_stock_%s.%s", report.Period, renderer.Extension()),
		ContentType: renderer.ContentType(),
		Data:        data,
	}, nil
}
