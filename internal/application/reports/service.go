package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/wramirez/minimarket-crm/internal/application/dto"
	"github.com/wramirez/minimarket-crm/internal/domain"
	"github.com/wramirez/minimarket-crm/internal/domain/repository"
	"github.com/wramirez/minimarket-crm/pkg/logger"
)

// Períodos soportados por los reportes de ventas.
const (
	PeriodWeekly  = "semanal"
	PeriodMonthly = "mensual"
	PeriodAnnual  = "anual"
)

// Service reportes de ventas, clientes por país y exportaciones.
type Service struct {
	reports   repository.ReportRepository
	employees repository.EmployeeRepository
	pdf       PDFRenderer
	excel     ExcelRenderer
	log       *logger.Logger
}

// NewService construye el servicio de reportes.
func NewService(
	reports repository.ReportRepository,
	employees repository.EmployeeRepository,
	pdf PDFRenderer,
	excel ExcelRenderer,
	log *logger.Logger,
) *Service {
	return &Service{reports: reports, employees: employees, pdf: pdf, excel: excel, log: log}
}

// SalesReport estadísticas y detalle de ventas del período (semanal, mensual
// o anual; por defecto mensual). Un período sin ventas produce ceros.
func (s *Service) SalesReport(ctx context.Context, period string) (*dto.SalesReportResponse, error) {
	period, title, start, end, err := resolvePeriod(period)
	if err != nil {
		return nil, err
	}
	summary, err := s.reports.SalesSummary(ctx, start, end)
	if err != nil {
		return nil, err
	}
	detail, err := s.reports.SalesDetail(ctx, start, end)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.SalesDetailResponse, 0, len(detail))
	for _, d := range detail {
		rows = append(rows, dto.SalesDetailResponse{
			SaleID:       d.SaleID,
			CustomerName: d.CustomerName,
			ItemCount:    d.ItemCount,
			Total:        d.Total,
			Date:         d.Date.Format("2006-01-02 15:04"),
			Seller:       d.Seller,
		})
	}
	return &dto.SalesReportResponse{
		Period:    period,
		Title:     title,
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		Summary: dto.SalesSummaryResponse{
			TotalAmount:      summary.TotalAmount,
			TransactionCount: summary.TransactionCount,
			AverageAmount:    summary.AverageAmount,
		},
		Detail: rows,
	}, nil
}

// CustomersByCountry clientes agrupados por país, descendente por total.
func (s *Service) CustomersByCountry(ctx context.Context) ([]dto.CountryCountResponse, error) {
	counts, err := s.reports.CustomersByCountry(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CountryCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.CountryCountResponse{Country: c.Country, Count: c.Count})
	}
	return out, nil
}

// ExportEmployeesExcel listado completo de empleados en xlsx.
func (s *Service) ExportEmployeesExcel(ctx context.Context) ([]byte, string, error) {
	employees, err := s.employees.List(ctx, "")
	if err != nil {
		return nil, "", err
	}
	raw, err := s.excel.RenderEmployees(employees)
	if err != nil {
		return nil, "", err
	}
	return raw, "empleados.xlsx", nil
}

// ExportEmployeesPDF listado completo de empleados en pdf.
func (s *Service) ExportEmployeesPDF(ctx context.Context) ([]byte, string, error) {
	employees, err := s.employees.List(ctx, "")
	if err != nil {
		return nil, "", err
	}
	raw, err := s.pdf.RenderEmployeeReport(employees)
	if err != nil {
		return nil, "", err
	}
	return raw, "empleados.pdf", nil
}

// ExportSalesExcel detalle de ventas del período en xlsx.
func (s *Service) ExportSalesExcel(ctx context.Context, period string) ([]byte, string, error) {
	period, title, start, end, err := resolvePeriod(period)
	if err != nil {
		return nil, "", err
	}
	detail, err := s.reports.SalesDetail(ctx, start, end)
	if err != nil {
		return nil, "", err
	}
	raw, err := s.excel.RenderSalesDetail(title, detail)
	if err != nil {
		return nil, "", err
	}
	return raw, fmt.Sprintf("reporte_ventas_%s.xlsx", period), nil
}

// resolvePeriod traduce el período a un rango [ahora-N días, ahora].
func resolvePeriod(period string) (normalized, title string, start, end time.Time, err error) {
	end = time.Now().UTC()
	switch period {
	case PeriodWeekly:
		return PeriodWeekly, "Reporte Semanal de Ventas", end.AddDate(0, 0, -7), end, nil
	case PeriodMonthly, "":
		return PeriodMonthly, "Reporte Mensual de Ventas", end.AddDate(0, 0, -30), end, nil
	case PeriodAnnual:
		return PeriodAnnual, "Reporte Anual de Ventas", end.AddDate(0, 0, -365), end, nil
	default:
		return "", "", time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
}
