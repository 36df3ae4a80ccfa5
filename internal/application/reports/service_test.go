package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wramirez/minimarket-crm/internal/application/reports"
	"github.com/wramirez/minimarket-crm/internal/domain"
	"github.com/wramirez/minimarket-crm/internal/domain/entity"
	"github.com/wramirez/minimarket-crm/internal/domain/repository"
	"github.com/wramirez/minimarket-crm/pkg/logger"
)

type fakeReportRepo struct {
	summary   repository.SalesSummaryResult
	detail    []repository.SalesDetailRow
	countries []repository.CountryCount

	lastStart, lastEnd time.Time
}

func (f *fakeReportRepo) SalesSummary(_ context.Context, start, end time.Time) (repository.SalesSummaryResult, error) {
	f.lastStart, f.lastEnd = start, end
	return f.summary, nil
}
func (f *fakeReportRepo) SalesDetail(_ context.Context, start, end time.Time) ([]repository.SalesDetailRow, error) {
	return f.detail, nil
}
func (f *fakeReportRepo) CustomersByCountry(_ context.Context) ([]repository.CountryCount, error) {
	return f.countries, nil
}

type fakeEmployeeLister struct {
	employees []*entity.Employee
}

func (f *fakeEmployeeLister) Create(_ context.Context, _ *entity.Employee) error { return nil }
func (f *fakeEmployeeLister) GetByID(_ context.Context, _ string) (*entity.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeLister) GetByDocument(_ context.Context, _ string) (*entity.Employee, error) {
	return nil, nil
}
func (f *fakeEmployeeLister) List(_ context.Context, _ string) ([]*entity.Employee, error) {
	return f.employees, nil
}
func (f *fakeEmployeeLister) Update(_ context.Context, _ string, _ repository.EmployeePatch) (repository.UpdateResult, error) {
	return repository.UpdateResult{}, nil
}
func (f *fakeEmployeeLister) Delete(_ context.Context, _ string) (repository.DeleteResult, error) {
	return repository.DeleteResult{}, nil
}

type fakePDFRenderer struct{ raw []byte }

func (f *fakePDFRenderer) RenderEmployeeReport(_ []*entity.Employee) ([]byte, error) {
	return f.raw, nil
}

type fakeExcelRenderer struct {
	raw       []byte
	lastTitle string
}

func (f *fakeExcelRenderer) RenderEmployees(_ []*entity.Employee) ([]byte, error) {
	return f.raw, nil
}
func (f *fakeExcelRenderer) RenderSalesDetail(title string, _ []repository.SalesDetailRow) ([]byte, error) {
	f.lastTitle = title
	return f.raw, nil
}

func newService(repo *fakeReportRepo, excel *fakeExcelRenderer) *reports.Service {
	return reports.NewService(
		repo,
		&fakeEmployeeLister{employees: []*entity.Employee{{ID: "e1", Name: "Ana"}}},
		&fakePDFRenderer{raw: []byte("%PDF")},
		excel,
		logger.Nop(),
	)
}

func TestSalesReport_PeriodoPorDefectoMensual(t *testing.T) {
	repo := &fakeReportRepo{
		summary: repository.SalesSummaryResult{
			TotalAmount:      decimal.NewFromInt(50000),
			TransactionCount: 4,
			AverageAmount:    decimal.NewFromInt(12500),
		},
	}
	svc := newService(repo, &fakeExcelRenderer{raw: []byte("xlsx")})

	report, err := svc.SalesReport(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, reports.PeriodMonthly, report.Period)
	assert.Equal(t, "Reporte Mensual de Ventas", report.Title)
	assert.EqualValues(t, 4, report.Summary.TransactionCount)

	// Rango de ~30 días
	diff := repo.lastEnd.Sub(repo.lastStart)
	assert.InDelta(t, 30*24, diff.Hours(), 1)
}

func TestSalesReport_PeriodoSemanal(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := newService(repo, &fakeExcelRenderer{})

	report, err := svc.SalesReport(context.Background(), reports.PeriodWeekly)
	require.NoError(t, err)
	assert.Equal(t, "Reporte Semanal de Ventas", report.Title)

	diff := repo.lastEnd.Sub(repo.lastStart)
	assert.InDelta(t, 7*24, diff.Hours(), 1)
}

func TestSalesReport_PeriodoInvalido(t *testing.T) {
	svc := newService(&fakeReportRepo{}, &fakeExcelRenderer{})

	_, err := svc.SalesReport(context.Background(), "quincenal")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un período sin ventas produce ceros, no error.
func TestSalesReport_PeriodoSinVentas(t *testing.T) {
	svc := newService(&fakeReportRepo{
		summary: repository.SalesSummaryResult{TotalAmount: decimal.Zero, AverageAmount: decimal.Zero},
	}, &fakeExcelRenderer{})

	report, err := svc.SalesReport(context.Background(), reports.PeriodAnnual)
	require.NoError(t, err)
	assert.True(t, report.Summary.TotalAmount.IsZero())
	assert.Zero(t, report.Summary.TransactionCount)
	assert.Empty(t, report.Detail)
}

func TestExportSalesExcel_NombreDeArchivoPorPeriodo(t *testing.T) {
	excel := &fakeExcelRenderer{raw: []byte("xlsx")}
	svc := newService(&fakeReportRepo{}, excel)

	raw, filename, err := svc.ExportSalesExcel(context.Background(), reports.PeriodWeekly)
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), raw)
	assert.Equal(t, "reporte_ventas_semanal.xlsx", filename)
	assert.Equal(t, "Reporte Semanal de Ventas", excel.lastTitle)
}

func TestExportEmployees(t *testing.T) {
	svc := newService(&fakeReportRepo{}, &fakeExcelRenderer{raw: []byte("xlsx")})

	raw, filename, err := svc.ExportEmployeesExcel(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Equal(t, "empleados.xlsx", filename)

	raw, filename, err = svc.ExportEmployeesPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), raw)
	assert.Equal(t, "empleados.pdf", filename)
}

func TestCustomersByCountry(t *testing.T) {
	svc := newService(&fakeReportRepo{
		countries: []repository.CountryCount{
			{Country: "Colombia", Count: 10},
			{Country: "Desconocido", Count: 2},
		},
	}, &fakeExcelRenderer{})

	counts, err := svc.CustomersByCountry(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "Colombia", counts[0].Country)
	assert.EqualValues(t, 10, counts[0].Count)
}
