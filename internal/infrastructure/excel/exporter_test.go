package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/wramirez/minimarket-crm/internal/domain/entity"
	"github.com/wramirez/minimarket-crm/internal/domain/repository"
)

func TestRenderEmployees(t *testing.T) {
	e := NewExporter()

	raw, err := e.RenderEmployees([]*entity.Employee{
		{SeqID: 1, DocumentNumber: "1020304050", Name: "José", Surname: "Martínez", Age: 30,
			Position: "Cajero", Status: entity.StatusActive, RegisteredAt: time.Now()},
		{SeqID: 2, DocumentNumber: "1122334455", Name: "Ana", Surname: "Torres", Age: 28,
			Position: "Bodeguera", Status: entity.StatusInactive, RegisteredAt: time.Now()},
	})
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Empleados", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Documento", got)

	got, err = f.GetCellValue("Empleados", "C2")
	require.NoError(t, err)
	assert.Equal(t, "José", got)

	got, err = f.GetCellValue("Empleados", "B3")
	require.NoError(t, err)
	assert.Equal(t, "1122334455", got)
}

func TestRenderEmployees_SinFilas(t *testing.T) {
	raw, err := NewExporter().RenderEmployees(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}

func TestRenderSalesDetail(t *testing.T) {
	e := NewExporter()

	rows := []repository.SalesDetailRow{
		{SaleID: "venta-1", CustomerName: "Ana Torres", ItemCount: 2,
			Total: decimal.NewFromInt(17000), Date: time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC), Seller: "Carlos"},
		{SaleID: "venta-2", CustomerName: "Luis Gómez", ItemCount: 1,
			Total: decimal.NewFromInt(2500), Date: time.Date(2026, 8, 16, 9, 0, 0, 0, time.UTC), Seller: "Carlos"},
	}

	raw, err := e.RenderSalesDetail("Reporte Mensual de Ventas", rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Ventas", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Reporte Mensual de Ventas", title)

	header, err := f.GetCellValue("Ventas", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Total", header)

	customer, err := f.GetCellValue("Ventas", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Ana Torres", customer)

	// Fila de total al final: suma de ambas ventas
	totalLabel, err := f.GetCellValue("Ventas", "C5")
	require.NoError(t, err)
	assert.Equal(t, "TOTAL", totalLabel)

	total, err := f.GetCellValue("Ventas", "D5")
	require.NoError(t, err)
	assert.Equal(t, "19500", total)
}
