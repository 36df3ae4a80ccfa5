// Package excel genera las exportaciones xlsx (empleados y detalle de ventas)
// con Excelize.
package excel

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/wramirez/minimarket-crm/internal/domain/entity"
	"github.com/wramirez/minimarket-crm/internal/domain/repository"
)

// Exporter implementa los renderizadores xlsx de la aplicación.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// RenderEmployees listado completo de empleados, una fila por empleado.
func (e *Exporter) RenderEmployees(employees []*entity.Employee) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Empleados"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	headers := []string{"ID", "Documento", "Nombre", "Apellido", "Edad", "Género", "Cargo", "Correo", "Teléfono", "Estado", "Registro"}
	if err := writeHeader(f, sheet, 1, headers); err != nil {
		return nil, err
	}
	for i, emp := range employees {
		rowIdx := i + 2
		values := []interface{}{
			emp.SeqID,
			emp.DocumentNumber,
			emp.Name,
			emp.Surname,
			emp.Age,
			emp.Gender,
			emp.Position,
			emp.Email,
			emp.Phone,
			emp.Status,
			emp.RegisteredAt.Format("2006-01-02"),
		}
		if err := writeRow(f, sheet, rowIdx, values); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(sheet, "B", "K", 18); err != nil {
		return nil, fmt.Errorf("excel: ajustar columnas: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar empleados: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderSalesDetail detalle de ventas del período, con fila de total al final.
func (e *Exporter) RenderSalesDetail(title string, rows []repository.SalesDetailRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Ventas"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, fmt.Errorf("excel: escribir título: %w", err)
	}
	if err := f.MergeCell(sheet, "A1", "F1"); err != nil {
		return nil, fmt.Errorf("excel: combinar título: %w", err)
	}
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 13},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de título: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "F1", titleStyle); err != nil {
		return nil, fmt.Errorf("excel: aplicar estilo: %w", err)
	}

	headers := []string{"Venta", "Cliente", "N° Productos", "Total", "Fecha", "Vendedor"}
	if err := writeHeader(f, sheet, 2, headers); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for i, r := range rows {
		rowIdx := i + 3
		values := []interface{}{
			r.SaleID,
			r.CustomerName,
			r.ItemCount,
			r.Total.InexactFloat64(),
			r.Date.Format("2006-01-02 15:04"),
			r.Seller,
		}
		if err := writeRow(f, sheet, rowIdx, values); err != nil {
			return nil, err
		}
		total = total.Add(r.Total)
	}

	totalRow := len(rows) + 3
	if err := writeRow(f, sheet, totalRow, []interface{}{"", "", "TOTAL", total.InexactFloat64(), "", ""}); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", "F", 22); err != nil {
		return nil, fmt.Errorf("excel: ajustar columnas: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar ventas: %w", err)
	}
	return buf.Bytes(), nil
}

// writeHeader fila de cabecera con fondo azul y texto blanco.
func writeHeader(f *excelize.File, sheet string, rowIdx int, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"00467F"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("excel: estilo de cabecera: %w", err)
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, rowIdx)
		if err != nil {
			return fmt.Errorf("excel: celda de cabecera: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("excel: escribir cabecera: %w", err)
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, rowIdx)
	last, _ := excelize.CoordinatesToCellName(len(headers), rowIdx)
	if err := f.SetCellStyle(sheet, first, last, style); err != nil {
		return fmt.Errorf("excel: aplicar estilo de cabecera: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowIdx int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowIdx)
		if err != nil {
			return fmt.Errorf("excel: celda: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("excel: escribir celda: %w", err)
		}
	}
	return nil
}
