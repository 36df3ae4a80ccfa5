package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/wramirez/minimarket-crm/internal/domain/entity"
)

// RenderEmployeeReport genera el listado de empleados en PDF.
func (g *Generator) RenderEmployeeReport(employees []*entity.Employee) ([]byte, error) {
	m := maroto.New(pageConfig("Listado de Empleados"))

	m.AddRows(row.New(14).Add(col.New(12).Add(
		text.New("LISTADO DE EMPLEADOS", props.Text{
			Style: fontstyle.Bold, Size: 13, Align: align.Center, Color: colorPrimary, Top: 1,
		}),
		text.New(fmt.Sprintf("%s  |  Generado: %s", g.businessName, time.Now().Format("02/01/2006")), props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 9,
		}),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(employeeTableHeaderRow())
	for _, e := range employees {
		m.AddRows(employeeTableRow(e))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total: %d empleados", len(employees)), props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar listado de empleados: %w", err)
	}
	return doc.GetBytes(), nil
}

func employeeTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Documento", 2, align.Left),
		h("Nombre completo", 4, align.Left),
		h("Edad", 1, align.Center),
		h("Cargo", 3, align.Left),
		h("Estado", 2, align.Center),
	)
}

func employeeTableRow(e *entity.Employee) core.Row {
	cell := func(v string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(v, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(7).Add(
		cell(e.DocumentNumber, 2, align.Left),
		cell(e.FullName(), 4, align.Left),
		cell(fmt.Sprintf("%d", e.Age), 1, align.Center),
		cell(nonEmpty(e.Position, "N/A"), 3, align.Left),
		cell(e.Status, 2, align.Center),
	)
}
