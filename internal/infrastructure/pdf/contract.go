package pdf

import (
	"fmt"
	"strings"

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

// RenderContract genera el PDF firmable del contrato laboral.
func (g *Generator) RenderContract(contract *entity.Contract, employee *entity.Employee) ([]byte, error) {
	m := maroto.New(pageConfig("Contrato Laboral"))

	m.AddRows(row.New(16).Add(col.New(12).Add(
		text.New(strings.ToUpper(fmt.Sprintf("Contrato de trabajo - %s", contract.Type)), props.Text{
			Style: fontstyle.Bold, Size: 13, Align: align.Center, Color: colorPrimary, Top: 2,
		}),
		text.New(g.businessName, props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 11,
		}),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(contractPartiesRow(g.businessName, employee))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	for i, clause := range contractClauses(contract) {
		m.AddRows(clauseRow(i+1, clause))
	}

	m.AddRows(line.NewRow(6))
	m.AddRows(signatureRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar contrato: %w", err)
	}
	return doc.GetBytes(), nil
}

func contractPartiesRow(businessName string, employee *entity.Employee) core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New("ENTRE LAS PARTES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("EMPLEADOR: %s", businessName), props.Text{
				Size: 9, Top: 6,
			}),
			text.New(fmt.Sprintf("TRABAJADOR: %s   |   Documento: %s",
				employee.FullName(), employee.DocumentNumber,
			), props.Text{Size: 9, Top: 11}),
			text.New(fmt.Sprintf("Contacto: %s   |   Tel: %s",
				nonEmpty(employee.Email, "N/A"),
				nonEmpty(employee.Phone, "N/A"),
			), props.Text{Size: 8, Top: 16, Color: colorGray}),
		),
	)
}

// contractClauses redacta las cláusulas según el tipo de contrato.
func contractClauses(c *entity.Contract) []string {
	clauses := []string{
		fmt.Sprintf("OBJETO. El trabajador se obliga a prestar sus servicios personales en el cargo de %s, bajo la modalidad de contrato %s.",
			nonEmpty(c.Position, "el cargo acordado"), c.Type),
		fmt.Sprintf("REMUNERACIÓN. El empleador pagará al trabajador un salario mensual de $%s, pagadero según la periodicidad acordada entre las partes.",
			formatMoney(c.Salary.StringFixed(0))),
	}

	start := c.StartDate.Format("02/01/2006")
	switch c.Type {
	case entity.ContractIndefinite:
		clauses = append(clauses, fmt.Sprintf(
			"DURACIÓN. El presente contrato inicia el %s y es de duración indefinida; cualquiera de las partes podrá darlo por terminado conforme a la ley.",
			start))
	case entity.ContractApprenticeship:
		clauses = append(clauses, fmt.Sprintf(
			"DURACIÓN. La etapa de aprendizaje inicia el %s%s y se rige por las normas aplicables al contrato de aprendizaje.",
			start, contractEndText(c)))
	case entity.ContractService:
		clauses = append(clauses, fmt.Sprintf(
			"DURACIÓN. La prestación del servicio inicia el %s%s, sin que exista subordinación laboral entre las partes.",
			start, contractEndText(c)))
	default:
		clauses = append(clauses, fmt.Sprintf(
			"DURACIÓN. El presente contrato inicia el %s%s.",
			start, contractEndText(c)))
	}

	if c.Notes != "" {
		clauses = append(clauses, fmt.Sprintf("OBSERVACIONES. %s", c.Notes))
	}
	clauses = append(clauses,
		"ACEPTACIÓN. Las partes declaran haber leído el presente documento y lo firman en señal de conformidad.")
	return clauses
}

func contractEndText(c *entity.Contract) string {
	if c.EndDate == nil {
		return ""
	}
	return fmt.Sprintf(" y termina el %s", c.EndDate.Format("02/01/2006"))
}

func clauseRow(n int, body string) core.Row {
	// Altura generosa: el texto largo hace wrap dentro de la columna.
	return row.New(16).Add(col.New(12).Add(
		text.New(fmt.Sprintf("CLÁUSULA %d. %s", n, body), props.Text{
			Size: 8.5, Top: 2, Align: align.Left,
		}),
	))
}

func signatureRow() core.Row {
	sig := func(label string) core.Col {
		return col.New(6).Add(
			text.New("_________________________", props.Text{
				Size: 9, Align: align.Center, Top: 2,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Top: 8, Color: colorGray,
			}),
		)
	}
	return row.New(16).Add(
		sig("Firma del empleador"),
		sig("Firma del trabajador"),
	)
}
