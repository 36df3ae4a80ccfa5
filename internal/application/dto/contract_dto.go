package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateContractRequest body para POST /api/contratos.
// Las fechas llegan como "2006-01-02"; la coerción falla con error de validación.
type CreateContractRequest struct {
	EmployeeID string          `json:"empleado_id"`
	Type       string          `json:"tipo_contrato"`
	StartDate  string          `json:"fecha_inicio"`
	EndDate    string          `json:"fecha_fin,omitempty"` // vacío cuando el tipo es Indefinido
	Salary     decimal.Decimal `json:"salario"`
	Position   string          `json:"cargo"`
	Notes      string          `json:"observaciones,omitempty"`
}

// UpdateContractRequest body para PUT /api/contratos/:id. null = sin cambio.
// EndDate "" explícito limpia la fecha de fin.
type UpdateContractRequest struct {
	Type      *string          `json:"tipo_contrato"`
	StartDate *string          `json:"fecha_inicio"`
	EndDate   *string          `json:"fecha_fin"`
	Salary    *decimal.Decimal `json:"salario"`
	Position  *string          `json:"cargo"`
	Notes     *string          `json:"observaciones"`
}

// ContractResponse contrato con datos del empleado resueltos en la consulta.
type ContractResponse struct {
	ID               string          `json:"id"`
	SeqID            int64           `json:"id_contrato"`
	EmployeeID       string          `json:"empleado_id"`
	EmployeeName     string          `json:"empleado_nombre,omitempty"`
	EmployeeDocument string          `json:"empleado_documento,omitempty"`
	Type             string          `json:"tipo_contrato"`
	StartDate        string          `json:"fecha_inicio"`
	EndDate          string          `json:"fecha_fin,omitempty"`
	Salary           decimal.Decimal `json:"salario"`
	Position         string          `json:"cargo"`
	Notes            string          `json:"observaciones,omitempty"`
	HasPDF           bool            `json:"tiene_pdf"`
	RegisteredAt     time.Time       `json:"fecha_registro"`
}
