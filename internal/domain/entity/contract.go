package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de contrato laboral (Colombia).
const (
	ContractIndefinite    = "Indefinido"
	ContractFixedTerm     = "Término fijo"
	ContractWorkOrTask    = "Obra o labor"
	ContractService       = "Prestación de servicios"
	ContractApprenticeship = "Aprendizaje"
)

// ContractTypes tipos aceptados, en el orden que se presentan en formularios.
var ContractTypes = []string{
	ContractIndefinite,
	ContractFixedTerm,
	ContractWorkOrTask,
	ContractService,
	ContractApprenticeship,
}

// ValidContractType indica si el tipo pertenece al enumerado.
func ValidContractType(t string) bool {
	for _, ct := range ContractTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// Contract representa un contrato laboral de un empleado.
// EndDate debe ser nil cuando el tipo es Indefinido.
// PDFData guarda la representación en PDF codificada base64.
type Contract struct {
	ID           string
	SeqID        int64
	EmployeeID   string
	Type         string
	StartDate    time.Time
	EndDate      *time.Time
	Salary       decimal.Decimal
	Position     string
	Notes        string
	PDFData      string
	RegisteredAt time.Time
}

// ContractWithEmployee contrato enriquecido con datos del empleado resueltos
// en la consulta (no almacenados en el documento).
type ContractWithEmployee struct {
	Contract
	EmployeeName     string
	EmployeeDocument string
}
