package usecase

import "github.com/wramirez/minimarket-crm/internal/domain/entity"

// ContractPDFRenderer genera el PDF firmable de un contrato laboral.
type ContractPDFRenderer interface {
	RenderContract(contract *entity.Contract, employee *entity.Employee) ([]byte, error)
}
