package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wramirez/minimarket-crm/internal/application/dto"
	"github.com/wramirez/minimarket-crm/internal/domain"
	"github.com/wramirez/minimarket-crm/internal/domain/entity"
	"github.com/wramirez/minimarket-crm/internal/domain/repository"
	"github.com/wramirez/minimarket-crm/pkg/logger"
)

const dateLayout = "2006-01-02"

// ContractUseCase casos de uso para contratos laborales.
type ContractUseCase struct {
	repo      repository.ContractRepository
	employees repository.EmployeeRepository
	counters  repository.CounterRepository
	pdf       ContractPDFRenderer
	log       *logger.Logger
}

// NewContractUseCase construye el caso de uso.
func NewContractUseCase(
	repo repository.ContractRepository,
	employees repository.EmployeeRepository,
	counters repository.CounterRepository,
	pdf ContractPDFRenderer,
	log *logger.Logger,
) *ContractUseCase {
	return &ContractUseCase{repo: repo, employees: employees, counters: counters, pdf: pdf, log: log}
}

// Create registra un contrato para un empleado existente y genera su PDF.
// Un contrato Indefinido no lleva fecha de fin. Si la generación del PDF
// falla el contrato queda creado igual, solo se registra la advertencia.
func (uc *ContractUseCase) Create(ctx context.Context, in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	contractType := strings.TrimSpace(in.Type)
	if !entity.ValidContractType(contractType) {
		return nil, domain.ErrInvalidInput
	}
	if in.Salary.LessThanOrEqual(decimalZero) {
		return nil, domain.ErrInvalidInput
	}
	start, err := time.Parse(dateLayout, strings.TrimSpace(in.StartDate))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var end *time.Time
	if raw := strings.TrimSpace(in.EndDate); raw != "" {
		if contractType == entity.ContractIndefinite {
			return nil, domain.ErrInvalidInput
		}
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		end = &parsed
	}

	employee, err := uc.employees.GetByID(ctx, strings.TrimSpace(in.EmployeeID))
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}

	seq, err := uc.counters.Next(ctx, repository.SeqContracts)
	if err != nil {
		return nil, err
	}
	contract := &entity.Contract{
		ID:           uuid.New().String(),
		SeqID:        seq,
		EmployeeID:   employee.ID,
		Type:         contractType,
		StartDate:    start,
		EndDate:      end,
		Salary:       in.Salary,
		Position:     strings.TrimSpace(in.Position),
		Notes:        strings.TrimSpace(in.Notes),
		RegisteredAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, contract); err != nil {
		return nil, err
	}

	if raw, err := uc.pdf.RenderContract(contract, employee); err != nil {
		uc.log.Warn().Err(err).Str("contrato_id", contract.ID).Msg("generar pdf de contrato")
	} else {
		encoded := base64.StdEncoding.EncodeToString(raw)
		if err := uc.repo.AttachPDF(ctx, contract.ID, encoded); err != nil {
			uc.log.Warn().Err(err).Str("contrato_id", contract.ID).Msg("guardar pdf de contrato")
		} else {
			contract.PDFData = encoded
		}
	}

	return toContractResponse(&entity.ContractWithEmployee{
		Contract:         *contract,
		EmployeeName:     employee.FullName(),
		EmployeeDocument: employee.DocumentNumber,
	}), nil
}

// List lista contratos con los datos del empleado resueltos. La búsqueda es
// insensible a mayúsculas y tildes sobre empleado, documento, tipo y cargo.
func (uc *ContractUseCase) List(ctx context.Context, q string) ([]*dto.ContractResponse, error) {
	list, err := uc.repo.ListWithEmployee(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(foldAccents(strings.TrimSpace(q)))
	out := make([]*dto.ContractResponse, 0, len(list))
	for _, c := range list {
		if needle != "" && !contractMatches(c, needle) {
			continue
		}
		out = append(out, toContractResponse(c))
	}
	return out, nil
}

// Get obtiene un contrato por su clave interna.
func (uc *ContractUseCase) Get(ctx context.Context, id string) (*dto.ContractResponse, error) {
	contract, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	resp := toContractResponse(&entity.ContractWithEmployee{Contract: *contract})
	if employee, err := uc.employees.GetByID(ctx, contract.EmployeeID); err == nil && employee != nil {
		resp.EmployeeName = employee.FullName()
		resp.EmployeeDocument = employee.DocumentNumber
	}
	return resp, nil
}

// Update aplica un patch. fecha_fin con valor "" la limpia explícitamente.
func (uc *ContractUseCase) Update(ctx context.Context, id string, in dto.UpdateContractRequest) (dto.UpdateResponse, error) {
	patch := repository.ContractPatch{
		Salary:   in.Salary,
		Position: trimmed(in.Position),
		Notes:    trimmed(in.Notes),
	}
	if in.Type != nil {
		t := strings.TrimSpace(*in.Type)
		if !entity.ValidContractType(t) {
			return dto.UpdateResponse{}, domain.ErrInvalidInput
		}
		patch.Type = &t
	}
	if in.Salary != nil && in.Salary.LessThanOrEqual(decimalZero) {
		return dto.UpdateResponse{}, domain.ErrInvalidInput
	}
	if in.StartDate != nil {
		parsed, err := time.Parse(dateLayout, strings.TrimSpace(*in.StartDate))
		if err != nil {
			return dto.UpdateResponse{}, domain.ErrInvalidInput
		}
		patch.StartDate = &parsed
	}
	if in.EndDate != nil {
		raw := strings.TrimSpace(*in.EndDate)
		if raw == "" {
			patch.ClearEndDate = true
		} else {
			parsed, err := time.Parse(dateLayout, raw)
			if err != nil {
				return dto.UpdateResponse{}, domain.ErrInvalidInput
			}
			patch.EndDate = &parsed
		}
	}
	if patch.IsEmpty() {
		return dto.UpdateResponse{}, nil
	}
	res, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		uc.log.Warn().Err(err).Str("contrato_id", id).Msg("actualizar contrato")
		return dto.UpdateResponse{}, nil
	}
	return dto.UpdateResponse{Matched: res.Matched, Modified: res.Modified}, nil
}

// Delete borra un contrato.
func (uc *ContractUseCase) Delete(ctx context.Context, id string) (dto.DeleteResponse, error) {
	res, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.log.Warn().Err(err).Str("contrato_id", id).Msg("eliminar contrato")
		return dto.DeleteResponse{}, nil
	}
	return dto.DeleteResponse{Deleted: res.Deleted}, nil
}

// DownloadPDF devuelve el PDF almacenado del contrato, decodificado, con un
// nombre de archivo sugerido. Sin PDF adjunto responde no encontrado.
func (uc *ContractUseCase) DownloadPDF(ctx context.Context, id string) ([]byte, string, error) {
	contract, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if contract == nil || contract.PDFData == "" {
		return nil, "", domain.ErrNotFound
	}
	raw, err := base64.StdEncoding.DecodeString(contract.PDFData)
	if err != nil {
		return nil, "", fmt.Errorf("decodificar pdf de contrato: %w", err)
	}
	return raw, fmt.Sprintf("contrato_%d.pdf", contract.SeqID), nil
}

func contractMatches(c *entity.ContractWithEmployee, needle string) bool {
	for _, field := range []string{c.EmployeeName, c.EmployeeDocument, c.Type, c.Position} {
		if strings.Contains(strings.ToLower(foldAccents(field)), needle) {
			return true
		}
	}
	return false
}

func toContractResponse(c *entity.ContractWithEmployee) *dto.ContractResponse {
	resp := &dto.ContractResponse{
		ID:               c.ID,
		SeqID:            c.SeqID,
		EmployeeID:       c.EmployeeID,
		EmployeeName:     c.EmployeeName,
		EmployeeDocument: c.EmployeeDocument,
		Type:             c.Type,
		StartDate:        c.StartDate.Format(dateLayout),
		Salary:           c.Salary,
		Position:         c.Position,
		Notes:            c.Notes,
		HasPDF:           c.PDFData != "",
		RegisteredAt:     c.RegisteredAt,
	}
	if c.EndDate != nil {
		resp.EndDate = c.EndDate.Format(dateLayout)
	}
	return resp
}
