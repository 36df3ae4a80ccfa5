package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wramirez/minimarket-crm/internal/application/dto"
	"github.com/wramirez/minimarket-crm/internal/domain"
	"github.com/wramirez/minimarket-crm/internal/domain/entity"
	"github.com/wramirez/minimarket-crm/internal/domain/repository"
	"github.com/wramirez/minimarket-crm/pkg/logger"
)

// EmployeeUseCase casos de uso para empleados.
type EmployeeUseCase struct {
	repo     repository.EmployeeRepository
	counters repository.CounterRepository
	log      *logger.Logger
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, counters repository.CounterRepository, log *logger.Logger) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, counters: counters, log: log}
}

// Create registra un empleado. El número de documento es único dentro de la
// colección; el estado por defecto es "activo".
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	doc := strings.TrimSpace(in.DocumentNumber)
	name := strings.TrimSpace(in.Name)
	surname := strings.TrimSpace(in.Surname)
	if doc == "" || name == "" || surname == "" || in.Age <= 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByDocument(ctx, doc)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDocumentExists
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = entity.StatusActive
	}
	seq, err := uc.counters.Next(ctx, repository.SeqEmployees)
	if err != nil {
		return nil, err
	}
	employee := &entity.Employee{
		ID:             uuid.New().String(),
		SeqID:          seq,
		DocumentNumber: doc,
		Name:           name,
		Surname:        surname,
		Age:            in.Age,
		Gender:         strings.TrimSpace(in.Gender),
		Position:       strings.TrimSpace(in.Position),
		Email:          normalizeEmail(in.Email),
		Phone:          strings.TrimSpace(in.Phone),
		Status:         status,
		Notes:          strings.TrimSpace(in.Notes),
		RegisteredAt:   time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List lista empleados, con búsqueda opcional por nombre/apellido/documento.
func (uc *EmployeeUseCase) List(ctx context.Context, q string) ([]*dto.EmployeeResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(q))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Get obtiene un empleado por su clave interna.
func (uc *EmployeeUseCase) Get(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// Update aplica un patch. La edad, si viene, debe ser positiva.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (dto.UpdateResponse, error) {
	if in.Age != nil && *in.Age <= 0 {
		return dto.UpdateResponse{}, domain.ErrInvalidInput
	}
	patch := repository.EmployeePatch{
		DocumentNumber: trimmed(in.DocumentNumber),
		Name:           trimmed(in.Name),
		Surname:        trimmed(in.Surname),
		Age:            in.Age,
		Gender:         trimmed(in.Gender),
		Position:       trimmed(in.Position),
		Email:          loweredEmail(in.Email),
		Phone:          trimmed(in.Phone),
		Status:         trimmed(in.Status),
		Notes:          trimmed(in.Notes),
	}
	if patch.IsEmpty() {
		return dto.UpdateResponse{}, nil
	}
	res, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		uc.log.Warn().Err(err).Str("empleado_id", id).Msg("actualizar empleado")
		return dto.UpdateResponse{}, nil
	}
	return dto.UpdateResponse{Matched: res.Matched, Modified: res.Modified}, nil
}

// Delete borra un empleado. Los contratos asociados no se tocan.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) (dto.DeleteResponse, error) {
	res, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.log.Warn().Err(err).Str("empleado_id", id).Msg("eliminar empleado")
		return dto.DeleteResponse{}, nil
	}
	return dto.DeleteResponse{Deleted: res.Deleted}, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:             e.ID,
		SeqID:          e.SeqID,
		DocumentNumber: e.DocumentNumber,
		Name:           e.Name,
		Surname:        e.Surname,
		Age:            e.Age,
		Gender:         e.Gender,
		Position:       e.Position,
		Email:          e.Email,
		Phone:          e.Phone,
		Status:         e.Status,
		Notes:          e.Notes,
		RegisteredAt:   e.RegisteredAt,
	}
}
