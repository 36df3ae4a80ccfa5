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

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	counters repository.CounterRepository
	log      *logger.Logger
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, counters repository.CounterRepository, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, counters: counters, log: log}
}

// Create crea un cliente con id incremental. El email se guarda en minúsculas.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	seq, err := uc.counters.Next(ctx, repository.SeqCustomers)
	if err != nil {
		return nil, err
	}
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		SeqID:        seq,
		Name:         name,
		Email:        normalizeEmail(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		City:         strings.TrimSpace(in.City),
		Country:      strings.TrimSpace(in.Country),
		RegisteredAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes, con búsqueda opcional por nombre/email/ciudad/país.
func (uc *CustomerUseCase) List(ctx context.Context, q string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(q))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Get obtiene un cliente por su clave interna.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// Update aplica un patch: campo ausente = sin cambio. Un patch vacío no toca
// el registro. Un error de persistencia se degrada a resultado sin efecto.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (dto.UpdateResponse, error) {
	patch := repository.CustomerPatch{
		Name:    trimmed(in.Name),
		Email:   loweredEmail(in.Email),
		Phone:   trimmed(in.Phone),
		Address: trimmed(in.Address),
		City:    trimmed(in.City),
		Country: trimmed(in.Country),
	}
	if patch.IsEmpty() {
		return dto.UpdateResponse{}, nil
	}
	res, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		uc.log.Warn().Err(err).Str("cliente_id", id).Msg("actualizar cliente")
		return dto.UpdateResponse{}, nil
	}
	return dto.UpdateResponse{Matched: res.Matched, Modified: res.Modified}, nil
}

// Delete borra un cliente. Id inexistente reporta deleted=false, no error.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) (dto.DeleteResponse, error) {
	res, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.log.Warn().Err(err).Str("cliente_id", id).Msg("eliminar cliente")
		return dto.DeleteResponse{}, nil
	}
	return dto.DeleteResponse{Deleted: res.Deleted}, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:           c.ID,
		SeqID:        c.SeqID,
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
		City:         c.City,
		Country:      c.Country,
		RegisteredAt: c.RegisteredAt,
	}
}
