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
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase administración de cuentas. Solo lo invoca el rol administrador;
// la autorización la aplica el middleware HTTP.
type UserUseCase struct {
	repo     repository.UserRepository
	counters repository.CounterRepository
	log      *logger.Logger
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, counters repository.CounterRepository, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, counters: counters, log: log}
}

// Create da de alta una cuenta. El email es único; rol por defecto "none" y
// estado "inactivo" hasta que un administrador lo cambie.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = entity.RoleNone
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = entity.StatusInactive
	}
	seq, err := uc.counters.Next(ctx, repository.SeqUsers)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		SeqID:        seq,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
		RegisteredAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista todas las cuentas.
func (uc *UserUseCase) List(ctx context.Context) ([]*dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Get obtiene una cuenta por su clave interna.
func (uc *UserUseCase) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// Update aplica un patch. nueva_password, si viene, se hashea aquí.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (dto.UpdateResponse, error) {
	patch := repository.UserPatch{
		Name:   trimmed(in.Name),
		Email:  loweredEmail(in.Email),
		Role:   trimmed(in.Role),
		Status: trimmed(in.Status),
	}
	if in.NewPassword != nil {
		if *in.NewPassword == "" {
			return dto.UpdateResponse{}, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return dto.UpdateResponse{}, err
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}
	if patch.IsEmpty() {
		return dto.UpdateResponse{}, nil
	}
	res, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		uc.log.Warn().Err(err).Str("usuario_id", id).Msg("actualizar usuario")
		return dto.UpdateResponse{}, nil
	}
	return dto.UpdateResponse{Matched: res.Matched, Modified: res.Modified}, nil
}

// Delete borra una cuenta. Una cuenta no puede borrarse a sí misma.
func (uc *UserUseCase) Delete(ctx context.Context, id, callerID string) (dto.DeleteResponse, error) {
	if id == callerID {
		return dto.DeleteResponse{}, domain.ErrForbidden
	}
	res, err := uc.repo.Delete(ctx, id)
	if err != nil {
		uc.log.Warn().Err(err).Str("usuario_id", id).Msg("eliminar usuario")
		return dto.DeleteResponse{}, nil
	}
	return dto.DeleteResponse{Deleted: res.Deleted}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           u.ID,
		SeqID:        u.SeqID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		Status:       u.Status,
		RegisteredAt: u.RegisteredAt,
	}
}
