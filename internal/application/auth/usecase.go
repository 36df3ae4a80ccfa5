package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wramirez/minimarket-crm/internal/application/dto"
	"github.com/wramirez/minimarket-crm/internal/domain"
	"github.com/wramirez/minimarket-crm/internal/domain/entity"
	"github.com/wramirez/minimarket-crm/internal/domain/repository"
	"github.com/wramirez/minimarket-crm/pkg/jwt"
	"github.com/wramirez/minimarket-crm/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const tempPasswordLength = 12

const tempPasswordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%&*"

// UseCase autenticación y gestión de contraseñas.
type UseCase struct {
	users     repository.UserRepository
	counters  repository.CounterRepository
	mailer    Mailer
	jwtSecret string
	jwtIssuer string
	jwtExpMin int
	log       *logger.Logger
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(
	users repository.UserRepository,
	counters repository.CounterRepository,
	mailer Mailer,
	jwtSecret, jwtIssuer string,
	jwtExpMinutes int,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		users:     users,
		counters:  counters,
		mailer:    mailer,
		jwtSecret: jwtSecret,
		jwtIssuer: jwtIssuer,
		jwtExpMin: jwtExpMinutes,
		log:       log,
	}
}

// Login valida credenciales y emite el token. Credenciales incorrectas y
// cuenta inexistente responden lo mismo para no filtrar qué emails existen.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.StatusActive || user.Role == entity.RoleNone {
		return nil, domain.ErrInactiveAccount
	}
	token, err := jwt.Generate(uc.jwtSecret, jwt.Principal{
		ID:    user.ID,
		Name:  user.Name,
		Role:  user.Role,
		Email: user.Email,
	}, uc.jwtIssuer, uc.jwtExpMin)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:           user.ID,
			SeqID:        user.SeqID,
			Name:         user.Name,
			Email:        user.Email,
			Role:         user.Role,
			Status:       user.Status,
			RegisteredAt: user.RegisteredAt,
		},
	}, nil
}

// Register autorregistro público. La cuenta nace con rol "none" y estado
// "inactivo": no puede operar hasta que un administrador la habilite.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByEmail(ctx, email)
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
		Role:         entity.RoleNone,
		Status:       entity.StatusInactive,
		RegisteredAt: time.Now().UTC(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:           user.ID,
		SeqID:        user.SeqID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		Status:       user.Status,
		RegisteredAt: user.RegisteredAt,
	}, nil
}

// ResetPassword genera una contraseña temporal, la guarda hasheada y la envía
// por correo. Si el correo falla la contraseña ya quedó cambiada; se devuelve
// la advertencia para que el usuario contacte a un administrador.
func (uc *UseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) (warning string, err error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return "", domain.ErrInvalidInput
	}
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUserNotFound
	}
	tempPassword, err := generateTempPassword()
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	res, err := uc.users.UpdatePasswordByEmail(ctx, email, string(hash))
	if err != nil {
		return "", err
	}
	if !res.Matched {
		return "", domain.ErrUserNotFound
	}
	body := fmt.Sprintf(
		"Hola %s,\n\nTu contraseña temporal es: %s\n\nCámbiala al iniciar sesión.",
		user.Name, tempPassword,
	)
	if err := uc.mailer.Send([]string{email}, "Restablecimiento de contraseña", body); err != nil {
		uc.log.Warn().Err(err).Str("email", email).Msg("enviar correo de restablecimiento")
		return "No se pudo enviar el correo. Contacta a un administrador.", nil
	}
	uc.log.Info().Str("email", email).Msg("contraseña restablecida")
	return "", nil
}

// RequestPasswordChange solicitud de un vendedor: notifica por correo a todos
// los administradores activos con la nueva contraseña deseada. No cambia nada
// por sí misma.
func (uc *UseCase) RequestPasswordChange(ctx context.Context, requester jwt.Principal, in dto.PasswordChangeRequest) (warning string, err error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.NewPassword == "" {
		return "", domain.ErrInvalidInput
	}
	if email != strings.ToLower(requester.Email) {
		return "", domain.ErrForbidden
	}
	admins, err := uc.adminEmails(ctx)
	if err != nil {
		return "", err
	}
	if len(admins) == 0 {
		return "No hay administradores para notificar.", nil
	}
	body := fmt.Sprintf(
		"El vendedor %s (%s) solicita cambiar su contraseña a: %s",
		requester.Name, email, in.NewPassword,
	)
	if err := uc.mailer.Send(admins, "Solicitud de cambio de contraseña", body); err != nil {
		uc.log.Warn().Err(err).Str("email", email).Msg("notificar cambio de contraseña")
		return "No se pudo notificar a los administradores.", nil
	}
	return "", nil
}

func (uc *UseCase) adminEmails(ctx context.Context) ([]string, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, u := range users {
		if u.Role == entity.RoleAdmin && u.Status == entity.StatusActive && u.Email != "" {
			out = append(out, u.Email)
		}
	}
	return out, nil
}

// generateTempPassword contraseña aleatoria con crypto/rand.
func generateTempPassword() (string, error) {
	max := big.NewInt(int64(len(tempPasswordCharset)))
	b := make([]byte, tempPasswordLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = tempPasswordCharset[n.Int64()]
	}
	return string(b), nil
}
