package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wramirez/minimarket-crm/internal/application/auth"
	"github.com/wramirez/minimarket-crm/internal/application/dto"
	"github.com/wramirez/minimarket-crm/internal/domain"
	"github.com/wramirez/minimarket-crm/internal/domain/entity"
	"github.com/wramirez/minimarket-crm/internal/domain/repository"
	pkgjwt "github.com/wramirez/minimarket-crm/pkg/jwt"
	"github.com/wramirez/minimarket-crm/pkg/logger"
)

const (
	testSecret = "secret-de-test"
	testIssuer = "minimarket-test"
)

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	m.users[u.ID] = u
	return nil
}
func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return m.users[id], nil
}
func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}
func (m *memUserRepo) Update(_ context.Context, id string, patch repository.UserPatch) (repository.UpdateResult, error) {
	u, ok := m.users[id]
	if !ok {
		return repository.UpdateResult{}, nil
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	return repository.UpdateResult{Matched: true, Modified: true}, nil
}
func (m *memUserRepo) UpdatePasswordByEmail(_ context.Context, email, hash string) (repository.UpdateResult, error) {
	for _, u := range m.users {
		if u.Email == email {
			u.PasswordHash = hash
			return repository.UpdateResult{Matched: true, Modified: true}, nil
		}
	}
	return repository.UpdateResult{}, nil
}
func (m *memUserRepo) Delete(_ context.Context, id string) (repository.DeleteResult, error) {
	_, ok := m.users[id]
	delete(m.users, id)
	return repository.DeleteResult{Deleted: ok}, nil
}

type seqCounter struct{ n int64 }

func (s *seqCounter) Next(_ context.Context, _ string) (int64, error) {
	s.n++
	return s.n, nil
}

type fakeMailer struct {
	sent    []sentMail
	failErr error
}

type sentMail struct {
	to      []string
	subject string
	body    string
}

func (f *fakeMailer) Send(to []string, subject, body string) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func newUser(id, name, email, password, role, status string) *entity.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &entity.User{
		ID: id, Name: name, Email: email,
		PasswordHash: string(hash),
		Role:         role, Status: status,
		RegisteredAt: time.Now(),
	}
}

func fixture() (*auth.UseCase, *memUserRepo, *fakeMailer) {
	users := newMemUserRepo()
	mailer := &fakeMailer{}
	uc := auth.NewUseCase(users, &seqCounter{}, mailer, testSecret, testIssuer, 60, logger.Nop())
	return uc, users, mailer
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteTokenConPrincipal(t *testing.T) {
	uc, users, _ := fixture()
	users.users["u1"] = newUser("u1", "Carlos", "carlos@mini.com", "clave123", entity.RoleVendedor, entity.StatusActive)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    " CARLOS@mini.com ",
		Password: "clave123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "Carlos", resp.User.Name)

	p, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", p.ID)
	assert.Equal(t, entity.RoleVendedor, p.Role)
	assert.Equal(t, "carlos@mini.com", p.Email)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, users, _ := fixture()
	users.users["u1"] = newUser("u1", "Carlos", "carlos@mini.com", "clave123", entity.RoleVendedor, entity.StatusActive)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "carlos@mini.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Email inexistente responde igual que password incorrecta.
func TestLogin_EmailInexistente(t *testing.T) {
	uc, _, _ := fixture()

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@mini.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactivaBloqueada(t *testing.T) {
	uc, users, _ := fixture()
	users.users["u1"] = newUser("u1", "Nuevo", "nuevo@mini.com", "clave123", entity.RoleVendedor, entity.StatusInactive)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nuevo@mini.com", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrInactiveAccount)
}

func TestLogin_RolNoneBloqueado(t *testing.T) {
	uc, users, _ := fixture()
	users.users["u1"] = newUser("u1", "Nuevo", "nuevo@mini.com", "clave123", entity.RoleNone, entity.StatusActive)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nuevo@mini.com", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrInactiveAccount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_NaceSinRolEInactivo(t *testing.T) {
	uc, _, _ := fixture()

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Nuevo", Email: "Nuevo@Mini.com", Password: "clave123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleNone, resp.Role)
	assert.Equal(t, entity.StatusInactive, resp.Status)
	assert.Equal(t, "nuevo@mini.com", resp.Email)
	assert.EqualValues(t, 1, resp.SeqID)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, users, _ := fixture()
	users.users["u1"] = newUser("u1", "Carlos", "carlos@mini.com", "clave123", entity.RoleVendedor, entity.StatusActive)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Otro", Email: "carlos@mini.com", Password: "clave123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reset de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestResetPassword_EnviaTemporalPorCorreo(t *testing.T) {
	uc, users, mailer := fixture()
	users.users["u1"] = newUser("u1", "Carlos", "carlos@mini.com", "vieja", entity.RoleVendedor, entity.StatusActive)
	oldHash := users.users["u1"].PasswordHash

	warning, err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Email: "carlos@mini.com"})
	require.NoError(t, err)
	assert.Empty(t, warning)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"carlos@mini.com"}, mailer.sent[0].to)
	assert.NotEqual(t, oldHash, users.users["u1"].PasswordHash, "la contraseña debe cambiar")
}

// El correo fallido no revierte el cambio: se devuelve la advertencia.
func TestResetPassword_FalloDeCorreoDejaAdvertencia(t *testing.T) {
	uc, users, mailer := fixture()
	users.users["u1"] = newUser("u1", "Carlos", "carlos@mini.com", "vieja", entity.RoleVendedor, entity.StatusActive)
	oldHash := users.users["u1"].PasswordHash
	mailer.failErr = errors.New("smtp caído")

	warning, err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Email: "carlos@mini.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, warning)
	assert.NotEqual(t, oldHash, users.users["u1"].PasswordHash, "la contraseña queda cambiada igual")
}

func TestResetPassword_EmailInexistente(t *testing.T) {
	uc, _, _ := fixture()

	_, err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Email: "nadie@mini.com"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Solicitud de cambio de contraseña (vendedor)
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestPasswordChange_NotificaAdminsActivos(t *testing.T) {
	uc, users, mailer := fixture()
	users.users["a1"] = newUser("a1", "Admin Uno", "admin1@mini.com", "x", entity.RoleAdmin, entity.StatusActive)
	users.users["a2"] = newUser("a2", "Admin Dos", "admin2@mini.com", "x", entity.RoleAdmin, entity.StatusInactive)
	users.users["v1"] = newUser("v1", "Vendedor", "vend@mini.com", "x", entity.RoleVendedor, entity.StatusActive)

	requester := pkgjwt.Principal{ID: "v1", Name: "Vendedor", Role: entity.RoleVendedor, Email: "vend@mini.com"}
	warning, err := uc.RequestPasswordChange(context.Background(), requester, dto.PasswordChangeRequest{
		Email:       "vend@mini.com",
		NewPassword: "nueva-clave",
	})
	require.NoError(t, err)
	assert.Empty(t, warning)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"admin1@mini.com"}, mailer.sent[0].to,
		"solo los administradores activos reciben la solicitud")
	assert.Contains(t, mailer.sent[0].body, "Vendedor")
}

// Solo se puede solicitar sobre la cuenta propia.
func TestRequestPasswordChange_EmailAjenoProhibido(t *testing.T) {
	uc, _, _ := fixture()

	requester := pkgjwt.Principal{ID: "v1", Name: "Vendedor", Role: entity.RoleVendedor, Email: "vend@mini.com"}
	_, err := uc.RequestPasswordChange(context.Background(), requester, dto.PasswordChangeRequest{
		Email:       "otro@mini.com",
		NewPassword: "nueva",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
