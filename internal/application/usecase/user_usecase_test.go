package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wramirez/minimarket-crm/internal/application/dto"
	"github.com/wramirez/minimarket-crm/internal/application/usecase"
	"github.com/wramirez/minimarket-crm/internal/domain"
	"github.com/wramirez/minimarket-crm/internal/domain/entity"
	"github.com/wramirez/minimarket-crm/internal/domain/repository"
	"github.com/wramirez/minimarket-crm/pkg/logger"
)

type memAdminUserRepo struct {
	users     map[string]*entity.User
	lastPatch repository.UserPatch
}

func newMemAdminUserRepo() *memAdminUserRepo {
	return &memAdminUserRepo{users: map[string]*entity.User{}}
}

func (m *memAdminUserRepo) Create(_ context.Context, u *entity.User) error {
	m.users[u.ID] = u
	return nil
}
func (m *memAdminUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return m.users[id], nil
}
func (m *memAdminUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (m *memAdminUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}
func (m *memAdminUserRepo) Update(_ context.Context, id string, patch repository.UserPatch) (repository.UpdateResult, error) {
	m.lastPatch = patch
	_, ok := m.users[id]
	return repository.UpdateResult{Matched: ok, Modified: ok}, nil
}
func (m *memAdminUserRepo) UpdatePasswordByEmail(_ context.Context, email, hash string) (repository.UpdateResult, error) {
	for _, u := range m.users {
		if u.Email == email {
			u.PasswordHash = hash
			return repository.UpdateResult{Matched: true, Modified: true}, nil
		}
	}
	return repository.UpdateResult{}, nil
}
func (m *memAdminUserRepo) Delete(_ context.Context, id string) (repository.DeleteResult, error) {
	_, ok := m.users[id]
	delete(m.users, id)
	return repository.DeleteResult{Deleted: ok}, nil
}

func userFixture() (*usecase.UserUseCase, *memAdminUserRepo) {
	repo := newMemAdminUserRepo()
	return usecase.NewUserUseCase(repo, newFakeCounterRepo(), logger.Nop()), repo
}

func TestUserCreate_RolYEstadoPorDefecto(t *testing.T) {
	uc, _ := userFixture()

	resp, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name:     "Nuevo",
		Email:    "Nuevo@Mini.com",
		Password: "clave123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleNone, resp.Role)
	assert.Equal(t, entity.StatusInactive, resp.Status)
	assert.Equal(t, "nuevo@mini.com", resp.Email)
	assert.EqualValues(t, 1, resp.SeqID)
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	uc, repo := userFixture()
	repo.users["u1"] = &entity.User{ID: "u1", Email: "carlos@mini.com"}

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Otro", Email: "CARLOS@mini.com", Password: "clave123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestUserCreate_PasswordRequerida(t *testing.T) {
	uc, _ := userFixture()

	_, err := uc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Nuevo", Email: "nuevo@mini.com",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// nueva_password se hashea en el caso de uso, nunca viaja en claro al repo.
func TestUserUpdate_HasheaNuevaPassword(t *testing.T) {
	uc, repo := userFixture()
	repo.users["u1"] = &entity.User{ID: "u1", Email: "carlos@mini.com"}

	pass := "nueva-clave"
	res, err := uc.Update(context.Background(), "u1", dto.UpdateUserRequest{NewPassword: &pass})
	require.NoError(t, err)
	assert.True(t, res.Modified)

	require.NotNil(t, repo.lastPatch.PasswordHash)
	assert.NotEqual(t, pass, *repo.lastPatch.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*repo.lastPatch.PasswordHash), []byte(pass)))
}

func TestUserUpdate_PasswordVaciaRechazada(t *testing.T) {
	uc, _ := userFixture()

	empty := ""
	_, err := uc.Update(context.Background(), "u1", dto.UpdateUserRequest{NewPassword: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Una cuenta no puede borrarse a sí misma.
func TestUserDelete_AutoBorradoProhibido(t *testing.T) {
	uc, repo := userFixture()
	repo.users["u1"] = &entity.User{ID: "u1"}

	_, err := uc.Delete(context.Background(), "u1", "u1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Contains(t, repo.users, "u1", "la cuenta no debe borrarse")
}

func TestUserDelete_OtraCuenta(t *testing.T) {
	uc, repo := userFixture()
	repo.users["u1"] = &entity.User{ID: "u1"}

	res, err := uc.Delete(context.Background(), "u1", "admin-1")
	require.NoError(t, err)
	assert.True(t, res.Deleted)
}
