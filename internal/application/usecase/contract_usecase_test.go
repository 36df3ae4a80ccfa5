package usecase_test

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wramirez/minimarket-crm/internal/application/dto"
	"github.com/wramirez/minimarket-crm/internal/application/usecase"
	"github.com/wramirez/minimarket-crm/internal/domain"
	"github.com/wramirez/minimarket-crm/internal/domain/entity"
	"github.com/wramirez/minimarket-crm/internal/domain/repository"
	"github.com/wramirez/minimarket-crm/pkg/logger"
)

type memEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{employees: map[string]*entity.Employee{}}
}

func (m *memEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	m.employees[e.ID] = e
	return nil
}
func (m *memEmployeeRepo) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	return m.employees[id], nil
}
func (m *memEmployeeRepo) GetByDocument(_ context.Context, doc string) (*entity.Employee, error) {
	for _, e := range m.employees {
		if e.DocumentNumber == doc {
			return e, nil
		}
	}
	return nil, nil
}
func (m *memEmployeeRepo) List(_ context.Context, _ string) ([]*entity.Employee, error) {
	out := make([]*entity.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		out = append(out, e)
	}
	return out, nil
}
func (m *memEmployeeRepo) Update(_ context.Context, id string, _ repository.EmployeePatch) (repository.UpdateResult, error) {
	_, ok := m.employees[id]
	return repository.UpdateResult{Matched: ok, Modified: ok}, nil
}
func (m *memEmployeeRepo) Delete(_ context.Context, id string) (repository.DeleteResult, error) {
	_, ok := m.employees[id]
	delete(m.employees, id)
	return repository.DeleteResult{Deleted: ok}, nil
}

type memContractRepo struct {
	contracts map[string]*entity.Contract
	employees *memEmployeeRepo
	lastPatch repository.ContractPatch
}

func newMemContractRepo(employees *memEmployeeRepo) *memContractRepo {
	return &memContractRepo{contracts: map[string]*entity.Contract{}, employees: employees}
}

func (m *memContractRepo) Create(_ context.Context, c *entity.Contract) error {
	copied := *c
	m.contracts[c.ID] = &copied
	return nil
}
func (m *memContractRepo) GetByID(_ context.Context, id string) (*entity.Contract, error) {
	return m.contracts[id], nil
}
func (m *memContractRepo) ListWithEmployee(_ context.Context) ([]*entity.ContractWithEmployee, error) {
	out := make([]*entity.ContractWithEmployee, 0, len(m.contracts))
	for _, c := range m.contracts {
		row := &entity.ContractWithEmployee{Contract: *c}
		if e, ok := m.employees.employees[c.EmployeeID]; ok {
			row.EmployeeName = e.FullName()
			row.EmployeeDocument = e.DocumentNumber
		}
		out = append(out, row)
	}
	return out, nil
}
func (m *memContractRepo) Update(_ context.Context, id string, patch repository.ContractPatch) (repository.UpdateResult, error) {
	m.lastPatch = patch
	_, ok := m.contracts[id]
	return repository.UpdateResult{Matched: ok, Modified: ok}, nil
}
func (m *memContractRepo) Delete(_ context.Context, id string) (repository.DeleteResult, error) {
	_, ok := m.contracts[id]
	delete(m.contracts, id)
	return repository.DeleteResult{Deleted: ok}, nil
}
func (m *memContractRepo) AttachPDF(_ context.Context, id, pdfBase64 string) error {
	if c, ok := m.contracts[id]; ok {
		c.PDFData = pdfBase64
	}
	return nil
}

type fakeContractPDF struct {
	raw     []byte
	failErr error
}

func (f *fakeContractPDF) RenderContract(_ *entity.Contract, _ *entity.Employee) ([]byte, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	return f.raw, nil
}

func contractFixture(t *testing.T) (*usecase.ContractUseCase, *memContractRepo, *memEmployeeRepo) {
	t.Helper()
	employees := newMemEmployeeRepo()
	employees.employees["emp-1"] = &entity.Employee{
		ID: "emp-1", DocumentNumber: "1020304050",
		Name: "José", Surname: "Martínez", Age: 30,
	}
	contracts := newMemContractRepo(employees)
	pdf := &fakeContractPDF{raw: []byte("%PDF-contrato")}
	uc := usecase.NewContractUseCase(contracts, employees, newFakeCounterRepo(), pdf, logger.Nop())
	return uc, contracts, employees
}

func TestContractCreate_GeneraPDF(t *testing.T) {
	uc, contracts, _ := contractFixture(t)

	resp, err := uc.Create(context.Background(), dto.CreateContractRequest{
		EmployeeID: "emp-1",
		Type:       entity.ContractFixedTerm,
		StartDate:  "2026-01-15",
		EndDate:    "2026-07-15",
		Salary:     decimal.NewFromInt(1300000),
		Position:   "Cajero",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.SeqID)
	assert.Equal(t, "José Martínez", resp.EmployeeName)
	assert.True(t, resp.HasPDF)

	stored := contracts.contracts[resp.ID]
	require.NotNil(t, stored)
	raw, err := base64.StdEncoding.DecodeString(stored.PDFData)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-contrato"), raw)
}

func TestContractCreate_TipoInvalido(t *testing.T) {
	uc, _, _ := contractFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateContractRequest{
		EmployeeID: "emp-1",
		Type:       "Temporal",
		StartDate:  "2026-01-15",
		Salary:     decimal.NewFromInt(1300000),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un contrato Indefinido no admite fecha de fin.
func TestContractCreate_IndefinidoSinFechaFin(t *testing.T) {
	uc, _, _ := contractFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateContractRequest{
		EmployeeID: "emp-1",
		Type:       entity.ContractIndefinite,
		StartDate:  "2026-01-15",
		EndDate:    "2027-01-15",
		Salary:     decimal.NewFromInt(1300000),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err := uc.Create(context.Background(), dto.CreateContractRequest{
		EmployeeID: "emp-1",
		Type:       entity.ContractIndefinite,
		StartDate:  "2026-01-15",
		Salary:     decimal.NewFromInt(1300000),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.EndDate)
}

func TestContractCreate_EmpleadoInexistente(t *testing.T) {
	uc, _, _ := contractFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateContractRequest{
		EmployeeID: "no-existe",
		Type:       entity.ContractIndefinite,
		StartDate:  "2026-01-15",
		Salary:     decimal.NewFromInt(1300000),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContractCreate_FechaMalFormada(t *testing.T) {
	uc, _, _ := contractFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateContractRequest{
		EmployeeID: "emp-1",
		Type:       entity.ContractIndefinite,
		StartDate:  "15/01/2026",
		Salary:     decimal.NewFromInt(1300000),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La búsqueda ignora mayúsculas y tildes: "martinez" encuentra a "Martínez".
func TestContractList_BusquedaInsensibleATildes(t *testing.T) {
	uc, _, _ := contractFixture(t)

	_, err := uc.Create(context.Background(), dto.CreateContractRequest{
		EmployeeID: "emp-1",
		Type:       entity.ContractIndefinite,
		StartDate:  "2026-01-15",
		Salary:     decimal.NewFromInt(1300000),
	})
	require.NoError(t, err)

	list, err := uc.List(context.Background(), "martinez")
	require.NoError(t, err)
	assert.Len(t, list, 1, "la tilde de Martínez no debe impedir el match")

	list, err = uc.List(context.Background(), "JOSÉ")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = uc.List(context.Background(), "garcía")
	require.NoError(t, err)
	assert.Empty(t, list)
}

// fecha_fin explícita en "" limpia el campo; ausente no lo toca.
func TestContractUpdate_LimpiarFechaFin(t *testing.T) {
	uc, contracts, _ := contractFixture(t)

	created, err := uc.Create(context.Background(), dto.CreateContractRequest{
		EmployeeID: "emp-1",
		Type:       entity.ContractFixedTerm,
		StartDate:  "2026-01-15",
		EndDate:    "2026-07-15",
		Salary:     decimal.NewFromInt(1300000),
	})
	require.NoError(t, err)

	empty := ""
	res, err := uc.Update(context.Background(), created.ID, dto.UpdateContractRequest{EndDate: &empty})
	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.True(t, contracts.lastPatch.ClearEndDate)
	assert.Nil(t, contracts.lastPatch.EndDate)

	// Patch sin fecha_fin no la toca
	pos := "Supervisor"
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateContractRequest{Position: &pos})
	require.NoError(t, err)
	assert.False(t, contracts.lastPatch.ClearEndDate)
}

func TestContractDownloadPDF(t *testing.T) {
	uc, _, _ := contractFixture(t)

	created, err := uc.Create(context.Background(), dto.CreateContractRequest{
		EmployeeID: "emp-1",
		Type:       entity.ContractIndefinite,
		StartDate:  "2026-01-15",
		Salary:     decimal.NewFromInt(1300000),
	})
	require.NoError(t, err)

	raw, filename, err := uc.DownloadPDF(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-contrato"), raw)
	assert.Equal(t, "contrato_1.pdf", filename)
}

func TestContractUpdate_FechaInicioValida(t *testing.T) {
	uc, contracts, _ := contractFixture(t)

	created, err := uc.Create(context.Background(), dto.CreateContractRequest{
		EmployeeID: "emp-1",
		Type:       entity.ContractIndefinite,
		StartDate:  "2026-01-15",
		Salary:     decimal.NewFromInt(1300000),
	})
	require.NoError(t, err)

	start := "2026-02-01"
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateContractRequest{StartDate: &start})
	require.NoError(t, err)
	require.NotNil(t, contracts.lastPatch.StartDate)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), *contracts.lastPatch.StartDate)
}
