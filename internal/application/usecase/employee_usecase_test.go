package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wramirez/minimarket-crm/internal/application/dto"
	"github.com/wramirez/minimarket-crm/internal/application/usecase"
	"github.com/wramirez/minimarket-crm/internal/domain"
	"github.com/wramirez/minimarket-crm/internal/domain/entity"
	"github.com/wramirez/minimarket-crm/pkg/logger"
)

func TestEmployeeCreate_EstadoPorDefectoActivo(t *testing.T) {
	repo := newMemEmployeeRepo()
	uc := usecase.NewEmployeeUseCase(repo, newFakeCounterRepo(), logger.Nop())

	resp, err := uc.Create(context.Background(), dto.CreateEmployeeRequest{
		DocumentNumber: "1020304050",
		Name:           "José",
		Surname:        "Martínez",
		Age:            30,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, resp.Status)
	assert.EqualValues(t, 1, resp.SeqID)
}

func TestEmployeeCreate_DocumentoDuplicado(t *testing.T) {
	repo := newMemEmployeeRepo()
	repo.employees["emp-1"] = &entity.Employee{ID: "emp-1", DocumentNumber: "1020304050"}
	uc := usecase.NewEmployeeUseCase(repo, newFakeCounterRepo(), logger.Nop())

	_, err := uc.Create(context.Background(), dto.CreateEmployeeRequest{
		DocumentNumber: "1020304050",
		Name:           "Otro",
		Surname:        "Empleado",
		Age:            25,
	})
	assert.ErrorIs(t, err, domain.ErrDocumentExists)
}

func TestEmployeeCreate_EdadInvalida(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newMemEmployeeRepo(), newFakeCounterRepo(), logger.Nop())

	_, err := uc.Create(context.Background(), dto.CreateEmployeeRequest{
		DocumentNumber: "111",
		Name:           "José",
		Surname:        "Martínez",
		Age:            0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmployeeUpdate_EdadNegativaRechazada(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(newMemEmployeeRepo(), newFakeCounterRepo(), logger.Nop())

	age := -5
	_, err := uc.Update(context.Background(), "emp-1", dto.UpdateEmployeeRequest{Age: &age})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
