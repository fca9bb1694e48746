package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	evo "gmao/internal/domain/equipment/valueobjects"
	"gmao/internal/domain/panne"
	"gmao/internal/shared/errors"
)

func testPanne(t *testing.T, id uint, resolved bool) *panne.Panne {
	t.Helper()

	var resolvedAt *time.Time
	var resolvedBy *uint
	if resolved {
		now := time.Now()
		by := uint(7)
		resolvedAt = &now
		resolvedBy = &by
	}

	p, err := panne.ReconstructPanne(id, 10, 5, "Screen stays black", resolved, time.Now(), resolvedAt, resolvedBy)
	require.NoError(t, err)
	return p
}

func TestResolvePanneUseCase_Execute_Success(t *testing.T) {
	panneRepo := new(mockPanneRepository)
	equipmentRepo := new(mockEquipmentRepository)
	notifier := new(mockNotifier)

	panneRepo.On("GetByID", mock.Anything, uint(3)).Return(testPanne(t, 3, false), nil)
	panneRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	equipmentRepo.On("UpdateStatus", mock.Anything, uint(10), evo.StatusActif).Return(nil)
	notifier.On("PanneResolved", mock.Anything, uint(3), uint(5), uint(7)).Return(nil)

	uc := NewResolvePanneUseCase(panneRepo, equipmentRepo, notifier, newNopLogger())

	result, err := uc.Execute(context.Background(), ResolvePanneCommand{PanneID: 3, ActorID: 7})

	require.NoError(t, err)
	assert.True(t, result.Panne.Resolved)
	require.NotNil(t, result.Panne.ResolvedBy)
	assert.Equal(t, uint(7), *result.Panne.ResolvedBy)
	equipmentRepo.AssertCalled(t, "UpdateStatus", mock.Anything, uint(10), evo.StatusActif)
	notifier.AssertExpectations(t)
}

func TestResolvePanneUseCase_Execute_AlreadyResolvedIsIdempotent(t *testing.T) {
	panneRepo := new(mockPanneRepository)
	equipmentRepo := new(mockEquipmentRepository)
	notifier := new(mockNotifier)

	panneRepo.On("GetByID", mock.Anything, uint(3)).Return(testPanne(t, 3, true), nil)

	uc := NewResolvePanneUseCase(panneRepo, equipmentRepo, notifier, newNopLogger())

	result, err := uc.Execute(context.Background(), ResolvePanneCommand{PanneID: 3, ActorID: 9})

	require.NoError(t, err)
	assert.True(t, result.Panne.Resolved)
	assert.Equal(t, uint(7), *result.Panne.ResolvedBy, "first resolution wins")
	panneRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	equipmentRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "PanneResolved", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolvePanneUseCase_Execute_NotFound(t *testing.T) {
	panneRepo := new(mockPanneRepository)
	equipmentRepo := new(mockEquipmentRepository)
	notifier := new(mockNotifier)

	panneRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, errors.NewNotFoundError("panne not found"))

	uc := NewResolvePanneUseCase(panneRepo, equipmentRepo, notifier, newNopLogger())

	result, err := uc.Execute(context.Background(), ResolvePanneCommand{PanneID: 99, ActorID: 7})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestResolvePanneUseCase_Execute_ValidationErrors(t *testing.T) {
	uc := NewResolvePanneUseCase(new(mockPanneRepository), new(mockEquipmentRepository), new(mockNotifier), newNopLogger())

	_, err := uc.Execute(context.Background(), ResolvePanneCommand{ActorID: 7})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ResolvePanneCommand{PanneID: 3})
	assert.True(t, errors.IsValidationError(err))
}
