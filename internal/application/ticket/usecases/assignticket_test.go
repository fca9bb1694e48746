package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	evo "gmao/internal/domain/equipment/valueobjects"
	"gmao/internal/domain/ticket"
	tvo "gmao/internal/domain/ticket/valueobjects"
	uvo "gmao/internal/domain/user/valueobjects"
	"gmao/internal/shared/errors"
)

func testTicket(t *testing.T, id uint, status tvo.TicketStatus, assigneeID *uint) *ticket.Ticket {
	t.Helper()

	var assignedAt *time.Time
	if assigneeID != nil {
		now := time.Now()
		assignedAt = &now
	}

	tk, err := ticket.ReconstructTicket(
		id, "Printer jammed", "Paper stuck in tray 2",
		tvo.PriorityNormal, status,
		1, 10, 5, assigneeID, "",
		assignedAt, nil, nil,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return tk
}

func TestAssignTicketUseCase_Execute_Success(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	userRepo := new(mockUserRepository)
	equipmentRepo := new(mockEquipmentRepository)
	notifier := new(mockNotifier)

	userRepo.On("GetByID", mock.Anything, uint(7)).Return(testUser(t, 7, uvo.RoleTechnicien, true), nil)
	ticketRepo.On("GetByID", mock.Anything, uint(1)).Return(testTicket(t, 1, tvo.StatusEnAttente, nil), nil)
	ticketRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	equipmentRepo.On("UpdateStatus", mock.Anything, uint(10), evo.StatusEnMaintenance).Return(nil)
	notifier.On("TicketAssigned", mock.Anything, mock.MatchedBy(func(e ticket.AssignedEvent) bool {
		return e.TicketID == 1 && e.AssigneeID == 7 && e.ActorID == 2
	})).Return(nil)

	uc := NewAssignTicketUseCase(ticketRepo, userRepo, equipmentRepo, notifier, newPassthroughTxManager(), newNopLogger())

	result, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 1, AssigneeID: 7, ActorID: 2})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.AssigneeID)
	assert.Equal(t, "en_cours", result.Status)
	assert.NotNil(t, result.AssignedAt)
	notifier.AssertExpectations(t)
}

func TestAssignTicketUseCase_Execute_SameAssigneeIsNoop(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	userRepo := new(mockUserRepository)
	equipmentRepo := new(mockEquipmentRepository)
	notifier := new(mockNotifier)

	assigneeID := uint(7)
	userRepo.On("GetByID", mock.Anything, uint(7)).Return(testUser(t, 7, uvo.RoleTechnicien, true), nil)
	ticketRepo.On("GetByID", mock.Anything, uint(1)).Return(testTicket(t, 1, tvo.StatusEnCours, &assigneeID), nil)

	uc := NewAssignTicketUseCase(ticketRepo, userRepo, equipmentRepo, notifier, newPassthroughTxManager(), newNopLogger())

	result, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 1, AssigneeID: 7, ActorID: 2})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.AssigneeID)
	ticketRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "TicketAssigned", mock.Anything, mock.Anything)
}

func TestAssignTicketUseCase_Execute_InactiveAssignee(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	userRepo := new(mockUserRepository)
	equipmentRepo := new(mockEquipmentRepository)
	notifier := new(mockNotifier)

	userRepo.On("GetByID", mock.Anything, uint(7)).Return(testUser(t, 7, uvo.RoleTechnicien, false), nil)

	uc := NewAssignTicketUseCase(ticketRepo, userRepo, equipmentRepo, notifier, newPassthroughTxManager(), newNopLogger())

	result, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 1, AssigneeID: 7, ActorID: 2})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}

func TestAssignTicketUseCase_Execute_TicketNotFound(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	userRepo := new(mockUserRepository)
	equipmentRepo := new(mockEquipmentRepository)
	notifier := new(mockNotifier)

	userRepo.On("GetByID", mock.Anything, uint(7)).Return(testUser(t, 7, uvo.RoleTechnicien, true), nil)
	ticketRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, errors.NewNotFoundError("ticket not found"))

	uc := NewAssignTicketUseCase(ticketRepo, userRepo, equipmentRepo, notifier, newPassthroughTxManager(), newNopLogger())

	result, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 99, AssigneeID: 7, ActorID: 2})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestAssignTicketUseCase_Execute_RunsReadAndWriteInOneTransaction(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	userRepo := new(mockUserRepository)
	equipmentRepo := new(mockEquipmentRepository)
	notifier := new(mockNotifier)
	txManager := newPassthroughTxManager()

	userRepo.On("GetByID", mock.Anything, uint(7)).Return(testUser(t, 7, uvo.RoleTechnicien, true), nil)
	ticketRepo.On("GetByID", mock.Anything, uint(1)).Return(testTicket(t, 1, tvo.StatusEnAttente, nil), nil)
	ticketRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	equipmentRepo.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	notifier.On("TicketAssigned", mock.Anything, mock.Anything).Return(nil)

	uc := NewAssignTicketUseCase(ticketRepo, userRepo, equipmentRepo, notifier, txManager, newNopLogger())

	_, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 1, AssigneeID: 7, ActorID: 2})

	require.NoError(t, err)
	assert.Equal(t, 1, txManager.calls)
	ticketRepo.AssertCalled(t, "GetByID", mock.Anything, uint(1))
	ticketRepo.AssertCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignTicketUseCase_Execute_NotifierFailureDoesNotFailAssignment(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	userRepo := new(mockUserRepository)
	equipmentRepo := new(mockEquipmentRepository)
	notifier := new(mockNotifier)

	userRepo.On("GetByID", mock.Anything, uint(7)).Return(testUser(t, 7, uvo.RoleTechnicien, true), nil)
	ticketRepo.On("GetByID", mock.Anything, uint(1)).Return(testTicket(t, 1, tvo.StatusEnAttente, nil), nil)
	ticketRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	equipmentRepo.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	notifier.On("TicketAssigned", mock.Anything, mock.Anything).Return(errors.NewInternalError("dispatch failed"))

	uc := NewAssignTicketUseCase(ticketRepo, userRepo, equipmentRepo, notifier, newPassthroughTxManager(), newNopLogger())

	result, err := uc.Execute(context.Background(), AssignTicketCommand{TicketID: 1, AssigneeID: 7, ActorID: 2})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.AssigneeID)
}
