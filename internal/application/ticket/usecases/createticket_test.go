package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gmao/internal/domain/category"
	"gmao/internal/domain/equipment"
	evo "gmao/internal/domain/equipment/valueobjects"
	"gmao/internal/domain/ticket"
	"gmao/internal/domain/user"
	uvo "gmao/internal/domain/user/valueobjects"
	"gmao/internal/shared/errors"
)

func testCategory(t *testing.T) *category.Category {
	t.Helper()
	c, err := category.ReconstructCategory(1, "Hardware", "")
	require.NoError(t, err)
	return c
}

func testEquipment(t *testing.T, id uint) *equipment.Equipment {
	t.Helper()
	e, err := equipment.ReconstructEquipment(id, "SRV-001", "Rack server", "Salle B12", evo.StatusActif, nil, time.Now(), time.Now())
	require.NoError(t, err)
	return e
}

func testUser(t *testing.T, id uint, role uvo.Role, active bool) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, "Alice", "alice@example.com", "hash", role, active, time.Now(), false, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func validCreateTicketCommand() CreateTicketCommand {
	return CreateTicketCommand{
		Title:       "Printer jammed",
		Description: "Paper stuck in tray 2",
		Priority:    "high",
		CategoryID:  1,
		EquipmentID: 10,
		CreatorID:   5,
	}
}

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	equipmentRepo := new(mockEquipmentRepository)
	categoryRepo := new(mockCategoryRepository)
	userRepo := new(mockUserRepository)

	categoryRepo.On("GetByID", mock.Anything, uint(1)).Return(testCategory(t), nil)
	equipmentRepo.On("GetByID", mock.Anything, uint(10)).Return(testEquipment(t, 10), nil)
	userRepo.On("GetByID", mock.Anything, uint(5)).Return(testUser(t, 5, uvo.RoleUtilisateur, true), nil)

	ticketRepo.On("Save", mock.Anything, mock.AnythingOfType("*ticket.Ticket")).
		Run(func(args mock.Arguments) {
			saved := args.Get(1).(*ticket.Ticket)
			_ = saved.SetID(42)
		}).
		Return(nil)

	equipmentRepo.On("UpdateStatus", mock.Anything, uint(10), evo.StatusEnMaintenance).Return(nil)

	uc := NewCreateTicketUseCase(ticketRepo, equipmentRepo, categoryRepo, userRepo, newNopLogger())

	result, err := uc.Execute(context.Background(), validCreateTicketCommand())

	require.NoError(t, err)
	assert.Equal(t, uint(42), result.TicketID)
	assert.Equal(t, "en_attente", result.Status)
	equipmentRepo.AssertCalled(t, "UpdateStatus", mock.Anything, uint(10), evo.StatusEnMaintenance)
}

func TestCreateTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cmd *CreateTicketCommand)
		wantErr string
	}{
		{"missing title", func(cmd *CreateTicketCommand) { cmd.Title = "" }, "title is required"},
		{"missing description", func(cmd *CreateTicketCommand) { cmd.Description = "" }, "description is required"},
		{"invalid priority", func(cmd *CreateTicketCommand) { cmd.Priority = "urgent" }, "invalid priority"},
		{"missing category", func(cmd *CreateTicketCommand) { cmd.CategoryID = 0 }, "category ID is required"},
		{"missing equipment", func(cmd *CreateTicketCommand) { cmd.EquipmentID = 0 }, "equipment ID is required"},
		{"missing creator", func(cmd *CreateTicketCommand) { cmd.CreatorID = 0 }, "creator ID is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateTicketUseCase(
				new(mockTicketRepository),
				new(mockEquipmentRepository),
				new(mockCategoryRepository),
				new(mockUserRepository),
				newNopLogger(),
			)

			cmd := validCreateTicketCommand()
			tt.mutate(&cmd)

			result, err := uc.Execute(context.Background(), cmd)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateTicketUseCase_Execute_UnknownReferences(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	equipmentRepo := new(mockEquipmentRepository)
	categoryRepo := new(mockCategoryRepository)
	userRepo := new(mockUserRepository)

	categoryRepo.On("GetByID", mock.Anything, uint(1)).Return(nil, errors.NewNotFoundError("category not found"))

	uc := NewCreateTicketUseCase(ticketRepo, equipmentRepo, categoryRepo, userRepo, newNopLogger())

	result, err := uc.Execute(context.Background(), validCreateTicketCommand())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "category does not exist")
}

func TestCreateTicketUseCase_Execute_OpenTicketConflict(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	equipmentRepo := new(mockEquipmentRepository)
	categoryRepo := new(mockCategoryRepository)
	userRepo := new(mockUserRepository)

	categoryRepo.On("GetByID", mock.Anything, uint(1)).Return(testCategory(t), nil)
	equipmentRepo.On("GetByID", mock.Anything, uint(10)).Return(testEquipment(t, 10), nil)
	userRepo.On("GetByID", mock.Anything, uint(5)).Return(testUser(t, 5, uvo.RoleUtilisateur, true), nil)

	conflict := errors.NewConflictError("an open ticket already exists for this equipment")
	ticketRepo.On("Save", mock.Anything, mock.Anything).Return(conflict)

	uc := NewCreateTicketUseCase(ticketRepo, equipmentRepo, categoryRepo, userRepo, newNopLogger())

	result, err := uc.Execute(context.Background(), validCreateTicketCommand())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
	equipmentRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateTicketUseCase_Execute_SyncFailureDoesNotFailCreation(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	equipmentRepo := new(mockEquipmentRepository)
	categoryRepo := new(mockCategoryRepository)
	userRepo := new(mockUserRepository)

	categoryRepo.On("GetByID", mock.Anything, uint(1)).Return(testCategory(t), nil)
	equipmentRepo.On("GetByID", mock.Anything, uint(10)).Return(testEquipment(t, 10), nil)
	userRepo.On("GetByID", mock.Anything, uint(5)).Return(testUser(t, 5, uvo.RoleUtilisateur, true), nil)

	ticketRepo.On("Save", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			_ = args.Get(1).(*ticket.Ticket).SetID(42)
		}).
		Return(nil)

	equipmentRepo.On("UpdateStatus", mock.Anything, uint(10), evo.StatusEnMaintenance).
		Return(errors.NewInternalError("database unavailable"))

	uc := NewCreateTicketUseCase(ticketRepo, equipmentRepo, categoryRepo, userRepo, newNopLogger())

	result, err := uc.Execute(context.Background(), validCreateTicketCommand())

	require.NoError(t, err)
	assert.Equal(t, uint(42), result.TicketID)
}
