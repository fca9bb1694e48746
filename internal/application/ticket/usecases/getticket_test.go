package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gmao/internal/domain/ticket"
	tvo "gmao/internal/domain/ticket/valueobjects"
	uvo "gmao/internal/domain/user/valueobjects"
	"gmao/internal/shared/errors"
)

func TestGetTicketUseCase_Execute_AccessControl(t *testing.T) {
	assigneeID := uint(7)

	tests := []struct {
		name        string
		requesterID uint
		role        uvo.Role
		wantErr     bool
	}{
		{"creator sees own ticket", 5, uvo.RoleUtilisateur, false},
		{"assignee sees ticket", 7, uvo.RoleTechnicien, false},
		{"admin sees any ticket", 99, uvo.RoleAdmin, false},
		{"technician sees any ticket", 99, uvo.RoleTechnicien, false},
		{"unrelated user refused", 99, uvo.RoleUtilisateur, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticketRepo := new(mockTicketRepository)
			ticketRepo.On("GetByID", mock.Anything, uint(1)).Return(testTicket(t, 1, tvo.StatusEnCours, &assigneeID), nil)

			uc := NewGetTicketUseCase(ticketRepo, newNopLogger())

			result, err := uc.Execute(context.Background(), GetTicketQuery{
				TicketID:    1,
				RequesterID: tt.requesterID,
				Role:        tt.role,
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsForbiddenError(err))
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(1), result.ID)
			}
		})
	}
}

func TestGetTicketUseCase_Execute_NotFound(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	ticketRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, errors.NewNotFoundError("ticket not found"))

	uc := NewGetTicketUseCase(ticketRepo, newNopLogger())

	result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 99, RequesterID: 5, Role: uvo.RoleAdmin})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestCheckAssignmentUseCase_Execute(t *testing.T) {
	assigneeID := uint(7)
	ticketRepo := new(mockTicketRepository)
	ticketRepo.On("GetByID", mock.Anything, uint(1)).Return(testTicket(t, 1, tvo.StatusEnCours, &assigneeID), nil)

	uc := NewCheckAssignmentUseCase(ticketRepo, newNopLogger())

	result, err := uc.Execute(context.Background(), CheckAssignmentQuery{TicketID: 1, TechnicianID: 7})
	require.NoError(t, err)
	assert.True(t, result.Assigned)

	result, err = uc.Execute(context.Background(), CheckAssignmentQuery{TicketID: 1, TechnicianID: 8})
	require.NoError(t, err)
	assert.False(t, result.Assigned)
}

func TestListTicketsUseCase_Execute_FilterValidation(t *testing.T) {
	uc := NewListTicketsUseCase(new(mockTicketRepository), newNopLogger())

	_, err := uc.Execute(context.Background(), ListTicketsQuery{Status: "in_progress", Page: 1, PageSize: 20})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ListTicketsQuery{Priority: "urgent", Page: 1, PageSize: 20})
	assert.True(t, errors.IsValidationError(err))
}

func TestListTicketsUseCase_Execute_BuildsFilter(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	assigneeID := uint(7)

	ticketRepo.On("List", mock.Anything, mock.MatchedBy(func(f ticket.Filter) bool {
		return f.Status == tvo.StatusEnCours &&
			f.CreatorID == 5 &&
			f.Limit == 20 &&
			f.Offset == 20
	})).Return([]*ticket.Ticket{testTicket(t, 1, tvo.StatusEnCours, &assigneeID)}, int64(1), nil)

	uc := NewListTicketsUseCase(ticketRepo, newNopLogger())

	result, err := uc.Execute(context.Background(), ListTicketsQuery{
		Status:    "en_cours",
		CreatorID: 5,
		Page:      2,
		PageSize:  20,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	assert.Len(t, result.Tickets, 1)
}
