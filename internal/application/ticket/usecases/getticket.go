package usecases

import (
	"context"

	"gmao/internal/application/ticket/dto"
	"gmao/internal/domain/ticket"
	uvo "gmao/internal/domain/user/valueobjects"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID    uint
	RequesterID uint
	Role        uvo.Role
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !t.CanBeViewedBy(query.RequesterID, query.Role.IsAdmin(), query.Role.IsTechnicien()) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	return dto.FromEntity(t), nil
}

// CheckAssignmentQuery asks whether a ticket is currently assigned to the
// given technician.
type CheckAssignmentQuery struct {
	TicketID     uint
	TechnicianID uint
}

type CheckAssignmentResult struct {
	Assigned bool `json:"assigned"`
}

type CheckAssignmentUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCheckAssignmentUseCase(ticketRepo ticket.Repository, logger logger.Interface) *CheckAssignmentUseCase {
	return &CheckAssignmentUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CheckAssignmentUseCase) Execute(ctx context.Context, query CheckAssignmentQuery) (*CheckAssignmentResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if query.TechnicianID == 0 {
		return nil, errors.NewValidationError("technician ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	return &CheckAssignmentResult{Assigned: t.IsAssignedTo(query.TechnicianID)}, nil
}
