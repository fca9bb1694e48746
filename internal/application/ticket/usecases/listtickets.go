package usecases

import (
	"context"

	"gmao/internal/application/ticket/dto"
	"gmao/internal/domain/ticket"
	vo "gmao/internal/domain/ticket/valueobjects"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status     string
	Priority   string
	CreatorID  uint
	AssigneeID uint
	CategoryID uint
	Page       int
	PageSize   int
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	if query.Status != "" && !vo.TicketStatus(query.Status).IsValid() {
		return nil, errors.NewValidationError("invalid status filter")
	}
	if query.Priority != "" && !vo.Priority(query.Priority).IsValid() {
		return nil, errors.NewValidationError("invalid priority filter")
	}

	filter := ticket.Filter{
		Status:     vo.TicketStatus(query.Status),
		Priority:   vo.Priority(query.Priority),
		CreatorID:  query.CreatorID,
		AssigneeID: query.AssigneeID,
		CategoryID: query.CategoryID,
		Limit:      query.PageSize,
		Offset:     (query.Page - 1) * query.PageSize,
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	return &ListTicketsResult{
		Tickets: dto.FromEntities(tickets),
		Total:   total,
	}, nil
}
