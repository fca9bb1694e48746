package usecases

import (
	"context"

	"gmao/internal/application/ticket/dto"
	"gmao/internal/domain/ticket"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type CheckAssignmentExecutor interface {
	Execute(ctx context.Context, query CheckAssignmentQuery) (*CheckAssignmentResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

// Notifier is the dispatch seam the lifecycle calls after the primary
// mutation is durable. Failures are logged by the caller and never fail the
// primary operation.
type Notifier interface {
	TicketAssigned(ctx context.Context, e ticket.AssignedEvent) error
	TicketStatusChanged(ctx context.Context, e ticket.StatusChangedEvent) error
	TicketCommented(ctx context.Context, e ticket.CommentedEvent) error
}

// TransactionManager runs fn inside one database transaction. The context
// handed to fn carries the transaction, which the repositories pick up via
// the shared db helpers.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
