package usecases

import (
	"context"
	"time"

	"gmao/internal/domain/equipment"
	"gmao/internal/domain/ticket"
	"gmao/internal/domain/user"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type AssignTicketCommand struct {
	TicketID   uint
	AssigneeID uint
	ActorID    uint
}

type AssignTicketResult struct {
	TicketID   uint       `json:"ticket_id"`
	AssigneeID uint       `json:"assignee_id"`
	Status     string     `json:"status"`
	AssignedAt *time.Time `json:"assigned_at,omitempty"`
}

type AssignTicketUseCase struct {
	ticketRepo    ticket.Repository
	userRepo      user.Repository
	equipmentRepo equipment.Repository
	notifier      Notifier
	txManager     TransactionManager
	logger        logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	equipmentRepo equipment.Repository,
	notifier Notifier,
	txManager TransactionManager,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo:    ticketRepo,
		userRepo:      userRepo,
		equipmentRepo: equipmentRepo,
		notifier:      notifier,
		txManager:     txManager,
		logger:        logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID,
		"assignee_id", cmd.AssigneeID,
		"actor_id", cmd.ActorID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid assign ticket command", "error", err)
		return nil, err
	}

	assignee, err := uc.userRepo.GetByID(ctx, cmd.AssigneeID)
	if err != nil {
		return nil, errors.NewNotFoundError("assignee not found")
	}

	if !assignee.CanPerformActions() {
		return nil, errors.NewValidationError("assignee is not active and cannot be assigned tickets")
	}

	var t *ticket.Ticket
	var assigned bool
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError("ticket not found")
		}

		// Re-assigning the current holder is a no-op success: no write,
		// no notification.
		if t.IsAssignedTo(cmd.AssigneeID) {
			return nil
		}

		if err := t.AssignTo(cmd.AssigneeID); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "error", err)
			return errors.NewInternalError("failed to update ticket")
		}

		assigned = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !assigned {
		return &AssignTicketResult{
			TicketID:   t.ID(),
			AssigneeID: cmd.AssigneeID,
			Status:     t.Status().String(),
			AssignedAt: t.AssignedAt(),
		}, nil
	}

	// Side effects run after the transaction has committed.
	if err := syncEquipmentStatus(ctx, uc.equipmentRepo, t.EquipmentID(), t.Status()); err != nil {
		logSyncFailure(uc.logger, t.EquipmentID(), err)
	}

	event := ticket.AssignedEvent{
		TicketID:   t.ID(),
		Title:      t.Title(),
		AssigneeID: cmd.AssigneeID,
		ActorID:    cmd.ActorID,
		Timestamp:  time.Now(),
	}
	if err := uc.notifier.TicketAssigned(ctx, event); err != nil {
		uc.logger.Warnw("failed to dispatch assignment notification",
			"ticket_id", t.ID(),
			"error", err)
	}

	uc.logger.Infow("ticket assigned successfully",
		"ticket_id", t.ID(),
		"assignee_id", cmd.AssigneeID)

	return &AssignTicketResult{
		TicketID:   t.ID(),
		AssigneeID: cmd.AssigneeID,
		Status:     t.Status().String(),
		AssignedAt: t.AssignedAt(),
	}, nil
}

func (uc *AssignTicketUseCase) validateCommand(cmd AssignTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.AssigneeID == 0 {
		return errors.NewValidationError("assignee ID is required")
	}
	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}
	return nil
}
