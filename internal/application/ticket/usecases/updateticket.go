package usecases

import (
	"context"
	"time"

	"gmao/internal/application/ticket/dto"
	"gmao/internal/domain/equipment"
	"gmao/internal/domain/ticket"
	vo "gmao/internal/domain/ticket/valueobjects"
	"gmao/internal/domain/user"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

// UpdateTicketCommand bundles the mutable ticket fields; nil fields are left
// untouched.
type UpdateTicketCommand struct {
	TicketID   uint
	ActorID    uint
	Status     *string
	Priority   *string
	Comment    *string
	AssigneeID *uint
}

type UpdateTicketUseCase struct {
	ticketRepo    ticket.Repository
	userRepo      user.Repository
	equipmentRepo equipment.Repository
	notifier      Notifier
	txManager     TransactionManager
	logger        logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	equipmentRepo equipment.Repository,
	notifier Notifier,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:    ticketRepo,
		userRepo:      userRepo,
		equipmentRepo: equipmentRepo,
		notifier:      notifier,
		txManager:     txManager,
		logger:        logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case",
		"ticket_id", cmd.TicketID,
		"actor_id", cmd.ActorID)

	if err := uc.validateCommand(ctx, cmd); err != nil {
		uc.logger.Warnw("invalid update ticket command", "error", err)
		return nil, err
	}

	var t *ticket.Ticket
	var oldStatus vo.TicketStatus
	commentAdded := false

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError("ticket not found")
		}

		oldStatus = t.Status()

		if cmd.Priority != nil {
			if err := t.ChangePriority(vo.Priority(*cmd.Priority)); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		if cmd.AssigneeID != nil {
			if err := t.AssignTo(*cmd.AssigneeID); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		if cmd.Status != nil {
			if err := t.ChangeStatus(vo.TicketStatus(*cmd.Status)); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}

		if cmd.Comment != nil && len(*cmd.Comment) > 0 {
			if err := t.SetComment(*cmd.Comment); err != nil {
				return errors.NewValidationError(err.Error())
			}
			commentAdded = true
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "error", err)
			return errors.NewInternalError("failed to update ticket")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	statusChanged := t.Status() != oldStatus

	// Derived projections run strictly after the durable write. Each is
	// best-effort: failures are logged and never fail the update.
	if statusChanged {
		if err := syncEquipmentStatus(ctx, uc.equipmentRepo, t.EquipmentID(), t.Status()); err != nil {
			logSyncFailure(uc.logger, t.EquipmentID(), err)
		}

		event := ticket.StatusChangedEvent{
			TicketID:  t.ID(),
			Title:     t.Title(),
			OldStatus: oldStatus.String(),
			NewStatus: t.Status().String(),
			CreatorID: t.CreatorID(),
			ActorID:   cmd.ActorID,
			Timestamp: time.Now(),
		}
		if err := uc.notifier.TicketStatusChanged(ctx, event); err != nil {
			uc.logger.Warnw("failed to dispatch status change notification",
				"ticket_id", t.ID(),
				"error", err)
		}
	}

	if commentAdded {
		event := ticket.CommentedEvent{
			TicketID:  t.ID(),
			Title:     t.Title(),
			Comment:   t.Comment(),
			CreatorID: t.CreatorID(),
			ActorID:   cmd.ActorID,
			Timestamp: time.Now(),
		}
		if err := uc.notifier.TicketCommented(ctx, event); err != nil {
			uc.logger.Warnw("failed to dispatch comment notification",
				"ticket_id", t.ID(),
				"error", err)
		}
	}

	uc.logger.Infow("ticket updated successfully",
		"ticket_id", t.ID(),
		"status", t.Status().String())

	return dto.FromEntity(t), nil
}

func (uc *UpdateTicketUseCase) validateCommand(ctx context.Context, cmd UpdateTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.ActorID == 0 {
		return errors.NewValidationError("actor ID is required")
	}

	if cmd.Status != nil && !vo.TicketStatus(*cmd.Status).IsValid() {
		return errors.NewValidationError("invalid status")
	}
	if cmd.Priority != nil && !vo.Priority(*cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	if cmd.Comment != nil && len(*cmd.Comment) > 500 {
		return errors.NewValidationError("comment exceeds maximum length of 500 characters")
	}

	if cmd.AssigneeID != nil {
		assignee, err := uc.userRepo.GetByID(ctx, *cmd.AssigneeID)
		if err != nil {
			return errors.NewValidationError("assignee does not exist")
		}
		if !assignee.CanPerformActions() {
			return errors.NewValidationError("assignee is not active and cannot be assigned tickets")
		}
	}

	return nil
}
