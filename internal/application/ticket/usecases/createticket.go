package usecases

import (
	"context"
	"time"

	"gmao/internal/domain/category"
	"gmao/internal/domain/equipment"
	"gmao/internal/domain/ticket"
	vo "gmao/internal/domain/ticket/valueobjects"
	"gmao/internal/domain/user"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Priority    string
	CategoryID  uint
	EquipmentID uint
	CreatorID   uint
	Comment     string
}

type CreateTicketResult struct {
	TicketID  uint      `json:"ticket_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateTicketUseCase struct {
	ticketRepo    ticket.Repository
	equipmentRepo equipment.Repository
	categoryRepo  category.Repository
	userRepo      user.Repository
	logger        logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	equipmentRepo equipment.Repository,
	categoryRepo category.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:    ticketRepo,
		equipmentRepo: equipmentRepo,
		categoryRepo:  categoryRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case",
		"title", cmd.Title,
		"equipment_id", cmd.EquipmentID,
		"creator_id", cmd.CreatorID)

	if err := uc.validateCommand(ctx, cmd); err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		vo.Priority(cmd.Priority),
		cmd.CategoryID,
		cmd.EquipmentID,
		cmd.CreatorID,
		cmd.Comment,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Save enforces the single-open-ticket invariant atomically and returns
	// a conflict error when another open ticket exists for the equipment.
	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	// Equipment goes to maintenance as a derived projection; a failure here
	// must not roll back the created ticket.
	if err := syncEquipmentStatus(ctx, uc.equipmentRepo, cmd.EquipmentID, newTicket.Status()); err != nil {
		logSyncFailure(uc.logger, cmd.EquipmentID, err)
	}

	uc.logger.Infow("ticket created successfully",
		"ticket_id", newTicket.ID(),
		"equipment_id", cmd.EquipmentID)

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(ctx context.Context, cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > 255 {
		return errors.NewValidationError("title exceeds maximum length of 255 characters")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if len(cmd.Comment) > 500 {
		return errors.NewValidationError("comment exceeds maximum length of 500 characters")
	}
	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	if cmd.CategoryID == 0 {
		return errors.NewValidationError("category ID is required")
	}
	if cmd.EquipmentID == 0 {
		return errors.NewValidationError("equipment ID is required")
	}
	if cmd.CreatorID == 0 {
		return errors.NewValidationError("creator ID is required")
	}

	if _, err := uc.categoryRepo.GetByID(ctx, cmd.CategoryID); err != nil {
		return errors.NewValidationError("category does not exist")
	}
	if _, err := uc.equipmentRepo.GetByID(ctx, cmd.EquipmentID); err != nil {
		return errors.NewValidationError("equipment does not exist")
	}
	if _, err := uc.userRepo.GetByID(ctx, cmd.CreatorID); err != nil {
		return errors.NewValidationError("creator does not exist")
	}

	return nil
}
