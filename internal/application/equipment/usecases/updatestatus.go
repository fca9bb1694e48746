package usecases

import (
	"context"

	"gmao/internal/application/equipment/dto"
	"gmao/internal/domain/equipment"
	vo "gmao/internal/domain/equipment/valueobjects"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type UpdateEquipmentStatusCommand struct {
	EquipmentID uint
	Status      string
}

type UpdateEquipmentStatusResult struct {
	Equipment *dto.EquipmentDTO
}

// UpdateEquipmentStatusUseCase is the manual override: an admin can force a
// status (e.g. hors_service) outside the ticket-driven sync.
type UpdateEquipmentStatusUseCase struct {
	equipmentRepo equipment.Repository
	logger        logger.Interface
}

func NewUpdateEquipmentStatusUseCase(equipmentRepo equipment.Repository, logger logger.Interface) *UpdateEquipmentStatusUseCase {
	return &UpdateEquipmentStatusUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *UpdateEquipmentStatusUseCase) Execute(ctx context.Context, cmd UpdateEquipmentStatusCommand) (*UpdateEquipmentStatusResult, error) {
	if cmd.EquipmentID == 0 {
		return nil, errors.NewValidationError("equipment ID is required")
	}

	status, err := vo.NewEquipmentStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	e, err := uc.equipmentRepo.GetByID(ctx, cmd.EquipmentID)
	if err != nil {
		return nil, errors.NewNotFoundError("equipment not found")
	}

	if err := e.ChangeStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.equipmentRepo.Update(ctx, e); err != nil {
		uc.logger.Errorw("failed to update equipment status",
			"equipment_id", cmd.EquipmentID,
			"error", err)
		return nil, errors.NewInternalError("failed to update equipment status")
	}

	uc.logger.Infow("equipment status updated",
		"equipment_id", e.ID(),
		"status", e.Status().String())

	return &UpdateEquipmentStatusResult{Equipment: dto.FromEntity(e)}, nil
}
