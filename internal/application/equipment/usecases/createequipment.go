package usecases

import (
	"context"

	"gmao/internal/application/equipment/dto"
	"gmao/internal/domain/equipment"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type CreateEquipmentCommand struct {
	Serial   string
	Name     string
	Location string
	HolderID uint
}

type CreateEquipmentResult struct {
	Equipment *dto.EquipmentDTO
}

type CreateEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	logger        logger.Interface
}

func NewCreateEquipmentUseCase(equipmentRepo equipment.Repository, logger logger.Interface) *CreateEquipmentUseCase {
	return &CreateEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *CreateEquipmentUseCase) Execute(ctx context.Context, cmd CreateEquipmentCommand) (*CreateEquipmentResult, error) {
	uc.logger.Infow("executing create equipment use case", "serial", cmd.Serial)

	e, err := equipment.NewEquipment(cmd.Serial, cmd.Name, cmd.Location)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.HolderID != 0 {
		e.AssignHolder(cmd.HolderID)
	}

	if err := uc.equipmentRepo.Save(ctx, e); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("equipment with this serial number already exists")
		}
		uc.logger.Errorw("failed to save equipment", "error", err)
		return nil, errors.NewInternalError("failed to create equipment")
	}

	uc.logger.Infow("equipment created successfully", "equipment_id", e.ID(), "serial", e.Serial())

	return &CreateEquipmentResult{Equipment: dto.FromEntity(e)}, nil
}
