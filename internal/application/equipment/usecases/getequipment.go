package usecases

import (
	"context"

	"gmao/internal/application/equipment/dto"
	"gmao/internal/domain/equipment"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

// GetEquipmentQuery fetches by serial when set, otherwise by numeric ID.
type GetEquipmentQuery struct {
	EquipmentID uint
	Serial      string
}

type GetEquipmentResult struct {
	Equipment *dto.EquipmentDTO
}

type GetEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	logger        logger.Interface
}

func NewGetEquipmentUseCase(equipmentRepo equipment.Repository, logger logger.Interface) *GetEquipmentUseCase {
	return &GetEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *GetEquipmentUseCase) Execute(ctx context.Context, query GetEquipmentQuery) (*GetEquipmentResult, error) {
	var (
		e   *equipment.Equipment
		err error
	)

	switch {
	case query.Serial != "":
		e, err = uc.equipmentRepo.GetBySerial(ctx, query.Serial)
	case query.EquipmentID != 0:
		e, err = uc.equipmentRepo.GetByID(ctx, query.EquipmentID)
	default:
		return nil, errors.NewValidationError("equipment ID or serial is required")
	}

	if err != nil {
		return nil, errors.NewNotFoundError("equipment not found")
	}

	return &GetEquipmentResult{Equipment: dto.FromEntity(e)}, nil
}

type ListEquipmentQuery struct {
	Page     int
	PageSize int
}

type ListEquipmentResult struct {
	Equipments []*dto.EquipmentDTO
	Total      int64
}

type ListEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	logger        logger.Interface
}

func NewListEquipmentUseCase(equipmentRepo equipment.Repository, logger logger.Interface) *ListEquipmentUseCase {
	return &ListEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (uc *ListEquipmentUseCase) Execute(ctx context.Context, query ListEquipmentQuery) (*ListEquipmentResult, error) {
	offset := (query.Page - 1) * query.PageSize

	equipments, total, err := uc.equipmentRepo.List(ctx, query.PageSize, offset)
	if err != nil {
		uc.logger.Errorw("failed to list equipment", "error", err)
		return nil, errors.NewInternalError("failed to list equipment")
	}

	return &ListEquipmentResult{
		Equipments: dto.FromEntities(equipments),
		Total:      total,
	}, nil
}
