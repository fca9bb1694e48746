package usecases

import (
	"context"

	"gmao/internal/application/panne/dto"
	"gmao/internal/domain/equipment"
	vo "gmao/internal/domain/equipment/valueobjects"
	"gmao/internal/domain/panne"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type ResolvePanneCommand struct {
	PanneID uint
	ActorID uint
}

type ResolvePanneResult struct {
	Panne *dto.PanneDTO
}

type ResolvePanneUseCase struct {
	panneRepo     panne.Repository
	equipmentRepo equipment.Repository
	notifier      Notifier
	logger        logger.Interface
}

func NewResolvePanneUseCase(
	panneRepo panne.Repository,
	equipmentRepo equipment.Repository,
	notifier Notifier,
	logger logger.Interface,
) *ResolvePanneUseCase {
	return &ResolvePanneUseCase{
		panneRepo:     panneRepo,
		equipmentRepo: equipmentRepo,
		notifier:      notifier,
		logger:        logger,
	}
}

func (uc *ResolvePanneUseCase) Execute(ctx context.Context, cmd ResolvePanneCommand) (*ResolvePanneResult, error) {
	if cmd.PanneID == 0 {
		return nil, errors.NewValidationError("panne ID is required")
	}
	if cmd.ActorID == 0 {
		return nil, errors.NewValidationError("actor ID is required")
	}

	p, err := uc.panneRepo.GetByID(ctx, cmd.PanneID)
	if err != nil {
		return nil, errors.NewNotFoundError("panne not found")
	}

	alreadyResolved := p.IsResolved()

	if err := p.Resolve(cmd.ActorID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if alreadyResolved {
		return &ResolvePanneResult{Panne: dto.FromEntity(p)}, nil
	}

	if err := uc.panneRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update panne", "panne_id", cmd.PanneID, "error", err)
		return nil, errors.NewInternalError("failed to resolve panne")
	}

	if err := uc.equipmentRepo.UpdateStatus(ctx, p.EquipmentID(), vo.StatusActif); err != nil {
		uc.logger.Warnw("failed to sync equipment status",
			"equipment_id", p.EquipmentID(),
			"error", err)
	}

	if err := uc.notifier.PanneResolved(ctx, p.ID(), p.ReporterID(), cmd.ActorID); err != nil {
		uc.logger.Warnw("failed to dispatch panne resolution notification",
			"panne_id", p.ID(),
			"error", err)
	}

	uc.logger.Infow("panne resolved", "panne_id", p.ID(), "actor_id", cmd.ActorID)

	return &ResolvePanneResult{Panne: dto.FromEntity(p)}, nil
}

type ListPannesQuery struct {
	Page     int
	PageSize int
}

type ListPannesResult struct {
	Pannes []*dto.PanneDTO
	Total  int64
}

type ListPannesUseCase struct {
	panneRepo panne.Repository
	logger    logger.Interface
}

func NewListPannesUseCase(panneRepo panne.Repository, logger logger.Interface) *ListPannesUseCase {
	return &ListPannesUseCase{
		panneRepo: panneRepo,
		logger:    logger,
	}
}

func (uc *ListPannesUseCase) Execute(ctx context.Context, query ListPannesQuery) (*ListPannesResult, error) {
	offset := (query.Page - 1) * query.PageSize

	pannes, total, err := uc.panneRepo.List(ctx, query.PageSize, offset)
	if err != nil {
		uc.logger.Errorw("failed to list pannes", "error", err)
		return nil, errors.NewInternalError("failed to list pannes")
	}

	return &ListPannesResult{
		Pannes: dto.FromEntities(pannes),
		Total:  total,
	}, nil
}
