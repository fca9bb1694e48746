package usecases

import (
	"context"

	"gmao/internal/application/panne/dto"
	"gmao/internal/domain/equipment"
	vo "gmao/internal/domain/equipment/valueobjects"
	"gmao/internal/domain/panne"
	"gmao/internal/domain/user"
	uservo "gmao/internal/domain/user/valueobjects"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type ReportPanneCommand struct {
	EquipmentID uint
	ReporterID  uint
	Description string
}

type ReportPanneResult struct {
	Panne *dto.PanneDTO
}

type ReportPanneUseCase struct {
	panneRepo     panne.Repository
	equipmentRepo equipment.Repository
	userRepo      user.Repository
	notifier      Notifier
	logger        logger.Interface
}

func NewReportPanneUseCase(
	panneRepo panne.Repository,
	equipmentRepo equipment.Repository,
	userRepo user.Repository,
	notifier Notifier,
	logger logger.Interface,
) *ReportPanneUseCase {
	return &ReportPanneUseCase{
		panneRepo:     panneRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		logger:        logger,
	}
}

func (uc *ReportPanneUseCase) Execute(ctx context.Context, cmd ReportPanneCommand) (*ReportPanneResult, error) {
	uc.logger.Infow("executing report panne use case",
		"equipment_id", cmd.EquipmentID,
		"reporter_id", cmd.ReporterID)

	if _, err := uc.equipmentRepo.GetByID(ctx, cmd.EquipmentID); err != nil {
		return nil, errors.NewValidationError("equipment does not exist")
	}

	p, err := panne.NewPanne(cmd.EquipmentID, cmd.ReporterID, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.panneRepo.Save(ctx, p); err != nil {
		uc.logger.Errorw("failed to save panne", "error", err)
		return nil, errors.NewInternalError("failed to report panne")
	}

	// Best-effort side effects once the report is durable.
	if err := uc.equipmentRepo.UpdateStatus(ctx, cmd.EquipmentID, vo.StatusHorsService); err != nil {
		uc.logger.Warnw("failed to sync equipment status",
			"equipment_id", cmd.EquipmentID,
			"error", err)
	}

	technicians, err := uc.userRepo.ListActiveByRole(ctx, uservo.RoleTechnicien)
	if err != nil {
		uc.logger.Warnw("failed to list technicians for notification", "error", err)
	} else {
		ids := make([]uint, 0, len(technicians))
		for _, t := range technicians {
			ids = append(ids, t.ID())
		}
		if err := uc.notifier.PanneReported(ctx, p.ID(), cmd.EquipmentID, cmd.ReporterID, ids); err != nil {
			uc.logger.Warnw("failed to dispatch panne notification",
				"panne_id", p.ID(),
				"error", err)
		}
	}

	uc.logger.Infow("panne reported successfully", "panne_id", p.ID())

	return &ReportPanneResult{Panne: dto.FromEntity(p)}, nil
}
