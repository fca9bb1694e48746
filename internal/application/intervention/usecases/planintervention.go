package usecases

import (
	"context"
	"time"

	"gmao/internal/application/intervention/dto"
	"gmao/internal/domain/equipment"
	"gmao/internal/domain/intervention"
	"gmao/internal/domain/user"
	"gmao/internal/shared/biztime"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

// Notifier is the dispatch seam for planned interventions.
type Notifier interface {
	InterventionPlanned(ctx context.Context, interventionID, technicianID, actorID uint) error
}

type PlanInterventionCommand struct {
	EquipmentID  uint
	TechnicianID uint
	PlannerID    uint
	Description  string
	PlannedFor   time.Time
}

type PlanInterventionResult struct {
	Intervention *dto.InterventionDTO
}

type PlanInterventionExecutor interface {
	Execute(ctx context.Context, cmd PlanInterventionCommand) (*PlanInterventionResult, error)
}

type ListInterventionsExecutor interface {
	Execute(ctx context.Context, query ListInterventionsQuery) (*ListInterventionsResult, error)
}

type PlanInterventionUseCase struct {
	interventionRepo intervention.Repository
	equipmentRepo    equipment.Repository
	userRepo         user.Repository
	notifier         Notifier
	logger           logger.Interface
}

func NewPlanInterventionUseCase(
	interventionRepo intervention.Repository,
	equipmentRepo equipment.Repository,
	userRepo user.Repository,
	notifier Notifier,
	logger logger.Interface,
) *PlanInterventionUseCase {
	return &PlanInterventionUseCase{
		interventionRepo: interventionRepo,
		equipmentRepo:    equipmentRepo,
		userRepo:         userRepo,
		notifier:         notifier,
		logger:           logger,
	}
}

func (uc *PlanInterventionUseCase) Execute(ctx context.Context, cmd PlanInterventionCommand) (*PlanInterventionResult, error) {
	uc.logger.Infow("executing plan intervention use case",
		"equipment_id", cmd.EquipmentID,
		"technician_id", cmd.TechnicianID)

	// Interventions can be planned for today but not for past days,
	// day boundaries taken in the business timezone.
	if cmd.PlannedFor.Before(biztime.StartOfDayUTC(biztime.NowUTC())) {
		return nil, errors.NewValidationError("intervention cannot be planned in the past")
	}

	if _, err := uc.equipmentRepo.GetByID(ctx, cmd.EquipmentID); err != nil {
		return nil, errors.NewValidationError("equipment does not exist")
	}

	technician, err := uc.userRepo.GetByID(ctx, cmd.TechnicianID)
	if err != nil {
		return nil, errors.NewValidationError("technician does not exist")
	}
	if !technician.Role().IsTechnicien() && !technician.Role().IsAdmin() {
		return nil, errors.NewValidationError("assigned user is not a technician")
	}
	if !technician.CanPerformActions() {
		return nil, errors.NewValidationError("technician is not active")
	}

	i, err := intervention.NewIntervention(cmd.EquipmentID, cmd.TechnicianID, cmd.PlannerID, cmd.Description, cmd.PlannedFor)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.interventionRepo.Save(ctx, i); err != nil {
		uc.logger.Errorw("failed to save intervention", "error", err)
		return nil, errors.NewInternalError("failed to plan intervention")
	}

	if err := uc.notifier.InterventionPlanned(ctx, i.ID(), cmd.TechnicianID, cmd.PlannerID); err != nil {
		uc.logger.Warnw("failed to dispatch intervention notification",
			"intervention_id", i.ID(),
			"error", err)
	}

	uc.logger.Infow("intervention planned", "intervention_id", i.ID())

	return &PlanInterventionResult{Intervention: dto.FromEntity(i)}, nil
}

type ListInterventionsQuery struct {
	Page     int
	PageSize int
}

type ListInterventionsResult struct {
	Interventions []*dto.InterventionDTO
	Total         int64
}

type ListInterventionsUseCase struct {
	interventionRepo intervention.Repository
	logger           logger.Interface
}

func NewListInterventionsUseCase(interventionRepo intervention.Repository, logger logger.Interface) *ListInterventionsUseCase {
	return &ListInterventionsUseCase{
		interventionRepo: interventionRepo,
		logger:           logger,
	}
}

func (uc *ListInterventionsUseCase) Execute(ctx context.Context, query ListInterventionsQuery) (*ListInterventionsResult, error) {
	offset := (query.Page - 1) * query.PageSize

	interventions, total, err := uc.interventionRepo.List(ctx, query.PageSize, offset)
	if err != nil {
		uc.logger.Errorw("failed to list interventions", "error", err)
		return nil, errors.NewInternalError("failed to list interventions")
	}

	return &ListInterventionsResult{
		Interventions: dto.FromEntities(interventions),
		Total:         total,
	}, nil
}
