package usecases

import (
	"context"

	"gmao/internal/domain/equipment"
	evo "gmao/internal/domain/equipment/valueobjects"
	tvo "gmao/internal/domain/ticket/valueobjects"
	"gmao/internal/shared/logger"
)

// syncEquipmentStatus recomputes the equipment status as a function of the
// ticket status: an open-like ticket puts the equipment in maintenance, a
// final one releases it. The write is best-effort: the caller logs the
// returned error and never fails the ticket mutation over it.
func syncEquipmentStatus(
	ctx context.Context,
	repo equipment.Repository,
	equipmentID uint,
	status tvo.TicketStatus,
) error {
	target := evo.StatusActif
	if status.IsOpenLike() {
		target = evo.StatusEnMaintenance
	}

	return repo.UpdateStatus(ctx, equipmentID, target)
}

func logSyncFailure(log logger.Interface, equipmentID uint, err error) {
	if err != nil {
		log.Warnw("equipment status sync failed",
			"equipment_id", equipmentID,
			"error", err)
	}
}
