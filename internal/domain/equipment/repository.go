package equipment

import (
	"context"

	vo "gmao/internal/domain/equipment/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, e *Equipment) error
	Update(ctx context.Context, e *Equipment) error
	GetByID(ctx context.Context, id uint) (*Equipment, error)
	GetBySerial(ctx context.Context, serial string) (*Equipment, error)
	List(ctx context.Context, limit, offset int) ([]*Equipment, int64, error)
	// UpdateStatus writes only the status column. It is the unit the ticket
	// lifecycle calls as a best-effort side effect.
	UpdateStatus(ctx context.Context, id uint, status vo.EquipmentStatus) error
}
