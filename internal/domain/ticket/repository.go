package ticket

import (
	"context"

	vo "gmao/internal/domain/ticket/valueobjects"
)

// Filter narrows ticket listings. Zero values mean "no constraint".
type Filter struct {
	Status     vo.TicketStatus
	Priority   vo.Priority
	CreatorID  uint
	AssigneeID uint
	CategoryID uint
	Limit      int
	Offset     int
}

// Repository persists tickets.
//
// Save enforces the single-open-ticket invariant atomically: the check for an
// existing open ticket against the same equipment and the insert run in one
// transaction, with the equipment row locked to serialize concurrent
// creations. It returns a conflict error when the invariant would be broken.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	HasOpenTicketForEquipment(ctx context.Context, equipmentID uint) (bool, error)
}
