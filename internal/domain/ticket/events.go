package ticket

import (
	"time"
)

// Lifecycle events carried from the use cases to recipient resolution.
// ActorID is always the user who performed the action, threaded explicitly;
// there is no ambient "current user" anywhere below the HTTP layer.

type CreatedEvent struct {
	TicketID    uint
	Title       string
	Priority    string
	EquipmentID uint
	CreatorID   uint
	ActorID     uint
	Timestamp   time.Time
}

type AssignedEvent struct {
	TicketID   uint
	Title      string
	AssigneeID uint
	ActorID    uint
	Timestamp  time.Time
}

type StatusChangedEvent struct {
	TicketID  uint
	Title     string
	OldStatus string
	NewStatus string
	CreatorID uint
	ActorID   uint
	Timestamp time.Time
}

type CommentedEvent struct {
	TicketID  uint
	Title     string
	Comment   string
	CreatorID uint
	ActorID   uint
	Timestamp time.Time
}
