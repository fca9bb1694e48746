package ticket

import (
	"fmt"
	"time"

	vo "gmao/internal/domain/ticket/valueobjects"
)

const (
	maxTitleLength   = 255
	maxCommentLength = 500
)

// Ticket is the central work item: an issue reported against one piece of
// equipment, owned by its creator, optionally worked by a technician.
// Creator and equipment are immutable after creation.
type Ticket struct {
	id          uint
	title       string
	description string
	priority    vo.Priority
	status      vo.TicketStatus
	categoryID  uint
	equipmentID uint
	creatorID   uint
	assigneeID  *uint
	comment     string
	assignedAt  *time.Time
	resolvedAt  *time.Time
	closedAt    *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	categoryID uint,
	equipmentID uint,
	creatorID uint,
	comment string,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if equipmentID == 0 {
		return nil, fmt.Errorf("equipment ID is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if len(comment) > maxCommentLength {
		return nil, fmt.Errorf("comment exceeds maximum length of %d characters", maxCommentLength)
	}

	now := time.Now()

	return &Ticket{
		title:       title,
		description: description,
		priority:    priority,
		status:      vo.StatusEnAttente,
		categoryID:  categoryID,
		equipmentID: equipmentID,
		creatorID:   creatorID,
		comment:     comment,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	priority vo.Priority,
	status vo.TicketStatus,
	categoryID uint,
	equipmentID uint,
	creatorID uint,
	assigneeID *uint,
	comment string,
	assignedAt, resolvedAt, closedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if equipmentID == 0 {
		return nil, fmt.Errorf("equipment ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		priority:    priority,
		status:      status,
		categoryID:  categoryID,
		equipmentID: equipmentID,
		creatorID:   creatorID,
		assigneeID:  assigneeID,
		comment:     comment,
		assignedAt:  assignedAt,
		resolvedAt:  resolvedAt,
		closedAt:    closedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CategoryID() uint {
	return t.categoryID
}

func (t *Ticket) EquipmentID() uint {
	return t.equipmentID
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) Comment() string {
	return t.comment
}

func (t *Ticket) AssignedAt() *time.Time {
	return t.assignedAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// IsAssignedTo compares by stable identity, never by reference.
func (t *Ticket) IsAssignedTo(userID uint) bool {
	return t.assigneeID != nil && *t.assigneeID == userID
}

// AssignTo hands the ticket to a technician. Re-assigning the technician who
// already holds the ticket is a no-op. A fresh assignment refreshes the
// assignment timestamp and moves a not-yet-started ticket to en_cours.
func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	if t.IsAssignedTo(assigneeID) {
		return nil
	}

	now := time.Now()
	t.assigneeID = &assigneeID
	t.assignedAt = &now
	t.updatedAt = now

	if t.status.IsOuvert() || t.status.IsEnAttente() {
		t.status = vo.StatusEnCours
	}

	return nil
}

// ChangeStatus moves the ticket through the lifecycle state machine and sets
// the lifecycle timestamps as side effects.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	now := time.Now()
	t.status = newStatus
	t.updatedAt = now

	if newStatus.IsEnCours() && t.assignedAt == nil {
		t.assignedAt = &now
	}

	if newStatus.IsResolu() && t.resolvedAt == nil {
		t.resolvedAt = &now
	}

	if newStatus.IsFerme() && t.closedAt == nil {
		t.closedAt = &now
	}

	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return nil
	}

	t.priority = newPriority
	t.updatedAt = time.Now()

	return nil
}

func (t *Ticket) SetComment(comment string) error {
	if len(comment) > maxCommentLength {
		return fmt.Errorf("comment exceeds maximum length of %d characters", maxCommentLength)
	}

	t.comment = comment
	t.updatedAt = time.Now()

	return nil
}

func (t *Ticket) CanBeViewedBy(userID uint, isAdmin, isTechnician bool) bool {
	if isAdmin || isTechnician {
		return true
	}

	if t.creatorID == userID {
		return true
	}

	return t.IsAssignedTo(userID)
}

func (t *Ticket) Validate() error {
	if len(t.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(t.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status")
	}
	if t.creatorID == 0 {
		return fmt.Errorf("creator ID is required")
	}
	if t.equipmentID == 0 {
		return fmt.Errorf("equipment ID is required")
	}
	return nil
}
