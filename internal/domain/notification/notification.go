package notification

import (
	"fmt"
	"time"

	vo "gmao/internal/domain/notification/valueobjects"
)

// Notification is a per-user inbox entry created as a side effect of a
// lifecycle event. Once created it belongs exclusively to its target user.
type Notification struct {
	id        uint
	userID    uint
	typ       vo.NotificationType
	title     string
	message   string
	payload   map[string]any
	priority  string
	status    vo.ReadStatus
	readAt    *time.Time
	createdAt time.Time
}

func NewNotification(
	userID uint,
	typ vo.NotificationType,
	title string,
	message string,
	payload map[string]any,
) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !typ.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}

	return &Notification{
		userID:    userID,
		typ:       typ,
		title:     title,
		message:   message,
		payload:   payload,
		priority:  "normal",
		status:    vo.ReadStatusUnread,
		createdAt: time.Now(),
	}, nil
}

func ReconstructNotification(
	id uint,
	userID uint,
	typ vo.NotificationType,
	title string,
	message string,
	payload map[string]any,
	priority string,
	status vo.ReadStatus,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !typ.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid read status")
	}

	return &Notification{
		id:        id,
		userID:    userID,
		typ:       typ,
		title:     title,
		message:   message,
		payload:   payload,
		priority:  priority,
		status:    status,
		readAt:    readAt,
		createdAt: createdAt,
	}, nil
}

func (n *Notification) ID() uint {
	return n.id
}

func (n *Notification) UserID() uint {
	return n.userID
}

func (n *Notification) Type() vo.NotificationType {
	return n.typ
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Payload() map[string]any {
	if n.payload == nil {
		return nil
	}
	payloadCopy := make(map[string]any, len(n.payload))
	for k, v := range n.payload {
		payloadCopy[k] = v
	}
	return payloadCopy
}

func (n *Notification) Priority() string {
	return n.priority
}

func (n *Notification) ReadStatus() vo.ReadStatus {
	return n.status
}

func (n *Notification) ReadAt() *time.Time {
	return n.readAt
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Notification) SetPriority(priority string) {
	n.priority = priority
}

// IsOwnedBy compares by stable identity.
func (n *Notification) IsOwnedBy(userID uint) bool {
	return n.userID == userID
}

// MarkAsRead is idempotent: the read timestamp is set by the first call and
// stable thereafter.
func (n *Notification) MarkAsRead() {
	if n.status.IsRead() {
		return
	}

	now := time.Now()
	n.status = vo.ReadStatusRead
	n.readAt = &now
}
