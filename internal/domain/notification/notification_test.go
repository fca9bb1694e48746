package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "gmao/internal/domain/notification/valueobjects"
	"gmao/internal/domain/ticket"
)

func TestNewNotification(t *testing.T) {
	n, err := NewNotification(3, vo.TypeTicketAssigne, "Ticket assigned", "Ticket #1 was assigned to you", map[string]any{"ticket_id": uint(1)})
	require.NoError(t, err)

	assert.Equal(t, uint(3), n.UserID())
	assert.Equal(t, vo.TypeTicketAssigne, n.Type())
	assert.Equal(t, "normal", n.Priority())
	assert.True(t, n.ReadStatus().IsUnread())
	assert.Nil(t, n.ReadAt())
}

func TestNewNotification_ValidationErrors(t *testing.T) {
	_, err := NewNotification(0, vo.TypeSysteme, "title", "message", nil)
	assert.Error(t, err)

	_, err = NewNotification(3, vo.NotificationType("unknown"), "title", "message", nil)
	assert.Error(t, err)

	_, err = NewNotification(3, vo.TypeSysteme, "", "message", nil)
	assert.Error(t, err)

	_, err = NewNotification(3, vo.TypeSysteme, "title", "", nil)
	assert.Error(t, err)
}

func TestNotification_MarkAsRead_Idempotent(t *testing.T) {
	n, err := NewNotification(3, vo.TypeSysteme, "title", "message", nil)
	require.NoError(t, err)

	n.MarkAsRead()
	require.True(t, n.ReadStatus().IsRead())
	require.NotNil(t, n.ReadAt())
	firstReadAt := *n.ReadAt()

	time.Sleep(time.Millisecond)
	n.MarkAsRead()

	assert.Equal(t, firstReadAt, *n.ReadAt(), "first read timestamp is stable")
}

func TestNotification_IsOwnedBy(t *testing.T) {
	n, err := NewNotification(3, vo.TypeSysteme, "title", "message", nil)
	require.NoError(t, err)

	assert.True(t, n.IsOwnedBy(3))
	assert.False(t, n.IsOwnedBy(4))
	assert.False(t, n.IsOwnedBy(0))
}

func TestNotification_PayloadIsCopied(t *testing.T) {
	n, err := NewNotification(3, vo.TypeSysteme, "title", "message", map[string]any{"k": "v"})
	require.NoError(t, err)

	payload := n.Payload()
	payload["k"] = "mutated"

	assert.Equal(t, "v", n.Payload()["k"])
}

func TestResolveStatusChanged(t *testing.T) {
	tests := []struct {
		name      string
		creatorID uint
		actorID   uint
		want      []uint
	}{
		{"technician changes status, creator notified", 5, 7, []uint{5}},
		{"creator changes own ticket, nobody notified", 5, 5, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveStatusChanged(ticket.StatusChangedEvent{
				TicketID:  1,
				CreatorID: tt.creatorID,
				ActorID:   tt.actorID,
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveAssigned(t *testing.T) {
	got := ResolveAssigned(ticket.AssignedEvent{TicketID: 1, AssigneeID: 7, ActorID: 2})
	assert.Equal(t, []uint{7}, got)

	got = ResolveAssigned(ticket.AssignedEvent{TicketID: 1, AssigneeID: 7, ActorID: 7})
	assert.Empty(t, got, "self-assignment produces no notification")
}

func TestResolveCommented(t *testing.T) {
	got := ResolveCommented(ticket.CommentedEvent{TicketID: 1, CreatorID: 5, ActorID: 9})
	assert.Equal(t, []uint{5}, got)

	got = ResolveCommented(ticket.CommentedEvent{TicketID: 1, CreatorID: 5, ActorID: 5})
	assert.Empty(t, got)
}

func TestResolveFanOut(t *testing.T) {
	tests := []struct {
		name       string
		actorID    uint
		candidates []uint
		want       []uint
	}{
		{"actor excluded", 2, []uint{1, 2, 3}, []uint{1, 3}},
		{"duplicates collapsed", 9, []uint{1, 1, 3, 3}, []uint{1, 3}},
		{"zero IDs dropped", 9, []uint{0, 1}, []uint{1}},
		{"empty candidates", 9, nil, []uint{}},
		{"actor is sole candidate", 4, []uint{4}, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveFanOut(tt.actorID, tt.candidates))
		})
	}
}
