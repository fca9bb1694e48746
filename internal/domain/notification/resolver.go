package notification

import (
	"gmao/internal/domain/ticket"
)

// Recipient resolution is pure: given an event it returns the user IDs that
// must be notified. The one hard rule is that the actor who caused the event
// is never a recipient of it; comparison is always by stable user ID.

// ResolveStatusChanged notifies the ticket creator, unless the creator is the
// actor. Returns exactly one recipient or none.
func ResolveStatusChanged(e ticket.StatusChangedEvent) []uint {
	return exclude(e.ActorID, []uint{e.CreatorID})
}

// ResolveAssigned notifies the newly assigned technician. A technician who
// self-assigns is not notified.
func ResolveAssigned(e ticket.AssignedEvent) []uint {
	return exclude(e.ActorID, []uint{e.AssigneeID})
}

// ResolveCommented notifies the ticket creator, unless the creator wrote the
// comment.
func ResolveCommented(e ticket.CommentedEvent) []uint {
	return exclude(e.ActorID, []uint{e.CreatorID})
}

// ResolveFanOut applies the actor-exclusion rule to an arbitrary candidate
// set (failure reports to all technicians, planned interventions, and other
// extension events).
func ResolveFanOut(actorID uint, candidates []uint) []uint {
	return exclude(actorID, candidates)
}

func exclude(actorID uint, candidates []uint) []uint {
	recipients := make([]uint, 0, len(candidates))
	seen := make(map[uint]bool, len(candidates))
	for _, id := range candidates {
		if id == 0 || id == actorID || seen[id] {
			continue
		}
		seen[id] = true
		recipients = append(recipients, id)
	}
	return recipients
}
