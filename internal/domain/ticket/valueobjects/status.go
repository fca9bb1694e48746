package valueobjects

import "fmt"

// TicketStatus uses the French wire vocabulary of the public API.
type TicketStatus string

const (
	StatusOuvert    TicketStatus = "ouvert"
	StatusEnAttente TicketStatus = "en_attente"
	StatusEnCours   TicketStatus = "en_cours"
	StatusResolu    TicketStatus = "resolu"
	StatusFerme     TicketStatus = "ferme"
	StatusAnnule    TicketStatus = "annule"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOuvert:    true,
	StatusEnAttente: true,
	StatusEnCours:   true,
	StatusResolu:    true,
	StatusFerme:     true,
	StatusAnnule:    true,
}

// annule is a dead end: reachable from anywhere, leaves nowhere.
var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOuvert: {
		StatusEnAttente,
		StatusEnCours,
		StatusResolu,
		StatusFerme,
		StatusAnnule,
	},
	StatusEnAttente: {
		StatusOuvert,
		StatusEnCours,
		StatusResolu,
		StatusFerme,
		StatusAnnule,
	},
	StatusEnCours: {
		StatusResolu,
		StatusFerme,
		StatusAnnule,
	},
	StatusResolu: {
		StatusFerme,
		StatusAnnule,
	},
	StatusFerme: {
		StatusAnnule,
	},
	StatusAnnule: {},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// IsOpenLike reports whether the status counts as "not yet finished" for the
// single-open-ticket check and for equipment status derivation. resolu is
// deliberately excluded: a resolved-but-unconfirmed ticket does not block a
// fresh report against the same equipment.
func (ts TicketStatus) IsOpenLike() bool {
	return ts == StatusOuvert || ts == StatusEnAttente || ts == StatusEnCours
}

// IsFinal reports whether no further normal lifecycle work is expected.
func (ts TicketStatus) IsFinal() bool {
	return ts == StatusResolu || ts == StatusFerme || ts == StatusAnnule
}

func (ts TicketStatus) IsOuvert() bool {
	return ts == StatusOuvert
}

func (ts TicketStatus) IsEnAttente() bool {
	return ts == StatusEnAttente
}

func (ts TicketStatus) IsEnCours() bool {
	return ts == StatusEnCours
}

func (ts TicketStatus) IsResolu() bool {
	return ts == StatusResolu
}

func (ts TicketStatus) IsFerme() bool {
	return ts == StatusFerme
}

func (ts TicketStatus) IsAnnule() bool {
	return ts == StatusAnnule
}

// OpenStatuses returns the statuses that block a second ticket against the
// same equipment.
func OpenStatuses() []TicketStatus {
	return []TicketStatus{StatusOuvert, StatusEnAttente, StatusEnCours}
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
