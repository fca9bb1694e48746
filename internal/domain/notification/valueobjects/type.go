package valueobjects

import "fmt"

// NotificationType enumerates the event kinds that fan out to user inboxes.
// The French strings are the stored and wire representation.
type NotificationType string

const (
	TypeNouveauTicket         NotificationType = "nouveau_ticket"
	TypeTicketAssigne         NotificationType = "ticket_assigne"
	TypeTicketMisAJour        NotificationType = "ticket_mis_a_jour"
	TypeTicketFerme           NotificationType = "ticket_ferme"
	TypeCommentaireAjoute     NotificationType = "commentaire_ajoute"
	TypePanneSignalee         NotificationType = "panne_signalee"
	TypePanneResolue          NotificationType = "panne_resolue"
	TypeInterventionPlanifiee NotificationType = "intervention_planifiee"
	TypeSysteme               NotificationType = "systeme"
)

var validNotificationTypes = map[NotificationType]bool{
	TypeNouveauTicket:         true,
	TypeTicketAssigne:         true,
	TypeTicketMisAJour:        true,
	TypeTicketFerme:           true,
	TypeCommentaireAjoute:     true,
	TypePanneSignalee:         true,
	TypePanneResolue:          true,
	TypeInterventionPlanifiee: true,
	TypeSysteme:               true,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

func NewNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}
