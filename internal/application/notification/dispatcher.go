// Package notification carries the fan-out side of the ticket lifecycle:
// recipient resolution feeds the dispatcher, which persists one inbox row per
// recipient. Dispatch is synchronous and runs strictly after the primary
// mutation is durable; a dispatch failure is reported to the caller, who logs
// it and moves on.
package notification

import (
	"context"
	"fmt"

	"gmao/internal/domain/notification"
	vo "gmao/internal/domain/notification/valueobjects"
	"gmao/internal/domain/ticket"
	tvo "gmao/internal/domain/ticket/valueobjects"
	"gmao/internal/shared/logger"
)

type Dispatcher struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewDispatcher(repo notification.Repository, logger logger.Interface) *Dispatcher {
	return &Dispatcher{
		repo:   repo,
		logger: logger,
	}
}

func (d *Dispatcher) TicketAssigned(ctx context.Context, e ticket.AssignedEvent) error {
	recipients := notification.ResolveAssigned(e)

	payload := map[string]any{
		"ticket_id": e.TicketID,
	}

	return d.fanOut(ctx, recipients, vo.TypeTicketAssigne,
		"Ticket assigné",
		fmt.Sprintf("Le ticket «%s» vous a été assigné.", e.Title),
		payload)
}

func (d *Dispatcher) TicketStatusChanged(ctx context.Context, e ticket.StatusChangedEvent) error {
	recipients := notification.ResolveStatusChanged(e)

	payload := map[string]any{
		"ticket_id":  e.TicketID,
		"old_status": e.OldStatus,
		"new_status": e.NewStatus,
	}

	typ := vo.TypeTicketMisAJour
	if e.NewStatus == tvo.StatusFerme.String() {
		typ = vo.TypeTicketFerme
	}

	return d.fanOut(ctx, recipients, typ,
		"Ticket mis à jour",
		fmt.Sprintf("Le statut du ticket «%s» est passé de %s à %s.", e.Title, e.OldStatus, e.NewStatus),
		payload)
}

func (d *Dispatcher) TicketCommented(ctx context.Context, e ticket.CommentedEvent) error {
	recipients := notification.ResolveCommented(e)

	payload := map[string]any{
		"ticket_id": e.TicketID,
	}

	return d.fanOut(ctx, recipients, vo.TypeCommentaireAjoute,
		"Nouveau commentaire",
		fmt.Sprintf("Un commentaire a été ajouté au ticket «%s».", e.Title),
		payload)
}

// PanneReported notifies every active technician except the reporter.
func (d *Dispatcher) PanneReported(ctx context.Context, panneID, equipmentID, actorID uint, technicianIDs []uint) error {
	recipients := notification.ResolveFanOut(actorID, technicianIDs)

	payload := map[string]any{
		"panne_id":     panneID,
		"equipment_id": equipmentID,
	}

	return d.fanOut(ctx, recipients, vo.TypePanneSignalee,
		"Panne signalée",
		"Une nouvelle panne a été signalée.",
		payload)
}

// PanneResolved notifies the original reporter, unless they resolved it
// themselves.
func (d *Dispatcher) PanneResolved(ctx context.Context, panneID, reporterID, actorID uint) error {
	recipients := notification.ResolveFanOut(actorID, []uint{reporterID})

	payload := map[string]any{
		"panne_id": panneID,
	}

	return d.fanOut(ctx, recipients, vo.TypePanneResolue,
		"Panne résolue",
		"Une panne que vous avez signalée a été résolue.",
		payload)
}

// InterventionPlanned notifies the technician an intervention was planned
// for, unless they planned it themselves.
func (d *Dispatcher) InterventionPlanned(ctx context.Context, interventionID, technicianID, actorID uint) error {
	recipients := notification.ResolveFanOut(actorID, []uint{technicianID})

	payload := map[string]any{
		"intervention_id": interventionID,
	}

	return d.fanOut(ctx, recipients, vo.TypeInterventionPlanifiee,
		"Intervention planifiée",
		"Une intervention vous a été planifiée.",
		payload)
}

func (d *Dispatcher) fanOut(
	ctx context.Context,
	recipients []uint,
	typ vo.NotificationType,
	title string,
	message string,
	payload map[string]any,
) error {
	if len(recipients) == 0 {
		return nil
	}

	notifications := make([]*notification.Notification, 0, len(recipients))
	for _, userID := range recipients {
		n, err := notification.NewNotification(userID, typ, title, message, payload)
		if err != nil {
			return fmt.Errorf("failed to build notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err := d.repo.BulkCreate(ctx, notifications); err != nil {
		return fmt.Errorf("failed to persist notifications: %w", err)
	}

	d.logger.Infow("notifications dispatched",
		"type", typ.String(),
		"recipients", len(recipients))

	return nil
}
