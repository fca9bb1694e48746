package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gmao/internal/domain/ticket"
	vo "gmao/internal/domain/ticket/valueobjects"
	"gmao/internal/infrastructure/persistence/mappers"
	"gmao/internal/infrastructure/persistence/models"
	"gmao/internal/shared/db"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/mapper"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

// Save inserts a ticket, enforcing the one-open-ticket-per-equipment rule
// inside a single transaction. The equipment row is locked first so two
// concurrent creations against the same equipment serialize instead of both
// passing the check.
func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var equipmentModel models.EquipmentModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&equipmentModel, t.EquipmentID()).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewValidationError("equipment does not exist")
			}
			return fmt.Errorf("failed to lock equipment row: %w", err)
		}

		var count int64
		if err := tx.
			Model(&models.TicketModel{}).
			Where("equipment_id = ? AND status IN ?", t.EquipmentID(), openStatusStrings()).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check open tickets: %w", err)
		}
		if count > 0 {
			return errors.NewConflictError("an open ticket already exists for this equipment")
		}

		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save ticket: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("title", "description", "priority", "status", "category_id",
			"assignee_id", "comment", "assigned_at", "resolved_at", "closed_at", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.CreatorID != 0 {
		query = query.Where("creator_id = ?", filter.CreatorID)
	}
	if filter.AssigneeID != 0 {
		query = query.Where("assignee_id = ?", filter.AssigneeID)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var modelList []*models.TicketModel
	if err := query.Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := mapper.ListWithError(modelList, r.mapper.ToDomain)
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

func (r *TicketRepository) HasOpenTicketForEquipment(ctx context.Context, equipmentID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.TicketModel{}).
		Where("equipment_id = ? AND status IN ?", equipmentID, openStatusStrings()).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check open tickets: %w", err)
	}

	return count > 0, nil
}

func openStatusStrings() []string {
	statuses := vo.OpenStatuses()
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}
