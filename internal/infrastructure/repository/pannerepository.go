package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gmao/internal/domain/panne"
	"gmao/internal/infrastructure/persistence/mappers"
	"gmao/internal/infrastructure/persistence/models"
	"gmao/internal/shared/db"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/mapper"
)

type PanneRepository struct {
	db     *gorm.DB
	mapper *mappers.PanneMapper
}

func NewPanneRepository(db *gorm.DB) *PanneRepository {
	return &PanneRepository{
		db:     db,
		mapper: mappers.NewPanneMapper(),
	}
}

func (r *PanneRepository) Save(ctx context.Context, p *panne.Panne) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save panne: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *PanneRepository) Update(ctx context.Context, p *panne.Panne) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PanneModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"resolved":    model.Resolved,
			"resolved_at": model.ResolvedAt,
			"resolved_by": model.ResolvedBy,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update panne: %w", result.Error)
	}

	return nil
}

func (r *PanneRepository) GetByID(ctx context.Context, id uint) (*panne.Panne, error) {
	var model models.PanneModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("panne not found")
		}
		return nil, fmt.Errorf("failed to find panne: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PanneRepository) List(ctx context.Context, limit, offset int) ([]*panne.Panne, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PanneModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pannes: %w", err)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var modelList []*models.PanneModel
	if err := query.Order("reported_at DESC").Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list pannes: %w", err)
	}

	pannes, err := mapper.ListWithError(modelList, r.mapper.ToDomain)
	if err != nil {
		return nil, 0, err
	}

	return pannes, total, nil
}
