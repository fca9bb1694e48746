package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gmao/internal/domain/intervention"
	"gmao/internal/infrastructure/persistence/mappers"
	"gmao/internal/infrastructure/persistence/models"
	"gmao/internal/shared/db"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/mapper"
)

type InterventionRepository struct {
	db     *gorm.DB
	mapper *mappers.InterventionMapper
}

func NewInterventionRepository(db *gorm.DB) *InterventionRepository {
	return &InterventionRepository{
		db:     db,
		mapper: mappers.NewInterventionMapper(),
	}
}

func (r *InterventionRepository) Save(ctx context.Context, i *intervention.Intervention) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save intervention: %w", err)
	}

	return i.SetID(model.ID)
}

func (r *InterventionRepository) GetByID(ctx context.Context, id uint) (*intervention.Intervention, error) {
	var model models.InterventionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("intervention not found")
		}
		return nil, fmt.Errorf("failed to find intervention: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InterventionRepository) List(ctx context.Context, limit, offset int) ([]*intervention.Intervention, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.InterventionModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count interventions: %w", err)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var modelList []*models.InterventionModel
	if err := query.Order("planned_for").Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list interventions: %w", err)
	}

	interventions, err := mapper.ListWithError(modelList, r.mapper.ToDomain)
	if err != nil {
		return nil, 0, err
	}

	return interventions, total, nil
}
