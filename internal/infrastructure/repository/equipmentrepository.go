package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gmao/internal/domain/equipment"
	vo "gmao/internal/domain/equipment/valueobjects"
	"gmao/internal/infrastructure/persistence/mappers"
	"gmao/internal/infrastructure/persistence/models"
	"gmao/internal/shared/db"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/mapper"
)

type EquipmentRepository struct {
	db     *gorm.DB
	mapper mappers.EquipmentMapper
}

func NewEquipmentRepository(db *gorm.DB) *EquipmentRepository {
	return &EquipmentRepository{
		db:     db,
		mapper: mappers.NewEquipmentMapper(),
	}
}

func (r *EquipmentRepository) Save(ctx context.Context, e *equipment.Equipment) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save equipment: %w", err)
	}

	return e.SetID(model.ID)
}

func (r *EquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	model := r.mapper.ToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.EquipmentModel{}).
		Where("id = ?", model.ID).
		Select("name", "location", "status", "holder_id", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update equipment: %w", result.Error)
	}

	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id uint) (*equipment.Equipment, error) {
	var model models.EquipmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("equipment not found")
		}
		return nil, fmt.Errorf("failed to find equipment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EquipmentRepository) GetBySerial(ctx context.Context, serial string) (*equipment.Equipment, error) {
	var model models.EquipmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("serial = ?", serial).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("equipment not found")
		}
		return nil, fmt.Errorf("failed to find equipment: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EquipmentRepository) List(ctx context.Context, limit, offset int) ([]*equipment.Equipment, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.EquipmentModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count equipment: %w", err)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var modelList []*models.EquipmentModel
	if err := query.Order("id").Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list equipment: %w", err)
	}

	equipments, err := mapper.ListWithError(modelList, r.mapper.ToDomain)
	if err != nil {
		return nil, 0, err
	}

	return equipments, total, nil
}

// UpdateStatus writes only the status column. The ticket lifecycle calls it
// as a best-effort side effect after the primary write.
func (r *EquipmentRepository) UpdateStatus(ctx context.Context, id uint, status vo.EquipmentStatus) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.EquipmentModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return fmt.Errorf("failed to update equipment status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("equipment not found")
	}

	return nil
}
