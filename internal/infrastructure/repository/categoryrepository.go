package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gmao/internal/domain/category"
	"gmao/internal/infrastructure/persistence/mappers"
	"gmao/internal/infrastructure/persistence/models"
	"gmao/internal/shared/db"
	"gmao/internal/shared/errors"
)

type CategoryRepository struct {
	db     *gorm.DB
	mapper *mappers.CategoryMapper
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		mapper: mappers.NewCategoryMapper(),
	}
}

func (r *CategoryRepository) Save(ctx context.Context, c *category.Category) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	var model models.CategoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var modelList []models.CategoryModel
	if err := tx.Order("name").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*category.Category, 0, len(modelList))
	for i := range modelList {
		c, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, nil
}
