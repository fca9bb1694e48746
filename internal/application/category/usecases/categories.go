package usecases

import (
	"context"

	"gmao/internal/domain/category"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type CategoryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CreateCategoryCommand struct {
	Name        string
	Description string
}

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, cmd CreateCategoryCommand) (*CategoryDTO, error)
}

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) ([]*CategoryDTO, error)
}

type CreateCategoryUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo category.Repository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*CategoryDTO, error) {
	c, err := category.NewCategory(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Save(ctx, c); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a category with this name already exists")
		}
		uc.logger.Errorw("failed to save category", "error", err)
		return nil, errors.NewInternalError("failed to create category")
	}

	return &CategoryDTO{ID: c.ID(), Name: c.Name(), Description: c.Description()}, nil
}

type ListCategoriesUseCase struct {
	categoryRepo category.Repository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.Repository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]*CategoryDTO, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, errors.NewInternalError("failed to list categories")
	}

	dtos := make([]*CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, &CategoryDTO{ID: c.ID(), Name: c.Name(), Description: c.Description()})
	}
	return dtos, nil
}
