package usecases

import (
	"context"

	"gmao/internal/application/user/dto"
	"gmao/internal/domain/user"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type ListUsersQuery struct {
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users []*dto.UserDTO
	Total int64
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	offset := (query.Page - 1) * query.PageSize

	users, total, err := uc.userRepo.List(ctx, query.PageSize, offset)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users")
	}

	return &ListUsersResult{
		Users: dto.FromEntities(users),
		Total: total,
	}, nil
}

type DeactivateUserCommand struct {
	UserID  uint
	ActorID uint
}

type DeactivateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeactivateUserUseCase(userRepo user.Repository, logger logger.Interface) *DeactivateUserUseCase {
	return &DeactivateUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *DeactivateUserUseCase) Execute(ctx context.Context, cmd DeactivateUserCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if cmd.UserID == cmd.ActorID {
		return errors.NewValidationError("you cannot deactivate your own account")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return errors.NewNotFoundError("user not found")
	}

	if !u.IsActive() {
		return nil
	}

	u.Deactivate()

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to deactivate user", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to deactivate user")
	}

	uc.logger.Infow("user deactivated", "user_id", cmd.UserID, "actor_id", cmd.ActorID)

	return nil
}
