package usecases

import (
	"context"

	"gmao/internal/application/user/dto"
	"gmao/internal/domain/user"
	vo "gmao/internal/domain/user/valueobjects"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type CreateUserCommand struct {
	Name     string
	Email    string
	Password string
	Role     int
}

type CreateUserResult struct {
	User *dto.UserDTO
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	uc.logger.Infow("executing create user use case", "email", cmd.Email)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create user command", "error", err)
		return nil, err
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email); err == nil && existing != nil {
		return nil, errors.NewConflictError("a user with this email already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	role, err := vo.NewRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	u, err := user.NewUser(cmd.Name, cmd.Email, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a user with this email already exists")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	uc.logger.Infow("user created successfully", "user_id", u.ID(), "role", role.String())

	return &CreateUserResult{User: dto.FromEntity(u)}, nil
}

func (uc *CreateUserUseCase) validateCommand(cmd CreateUserCommand) error {
	if len(cmd.Name) == 0 {
		return errors.NewValidationError("name is required")
	}
	if len(cmd.Email) == 0 {
		return errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	return nil
}
