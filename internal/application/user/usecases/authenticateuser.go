package usecases

import (
	"context"
	"time"

	"gmao/internal/application/user/dto"
	"gmao/internal/domain/user"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
)

type AuthenticateUserCommand struct {
	Email    string
	Password string
	// MaxPasswordAge bounds how old a password may be before login demands
	// a change.
	MaxPasswordAge time.Duration
}

type AuthenticateUserResult struct {
	User               *dto.UserDTO
	AccessToken        string
	ExpiresIn          int64
	MustChangePassword bool
}

type AuthenticateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewAuthenticateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *AuthenticateUserUseCase {
	return &AuthenticateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *AuthenticateUserUseCase) Execute(ctx context.Context, cmd AuthenticateUserCommand) (*AuthenticateUserResult, error) {
	if len(cmd.Email) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		// Same message for unknown email and wrong password.
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if !u.CanPerformActions() {
		return nil, errors.NewForbiddenError("account is deactivated")
	}

	token, expiresIn, err := uc.tokens.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to authenticate")
	}

	uc.logger.Infow("user authenticated", "user_id", u.ID())

	return &AuthenticateUserResult{
		User:               dto.FromEntity(u),
		AccessToken:        token,
		ExpiresIn:          expiresIn,
		MustChangePassword: u.PasswordExpired(cmd.MaxPasswordAge),
	}, nil
}

type ChangePasswordCommand struct {
	UserID      uint
	OldPassword string
	NewPassword string
}

type ChangePasswordUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewChangePasswordUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if len(cmd.NewPassword) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	if cmd.NewPassword == cmd.OldPassword {
		return errors.NewValidationError("new password must differ from the old one")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return errors.NewNotFoundError("user not found")
	}

	if err := uc.hasher.Verify(cmd.OldPassword, u.PasswordHash()); err != nil {
		return errors.NewUnauthorizedError("invalid credentials")
	}

	hash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return errors.NewInternalError("failed to change password")
	}

	if err := u.ChangePassword(hash); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user password", "user_id", cmd.UserID, "error", err)
		return errors.NewInternalError("failed to change password")
	}

	uc.logger.Infow("password changed", "user_id", cmd.UserID)

	return nil
}
