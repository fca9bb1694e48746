package usecases

import (
	"context"

	vo "gmao/internal/domain/user/valueobjects"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID uint, role vo.Role) (token string, expiresIn int64, err error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error)
}

type DeactivateUserExecutor interface {
	Execute(ctx context.Context, cmd DeactivateUserCommand) error
}

type AuthenticateUserExecutor interface {
	Execute(ctx context.Context, cmd AuthenticateUserCommand) (*AuthenticateUserResult, error)
}

type ChangePasswordExecutor interface {
	Execute(ctx context.Context, cmd ChangePasswordCommand) error
}
