package user

import (
	"context"

	vo "gmao/internal/domain/user/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, limit, offset int) ([]*User, int64, error)
	// ListActiveByRole feeds role-based notification fan-out (e.g. all
	// active technicians on a failure report).
	ListActiveByRole(ctx context.Context, role vo.Role) ([]*User, error)
}
