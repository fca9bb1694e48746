package dto

import (
	"time"

	"gmao/internal/domain/user"
	"gmao/internal/shared/mapper"
)

type UserDTO struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Role               int       `json:"role"`
	Active             bool      `json:"active"`
	MustChangePassword bool      `json:"must_change_password"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromEntity(u *user.User) *UserDTO {
	return &UserDTO{
		ID:                 u.ID(),
		Name:               u.Name(),
		Email:              u.Email(),
		Role:               int(u.Role()),
		Active:             u.IsActive(),
		MustChangePassword: u.MustChangePassword(),
		CreatedAt:          u.CreatedAt(),
		UpdatedAt:          u.UpdatedAt(),
	}
}

func FromEntities(users []*user.User) []*UserDTO {
	return mapper.List(users, FromEntity)
}
