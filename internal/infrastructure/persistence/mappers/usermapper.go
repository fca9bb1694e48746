package mappers

import (
	"gmao/internal/domain/user"
	vo "gmao/internal/domain/user/valueobjects"
	"gmao/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:                 u.ID(),
		Name:               u.Name(),
		Email:              u.Email(),
		PasswordHash:       u.PasswordHash(),
		Role:               int(u.Role()),
		Active:             u.IsActive(),
		PasswordChangedAt:  u.PasswordChangedAt(),
		MustChangePassword: u.MustChangePassword(),
		CreatedAt:          u.CreatedAt(),
		UpdatedAt:          u.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		vo.Role(model.Role),
		model.Active,
		model.PasswordChangedAt,
		model.MustChangePassword,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
