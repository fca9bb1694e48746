package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gmao/internal/domain/user"
	vo "gmao/internal/domain/user/valueobjects"
	"gmao/internal/shared/errors"
)

func testUser(t *testing.T, id uint, active bool, passwordChangedAt time.Time, mustChange bool) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, "Alice", "alice@example.com", "stored-hash", vo.RoleUtilisateur, active, passwordChangedAt, mustChange, time.Now(), time.Now())
	require.NoError(t, err)
	return u
}

func TestAuthenticateUserUseCase_Execute_Success(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenIssuer)

	u := testUser(t, 5, true, time.Now(), false)
	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(u, nil)
	hasher.On("Verify", "secret123", "stored-hash").Return(nil)
	tokens.On("Generate", uint(5), vo.RoleUtilisateur).Return("signed-token", int64(3600), nil)

	uc := NewAuthenticateUserUseCase(userRepo, hasher, tokens, newNopLogger())

	result, err := uc.Execute(context.Background(), AuthenticateUserCommand{
		Email:          "alice@example.com",
		Password:       "secret123",
		MaxPasswordAge: 90 * 24 * time.Hour,
	})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.AccessToken)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	assert.False(t, result.MustChangePassword)
	assert.Equal(t, uint(5), result.User.ID)
}

func TestAuthenticateUserUseCase_Execute_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenIssuer)

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, errors.NewNotFoundError("user not found"))
	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(testUser(t, 5, true, time.Now(), false), nil)
	hasher.On("Verify", "wrong", "stored-hash").Return(errors.NewUnauthorizedError("password verification failed"))

	uc := NewAuthenticateUserUseCase(userRepo, hasher, tokens, newNopLogger())

	_, errUnknown := uc.Execute(context.Background(), AuthenticateUserCommand{Email: "ghost@example.com", Password: "whatever"})
	_, errWrong := uc.Execute(context.Background(), AuthenticateUserCommand{Email: "alice@example.com", Password: "wrong"})

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.Equal(t, errUnknown.Error(), errWrong.Error(), "unknown email and wrong password are indistinguishable")
}

func TestAuthenticateUserUseCase_Execute_DeactivatedAccount(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenIssuer)

	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(testUser(t, 5, false, time.Now(), false), nil)
	hasher.On("Verify", "secret123", "stored-hash").Return(nil)

	uc := NewAuthenticateUserUseCase(userRepo, hasher, tokens, newNopLogger())

	result, err := uc.Execute(context.Background(), AuthenticateUserCommand{Email: "alice@example.com", Password: "secret123"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsForbiddenError(err))
	tokens.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestAuthenticateUserUseCase_Execute_ExpiredPasswordFlagsChange(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokens := new(mockTokenIssuer)

	stale := time.Now().Add(-120 * 24 * time.Hour)
	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(testUser(t, 5, true, stale, false), nil)
	hasher.On("Verify", "secret123", "stored-hash").Return(nil)
	tokens.On("Generate", uint(5), vo.RoleUtilisateur).Return("signed-token", int64(3600), nil)

	uc := NewAuthenticateUserUseCase(userRepo, hasher, tokens, newNopLogger())

	result, err := uc.Execute(context.Background(), AuthenticateUserCommand{
		Email:          "alice@example.com",
		Password:       "secret123",
		MaxPasswordAge: 90 * 24 * time.Hour,
	})

	require.NoError(t, err)
	assert.True(t, result.MustChangePassword)
}

func TestChangePasswordUseCase_Execute(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)

	u := testUser(t, 5, true, time.Now(), true)
	userRepo.On("GetByID", mock.Anything, uint(5)).Return(u, nil)
	hasher.On("Verify", "oldsecret", "stored-hash").Return(nil)
	hasher.On("Hash", "newsecret99").Return("new-hash", nil)
	userRepo.On("Update", mock.Anything, u).Return(nil)

	uc := NewChangePasswordUseCase(userRepo, hasher, newNopLogger())

	err := uc.Execute(context.Background(), ChangePasswordCommand{
		UserID:      5,
		OldPassword: "oldsecret",
		NewPassword: "newsecret99",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-hash", u.PasswordHash())
	assert.False(t, u.MustChangePassword())
}

func TestChangePasswordUseCase_Execute_ValidationErrors(t *testing.T) {
	uc := NewChangePasswordUseCase(new(mockUserRepository), new(mockPasswordHasher), newNopLogger())

	err := uc.Execute(context.Background(), ChangePasswordCommand{UserID: 5, OldPassword: "old", NewPassword: "short"})
	assert.True(t, errors.IsValidationError(err))

	err = uc.Execute(context.Background(), ChangePasswordCommand{UserID: 5, OldPassword: "samesame1", NewPassword: "samesame1"})
	assert.True(t, errors.IsValidationError(err))
}
