package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "gmao/internal/domain/user/valueobjects"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	token, expiresIn, err := svc.Generate(5, vo.RoleTechnicien)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(5), claims.UserID)
	assert.Equal(t, int(vo.RoleTechnicien), claims.Role)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", 60)
	other := NewJWTService("other-secret", 60)

	token, _, err := svc.Generate(5, vo.RoleAdmin)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", 60)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, hasher.Verify("secret123", hash))
	assert.Error(t, hasher.Verify("wrong", hash))
}

func TestNewBcryptPasswordHasher_CostClamping(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default.
	hasher := NewBcryptPasswordHasher(99)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NoError(t, hasher.Verify("secret123", hash))
}
