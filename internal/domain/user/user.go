package user

import (
	"fmt"
	"strings"
	"time"

	vo "gmao/internal/domain/user/valueobjects"
)

// User carries identity, role and password-expiry metadata. Users are never
// hard-deleted in normal flow; deactivation keeps history intact.
type User struct {
	id                 uint
	name               string
	email              string
	passwordHash       string
	role               vo.Role
	active             bool
	passwordChangedAt  time.Time
	mustChangePassword bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewUser(name, email, passwordHash string, role vo.Role) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(email) == 0 || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}

	now := time.Now()

	return &User{
		name:              name,
		email:             strings.ToLower(email),
		passwordHash:      passwordHash,
		role:              role,
		active:            true,
		passwordChangedAt: now,
		// admin-provisioned accounts start on a default password
		mustChangePassword: true,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email string,
	passwordHash string,
	role vo.Role,
	active bool,
	passwordChangedAt time.Time,
	mustChangePassword bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}

	return &User{
		id:                 id,
		name:               name,
		email:              email,
		passwordHash:       passwordHash,
		role:               role,
		active:             active,
		passwordChangedAt:  passwordChangedAt,
		mustChangePassword: mustChangePassword,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() vo.Role {
	return u.role
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) PasswordChangedAt() time.Time {
	return u.passwordChangedAt
}

func (u *User) MustChangePassword() bool {
	return u.mustChangePassword
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// CanPerformActions reports whether the user may act in the system.
func (u *User) CanPerformActions() bool {
	return u.active
}

func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now()
}

func (u *User) Activate() {
	u.active = true
	u.updatedAt = time.Now()
}

// ChangePassword stores a new hash and clears the forced-change flag.
func (u *User) ChangePassword(newHash string) error {
	if len(newHash) == 0 {
		return fmt.Errorf("password hash is required")
	}

	now := time.Now()
	u.passwordHash = newHash
	u.passwordChangedAt = now
	u.mustChangePassword = false
	u.updatedAt = now

	return nil
}

// ForcePasswordChange flags the account for a mandatory password change at
// next login.
func (u *User) ForcePasswordChange() {
	u.mustChangePassword = true
	u.updatedAt = time.Now()
}

// PasswordExpired reports whether the password is older than maxAge or a
// change has been forced.
func (u *User) PasswordExpired(maxAge time.Duration) bool {
	if u.mustChangePassword {
		return true
	}
	return time.Since(u.passwordChangedAt) > maxAge
}
