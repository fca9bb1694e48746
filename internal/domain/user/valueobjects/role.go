package valueobjects

import "fmt"

// Role is the closed set of behavior kinds. The integer values are part of
// the stored schema and the API.
type Role int

const (
	RoleAdmin       Role = 1
	RoleTechnicien  Role = 2
	RoleUtilisateur Role = 3
)

var roleNames = map[Role]string{
	RoleAdmin:       "admin",
	RoleTechnicien:  "technicien",
	RoleUtilisateur: "utilisateur",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

func (r Role) IsValid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsTechnicien() bool {
	return r == RoleTechnicien
}

func (r Role) IsUtilisateur() bool {
	return r == RoleUtilisateur
}

func NewRole(v int) (Role, error) {
	r := Role(v)
	if !r.IsValid() {
		return 0, fmt.Errorf("invalid role: %d", v)
	}
	return r, nil
}
