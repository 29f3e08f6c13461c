package entities

import "time"

// Role is a closed access tier. The model is flat: ADMIN does not imply USER.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// IsValid reports whether the role is one of the enumerated tiers.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// Toggle returns the other tier of the two-role model.
func (r Role) Toggle() Role {
	if r == RoleAdmin {
		return RoleUser
	}
	return RoleAdmin
}

// ParseRole parses a raw role name, rejecting anything outside the enum.
func ParseRole(raw string) (Role, bool) {
	role := Role(raw)
	return role, role.IsValid()
}

// SuperAdminID is the reserved identifier of the immutable super admin.
// Role, enabled state, and deletion state of this record never change
// through the mutation endpoints.
const SuperAdminID int64 = 1

// User is the directory-owned account record.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
	Enabled      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Sanitized returns a copy with the password hash stripped. Everything that
// leaves the credential verifier goes through this.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// IsSuperAdmin reports whether this is the reserved id-1 record.
func (u User) IsSuperAdmin() bool {
	return u.ID == SuperAdminID
}
