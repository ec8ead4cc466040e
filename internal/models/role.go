package models

// Role is the closed set of access levels an identity can hold. The store
// keeps it as plain text, so unknown values normalize to RoleNone.
type Role string

const (
	// RoleNone means no identity record exists (or an unrecognized value).
	// Distinct from an explicit RoleUser.
	RoleNone  Role = "none"
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

// ParseRole maps a stored or submitted string onto the closed enum.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleAgent:
		return Role(s)
	default:
		return RoleNone
	}
}

// Valid reports whether r is an assignable role (RoleNone is resolvable but
// never assignable).
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin || r == RoleAgent
}

// In reports whether r is a member of the given set.
func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}
