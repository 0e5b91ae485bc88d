package entity

import "slices"

// Role grants access to a route group.
type Role string

const (
	// RoleStudent is granted to every signed-in user.
	RoleStudent Role = "student"
	// RoleAdmin may upload, list and delete files.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// Roles is the ordered role set carried in access tokens.
type Roles []Role

// ParseRoles keeps the claim values this service knows about, in order.
func ParseRoles(ss []string) Roles {
	roles := make(Roles, 0, len(ss))
	for _, s := range ss {
		switch r := Role(s); r {
		case RoleStudent, RoleAdmin:
			roles = append(roles, r)
		}
	}

	return roles
}

// Has reports whether role is in the set.
func (rs Roles) Has(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings is the claim form of the set.
func (rs Roles) ToStrings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}

	return out
}
