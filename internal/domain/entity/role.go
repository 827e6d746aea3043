package entity

import "strings"

// Role is a staff member's permission level.
type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// AllRoles lists accepted roles in display order.
func AllRoles() []Role {
	return []Role{RoleStaff, RoleAdmin}
}

// ParseRole matches case-insensitively. An empty value yields RoleStaff.
func ParseRole(value string) (Role, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return RoleStaff, true
	}

	for _, role := range AllRoles() {
		if string(role) == normalized {
			return role, true
		}
	}

	return "", false
}
