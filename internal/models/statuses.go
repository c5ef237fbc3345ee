package models

type UserRole string

const (
	UserRoleMember UserRole = "member"
	UserRoleAdmin  UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// ValidRole reports whether the role is one the API accepts on input.
func ValidRole(r UserRole) bool {
	return r == UserRoleMember || r == UserRoleAdmin
}
