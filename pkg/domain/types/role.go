package types

import "fmt"

// ProjectID represents the unique identifier for a project
type ProjectID string

// String returns the string representation of the project ID
func (id ProjectID) String() string {
	return string(id)
}

// MemberRole represents the role of a project member
type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
	RoleViewer MemberRole = "viewer"
)

// AllMemberRoles returns all valid member roles
func AllMemberRoles() []MemberRole {
	return []MemberRole{
		RoleOwner,
		RoleAdmin,
		RoleMember,
		RoleViewer,
	}
}

// IsValid checks if the member role is valid
func (r MemberRole) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember, RoleViewer:
		return true
	default:
		return false
	}
}

// String returns the string representation of the member role
func (r MemberRole) String() string {
	return string(r)
}

// ParseMemberRole parses a string into a MemberRole
func ParseMemberRole(s string) (MemberRole, error) {
	role := MemberRole(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid member role: %s", s)
	}
	return role, nil
}
