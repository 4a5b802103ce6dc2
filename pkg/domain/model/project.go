package model

import (
	"time"

	"github.com/nexboard/nexboard/pkg/domain/types"
)

// Member represents a user's membership in a project
type Member struct {
	UserID string           `json:"userId"`
	Role   types.MemberRole `json:"role"`
}

// Project represents a project record. Only its metadata is mutated through
// this engine; the rest of the record is managed by external collaborators.
type Project struct {
	ID        types.ProjectID  `json:"id"`
	Name      string           `json:"name"`
	OwnerID   string           `json:"ownerId"`
	Members   []Member         `json:"members"`
	Metadata  *ProjectMetadata `json:"metadata,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// MemberRole returns the role of the given user within the project. The
// owner is always reported with the owner role, regardless of the members
// list.
func (p *Project) MemberRole(userID string) (types.MemberRole, bool) {
	if userID == "" {
		return "", false
	}
	if p.OwnerID == userID {
		return types.RoleOwner, true
	}
	for _, m := range p.Members {
		if m.UserID == userID {
			return m.Role, true
		}
	}
	return "", false
}

// CanRead reports whether the user may read the project and its metadata:
// the owner, or any member regardless of role.
func (p *Project) CanRead(userID string) bool {
	_, ok := p.MemberRole(userID)
	return ok
}

// CanEdit reports whether the user may modify metadata, milestones and
// custom field definitions: the owner, or a member with owner or admin role.
func (p *Project) CanEdit(userID string) bool {
	role, ok := p.MemberRole(userID)
	if !ok {
		return false
	}
	return role == types.RoleOwner || role == types.RoleAdmin
}

// CanEditFieldValues reports whether the user may update custom field
// values. Changing the value of an existing field is a lower-privilege
// operation than redefining the field set, so the member role is also
// allowed.
func (p *Project) CanEditFieldValues(userID string) bool {
	role, ok := p.MemberRole(userID)
	if !ok {
		return false
	}
	return role == types.RoleOwner || role == types.RoleAdmin || role == types.RoleMember
}

// Clone returns a deep copy of the project
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	copied := &Project{
		ID:        p.ID,
		Name:      p.Name,
		OwnerID:   p.OwnerID,
		Metadata:  p.Metadata.Clone(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Members != nil {
		copied.Members = make([]Member, len(p.Members))
		copy(copied.Members, p.Members)
	}
	return copied
}
