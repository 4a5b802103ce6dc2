package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nexboard/nexboard/pkg/domain/model"
	"github.com/nexboard/nexboard/pkg/domain/types"
)

func TestProjectPermissions(t *testing.T) {
	project := &model.Project{
		ID:      "p1",
		Name:    "Test Project",
		OwnerID: "owner-1",
		Members: []model.Member{
			{UserID: "admin-1", Role: types.RoleAdmin},
			{UserID: "member-1", Role: types.RoleMember},
			{UserID: "viewer-1", Role: types.RoleViewer},
		},
	}

	testCases := []struct {
		userID             string
		canRead            bool
		canEdit            bool
		canEditFieldValues bool
	}{
		{"owner-1", true, true, true},
		{"admin-1", true, true, true},
		{"member-1", true, false, true},
		{"viewer-1", true, false, false},
		{"stranger", false, false, false},
		{"", false, false, false},
	}

	for _, tc := range testCases {
		name := tc.userID
		if name == "" {
			name = "empty user"
		}
		t.Run(name, func(t *testing.T) {
			gt.Value(t, project.CanRead(tc.userID)).Equal(tc.canRead)
			gt.Value(t, project.CanEdit(tc.userID)).Equal(tc.canEdit)
			gt.Value(t, project.CanEditFieldValues(tc.userID)).Equal(tc.canEditFieldValues)
		})
	}

	t.Run("owner outranks an explicit member entry", func(t *testing.T) {
		demoted := &model.Project{
			OwnerID: "owner-1",
			Members: []model.Member{
				{UserID: "owner-1", Role: types.RoleViewer},
			},
		}

		role, ok := demoted.MemberRole("owner-1")
		gt.Bool(t, ok).True()
		gt.Value(t, role).Equal(types.RoleOwner)
	})
}

func TestProjectClone(t *testing.T) {
	project := &model.Project{
		ID:      "p1",
		Name:    "Original",
		OwnerID: "owner-1",
		Members: []model.Member{{UserID: "member-1", Role: types.RoleMember}},
		Metadata: &model.ProjectMetadata{
			Tags: []string{"alpha"},
		},
	}

	copied := project.Clone()
	copied.Name = "Changed"
	copied.Members[0].UserID = "member-2"
	copied.Metadata.Tags[0] = "beta"

	gt.Value(t, project.Name).Equal("Original")
	gt.Value(t, project.Members[0].UserID).Equal("member-1")
	gt.Value(t, project.Metadata.Tags[0]).Equal("alpha")
}
