package model

import (
	"time"

	"github.com/nexboard/nexboard/pkg/domain/types"
)

// Budget represents the budget section of project metadata
type Budget struct {
	Allocated float64        `json:"allocated"`
	Spent     float64        `json:"spent"`
	Currency  types.Currency `json:"currency"`
}

// Client represents the client contact section of project metadata
type Client struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Settings represents per-project behavior toggles
type Settings struct {
	AllowPublicAccess bool                    `json:"allowPublicAccess"`
	RequireApproval   bool                    `json:"requireApproval"`
	AutoArchive       bool                    `json:"autoArchive"`
	NotificationLevel types.NotificationLevel `json:"notificationLevel"`
}

// Integration holds external system identifiers. They are opaque strings and
// are not validated beyond their type.
type Integration struct {
	Repository  string `json:"repository,omitempty"`
	ChatChannel string `json:"chatChannel,omitempty"`
	Tracker     string `json:"tracker,omitempty"`
	ExternalID  string `json:"externalId,omitempty"`
}

// ProjectMetadata is the typed attribute bag attached 1:1 to a project.
// It has no identity or lifecycle of its own: it is created when the project
// is created and mutated only through validation and merge.
type ProjectMetadata struct {
	Template     types.TemplateType `json:"template,omitempty"`
	Budget       *Budget            `json:"budget,omitempty"`
	Client       *Client            `json:"client,omitempty"`
	Milestones   []Milestone        `json:"milestones,omitempty"`
	CustomFields []CustomField      `json:"customFields,omitempty"`
	Tags         []string           `json:"tags,omitempty"`
	Settings     *Settings          `json:"settings,omitempty"`
	Integration  *Integration       `json:"integration,omitempty"`

	// Provenance stamps, set by merge only, never client-supplied
	LastModified   time.Time `json:"lastModified,omitempty"`
	LastModifiedBy string    `json:"lastModifiedBy,omitempty"`
}

// Clone returns a deep copy of the metadata
func (m *ProjectMetadata) Clone() *ProjectMetadata {
	if m == nil {
		return nil
	}

	copied := &ProjectMetadata{
		Template:       m.Template,
		LastModified:   m.LastModified,
		LastModifiedBy: m.LastModifiedBy,
	}

	if m.Budget != nil {
		b := *m.Budget
		copied.Budget = &b
	}
	if m.Client != nil {
		c := *m.Client
		copied.Client = &c
	}
	if m.Settings != nil {
		s := *m.Settings
		copied.Settings = &s
	}
	if m.Integration != nil {
		i := *m.Integration
		copied.Integration = &i
	}
	if m.Milestones != nil {
		copied.Milestones = make([]Milestone, len(m.Milestones))
		copy(copied.Milestones, m.Milestones)
	}
	if m.CustomFields != nil {
		copied.CustomFields = make([]CustomField, len(m.CustomFields))
		for i, f := range m.CustomFields {
			copied.CustomFields[i] = f.Clone()
		}
	}
	if m.Tags != nil {
		copied.Tags = make([]string, len(m.Tags))
		copy(copied.Tags, m.Tags)
	}

	return copied
}

// MetadataPatch is the decoded client payload for metadata updates. Pointer
// fields distinguish an absent key from an explicit zero value; keys not
// listed here are ignored on decode.
type MetadataPatch struct {
	Template     *types.TemplateType `json:"template"`
	Budget       *Budget             `json:"budget"`
	Client       *Client             `json:"client"`
	Milestones   *[]Milestone        `json:"milestones"`
	CustomFields *[]CustomFieldInput `json:"customFields"`
	Tags         *[]string           `json:"tags"`
	Settings     *Settings           `json:"settings"`
	Integration  *Integration        `json:"integration"`
}

// MetadataUpdate is the validated, normalized form of a MetadataPatch,
// produced by ValidateMetadata and consumed by Patch / Replace.
type MetadataUpdate struct {
	Template     *types.TemplateType
	Budget       *Budget
	Client       *Client
	Milestones   *[]Milestone
	CustomFields *[]CustomField
	Tags         *[]string
	Settings     *Settings
	Integration  *Integration
}
