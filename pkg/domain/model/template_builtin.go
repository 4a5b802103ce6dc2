package model

import "github.com/nexboard/nexboard/pkg/domain/types"

// builtinTemplates returns the static template presets shipped with the
// server. Additional templates can be overlaid from configuration at
// startup; after that the catalog is read-only.
func builtinTemplates() []*Template {
	return []*Template{
		{
			ID:          types.TemplateTypeConstruction,
			Name:        "Construction Project",
			Description: "Track permits, site milestones and contractor budgets",
			Category:    "operations",
			Icon:        "hard-hat",
			Features:    []string{"budget", "milestones", "custom-fields"},
			DefaultMetadata: &MetadataPatch{
				Template: templateTypePtr(types.TemplateTypeConstruction),
				Settings: &Settings{
					RequireApproval:   true,
					NotificationLevel: types.NotificationImportant,
				},
				Tags: tagsPtr("construction"),
				CustomFields: fieldsPtr(
					CustomFieldInput{
						ID:       "permit-status",
						Name:     "Permit Status",
						Type:     types.FieldTypeSelect,
						Required: true,
						Options:  []string{"Pending", "Approved", "Denied", "Under Review"},
					},
					CustomFieldInput{
						ID:   "site-address",
						Name: "Site Address",
						Type: types.FieldTypeText,
					},
					CustomFieldInput{
						ID:   "inspection-date",
						Name: "Inspection Date",
						Type: types.FieldTypeDate,
					},
				),
			},
		},
		{
			ID:          types.TemplateTypeSoftware,
			Name:        "Software Development",
			Description: "Plan releases with repository and tracker integration",
			Category:    "engineering",
			Icon:        "code",
			Features:    []string{"milestones", "custom-fields", "integration"},
			DefaultMetadata: &MetadataPatch{
				Template: templateTypePtr(types.TemplateTypeSoftware),
				Settings: &Settings{
					NotificationLevel: types.NotificationAll,
				},
				Tags: tagsPtr("software"),
				CustomFields: fieldsPtr(
					CustomFieldInput{
						ID:      "environment",
						Name:    "Environment",
						Type:    types.FieldTypeMultiSelect,
						Options: []string{"Development", "Staging", "Production"},
					},
					CustomFieldInput{
						ID:   "code-freeze",
						Name: "Code Freeze",
						Type: types.FieldTypeDate,
					},
					CustomFieldInput{
						ID:   "story-points",
						Name: "Story Points",
						Type: types.FieldTypeNumber,
					},
				),
			},
		},
		{
			ID:          types.TemplateTypeMarketing,
			Name:        "Marketing Campaign",
			Description: "Coordinate campaign budgets, channels and launch dates",
			Category:    "business",
			Icon:        "megaphone",
			Features:    []string{"budget", "milestones", "custom-fields"},
			DefaultMetadata: &MetadataPatch{
				Template: templateTypePtr(types.TemplateTypeMarketing),
				Settings: &Settings{
					NotificationLevel: types.NotificationImportant,
				},
				Tags: tagsPtr("marketing"),
				CustomFields: fieldsPtr(
					CustomFieldInput{
						ID:      "channel",
						Name:    "Channel",
						Type:    types.FieldTypeMultiSelect,
						Options: []string{"Email", "Social", "Search", "Events"},
					},
					CustomFieldInput{
						ID:   "launch-date",
						Name: "Launch Date",
						Type: types.FieldTypeDate,
					},
				),
			},
		},
		{
			ID:          types.TemplateTypeEvent,
			Name:        "Event Planning",
			Description: "Organize venues, vendors and attendee logistics",
			Category:    "business",
			Icon:        "calendar",
			Features:    []string{"budget", "milestones"},
			DefaultMetadata: &MetadataPatch{
				Template: templateTypePtr(types.TemplateTypeEvent),
				Settings: &Settings{
					RequireApproval:   true,
					NotificationLevel: types.NotificationAll,
				},
				Tags: tagsPtr("event"),
				CustomFields: fieldsPtr(
					CustomFieldInput{
						ID:   "venue",
						Name: "Venue",
						Type: types.FieldTypeText,
					},
					CustomFieldInput{
						ID:   "headcount",
						Name: "Expected Headcount",
						Type: types.FieldTypeNumber,
					},
					CustomFieldInput{
						ID:   "catering-confirmed",
						Name: "Catering Confirmed",
						Type: types.FieldTypeBoolean,
					},
				),
			},
		},
		{
			ID:          types.TemplateTypeDesign,
			Name:        "Design Project",
			Description: "Manage creative briefs, revisions and deliverables",
			Category:    "creative",
			Icon:        "palette",
			Features:    []string{"milestones", "custom-fields"},
			DefaultMetadata: &MetadataPatch{
				Template: templateTypePtr(types.TemplateTypeDesign),
				Settings: &Settings{
					NotificationLevel: types.NotificationImportant,
				},
				Tags: tagsPtr("design"),
				CustomFields: fieldsPtr(
					CustomFieldInput{
						ID:      "revision-round",
						Name:    "Revision Round",
						Type:    types.FieldTypeSelect,
						Options: []string{"First Draft", "Revision 1", "Revision 2", "Final"},
					},
				),
			},
		},
		{
			ID:          types.TemplateTypeConsulting,
			Name:        "Consulting Engagement",
			Description: "Track client deliverables, contacts and billing",
			Category:    "business",
			Icon:        "briefcase",
			Features:    []string{"budget", "client", "milestones"},
			DefaultMetadata: &MetadataPatch{
				Template: templateTypePtr(types.TemplateTypeConsulting),
				Settings: &Settings{
					RequireApproval:   true,
					NotificationLevel: types.NotificationImportant,
				},
				Tags: tagsPtr("consulting"),
				CustomFields: fieldsPtr(
					CustomFieldInput{
						ID:      "engagement-type",
						Name:    "Engagement Type",
						Type:    types.FieldTypeSelect,
						Options: []string{"Advisory", "Implementation", "Audit"},
					},
					CustomFieldInput{
						ID:   "billable",
						Name: "Billable",
						Type: types.FieldTypeBoolean,
					},
				),
			},
		},
		{
			ID:          types.TemplateTypeOther,
			Name:        "Blank Project",
			Description: "Start from an empty attribute set",
			Category:    "general",
			Icon:        "file",
			Features:    []string{},
			DefaultMetadata: &MetadataPatch{
				Template: templateTypePtr(types.TemplateTypeOther),
				Settings: &Settings{
					NotificationLevel: types.NotificationAll,
				},
			},
		},
	}
}

func templateTypePtr(t types.TemplateType) *types.TemplateType {
	return &t
}

func tagsPtr(tags ...string) *[]string {
	return &tags
}

func fieldsPtr(fields ...CustomFieldInput) *[]CustomFieldInput {
	return &fields
}
