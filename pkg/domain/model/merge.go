package model

import "time"

// Patch shallow-merges a validated partial update onto existing metadata.
// Top-level keys present in the update overwrite the corresponding key in
// the existing metadata wholesale; arrays are replaced in their entirety,
// not element-wise merged. Keys absent from the update are left untouched.
// The existing metadata is never mutated; the caller persists the returned
// copy. Provenance stamps are set here and only here.
func Patch(existing *ProjectMetadata, update *MetadataUpdate, actor string) *ProjectMetadata {
	merged := existing.Clone()
	if merged == nil {
		merged = &ProjectMetadata{}
	}

	if update.Template != nil {
		merged.Template = *update.Template
	}
	if update.Budget != nil {
		b := *update.Budget
		merged.Budget = &b
	}
	if update.Client != nil {
		c := *update.Client
		merged.Client = &c
	}
	if update.Milestones != nil {
		ms := make([]Milestone, len(*update.Milestones))
		copy(ms, *update.Milestones)
		merged.Milestones = ms
	}
	if update.CustomFields != nil {
		fields := make([]CustomField, len(*update.CustomFields))
		for i, f := range *update.CustomFields {
			fields[i] = f.Clone()
		}
		merged.CustomFields = fields
	}
	if update.Tags != nil {
		tags := make([]string, len(*update.Tags))
		copy(tags, *update.Tags)
		merged.Tags = tags
	}
	if update.Settings != nil {
		s := *update.Settings
		merged.Settings = &s
	}
	if update.Integration != nil {
		i := *update.Integration
		merged.Integration = &i
	}

	stamp(merged, actor)
	return merged
}

// Replace discards the existing metadata and substitutes the validated full
// payload, plus fresh provenance stamps.
func Replace(existing *ProjectMetadata, update *MetadataUpdate, actor string) *ProjectMetadata {
	return Patch(&ProjectMetadata{}, update, actor)
}

// PatchFieldValues overwrites only the value of each existing custom field
// whose ID appears in the validated value map. All other attributes of the
// field definition are preserved verbatim; unknown IDs were already rejected
// by validation.
func PatchFieldValues(existing *ProjectMetadata, values map[string]any, actor string) *ProjectMetadata {
	merged := existing.Clone()
	if merged == nil {
		merged = &ProjectMetadata{}
	}

	for i := range merged.CustomFields {
		if v, ok := values[merged.CustomFields[i].ID]; ok {
			merged.CustomFields[i].Value = cloneValue(v)
		}
	}

	stamp(merged, actor)
	return merged
}

func stamp(m *ProjectMetadata, actor string) {
	m.LastModified = time.Now().UTC()
	m.LastModifiedBy = actor
}
