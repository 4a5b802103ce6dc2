package model

import "github.com/nexboard/nexboard/pkg/domain/types"

// CustomField is a project-defined typed attribute carrying both its
// definition and its current value. Fields are owned by the ProjectMetadata
// that contains them.
type CustomField struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        types.FieldType `json:"type"`
	Value       any             `json:"value,omitempty"`
	Options     []string        `json:"options,omitempty"`
	Required    bool            `json:"required"`
	Description string          `json:"description,omitempty"`
	Order       int             `json:"order"`
}

// Clone returns a deep copy of the custom field
func (f CustomField) Clone() CustomField {
	copied := f
	if f.Options != nil {
		copied.Options = make([]string, len(f.Options))
		copy(copied.Options, f.Options)
	}
	copied.Value = cloneValue(f.Value)
	return copied
}

// cloneValue deep-copies the slice shapes a field value can take; scalar
// values are returned as-is
func cloneValue(v any) any {
	switch val := v.(type) {
	case []string:
		s := make([]string, len(val))
		copy(s, val)
		return s
	case []any:
		s := make([]any, len(val))
		copy(s, val)
		return s
	default:
		return v
	}
}

// CustomFieldInput is the decoded client payload for a custom field
// definition. A nil Order means the caller did not supply one, in which case
// validation assigns the insertion index.
type CustomFieldInput struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        types.FieldType `json:"type"`
	Value       any             `json:"value"`
	Options     []string        `json:"options"`
	Required    bool            `json:"required"`
	Description string          `json:"description"`
	Order       *int            `json:"order"`
}
