package types

// FieldID represents the unique identifier for a custom field
type FieldID string

// String returns the string representation of the field ID
func (id FieldID) String() string {
	return string(id)
}

// FieldType represents the type of a custom field
type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeNumber      FieldType = "number"
	FieldTypeDate        FieldType = "date"
	FieldTypeBoolean     FieldType = "boolean"
	FieldTypeSelect      FieldType = "select"
	FieldTypeMultiSelect FieldType = "multiselect"
)

// AllFieldTypes returns all valid field types
func AllFieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText,
		FieldTypeNumber,
		FieldTypeDate,
		FieldTypeBoolean,
		FieldTypeSelect,
		FieldTypeMultiSelect,
	}
}

// IsValid checks if the field type is valid
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeText,
		FieldTypeNumber,
		FieldTypeDate,
		FieldTypeBoolean,
		FieldTypeSelect,
		FieldTypeMultiSelect:
		return true
	default:
		return false
	}
}

// HasOptions reports whether values of this type are constrained to a
// predeclared option list
func (t FieldType) HasOptions() bool {
	return t == FieldTypeSelect || t == FieldTypeMultiSelect
}

// String returns the string representation of the field type
func (t FieldType) String() string {
	return string(t)
}
