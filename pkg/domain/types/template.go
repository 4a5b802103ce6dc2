package types

import "fmt"

// TemplateType represents a project type tag that selects a template preset
type TemplateType string

const (
	TemplateTypeConstruction TemplateType = "construction"
	TemplateTypeSoftware     TemplateType = "software"
	TemplateTypeMarketing    TemplateType = "marketing"
	TemplateTypeEvent        TemplateType = "event"
	TemplateTypeDesign       TemplateType = "design"
	TemplateTypeConsulting   TemplateType = "consulting"
	TemplateTypeOther        TemplateType = "other"
)

// AllTemplateTypes returns all valid template types
func AllTemplateTypes() []TemplateType {
	return []TemplateType{
		TemplateTypeConstruction,
		TemplateTypeSoftware,
		TemplateTypeMarketing,
		TemplateTypeEvent,
		TemplateTypeDesign,
		TemplateTypeConsulting,
		TemplateTypeOther,
	}
}

// IsValid checks if the template type is valid
func (t TemplateType) IsValid() bool {
	switch t {
	case TemplateTypeConstruction,
		TemplateTypeSoftware,
		TemplateTypeMarketing,
		TemplateTypeEvent,
		TemplateTypeDesign,
		TemplateTypeConsulting,
		TemplateTypeOther:
		return true
	default:
		return false
	}
}

// String returns the string representation of the template type
func (t TemplateType) String() string {
	return string(t)
}

// ParseTemplateType parses a string into a TemplateType
func ParseTemplateType(s string) (TemplateType, error) {
	tt := TemplateType(s)
	if !tt.IsValid() {
		return "", fmt.Errorf("invalid template type: %s", s)
	}
	return tt, nil
}
