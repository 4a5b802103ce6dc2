package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nexboard/nexboard/pkg/domain/types"
)

// fieldRule validates and coerces a raw value for one field type
type fieldRule func(def CustomField, raw any) (any, error)

// fieldRules maps each field type to its validation rule. Adding a field
// type means adding exactly one entry here.
var fieldRules = map[types.FieldType]fieldRule{
	types.FieldTypeText:        validateTextValue,
	types.FieldTypeNumber:      validateNumberValue,
	types.FieldTypeDate:        validateDateValue,
	types.FieldTypeBoolean:     validateBooleanValue,
	types.FieldTypeSelect:      validateSelectValue,
	types.FieldTypeMultiSelect: validateMultiSelectValue,
}

// ValidateFieldValue validates a single raw value against a field
// definition and returns the coerced value. It is pure: no side effects, and
// failure is always a single error tied to the field's name. Callers
// aggregate one error per offending field.
func ValidateFieldValue(def CustomField, raw any) (any, error) {
	if isEmptyValue(raw) {
		if def.Required {
			return nil, goerr.New(fmt.Sprintf("field '%s' is required", def.Name))
		}
		// Empty values are legal for optional fields
		return raw, nil
	}

	rule, ok := fieldRules[def.Type]
	if !ok {
		return nil, goerr.New(fmt.Sprintf("field '%s' has unsupported type '%s'", def.Name, def.Type))
	}

	return rule(def, raw)
}

// isEmptyValue reports whether a raw value counts as absent: nil or the
// empty string
func isEmptyValue(raw any) bool {
	if raw == nil {
		return true
	}
	if s, ok := raw.(string); ok {
		return s == ""
	}
	return false
}

func validateTextValue(def CustomField, raw any) (any, error) {
	if s, ok := raw.(string); ok {
		return s, nil
	}
	return fmt.Sprint(raw), nil
}

func validateNumberValue(def CustomField, raw any) (any, error) {
	n, ok := toNumber(raw)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, goerr.New(fmt.Sprintf("field '%s' must be a number", def.Name))
	}
	return n, nil
}

func toNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func validateDateValue(def CustomField, raw any) (any, error) {
	s, ok := raw.(string)
	if !ok || !datePattern.MatchString(s) {
		return nil, goerr.New(fmt.Sprintf("field '%s' must be a valid date (YYYY-MM-DD)", def.Name))
	}
	return s, nil
}

func validateBooleanValue(def CustomField, raw any) (any, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		return v != "", nil
	default:
		if n, ok := toNumber(raw); ok {
			return n != 0, nil
		}
		return true, nil
	}
}

func validateSelectValue(def CustomField, raw any) (any, error) {
	s, ok := raw.(string)
	if ok {
		for _, opt := range def.Options {
			if opt == s {
				return s, nil
			}
		}
	}
	return nil, goerr.New(fmt.Sprintf("field '%s' must be one of: %s", def.Name, strings.Join(def.Options, ", ")))
}

func validateMultiSelectValue(def CustomField, raw any) (any, error) {
	var items []any
	switch v := raw.(type) {
	case []string:
		items = make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
	case []any:
		items = v
	default:
		return nil, goerr.New(fmt.Sprintf("field '%s' must be an array", def.Name))
	}

	valid := make(map[string]bool, len(def.Options))
	for _, opt := range def.Options {
		valid[opt] = true
	}

	selected := make([]string, 0, len(items))
	var invalid []string
	for _, item := range items {
		s, ok := item.(string)
		if !ok || !valid[s] {
			invalid = append(invalid, fmt.Sprint(item))
			continue
		}
		selected = append(selected, s)
	}

	if len(invalid) > 0 {
		return nil, goerr.New(fmt.Sprintf("field '%s' contains invalid options: %s", def.Name, strings.Join(invalid, ", ")))
	}

	return selected, nil
}
