package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nexboard/nexboard/pkg/domain/model"
	"github.com/nexboard/nexboard/pkg/domain/types"
)

func TestValidateFieldValueRequired(t *testing.T) {
	def := model.CustomField{
		ID:       "permit-status",
		Name:     "Permit Status",
		Type:     types.FieldTypeSelect,
		Required: true,
		Options:  []string{"Pending", "Approved"},
	}

	t.Run("empty value fails for required field", func(t *testing.T) {
		_, err := model.ValidateFieldValue(def, nil)
		gt.Error(t, err)
		gt.Value(t, err.Error()).Equal("field 'Permit Status' is required")

		_, err = model.ValidateFieldValue(def, "")
		gt.Error(t, err)
	})

	t.Run("empty value passes for optional field", func(t *testing.T) {
		optional := def
		optional.Required = false

		v, err := model.ValidateFieldValue(optional, nil)
		gt.NoError(t, err)
		gt.Value(t, v).Equal(nil)
	})
}

func TestValidateFieldValueText(t *testing.T) {
	def := model.CustomField{ID: "notes", Name: "Notes", Type: types.FieldTypeText}

	t.Run("string passes through", func(t *testing.T) {
		v, err := model.ValidateFieldValue(def, "hello")
		gt.NoError(t, err)
		gt.Value(t, v).Equal("hello")
	})

	t.Run("non-string is coerced", func(t *testing.T) {
		v, err := model.ValidateFieldValue(def, float64(42))
		gt.NoError(t, err)
		gt.Value(t, v).Equal("42")
	})
}

func TestValidateFieldValueNumber(t *testing.T) {
	def := model.CustomField{ID: "score", Name: "Score", Type: types.FieldTypeNumber}

	t.Run("accepts numeric values", func(t *testing.T) {
		v, err := model.ValidateFieldValue(def, float64(85))
		gt.NoError(t, err)
		gt.Value(t, v).Equal(float64(85))
	})

	t.Run("coerces numeric strings", func(t *testing.T) {
		v, err := model.ValidateFieldValue(def, " 3.5 ")
		gt.NoError(t, err)
		gt.Value(t, v).Equal(3.5)
	})

	t.Run("coerces booleans", func(t *testing.T) {
		v, err := model.ValidateFieldValue(def, true)
		gt.NoError(t, err)
		gt.Value(t, v).Equal(float64(1))
	})

	t.Run("rejects non-numeric strings", func(t *testing.T) {
		_, err := model.ValidateFieldValue(def, "abc")
		gt.Error(t, err)
		gt.Value(t, err.Error()).Equal("field 'Score' must be a number")
	})

	t.Run("rejects arrays", func(t *testing.T) {
		_, err := model.ValidateFieldValue(def, []any{1, 2})
		gt.Error(t, err)
	})
}

func TestValidateFieldValueDate(t *testing.T) {
	def := model.CustomField{ID: "due", Name: "Due", Type: types.FieldTypeDate}

	t.Run("accepts YYYY-MM-DD", func(t *testing.T) {
		v, err := model.ValidateFieldValue(def, "2026-03-15")
		gt.NoError(t, err)
		gt.Value(t, v).Equal("2026-03-15")
	})

	t.Run("rejects other formats", func(t *testing.T) {
		for _, raw := range []any{"2026-3-15", "15/03/2026", "tomorrow", float64(20260315)} {
			_, err := model.ValidateFieldValue(def, raw)
			gt.Error(t, err)
			gt.Value(t, err.Error()).Equal("field 'Due' must be a valid date (YYYY-MM-DD)")
		}
	})
}

func TestValidateFieldValueBoolean(t *testing.T) {
	def := model.CustomField{ID: "done", Name: "Done", Type: types.FieldTypeBoolean}

	t.Run("bool passes through", func(t *testing.T) {
		v, err := model.ValidateFieldValue(def, false)
		gt.NoError(t, err)
		gt.Value(t, v).Equal(false)
	})

	t.Run("non-empty string is truthy", func(t *testing.T) {
		v, err := model.ValidateFieldValue(def, "false")
		gt.NoError(t, err)
		gt.Value(t, v).Equal(true)
	})

	t.Run("zero is falsy", func(t *testing.T) {
		v, err := model.ValidateFieldValue(def, float64(0))
		gt.NoError(t, err)
		gt.Value(t, v).Equal(false)
	})
}

func TestValidateFieldValueSelect(t *testing.T) {
	def := model.CustomField{
		ID:      "status",
		Name:    "Status",
		Type:    types.FieldTypeSelect,
		Options: []string{"Pending", "Approved", "Denied"},
	}

	t.Run("member of options passes", func(t *testing.T) {
		v, err := model.ValidateFieldValue(def, "Approved")
		gt.NoError(t, err)
		gt.Value(t, v).Equal("Approved")
	})

	t.Run("non-member fails with option list", func(t *testing.T) {
		_, err := model.ValidateFieldValue(def, "Rejected")
		gt.Error(t, err)
		gt.Value(t, err.Error()).Equal("field 'Status' must be one of: Pending, Approved, Denied")
	})

	t.Run("non-string fails", func(t *testing.T) {
		_, err := model.ValidateFieldValue(def, float64(1))
		gt.Error(t, err)
	})
}

func TestValidateFieldValueMultiSelect(t *testing.T) {
	def := model.CustomField{
		ID:      "channels",
		Name:    "Channels",
		Type:    types.FieldTypeMultiSelect,
		Options: []string{"Email", "Social", "Search"},
	}

	t.Run("subset of options passes", func(t *testing.T) {
		v, err := model.ValidateFieldValue(def, []any{"Email", "Search"})
		gt.NoError(t, err)
		gt.Value(t, v).Equal([]string{"Email", "Search"})
	})

	t.Run("string slice is accepted", func(t *testing.T) {
		v, err := model.ValidateFieldValue(def, []string{"Social"})
		gt.NoError(t, err)
		gt.Value(t, v).Equal([]string{"Social"})
	})

	t.Run("empty selection passes", func(t *testing.T) {
		v, err := model.ValidateFieldValue(def, []any{})
		gt.NoError(t, err)
		gt.Value(t, v).Equal([]string{})
	})

	t.Run("invalid members are all reported", func(t *testing.T) {
		_, err := model.ValidateFieldValue(def, []any{"Z", "Email", "Q"})
		gt.Error(t, err)
		gt.Value(t, err.Error()).Equal("field 'Channels' contains invalid options: Z, Q")
	})

	t.Run("non-array fails", func(t *testing.T) {
		_, err := model.ValidateFieldValue(def, "Email")
		gt.Error(t, err)
		gt.Value(t, err.Error()).Equal("field 'Channels' must be an array")
	})
}
