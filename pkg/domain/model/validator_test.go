package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nexboard/nexboard/pkg/domain/model"
	"github.com/nexboard/nexboard/pkg/domain/types"
)

func fieldErrors(t *testing.T, err error) model.ValidationErrors {
	t.Helper()

	var errs model.ValidationErrors
	gt.Bool(t, errors.As(err, &errs)).True()
	return errs
}

func hasFieldError(errs model.ValidationErrors, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestValidateMetadata(t *testing.T) {
	t.Run("valid full payload normalizes", func(t *testing.T) {
		template := types.TemplateTypeSoftware
		budget := model.Budget{Allocated: 10000, Spent: 2500, Currency: types.CurrencyUSD}
		client := model.Client{Name: "Acme Corp", Email: "ops@acme.example"}
		tags := []string{"alpha", "beta", "alpha"}
		settings := model.Settings{RequireApproval: true}

		update, err := model.ValidateMetadata(&model.MetadataPatch{
			Template: &template,
			Budget:   &budget,
			Client:   &client,
			Tags:     &tags,
			Settings: &settings,
		})
		gt.NoError(t, err).Required()

		gt.Value(t, *update.Template).Equal(types.TemplateTypeSoftware)
		gt.Value(t, update.Budget.Allocated).Equal(float64(10000))
		gt.Value(t, update.Client.Name).Equal("Acme Corp")
		gt.Array(t, *update.Tags).Equal([]string{"alpha", "beta"})
		gt.Value(t, update.Settings.NotificationLevel).Equal(types.NotificationAll)
	})

	t.Run("empty payload is valid", func(t *testing.T) {
		update, err := model.ValidateMetadata(&model.MetadataPatch{})
		gt.NoError(t, err).Required()

		gt.Value(t, update.Template).Nil()
		gt.Value(t, update.Budget).Nil()
	})

	t.Run("invalid values are all reported", func(t *testing.T) {
		template := types.TemplateType("spaceship")
		budget := model.Budget{Allocated: -1, Spent: -2, Currency: "XXX"}
		client := model.Client{Email: "not-an-email"}

		_, err := model.ValidateMetadata(&model.MetadataPatch{
			Template: &template,
			Budget:   &budget,
			Client:   &client,
		})
		gt.Error(t, err).Required()

		errs := fieldErrors(t, err)
		gt.Bool(t, hasFieldError(errs, "template")).True()
		gt.Bool(t, hasFieldError(errs, "budget.allocated")).True()
		gt.Bool(t, hasFieldError(errs, "budget.spent")).True()
		gt.Bool(t, hasFieldError(errs, "budget.currency")).True()
		gt.Bool(t, hasFieldError(errs, "client.name")).True()
		gt.Bool(t, hasFieldError(errs, "client.email")).True()
	})

	t.Run("invalid notification level", func(t *testing.T) {
		settings := model.Settings{NotificationLevel: "loud"}

		_, err := model.ValidateMetadata(&model.MetadataPatch{Settings: &settings})
		gt.Error(t, err).Required()

		errs := fieldErrors(t, err)
		gt.Bool(t, hasFieldError(errs, "settings.notificationLevel")).True()
	})

	t.Run("integration passes through unvalidated", func(t *testing.T) {
		integration := model.Integration{Repository: "git@example.com:acme/site.git"}

		update, err := model.ValidateMetadata(&model.MetadataPatch{Integration: &integration})
		gt.NoError(t, err).Required()
		gt.Value(t, update.Integration.Repository).Equal(integration.Repository)
	})
}

func TestValidateMilestones(t *testing.T) {
	t.Run("valid milestones pass", func(t *testing.T) {
		err := model.ValidateMilestones([]model.Milestone{
			{Name: "Kickoff", Date: "2026-01-15"},
			{Name: "Launch", Date: "2026-06-01", Completed: true},
		})
		gt.NoError(t, err)
	})

	t.Run("missing name and bad date are reported per index", func(t *testing.T) {
		err := model.ValidateMilestones([]model.Milestone{
			{Name: "  ", Date: "2026-01-15"},
			{Name: "Launch", Date: "June 1st"},
		})
		gt.Error(t, err).Required()

		errs := fieldErrors(t, err)
		gt.Bool(t, hasFieldError(errs, "milestones[0].name")).True()
		gt.Bool(t, hasFieldError(errs, "milestones[1].date")).True()
	})
}

func TestValidateCustomFields(t *testing.T) {
	t.Run("missing ID gets generated, missing order gets index", func(t *testing.T) {
		fields, err := model.ValidateCustomFields([]model.CustomFieldInput{
			{Name: "First", Type: types.FieldTypeText},
			{Name: "Second", Type: types.FieldTypeNumber},
		})
		gt.NoError(t, err).Required()

		gt.Array(t, fields).Length(2).Required()
		gt.Value(t, fields[0].ID).NotEqual("")
		gt.Value(t, fields[0].Order).Equal(0)
		gt.Value(t, fields[1].Order).Equal(1)
	})

	t.Run("explicit order wins", func(t *testing.T) {
		order := 7
		fields, err := model.ValidateCustomFields([]model.CustomFieldInput{
			{Name: "First", Type: types.FieldTypeText, Order: &order},
		})
		gt.NoError(t, err).Required()
		gt.Value(t, fields[0].Order).Equal(7)
	})

	t.Run("duplicate IDs are rejected", func(t *testing.T) {
		_, err := model.ValidateCustomFields([]model.CustomFieldInput{
			{ID: "dup", Name: "First", Type: types.FieldTypeText},
			{ID: "dup", Name: "Second", Type: types.FieldTypeText},
		})
		gt.Error(t, err).Required()

		errs := fieldErrors(t, err)
		gt.Bool(t, hasFieldError(errs, "customFields[1].id")).True()
	})

	t.Run("select requires options", func(t *testing.T) {
		_, err := model.ValidateCustomFields([]model.CustomFieldInput{
			{Name: "Status", Type: types.FieldTypeSelect},
		})
		gt.Error(t, err).Required()

		errs := fieldErrors(t, err)
		gt.Bool(t, hasFieldError(errs, "customFields[0].options")).True()
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := model.ValidateCustomFields([]model.CustomFieldInput{
			{Name: "Weird", Type: "rating"},
		})
		gt.Error(t, err).Required()

		errs := fieldErrors(t, err)
		gt.Bool(t, hasFieldError(errs, "customFields[0].type")).True()
	})

	t.Run("inline values are validated", func(t *testing.T) {
		_, err := model.ValidateCustomFields([]model.CustomFieldInput{
			{Name: "Score", Type: types.FieldTypeNumber, Value: "abc"},
		})
		gt.Error(t, err).Required()

		errs := fieldErrors(t, err)
		gt.Bool(t, hasFieldError(errs, "customFields[0].value")).True()
	})

	t.Run("required field without value is accepted as a definition", func(t *testing.T) {
		fields, err := model.ValidateCustomFields([]model.CustomFieldInput{
			{
				Name:     "Permit Status",
				Type:     types.FieldTypeSelect,
				Required: true,
				Options:  []string{"Pending", "Approved"},
			},
		})
		gt.NoError(t, err).Required()
		gt.Value(t, fields[0].Value).Equal(nil)
	})
}

func TestValidateFieldValues(t *testing.T) {
	defs := []model.CustomField{
		{ID: "status", Name: "Status", Type: types.FieldTypeSelect, Options: []string{"Open", "Closed"}},
		{ID: "score", Name: "Score", Type: types.FieldTypeNumber},
	}

	t.Run("valid values are coerced", func(t *testing.T) {
		out, err := model.ValidateFieldValues(defs, map[string]any{
			"status": "Open",
			"score":  "12",
		})
		gt.NoError(t, err).Required()

		gt.Value(t, out["status"]).Equal("Open")
		gt.Value(t, out["score"]).Equal(float64(12))
	})

	t.Run("unknown field ID is rejected", func(t *testing.T) {
		_, err := model.ValidateFieldValues(defs, map[string]any{
			"priority": "high",
		})
		gt.Error(t, err).Required()

		errs := fieldErrors(t, err)
		gt.Array(t, []model.FieldError(errs)).Length(1).Required()
		gt.Value(t, errs[0].Message).Equal("custom field 'priority' not found")
	})

	t.Run("errors aggregate per field", func(t *testing.T) {
		_, err := model.ValidateFieldValues(defs, map[string]any{
			"status": "Pending",
			"score":  "abc",
		})
		gt.Error(t, err).Required()

		errs := fieldErrors(t, err)
		gt.Bool(t, hasFieldError(errs, "status")).True()
		gt.Bool(t, hasFieldError(errs, "score")).True()
	})
}
