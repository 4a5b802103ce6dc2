package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nexboard/nexboard/pkg/domain/model"
	"github.com/nexboard/nexboard/pkg/domain/types"
)

func baseMetadata() *model.ProjectMetadata {
	return &model.ProjectMetadata{
		Template: types.TemplateTypeSoftware,
		Budget:   &model.Budget{Allocated: 5000, Currency: types.CurrencyUSD},
		Tags:     []string{"alpha"},
		Milestones: []model.Milestone{
			{Name: "Kickoff", Date: "2026-01-15"},
		},
		CustomFields: []model.CustomField{
			{ID: "status", Name: "Status", Type: types.FieldTypeSelect, Options: []string{"Open", "Closed"}, Value: "Open"},
			{ID: "score", Name: "Score", Type: types.FieldTypeNumber, Value: float64(3), Order: 1},
		},
	}
}

func TestPatch(t *testing.T) {
	t.Run("untouched keys survive", func(t *testing.T) {
		existing := baseMetadata()
		tags := []string{"beta", "gamma"}

		merged := model.Patch(existing, &model.MetadataUpdate{Tags: &tags}, "user-1")

		gt.Array(t, merged.Tags).Equal([]string{"beta", "gamma"})
		gt.Value(t, merged.Template).Equal(types.TemplateTypeSoftware)
		gt.Value(t, merged.Budget.Allocated).Equal(float64(5000))
		gt.Array(t, merged.Milestones).Length(1)
	})

	t.Run("present keys overwrite wholesale", func(t *testing.T) {
		existing := baseMetadata()
		milestones := []model.Milestone{
			{Name: "Redesign", Date: "2026-09-01"},
			{Name: "Ship", Date: "2026-12-01"},
		}

		merged := model.Patch(existing, &model.MetadataUpdate{Milestones: &milestones}, "user-1")

		gt.Array(t, merged.Milestones).Length(2)
		gt.Value(t, merged.Milestones[0].Name).Equal("Redesign")
	})

	t.Run("existing metadata is not mutated", func(t *testing.T) {
		existing := baseMetadata()
		tags := []string{"beta"}

		_ = model.Patch(existing, &model.MetadataUpdate{Tags: &tags}, "user-1")

		gt.Array(t, existing.Tags).Equal([]string{"alpha"})
		gt.Value(t, existing.LastModifiedBy).Equal("")
	})

	t.Run("provenance stamps are set", func(t *testing.T) {
		merged := model.Patch(baseMetadata(), &model.MetadataUpdate{}, "user-1")

		gt.Value(t, merged.LastModifiedBy).Equal("user-1")
		gt.Bool(t, merged.LastModified.IsZero()).False()
	})

	t.Run("nil base merges onto empty", func(t *testing.T) {
		tags := []string{"solo"}

		merged := model.Patch(nil, &model.MetadataUpdate{Tags: &tags}, "user-1")

		gt.Array(t, merged.Tags).Equal([]string{"solo"})
	})
}

func TestReplace(t *testing.T) {
	t.Run("unmentioned keys are dropped", func(t *testing.T) {
		existing := baseMetadata()
		tags := []string{"fresh"}

		replaced := model.Replace(existing, &model.MetadataUpdate{Tags: &tags}, "user-2")

		gt.Array(t, replaced.Tags).Equal([]string{"fresh"})
		gt.Value(t, replaced.Template).Equal(types.TemplateType(""))
		gt.Value(t, replaced.Budget).Nil()
		gt.Array(t, replaced.Milestones).Length(0)
		gt.Value(t, replaced.LastModifiedBy).Equal("user-2")
	})
}

func TestPatchFieldValues(t *testing.T) {
	t.Run("only values of matching fields change", func(t *testing.T) {
		existing := baseMetadata()

		merged := model.PatchFieldValues(existing, map[string]any{
			"status": "Closed",
		}, "user-3")

		gt.Value(t, merged.CustomFields[0].Value).Equal("Closed")
		gt.Value(t, merged.CustomFields[0].Name).Equal("Status")
		gt.Array(t, merged.CustomFields[0].Options).Equal([]string{"Open", "Closed"})
		gt.Value(t, merged.CustomFields[1].Value).Equal(float64(3))
		gt.Value(t, merged.LastModifiedBy).Equal("user-3")
	})

	t.Run("definitions and unrelated sections survive", func(t *testing.T) {
		existing := baseMetadata()

		merged := model.PatchFieldValues(existing, map[string]any{
			"score": float64(9),
		}, "user-3")

		gt.Array(t, merged.CustomFields).Length(2)
		gt.Value(t, merged.CustomFields[1].Order).Equal(1)
		gt.Value(t, merged.Template).Equal(types.TemplateTypeSoftware)
		gt.Value(t, merged.Budget.Allocated).Equal(float64(5000))
	})
}
