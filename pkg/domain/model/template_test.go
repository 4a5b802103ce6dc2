package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nexboard/nexboard/pkg/domain/model"
	"github.com/nexboard/nexboard/pkg/domain/types"
)

func TestTemplateCatalog(t *testing.T) {
	catalog := model.NewTemplateCatalog()

	t.Run("every template type has a built-in", func(t *testing.T) {
		all := types.AllTemplateTypes()
		gt.Array(t, catalog.List("")).Length(len(all))

		for _, id := range all {
			tpl, err := catalog.Get(id)
			gt.NoError(t, err).Required()
			gt.Value(t, tpl.ID).Equal(id)
			gt.Value(t, tpl.Name).NotEqual("")
		}
	})

	t.Run("construction preset defines a required permit field", func(t *testing.T) {
		tpl, err := catalog.Get(types.TemplateTypeConstruction)
		gt.NoError(t, err).Required()
		gt.Value(t, tpl.DefaultMetadata).NotNil().Required()

		fields := *tpl.DefaultMetadata.CustomFields
		var permit *model.CustomFieldInput
		for i := range fields {
			if fields[i].ID == "permit-status" {
				permit = &fields[i]
			}
		}

		gt.Value(t, permit).NotNil().Required()
		gt.Value(t, permit.Type).Equal(types.FieldTypeSelect)
		gt.Bool(t, permit.Required).True()
		gt.Array(t, permit.Options).Equal([]string{"Pending", "Approved", "Denied", "Under Review"})
	})

	t.Run("unknown ID returns not found", func(t *testing.T) {
		_, err := catalog.Get("spaceship")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, model.ErrTemplateNotFound)).True()
	})

	t.Run("list filter restricts to one ID", func(t *testing.T) {
		templates := catalog.List(types.TemplateTypeEvent)
		gt.Array(t, templates).Length(1).Required()
		gt.Value(t, templates[0].ID).Equal(types.TemplateTypeEvent)
	})

	t.Run("group by category keeps order within groups", func(t *testing.T) {
		grouped := model.GroupByCategory(catalog.List(""))

		total := 0
		for _, templates := range grouped {
			total += len(templates)
		}
		gt.Value(t, total).Equal(len(types.AllTemplateTypes()))
	})
}

func TestTemplateCatalogRegister(t *testing.T) {
	t.Run("rejects unknown template type", func(t *testing.T) {
		catalog := model.NewTemplateCatalog()

		err := catalog.Register(&model.Template{ID: "spaceship", Name: "Spaceship"})
		gt.Error(t, err)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		catalog := model.NewTemplateCatalog()

		err := catalog.Register(&model.Template{ID: types.TemplateTypeOther})
		gt.Error(t, err)
	})

	t.Run("rejects invalid default metadata", func(t *testing.T) {
		catalog := model.NewTemplateCatalog()
		badTemplate := types.TemplateType("spaceship")

		err := catalog.Register(&model.Template{
			ID:              types.TemplateTypeOther,
			Name:            "Broken",
			DefaultMetadata: &model.MetadataPatch{Template: &badTemplate},
		})
		gt.Error(t, err)
	})

	t.Run("re-registering replaces without growing the list", func(t *testing.T) {
		catalog := model.NewTemplateCatalog()
		before := len(catalog.List(""))

		err := catalog.Register(&model.Template{
			ID:   types.TemplateTypeOther,
			Name: "Custom Blank",
		})
		gt.NoError(t, err).Required()

		gt.Array(t, catalog.List("")).Length(before)
		tpl, err := catalog.Get(types.TemplateTypeOther)
		gt.NoError(t, err).Required()
		gt.Value(t, tpl.Name).Equal("Custom Blank")
	})
}
