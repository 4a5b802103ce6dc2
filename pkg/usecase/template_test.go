package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nexboard/nexboard/pkg/domain/types"
	"github.com/nexboard/nexboard/pkg/repository/memory"
	"github.com/nexboard/nexboard/pkg/usecase"
)

func TestListTemplates(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()

	t.Run("full catalog with enumerations", func(t *testing.T) {
		view, err := uc.Template.ListTemplates(ctx, "")
		gt.NoError(t, err).Required()

		gt.Array(t, view.Templates).Length(len(types.AllTemplateTypes()))
		gt.Array(t, view.Enumerations.TemplateTypes).Equal(types.AllTemplateTypes())
		gt.Array(t, view.Enumerations.FieldTypes).Equal(types.AllFieldTypes())
		gt.Array(t, view.Enumerations.Currencies).Equal(types.AllCurrencies())
		gt.Array(t, view.Enumerations.NotificationLevels).Equal(types.AllNotificationLevels())
	})

	t.Run("filter restricts to one template", func(t *testing.T) {
		view, err := uc.Template.ListTemplates(ctx, types.TemplateTypeSoftware)
		gt.NoError(t, err).Required()

		gt.Array(t, view.Templates).Length(1).Required()
		gt.Value(t, view.Templates[0].ID).Equal(types.TemplateTypeSoftware)
	})

	t.Run("grouping covers every template", func(t *testing.T) {
		view, err := uc.Template.ListTemplates(ctx, "")
		gt.NoError(t, err).Required()

		total := 0
		for _, templates := range view.ByCategory {
			total += len(templates)
		}
		gt.Value(t, total).Equal(len(view.Templates))
	})
}
