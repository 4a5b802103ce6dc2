package usecase

import (
	"context"

	"github.com/nexboard/nexboard/pkg/domain/model"
	"github.com/nexboard/nexboard/pkg/domain/types"
)

// TemplateUseCase serves the read-only template catalog. Listing templates
// requires no authentication.
type TemplateUseCase struct {
	catalog *model.TemplateCatalog
}

func NewTemplateUseCase(catalog *model.TemplateCatalog) *TemplateUseCase {
	return &TemplateUseCase{catalog: catalog}
}

// Enumerations lists the fixed value sets clients need to render metadata
// forms
type Enumerations struct {
	TemplateTypes      []types.TemplateType      `json:"templateTypes"`
	Currencies         []types.Currency          `json:"currencies"`
	FieldTypes         []types.FieldType         `json:"fieldTypes"`
	NotificationLevels []types.NotificationLevel `json:"notificationLevels"`
}

// TemplatesView is the read model for the template catalog
type TemplatesView struct {
	Templates    []*model.Template            `json:"templates"`
	ByCategory   map[string][]*model.Template `json:"byCategory"`
	Enumerations Enumerations                 `json:"enumerations"`
}

// ListTemplates returns the catalog, optionally filtered to one template ID,
// grouped by category, together with the fixed enumerations
func (uc *TemplateUseCase) ListTemplates(ctx context.Context, filterID types.TemplateType) (*TemplatesView, error) {
	templates := uc.catalog.List(filterID)

	return &TemplatesView{
		Templates:  templates,
		ByCategory: model.GroupByCategory(templates),
		Enumerations: Enumerations{
			TemplateTypes:      types.AllTemplateTypes(),
			Currencies:         types.AllCurrencies(),
			FieldTypes:         types.AllFieldTypes(),
			NotificationLevels: types.AllNotificationLevels(),
		},
	}, nil
}
