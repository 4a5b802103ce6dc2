package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nexboard/nexboard/pkg/domain/model"
	"github.com/nexboard/nexboard/pkg/domain/types"
)

// CustomFieldsView is the read model for the custom fields sub-resource
type CustomFieldsView struct {
	CustomFields   []model.CustomField `json:"customFields"`
	AvailableTypes []types.FieldType   `json:"availableTypes"`
}

func customFieldsView(fields []model.CustomField) *CustomFieldsView {
	if fields == nil {
		fields = []model.CustomField{}
	}
	return &CustomFieldsView{
		CustomFields:   fields,
		AvailableTypes: types.AllFieldTypes(),
	}
}

// GetCustomFields returns the project's custom fields and the supported
// field types
func (uc *MetadataUseCase) GetCustomFields(ctx context.Context, id types.ProjectID) (*CustomFieldsView, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	project, err := uc.loadReadable(ctx, id, principal.Sub)
	if err != nil {
		return nil, err
	}

	return customFieldsView(metadataOrEmpty(project).CustomFields), nil
}

// ReplaceCustomFields validates and replaces the field definition list in
// its entirety. Definitions without an ID get a generated one; definitions
// without an explicit order get their insertion index. Redefining the field
// set requires the same privilege as editing metadata.
func (uc *MetadataUseCase) ReplaceCustomFields(ctx context.Context, id types.ProjectID, inputs []model.CustomFieldInput) ([]model.CustomField, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	project, err := uc.loadReadable(ctx, id, principal.Sub)
	if err != nil {
		return nil, err
	}
	if !project.CanEdit(principal.Sub) {
		return nil, goerr.Wrap(ErrPermissionDenied, "custom field definition edit denied", goerr.V(ProjectIDKey, id))
	}

	fields, err := model.ValidateCustomFields(inputs)
	if err != nil {
		return nil, err
	}

	update := &model.MetadataUpdate{CustomFields: &fields}
	merged := model.Patch(metadataOrEmpty(project), update, principal.Sub)
	if err := uc.repo.Project().PutMetadata(ctx, id, merged); err != nil {
		return nil, goerr.Wrap(err, "failed to persist custom fields", goerr.V(ProjectIDKey, id))
	}

	return merged.CustomFields, nil
}

// PatchFieldValues updates only the values of existing custom fields. This
// is a lower-privilege operation than redefining the field set: members may
// do it too. Every submitted ID must reference an existing field.
func (uc *MetadataUseCase) PatchFieldValues(ctx context.Context, id types.ProjectID, values map[string]any) ([]model.CustomField, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	project, err := uc.loadReadable(ctx, id, principal.Sub)
	if err != nil {
		return nil, err
	}
	if !project.CanEditFieldValues(principal.Sub) {
		return nil, goerr.Wrap(ErrPermissionDenied, "custom field value edit denied", goerr.V(ProjectIDKey, id))
	}

	existing := metadataOrEmpty(project)
	validated, err := model.ValidateFieldValues(existing.CustomFields, values)
	if err != nil {
		return nil, err
	}

	merged := model.PatchFieldValues(existing, validated, principal.Sub)
	if err := uc.repo.Project().PutMetadata(ctx, id, merged); err != nil {
		return nil, goerr.Wrap(err, "failed to persist custom field values", goerr.V(ProjectIDKey, id))
	}

	return merged.CustomFields, nil
}
