package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nexboard/nexboard/pkg/domain/interfaces"
	"github.com/nexboard/nexboard/pkg/domain/model"
	"github.com/nexboard/nexboard/pkg/domain/types"
)

// ProjectUseCase creates and reads project records. Creation optionally
// seeds metadata from a template preset; seeding shares the ordinary
// validate-then-merge path, there is no separate code path for templates.
type ProjectUseCase struct {
	repo    interfaces.Repository
	catalog *model.TemplateCatalog
}

func NewProjectUseCase(repo interfaces.Repository, catalog *model.TemplateCatalog) *ProjectUseCase {
	return &ProjectUseCase{
		repo:    repo,
		catalog: catalog,
	}
}

// CreateProject creates a project owned by the requesting principal. When a
// template ID is given, the template's default metadata is validated and
// applied as the project's initial metadata.
func (uc *ProjectUseCase) CreateProject(ctx context.Context, name string, templateID types.TemplateType) (*model.Project, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if name == "" {
		return nil, model.ValidationErrors{{Field: "name", Message: "is required"}}
	}

	project := &model.Project{
		Name:    name,
		OwnerID: principal.Sub,
	}

	if templateID != "" {
		tpl, err := uc.catalog.Get(templateID)
		if err != nil {
			return nil, goerr.Wrap(err, "unknown template", goerr.V(TemplateIDKey, templateID))
		}
		if tpl.DefaultMetadata != nil {
			update, err := model.ValidateMetadata(tpl.DefaultMetadata)
			if err != nil {
				return nil, goerr.Wrap(err, "template default metadata is invalid", goerr.V(TemplateIDKey, templateID))
			}
			project.Metadata = model.Replace(&model.ProjectMetadata{}, update, principal.Sub)
		}
	}

	created, err := uc.repo.Project().Create(ctx, project)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create project")
	}

	return created, nil
}

// GetProject returns the project record for principals with read access
func (uc *ProjectUseCase) GetProject(ctx context.Context, id types.ProjectID) (*model.Project, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	project, err := uc.repo.Project().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrProjectNotFound, "project not found", goerr.V(ProjectIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to load project", goerr.V(ProjectIDKey, id))
	}

	if !project.CanRead(principal.Sub) {
		return nil, goerr.Wrap(ErrProjectNotFound, "project not found", goerr.V(ProjectIDKey, id))
	}

	return project, nil
}
