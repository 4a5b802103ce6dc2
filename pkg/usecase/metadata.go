package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nexboard/nexboard/pkg/domain/interfaces"
	"github.com/nexboard/nexboard/pkg/domain/model"
	"github.com/nexboard/nexboard/pkg/domain/model/auth"
	"github.com/nexboard/nexboard/pkg/domain/types"
)

// MetadataUseCase runs the authorize-validate-merge cycle for project
// metadata. Each call is a pure function of (principal, existing metadata,
// payload) plus one read and at most one write through the repository; there
// is no retry and no locking, so concurrent writes to the same project are
// last-write-wins.
type MetadataUseCase struct {
	repo interfaces.Repository
}

func NewMetadataUseCase(repo interfaces.Repository) *MetadataUseCase {
	return &MetadataUseCase{repo: repo}
}

// MetadataPermissions reports what the requesting principal may do with the
// metadata
type MetadataPermissions struct {
	CanEdit bool `json:"canEdit"`
}

// MetadataView is the read model for metadata
type MetadataView struct {
	Metadata    *model.ProjectMetadata `json:"metadata"`
	Permissions MetadataPermissions    `json:"permissions"`
}

// principalFromContext resolves the authenticated principal or fails with
// ErrNotAuthenticated
func principalFromContext(ctx context.Context) (*auth.Token, error) {
	token, err := auth.TokenFromContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(ErrNotAuthenticated, "no principal in request context")
	}
	return token, nil
}

// loadReadable fetches the project and checks read access. A missing project
// and a project the principal may not read produce the same error.
func (uc *MetadataUseCase) loadReadable(ctx context.Context, id types.ProjectID, userID string) (*model.Project, error) {
	project, err := uc.repo.Project().Get(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrProjectNotFound, "project not found", goerr.V(ProjectIDKey, id))
		}
		return nil, goerr.Wrap(err, "failed to load project", goerr.V(ProjectIDKey, id))
	}

	if !project.CanRead(userID) {
		// Reported identically to not-found so project existence does not leak
		return nil, goerr.Wrap(ErrProjectNotFound, "project not found", goerr.V(ProjectIDKey, id))
	}

	return project, nil
}

// metadataOrEmpty never returns nil so merge always has a base
func metadataOrEmpty(p *model.Project) *model.ProjectMetadata {
	if p.Metadata == nil {
		return &model.ProjectMetadata{}
	}
	return p.Metadata
}

// GetMetadata returns the project's metadata together with the caller's edit
// permission
func (uc *MetadataUseCase) GetMetadata(ctx context.Context, id types.ProjectID) (*MetadataView, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	project, err := uc.loadReadable(ctx, id, principal.Sub)
	if err != nil {
		return nil, err
	}

	return &MetadataView{
		Metadata:    metadataOrEmpty(project),
		Permissions: MetadataPermissions{CanEdit: project.CanEdit(principal.Sub)},
	}, nil
}

// PatchMetadata validates the partial payload and shallow-merges it onto the
// existing metadata. Keys absent from the payload are left untouched.
func (uc *MetadataUseCase) PatchMetadata(ctx context.Context, id types.ProjectID, patch *model.MetadataPatch) (*model.ProjectMetadata, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	project, err := uc.loadReadable(ctx, id, principal.Sub)
	if err != nil {
		return nil, err
	}
	if !project.CanEdit(principal.Sub) {
		return nil, goerr.Wrap(ErrPermissionDenied, "metadata edit denied", goerr.V(ProjectIDKey, id))
	}

	update, err := model.ValidateMetadata(patch)
	if err != nil {
		return nil, err
	}

	merged := model.Patch(metadataOrEmpty(project), update, principal.Sub)
	if err := uc.repo.Project().PutMetadata(ctx, id, merged); err != nil {
		return nil, goerr.Wrap(err, "failed to persist metadata", goerr.V(ProjectIDKey, id))
	}

	return merged, nil
}

// ReplaceMetadata validates the full payload and substitutes it for the
// existing metadata
func (uc *MetadataUseCase) ReplaceMetadata(ctx context.Context, id types.ProjectID, payload *model.MetadataPatch) (*model.ProjectMetadata, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	project, err := uc.loadReadable(ctx, id, principal.Sub)
	if err != nil {
		return nil, err
	}
	if !project.CanEdit(principal.Sub) {
		return nil, goerr.Wrap(ErrPermissionDenied, "metadata edit denied", goerr.V(ProjectIDKey, id))
	}

	update, err := model.ValidateMetadata(payload)
	if err != nil {
		return nil, err
	}

	replaced := model.Replace(metadataOrEmpty(project), update, principal.Sub)
	if err := uc.repo.Project().PutMetadata(ctx, id, replaced); err != nil {
		return nil, goerr.Wrap(err, "failed to persist metadata", goerr.V(ProjectIDKey, id))
	}

	return replaced, nil
}
