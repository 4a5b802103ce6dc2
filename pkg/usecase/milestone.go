package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nexboard/nexboard/pkg/domain/model"
	"github.com/nexboard/nexboard/pkg/domain/types"
)

// MilestonesView is the read model for the milestones sub-resource. Stats
// are derived on every read and write, never stored.
type MilestonesView struct {
	Milestones []model.Milestone    `json:"milestones"`
	Stats      model.MilestoneStats `json:"stats"`
}

func milestonesView(milestones []model.Milestone) *MilestonesView {
	if milestones == nil {
		milestones = []model.Milestone{}
	}
	return &MilestonesView{
		Milestones: milestones,
		Stats:      model.ComputeMilestoneStats(milestones, time.Now().UTC()),
	}
}

// GetMilestones returns the project's milestones with derived stats
func (uc *MetadataUseCase) GetMilestones(ctx context.Context, id types.ProjectID) (*MilestonesView, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	project, err := uc.loadReadable(ctx, id, principal.Sub)
	if err != nil {
		return nil, err
	}

	return milestonesView(metadataOrEmpty(project).Milestones), nil
}

// ReplaceMilestones validates and replaces the milestone list in its
// entirety, returning the new list with recomputed stats
func (uc *MetadataUseCase) ReplaceMilestones(ctx context.Context, id types.ProjectID, milestones []model.Milestone) (*MilestonesView, error) {
	principal, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	project, err := uc.loadReadable(ctx, id, principal.Sub)
	if err != nil {
		return nil, err
	}
	if !project.CanEdit(principal.Sub) {
		return nil, goerr.Wrap(ErrPermissionDenied, "milestone edit denied", goerr.V(ProjectIDKey, id))
	}

	if err := model.ValidateMilestones(milestones); err != nil {
		return nil, err
	}

	update := &model.MetadataUpdate{Milestones: &milestones}
	merged := model.Patch(metadataOrEmpty(project), update, principal.Sub)
	if err := uc.repo.Project().PutMetadata(ctx, id, merged); err != nil {
		return nil, goerr.Wrap(err, "failed to persist milestones", goerr.V(ProjectIDKey, id))
	}

	return milestonesView(merged.Milestones), nil
}
