package interfaces

import (
	"context"
	"errors"

	"github.com/nexboard/nexboard/pkg/domain/model"
	"github.com/nexboard/nexboard/pkg/domain/model/auth"
	"github.com/nexboard/nexboard/pkg/domain/types"
)

// ErrNotFound is returned by repository implementations when a record does
// not exist
var ErrNotFound = errors.New("record not found")

// Repository defines the interface for data persistence
type Repository interface {
	Project() ProjectRepository

	// Session token cache for authenticated principals
	PutToken(ctx context.Context, token *auth.Token) error
	GetToken(ctx context.Context, tokenID auth.TokenID) (*auth.Token, error)
	DeleteToken(ctx context.Context, tokenID auth.TokenID) error

	// Close releases underlying client resources
	Close() error
}

// ProjectRepository persists project records and their metadata. The store
// exposes no optimistic-concurrency token: concurrent metadata writes are
// last-write-wins.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) (*model.Project, error)
	Get(ctx context.Context, id types.ProjectID) (*model.Project, error)
	List(ctx context.Context) ([]*model.Project, error)
	Delete(ctx context.Context, id types.ProjectID) error

	// PutMetadata overwrites the project's metadata in full
	PutMetadata(ctx context.Context, id types.ProjectID, metadata *model.ProjectMetadata) error
}
