package usecase

import (
	"github.com/nexboard/nexboard/pkg/domain/interfaces"
	"github.com/nexboard/nexboard/pkg/domain/model"
)

type UseCases struct {
	repo    interfaces.Repository
	catalog *model.TemplateCatalog

	Project  *ProjectUseCase
	Metadata *MetadataUseCase
	Template *TemplateUseCase
	Auth     AuthUseCaseInterface
}

type Option func(*UseCases)

// WithCatalog replaces the default built-in template catalog
func WithCatalog(catalog *model.TemplateCatalog) Option {
	return func(uc *UseCases) {
		uc.catalog = catalog
	}
}

// WithAuth sets the authentication use case
func WithAuth(auth AuthUseCaseInterface) Option {
	return func(uc *UseCases) {
		uc.Auth = auth
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:    repo,
		catalog: model.NewTemplateCatalog(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Project = NewProjectUseCase(repo, uc.catalog)
	uc.Metadata = NewMetadataUseCase(repo)
	uc.Template = NewTemplateUseCase(uc.catalog)

	return uc
}
