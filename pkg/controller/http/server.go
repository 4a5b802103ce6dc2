package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nexboard/nexboard/pkg/usecase"
)

// Server routes the metadata engine's operations over HTTP. Handlers stay
// thin: decode, delegate to a use case, respond.
type Server struct {
	router *chi.Mux
	authUC usecase.AuthUseCaseInterface
}

type Options func(*Server)

// WithAuth sets the authentication use case used for protected routes
func WithAuth(authUC usecase.AuthUseCaseInterface) Options {
	return func(s *Server) {
		s.authUC = authUC
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		authUC: uc.Auth,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		// Read-only catalog; unauthenticated callers are allowed
		r.Get("/templates", listTemplatesHandler(uc.Template))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware(s.authUC))

			r.Post("/projects", createProjectHandler(uc.Project))
			r.Get("/projects/{projectID}", getProjectHandler(uc.Project))

			r.Route("/projects/{projectID}/metadata", func(r chi.Router) {
				r.Get("/", getMetadataHandler(uc.Metadata))
				r.Patch("/", patchMetadataHandler(uc.Metadata))
				r.Put("/", replaceMetadataHandler(uc.Metadata))
			})

			r.Route("/projects/{projectID}/milestones", func(r chi.Router) {
				r.Get("/", getMilestonesHandler(uc.Metadata))
				r.Put("/", replaceMilestonesHandler(uc.Metadata))
			})

			r.Route("/projects/{projectID}/custom-fields", func(r chi.Router) {
				r.Get("/", getCustomFieldsHandler(uc.Metadata))
				r.Put("/", replaceCustomFieldsHandler(uc.Metadata))
				r.Patch("/values", patchFieldValuesHandler(uc.Metadata))
			})
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
