package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/nexboard/nexboard/pkg/domain/interfaces"
	"github.com/nexboard/nexboard/pkg/usecase"
	"github.com/nexboard/nexboard/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Auth holds CLI flags for authentication configuration
type Auth struct {
	jwksURL   string
	issuer    string
	audience  string
	noAuthUID string
}

// Flags returns CLI flags for authentication configuration
func (a *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "auth-jwks-url",
			Usage:       "JWKS endpoint used to verify bearer tokens",
			Category:    "Authentication",
			Sources:     cli.EnvVars("NEXBOARD_AUTH_JWKS_URL"),
			Destination: &a.jwksURL,
		},
		&cli.StringFlag{
			Name:        "auth-issuer",
			Usage:       "Expected token issuer (optional)",
			Category:    "Authentication",
			Sources:     cli.EnvVars("NEXBOARD_AUTH_ISSUER"),
			Destination: &a.issuer,
		},
		&cli.StringFlag{
			Name:        "auth-audience",
			Usage:       "Expected token audience (optional)",
			Category:    "Authentication",
			Sources:     cli.EnvVars("NEXBOARD_AUTH_AUDIENCE"),
			Destination: &a.audience,
		},
		&cli.StringFlag{
			Name:        "no-auth",
			Usage:       "Skip authentication and run as the specified user ID (development only). Example: --no-auth=U1234567890",
			Category:    "Authentication",
			Sources:     cli.EnvVars("NEXBOARD_NO_AUTH"),
			Destination: &a.noAuthUID,
		},
	}
}

// Configure builds the authentication use case from the configured flags
func (a *Auth) Configure(repo interfaces.Repository) (usecase.AuthUseCaseInterface, error) {
	if a.noAuthUID != "" {
		logging.Default().Warn("Authentication is DISABLED, running as fixed user",
			"uid", a.noAuthUID,
		)
		return usecase.NewNoAuthnUseCase(a.noAuthUID), nil
	}

	if a.jwksURL == "" {
		return nil, goerr.New("auth-jwks-url is required unless --no-auth is set")
	}

	return usecase.NewAuthUseCase(repo, a.jwksURL, a.issuer, a.audience), nil
}
