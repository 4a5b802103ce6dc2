package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/nexboard/nexboard/pkg/domain/interfaces"
	"github.com/nexboard/nexboard/pkg/domain/model/auth"
	"github.com/nexboard/nexboard/pkg/utils/errutil"
)

// AuthUseCaseInterface resolves a bearer credential to an authenticated
// principal
type AuthUseCaseInterface interface {
	Authenticate(ctx context.Context, credential string) (*auth.Token, error)
	IsNoAuthn() bool
}

// defaultSessionTTL bounds how long a validated principal is served from the
// repository cache before the credential is re-verified
const defaultSessionTTL = time.Hour

// AuthUseCase verifies bearer JWTs against a JWKS endpoint and caches
// validated principals in the repository keyed by credential digest
type AuthUseCase struct {
	repo     interfaces.Repository
	jwksURL  string
	issuer   string
	audience string
}

func NewAuthUseCase(repo interfaces.Repository, jwksURL, issuer, audience string) *AuthUseCase {
	return &AuthUseCase{
		repo:     repo,
		jwksURL:  jwksURL,
		issuer:   issuer,
		audience: audience,
	}
}

// IsNoAuthn returns false for regular AuthUseCase
func (uc *AuthUseCase) IsNoAuthn() bool {
	return false
}

// Authenticate verifies the bearer credential and returns the principal.
// Verified credentials are cached until their session expires, so the JWKS
// endpoint is only consulted on cache misses.
func (uc *AuthUseCase) Authenticate(ctx context.Context, credential string) (*auth.Token, error) {
	if credential == "" {
		return nil, goerr.Wrap(ErrNotAuthenticated, "no credential presented")
	}

	digest := sha256.Sum256([]byte(credential))
	tokenID := auth.TokenID(hex.EncodeToString(digest[:]))

	if cached, err := uc.repo.GetToken(ctx, tokenID); err == nil {
		if !cached.IsExpired(time.Now().UTC()) {
			return cached, nil
		}
		if err := uc.repo.DeleteToken(ctx, tokenID); err != nil {
			errutil.Handle(ctx, err, "failed to evict expired session token")
		}
	}

	token, err := uc.verifyCredential(ctx, credential, tokenID)
	if err != nil {
		return nil, goerr.Wrap(ErrNotAuthenticated, "credential verification failed", goerr.V("cause", err))
	}

	if err := uc.repo.PutToken(ctx, token); err != nil {
		// Cache write failure degrades performance, not correctness
		errutil.Handle(ctx, err, "failed to cache session token")
	}

	return token, nil
}

// verifyCredential parses and verifies the JWT against the configured key
// set. A 10 second clock skew is tolerated.
func (uc *AuthUseCase) verifyCredential(ctx context.Context, credential string, tokenID auth.TokenID) (*auth.Token, error) {
	keySet, err := jwk.Fetch(ctx, uc.jwksURL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch JWK set", goerr.V("jwks_url", uc.jwksURL))
	}

	parseOpts := []jwt.ParseOption{
		jwt.WithKeySet(keySet),
		jwt.WithValidate(true),
		jwt.WithAcceptableSkew(10 * time.Second),
	}
	if uc.issuer != "" {
		parseOpts = append(parseOpts, jwt.WithIssuer(uc.issuer))
	}
	if uc.audience != "" {
		parseOpts = append(parseOpts, jwt.WithAudience(uc.audience))
	}

	parsed, err := jwt.Parse([]byte(credential), parseOpts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse or verify JWT")
	}

	sub := parsed.Subject()
	if sub == "" {
		return nil, goerr.New("sub claim not found in token")
	}

	var email, name string
	if v, ok := parsed.Get("email"); ok {
		email, _ = v.(string)
	}
	if v, ok := parsed.Get("name"); ok {
		name, _ = v.(string)
	}

	ttl := defaultSessionTTL
	if exp := parsed.Expiration(); !exp.IsZero() {
		if until := time.Until(exp); until < ttl {
			ttl = until
		}
	}

	return auth.NewToken(tokenID, sub, email, name, ttl), nil
}
