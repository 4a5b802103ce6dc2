package auth

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// TokenID identifies a cached session token. For bearer-authenticated
// requests it is the digest of the presented credential.
type TokenID string

// String returns the string representation of the token ID
func (id TokenID) String() string {
	return string(id)
}

// Validate checks if the token ID is valid
func (id TokenID) Validate() error {
	if id == "" {
		return goerr.New("token ID is empty")
	}
	return nil
}

// AnonymousUserID is the subject used when authentication is disabled
const AnonymousUserID = "anonymous"

// Token represents an authenticated principal cached in the repository.
// Sub is the stable user ID used for permission checks.
type Token struct {
	ID        TokenID   `json:"id"`
	Sub       string    `json:"sub"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewToken creates a session token for the given identity with the given
// lifetime
func NewToken(id TokenID, sub, email, name string, ttl time.Duration) *Token {
	now := time.Now().UTC()
	return &Token{
		ID:        id,
		Sub:       sub,
		Email:     email,
		Name:      name,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// NewAnonymousUser creates a token for no-auth development mode
func NewAnonymousUser(uid string) *Token {
	if uid == "" {
		uid = AnonymousUserID
	}
	now := time.Now().UTC()
	return &Token{
		ID:        TokenID("no-auth"),
		Sub:       uid,
		Name:      uid,
		CreatedAt: now,
		ExpiresAt: now.Add(24 * time.Hour),
	}
}

// Validate checks if the token is well-formed
func (t *Token) Validate() error {
	if err := t.ID.Validate(); err != nil {
		return err
	}
	if t.Sub == "" {
		return goerr.New("token subject is empty")
	}
	return nil
}

// IsExpired reports whether the token has expired as of now
func (t *Token) IsExpired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

type ctxTokenKey struct{}

// ContextWithToken embeds the authenticated token into the context
func ContextWithToken(ctx context.Context, token *Token) context.Context {
	return context.WithValue(ctx, ctxTokenKey{}, token)
}

// TokenFromContext extracts the authenticated token from the context
func TokenFromContext(ctx context.Context) (*Token, error) {
	token, ok := ctx.Value(ctxTokenKey{}).(*Token)
	if !ok || token == nil {
		return nil, goerr.New("no authenticated user in context")
	}
	return token, nil
}
