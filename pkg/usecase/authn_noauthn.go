package usecase

import (
	"context"

	"github.com/nexboard/nexboard/pkg/domain/model/auth"
)

// NoAuthnUseCase provides authentication as a fixed user (for development
// and testing)
type NoAuthnUseCase struct {
	uid string
}

// NewNoAuthnUseCase creates a NoAuthnUseCase acting as the given user ID
func NewNoAuthnUseCase(uid string) *NoAuthnUseCase {
	return &NoAuthnUseCase{uid: uid}
}

// Authenticate always returns a principal for the configured user,
// regardless of the presented credential
func (uc *NoAuthnUseCase) Authenticate(ctx context.Context, credential string) (*auth.Token, error) {
	return auth.NewAnonymousUser(uc.uid), nil
}

// IsNoAuthn returns true for NoAuthnUseCase
func (uc *NoAuthnUseCase) IsNoAuthn() bool {
	return true
}
