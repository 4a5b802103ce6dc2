package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nexboard/nexboard/pkg/domain/model/auth"
	"github.com/nexboard/nexboard/pkg/usecase"
)

func TestNoAuthnUseCase(t *testing.T) {
	uc := usecase.NewNoAuthnUseCase("U1234567890")

	t.Run("Authenticate returns the configured user", func(t *testing.T) {
		ctx := context.Background()
		token, err := uc.Authenticate(ctx, "any-credential")
		gt.NoError(t, err).Required()

		gt.Value(t, token.Sub).Equal("U1234567890")
	})

	t.Run("empty UID falls back to anonymous", func(t *testing.T) {
		anon := usecase.NewNoAuthnUseCase("")
		token, err := anon.Authenticate(context.Background(), "")
		gt.NoError(t, err).Required()

		gt.Value(t, token.Sub).Equal(auth.AnonymousUserID)
	})

	t.Run("IsNoAuthn returns true", func(t *testing.T) {
		gt.Bool(t, uc.IsNoAuthn()).True()
	})
}

func TestNoAuthnUseCaseImplementsInterface(t *testing.T) {
	var _ usecase.AuthUseCaseInterface = usecase.NewNoAuthnUseCase("sub")
}
