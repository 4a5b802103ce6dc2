package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nexboard/nexboard/pkg/domain/model"
	"github.com/nexboard/nexboard/pkg/usecase"
	"github.com/nexboard/nexboard/pkg/utils/errutil"
	"github.com/nexboard/nexboard/pkg/utils/logging"
)

type errorResponse struct {
	Error   string             `json:"error"`
	Details []model.FieldError `json:"details,omitempty"`
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.From(ctx).Error("failed to encode response", "error", err)
	}
}

// respondError maps the error taxonomy to HTTP statuses. Validation and
// authorization failures are structured and user-presentable; anything else
// is logged with internal detail and surfaced as a generic failure.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	var verrs model.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		respondJSON(ctx, w, http.StatusUnprocessableEntity, errorResponse{
			Error:   "validation failed",
			Details: verrs,
		})

	case errors.Is(err, usecase.ErrNotAuthenticated):
		respondJSON(ctx, w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})

	case errors.Is(err, usecase.ErrPermissionDenied):
		respondJSON(ctx, w, http.StatusForbidden, errorResponse{Error: "insufficient permissions"})

	// No-read-access is reported identically to not-found upstream, so a
	// single branch covers both
	case errors.Is(err, usecase.ErrProjectNotFound):
		respondJSON(ctx, w, http.StatusNotFound, errorResponse{Error: "project not found"})

	case errors.Is(err, model.ErrTemplateNotFound):
		respondJSON(ctx, w, http.StatusNotFound, errorResponse{Error: "template not found"})

	default:
		_ = errutil.Handle(ctx, err, "request failed")
		respondJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func respondBadRequest(ctx context.Context, w http.ResponseWriter, msg string) {
	respondJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: msg})
}
