package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// ErrProjectNotFound is returned for missing projects and, deliberately,
	// for projects the principal may not read, so that existence does not
	// leak.
	ErrProjectNotFound = errors.New("project not found")

	// Access control errors
	ErrPermissionDenied = errors.New("insufficient permissions")

	// Authentication errors
	ErrNotAuthenticated = errors.New("authentication required")
)

// Context keys for error values
const (
	ProjectIDKey  = "project_id"
	TemplateIDKey = "template_id"
)
