package http

import (
	"errors"
	"net/http"

	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the JSON error body. Details is present only for
// validation failures; Resource and ID only for not-found and conflict.
type errorResponse struct {
	Type     string            `json:"type"`
	Message  string            `json:"message"`
	Details  map[string]string `json:"details,omitempty"`
	Resource string            `json:"resource,omitempty"`
	ID       string            `json:"id,omitempty"`
}

func badRequestBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Type:    "validation",
		Message: "Invalid request body",
	})
}

// respondError maps typed use-case errors to HTTP status codes. Unknown
// errors surface as 503 so clients can tell "retry later" from a genuine
// server bug.
func respondError(ctx echo.Context, err error) error {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Type:    "validation",
			Message: validationErr.Message,
			Details: validationErr.Details,
		})
	}

	var requiredErr *errs.ValueIsRequiredError
	if errors.As(err, &requiredErr) {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Type:    "validation",
			Message: requiredErr.Error(),
		})
	}

	var invalidErr *errs.ValueIsInvalidError
	if errors.As(err, &invalidErr) {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Type:    "validation",
			Message: invalidErr.Error(),
		})
	}

	var invariantErr *errs.InvariantViolationError
	if errors.As(err, &invariantErr) {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Type:    "validation",
			Message: invariantErr.Message,
		})
	}

	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Type:     "not_found",
			Message:  notFoundErr.Error(),
			Resource: notFoundErr.Resource,
			ID:       notFoundErr.ID,
		})
	}

	var conflictErr *errs.ConflictError
	if errors.As(err, &conflictErr) {
		return ctx.JSON(http.StatusConflict, errorResponse{
			Type:     "conflict",
			Message:  conflictErr.Error(),
			Resource: conflictErr.Resource,
			ID:       conflictErr.ID,
		})
	}

	var staleErr *errs.StaleObjectError
	if errors.As(err, &staleErr) {
		return ctx.JSON(http.StatusConflict, errorResponse{
			Type:     "conflict",
			Message:  staleErr.Error(),
			Resource: staleErr.Resource,
			ID:       staleErr.ID,
		})
	}

	var transitionErr *errs.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		return ctx.JSON(http.StatusConflict, errorResponse{
			Type:    "conflict",
			Message: transitionErr.Error(),
		})
	}

	var infraErr *errs.InfrastructureError
	if errors.As(err, &infraErr) {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Type:    "infrastructure",
			Message: "Internal server error",
		})
	}

	return ctx.JSON(http.StatusServiceUnavailable, errorResponse{
		Type:    "unavailable",
		Message: "Service temporarily unavailable",
	})
}
