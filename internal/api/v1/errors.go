package v1

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/thisisrober/provisioner/internal/domain"
)

// mapDomainError translates domain error kinds to the HTTP surface:
// 400 validation, 401 missing/invalid credential, 403 rate limit
// (distinguished from auth in the message, not just the status), 404,
// 409 conflict, 500 for everything unexpected.
func mapDomainError(err error, msg string) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		return huma.Error401Unauthorized("no GitHub credential configured")
	case errors.Is(err, domain.ErrInvalidCredential):
		return huma.Error401Unauthorized("GitHub rejected the credential")
	case errors.Is(err, domain.ErrRateLimited):
		return huma.Error403Forbidden("GitHub rate limit exhausted")
	case errors.Is(err, domain.ErrNotFound):
		return huma.Error404NotFound(msg + " not found")
	case errors.Is(err, domain.ErrConflict):
		return huma.Error409Conflict(err.Error())
	default:
		return huma.Error500InternalServerError(msg+" failed", err)
	}
}
