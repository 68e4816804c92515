package github

import (
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v66/github"

	"github.com/thisisrober/provisioner/internal/domain"
)

// mapError translates go-github error values into domain sentinels so
// callers can errors.Is instead of inspecting provider structures. A 403
// with an exhausted quota arrives as *gh.RateLimitError and must map to
// ErrRateLimited, never to a credential error.
func mapError(err error) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%w: resets at %s", domain.ErrRateLimited, rateErr.Rate.Reset.Time.Format("15:04:05"))
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: secondary limit", domain.ErrRateLimited)
	}

	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		msg := respErr.Message
		switch respErr.Response.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", domain.ErrInvalidCredential, msg)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
		case http.StatusConflict, http.StatusUnprocessableEntity:
			return fmt.Errorf("%w: %s", domain.ErrConflict, msg)
		default:
			return fmt.Errorf("%w: %d %s", domain.ErrUnexpected, respErr.Response.StatusCode, msg)
		}
	}

	return fmt.Errorf("%w: %v", domain.ErrUnexpected, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
