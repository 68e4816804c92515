package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the provisioning domain. Handlers map these to the
// HTTP error surface with errors.Is; no other error value crosses the
// API boundary unannotated.
var (
	// ErrUnauthenticated means no credential is configured at all.
	ErrUnauthenticated = errors.New("domain: no credential configured")

	// ErrInvalidCredential means a credential was supplied but the
	// provider (or local validation) rejected it.
	ErrInvalidCredential = errors.New("domain: invalid credential")

	// ErrValidation means the request itself is malformed (missing name,
	// unknown permission) and retrying without changes cannot succeed.
	ErrValidation = errors.New("domain: validation failed")

	ErrConflict     = errors.New("domain: conflict")
	ErrNotFound     = errors.New("domain: not found")
	ErrRateLimited  = errors.New("domain: provider rate limit exhausted")
	ErrDeployFailed = errors.New("domain: deploy failed")

	// ErrUnexpected covers malformed or unanticipated provider responses.
	ErrUnexpected = errors.New("domain: unexpected provider response")
)

// PartialError reports a multi-step workflow that succeeded partially.
// The already-created remote object is not rolled back; Completed lists
// the file paths written before the failure and Failed names the path
// whose write broke the run.
type PartialError struct {
	Completed []string
	Failed    string
	Err       error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("partial failure at %q after [%s]: %v",
		e.Failed, strings.Join(e.Completed, ", "), e.Err)
}

func (e *PartialError) Unwrap() error { return e.Err }
