// Package credential manages the single persisted provider token. One
// slot, last write wins. Saving always validates first: an invalid
// token never replaces a working one.
package credential

import (
	"context"
	"errors"
	"fmt"

	"github.com/thisisrober/provisioner/internal/domain"
)

// settingKey is the settings-table slot holding the bearer token.
const settingKey = "github_token"

// Validator checks a candidate token against the provider's identity
// endpoint. A rejected token fails with domain.ErrInvalidCredential.
type Validator interface {
	Validate(ctx context.Context, token string) (*domain.Identity, error)
}

// Status reports whether a credential is stored and, when it is, who
// the provider says it belongs to. Identity is nil for a stored token
// the provider no longer accepts.
type Status struct {
	Configured bool             `json:"configured"`
	Valid      bool             `json:"valid"`
	Identity   *domain.Identity `json:"identity,omitempty"`
}

// Service persists and validates the provider credential.
type Service struct {
	settings  domain.SettingsRepository
	validator Validator
}

// NewService builds a Service over the settings store.
func NewService(settings domain.SettingsRepository, validator Validator) *Service {
	return &Service{settings: settings, validator: validator}
}

// SetValidator late-binds the provider-backed validator. The provider
// client resolves its token through this service, so the two are
// constructed in sequence and tied together afterwards.
func (s *Service) SetValidator(v Validator) { s.validator = v }

// Save validates token and, only on success, persists it, overwriting
// any previous value. On rejection the stored token is left untouched
// and the validation error is returned.
func (s *Service) Save(ctx context.Context, token string) (*domain.Identity, error) {
	identity, err := s.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := s.settings.Upsert(ctx, settingKey, token); err != nil {
		return nil, fmt.Errorf("credential.Save: %w", err)
	}
	return identity, nil
}

// Validate checks a token without touching persistence.
func (s *Service) Validate(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, fmt.Errorf("credential.Validate: empty token: %w", domain.ErrInvalidCredential)
	}
	identity, err := s.validator.Validate(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("credential.Validate: %w", err)
	}
	return identity, nil
}

// Token returns the persisted token, or empty when none is stored. It
// satisfies the provider client's CredentialSource.
func (s *Service) Token(ctx context.Context) (string, error) {
	tok, err := s.settings.Get(ctx, settingKey)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("credential.Token: %w", err)
	}
	return tok, nil
}

// Current is Token under the name the API surface uses.
func (s *Service) Current(ctx context.Context) (string, error) {
	return s.Token(ctx)
}

// Status resolves the stored credential against the provider. A stored
// token the provider rejects reports Configured without Valid; provider
// outages and rate limiting propagate as errors so callers can tell "no
// longer valid" from "could not check".
func (s *Service) Status(ctx context.Context) (*Status, error) {
	tok, err := s.Token(ctx)
	if err != nil {
		return nil, err
	}
	if tok == "" {
		return &Status{}, nil
	}
	identity, err := s.Validate(ctx, tok)
	if errors.Is(err, domain.ErrInvalidCredential) {
		return &Status{Configured: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("credential.Status: %w", err)
	}
	return &Status{Configured: true, Valid: true, Identity: identity}, nil
}
