package deploy

import (
	"context"

	"github.com/thisisrober/provisioner/internal/github"
)

// TokenSource resolves the persisted transport token for private
// clones. An empty token with a nil error means public access.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Credentialed wraps a Manager, resolving the provider credential per
// call: a per-request override in the context wins, the persisted
// credential is the fallback, and no credential at all still deploys
// public repositories.
type Credentialed struct {
	m      *Manager
	tokens TokenSource
}

func NewCredentialed(m *Manager, tokens TokenSource) *Credentialed {
	return &Credentialed{m: m, tokens: tokens}
}

func (c *Credentialed) Deploy(ctx context.Context, owner, name string) (string, error) {
	tok, ok := github.TokenFromContext(ctx)
	if !ok || tok == "" {
		var err error
		tok, err = c.tokens.Token(ctx)
		if err != nil {
			return "", err
		}
	}
	return c.m.Deploy(ctx, owner, name, tok)
}

func (c *Credentialed) Remove(name string) error {
	return c.m.Remove(name)
}

func (c *Credentialed) Status(name string) (deployed bool, path string) {
	return c.m.Status(name)
}
