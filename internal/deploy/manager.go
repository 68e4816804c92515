// Package deploy materializes repositories into a local projects
// directory so the preview file server can serve them. First deploy
// clones; later deploys fast-forward the existing checkout.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"

	"github.com/thisisrober/provisioner/internal/domain"
)

// tokenUser is the username GitHub expects alongside a bearer token in
// basic-auth transport credentials.
const tokenUser = "x-access-token"

// Manager owns a root directory of deployed checkouts, one per
// repository name.
type Manager struct {
	root     string
	depth    int
	cloneURL func(owner, name string) string
}

// Option configures a Manager.
type Option func(*Manager)

// WithCloneURL overrides how the remote URL is built (tests point it at
// a local fixture repository).
func WithCloneURL(f func(owner, name string) string) Option {
	return func(m *Manager) { m.cloneURL = f }
}

// WithDepth sets the clone depth; zero means a full clone.
func WithDepth(n int) Option {
	return func(m *Manager) { m.depth = n }
}

// NewManager builds a Manager rooted at root, creating it if needed.
func NewManager(root string, opts ...Option) (*Manager, error) {
	m := &Manager{
		root:  root,
		depth: 1,
		cloneURL: func(owner, name string) string {
			return fmt.Sprintf("https://github.com/%s/%s.git", owner, name)
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	if err := os.MkdirAll(m.root, 0o755); err != nil {
		return nil, fmt.Errorf("deploy.NewManager: %w", err)
	}
	return m, nil
}

// Deploy clones owner/name under the root, or fast-forwards an existing
// checkout, and returns the local path. A non-empty token rides along
// as transport credentials for private repositories. Transport and
// checkout failures surface as ErrDeployFailed with the underlying
// message attached.
func (m *Manager) Deploy(ctx context.Context, owner, name, token string) (string, error) {
	path, err := m.path(name)
	if err != nil {
		return "", err
	}

	var auth *githttp.BasicAuth
	if token != "" {
		auth = &githttp.BasicAuth{Username: tokenUser, Password: token}
	}

	if _, statErr := os.Stat(filepath.Join(path, ".git")); statErr == nil {
		if err := m.pull(ctx, path, auth); err != nil {
			return "", fmt.Errorf("deploy.Deploy: updating %s: %v: %w", name, err, domain.ErrDeployFailed)
		}
		return path, nil
	}

	_, err = git.PlainCloneContext(ctx, path, false, &git.CloneOptions{
		URL:   m.cloneURL(owner, name),
		Depth: m.depth,
		Auth:  auth,
	})
	if err != nil {
		// A failed clone must not leave a half-written checkout that the
		// next attempt would mistake for an existing deploy.
		_ = os.RemoveAll(path)
		return "", fmt.Errorf("deploy.Deploy: cloning %s: %v: %w", name, err, domain.ErrDeployFailed)
	}
	return path, nil
}

func (m *Manager) pull(ctx context.Context, path string, auth *githttp.BasicAuth) error {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return err
	}
	err = wt.PullContext(ctx, &git.PullOptions{
		RemoteName: "origin",
		Depth:      m.depth,
		Auth:       auth,
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil
	}
	return err
}

// Remove deletes the checkout for name. Removing a name that was never
// deployed is a no-op.
func (m *Manager) Remove(name string) error {
	path, err := m.path(name)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("deploy.Remove: %w", err)
	}
	return nil
}

// Status reports whether name has a local checkout and where it lives.
func (m *Manager) Status(name string) (deployed bool, path string) {
	p, err := m.path(name)
	if err != nil {
		return false, ""
	}
	if _, err := os.Stat(p); err != nil {
		return false, ""
	}
	return true, p
}

// path resolves name under the root, rejecting names that would escape
// it.
func (m *Manager) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("deploy: invalid repository name %q: %w", name, domain.ErrDeployFailed)
	}
	return filepath.Join(m.root, name), nil
}
