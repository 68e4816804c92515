// Package provision drives repository lifecycle workflows against the
// provider: create-from-template, diff-aware update, and
// delete-with-cascade. Workflows are sequences of provider calls with
// no rollback; partial outcomes are surfaced, not repaired.
package provision

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/thisisrober/provisioner/internal/domain"
	"github.com/thisisrober/provisioner/internal/github"
	"github.com/thisisrober/provisioner/internal/templates"
)

// readmePath is the one generated path whose remote revision marker is
// fetched before writing, since auto-initialization already created it.
const readmePath = "README.md"

// ProviderClient is the slice of the provider API the workflows need.
type ProviderClient interface {
	CurrentUser(ctx context.Context) (*domain.Identity, error)
	CreateRepository(ctx context.Context, req github.CreateRepositoryRequest) (*domain.RemoteRepository, error)
	GetRepository(ctx context.Context, owner, name string) (*domain.RemoteRepository, error)
	UpdateRepository(ctx context.Context, owner, name string, patch domain.RepositoryPatch) (*domain.RemoteRepository, error)
	DeleteRepository(ctx context.Context, owner, name string) error
	GetFileContent(ctx context.Context, owner, name, path string) (*domain.RemoteFile, error)
	CreateOrUpdateFile(ctx context.Context, owner, name, path, content, message, sha string) error
	ListCollaborators(ctx context.Context, owner, name string) ([]domain.Collaborator, error)
	AddCollaborator(ctx context.Context, owner, name, login, permission string) error
	RemoveCollaborator(ctx context.Context, owner, name, login string) error
}

// TemplateEngine generates the scaffold file set for a template id.
type TemplateEngine interface {
	Generate(templateID, repoName, description string) ([]templates.File, error)
}

// Deployer is the local-checkout side of the delete cascade.
type Deployer interface {
	Remove(name string) error
}

// PortfolioStore is the portfolio side of the delete cascade.
type PortfolioStore interface {
	DeleteByRepo(ctx context.Context, owner, repoName string) error
}

// Manager orchestrates lifecycle workflows.
type Manager struct {
	gh        ProviderClient
	tmpl      TemplateEngine
	deployer  Deployer
	portfolio PortfolioStore
}

// NewManager wires the lifecycle workflows.
func NewManager(gh ProviderClient, tmpl TemplateEngine, deployer Deployer, portfolio PortfolioStore) *Manager {
	return &Manager{gh: gh, tmpl: tmpl, deployer: deployer, portfolio: portfolio}
}

// CreateRequest carries the create-from-template parameters.
type CreateRequest struct {
	Name        string
	Description string
	TemplateID  string
	Private     bool
}

// CreateFromTemplate creates an auto-initialized repository and
// populates it from the template. A file-write failure returns a
// PartialError naming what was written; the created repository is left
// in place either way.
func (m *Manager) CreateFromTemplate(ctx context.Context, req CreateRequest) (*domain.RemoteRepository, error) {
	if req.Name == "" || req.TemplateID == "" {
		return nil, fmt.Errorf("provision.CreateFromTemplate: name and template are required: %w", domain.ErrValidation)
	}

	repo, err := m.gh.CreateRepository(ctx, github.CreateRepositoryRequest{
		Name:        req.Name,
		Description: req.Description,
		Private:     req.Private,
		AutoInit:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("provision.CreateFromTemplate: %w", err)
	}

	// The template id may have raced away since the route checked it; the
	// repository already exists at this point and is not rolled back.
	files, err := m.tmpl.Generate(req.TemplateID, repo.Name, req.Description)
	if err != nil {
		return repo, fmt.Errorf("provision.CreateFromTemplate: generating %q: %w", req.TemplateID, err)
	}

	// Auto-initialization created README.md already, so its write has to
	// carry the current revision marker to land as an update.
	readmeSHA := ""
	for _, f := range files {
		if f.Path != readmePath {
			continue
		}
		existing, err := m.gh.GetFileContent(ctx, repo.Owner, repo.Name, readmePath)
		if err != nil {
			return repo, fmt.Errorf("provision.CreateFromTemplate: reading initial README: %w", err)
		}
		if existing != nil {
			readmeSHA = existing.SHA
		}
		break
	}

	var written []string
	for _, f := range files {
		sha := ""
		if f.Path == readmePath {
			sha = readmeSHA
		}
		message := fmt.Sprintf("Add %s from %s template", f.Path, req.TemplateID)
		if err := m.gh.CreateOrUpdateFile(ctx, repo.Owner, repo.Name, f.Path, f.Content, message, sha); err != nil {
			return repo, &domain.PartialError{Completed: written, Failed: f.Path, Err: err}
		}
		written = append(written, f.Path)
	}

	return repo, nil
}

// Update fetches the repository, diffs the requested patch against it
// and sends only the changed fields. An empty diff short-circuits
// without a provider write; the second return value reports whether
// anything was sent.
func (m *Manager) Update(ctx context.Context, owner, name string, patch domain.RepositoryPatch) (*domain.RemoteRepository, bool, error) {
	current, err := m.gh.GetRepository(ctx, owner, name)
	if err != nil {
		return nil, false, fmt.Errorf("provision.Update: %w", err)
	}

	diff := patch.DiffAgainst(current)
	if diff.Empty() {
		return current, false, nil
	}

	updated, err := m.gh.UpdateRepository(ctx, owner, name, diff)
	if err != nil {
		return nil, false, fmt.Errorf("provision.Update: %w", err)
	}
	return updated, true, nil
}

// Delete removes the repository from the provider, then cascades into
// the local checkout and the portfolio entry. The provider delete is
// terminal: if it fails nothing local is torn down. Cascade failures
// are logged and returned as warnings, since the deletion the caller
// asked for already happened.
func (m *Manager) Delete(ctx context.Context, owner, name string) ([]string, error) {
	if err := m.gh.DeleteRepository(ctx, owner, name); err != nil {
		return nil, fmt.Errorf("provision.Delete: %w", err)
	}

	var warnings []string
	if err := m.deployer.Remove(name); err != nil {
		log.Warn().Err(err).Str("repo", name).Msg("repository deleted but local checkout removal failed")
		warnings = append(warnings, fmt.Sprintf("local checkout not removed: %v", err))
	}
	if err := m.portfolio.DeleteByRepo(ctx, owner, name); err != nil {
		log.Warn().Err(err).Str("repo", name).Msg("repository deleted but portfolio entry removal failed")
		warnings = append(warnings, fmt.Sprintf("portfolio entry not removed: %v", err))
	}
	return warnings, nil
}

// Collaborators lists the repository's live grants.
func (m *Manager) Collaborators(ctx context.Context, owner, name string) ([]domain.Collaborator, error) {
	return m.gh.ListCollaborators(ctx, owner, name)
}

// AddCollaborator grants login access at the given permission level.
func (m *Manager) AddCollaborator(ctx context.Context, owner, name, login, permission string) error {
	switch permission {
	case "read", "write", "admin":
	case "":
		permission = "write"
	default:
		return fmt.Errorf("provision.AddCollaborator: unknown permission %q: %w", permission, domain.ErrValidation)
	}
	return m.gh.AddCollaborator(ctx, owner, name, login, permission)
}

// RemoveCollaborator revokes login's access.
func (m *Manager) RemoveCollaborator(ctx context.Context, owner, name, login string) error {
	return m.gh.RemoveCollaborator(ctx, owner, name, login)
}
