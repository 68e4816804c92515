package v1

import (
	"context"

	"github.com/google/uuid"

	"github.com/thisisrober/provisioner/internal/credential"
	"github.com/thisisrober/provisioner/internal/domain"
	"github.com/thisisrober/provisioner/internal/portfolio"
	"github.com/thisisrober/provisioner/internal/provision"
	"github.com/thisisrober/provisioner/internal/templates"
)

// GitHubClient abstracts the provider reads the handlers call directly.
// *github.Client satisfies this interface.
type GitHubClient interface {
	Validate(ctx context.Context, token string) (*domain.Identity, error)
	CurrentUser(ctx context.Context) (*domain.Identity, error)
	ListRepositories(ctx context.Context) ([]*domain.RemoteRepository, error)
	GetRepository(ctx context.Context, owner, name string) (*domain.RemoteRepository, error)
	ContributionCalendar(ctx context.Context, login string) (*domain.ContributionCalendar, error)
	ListUserEvents(ctx context.Context, login string) ([]domain.Event, []string, error)
}

// CredentialService abstracts credential persistence for handler
// testing. *credential.Service satisfies this interface.
type CredentialService interface {
	Save(ctx context.Context, token string) (*domain.Identity, error)
	Validate(ctx context.Context, token string) (*domain.Identity, error)
	Status(ctx context.Context) (*credential.Status, error)
}

// Provisioner abstracts the lifecycle workflows. *provision.Manager
// satisfies this interface.
type Provisioner interface {
	CreateFromTemplate(ctx context.Context, req provision.CreateRequest) (*domain.RemoteRepository, error)
	Update(ctx context.Context, owner, name string, patch domain.RepositoryPatch) (*domain.RemoteRepository, bool, error)
	Delete(ctx context.Context, owner, name string) ([]string, error)
	Collaborators(ctx context.Context, owner, name string) ([]domain.Collaborator, error)
	AddCollaborator(ctx context.Context, owner, name, login, permission string) error
	RemoveCollaborator(ctx context.Context, owner, name, login string) error
}

// TemplateCatalog lists the scaffold templates. *templates.Engine
// satisfies this interface.
type TemplateCatalog interface {
	List() []templates.Info
}

// Deployer abstracts the local checkout tree. The server wires an
// adapter that resolves transport credentials before delegating to
// *deploy.Manager.
type Deployer interface {
	Deploy(ctx context.Context, owner, name string) (string, error)
	Remove(name string) error
	Status(name string) (deployed bool, path string)
}

// PortfolioService abstracts the reconciliation layer.
// *portfolio.Reconciler satisfies this interface.
type PortfolioService interface {
	Attach(ctx context.Context, repo *domain.RemoteRepository, req portfolio.AttachRequest) (*domain.PortfolioEntry, bool, error)
	StatusOf(ctx context.Context, owner, repoName string) (*domain.RepoStatus, error)
	List(ctx context.Context) ([]*domain.PortfolioEntry, error)
	GetByRepo(ctx context.Context, owner, repoName string) (*domain.PortfolioEntry, error)
	UpdateEntry(ctx context.Context, id uuid.UUID, upd portfolio.EntryUpdate) (*domain.PortfolioEntry, error)
}
