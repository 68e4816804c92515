package v1_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/thisisrober/provisioner/internal/credential"
	"github.com/thisisrober/provisioner/internal/domain"
	"github.com/thisisrober/provisioner/internal/portfolio"
	"github.com/thisisrober/provisioner/internal/provision"
	"github.com/thisisrober/provisioner/internal/templates"
)

// ---------------------------------------------------------------------------
// Mock GitHubClient
// ---------------------------------------------------------------------------

type mockGitHub struct {
	validateFunc             func(ctx context.Context, token string) (*domain.Identity, error)
	currentUserFunc          func(ctx context.Context) (*domain.Identity, error)
	listRepositoriesFunc     func(ctx context.Context) ([]*domain.RemoteRepository, error)
	getRepositoryFunc        func(ctx context.Context, owner, name string) (*domain.RemoteRepository, error)
	contributionCalendarFunc func(ctx context.Context, login string) (*domain.ContributionCalendar, error)
	listUserEventsFunc       func(ctx context.Context, login string) ([]domain.Event, []string, error)
}

func (m *mockGitHub) Validate(ctx context.Context, token string) (*domain.Identity, error) {
	return m.validateFunc(ctx, token)
}

func (m *mockGitHub) CurrentUser(ctx context.Context) (*domain.Identity, error) {
	return m.currentUserFunc(ctx)
}

func (m *mockGitHub) ListRepositories(ctx context.Context) ([]*domain.RemoteRepository, error) {
	return m.listRepositoriesFunc(ctx)
}

func (m *mockGitHub) GetRepository(ctx context.Context, owner, name string) (*domain.RemoteRepository, error) {
	return m.getRepositoryFunc(ctx, owner, name)
}

func (m *mockGitHub) ContributionCalendar(ctx context.Context, login string) (*domain.ContributionCalendar, error) {
	return m.contributionCalendarFunc(ctx, login)
}

func (m *mockGitHub) ListUserEvents(ctx context.Context, login string) ([]domain.Event, []string, error) {
	return m.listUserEventsFunc(ctx, login)
}

// ---------------------------------------------------------------------------
// Mock CredentialService
// ---------------------------------------------------------------------------

type mockCreds struct {
	saveFunc     func(ctx context.Context, token string) (*domain.Identity, error)
	validateFunc func(ctx context.Context, token string) (*domain.Identity, error)
	statusFunc   func(ctx context.Context) (*credential.Status, error)
}

func (m *mockCreds) Save(ctx context.Context, token string) (*domain.Identity, error) {
	return m.saveFunc(ctx, token)
}

func (m *mockCreds) Validate(ctx context.Context, token string) (*domain.Identity, error) {
	return m.validateFunc(ctx, token)
}

func (m *mockCreds) Status(ctx context.Context) (*credential.Status, error) {
	return m.statusFunc(ctx)
}

// ---------------------------------------------------------------------------
// Mock Provisioner
// ---------------------------------------------------------------------------

type mockProvisioner struct {
	createFromTemplateFunc func(ctx context.Context, req provision.CreateRequest) (*domain.RemoteRepository, error)
	updateFunc             func(ctx context.Context, owner, name string, patch domain.RepositoryPatch) (*domain.RemoteRepository, bool, error)
	deleteFunc             func(ctx context.Context, owner, name string) ([]string, error)
	collaboratorsFunc      func(ctx context.Context, owner, name string) ([]domain.Collaborator, error)
	addCollaboratorFunc    func(ctx context.Context, owner, name, login, permission string) error
	removeCollaboratorFunc func(ctx context.Context, owner, name, login string) error
}

func (m *mockProvisioner) CreateFromTemplate(ctx context.Context, req provision.CreateRequest) (*domain.RemoteRepository, error) {
	return m.createFromTemplateFunc(ctx, req)
}

func (m *mockProvisioner) Update(ctx context.Context, owner, name string, patch domain.RepositoryPatch) (*domain.RemoteRepository, bool, error) {
	return m.updateFunc(ctx, owner, name, patch)
}

func (m *mockProvisioner) Delete(ctx context.Context, owner, name string) ([]string, error) {
	return m.deleteFunc(ctx, owner, name)
}

func (m *mockProvisioner) Collaborators(ctx context.Context, owner, name string) ([]domain.Collaborator, error) {
	return m.collaboratorsFunc(ctx, owner, name)
}

func (m *mockProvisioner) AddCollaborator(ctx context.Context, owner, name, login, permission string) error {
	return m.addCollaboratorFunc(ctx, owner, name, login, permission)
}

func (m *mockProvisioner) RemoveCollaborator(ctx context.Context, owner, name, login string) error {
	return m.removeCollaboratorFunc(ctx, owner, name, login)
}

// ---------------------------------------------------------------------------
// Mock TemplateCatalog
// ---------------------------------------------------------------------------

type mockCatalog struct {
	listFunc func() []templates.Info
}

func (m *mockCatalog) List() []templates.Info {
	return m.listFunc()
}

// ---------------------------------------------------------------------------
// Mock Deployer
// ---------------------------------------------------------------------------

type mockDeployer struct {
	deployFunc func(ctx context.Context, owner, name string) (string, error)
	removeFunc func(name string) error
	statusFunc func(name string) (bool, string)
}

func (m *mockDeployer) Deploy(ctx context.Context, owner, name string) (string, error) {
	return m.deployFunc(ctx, owner, name)
}

func (m *mockDeployer) Remove(name string) error {
	return m.removeFunc(name)
}

func (m *mockDeployer) Status(name string) (bool, string) {
	return m.statusFunc(name)
}

// ---------------------------------------------------------------------------
// Mock PortfolioService
// ---------------------------------------------------------------------------

type mockPortfolio struct {
	attachFunc      func(ctx context.Context, repo *domain.RemoteRepository, req portfolio.AttachRequest) (*domain.PortfolioEntry, bool, error)
	statusOfFunc    func(ctx context.Context, owner, repoName string) (*domain.RepoStatus, error)
	listFunc        func(ctx context.Context) ([]*domain.PortfolioEntry, error)
	getByRepoFunc   func(ctx context.Context, owner, repoName string) (*domain.PortfolioEntry, error)
	updateEntryFunc func(ctx context.Context, id uuid.UUID, upd portfolio.EntryUpdate) (*domain.PortfolioEntry, error)
}

func (m *mockPortfolio) Attach(ctx context.Context, repo *domain.RemoteRepository, req portfolio.AttachRequest) (*domain.PortfolioEntry, bool, error) {
	return m.attachFunc(ctx, repo, req)
}

func (m *mockPortfolio) StatusOf(ctx context.Context, owner, repoName string) (*domain.RepoStatus, error) {
	return m.statusOfFunc(ctx, owner, repoName)
}

func (m *mockPortfolio) List(ctx context.Context) ([]*domain.PortfolioEntry, error) {
	return m.listFunc(ctx)
}

func (m *mockPortfolio) GetByRepo(ctx context.Context, owner, repoName string) (*domain.PortfolioEntry, error) {
	return m.getByRepoFunc(ctx, owner, repoName)
}

func (m *mockPortfolio) UpdateEntry(ctx context.Context, id uuid.UUID, upd portfolio.EntryUpdate) (*domain.PortfolioEntry, error) {
	return m.updateEntryFunc(ctx, id, upd)
}
