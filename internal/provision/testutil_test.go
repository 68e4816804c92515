package provision

import (
	"context"

	"github.com/thisisrober/provisioner/internal/domain"
	"github.com/thisisrober/provisioner/internal/github"
	"github.com/thisisrober/provisioner/internal/templates"
)

// mockProvider implements ProviderClient with overridable behavior per
// method; unset methods succeed with zero values.
type mockProvider struct {
	currentUserFn        func(ctx context.Context) (*domain.Identity, error)
	createRepositoryFn   func(ctx context.Context, req github.CreateRepositoryRequest) (*domain.RemoteRepository, error)
	getRepositoryFn      func(ctx context.Context, owner, name string) (*domain.RemoteRepository, error)
	updateRepositoryFn   func(ctx context.Context, owner, name string, patch domain.RepositoryPatch) (*domain.RemoteRepository, error)
	deleteRepositoryFn   func(ctx context.Context, owner, name string) error
	getFileContentFn     func(ctx context.Context, owner, name, path string) (*domain.RemoteFile, error)
	createOrUpdateFileFn func(ctx context.Context, owner, name, path, content, message, sha string) error
	listCollaboratorsFn  func(ctx context.Context, owner, name string) ([]domain.Collaborator, error)
	addCollaboratorFn    func(ctx context.Context, owner, name, login, permission string) error
	removeCollaboratorFn func(ctx context.Context, owner, name, login string) error
}

func (m *mockProvider) CurrentUser(ctx context.Context) (*domain.Identity, error) {
	if m.currentUserFn != nil {
		return m.currentUserFn(ctx)
	}
	return &domain.Identity{Login: "rober"}, nil
}

func (m *mockProvider) CreateRepository(ctx context.Context, req github.CreateRepositoryRequest) (*domain.RemoteRepository, error) {
	if m.createRepositoryFn != nil {
		return m.createRepositoryFn(ctx, req)
	}
	return &domain.RemoteRepository{Owner: "rober", Name: req.Name, Description: req.Description}, nil
}

func (m *mockProvider) GetRepository(ctx context.Context, owner, name string) (*domain.RemoteRepository, error) {
	if m.getRepositoryFn != nil {
		return m.getRepositoryFn(ctx, owner, name)
	}
	return &domain.RemoteRepository{Owner: owner, Name: name}, nil
}

func (m *mockProvider) UpdateRepository(ctx context.Context, owner, name string, patch domain.RepositoryPatch) (*domain.RemoteRepository, error) {
	if m.updateRepositoryFn != nil {
		return m.updateRepositoryFn(ctx, owner, name, patch)
	}
	return &domain.RemoteRepository{Owner: owner, Name: name}, nil
}

func (m *mockProvider) DeleteRepository(ctx context.Context, owner, name string) error {
	if m.deleteRepositoryFn != nil {
		return m.deleteRepositoryFn(ctx, owner, name)
	}
	return nil
}

func (m *mockProvider) GetFileContent(ctx context.Context, owner, name, path string) (*domain.RemoteFile, error) {
	if m.getFileContentFn != nil {
		return m.getFileContentFn(ctx, owner, name, path)
	}
	return nil, nil
}

func (m *mockProvider) CreateOrUpdateFile(ctx context.Context, owner, name, path, content, message, sha string) error {
	if m.createOrUpdateFileFn != nil {
		return m.createOrUpdateFileFn(ctx, owner, name, path, content, message, sha)
	}
	return nil
}

func (m *mockProvider) ListCollaborators(ctx context.Context, owner, name string) ([]domain.Collaborator, error) {
	if m.listCollaboratorsFn != nil {
		return m.listCollaboratorsFn(ctx, owner, name)
	}
	return nil, nil
}

func (m *mockProvider) AddCollaborator(ctx context.Context, owner, name, login, permission string) error {
	if m.addCollaboratorFn != nil {
		return m.addCollaboratorFn(ctx, owner, name, login, permission)
	}
	return nil
}

func (m *mockProvider) RemoveCollaborator(ctx context.Context, owner, name, login string) error {
	if m.removeCollaboratorFn != nil {
		return m.removeCollaboratorFn(ctx, owner, name, login)
	}
	return nil
}

// mockEngine returns a fixed file list for any template.
type mockEngine struct {
	generateFn func(templateID, repoName, description string) ([]templates.File, error)
}

func (m *mockEngine) Generate(templateID, repoName, description string) ([]templates.File, error) {
	if m.generateFn != nil {
		return m.generateFn(templateID, repoName, description)
	}
	return []templates.File{
		{Path: "README.md", Content: "# " + repoName},
		{Path: "LICENSE", Content: "MIT"},
	}, nil
}

// mockDeployer records Remove calls.
type mockDeployer struct {
	removed  []string
	removeFn func(name string) error
}

func (m *mockDeployer) Remove(name string) error {
	m.removed = append(m.removed, name)
	if m.removeFn != nil {
		return m.removeFn(name)
	}
	return nil
}

// mockPortfolio records DeleteByRepo calls.
type mockPortfolio struct {
	deleted  []string
	deleteFn func(ctx context.Context, owner, repoName string) error
}

func (m *mockPortfolio) DeleteByRepo(ctx context.Context, owner, repoName string) error {
	m.deleted = append(m.deleted, owner+"/"+repoName)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, owner, repoName)
	}
	return nil
}

func newTestManager(gh *mockProvider, tmpl *mockEngine) (*Manager, *mockDeployer, *mockPortfolio) {
	deployer := &mockDeployer{}
	portfolio := &mockPortfolio{}
	return NewManager(gh, tmpl, deployer, portfolio), deployer, portfolio
}
