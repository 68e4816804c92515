package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/thisisrober/provisioner/internal/api/v1"
	"github.com/thisisrober/provisioner/internal/domain"
	"github.com/thisisrober/provisioner/internal/provision"
)

func TestListRepos(t *testing.T) {
	t.Parallel()

	t.Run("happy_path", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		gh := &mockGitHub{
			listRepositoriesFunc: func(_ context.Context) ([]*domain.RemoteRepository, error) {
				return []*domain.RemoteRepository{
					{Owner: "rober", Name: "alpha"},
					{Owner: "rober", Name: "beta"},
				}, nil
			},
		}
		v1.RegisterRepoRoutes(api, gh, &mockProvisioner{})

		resp := api.Get("/repos")
		require.Equal(t, http.StatusOK, resp.Code)

		var body []*domain.RemoteRepository
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, "alpha", body[0].Name)
	})

	t.Run("no_credential_is_401", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		gh := &mockGitHub{
			listRepositoriesFunc: func(_ context.Context) ([]*domain.RemoteRepository, error) {
				return nil, domain.ErrUnauthenticated
			},
		}
		v1.RegisterRepoRoutes(api, gh, &mockProvisioner{})

		resp := api.Get("/repos")
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("rate_limited_is_403_with_distinct_message", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		gh := &mockGitHub{
			listRepositoriesFunc: func(_ context.Context) ([]*domain.RemoteRepository, error) {
				return nil, domain.ErrRateLimited
			},
		}
		v1.RegisterRepoRoutes(api, gh, &mockProvisioner{})

		resp := api.Get("/repos")
		assert.Equal(t, http.StatusForbidden, resp.Code)
		assert.Contains(t, resp.Body.String(), "rate limit")
	})
}

func TestCreateRepo(t *testing.T) {
	t.Parallel()

	t.Run("happy_path", func(t *testing.T) {
		t.Parallel()

		var got provision.CreateRequest
		_, api := humatest.New(t)
		prov := &mockProvisioner{
			createFromTemplateFunc: func(_ context.Context, req provision.CreateRequest) (*domain.RemoteRepository, error) {
				got = req
				return &domain.RemoteRepository{Owner: "rober", Name: req.Name, HTMLURL: "https://github.com/rober/" + req.Name}, nil
			},
		}
		v1.RegisterRepoRoutes(api, &mockGitHub{}, prov)

		resp := api.Post("/repos", map[string]any{
			"name":        "demo-app",
			"description": "a demo",
			"template":    "react-vite",
			"private":     true,
		})
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "demo-app", got.Name)
		assert.Equal(t, "react-vite", got.TemplateID)
		assert.True(t, got.Private)
	})

	t.Run("taken_name_is_409", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		prov := &mockProvisioner{
			createFromTemplateFunc: func(_ context.Context, _ provision.CreateRequest) (*domain.RemoteRepository, error) {
				return nil, domain.ErrConflict
			},
		}
		v1.RegisterRepoRoutes(api, &mockGitHub{}, prov)

		resp := api.Post("/repos", map[string]any{"name": "demo-app", "template": "basic"})
		assert.Equal(t, http.StatusConflict, resp.Code)
	})

	t.Run("missing_template_is_rejected_by_validation", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		v1.RegisterRepoRoutes(api, &mockGitHub{}, &mockProvisioner{})

		resp := api.Post("/repos", map[string]any{"name": "demo-app"})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})
}

func TestUpdateRepo(t *testing.T) {
	t.Parallel()

	t.Run("no_op_patch_reports_changed_false", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		prov := &mockProvisioner{
			updateFunc: func(_ context.Context, owner, name string, _ domain.RepositoryPatch) (*domain.RemoteRepository, bool, error) {
				return &domain.RemoteRepository{Owner: owner, Name: name}, false, nil
			},
		}
		v1.RegisterRepoRoutes(api, &mockGitHub{}, prov)

		resp := api.Patch("/repos/rober/demo-app", map[string]any{"description": "same"})
		require.Equal(t, http.StatusOK, resp.Code)

		var body struct {
			Changed bool `json:"changed"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.False(t, body.Changed)
	})

	t.Run("unknown_repo_is_404", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		prov := &mockProvisioner{
			updateFunc: func(_ context.Context, _, _ string, _ domain.RepositoryPatch) (*domain.RemoteRepository, bool, error) {
				return nil, false, domain.ErrNotFound
			},
		}
		v1.RegisterRepoRoutes(api, &mockGitHub{}, prov)

		resp := api.Patch("/repos/rober/ghost", map[string]any{"description": "x"})
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestDeleteRepo(t *testing.T) {
	t.Parallel()

	t.Run("warnings_are_surfaced", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		prov := &mockProvisioner{
			deleteFunc: func(_ context.Context, _, _ string) ([]string, error) {
				return []string{"local checkout not removed: device busy"}, nil
			},
		}
		v1.RegisterRepoRoutes(api, &mockGitHub{}, prov)

		resp := api.Delete("/repos/rober/demo-app")
		require.Equal(t, http.StatusOK, resp.Code)

		var body struct {
			Deleted  bool     `json:"deleted"`
			Warnings []string `json:"warnings"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.True(t, body.Deleted)
		require.Len(t, body.Warnings, 1)
	})

	t.Run("provider_failure_is_not_a_success", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		prov := &mockProvisioner{
			deleteFunc: func(_ context.Context, _, _ string) ([]string, error) {
				return nil, domain.ErrNotFound
			},
		}
		v1.RegisterRepoRoutes(api, &mockGitHub{}, prov)

		resp := api.Delete("/repos/rober/ghost")
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestCollaborators(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		prov := &mockProvisioner{
			collaboratorsFunc: func(_ context.Context, _, _ string) ([]domain.Collaborator, error) {
				return []domain.Collaborator{{Login: "alice", Permission: "admin"}}, nil
			},
		}
		v1.RegisterRepoRoutes(api, &mockGitHub{}, prov)

		resp := api.Get("/repos/rober/demo-app/collaborators")
		require.Equal(t, http.StatusOK, resp.Code)

		var body []domain.Collaborator
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "alice", body[0].Login)
	})

	t.Run("add_passes_permission_through", func(t *testing.T) {
		t.Parallel()

		var gotLogin, gotPerm string
		_, api := humatest.New(t)
		prov := &mockProvisioner{
			addCollaboratorFunc: func(_ context.Context, _, _, login, permission string) error {
				gotLogin, gotPerm = login, permission
				return nil
			},
		}
		v1.RegisterRepoRoutes(api, &mockGitHub{}, prov)

		resp := api.Put("/repos/rober/demo-app/collaborators/alice", map[string]any{"permission": "admin"})
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "alice", gotLogin)
		assert.Equal(t, "admin", gotPerm)
	})

	t.Run("remove", func(t *testing.T) {
		t.Parallel()

		var removed string
		_, api := humatest.New(t)
		prov := &mockProvisioner{
			removeCollaboratorFunc: func(_ context.Context, _, _, login string) error {
				removed = login
				return nil
			},
		}
		v1.RegisterRepoRoutes(api, &mockGitHub{}, prov)

		resp := api.Delete("/repos/rober/demo-app/collaborators/alice")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "alice", removed)
	})
}
