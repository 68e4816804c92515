package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/thisisrober/provisioner/internal/api/v1"
	"github.com/thisisrober/provisioner/internal/domain"
	"github.com/thisisrober/provisioner/internal/portfolio"
)

func TestRepoStatus(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	entryID := uuid.New()
	svc := &mockPortfolio{
		statusOfFunc: func(_ context.Context, owner, repoName string) (*domain.RepoStatus, error) {
			require.Equal(t, "rober", owner)
			require.Equal(t, "demo-app", repoName)
			return &domain.RepoStatus{Deployed: true, DeployPath: "/srv/projects/demo-app", Attached: true, EntryID: &entryID}, nil
		},
	}
	v1.RegisterPortfolioRoutes(api, &mockGitHub{}, svc)

	resp := api.Get("/status/rober/demo-app")
	require.Equal(t, http.StatusOK, resp.Code)

	var body domain.RepoStatus
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Deployed)
	assert.True(t, body.Attached)
	require.NotNil(t, body.EntryID)
	assert.Equal(t, entryID, *body.EntryID)
}

func TestAttachRepo(t *testing.T) {
	t.Parallel()

	t.Run("happy_path_reports_updated_flag", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		gh := &mockGitHub{
			getRepositoryFunc: func(_ context.Context, owner, name string) (*domain.RemoteRepository, error) {
				return &domain.RemoteRepository{Owner: owner, Name: name, HTMLURL: "https://github.com/rober/demo-app"}, nil
			},
		}
		var gotReq portfolio.AttachRequest
		svc := &mockPortfolio{
			attachFunc: func(_ context.Context, repo *domain.RemoteRepository, req portfolio.AttachRequest) (*domain.PortfolioEntry, bool, error) {
				gotReq = req
				entry, err := domain.NewPortfolioEntry(repo.Owner, repo.Name, repo.HTMLURL, req.Name)
				require.NoError(t, err)
				return entry, true, nil
			},
		}
		v1.RegisterPortfolioRoutes(api, gh, svc)

		resp := api.Post("/attach", map[string]any{
			"owner":        "rober",
			"repo":         "demo-app",
			"name":         map[string]string{"es": "Demo", "en": "Demo"},
			"technologies": []string{"go", "react"},
			"deploy":       true,
		})
		require.Equal(t, http.StatusOK, resp.Code)
		assert.True(t, gotReq.Deploy)
		assert.Equal(t, []string{"go", "react"}, gotReq.Technologies)

		var body struct {
			Updated bool                   `json:"updated"`
			Entry   *domain.PortfolioEntry `json:"entry"`
		}
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.True(t, body.Updated)
		require.NotNil(t, body.Entry)
		assert.Equal(t, "demo-app", body.Entry.RepoName)
	})

	t.Run("unknown_repo_is_404_before_attach", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		gh := &mockGitHub{
			getRepositoryFunc: func(_ context.Context, _, _ string) (*domain.RemoteRepository, error) {
				return nil, domain.ErrNotFound
			},
		}
		var attached bool
		svc := &mockPortfolio{
			attachFunc: func(_ context.Context, _ *domain.RemoteRepository, _ portfolio.AttachRequest) (*domain.PortfolioEntry, bool, error) {
				attached = true
				return nil, false, nil
			},
		}
		v1.RegisterPortfolioRoutes(api, gh, svc)

		resp := api.Post("/attach", map[string]any{
			"owner": "rober",
			"repo":  "ghost",
			"name":  map[string]string{"es": "X", "en": "X"},
		})
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.False(t, attached)
	})

	t.Run("deploy_failure_is_500_with_deploy_kind", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		gh := &mockGitHub{
			getRepositoryFunc: func(_ context.Context, owner, name string) (*domain.RemoteRepository, error) {
				return &domain.RemoteRepository{Owner: owner, Name: name}, nil
			},
		}
		svc := &mockPortfolio{
			attachFunc: func(_ context.Context, _ *domain.RemoteRepository, _ portfolio.AttachRequest) (*domain.PortfolioEntry, bool, error) {
				return nil, false, domain.ErrDeployFailed
			},
		}
		v1.RegisterPortfolioRoutes(api, gh, svc)

		resp := api.Post("/attach", map[string]any{
			"owner": "rober",
			"repo":  "demo-app",
			"name":  map[string]string{"es": "X", "en": "X"},
		})
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}

func TestGetPortfolioEntry(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockPortfolio{
			getByRepoFunc: func(_ context.Context, owner, repoName string) (*domain.PortfolioEntry, error) {
				entry, err := domain.NewPortfolioEntry(owner, repoName, "https://github.com/rober/demo-app",
					domain.LocalizedText{ES: "Demo", EN: "Demo"})
				require.NoError(t, err)
				return entry, nil
			},
		}
		v1.RegisterPortfolioRoutes(api, &mockGitHub{}, svc)

		resp := api.Get("/portfolio/rober/demo-app")
		require.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("absent_is_404", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		svc := &mockPortfolio{
			getByRepoFunc: func(_ context.Context, _, _ string) (*domain.PortfolioEntry, error) {
				return nil, domain.ErrNotFound
			},
		}
		v1.RegisterPortfolioRoutes(api, &mockGitHub{}, svc)

		resp := api.Get("/portfolio/rober/ghost")
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestUpdatePortfolioEntry(t *testing.T) {
	t.Parallel()

	_, api := humatest.New(t)
	id := uuid.New()
	var gotUpd portfolio.EntryUpdate
	svc := &mockPortfolio{
		updateEntryFunc: func(_ context.Context, gotID uuid.UUID, upd portfolio.EntryUpdate) (*domain.PortfolioEntry, error) {
			require.Equal(t, id, gotID)
			gotUpd = upd
			entry, err := domain.NewPortfolioEntry("rober", "demo-app", "https://github.com/rober/demo-app",
				domain.LocalizedText{ES: "Demo", EN: "Demo"})
			require.NoError(t, err)
			return entry, nil
		},
	}
	v1.RegisterPortfolioRoutes(api, &mockGitHub{}, svc)

	resp := api.Put("/portfolio/"+id.String(), map[string]any{
		"badge": "featured",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	require.NotNil(t, gotUpd.Badge)
	assert.Equal(t, "featured", *gotUpd.Badge)
	assert.Nil(t, gotUpd.Name, "unsent fields stay nil")
}

func TestDeployRoutes(t *testing.T) {
	t.Parallel()

	t.Run("deploy_returns_path", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		dep := &mockDeployer{
			deployFunc: func(_ context.Context, owner, name string) (string, error) {
				require.Equal(t, "rober", owner)
				return "/srv/projects/" + name, nil
			},
		}
		v1.RegisterDeployRoutes(api, dep)

		resp := api.Post("/deploy/rober/demo-app")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "/srv/projects/demo-app")
	})

	t.Run("deploy_failure_is_500", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		dep := &mockDeployer{
			deployFunc: func(_ context.Context, _, _ string) (string, error) {
				return "", domain.ErrDeployFailed
			},
		}
		v1.RegisterDeployRoutes(api, dep)

		resp := api.Post("/deploy/rober/demo-app")
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})

	t.Run("remove_is_ok_even_when_absent", func(t *testing.T) {
		t.Parallel()

		_, api := humatest.New(t)
		dep := &mockDeployer{
			removeFunc: func(_ string) error { return nil },
		}
		v1.RegisterDeployRoutes(api, dep)

		resp := api.Delete("/deploy/never-deployed")
		assert.Equal(t, http.StatusOK, resp.Code)
	})
}
