package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/thisisrober/provisioner/internal/domain"
	"github.com/thisisrober/provisioner/internal/portfolio"
)

type RepoStatusInput struct {
	Owner string `path:"owner" doc:"Repository owner login"`
	Repo  string `path:"repo" doc:"Repository name"`
}

type RepoStatusOutput struct {
	Body *domain.RepoStatus
}

type AttachRepoInput struct {
	Body struct {
		Owner        string               `json:"owner" minLength:"1" doc:"Repository owner login"`
		Repo         string               `json:"repo" minLength:"1" doc:"Repository name"`
		Name         domain.LocalizedText `json:"name" doc:"Display name per locale"`
		Description  domain.LocalizedText `json:"description,omitempty" doc:"Display description per locale"`
		Technologies []string             `json:"technologies,omitempty" doc:"Technology labels"`
		Badge        string               `json:"badge,omitempty" doc:"Display badge"`
		PreviewImage string               `json:"preview_image,omitempty" doc:"Stored preview image filename"`
		Deploy       bool                 `json:"deploy,omitempty" doc:"Deploy locally and use the checkout as live link"`
	}
}

type AttachRepoOutput struct {
	Body struct {
		Entry   *domain.PortfolioEntry `json:"entry"`
		Updated bool                   `json:"updated" doc:"True when an existing entry was updated in place"`
	}
}

type ListPortfolioInput struct{}

type ListPortfolioOutput struct {
	Body []*domain.PortfolioEntry
}

type GetPortfolioEntryInput struct {
	Owner string `path:"owner" doc:"Repository owner login"`
	Repo  string `path:"repo" doc:"Repository name"`
}

type GetPortfolioEntryOutput struct {
	Body *domain.PortfolioEntry
}

type UpdatePortfolioEntryInput struct {
	ID   uuid.UUID `path:"id" doc:"Portfolio entry ID"`
	Body struct {
		Name         *domain.LocalizedText `json:"name,omitempty" doc:"New display name"`
		Description  *domain.LocalizedText `json:"description,omitempty" doc:"New display description"`
		Technologies *[]string             `json:"technologies,omitempty" doc:"New technology labels"`
		Badge        *string               `json:"badge,omitempty" doc:"New badge"`
		PreviewImage *string               `json:"preview_image,omitempty" doc:"New preview image filename"`
		LiveLink     *string               `json:"live_link,omitempty" doc:"New live link"`
	}
}

type UpdatePortfolioEntryOutput struct {
	Body *domain.PortfolioEntry
}

func RegisterPortfolioRoutes(api huma.API, gh GitHubClient, svc PortfolioService) {
	huma.Register(api, huma.Operation{
		OperationID: "get-repo-status",
		Method:      http.MethodGet,
		Path:        "/status/{owner}/{repo}",
		Summary:     "Composite deploy/attach status for a repository",
		Tags:        []string{"Portfolio"},
	}, func(ctx context.Context, input *RepoStatusInput) (*RepoStatusOutput, error) {
		status, err := svc.StatusOf(ctx, input.Owner, input.Repo)
		if err != nil {
			return nil, mapDomainError(err, "status")
		}
		return &RepoStatusOutput{Body: status}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "attach-repo",
		Method:      http.MethodPost,
		Path:        "/attach",
		Summary:     "Attach a repository to the portfolio, optionally deploying it",
		Tags:        []string{"Portfolio"},
	}, func(ctx context.Context, input *AttachRepoInput) (*AttachRepoOutput, error) {
		repo, err := gh.GetRepository(ctx, input.Body.Owner, input.Body.Repo)
		if err != nil {
			return nil, mapDomainError(err, "repository")
		}

		entry, updated, err := svc.Attach(ctx, repo, portfolio.AttachRequest{
			Name:         input.Body.Name,
			Description:  input.Body.Description,
			Technologies: input.Body.Technologies,
			Badge:        input.Body.Badge,
			PreviewImage: input.Body.PreviewImage,
			Deploy:       input.Body.Deploy,
		})
		if err != nil {
			return nil, mapDomainError(err, "attach")
		}

		out := &AttachRepoOutput{}
		out.Body.Entry = entry
		out.Body.Updated = updated
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-portfolio",
		Method:      http.MethodGet,
		Path:        "/portfolio",
		Summary:     "List every portfolio entry",
		Tags:        []string{"Portfolio"},
	}, func(ctx context.Context, _ *ListPortfolioInput) (*ListPortfolioOutput, error) {
		entries, err := svc.List(ctx)
		if err != nil {
			return nil, mapDomainError(err, "portfolio listing")
		}
		return &ListPortfolioOutput{Body: entries}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-portfolio-entry",
		Method:      http.MethodGet,
		Path:        "/portfolio/{owner}/{repo}",
		Summary:     "Look a portfolio entry up by repository",
		Tags:        []string{"Portfolio"},
	}, func(ctx context.Context, input *GetPortfolioEntryInput) (*GetPortfolioEntryOutput, error) {
		entry, err := svc.GetByRepo(ctx, input.Owner, input.Repo)
		if err != nil {
			return nil, mapDomainError(err, "portfolio entry")
		}
		return &GetPortfolioEntryOutput{Body: entry}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-portfolio-entry",
		Method:      http.MethodPut,
		Path:        "/portfolio/{id}",
		Summary:     "Update a portfolio entry's display fields",
		Tags:        []string{"Portfolio"},
	}, func(ctx context.Context, input *UpdatePortfolioEntryInput) (*UpdatePortfolioEntryOutput, error) {
		entry, err := svc.UpdateEntry(ctx, input.ID, portfolio.EntryUpdate{
			Name:         input.Body.Name,
			Description:  input.Body.Description,
			Technologies: input.Body.Technologies,
			Badge:        input.Body.Badge,
			PreviewImage: input.Body.PreviewImage,
			LiveLink:     input.Body.LiveLink,
		})
		if err != nil {
			return nil, mapDomainError(err, "portfolio entry")
		}
		return &UpdatePortfolioEntryOutput{Body: entry}, nil
	})
}
