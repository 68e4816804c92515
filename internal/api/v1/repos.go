package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/thisisrober/provisioner/internal/domain"
	"github.com/thisisrober/provisioner/internal/provision"
)

type ListReposInput struct{}

type ListReposOutput struct {
	Body []*domain.RemoteRepository
}

type CreateRepoInput struct {
	Body struct {
		Name        string `json:"name" minLength:"1" maxLength:"100" doc:"Repository name"`
		Description string `json:"description,omitempty" maxLength:"350" doc:"Repository description"`
		Template    string `json:"template" minLength:"1" doc:"Scaffold template id"`
		Private     bool   `json:"private,omitempty" doc:"Create as private"`
	}
}

type CreateRepoOutput struct {
	Body *domain.RemoteRepository
}

type GetRepoInput struct {
	Owner string `path:"owner" doc:"Repository owner login"`
	Repo  string `path:"repo" doc:"Repository name"`
}

type GetRepoOutput struct {
	Body *domain.RemoteRepository
}

type UpdateRepoInput struct {
	Owner string `path:"owner" doc:"Repository owner login"`
	Repo  string `path:"repo" doc:"Repository name"`
	Body  struct {
		Name        *string `json:"name,omitempty" maxLength:"100" doc:"New repository name"`
		Description *string `json:"description,omitempty" maxLength:"350" doc:"New description"`
		Private     *bool   `json:"private,omitempty" doc:"New visibility"`
	}
}

type UpdateRepoOutput struct {
	Body struct {
		Repository *domain.RemoteRepository `json:"repository"`
		Changed    bool                     `json:"changed" doc:"False when the patch was a no-op"`
	}
}

type DeleteRepoInput struct {
	Owner string `path:"owner" doc:"Repository owner login"`
	Repo  string `path:"repo" doc:"Repository name"`
}

type DeleteRepoOutput struct {
	Body struct {
		Deleted  bool     `json:"deleted"`
		Warnings []string `json:"warnings,omitempty" doc:"Best-effort cascade steps that failed"`
	}
}

type ListCollaboratorsInput struct {
	Owner string `path:"owner" doc:"Repository owner login"`
	Repo  string `path:"repo" doc:"Repository name"`
}

type ListCollaboratorsOutput struct {
	Body []domain.Collaborator
}

type AddCollaboratorInput struct {
	Owner    string `path:"owner" doc:"Repository owner login"`
	Repo     string `path:"repo" doc:"Repository name"`
	Username string `path:"username" doc:"Login to grant access"`
	Body     struct {
		Permission string `json:"permission,omitempty" enum:"read,write,admin" doc:"Permission level, defaults to write"`
	}
}

type AddCollaboratorOutput struct {
	Body struct {
		Added bool `json:"added"`
	}
}

type RemoveCollaboratorInput struct {
	Owner    string `path:"owner" doc:"Repository owner login"`
	Repo     string `path:"repo" doc:"Repository name"`
	Username string `path:"username" doc:"Login to revoke"`
}

type RemoveCollaboratorOutput struct {
	Body struct {
		Removed bool `json:"removed"`
	}
}

func RegisterRepoRoutes(api huma.API, gh GitHubClient, prov Provisioner) {
	huma.Register(api, huma.Operation{
		OperationID: "list-repos",
		Method:      http.MethodGet,
		Path:        "/repos",
		Summary:     "List every repository the stored credential owns",
		Tags:        []string{"Repositories"},
	}, func(ctx context.Context, _ *ListReposInput) (*ListReposOutput, error) {
		repos, err := gh.ListRepositories(ctx)
		if err != nil {
			return nil, mapDomainError(err, "repository listing")
		}
		return &ListReposOutput{Body: repos}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "create-repo",
		Method:      http.MethodPost,
		Path:        "/repos",
		Summary:     "Create a repository and populate it from a template",
		Tags:        []string{"Repositories"},
	}, func(ctx context.Context, input *CreateRepoInput) (*CreateRepoOutput, error) {
		repo, err := prov.CreateFromTemplate(ctx, provision.CreateRequest{
			Name:        input.Body.Name,
			Description: input.Body.Description,
			TemplateID:  input.Body.Template,
			Private:     input.Body.Private,
		})
		if err != nil {
			return nil, mapDomainError(err, "repository creation")
		}
		return &CreateRepoOutput{Body: repo}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-repo",
		Method:      http.MethodGet,
		Path:        "/repos/{owner}/{repo}",
		Summary:     "Get a repository with its language breakdown",
		Tags:        []string{"Repositories"},
	}, func(ctx context.Context, input *GetRepoInput) (*GetRepoOutput, error) {
		repo, err := gh.GetRepository(ctx, input.Owner, input.Repo)
		if err != nil {
			return nil, mapDomainError(err, "repository")
		}
		return &GetRepoOutput{Body: repo}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-repo",
		Method:      http.MethodPatch,
		Path:        "/repos/{owner}/{repo}",
		Summary:     "Update repository metadata, sending only changed fields",
		Tags:        []string{"Repositories"},
	}, func(ctx context.Context, input *UpdateRepoInput) (*UpdateRepoOutput, error) {
		repo, changed, err := prov.Update(ctx, input.Owner, input.Repo, domain.RepositoryPatch{
			Name:        input.Body.Name,
			Description: input.Body.Description,
			Private:     input.Body.Private,
		})
		if err != nil {
			return nil, mapDomainError(err, "repository update")
		}
		out := &UpdateRepoOutput{}
		out.Body.Repository = repo
		out.Body.Changed = changed
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "delete-repo",
		Method:      http.MethodDelete,
		Path:        "/repos/{owner}/{repo}",
		Summary:     "Delete a repository and cascade into the local checkout and portfolio",
		Tags:        []string{"Repositories"},
	}, func(ctx context.Context, input *DeleteRepoInput) (*DeleteRepoOutput, error) {
		warnings, err := prov.Delete(ctx, input.Owner, input.Repo)
		if err != nil {
			return nil, mapDomainError(err, "repository deletion")
		}
		out := &DeleteRepoOutput{}
		out.Body.Deleted = true
		out.Body.Warnings = warnings
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-collaborators",
		Method:      http.MethodGet,
		Path:        "/repos/{owner}/{repo}/collaborators",
		Summary:     "List the repository's collaborators",
		Tags:        []string{"Collaborators"},
	}, func(ctx context.Context, input *ListCollaboratorsInput) (*ListCollaboratorsOutput, error) {
		collabs, err := prov.Collaborators(ctx, input.Owner, input.Repo)
		if err != nil {
			return nil, mapDomainError(err, "collaborator listing")
		}
		return &ListCollaboratorsOutput{Body: collabs}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "add-collaborator",
		Method:      http.MethodPut,
		Path:        "/repos/{owner}/{repo}/collaborators/{username}",
		Summary:     "Grant a user access to the repository",
		Tags:        []string{"Collaborators"},
	}, func(ctx context.Context, input *AddCollaboratorInput) (*AddCollaboratorOutput, error) {
		err := prov.AddCollaborator(ctx, input.Owner, input.Repo, input.Username, input.Body.Permission)
		if err != nil {
			return nil, mapDomainError(err, "collaborator")
		}
		out := &AddCollaboratorOutput{}
		out.Body.Added = true
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "remove-collaborator",
		Method:      http.MethodDelete,
		Path:        "/repos/{owner}/{repo}/collaborators/{username}",
		Summary:     "Revoke a user's access to the repository",
		Tags:        []string{"Collaborators"},
	}, func(ctx context.Context, input *RemoveCollaboratorInput) (*RemoveCollaboratorOutput, error) {
		err := prov.RemoveCollaborator(ctx, input.Owner, input.Repo, input.Username)
		if err != nil {
			return nil, mapDomainError(err, "collaborator")
		}
		out := &RemoveCollaboratorOutput{}
		out.Body.Removed = true
		return out, nil
	})
}
