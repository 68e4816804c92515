package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type DeployRepoInput struct {
	Owner string `path:"owner" doc:"Repository owner login"`
	Repo  string `path:"repo" doc:"Repository name"`
}

type DeployRepoOutput struct {
	Body struct {
		Path string `json:"path" doc:"Local checkout path"`
	}
}

type RemoveDeployInput struct {
	Repo string `path:"repo" doc:"Repository name"`
}

type RemoveDeployOutput struct {
	Body struct {
		Removed bool `json:"removed"`
	}
}

func RegisterDeployRoutes(api huma.API, deployer Deployer) {
	huma.Register(api, huma.Operation{
		OperationID: "deploy-repo",
		Method:      http.MethodPost,
		Path:        "/deploy/{owner}/{repo}",
		Summary:     "Clone the repository locally, or fast-forward an existing checkout",
		Tags:        []string{"Deploy"},
	}, func(ctx context.Context, input *DeployRepoInput) (*DeployRepoOutput, error) {
		path, err := deployer.Deploy(ctx, input.Owner, input.Repo)
		if err != nil {
			return nil, mapDomainError(err, "deploy")
		}
		out := &DeployRepoOutput{}
		out.Body.Path = path
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "remove-deploy",
		Method:      http.MethodDelete,
		Path:        "/deploy/{repo}",
		Summary:     "Remove the local checkout; removing an absent one succeeds",
		Tags:        []string{"Deploy"},
	}, func(_ context.Context, input *RemoveDeployInput) (*RemoveDeployOutput, error) {
		if err := deployer.Remove(input.Repo); err != nil {
			return nil, mapDomainError(err, "deploy removal")
		}
		out := &RemoveDeployOutput{}
		out.Body.Removed = true
		return out, nil
	})
}
