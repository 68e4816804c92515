package server

import (
	"github.com/danielgtaylor/huma/v2"

	v1 "github.com/thisisrober/provisioner/internal/api/v1"
)

func registerAPIRoutes(api huma.API, deps Deps) {
	v1.RegisterCredentialRoutes(api, deps.Creds)
	v1.RegisterRepoRoutes(api, deps.GitHub, deps.Provision)
	v1.RegisterTemplateRoutes(api, deps.Templates)
	v1.RegisterDeployRoutes(api, deps.Deployer)
	v1.RegisterPortfolioRoutes(api, deps.GitHub, deps.Portfolio)
	v1.RegisterActivityRoutes(api, deps.GitHub)
}
