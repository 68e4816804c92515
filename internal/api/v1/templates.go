package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/thisisrober/provisioner/internal/templates"
)

type ListTemplatesInput struct{}

type ListTemplatesOutput struct {
	Body []templates.Info
}

func RegisterTemplateRoutes(api huma.API, catalog TemplateCatalog) {
	huma.Register(api, huma.Operation{
		OperationID: "list-templates",
		Method:      http.MethodGet,
		Path:        "/templates",
		Summary:     "List the scaffold template catalog",
		Tags:        []string{"Templates"},
	}, func(_ context.Context, _ *ListTemplatesInput) (*ListTemplatesOutput, error) {
		return &ListTemplatesOutput{Body: catalog.List()}, nil
	})
}
