package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/thisisrober/provisioner/internal/credential"
	"github.com/thisisrober/provisioner/internal/domain"
)

type CredentialStatusInput struct{}

type CredentialStatusOutput struct {
	Body *credential.Status
}

type SaveCredentialInput struct {
	Body struct {
		Token string `json:"token" minLength:"1" doc:"GitHub personal access token"`
	}
}

type SaveCredentialOutput struct {
	Body *domain.Identity
}

type ValidateCredentialInput struct {
	Body struct {
		Token string `json:"token" minLength:"1" doc:"Token to check without persisting"`
	}
}

type ValidateCredentialOutput struct {
	Body *domain.Identity
}

func RegisterCredentialRoutes(api huma.API, creds CredentialService) {
	huma.Register(api, huma.Operation{
		OperationID: "get-credential-status",
		Method:      http.MethodGet,
		Path:        "/credential/status",
		Summary:     "Report whether a GitHub credential is stored and who it belongs to",
		Tags:        []string{"Credential"},
	}, func(ctx context.Context, _ *CredentialStatusInput) (*CredentialStatusOutput, error) {
		status, err := creds.Status(ctx)
		if err != nil {
			return nil, mapDomainError(err, "credential status")
		}
		return &CredentialStatusOutput{Body: status}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "save-credential",
		Method:      http.MethodPost,
		Path:        "/credential",
		Summary:     "Validate and store a GitHub token",
		Tags:        []string{"Credential"},
	}, func(ctx context.Context, input *SaveCredentialInput) (*SaveCredentialOutput, error) {
		identity, err := creds.Save(ctx, input.Body.Token)
		if err != nil {
			return nil, mapDomainError(err, "credential")
		}
		return &SaveCredentialOutput{Body: identity}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "validate-credential",
		Method:      http.MethodPost,
		Path:        "/credential/validate",
		Summary:     "Check a token against GitHub without persisting it",
		Tags:        []string{"Credential"},
	}, func(ctx context.Context, input *ValidateCredentialInput) (*ValidateCredentialOutput, error) {
		identity, err := creds.Validate(ctx, input.Body.Token)
		if err != nil {
			return nil, mapDomainError(err, "credential")
		}
		return &ValidateCredentialOutput{Body: identity}, nil
	})
}
