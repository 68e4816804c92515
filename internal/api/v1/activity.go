package v1

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/thisisrober/provisioner/internal/domain"
)

type GetProfileInput struct{}

type GetProfileOutput struct {
	Body *domain.Identity
}

type ListEventsInput struct {
	Login string `query:"login" doc:"Account to inspect; defaults to the credential's owner"`
}

type ListEventsOutput struct {
	Body struct {
		Events   []domain.Event `json:"events"`
		Warnings []string       `json:"warnings,omitempty" doc:"Pages that could not be fetched"`
	}
}

type GetContributionsInput struct {
	Login string `query:"login" doc:"Account to inspect; defaults to the credential's owner"`
}

type GetContributionsOutput struct {
	Body *domain.ContributionCalendar
}

func RegisterActivityRoutes(api huma.API, gh GitHubClient) {
	// resolveLogin falls back to the authenticated identity when no login
	// is given.
	resolveLogin := func(ctx context.Context, login string) (string, error) {
		if login != "" {
			return login, nil
		}
		identity, err := gh.CurrentUser(ctx)
		if err != nil {
			return "", err
		}
		return identity.Login, nil
	}

	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profile",
		Summary:     "Profile of the account behind the effective credential",
		Tags:        []string{"Activity"},
	}, func(ctx context.Context, _ *GetProfileInput) (*GetProfileOutput, error) {
		identity, err := gh.CurrentUser(ctx)
		if err != nil {
			return nil, mapDomainError(err, "profile")
		}
		return &GetProfileOutput{Body: identity}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-events",
		Method:      http.MethodGet,
		Path:        "/events",
		Summary:     "Recent account activity, best effort",
		Tags:        []string{"Activity"},
	}, func(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
		login, err := resolveLogin(ctx, input.Login)
		if err != nil {
			return nil, mapDomainError(err, "events")
		}
		events, warnings, err := gh.ListUserEvents(ctx, login)
		if err != nil {
			return nil, mapDomainError(err, "events")
		}
		out := &ListEventsOutput{}
		out.Body.Events = events
		out.Body.Warnings = warnings
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-contributions",
		Method:      http.MethodGet,
		Path:        "/contributions",
		Summary:     "A year of daily contribution counts",
		Tags:        []string{"Activity"},
	}, func(ctx context.Context, input *GetContributionsInput) (*GetContributionsOutput, error) {
		login, err := resolveLogin(ctx, input.Login)
		if err != nil {
			return nil, mapDomainError(err, "contributions")
		}
		calendar, err := gh.ContributionCalendar(ctx, login)
		if err != nil {
			return nil, mapDomainError(err, "contributions")
		}
		return &GetContributionsOutput{Body: calendar}, nil
	})
}
