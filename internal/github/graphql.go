package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/thisisrober/provisioner/internal/domain"
)

// contributionQuery is the one GraphQL read this service issues: a full
// year of daily contribution counts plus the running total.
const contributionQuery = `query($username: String!) {
  user(login: $username) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            contributionCount
            date
          }
        }
      }
    }
  }
}`

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type contributionResponse struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar domain.ContributionCalendar `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// ContributionCalendar fetches a year of daily activity for a login via
// the GraphQL endpoint. Display-only, never a control input.
func (c *Client) ContributionCalendar(ctx context.Context, login string) (*domain.ContributionCalendar, error) {
	tok, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(graphqlRequest{
		Query:     contributionQuery,
		Variables: map[string]any{"username": login},
	})
	if err != nil {
		return nil, fmt.Errorf("github.ContributionCalendar: encoding query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("github.ContributionCalendar: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	hc := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tok}))
	if c.httpClient != nil {
		hc = c.httpClient
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github.ContributionCalendar: %w: %v", domain.ErrUnexpected, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("github.ContributionCalendar: %w", domain.ErrInvalidCredential)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("github.ContributionCalendar: %w: status %d", domain.ErrUnexpected, resp.StatusCode)
	}

	var decoded contributionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("github.ContributionCalendar: %w: %v", domain.ErrUnexpected, err)
	}
	if len(decoded.Errors) > 0 {
		return nil, fmt.Errorf("github.ContributionCalendar: %w: %s", domain.ErrUnexpected, decoded.Errors[0].Message)
	}
	if decoded.Data.User == nil {
		return nil, fmt.Errorf("github.ContributionCalendar: user %q: %w", login, domain.ErrNotFound)
	}

	calendar := decoded.Data.User.ContributionsCollection.ContributionCalendar
	return &calendar, nil
}
