// Package github wraps the provider's REST and GraphQL APIs behind typed
// operations. The client is stateless: every call resolves its token
// through the injected CredentialSource (or a per-request override) and
// surfaces failures synchronously as domain error kinds. No automatic
// retries happen here; callers compose their own policy.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"
	"golang.org/x/sync/errgroup"

	"github.com/thisisrober/provisioner/internal/domain"
)

const listPageSize = 100

// eventPageCap bounds the best-effort activity listing (the provider
// serves at most 300 events anyway).
const eventPageCap = 10

// CredentialSource resolves the persisted bearer token. An empty token
// with a nil error means no credential is configured.
type CredentialSource interface {
	Token(ctx context.Context) (string, error)
}

// Client issues authenticated provider calls.
type Client struct {
	creds      CredentialSource
	override   string
	httpClient *http.Client
	apiBaseURL string
	graphqlURL string
}

// Option configures a Client.
type Option func(*Client)

// WithAPIBaseURL points REST calls at an alternate endpoint (tests).
func WithAPIBaseURL(u string) Option { return func(c *Client) { c.apiBaseURL = u } }

// WithGraphQLURL points the GraphQL call at an alternate endpoint.
func WithGraphQLURL(u string) Option { return func(c *Client) { c.graphqlURL = u } }

// WithHTTPClient sets the underlying transport.
func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.httpClient = hc } }

// NewClient builds a client resolving tokens from creds.
func NewClient(creds CredentialSource, opts ...Option) *Client {
	c := &Client{
		creds:      creds,
		graphqlURL: "https://api.github.com/graphql",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithToken returns a copy of the client bound to an override token for
// the duration of one request. An empty token returns the client as-is.
func (c *Client) WithToken(token string) *Client {
	if token == "" {
		return c
	}
	c2 := *c
	c2.override = token
	return &c2
}

// token resolves the effective bearer token: explicit override first,
// then a per-request context override, then the persisted credential.
// An unset credential fails with ErrUnauthenticated before any network
// call.
func (c *Client) token(ctx context.Context) (string, error) {
	if c.override != "" {
		return c.override, nil
	}
	if tok, ok := TokenFromContext(ctx); ok && tok != "" {
		return tok, nil
	}
	if c.creds == nil {
		return "", domain.ErrUnauthenticated
	}
	tok, err := c.creds.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("github: resolving credential: %w", err)
	}
	if tok == "" {
		return "", domain.ErrUnauthenticated
	}
	return tok, nil
}

func (c *Client) rest(ctx context.Context) (*gh.Client, error) {
	tok, err := c.token(ctx)
	if err != nil {
		return nil, err
	}
	return c.restWithToken(tok)
}

func (c *Client) restWithToken(token string) (*gh.Client, error) {
	client := gh.NewClient(c.httpClient).WithAuthToken(token)
	if c.apiBaseURL != "" {
		base := c.apiBaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("github: parsing API base URL: %w", err)
		}
		client.BaseURL = u
	}
	return client, nil
}

// Validate checks a token against the identity endpoint without touching
// the persisted credential. A rejected token maps to ErrInvalidCredential.
func (c *Client) Validate(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, fmt.Errorf("github.Validate: empty token: %w", domain.ErrInvalidCredential)
	}
	client, err := c.restWithToken(token)
	if err != nil {
		return nil, err
	}
	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("github.Validate: %w", mapError(err))
	}
	return toIdentity(user), nil
}

// CurrentUser resolves the identity behind the effective credential.
func (c *Client) CurrentUser(ctx context.Context) (*domain.Identity, error) {
	client, err := c.rest(ctx)
	if err != nil {
		return nil, err
	}
	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("github.CurrentUser: %w", mapError(err))
	}
	return toIdentity(user), nil
}

// ListRepositories pages through every repository the authenticated user
// owns. No caching: each call re-pages from scratch.
func (c *Client) ListRepositories(ctx context.Context) ([]*domain.RemoteRepository, error) {
	client, err := c.rest(ctx)
	if err != nil {
		return nil, err
	}

	opts := &gh.RepositoryListByAuthenticatedUserOptions{
		Affiliation: "owner",
		Sort:        "updated",
		ListOptions: gh.ListOptions{PerPage: listPageSize},
	}

	var all []*domain.RemoteRepository
	for {
		repos, resp, err := client.Repositories.ListByAuthenticatedUser(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("github.ListRepositories: %w", mapError(err))
		}
		for _, r := range repos {
			all = append(all, toRepository(r))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// GetRepository fetches a repository and its language breakdown. The two
// reads run concurrently.
func (c *Client) GetRepository(ctx context.Context, owner, name string) (*domain.RemoteRepository, error) {
	client, err := c.rest(ctx)
	if err != nil {
		return nil, err
	}

	var (
		repo  *gh.Repository
		langs map[string]int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, _, err := client.Repositories.Get(gctx, owner, name)
		if err != nil {
			return fmt.Errorf("github.GetRepository: %w", mapError(err))
		}
		repo = r
		return nil
	})
	g.Go(func() error {
		l, _, err := client.Repositories.ListLanguages(gctx, owner, name)
		if err != nil {
			return fmt.Errorf("github.GetRepository: languages: %w", mapError(err))
		}
		langs = l
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := toRepository(repo)
	out.Languages = langs
	return out, nil
}

// CreateRepositoryRequest carries the create parameters. AutoInit must be
// true for the template workflow so a default branch and README exist.
type CreateRepositoryRequest struct {
	Name        string
	Description string
	Private     bool
	AutoInit    bool
}

// CreateRepository creates a repository for the authenticated user. A
// taken name surfaces as ErrConflict.
func (c *Client) CreateRepository(ctx context.Context, req CreateRepositoryRequest) (*domain.RemoteRepository, error) {
	client, err := c.rest(ctx)
	if err != nil {
		return nil, err
	}
	repo, _, err := client.Repositories.Create(ctx, "", &gh.Repository{
		Name:        gh.String(req.Name),
		Description: gh.String(req.Description),
		Private:     gh.Bool(req.Private),
		AutoInit:    gh.Bool(req.AutoInit),
	})
	if err != nil {
		return nil, fmt.Errorf("github.CreateRepository: %w", mapError(err))
	}
	return toRepository(repo), nil
}

// UpdateRepository applies a metadata patch. Callers are expected to have
// diffed already; this is a direct passthrough.
func (c *Client) UpdateRepository(ctx context.Context, owner, name string, patch domain.RepositoryPatch) (*domain.RemoteRepository, error) {
	client, err := c.rest(ctx)
	if err != nil {
		return nil, err
	}
	repo, _, err := client.Repositories.Edit(ctx, owner, name, &gh.Repository{
		Name:        patch.Name,
		Description: patch.Description,
		Private:     patch.Private,
	})
	if err != nil {
		return nil, fmt.Errorf("github.UpdateRepository: %w", mapError(err))
	}
	return toRepository(repo), nil
}

// DeleteRepository is irreversible and never retried automatically.
func (c *Client) DeleteRepository(ctx context.Context, owner, name string) error {
	client, err := c.rest(ctx)
	if err != nil {
		return err
	}
	_, err = client.Repositories.Delete(ctx, owner, name)
	if err != nil {
		return fmt.Errorf("github.DeleteRepository: %w", mapError(err))
	}
	return nil
}

// GetFileContent reads a file through the contents API. A missing file
// returns (nil, nil): absence is an answer, not a failure.
func (c *Client) GetFileContent(ctx context.Context, owner, name, path string) (*domain.RemoteFile, error) {
	client, err := c.rest(ctx)
	if err != nil {
		return nil, err
	}
	fileContent, _, _, err := client.Repositories.GetContents(ctx, owner, name, path, &gh.RepositoryContentGetOptions{})
	if err != nil {
		mapped := mapError(err)
		if isNotFound(mapped) {
			return nil, nil
		}
		return nil, fmt.Errorf("github.GetFileContent: %w", mapped)
	}
	if fileContent == nil {
		// Path resolved to a directory listing.
		return nil, fmt.Errorf("github.GetFileContent: %q is a directory: %w", path, domain.ErrUnexpected)
	}
	content, err := fileContent.GetContent()
	if err != nil {
		return nil, fmt.Errorf("github.GetFileContent: decoding %q: %w", path, domain.ErrUnexpected)
	}
	return &domain.RemoteFile{
		Path:    path,
		Content: content,
		SHA:     fileContent.GetSHA(),
	}, nil
}

// CreateOrUpdateFile writes a file. A non-empty sha requests an update of
// that exact revision; an empty sha requests creation. Either way a stale
// or colliding write surfaces as ErrConflict.
func (c *Client) CreateOrUpdateFile(ctx context.Context, owner, name, path, content, message, sha string) error {
	client, err := c.rest(ctx)
	if err != nil {
		return err
	}
	opts := &gh.RepositoryContentFileOptions{
		Message: gh.String(message),
		Content: []byte(content),
	}
	if sha != "" {
		opts.SHA = gh.String(sha)
		_, _, err = client.Repositories.UpdateFile(ctx, owner, name, path, opts)
	} else {
		_, _, err = client.Repositories.CreateFile(ctx, owner, name, path, opts)
	}
	if err != nil {
		return fmt.Errorf("github.CreateOrUpdateFile: %q: %w", path, mapError(err))
	}
	return nil
}

// ListCollaborators fetches the live grant list for a repository.
func (c *Client) ListCollaborators(ctx context.Context, owner, name string) ([]domain.Collaborator, error) {
	client, err := c.rest(ctx)
	if err != nil {
		return nil, err
	}
	users, _, err := client.Repositories.ListCollaborators(ctx, owner, name, &gh.ListCollaboratorsOptions{
		ListOptions: gh.ListOptions{PerPage: listPageSize},
	})
	if err != nil {
		return nil, fmt.Errorf("github.ListCollaborators: %w", mapError(err))
	}
	out := make([]domain.Collaborator, 0, len(users))
	for _, u := range users {
		out = append(out, domain.Collaborator{
			Login:      u.GetLogin(),
			AvatarURL:  u.GetAvatarURL(),
			Permission: permissionLevel(u.Permissions),
			RoleLabel:  u.GetRoleName(),
		})
	}
	return out, nil
}

// AddCollaborator grants access. Adding an already-present collaborator
// updates their permission; the provider treats that as success.
func (c *Client) AddCollaborator(ctx context.Context, owner, name, login, permission string) error {
	client, err := c.rest(ctx)
	if err != nil {
		return err
	}
	_, _, err = client.Repositories.AddCollaborator(ctx, owner, name, login, &gh.RepositoryAddCollaboratorOptions{
		Permission: providerPermission(permission),
	})
	if err != nil {
		return fmt.Errorf("github.AddCollaborator: %w", mapError(err))
	}
	return nil
}

// RemoveCollaborator revokes access.
func (c *Client) RemoveCollaborator(ctx context.Context, owner, name, login string) error {
	client, err := c.rest(ctx)
	if err != nil {
		return err
	}
	_, err = client.Repositories.RemoveCollaborator(ctx, owner, name, login)
	if err != nil {
		return fmt.Errorf("github.RemoveCollaborator: %w", mapError(err))
	}
	return nil
}

// ListUserEvents pages recent account activity up to a fixed cap. This is
// best-effort telemetry: a page-fetch error stops the walk and is
// reported as a warning instead of failing the whole call.
func (c *Client) ListUserEvents(ctx context.Context, login string) ([]domain.Event, []string, error) {
	client, err := c.rest(ctx)
	if err != nil {
		return nil, nil, err
	}

	var (
		events   []domain.Event
		warnings []string
	)
	for page := 1; page <= eventPageCap; page++ {
		batch, _, err := client.Activity.ListEventsPerformedByUser(ctx, login, false, &gh.ListOptions{
			PerPage: listPageSize,
			Page:    page,
		})
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("events page %d: %v", page, mapError(err)))
			break
		}
		if len(batch) == 0 {
			break
		}
		for _, ev := range batch {
			events = append(events, domain.Event{
				Type:      ev.GetType(),
				Repo:      ev.GetRepo().GetName(),
				CreatedAt: ev.GetCreatedAt().Time,
			})
		}
		if len(batch) < listPageSize {
			break
		}
	}

	return events, warnings, nil
}

// permissionLevel collapses the provider's permission map to the highest
// of admin/write/read.
func permissionLevel(perms map[string]bool) string {
	switch {
	case perms["admin"]:
		return "admin"
	case perms["push"]:
		return "write"
	default:
		return "read"
	}
}

// providerPermission maps our permission names onto the provider's.
func providerPermission(p string) string {
	switch p {
	case "read":
		return "pull"
	case "admin":
		return "admin"
	default:
		return "push"
	}
}

func toIdentity(u *gh.User) *domain.Identity {
	return &domain.Identity{
		Login:       u.GetLogin(),
		DisplayName: u.GetName(),
		AvatarURL:   u.GetAvatarURL(),
		Bio:         u.GetBio(),
		PublicRepos: u.GetPublicRepos(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
		HTMLURL:     u.GetHTMLURL(),
		CreatedAt:   u.GetCreatedAt().Time,
	}
}

func toRepository(r *gh.Repository) *domain.RemoteRepository {
	visibility := domain.VisibilityPublic
	if r.GetPrivate() {
		visibility = domain.VisibilityPrivate
	}
	return &domain.RemoteRepository{
		ID:            r.GetID(),
		Owner:         r.GetOwner().GetLogin(),
		Name:          r.GetName(),
		FullName:      r.GetFullName(),
		Description:   r.GetDescription(),
		HTMLURL:       r.GetHTMLURL(),
		Homepage:      r.GetHomepage(),
		Language:      r.GetLanguage(),
		Stars:         r.GetStargazersCount(),
		Forks:         r.GetForksCount(),
		OpenIssues:    r.GetOpenIssuesCount(),
		Private:       r.GetPrivate(),
		Archived:      r.GetArchived(),
		DefaultBranch: r.GetDefaultBranch(),
		Topics:        r.Topics,
		Visibility:    visibility,
		CreatedAt:     r.GetCreatedAt().Time,
		UpdatedAt:     r.GetUpdatedAt().Time,
		PushedAt:      r.GetPushedAt().Time,
	}
}
