package domain

import "time"

// Visibility of a remote repository.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// RemoteRepository is the provider-owned view of a repository. It is
// cached transiently per request only; no copy persists across requests.
type RemoteRepository struct {
	ID            int64          `json:"id"`
	Owner         string         `json:"owner"`
	Name          string         `json:"name"`
	FullName      string         `json:"full_name"`
	Description   string         `json:"description"`
	HTMLURL       string         `json:"html_url"`
	Homepage      string         `json:"homepage,omitempty"`
	Language      string         `json:"language,omitempty"`
	Languages     map[string]int `json:"languages,omitempty"`
	Stars         int            `json:"stargazers_count"`
	Forks         int            `json:"forks_count"`
	OpenIssues    int            `json:"open_issues_count"`
	Private       bool           `json:"private"`
	Archived      bool           `json:"archived"`
	DefaultBranch string         `json:"default_branch"`
	Topics        []string       `json:"topics"`
	Visibility    Visibility     `json:"visibility"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	PushedAt      time.Time      `json:"pushed_at"`
}

// RepositoryPatch is an optional subset of mutable repository fields.
// Nil fields are left untouched.
type RepositoryPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Private     *bool   `json:"private,omitempty"`
}

// Empty reports whether the patch carries no field at all.
func (p RepositoryPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Private == nil
}

// DiffAgainst drops patch fields that already match the current remote
// state, so a vacuous update never reaches the provider.
func (p RepositoryPatch) DiffAgainst(current *RemoteRepository) RepositoryPatch {
	var out RepositoryPatch
	if p.Name != nil && *p.Name != current.Name {
		out.Name = p.Name
	}
	if p.Description != nil && *p.Description != current.Description {
		out.Description = p.Description
	}
	if p.Private != nil && *p.Private != current.Private {
		out.Private = p.Private
	}
	return out
}

// Collaborator is a provider-side grant on a specific repository. Never
// persisted locally; always fetched live.
type Collaborator struct {
	Login      string `json:"login"`
	AvatarURL  string `json:"avatar_url"`
	Permission string `json:"permission"`
	RoleLabel  string `json:"role_label"`
}

// Identity is the provider account a credential resolves to.
type Identity struct {
	Login       string    `json:"login"`
	DisplayName string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio,omitempty"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	HTMLURL     string    `json:"html_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// RemoteFile is a file fetched through the provider contents API. SHA is
// the revision marker the provider requires to accept an update.
type RemoteFile struct {
	Path    string
	Content string
	SHA     string
}
