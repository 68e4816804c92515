package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LocalizedText carries the bilingual display fields of the showcase.
type LocalizedText struct {
	ES string `json:"es"`
	EN string `json:"en"`
}

// PortfolioEntry is a locally persisted showcase record linked to exactly
// one remote repository. Owner and RepoName identify the repository
// structurally; SourceLink keeps the canonical URL for display and
// remains unique.
type PortfolioEntry struct {
	ID           uuid.UUID     `json:"id"`
	Owner        string        `json:"owner"`
	RepoName     string        `json:"repo_name"`
	SourceLink   string        `json:"source_link"`
	Name         LocalizedText `json:"name"`
	Description  LocalizedText `json:"description"`
	PreviewImage string        `json:"preview_image,omitempty"`
	LiveLink     string        `json:"live_link,omitempty"`
	Technologies []string      `json:"technologies"`
	Badge        string        `json:"badge,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// NewPortfolioEntry creates an entry with validated required fields.
func NewPortfolioEntry(owner, repoName, sourceLink string, name LocalizedText) (*PortfolioEntry, error) {
	if owner == "" || repoName == "" {
		return nil, fmt.Errorf("portfolio: owner and repo name are required: %w", ErrValidation)
	}
	if sourceLink == "" {
		return nil, fmt.Errorf("portfolio: source link is required: %w", ErrValidation)
	}
	if name.ES == "" || name.EN == "" {
		return nil, fmt.Errorf("portfolio: name is required in both locales: %w", ErrValidation)
	}
	now := time.Now()
	return &PortfolioEntry{
		ID:         uuid.New(),
		Owner:      owner,
		RepoName:   repoName,
		SourceLink: sourceLink,
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

type PortfolioRepository interface {
	Create(ctx context.Context, e *PortfolioEntry) error
	List(ctx context.Context) ([]*PortfolioEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PortfolioEntry, error)
	GetByRepo(ctx context.Context, owner, repoName string) (*PortfolioEntry, error)
	Update(ctx context.Context, e *PortfolioEntry) error
	DeleteByRepo(ctx context.Context, owner, repoName string) error
}

// RepoStatus is the composite tri-state view the reconciliation layer
// computes on demand; it is never stored.
type RepoStatus struct {
	Deployed   bool       `json:"deployed"`
	DeployPath string     `json:"path,omitempty"`
	Attached   bool       `json:"attached"`
	EntryID    *uuid.UUID `json:"entry_id,omitempty"`
}
