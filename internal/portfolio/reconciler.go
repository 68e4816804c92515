// Package portfolio reconciles remote repositories with the locally
// persisted showcase: attaching a repository upserts its entry (and
// optionally deploys it), status composes the checkout state with the
// entry lookup on demand.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thisisrober/provisioner/internal/domain"
)

// Deployer is the local-checkout dependency. Deploy resolves its own
// transport credentials; the reconciler never sees a token.
type Deployer interface {
	Deploy(ctx context.Context, owner, name string) (string, error)
	Status(name string) (deployed bool, path string)
}

// Deleter runs the delete-with-cascade workflow. DetachAndDelete
// delegates rather than duplicating the cascade.
type Deleter interface {
	Delete(ctx context.Context, owner, name string) ([]string, error)
}

// Reconciler keeps showcase entries in step with remote repositories.
type Reconciler struct {
	entries  domain.PortfolioRepository
	deployer Deployer
	deleter  Deleter
}

// NewReconciler wires the reconciliation layer.
func NewReconciler(entries domain.PortfolioRepository, deployer Deployer, deleter Deleter) *Reconciler {
	return &Reconciler{entries: entries, deployer: deployer, deleter: deleter}
}

// AttachRequest carries the showcase display fields.
type AttachRequest struct {
	Name         domain.LocalizedText
	Description  domain.LocalizedText
	Technologies []string
	Badge        string
	PreviewImage string
	Deploy       bool
}

// Attach upserts the showcase entry for repo, keyed by (owner, name):
// an existing entry is updated in place keeping its id, otherwise a new
// one is created. When req.Deploy is set the repository is deployed
// first and the resulting checkout becomes the live link. The boolean
// result reports update (true) versus fresh creation (false).
//
// Two concurrent Attach calls for the same repository race with
// last-write-wins; acceptable for a single-operator tool.
func (r *Reconciler) Attach(ctx context.Context, repo *domain.RemoteRepository, req AttachRequest) (*domain.PortfolioEntry, bool, error) {
	liveLink := ""
	if req.Deploy {
		if _, err := r.deployer.Deploy(ctx, repo.Owner, repo.Name); err != nil {
			return nil, false, fmt.Errorf("portfolio.Attach: %w", err)
		}
		liveLink = "/projects/" + repo.Name
	}

	existing, err := r.entries.GetByRepo(ctx, repo.Owner, repo.Name)
	switch {
	case err == nil:
		existing.Name = req.Name
		existing.Description = req.Description
		existing.Technologies = req.Technologies
		existing.Badge = req.Badge
		existing.SourceLink = repo.HTMLURL
		if req.PreviewImage != "" {
			existing.PreviewImage = req.PreviewImage
		}
		if liveLink != "" {
			existing.LiveLink = liveLink
		}
		existing.UpdatedAt = time.Now()
		if err := r.entries.Update(ctx, existing); err != nil {
			return nil, false, fmt.Errorf("portfolio.Attach: %w", err)
		}
		return existing, true, nil

	case errors.Is(err, domain.ErrNotFound):
		entry, err := domain.NewPortfolioEntry(repo.Owner, repo.Name, repo.HTMLURL, req.Name)
		if err != nil {
			return nil, false, fmt.Errorf("portfolio.Attach: %w", err)
		}
		entry.Description = req.Description
		entry.Technologies = req.Technologies
		entry.Badge = req.Badge
		entry.PreviewImage = req.PreviewImage
		entry.LiveLink = liveLink
		if err := r.entries.Create(ctx, entry); err != nil {
			return nil, false, fmt.Errorf("portfolio.Attach: %w", err)
		}
		return entry, false, nil

	default:
		return nil, false, fmt.Errorf("portfolio.Attach: %w", err)
	}
}

// StatusOf composes the checkout state and the entry lookup into the
// on-demand status view. It never stores anything.
func (r *Reconciler) StatusOf(ctx context.Context, owner, repoName string) (*domain.RepoStatus, error) {
	deployed, path := r.deployer.Status(repoName)
	status := &domain.RepoStatus{Deployed: deployed, DeployPath: path}

	entry, err := r.entries.GetByRepo(ctx, owner, repoName)
	if errors.Is(err, domain.ErrNotFound) {
		return status, nil
	}
	if err != nil {
		return nil, fmt.Errorf("portfolio.StatusOf: %w", err)
	}
	status.Attached = true
	status.EntryID = &entry.ID
	return status, nil
}

// GetByRepo looks an entry up by its structured repository key.
func (r *Reconciler) GetByRepo(ctx context.Context, owner, repoName string) (*domain.PortfolioEntry, error) {
	entry, err := r.entries.GetByRepo(ctx, owner, repoName)
	if err != nil {
		return nil, fmt.Errorf("portfolio.GetByRepo: %w", err)
	}
	return entry, nil
}

// List returns every showcase entry.
func (r *Reconciler) List(ctx context.Context) ([]*domain.PortfolioEntry, error) {
	entries, err := r.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("portfolio.List: %w", err)
	}
	return entries, nil
}

// EntryUpdate is an optional subset of mutable showcase fields. Nil
// fields are left untouched.
type EntryUpdate struct {
	Name         *domain.LocalizedText
	Description  *domain.LocalizedText
	Technologies *[]string
	Badge        *string
	PreviewImage *string
	LiveLink     *string
}

// UpdateEntry applies upd to the entry with the given id.
func (r *Reconciler) UpdateEntry(ctx context.Context, id uuid.UUID, upd EntryUpdate) (*domain.PortfolioEntry, error) {
	entry, err := r.entries.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("portfolio.UpdateEntry: %w", err)
	}
	if upd.Name != nil {
		entry.Name = *upd.Name
	}
	if upd.Description != nil {
		entry.Description = *upd.Description
	}
	if upd.Technologies != nil {
		entry.Technologies = *upd.Technologies
	}
	if upd.Badge != nil {
		entry.Badge = *upd.Badge
	}
	if upd.PreviewImage != nil {
		entry.PreviewImage = *upd.PreviewImage
	}
	if upd.LiveLink != nil {
		entry.LiveLink = *upd.LiveLink
	}
	entry.UpdatedAt = time.Now()
	if err := r.entries.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("portfolio.UpdateEntry: %w", err)
	}
	return entry, nil
}

// DetachAndDelete removes the repository everywhere by delegating to
// the lifecycle delete workflow.
func (r *Reconciler) DetachAndDelete(ctx context.Context, owner, repoName string) ([]string, error) {
	return r.deleter.Delete(ctx, owner, repoName)
}
