package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thisisrober/provisioner/internal/domain"
)

const portfolioColumns = `id, owner, repo_name, source_link,
	 name_es, name_en, description_es, description_en,
	 preview_image, live_link, technologies, badge, created_at, updated_at`

type PortfolioRepo struct {
	pool *pgxpool.Pool
}

func NewPortfolioRepo(pool *pgxpool.Pool) *PortfolioRepo {
	return &PortfolioRepo{pool: pool}
}

func (r *PortfolioRepo) Create(ctx context.Context, e *domain.PortfolioEntry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO portfolio_entries (`+portfolioColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		e.ID, e.Owner, e.RepoName, e.SourceLink,
		e.Name.ES, e.Name.EN, e.Description.ES, e.Description.EN,
		e.PreviewImage, e.LiveLink, e.Technologies, e.Badge, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("portfolioRepo.Create: %w", err)
	}

	return nil
}

func (r *PortfolioRepo) List(ctx context.Context) ([]*domain.PortfolioEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+portfolioColumns+` FROM portfolio_entries ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("portfolioRepo.List: %w", err)
	}
	defer rows.Close()

	var entries []*domain.PortfolioEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("portfolioRepo.List: scan: %w", err)
		}
		entries = append(entries, e)
	}
	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("portfolioRepo.List: rows: %w", err)
	}

	return entries, nil
}

func (r *PortfolioRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PortfolioEntry, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+portfolioColumns+` FROM portfolio_entries WHERE id = $1`, id,
	)

	e, err := scanEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("portfolioRepo.GetByID: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("portfolioRepo.GetByID: %w", err)
	}

	return e, nil
}

func (r *PortfolioRepo) GetByRepo(ctx context.Context, owner, repoName string) (*domain.PortfolioEntry, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+portfolioColumns+` FROM portfolio_entries WHERE owner = $1 AND repo_name = $2`,
		owner, repoName,
	)

	e, err := scanEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("portfolioRepo.GetByRepo: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("portfolioRepo.GetByRepo: %w", err)
	}

	return e, nil
}

func (r *PortfolioRepo) Update(ctx context.Context, e *domain.PortfolioEntry) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE portfolio_entries SET
			owner = $1, repo_name = $2, source_link = $3,
			name_es = $4, name_en = $5, description_es = $6, description_en = $7,
			preview_image = $8, live_link = $9, technologies = $10, badge = $11,
			updated_at = $12
		 WHERE id = $13`,
		e.Owner, e.RepoName, e.SourceLink,
		e.Name.ES, e.Name.EN, e.Description.ES, e.Description.EN,
		e.PreviewImage, e.LiveLink, e.Technologies, e.Badge,
		e.UpdatedAt, e.ID,
	)
	if err != nil {
		return fmt.Errorf("portfolioRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("portfolioRepo.Update: %w", domain.ErrNotFound)
	}

	return nil
}

// DeleteByRepo removes the entry for owner/repoName if one exists.
// Deleting an absent entry is a no-op, since the delete cascade calls
// this for repositories that were never attached.
func (r *PortfolioRepo) DeleteByRepo(ctx context.Context, owner, repoName string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM portfolio_entries WHERE owner = $1 AND repo_name = $2`,
		owner, repoName,
	)
	if err != nil {
		return fmt.Errorf("portfolioRepo.DeleteByRepo: %w", err)
	}

	return nil
}

func scanEntry(row pgx.Row) (*domain.PortfolioEntry, error) {
	var e domain.PortfolioEntry

	err := row.Scan(
		&e.ID, &e.Owner, &e.RepoName, &e.SourceLink,
		&e.Name.ES, &e.Name.EN, &e.Description.ES, &e.Description.EN,
		&e.PreviewImage, &e.LiveLink, &e.Technologies, &e.Badge,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}
