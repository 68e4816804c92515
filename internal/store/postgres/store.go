package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thisisrober/provisioner/internal/domain"
)

type Store struct {
	pool      *pgxpool.Pool
	portfolio *PortfolioRepo
	settings  *SettingsRepo
}

func New(ctx context.Context, dsn string, maxConns int32) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: parse config: %w", err)
	}

	cfg.MaxConns = maxConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: connect: %w", err)
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres.New: ping: %w", err)
	}

	return &Store{
		pool:      pool,
		portfolio: NewPortfolioRepo(pool),
		settings:  NewSettingsRepo(pool),
	}, nil
}

// Migrate creates the two tables this service owns. Idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS settings (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS portfolio_entries (
			id             UUID PRIMARY KEY,
			owner          TEXT NOT NULL,
			repo_name      TEXT NOT NULL,
			source_link    TEXT NOT NULL,
			name_es        TEXT NOT NULL,
			name_en        TEXT NOT NULL,
			description_es TEXT NOT NULL DEFAULT '',
			description_en TEXT NOT NULL DEFAULT '',
			preview_image  TEXT NOT NULL DEFAULT '',
			live_link      TEXT NOT NULL DEFAULT '',
			technologies   TEXT[] NOT NULL DEFAULT '{}',
			badge          TEXT NOT NULL DEFAULT '',
			created_at     TIMESTAMPTZ NOT NULL,
			updated_at     TIMESTAMPTZ NOT NULL,
			UNIQUE (owner, repo_name)
		);
	`)
	if err != nil {
		return fmt.Errorf("postgres.Migrate: %w", err)
	}

	return nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Portfolio() domain.PortfolioRepository { return s.portfolio }
func (s *Store) Settings() domain.SettingsRepository   { return s.settings }
