package domain

import "context"

// SettingsRepository is the key/value store the excluded CRUD layer
// shares with this core. The credential lives under a single key; Get
// returns ErrNotFound (wrapped) when a key has never been written.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Upsert(ctx context.Context, key, value string) error
}
