package port

import (
	"context"

	"lexdraft/internal/domain"
)

// KeyValueStore is a durable keyed blob store, the server-side counterpart of
// browser local storage. Set replaces the whole value atomically.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ProfileStore loads and replaces the saved-profile collection of one owner.
type ProfileStore interface {
	Load(ctx context.Context, owner string) ([]domain.SavedProfile, error)
	SaveAll(ctx context.Context, owner string, profiles []domain.SavedProfile) error
}
