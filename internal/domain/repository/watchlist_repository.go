package repository

import (
	"context"

	"moviehub/internal/domain/entity"
)

type WatchlistRepository interface {
	// Add appends a new entry with a generated id. Duplicate movies are
	// allowed; each add is its own document.
	Add(ctx context.Context, userID string, entry *entity.WatchlistEntry) error

	// Remove deletes by the entry's generated id. Idempotent.
	Remove(ctx context.Context, userID, entryID string) error

	Watch(ctx context.Context, userID string, onChange func(entries []entity.WatchlistEntry)) (func(), error)
}
