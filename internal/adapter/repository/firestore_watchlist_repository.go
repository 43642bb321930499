package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"moviehub/internal/domain/entity"
	"moviehub/internal/domain/repository"
	"moviehub/internal/livesync"
	"moviehub/pkg/errors"
	"moviehub/pkg/logger"
)

type firestoreWatchlistRepository struct {
	client *firestore.Client
	syncer *livesync.Syncer
}

func NewFirestoreWatchlistRepository(client *firestore.Client, syncer *livesync.Syncer) repository.WatchlistRepository {
	return &firestoreWatchlistRepository{
		client: client,
		syncer: syncer,
	}
}

func (r *firestoreWatchlistRepository) collection(userID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("watchlist")
}

func (r *firestoreWatchlistRepository) Add(ctx context.Context, userID string, entry *entity.WatchlistEntry) error {
	// Every add gets its own generated id. The same movie may appear more
	// than once; removal is by entry id, so duplicates stay independently
	// removable.
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := r.collection(userID).Doc(entry.ID).Set(ctx, entry)
	if err != nil {
		return errors.RemoteWrite("Failed to add watchlist entry", err)
	}
	return nil
}

func (r *firestoreWatchlistRepository) Remove(ctx context.Context, userID, entryID string) error {
	_, err := r.collection(userID).Doc(entryID).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return errors.RemoteWrite("Failed to remove watchlist entry", err)
	}
	return nil
}

func (r *firestoreWatchlistRepository) Watch(ctx context.Context, userID string, onChange func(entries []entity.WatchlistEntry)) (func(), error) {
	path := fmt.Sprintf("users/%s/watchlist", userID)
	query := r.collection(userID).OrderBy("createdAt", firestore.Desc)

	r.syncer.Open(ctx, path, querySource{query: query}, func(docs []livesync.Doc) {
		items := make([]entity.WatchlistEntry, 0, len(docs))
		for _, doc := range docs {
			var item entity.WatchlistEntry
			if err := doc.DataTo(&item); err != nil {
				logger.Warn("Skipping undecodable watchlist entry %s for user %s: %v", doc.ID(), userID, err)
				continue
			}
			if item.ID == "" {
				item.ID = doc.ID()
			}
			items = append(items, item)
		}
		onChange(livesync.MaterializeWatchlist(items))
	})

	return func() { r.syncer.Close(path) }, nil
}
