package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"moviehub/internal/domain/entity"
	"moviehub/internal/domain/repository"
	"moviehub/internal/livesync"
	"moviehub/pkg/errors"
	"moviehub/pkg/logger"
)

type firestoreRatingRepository struct {
	client *firestore.Client
	syncer *livesync.Syncer
}

func NewFirestoreRatingRepository(client *firestore.Client, syncer *livesync.Syncer) repository.RatingRepository {
	return &firestoreRatingRepository{
		client: client,
		syncer: syncer,
	}
}

func (r *firestoreRatingRepository) collection(userID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("ratings")
}

func (r *firestoreRatingRepository) Upsert(ctx context.Context, userID string, rating *entity.Rating) error {
	// Keyed by movie id: submitting again for the same movie replaces the
	// earlier rating instead of appending.
	_, err := r.collection(userID).Doc(rating.MovieID).Set(ctx, rating)
	if err != nil {
		return errors.RemoteWrite("Failed to save rating", err)
	}
	return nil
}

func (r *firestoreRatingRepository) Watch(ctx context.Context, userID string, onChange func(ratings []entity.Rating)) (func(), error) {
	path := fmt.Sprintf("users/%s/ratings", userID)

	r.syncer.Open(ctx, path, querySource{query: r.collection(userID).Query}, func(docs []livesync.Doc) {
		items := make([]entity.Rating, 0, len(docs))
		for _, doc := range docs {
			var item entity.Rating
			if err := doc.DataTo(&item); err != nil {
				logger.Warn("Skipping undecodable rating %s for user %s: %v", doc.ID(), userID, err)
				continue
			}
			if item.MovieID == "" {
				item.MovieID = doc.ID()
			}
			items = append(items, item)
		}
		onChange(livesync.MaterializeRatings(items))
	})

	return func() { r.syncer.Close(path) }, nil
}
