package repository

import (
	"context"
	"fmt"

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

type firestoreReviewRepository struct {
	client *firestore.Client
	syncer *livesync.Syncer
}

func NewFirestoreReviewRepository(client *firestore.Client, syncer *livesync.Syncer) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
		syncer: syncer,
	}
}

func (r *firestoreReviewRepository) collection(userID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("reviews")
}

func (r *firestoreReviewRepository) Create(ctx context.Context, userID string, review *entity.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}

	_, err := r.collection(userID).Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.RemoteWrite("Failed to create review", err)
	}
	return nil
}

func (r *firestoreReviewRepository) UpdateContent(ctx context.Context, userID, reviewID, content string) error {
	// Merge write: only the content field changes.
	_, err := r.collection(userID).Doc(reviewID).Set(ctx, map[string]interface{}{
		"content": content,
	}, firestore.MergeAll)
	if err != nil {
		return errors.RemoteWrite("Failed to update review", err)
	}
	return nil
}

func (r *firestoreReviewRepository) Delete(ctx context.Context, userID, reviewID string) error {
	_, err := r.collection(userID).Doc(reviewID).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return errors.RemoteWrite("Failed to delete review", err)
	}
	return nil
}

func (r *firestoreReviewRepository) Watch(ctx context.Context, userID string, onChange func(reviews []entity.Review)) (func(), error) {
	path := fmt.Sprintf("users/%s/reviews", userID)
	query := r.collection(userID).OrderBy("timestamp", firestore.Desc)

	r.syncer.Open(ctx, path, querySource{query: query}, func(docs []livesync.Doc) {
		items := make([]entity.Review, 0, len(docs))
		for _, doc := range docs {
			var item entity.Review
			if err := doc.DataTo(&item); err != nil {
				logger.Warn("Skipping undecodable review %s for user %s: %v", doc.ID(), userID, err)
				continue
			}
			if item.ID == "" {
				item.ID = doc.ID()
			}
			items = append(items, item)
		}
		onChange(livesync.MaterializeReviews(items))
	})

	return func() { r.syncer.Close(path) }, nil
}
