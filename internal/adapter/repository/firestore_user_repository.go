package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"moviehub/internal/domain/entity"
	"moviehub/internal/domain/repository"
	"moviehub/internal/livesync"
	"moviehub/pkg/errors"
	"moviehub/pkg/logger"
)

// profileDoc is the stored shape of the profile document. Preferences are a
// single comma-joined field, split back into a set on read.
type profileDoc struct {
	Username       string `firestore:"username"`
	ProfilePicture string `firestore:"profilePicture"`
	Preferences    string `firestore:"preferences"`
}

func (d profileDoc) toEntity() *entity.Profile {
	return &entity.Profile{
		Username:       d.Username,
		ProfilePicture: d.ProfilePicture,
		Preferences:    entity.SplitPreferences(d.Preferences),
	}
}

type firestoreUserRepository struct {
	client *firestore.Client
	syncer *livesync.Syncer
}

func NewFirestoreUserRepository(client *firestore.Client, syncer *livesync.Syncer) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
		syncer: syncer,
	}
}

func (r *firestoreUserRepository) doc(userID string) *firestore.DocumentRef {
	return r.client.Collection("users").Doc(userID)
}

func (r *firestoreUserRepository) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	snap, err := r.doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Profile", err)
		}
		return nil, errors.RemoteRead("Failed to load profile", err)
	}

	var doc profileDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.RemoteRead("Failed to parse profile", err)
	}
	return doc.toEntity(), nil
}

func (r *firestoreUserRepository) UpdateProfile(ctx context.Context, userID string, profile *entity.Profile) error {
	_, err := r.doc(userID).Set(ctx, map[string]interface{}{
		"username":       profile.Username,
		"profilePicture": profile.ProfilePicture,
		"preferences":    entity.JoinPreferences(profile.Preferences),
	}, firestore.MergeAll)
	if err != nil {
		return errors.RemoteWrite("Failed to update profile", err)
	}
	return nil
}

func (r *firestoreUserRepository) Watch(ctx context.Context, userID string, onChange func(profile *entity.Profile)) (func(), error) {
	path := fmt.Sprintf("users/%s", userID)

	r.syncer.Open(ctx, path, docSource{ref: r.doc(userID)}, func(docs []livesync.Doc) {
		if len(docs) == 0 {
			onChange(&entity.Profile{Preferences: []string{}})
			return
		}

		var doc profileDoc
		if err := docs[0].DataTo(&doc); err != nil {
			logger.Warn("Skipping undecodable profile for user %s: %v", userID, err)
			return
		}
		onChange(doc.toEntity())
	})

	return func() { r.syncer.Close(path) }, nil
}
