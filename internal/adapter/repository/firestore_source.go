package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"moviehub/internal/livesync"
)

// snapshotDoc adapts a Firestore document snapshot to livesync.Doc.
type snapshotDoc struct {
	snap *firestore.DocumentSnapshot
}

func (d snapshotDoc) ID() string {
	return d.snap.Ref.ID
}

func (d snapshotDoc) DataTo(v interface{}) error {
	return d.snap.DataTo(v)
}

// querySource streams full collection snapshots from a Firestore query.
type querySource struct {
	query firestore.Query
}

func (s querySource) Snapshots(ctx context.Context, deliver func(docs []livesync.Doc)) error {
	it := s.query.Snapshots(ctx)
	defer it.Stop()

	for {
		snap, err := it.Next()
		if err != nil {
			if status.Code(err) == codes.Canceled || ctx.Err() != nil {
				return nil
			}
			return err
		}

		docs, err := snap.Documents.GetAll()
		if err != nil {
			return err
		}

		out := make([]livesync.Doc, 0, len(docs))
		for _, doc := range docs {
			out = append(out, snapshotDoc{snap: doc})
		}
		deliver(out)
	}
}

// docSource streams snapshots of a single document. A missing document is
// delivered as an empty snapshot.
type docSource struct {
	ref *firestore.DocumentRef
}

func (s docSource) Snapshots(ctx context.Context, deliver func(docs []livesync.Doc)) error {
	it := s.ref.Snapshots(ctx)
	defer it.Stop()

	for {
		snap, err := it.Next()
		if err != nil {
			if status.Code(err) == codes.Canceled || ctx.Err() != nil {
				return nil
			}
			return err
		}

		if snap == nil || !snap.Exists() {
			deliver(nil)
			continue
		}
		deliver([]livesync.Doc{snapshotDoc{snap: snap}})
	}
}
