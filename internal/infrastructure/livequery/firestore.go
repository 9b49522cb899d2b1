package livequery

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
)

// FirestoreWatcherFactory opens snapshot listeners against Firestore
// collections. Each watcher delivers the full matching document set on
// every change, which is exactly the contract Handler expects.
type FirestoreWatcherFactory struct {
	client *firestore.Client
}

func NewFirestoreWatcherFactory(client *firestore.Client) *FirestoreWatcherFactory {
	return &FirestoreWatcherFactory{client: client}
}

func (f *FirestoreWatcherFactory) Watch(ctx context.Context, collection string, predicates []Predicate) Watcher {
	query := f.client.Collection(collection).Query
	for _, p := range predicates {
		query = query.Where(p.Field, "==", p.Value)
	}

	return &firestoreWatcher{snapshots: query.Snapshots(ctx)}
}

type firestoreWatcher struct {
	snapshots *firestore.QuerySnapshotIterator
}

func (w *firestoreWatcher) Next() ([]Doc, error) {
	snap, err := w.snapshots.Next()
	if err != nil {
		if status.Code(err) == codes.PermissionDenied {
			return nil, errors.Forbidden("Not allowed to watch this collection", err)
		}
		return nil, err
	}

	var docs []Doc
	iter := snap.Documents
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to read snapshot document", err)
		}
		docs = append(docs, Doc{ID: doc.Ref.ID, Data: doc.Data()})
	}

	return docs, nil
}

func (w *firestoreWatcher) Stop() {
	w.snapshots.Stop()
}
