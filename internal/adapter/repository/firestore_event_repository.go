package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
	"github.com/ReewajAdhikari/LearningTree/internal/domain/repository"
	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
)

type firestoreEventRepository struct {
	client *firestore.Client
}

func NewFirestoreEventRepository(client *firestore.Client) repository.EventRepository {
	return &firestoreEventRepository{
		client: client,
	}
}

func (r *firestoreEventRepository) Create(ctx context.Context, event *entity.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.CreatedAt = time.Now()

	_, err := r.client.Collection("events").Doc(event.ID).Set(ctx, event)
	if err != nil {
		return errors.Internal("Failed to create event", err)
	}

	return nil
}

func (r *firestoreEventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	doc, err := r.client.Collection("events").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Event", err)
		}
		return nil, errors.Internal("Failed to get event", err)
	}

	return entity.EventFromRecord(doc.Ref.ID, doc.Data()), nil
}

func (r *firestoreEventRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Event, error) {
	iter := r.client.Collection("events").Where("userId", "==", userID).Documents(ctx)

	var events []*entity.Event
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list events", err)
		}

		events = append(events, entity.EventFromRecord(doc.Ref.ID, doc.Data()))
	}

	return events, nil
}

func (r *firestoreEventRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("events").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete event", err)
	}

	return nil
}
