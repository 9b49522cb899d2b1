package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
	"github.com/ReewajAdhikari/LearningTree/internal/domain/repository"
	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
)

type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()

	_, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreMessageRepository) ListByRoom(ctx context.Context, room string) ([]*entity.ChatMessage, error) {
	query := r.client.Collection("messages").
		Where("room", "==", room).
		OrderBy("createdAt", firestore.Asc)

	iter := query.Documents(ctx)
	var messages []*entity.ChatMessage
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list messages", err)
		}

		messages = append(messages, entity.ChatMessageFromRecord(doc.Ref.ID, doc.Data()))
	}

	return messages, nil
}

// ListByParticipant returns every message the user sent or received. The
// room key is an opaque string to Firestore, so participation is resolved
// with two indexed queries instead of a key-prefix scan.
func (r *firestoreMessageRepository) ListByParticipant(ctx context.Context, userID string) ([]*entity.ChatMessage, error) {
	seen := make(map[string]bool)
	var messages []*entity.ChatMessage

	for _, field := range []string{"userId", "tutorId"} {
		iter := r.client.Collection("messages").Where(field, "==", userID).Documents(ctx)
		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return nil, errors.Internal("Failed to list messages", err)
			}
			if seen[doc.Ref.ID] {
				continue
			}
			seen[doc.Ref.ID] = true
			messages = append(messages, entity.ChatMessageFromRecord(doc.Ref.ID, doc.Data()))
		}
	}

	return messages, nil
}
