package repository

import (
	"context"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	ListByRoom(ctx context.Context, room string) ([]*entity.ChatMessage, error)
	ListByParticipant(ctx context.Context, userID string) ([]*entity.ChatMessage, error)
}
