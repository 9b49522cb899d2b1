package repository

import (
	"context"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Event, error)
	Delete(ctx context.Context, id string) error
}
