package repository

import (
	"context"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	GetByTutorAndUser(ctx context.Context, tutorID, userID string) (*entity.Rating, error)
	ListByTutor(ctx context.Context, tutorID string) ([]*entity.Rating, error)
}
