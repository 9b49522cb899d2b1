package repository

import (
	"context"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListVerifiedTutors(ctx context.Context) ([]*entity.User, error)
	ExistsByEducationalEmail(ctx context.Context, email string) (bool, error)
}
