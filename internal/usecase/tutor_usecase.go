package usecase

import (
	"context"
	"sort"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
	"github.com/ReewajAdhikari/LearningTree/internal/domain/repository"
	"github.com/ReewajAdhikari/LearningTree/internal/domain/service"
)

type TutorUseCase struct {
	userRepo   repository.UserRepository
	ratingRepo repository.RatingRepository
}

func NewTutorUseCase(userRepo repository.UserRepository, ratingRepo repository.RatingRepository) *TutorUseCase {
	return &TutorUseCase{
		userRepo:   userRepo,
		ratingRepo: ratingRepo,
	}
}

type TutorListing struct {
	Tutor   *entity.User `json:"tutor"`
	Average float64      `json:"average"`
	Count   int          `json:"count"`
}

// ListTutors returns the verified tutor directory with each tutor's
// average rating, filtered by the free-text query and required subjects
// and sorted by average descending. Filtering happens before the sort so
// the order among equal averages stays stable.
func (uc *TutorUseCase) ListTutors(ctx context.Context, query string, subjects []string) ([]*TutorListing, error) {
	tutors, err := uc.userRepo.ListVerifiedTutors(ctx)
	if err != nil {
		return nil, err
	}

	tutors = service.FilterTutors(tutors, query, subjects)

	listings := make([]*TutorListing, 0, len(tutors))
	for _, tutor := range tutors {
		ratings, err := uc.ratingRepo.ListByTutor(ctx, tutor.ID)
		if err != nil {
			return nil, err
		}
		listings = append(listings, &TutorListing{
			Tutor:   tutor,
			Average: service.AverageRating(ratings),
			Count:   len(ratings),
		})
	}

	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].Average > listings[j].Average
	})

	return listings, nil
}

func (uc *TutorUseCase) GetTutor(ctx context.Context, tutorID string) (*TutorListing, error) {
	tutor, err := uc.userRepo.GetByID(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	ratings, err := uc.ratingRepo.ListByTutor(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	return &TutorListing{
		Tutor:   tutor,
		Average: service.AverageRating(ratings),
		Count:   len(ratings),
	}, nil
}
