package usecase

import (
	"context"
	"time"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
	"github.com/ReewajAdhikari/LearningTree/internal/domain/repository"
	"github.com/ReewajAdhikari/LearningTree/internal/domain/service"
	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
)

type RatingUseCase struct {
	ratingRepo repository.RatingRepository
	userRepo   repository.UserRepository
}

func NewRatingUseCase(ratingRepo repository.RatingRepository, userRepo repository.UserRepository) *RatingUseCase {
	return &RatingUseCase{
		ratingRepo: ratingRepo,
		userRepo:   userRepo,
	}
}

type SubmitRatingInput struct {
	TutorID string `json:"tutor_id" validate:"required"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Subject string `json:"subject"`
}

type RatingResult struct {
	Rating  *entity.Rating `json:"rating"`
	Average float64        `json:"average"`
	Count   int            `json:"count"`
}

// SubmitRating records one user's score for a tutor. All checks run
// before the write: a failing check stores nothing. Each user rates a
// given tutor at most once.
func (uc *RatingUseCase) SubmitRating(ctx context.Context, userID string, input SubmitRatingInput) (*RatingResult, error) {
	if userID == "" {
		return nil, errors.Unauthorized("Please sign in to rate tutors", nil)
	}
	if input.Rating == 0 {
		return nil, errors.BadRequest("Please select a rating", nil)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	tutor, err := uc.userRepo.GetByID(ctx, input.TutorID)
	if err != nil {
		return nil, err
	}
	if !tutor.IsTutor {
		return nil, errors.BadRequest("This user is not a tutor", nil)
	}
	if tutor.ID == userID {
		return nil, errors.BadRequest("You cannot rate yourself", nil)
	}

	existing, err := uc.ratingRepo.GetByTutorAndUser(ctx, input.TutorID, userID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("You have already rated this tutor", nil)
	}

	rating := &entity.Rating{
		TutorID:   input.TutorID,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Subject:   input.Subject,
		CreatedAt: time.Now(),
	}

	if err := uc.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}

	ratings, err := uc.ratingRepo.ListByTutor(ctx, input.TutorID)
	if err != nil {
		return nil, err
	}

	return &RatingResult{
		Rating:  rating,
		Average: service.AverageRating(ratings),
		Count:   len(ratings),
	}, nil
}

type TutorRatings struct {
	Ratings []*entity.Rating `json:"ratings"`
	Average float64          `json:"average"`
	Count   int              `json:"count"`
}

func (uc *RatingUseCase) ListTutorRatings(ctx context.Context, tutorID string) (*TutorRatings, error) {
	ratings, err := uc.ratingRepo.ListByTutor(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	return &TutorRatings{
		Ratings: ratings,
		Average: service.AverageRating(ratings),
		Count:   len(ratings),
	}, nil
}
