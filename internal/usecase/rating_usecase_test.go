package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
)

func ratingFixtures() (*RatingUseCase, *fakeRatingRepo, *fakeUserRepo) {
	userRepo := newFakeUserRepo(
		&entity.User{ID: "tutor-1", DisplayName: "Ada Lovelace", IsTutor: true, TutorVerified: true},
		&entity.User{ID: "student-1", DisplayName: "Grace Hopper"},
	)
	ratingRepo := &fakeRatingRepo{}
	return NewRatingUseCase(ratingRepo, userRepo), ratingRepo, userRepo
}

func TestSubmitRating(t *testing.T) {
	uc, ratingRepo, _ := ratingFixtures()

	result, err := uc.SubmitRating(context.Background(), "student-1", SubmitRatingInput{
		TutorID: "tutor-1",
		Rating:  4,
		Comment: "Very helpful",
	})

	assert.NoError(t, err)
	assert.Equal(t, 4.0, result.Average)
	assert.Equal(t, 1, result.Count)
	assert.Len(t, ratingRepo.ratings, 1)
	assert.Equal(t, "student-1", ratingRepo.ratings[0].UserID)
}

func TestSubmitRatingRequiresSignIn(t *testing.T) {
	uc, ratingRepo, _ := ratingFixtures()

	_, err := uc.SubmitRating(context.Background(), "", SubmitRatingInput{TutorID: "tutor-1", Rating: 5})

	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	assert.Empty(t, ratingRepo.ratings)
}

func TestSubmitRatingRequiresSelection(t *testing.T) {
	uc, ratingRepo, _ := ratingFixtures()

	_, err := uc.SubmitRating(context.Background(), "student-1", SubmitRatingInput{TutorID: "tutor-1"})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Empty(t, ratingRepo.ratings)
}

func TestSubmitRatingRejectsDuplicate(t *testing.T) {
	uc, ratingRepo, _ := ratingFixtures()
	ratingRepo.ratings = append(ratingRepo.ratings, &entity.Rating{
		ID:        "rating-1",
		TutorID:   "tutor-1",
		UserID:    "student-1",
		Rating:    5,
		CreatedAt: time.Now(),
	})

	_, err := uc.SubmitRating(context.Background(), "student-1", SubmitRatingInput{TutorID: "tutor-1", Rating: 3})

	assert.True(t, errors.Is(err, "CONFLICT"))
	assert.Len(t, ratingRepo.ratings, 1)
}

func TestSubmitRatingRejectsSelfRating(t *testing.T) {
	uc, ratingRepo, _ := ratingFixtures()

	_, err := uc.SubmitRating(context.Background(), "tutor-1", SubmitRatingInput{TutorID: "tutor-1", Rating: 5})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Empty(t, ratingRepo.ratings)
}

func TestSubmitRatingAverage(t *testing.T) {
	uc, ratingRepo, userRepo := ratingFixtures()
	userRepo.users["student-2"] = &entity.User{ID: "student-2", DisplayName: "Katherine Johnson"}
	ratingRepo.ratings = append(ratingRepo.ratings, &entity.Rating{
		ID:      "rating-1",
		TutorID: "tutor-1",
		UserID:  "student-2",
		Rating:  4,
	})

	result, err := uc.SubmitRating(context.Background(), "student-1", SubmitRatingInput{TutorID: "tutor-1", Rating: 2})

	assert.NoError(t, err)
	assert.Equal(t, 3.0, result.Average)
	assert.Equal(t, 2, result.Count)
}

func TestListTutorRatings(t *testing.T) {
	uc, ratingRepo, _ := ratingFixtures()
	ratingRepo.ratings = []*entity.Rating{
		{ID: "r1", TutorID: "tutor-1", UserID: "a", Rating: 5},
		{ID: "r2", TutorID: "tutor-1", UserID: "b", Rating: 4},
		{ID: "r3", TutorID: "tutor-1", UserID: "c", Rating: 4},
		{ID: "r4", TutorID: "tutor-other", UserID: "d", Rating: 1},
	}

	result, err := uc.ListTutorRatings(context.Background(), "tutor-1")

	assert.NoError(t, err)
	assert.Equal(t, 3, result.Count)
	assert.Equal(t, 4.3, result.Average)
}
