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

type firestoreRatingRepository struct {
	client *firestore.Client
}

func NewFirestoreRatingRepository(client *firestore.Client) repository.RatingRepository {
	return &firestoreRatingRepository{
		client: client,
	}
}

func (r *firestoreRatingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}
	rating.CreatedAt = time.Now()

	_, err := r.client.Collection("ratings").Doc(rating.ID).Set(ctx, rating)
	if err != nil {
		return errors.Internal("Failed to create rating", err)
	}

	return nil
}

func (r *firestoreRatingRepository) GetByTutorAndUser(ctx context.Context, tutorID, userID string) (*entity.Rating, error) {
	query := r.client.Collection("ratings").
		Where("tutorId", "==", tutorID).
		Where("userId", "==", userID).
		Limit(1)

	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Rating", nil)
		}
		return nil, errors.Internal("Failed to query rating", err)
	}

	return decodeRating(doc)
}

func (r *firestoreRatingRepository) ListByTutor(ctx context.Context, tutorID string) ([]*entity.Rating, error) {
	iter := r.client.Collection("ratings").Where("tutorId", "==", tutorID).Documents(ctx)

	var ratings []*entity.Rating
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list ratings", err)
		}

		rating, err := decodeRating(doc)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}

	return ratings, nil
}

func decodeRating(doc *firestore.DocumentSnapshot) (*entity.Rating, error) {
	return entity.RatingFromRecord(doc.Ref.ID, doc.Data()), nil
}
