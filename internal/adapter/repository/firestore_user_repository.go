package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
	"github.com/ReewajAdhikari/LearningTree/internal/domain/repository"
	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to create user profile", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	return decodeUser(doc)
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := r.client.Collection("users").Where("email", "==", email).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("User", nil)
		}
		return nil, errors.Internal("Failed to query user by email", err)
	}

	return decodeUser(doc)
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	// Merge only the mutable profile fields so concurrent writers never
	// clobber fields they did not touch.
	updateData := map[string]interface{}{
		"displayName":      user.DisplayName,
		"firstname":        user.FirstName,
		"lastname":         user.LastName,
		"email":            user.Email,
		"isTutor":          user.IsTutor,
		"tutorVerified":    user.TutorVerified,
		"educationalEmail": user.EducationalEmail,
		"subjects":         user.Subjects,
		"updatedAt":        time.Now(),
	}

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, updateData, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update user profile", err)
	}

	return nil
}

func (r *firestoreUserRepository) ListVerifiedTutors(ctx context.Context) ([]*entity.User, error) {
	iter := r.client.Collection("users").Where("tutorVerified", "==", true).Documents(ctx)

	var tutors []*entity.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list tutors", err)
		}

		tutor, err := decodeUser(doc)
		if err != nil {
			return nil, err
		}
		tutors = append(tutors, tutor)
	}

	return tutors, nil
}

func (r *firestoreUserRepository) ExistsByEducationalEmail(ctx context.Context, email string) (bool, error) {
	query := r.client.Collection("users").Where("educationalEmail", "==", email).Limit(1)
	iter := query.Documents(ctx)
	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, errors.Internal("Failed to query educational email", err)
	}

	return true, nil
}

// Profiles written by older clients carry string timestamps and may miss
// fields entirely, so decoding goes through the record constructors
// instead of DataTo.
func decodeUser(doc *firestore.DocumentSnapshot) (*entity.User, error) {
	return entity.UserFromRecord(doc.Ref.ID, doc.Data()), nil
}
