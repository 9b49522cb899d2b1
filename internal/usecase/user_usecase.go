package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
	"github.com/ReewajAdhikari/LearningTree/internal/domain/repository"
	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
	"github.com/ReewajAdhikari/LearningTree/pkg/logger"
)

type UserUseCase struct {
	userRepo   repository.UserRepository
	authClient AuthClient
}

func NewUserUseCase(userRepo repository.UserRepository, authClient AuthClient) *UserUseCase {
	return &UserUseCase{
		userRepo:   userRepo,
		authClient: authClient,
	}
}

// GetProfile returns the caller's profile document. Accounts created
// before profile documents existed get a minimal one written on first
// read so every signed-in user has a profile.
func (uc *UserUseCase) GetProfile(ctx context.Context, uid, email, displayName string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	logger.Info("Bootstrapping missing profile for user %s", uid)

	first, last := splitDisplayName(displayName)
	now := time.Now()
	user = &entity.User{
		ID:          uid,
		Email:       email,
		DisplayName: displayName,
		FirstName:   first,
		LastName:    last,
		Subjects:    []entity.Subject{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

type UpdateDisplayNameInput struct {
	FirstName string `json:"firstname" validate:"required"`
	LastName  string `json:"lastname" validate:"required"`
}

func (uc *UserUseCase) UpdateDisplayName(ctx context.Context, uid string, input UpdateDisplayNameInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	displayName := strings.TrimSpace(input.FirstName + " " + input.LastName)
	if displayName == "" {
		return nil, errors.BadRequest("Please enter your name", nil)
	}

	if err := uc.authClient.UpdateDisplayName(ctx, uid, displayName); err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.DisplayName = displayName
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

type UpdateEmailInput struct {
	NewEmail string `json:"new_email" validate:"required,email"`
}

// UpdateEmail changes the sign-in email. The provider rejects the call
// with REQUIRES_RECENT_LOGIN when the session is stale; that error is
// surfaced unchanged so the client can prompt for re-authentication.
func (uc *UserUseCase) UpdateEmail(ctx context.Context, uid string, input UpdateEmailInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if err := uc.authClient.UpdateUserEmail(ctx, uid, input.NewEmail); err != nil {
		return nil, err
	}

	user.Email = input.NewEmail
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

type UpdatePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// UpdatePassword validates the input locally before touching the
// provider: all three fields present, confirmation matching, and a
// minimum length of 6. A failing local check never issues a remote call.
func (uc *UserUseCase) UpdatePassword(ctx context.Context, uid, email string, input UpdatePasswordInput) error {
	if input.CurrentPassword == "" || input.NewPassword == "" || input.ConfirmPassword == "" {
		return errors.BadRequest("Please fill in all password fields", nil)
	}
	if input.NewPassword != input.ConfirmPassword {
		return errors.BadRequest("New passwords do not match", nil)
	}
	if len(input.NewPassword) < 6 {
		return errors.BadRequest("Password must be at least 6 characters.", nil)
	}

	// Reauthenticate with the current password before changing it.
	if _, err := uc.authClient.SignInWithEmailPassword(ctx, email, input.CurrentPassword); err != nil {
		return err
	}

	return uc.authClient.UpdateUserPassword(ctx, uid, input.NewPassword)
}

type RegisterTutorInput struct {
	EducationalEmail string         `json:"educational_email" validate:"required,email"`
	Subject          entity.Subject `json:"subject"`
}

// RegisterAsTutor verifies the educational email and flips the tutor
// flags. Each educational email backs at most one tutor account.
func (uc *UserUseCase) RegisterAsTutor(ctx context.Context, uid string, input RegisterTutorInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.EducationalEmail))
	if !strings.HasSuffix(email, ".edu") {
		return nil, errors.BadRequest("Please use a valid .edu email address", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if user.EducationalEmail != email {
		taken, err := uc.userRepo.ExistsByEducationalEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.Conflict("This educational email is already registered", nil)
		}
	}

	user.IsTutor = true
	user.TutorVerified = true
	user.EducationalEmail = email
	if input.Subject.Name != "" {
		user.Subjects = appendSubject(user.Subjects, input.Subject)
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

type AddSubjectInput struct {
	Subject entity.Subject `json:"subject"`
}

func (uc *UserUseCase) AddSubject(ctx context.Context, uid string, input AddSubjectInput) (*entity.User, error) {
	if strings.TrimSpace(input.Subject.Name) == "" {
		return nil, errors.BadRequest("Please enter a subject name", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !user.IsTutor {
		return nil, errors.Forbidden("Only tutors can add subjects", nil)
	}

	user.Subjects = appendSubject(user.Subjects, input.Subject)
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func appendSubject(subjects []entity.Subject, subject entity.Subject) []entity.Subject {
	for _, s := range subjects {
		if strings.EqualFold(s.Name, subject.Name) {
			return subjects
		}
	}
	return append(subjects, subject)
}

func splitDisplayName(displayName string) (string, string) {
	parts := strings.Fields(displayName)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
