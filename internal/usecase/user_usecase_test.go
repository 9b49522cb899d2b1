package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
)

func TestUpdatePasswordLocalValidation(t *testing.T) {
	tests := []struct {
		name  string
		input UpdatePasswordInput
	}{
		{
			name:  "missing fields",
			input: UpdatePasswordInput{NewPassword: "secret1", ConfirmPassword: "secret1"},
		},
		{
			name:  "mismatched confirmation",
			input: UpdatePasswordInput{CurrentPassword: "old", NewPassword: "secret1", ConfirmPassword: "secret2"},
		},
		{
			name:  "too short",
			input: UpdatePasswordInput{CurrentPassword: "old", NewPassword: "abc12", ConfirmPassword: "abc12"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authClient := &fakeAuthClient{}
			uc := NewUserUseCase(newFakeUserRepo(), authClient)

			err := uc.UpdatePassword(context.Background(), "uid-1", "a@b.edu", tt.input)

			assert.True(t, errors.Is(err, "BAD_REQUEST"))
			assert.Empty(t, authClient.calls, "local validation failure must not reach the provider")
		})
	}
}

func TestUpdatePassword(t *testing.T) {
	authClient := &fakeAuthClient{}
	uc := NewUserUseCase(newFakeUserRepo(), authClient)

	err := uc.UpdatePassword(context.Background(), "uid-1", "a@b.edu", UpdatePasswordInput{
		CurrentPassword: "old-secret",
		NewPassword:     "new-secret",
		ConfirmPassword: "new-secret",
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"SignInWithEmailPassword", "UpdateUserPassword"}, authClient.calls)
}

func TestUpdatePasswordWrongCurrent(t *testing.T) {
	authClient := &fakeAuthClient{signInErr: errors.Unauthorized("Incorrect password.", nil)}
	uc := NewUserUseCase(newFakeUserRepo(), authClient)

	err := uc.UpdatePassword(context.Background(), "uid-1", "a@b.edu", UpdatePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "new-secret",
		ConfirmPassword: "new-secret",
	})

	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	assert.Equal(t, []string{"SignInWithEmailPassword"}, authClient.calls)
}

func TestGetProfileBootstrapsMissingDocument(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := NewUserUseCase(userRepo, &fakeAuthClient{})

	user, err := uc.GetProfile(context.Background(), "uid-1", "ada@school.edu", "Ada Lovelace")

	assert.NoError(t, err)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "Lovelace", user.LastName)
	assert.Equal(t, []entity.Subject{}, user.Subjects)
	assert.Equal(t, 1, userRepo.createCalls)
}

func TestGetProfileExisting(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "uid-1", DisplayName: "Ada Lovelace"})
	uc := NewUserUseCase(userRepo, &fakeAuthClient{})

	user, err := uc.GetProfile(context.Background(), "uid-1", "ada@school.edu", "Ada Lovelace")

	assert.NoError(t, err)
	assert.Equal(t, "uid-1", user.ID)
	assert.Zero(t, userRepo.createCalls)
}

func TestRegisterAsTutor(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "uid-1", DisplayName: "Ada Lovelace"})
	uc := NewUserUseCase(userRepo, &fakeAuthClient{})

	user, err := uc.RegisterAsTutor(context.Background(), "uid-1", RegisterTutorInput{
		EducationalEmail: "Ada@Tech.EDU",
		Subject:          entity.Subject{Name: "Mathematics"},
	})

	assert.NoError(t, err)
	assert.True(t, user.IsTutor)
	assert.True(t, user.TutorVerified)
	assert.Equal(t, "ada@tech.edu", user.EducationalEmail)
	assert.Len(t, user.Subjects, 1)
}

func TestRegisterAsTutorRejectsNonEduEmail(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "uid-1"})
	uc := NewUserUseCase(userRepo, &fakeAuthClient{})

	_, err := uc.RegisterAsTutor(context.Background(), "uid-1", RegisterTutorInput{
		EducationalEmail: "ada@gmail.com",
	})

	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRegisterAsTutorRejectsTakenEducationalEmail(t *testing.T) {
	userRepo := newFakeUserRepo(
		&entity.User{ID: "uid-1"},
		&entity.User{ID: "uid-2", EducationalEmail: "ada@tech.edu"},
	)
	uc := NewUserUseCase(userRepo, &fakeAuthClient{})

	_, err := uc.RegisterAsTutor(context.Background(), "uid-1", RegisterTutorInput{
		EducationalEmail: "ada@tech.edu",
	})

	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestAddSubjectDeduplicates(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{
		ID:      "uid-1",
		IsTutor: true,
		Subjects: []entity.Subject{
			{Name: "Mathematics"},
		},
	})
	uc := NewUserUseCase(userRepo, &fakeAuthClient{})

	user, err := uc.AddSubject(context.Background(), "uid-1", AddSubjectInput{
		Subject: entity.Subject{Name: "mathematics", Course: "MATH 101"},
	})

	assert.NoError(t, err)
	assert.Len(t, user.Subjects, 1)
}

func TestAddSubjectRequiresTutor(t *testing.T) {
	userRepo := newFakeUserRepo(&entity.User{ID: "uid-1"})
	uc := NewUserUseCase(userRepo, &fakeAuthClient{})

	_, err := uc.AddSubject(context.Background(), "uid-1", AddSubjectInput{
		Subject: entity.Subject{Name: "Physics"},
	})

	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
