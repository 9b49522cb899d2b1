package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/ReewajAdhikari/LearningTree/internal/domain/entity"
	"github.com/ReewajAdhikari/LearningTree/internal/domain/repository"
	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
)

type AuthUseCase struct {
	authClient AuthClient
	userRepo   repository.UserRepository
}

func NewAuthUseCase(authClient AuthClient, userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{
		authClient: authClient,
		userRepo:   userRepo,
	}
}

type RegisterInput struct {
	FirstName string `json:"firstname" validate:"required"`
	LastName  string `json:"lastname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResult struct {
	Token string       `json:"token,omitempty"`
	User  *entity.User `json:"user"`
}

// Register creates the identity provider account and the matching
// profile document. Password length is checked locally so a weak
// password never reaches the provider.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if len(input.Password) < 6 {
		return nil, errors.BadRequest("Password must be at least 6 characters.", nil)
	}

	displayName := strings.TrimSpace(input.FirstName + " " + input.LastName)

	uid, err := uc.authClient.CreateUser(ctx, input.Email, input.Password, displayName)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:          uid,
		DisplayName: displayName,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Subjects:    []entity.Subject{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &AuthResult{User: user}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	token, err := uc.authClient.SignInWithEmailPassword(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

func (uc *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.BadRequest("Please enter your email address", nil)
	}
	return uc.authClient.SendPasswordReset(ctx, email)
}

// Logout revokes the user's refresh tokens so the session cannot be
// silently renewed. Existing ID tokens still expire on their own.
func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	return uc.authClient.RevokeTokens(ctx, uid)
}

func (uc *AuthUseCase) VerifyToken(ctx context.Context, token string) (string, error) {
	return uc.authClient.VerifyToken(ctx, token)
}
