package usecase

import "context"

// AuthClient is the identity provider surface the usecases need. The
// Firebase implementation lives in internal/infrastructure/firebase.
type AuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, idToken string) (string, error)
	SignInWithEmailPassword(ctx context.Context, email, password string) (string, error)
	SendPasswordReset(ctx context.Context, email string) error
	RevokeTokens(ctx context.Context, uid string) error
	UpdateUserEmail(ctx context.Context, uid, newEmail string) error
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
	UpdateDisplayName(ctx context.Context, uid, displayName string) error
}
