package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"

	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
)

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// AuthClient wraps the Firebase Admin SDK plus the Identity Toolkit REST
// endpoints the Admin SDK does not cover (password sign-in, reset emails).
type AuthClient struct {
	client     *auth.Client
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

func NewAuthClient(client *auth.Client, apiKey string) *AuthClient {
	return &AuthClient{
		client:     client,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    identityToolkitURL,
	}
}

func (a *AuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := a.client.CreateUser(ctx, params)
	if err != nil {
		return "", classifyAdminError(err)
	}

	return user.UID, nil
}

func (a *AuthClient) VerifyToken(ctx context.Context, idToken string) (string, error) {
	token, err := a.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", errors.Unauthorized("Invalid or expired token", err)
	}

	return token.UID, nil
}

// SignInWithEmailPassword exchanges credentials for an ID token via the
// Identity Toolkit REST API. Also used to reauthenticate before sensitive
// profile updates.
func (a *AuthClient) SignInWithEmailPassword(ctx context.Context, email, password string) (string, error) {
	body := map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var result struct {
		IDToken string `json:"idToken"`
		LocalID string `json:"localId"`
	}

	if err := a.post(ctx, "accounts:signInWithPassword", body, &result); err != nil {
		return "", err
	}

	return result.IDToken, nil
}

// SendPasswordReset asks the provider to email a password reset link.
func (a *AuthClient) SendPasswordReset(ctx context.Context, email string) error {
	body := map[string]interface{}{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}

	return a.post(ctx, "accounts:sendOobCode", body, nil)
}

// RevokeTokens invalidates every refresh token the user holds; issued ID
// tokens expire on their own within the hour.
func (a *AuthClient) RevokeTokens(ctx context.Context, uid string) error {
	if err := a.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return classifyAdminError(err)
	}
	return nil
}

func (a *AuthClient) UpdateUserEmail(ctx context.Context, uid, newEmail string) error {
	params := (&auth.UserToUpdate{}).Email(newEmail)

	if _, err := a.client.UpdateUser(ctx, uid, params); err != nil {
		return classifyAdminError(err)
	}

	return nil
}

func (a *AuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	params := (&auth.UserToUpdate{}).Password(newPassword)

	if _, err := a.client.UpdateUser(ctx, uid, params); err != nil {
		return classifyAdminError(err)
	}

	return nil
}

func (a *AuthClient) UpdateDisplayName(ctx context.Context, uid, displayName string) error {
	params := (&auth.UserToUpdate{}).DisplayName(displayName)

	if _, err := a.client.UpdateUser(ctx, uid, params); err != nil {
		return classifyAdminError(err)
	}

	return nil
}

func (a *AuthClient) post(ctx context.Context, endpoint string, body map[string]interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Internal("Failed to encode auth request", err)
	}

	url := fmt.Sprintf("%s/%s?key=%s", a.baseURL, endpoint, a.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Internal("Failed to build auth request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return errors.Internal("Network error. Please check your connection.", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return errors.Internal("Authentication provider request failed", err)
		}
		return ClassifyIdentityError(errResp.Error.Message)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Internal("Failed to decode auth response", err)
	}

	return nil
}
