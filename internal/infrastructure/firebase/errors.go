package firebase

import (
	"strings"

	"firebase.google.com/go/v4/auth"

	"github.com/ReewajAdhikari/LearningTree/pkg/errors"
)

// ClassifyIdentityError maps an Identity Toolkit error code to the fixed set
// of user-facing messages. Unknown codes fall back to the raw provider
// message so a failure is never silent.
func ClassifyIdentityError(message string) *errors.AppError {
	// Codes sometimes carry details after the code itself, e.g.
	// "WEAK_PASSWORD : Password should be at least 6 characters".
	code := message
	if idx := strings.IndexAny(code, " :"); idx > 0 {
		code = code[:idx]
	}

	switch code {
	case "INVALID_EMAIL":
		return errors.BadRequest("Invalid email address.", nil)
	case "EMAIL_NOT_FOUND", "USER_NOT_FOUND":
		return errors.Unauthorized("No account found with this email.", nil)
	case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return errors.Unauthorized("Incorrect password.", nil)
	case "EMAIL_EXISTS":
		return errors.Conflict("Email already in use.", nil)
	case "WEAK_PASSWORD":
		return errors.BadRequest("Password is too weak.", nil)
	case "USER_DISABLED":
		return errors.Forbidden("This account has been disabled.", nil)
	case "CREDENTIAL_TOO_OLD_LOGIN_AGAIN", "TOKEN_EXPIRED":
		return errors.RequiresRecentLogin("Please log out and log back in, then try again.", nil)
	}

	if message == "" {
		return errors.Internal("Authentication provider request failed", nil)
	}
	return errors.BadRequest(message, nil)
}

// classifyAdminError translates Admin SDK errors into the same vocabulary.
func classifyAdminError(err error) *errors.AppError {
	switch {
	case auth.IsEmailAlreadyExists(err):
		return errors.Conflict("Email already in use.", err)
	case auth.IsUserNotFound(err):
		return errors.Unauthorized("No account found with this email.", err)
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "INVALID_EMAIL"), strings.Contains(msg, "malformed email"):
		return errors.BadRequest("Invalid email address.", err)
	case strings.Contains(msg, "WEAK_PASSWORD"), strings.Contains(msg, "at least 6 characters"):
		return errors.BadRequest("Password is too weak.", err)
	}

	return errors.Internal(msg, err)
}
