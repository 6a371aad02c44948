package service

import (
	"strings"

	"github.com/workout-tracker/backend/internal/common/constants"
)

// The companion app predates this service and its existing accounts include
// short credentials, so only presence and upper bounds are enforced here.
// Anything stricter would lock real users out.

func validateRegistration(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return ErrValidationMissingField
	}

	if len(username) > constants.UsernameMaxLength {
		return ErrValidationUsernameLength
	}

	if len(email) > constants.EmailMaxLength || !isPlausibleEmail(email) {
		return ErrValidationEmailFormat
	}

	if len(password) > constants.PasswordMaxLength {
		return ErrValidationPasswordLength
	}

	return nil
}

func validateLogin(email, password string) error {
	if email == "" || password == "" {
		return ErrValidationMissingField
	}
	return nil
}

// isPlausibleEmail is the service-level backstop; full syntax checking lives
// at the HTTP boundary.
func isPlausibleEmail(value string) bool {
	at := strings.Index(value, "@")
	if at <= 0 || at == len(value)-1 {
		return false
	}
	if strings.ContainsAny(value, " \t\r\n") {
		return false
	}
	return true
}
