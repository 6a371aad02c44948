package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegistration(t *testing.T) {
	testCases := []struct {
		name     string
		username string
		email    string
		password string
		wantErr  error
	}{
		{"valid", "pinco", "pinco@example.com", "12345", nil},
		{"valid short password", "tizio", "tizio@yahoo.com", "00000", nil},
		{"empty username", "", "pinco@example.com", "12345", ErrValidationMissingField},
		{"empty email", "pinco", "", "12345", ErrValidationMissingField},
		{"empty password", "pinco", "pinco@example.com", "", ErrValidationMissingField},
		{"username too long", strings.Repeat("a", 65), "pinco@example.com", "12345", ErrValidationUsernameLength},
		{"email without at", "pinco", "pinco.example.com", "12345", ErrValidationEmailFormat},
		{"email leading at", "pinco", "@example.com", "12345", ErrValidationEmailFormat},
		{"email trailing at", "pinco", "pinco@", "12345", ErrValidationEmailFormat},
		{"email with space", "pinco", "pinco @example.com", "12345", ErrValidationEmailFormat},
		{"password over bcrypt bound", "pinco", "pinco@example.com", strings.Repeat("x", 73), ErrValidationPasswordLength},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateRegistration(tc.username, tc.email, tc.password)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, validateLogin("pinco@example.com", "12345"))
	assert.ErrorIs(t, validateLogin("", "12345"), ErrValidationMissingField)
	assert.ErrorIs(t, validateLogin("pinco@example.com", ""), ErrValidationMissingField)
}
