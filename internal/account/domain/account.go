package domain

import (
	"encoding/json"
	"time"
)

type ID string

// Account is the stored entity. PasswordHash is a bcrypt derivation of the
// credential; the raw value is never persisted.
type Account struct {
	ID            ID
	Username      string
	Email         string
	PasswordHash  string
	SavedWorkouts json.RawMessage
	CreatedAt     time.Time
}

// Profile is the sanitized view returned to clients. It carries no
// credential material.
type Profile struct {
	ID            ID
	Username      string
	Email         string
	SavedWorkouts json.RawMessage
	CreatedAt     time.Time
}

func (a Account) Profile() Profile {
	return Profile{
		ID:            a.ID,
		Username:      a.Username,
		Email:         a.Email,
		SavedWorkouts: a.SavedWorkouts,
		CreatedAt:     a.CreatedAt,
	}
}
