package service

import (
	"net/http"

	commonerrors "github.com/workout-tracker/backend/internal/common/errors"
)

// Client-facing messages stay in Italian: the companion app matches on them.
var (
	ErrDuplicateAccount = commonerrors.NewDomainError(
		"DUPLICATE_ACCOUNT",
		commonerrors.CategoryConflict,
		http.StatusBadRequest,
		"Username o email già registrati",
	)

	// ErrInvalidCredentials covers unknown email and wrong password alike;
	// the two cases must stay externally indistinguishable.
	ErrInvalidCredentials = commonerrors.NewDomainError(
		"INVALID_CREDENTIALS",
		commonerrors.CategoryUnauthorized,
		http.StatusUnauthorized,
		"Credenziali non valide",
	)

	ErrInvalidIdentifier = commonerrors.NewDomainError(
		"INVALID_IDENTIFIER",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"ID utente non valido",
	)

	ErrAccountNotFound = commonerrors.NewDomainError(
		"ACCOUNT_NOT_FOUND",
		commonerrors.CategoryNotFound,
		http.StatusNotFound,
		"Utente non trovato",
	)

	ErrStoreUnavailable = commonerrors.NewDomainError(
		"STORE_UNAVAILABLE",
		commonerrors.CategoryExternal,
		http.StatusInternalServerError,
		"Errore interno del server",
	)

	ErrValidationMissingField = commonerrors.NewDomainError(
		"VALIDATION_FAILED",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Tutti i campi sono obbligatori",
	)

	ErrValidationUsernameLength = commonerrors.NewDomainError(
		"VALIDATION_FAILED",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Username troppo lungo",
	)

	ErrValidationEmailFormat = commonerrors.NewDomainError(
		"VALIDATION_FAILED",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Email non valida",
	)

	ErrValidationPasswordLength = commonerrors.NewDomainError(
		"VALIDATION_FAILED",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"Password troppo lunga",
	)
)
