package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/workout-tracker/backend/internal/account/domain"
	"github.com/workout-tracker/backend/internal/account/repository"
	"github.com/workout-tracker/backend/internal/common/clock"
	commoncrypto "github.com/workout-tracker/backend/internal/common/crypto"
	"github.com/workout-tracker/backend/internal/common/logger"
)

// AccountService owns all validation and decision logic for the account
// workflow. It holds no cross-request state; the only shared resource is the
// store behind the injected repository.
type AccountService struct {
	repo        repository.Repository
	hasher      commoncrypto.CredentialHasher
	idGenerator commoncrypto.IDGenerator
	clock       clock.Clock
	log         *logger.Logger
}

func NewAccountService(
	repo repository.Repository,
	hasher commoncrypto.CredentialHasher,
	idGenerator commoncrypto.IDGenerator,
	clk clock.Clock,
	log *logger.Logger,
) *AccountService {
	return &AccountService{
		repo:        repo,
		hasher:      hasher,
		idGenerator: idGenerator,
		clock:       clk,
		log:         log,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

func (s *AccountService) Register(ctx context.Context, input RegisterInput) (domain.ID, error) {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "register_attempt",
	}).Info("register attempt")

	if err := validateRegistration(input.Username, input.Email, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_validation_failed",
		}).Warnf("register validation failed: %v", err)
		incrementRegistrations("validation_failed")
		return "", err
	}

	// Fast path only; two concurrent registrations can both pass this check.
	// The unique indexes make the insert below the authoritative arbiter.
	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_precheck_failed",
		}).Errorf("register failed: duplicate pre-check error: %v", err)
		incrementRegistrations("store_error")
		return "", ErrStoreUnavailable.WithCause(err)
	}
	if exists {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_duplicate",
		}).Warn("register failed: username or email already registered")
		incrementRegistrations("duplicate")
		return "", ErrDuplicateAccount
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_hash_failed",
		}).Errorf("register failed: credential hash error: %v", err)
		incrementRegistrations("error")
		return "", ErrStoreUnavailable.WithCause(err)
	}

	id, err := s.idGenerator.NewID()
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_id_generation_failed",
		}).Errorf("register failed: id generation error: %v", err)
		incrementRegistrations("error")
		return "", ErrStoreUnavailable.WithCause(err)
	}

	account := domain.Account{
		ID:           domain.ID(id),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "register_duplicate",
			}).Warn("register failed: unique index rejected insert")
			incrementRegistrations("duplicate")
			return "", ErrDuplicateAccount
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "register_create_failed",
		}).Errorf("register failed: %v", err)
		incrementRegistrations("store_error")
		return "", ErrStoreUnavailable.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"username": account.Username,
		"user_id":  string(account.ID),
		"action":   "register_success",
	}).Info("register success")
	incrementRegistrations("success")

	return account.ID, nil
}

func (s *AccountService) Login(ctx context.Context, input LoginInput) (domain.Profile, error) {
	s.log.WithFields(ctx, logger.Fields{
		"action": "login_attempt",
	}).Info("login attempt")

	if err := validateLogin(input.Email, input.Password); err != nil {
		incrementLogins("validation_failed")
		return domain.Profile{}, err
	}

	account, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"action": "login_unknown_email",
			}).Warn("login failed: unknown email")
			incrementLogins("invalid_credentials")
			return domain.Profile{}, ErrInvalidCredentials
		}
		s.log.WithFields(ctx, logger.Fields{
			"action": "login_fetch_failed",
		}).Errorf("login failed: %v", err)
		incrementLogins("store_error")
		return domain.Profile{}, ErrStoreUnavailable.WithCause(err)
	}

	if err := s.hasher.Compare(account.PasswordHash, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": string(account.ID),
			"action":  "login_invalid_password",
		}).Warn("login failed: invalid password")
		incrementLogins("invalid_credentials")
		return domain.Profile{}, ErrInvalidCredentials
	}

	s.log.WithFields(ctx, logger.Fields{
		"user_id": string(account.ID),
		"action":  "login_success",
	}).Info("login success")
	incrementLogins("success")

	return account.Profile(), nil
}

// GetByID validates the identifier before touching the store: a malformed id
// costs no round trip.
func (s *AccountService) GetByID(ctx context.Context, rawID string) (domain.Profile, error) {
	if _, err := uuid.Parse(rawID); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"action": "profile_invalid_id",
		}).Warnf("profile lookup failed: malformed id: %v", err)
		incrementProfileLookups("invalid_id")
		return domain.Profile{}, ErrInvalidIdentifier
	}

	profile, err := s.repo.FindByID(ctx, domain.ID(rawID))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"user_id": rawID,
				"action":  "profile_not_found",
			}).Warn("profile lookup failed: not found")
			incrementProfileLookups("not_found")
			return domain.Profile{}, ErrAccountNotFound
		}
		s.log.WithFields(ctx, logger.Fields{
			"user_id": rawID,
			"action":  "profile_fetch_failed",
		}).Errorf("profile lookup failed: %v", err)
		incrementProfileLookups("store_error")
		return domain.Profile{}, ErrStoreUnavailable.WithCause(err)
	}

	incrementProfileLookups("success")
	return profile, nil
}
