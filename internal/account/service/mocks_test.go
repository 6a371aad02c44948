package service

import (
	"context"
	"errors"

	"github.com/workout-tracker/backend/internal/account/domain"
	"github.com/workout-tracker/backend/internal/account/repository"
)

type mockRepo struct {
	createFunc                  func(ctx context.Context, account domain.Account) error
	findByEmailFunc             func(ctx context.Context, email string) (domain.Account, error)
	findByIDFunc                func(ctx context.Context, id domain.ID) (domain.Profile, error)
	existsByUsernameOrEmailFunc func(ctx context.Context, username, email string) (bool, error)

	createCalls int
	findCalls   int
}

func (m *mockRepo) Create(ctx context.Context, account domain.Account) error {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, account)
	}
	return nil
}

func (m *mockRepo) FindByEmail(ctx context.Context, email string) (domain.Account, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return domain.Account{}, repository.ErrAccountNotFound
}

func (m *mockRepo) FindByID(ctx context.Context, id domain.ID) (domain.Profile, error) {
	m.findCalls++
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return domain.Profile{}, repository.ErrAccountNotFound
}

func (m *mockRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	if m.existsByUsernameOrEmailFunc != nil {
		return m.existsByUsernameOrEmailFunc(ctx, username, email)
	}
	return false, nil
}

type mockHasher struct {
	hashFunc    func(credential string) (string, error)
	compareFunc func(hash, credential string) error
}

func (m *mockHasher) Hash(credential string) (string, error) {
	if m.hashFunc != nil {
		return m.hashFunc(credential)
	}
	return "hashed:" + credential, nil
}

func (m *mockHasher) Compare(hash, credential string) error {
	if m.compareFunc != nil {
		return m.compareFunc(hash, credential)
	}
	if hash == "hashed:"+credential {
		return nil
	}
	return errors.New("credential mismatch")
}

type mockIDGenerator struct {
	newIDFunc func() (string, error)
}

func (m *mockIDGenerator) NewID() (string, error) {
	if m.newIDFunc != nil {
		return m.newIDFunc()
	}
	return "7b08ec26-9a0f-4f0c-8b6f-0d4f0a3c9e11", nil
}
