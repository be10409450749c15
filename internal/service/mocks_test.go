package service

import (
	"context"

	"superlists/internal/mail"
	"superlists/internal/model"
	"superlists/internal/repo"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUsersByEmails(ctx context.Context, emails []string) ([]model.User, error) {
	args := m.Called(ctx, emails)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetOrCreateUser(ctx context.Context, email string) (*model.User, bool, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// мок для repo.TokenRepository
type mockTokenRepo struct{ mock.Mock }

func (m *mockTokenRepo) CreateToken(ctx context.Context, email string) (*model.Token, error) {
	args := m.Called(ctx, email)
	if t, ok := args.Get(0).(*model.Token); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTokenRepo) GetToken(ctx context.Context, id string) (*model.Token, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*model.Token); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.TokenRepository = (*mockTokenRepo)(nil)

// мок для repo.ListRepository
type mockListRepo struct{ mock.Mock }

func (m *mockListRepo) CreateList(ctx context.Context, ownerEmail *string) (*model.List, error) {
	args := m.Called(ctx, ownerEmail)
	if l, ok := args.Get(0).(*model.List); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListRepo) CreateListWithItem(ctx context.Context, ownerEmail *string, text string) (*model.List, error) {
	args := m.Called(ctx, ownerEmail, text)
	if l, ok := args.Get(0).(*model.List); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListRepo) GetList(ctx context.Context, id int64) (*model.List, error) {
	args := m.Called(ctx, id)
	if l, ok := args.Get(0).(*model.List); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListRepo) AddItem(ctx context.Context, listID int64, text string) (*model.Item, bool, error) {
	args := m.Called(ctx, listID, text)
	if it, ok := args.Get(0).(*model.Item); ok {
		return it, args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *mockListRepo) AddSharee(ctx context.Context, listID int64, email string) (*model.ListSharee, bool, error) {
	args := m.Called(ctx, listID, email)
	if s, ok := args.Get(0).(*model.ListSharee); ok {
		return s, args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}

func (m *mockListRepo) ListsOwnedBy(ctx context.Context, email string) ([]model.List, error) {
	args := m.Called(ctx, email)
	if v, ok := args.Get(0).([]model.List); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListRepo) ListsSharedWith(ctx context.Context, email string) ([]model.List, error) {
	args := m.Called(ctx, email)
	if v, ok := args.Get(0).([]model.List); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ListRepository = (*mockListRepo)(nil)

// мок почтового транспорта
type mockSender struct{ mock.Mock }

func (m *mockSender) Send(ctx context.Context, subject, body, from string, to []string) error {
	return m.Called(ctx, subject, body, from, to).Error(0)
}

var _ mail.Sender = (*mockSender)(nil)

func strPtr(s string) *string { return &s }
