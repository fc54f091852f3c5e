// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"
	"time"

	"github.com/bookshelf-app/bookshelf/internal/config"
	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/internal/store"
	"github.com/bookshelf-app/bookshelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	addSavedBookFn    func(ctx context.Context, userID int64, book models.SavedBook) (models.User, error)
	removeSavedBookFn func(ctx context.Context, userID int64, bookID string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) AddSavedBook(ctx context.Context, userID int64, book models.SavedBook) (models.User, error) {
	if m.addSavedBookFn != nil {
		return m.addSavedBookFn(ctx, userID, book)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) RemoveSavedBook(ctx context.Context, userID int64, bookID string) (models.User, error) {
	if m.removeSavedBookFn != nil {
		return m.removeSavedBookFn(ctx, userID, bookID)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var testAuthConfig = config.Auth{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "bookshelf-test",
	TokenDuration: time.Hour,
}

func newTestAuthService(t *testing.T, repo store.UserRepository) AuthService {
	t.Helper()
	svc, err := NewAuthService(repo, testAuthConfig, logger.Nop())
	require.NoError(t, err)
	return svc
}

// ─────────────────────────────────────────────
// NewAuthService
// ─────────────────────────────────────────────

func TestNewAuthService_MissingSignKey(t *testing.T) {
	_, err := NewAuthService(&mockUserRepository{}, config.Auth{TokenIssuer: "x"}, logger.Nop())
	require.Error(t, err)
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestRegisterUser_Success(t *testing.T) {
	var persisted models.User
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			persisted = user
			user.UserID = 7
			return user, nil
		},
	}
	svc := newTestAuthService(t, repo)

	user, err := svc.RegisterUser(context.Background(), models.Credentials{
		Username: "reader",
		Email:    "reader@example.com",
		Password: "hunter2222",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, "reader", user.Username)

	// the plaintext password must never reach the repository
	assert.NotEqual(t, "hunter2222", persisted.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.PasswordHash), []byte("hunter2222")))
}

func TestRegisterUser_InvalidData(t *testing.T) {
	tests := []struct {
		name  string
		creds models.Credentials
	}{
		{name: "empty username", creds: models.Credentials{Email: "a@b.c", Password: "p"}},
		{name: "empty email", creds: models.Credentials{Username: "u", Password: "p"}},
		{name: "empty password", creds: models.Credentials{Username: "u", Email: "a@b.c"}},
	}

	svc := newTestAuthService(t, &mockUserRepository{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.creds)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}
	svc := newTestAuthService(t, repo)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{
		Username: "reader",
		Email:    "taken@example.com",
		Password: "p",
	})

	require.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func userWithPassword(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return models.User{
		UserID:       42,
		Username:     "reader",
		Email:        "reader@example.com",
		PasswordHash: string(hash),
	}
}

func TestLogin_Success(t *testing.T) {
	stored := userWithPassword(t, "correct-horse")
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			assert.Equal(t, "reader@example.com", email)
			return stored, nil
		},
	}
	svc := newTestAuthService(t, repo)

	user, err := svc.Login(context.Background(), "reader@example.com", "correct-horse")

	require.NoError(t, err)
	assert.Equal(t, int64(42), user.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	stored := userWithPassword(t, "correct-horse")
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return stored, nil
		},
	}
	svc := newTestAuthService(t, repo)

	_, err := svc.Login(context.Background(), "reader@example.com", "battery-staple")

	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(t, repo)

	_, err := svc.Login(context.Background(), "nobody@example.com", "p")

	require.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestLogin_InvalidData(t *testing.T) {
	svc := newTestAuthService(t, &mockUserRepository{})

	_, err := svc.Login(context.Background(), "", "p")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), "a@b.c", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestCreateToken_ParseToken_Roundtrip(t *testing.T) {
	svc := newTestAuthService(t, &mockUserRepository{})
	user := models.User{UserID: 42, Username: "reader", Email: "reader@example.com"}

	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.Identity.UserID)
	assert.Equal(t, "reader", parsed.Identity.Username)
	assert.Equal(t, "reader@example.com", parsed.Identity.Email)
}

func TestParseToken_Expired(t *testing.T) {
	expiredCfg := testAuthConfig
	expiredCfg.TokenDuration = -time.Minute

	issuer, err := NewAuthService(&mockUserRepository{}, expiredCfg, logger.Nop())
	require.NoError(t, err)

	token, err := issuer.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	svc := newTestAuthService(t, &mockUserRepository{})
	_, err = svc.ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestParseToken_WrongSignKey(t *testing.T) {
	otherCfg := testAuthConfig
	otherCfg.TokenSignKey = "another-key"

	issuer, err := NewAuthService(&mockUserRepository{}, otherCfg, logger.Nop())
	require.NoError(t, err)

	token, err := issuer.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	svc := newTestAuthService(t, &mockUserRepository{})
	_, err = svc.ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsInvalid)
}

func TestParseToken_Garbage(t *testing.T) {
	svc := newTestAuthService(t, &mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not-a-token")
	require.ErrorIs(t, err, ErrTokenIsInvalid)
}
