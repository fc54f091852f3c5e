package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bookshelf-app/bookshelf/internal/service"
	"github.com/bookshelf-app/bookshelf/internal/store"
	"github.com/bookshelf-app/bookshelf/internal/utils"
	"github.com/bookshelf-app/bookshelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeHandler(h http.HandlerFunc, method, target, body string, identity *models.Identity) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = injectNopLogger(req)
	if identity != nil {
		req = req.WithContext(utils.WithIdentity(req.Context(), *identity))
	}
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			assert.Equal(t, "reader", creds.Username)
			return models.User{UserID: 1, Username: creds.Username, Email: creds.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: "fresh-token"}, nil
		},
	}
	h := newHandlerWithServices(t, auth, nil)

	rr := executeHandler(h.register, http.MethodPost, "/api/users",
		`{"username":"reader","email":"reader@example.com","password":"secret"}`, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer fresh-token", rr.Header().Get("Authorization"))

	var payload models.AuthPayload
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Equal(t, "fresh-token", payload.Token)
	assert.Equal(t, "reader", payload.User.Username)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}
	h := newHandlerWithServices(t, auth, nil)

	rr := executeHandler(h.register, http.MethodPost, "/api/users",
		`{"username":"reader","email":"reader@example.com","password":"secret"}`, nil)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithServices(t, nil, nil)

	rr := executeHandler(h.register, http.MethodPost, "/api/users", "{broken", nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (models.User, error) {
			assert.Equal(t, "reader@example.com", email)
			assert.Equal(t, "secret", password)
			return models.User{UserID: 1, Email: email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-token"}, nil
		},
	}
	h := newHandlerWithServices(t, auth, nil)

	rr := executeHandler(h.login, http.MethodPost, "/api/users/login",
		`{"email":"reader@example.com","password":"secret"}`, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed-token", rr.Header().Get("Authorization"))
}

func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}
	h := newHandlerWithServices(t, auth, nil)

	rr := executeHandler(h.login, http.MethodPost, "/api/users/login",
		`{"email":"reader@example.com","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMe_ReturnsShelf(t *testing.T) {
	shelf := &mockShelfService{
		meFn: func(_ context.Context, identity models.Identity) (models.User, error) {
			return models.User{
				UserID:     identity.UserID,
				SavedBooks: []models.SavedBook{{BookID: "vol1", Title: "Dune"}},
			}, nil
		},
	}
	h := newHandlerWithServices(t, nil, shelf)
	identity := models.Identity{UserID: 42}

	rr := executeHandler(h.me, http.MethodGet, "/api/users/me", "", &identity)

	assert.Equal(t, http.StatusOK, rr.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, int64(42), user.UserID)
	require.Len(t, user.SavedBooks, 1)
	assert.Equal(t, "vol1", user.SavedBooks[0].BookID)
}

func TestSaveBookREST_Unauthenticated(t *testing.T) {
	h := newHandlerWithServices(t, nil, nil)

	rr := executeHandler(h.saveBook, http.MethodPut, "/api/users/books",
		`{"bookId":"vol1","title":"Dune"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSaveBookREST_Success(t *testing.T) {
	shelf := &mockShelfService{
		saveBookFn: func(_ context.Context, identity models.Identity, book models.SavedBook) (models.User, error) {
			assert.Equal(t, int64(42), identity.UserID)
			assert.Equal(t, "vol1", book.BookID)
			return models.User{UserID: 42, SavedBooks: []models.SavedBook{book}}, nil
		},
	}
	h := newHandlerWithServices(t, nil, shelf)
	identity := models.Identity{UserID: 42}

	rr := executeHandler(h.saveBook, http.MethodPut, "/api/users/books",
		`{"bookId":"vol1","title":"Dune"}`, &identity)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid data", err: service.ErrInvalidDataProvided, want: http.StatusBadRequest},
		{name: "wrong password", err: service.ErrWrongPassword, want: http.StatusUnauthorized},
		{name: "duplicate user", err: store.ErrUserAlreadyExists, want: http.StatusConflict},
		{name: "unknown user", err: store.ErrNoUserWasFound, want: http.StatusNotFound},
		{name: "wrapped sentinel", err: errors.Join(errors.New("context"), store.ErrNoUserWasFound), want: http.StatusNotFound},
		{name: "unknown error", err: errors.New("surprise"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
