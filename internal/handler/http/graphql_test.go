package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bookshelf-app/bookshelf/internal/service"
	"github.com/bookshelf-app/bookshelf/internal/utils"
	"github.com/bookshelf-app/bookshelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type graphQLEnvelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// executeGraphQL posts a query to the graphQL handler, optionally with a
// verified identity already in the request context.
func executeGraphQL(t *testing.T, h *Handler, identity *models.Identity, query string, variables map[string]any) (int, graphQLEnvelope) {
	t.Helper()

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(string(body)))
	req = injectNopLogger(req)
	if identity != nil {
		req = req.WithContext(utils.WithIdentity(req.Context(), *identity))
	}

	rr := httptest.NewRecorder()
	h.graphQL(rr, req)

	var envelope graphQLEnvelope
	if rr.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	}
	return rr.Code, envelope
}

func firstErrorMessage(envelope graphQLEnvelope) string {
	if len(envelope.Errors) == 0 {
		return ""
	}
	return envelope.Errors[0].Message
}

func TestGraphQL_InvalidJSONBody(t *testing.T) {
	h := newHandlerWithServices(t, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader("{not json"))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.graphQL(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGraphQL_MeUnauthenticated(t *testing.T) {
	h := newHandlerWithServices(t, nil, nil)

	code, envelope := executeGraphQL(t, h, nil, `query { me { _id username } }`, nil)

	// resolver errors still answer 200, message only
	assert.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, envelope.Errors)
	assert.Contains(t, firstErrorMessage(envelope), service.ErrNotAuthenticated.Error())
}

func TestGraphQL_MeAuthenticated(t *testing.T) {
	shelf := &mockShelfService{
		meFn: func(_ context.Context, identity models.Identity) (models.User, error) {
			assert.Equal(t, int64(42), identity.UserID)
			return models.User{
				UserID:   42,
				Username: "reader",
				Email:    "reader@example.com",
				SavedBooks: []models.SavedBook{
					{BookID: "vol1", Title: "Dune", Authors: []string{"Frank Herbert"}},
				},
			}, nil
		},
	}
	h := newHandlerWithServices(t, nil, shelf)
	identity := models.Identity{UserID: 42, Username: "reader"}

	code, envelope := executeGraphQL(t, h, &identity,
		`query { me { _id username email bookCount savedBooks { bookId title authors } } }`, nil)

	assert.Equal(t, http.StatusOK, code)
	require.Empty(t, envelope.Errors)

	var data struct {
		Me struct {
			ID        string `json:"_id"`
			Username  string `json:"username"`
			Email     string `json:"email"`
			BookCount int    `json:"bookCount"`
			Saved     []struct {
				BookID  string   `json:"bookId"`
				Title   string   `json:"title"`
				Authors []string `json:"authors"`
			} `json:"savedBooks"`
		} `json:"me"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))

	assert.Equal(t, "42", data.Me.ID)
	assert.Equal(t, "reader", data.Me.Username)
	assert.Equal(t, 1, data.Me.BookCount)
	require.Len(t, data.Me.Saved, 1)
	assert.Equal(t, "vol1", data.Me.Saved[0].BookID)
	assert.Equal(t, []string{"Frank Herbert"}, data.Me.Saved[0].Authors)
}

func TestGraphQL_LoginReturnsTokenAndUser(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (models.User, error) {
			assert.Equal(t, "reader@example.com", email)
			assert.Equal(t, "secret", password)
			return models.User{UserID: 1, Username: "reader"}, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-token"}, nil
		},
	}
	h := newHandlerWithServices(t, auth, nil)

	code, envelope := executeGraphQL(t, h, nil,
		`mutation Login($email: String!, $password: String!) {
			login(email: $email, password: $password) { token user { username } }
		}`,
		map[string]any{"email": "reader@example.com", "password": "secret"})

	assert.Equal(t, http.StatusOK, code)
	require.Empty(t, envelope.Errors)

	var data struct {
		Login struct {
			Token string `json:"token"`
			User  struct {
				Username string `json:"username"`
			} `json:"user"`
		} `json:"login"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Equal(t, "signed-token", data.Login.Token)
	assert.Equal(t, "reader", data.Login.User.Username)
}

func TestGraphQL_LoginWrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}
	h := newHandlerWithServices(t, auth, nil)

	code, envelope := executeGraphQL(t, h, nil,
		`mutation { login(email: "reader@example.com", password: "wrong") { token } }`, nil)

	assert.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, envelope.Errors)
	assert.Contains(t, firstErrorMessage(envelope), service.ErrWrongPassword.Error())
}

func TestGraphQL_AddUser(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			assert.Equal(t, "reader", creds.Username)
			return models.User{UserID: 7, Username: creds.Username, Email: creds.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: "fresh-token"}, nil
		},
	}
	h := newHandlerWithServices(t, auth, nil)

	code, envelope := executeGraphQL(t, h, nil,
		`mutation AddUser($username: String!, $email: String!, $password: String!) {
			addUser(username: $username, email: $email, password: $password) { token user { _id } }
		}`,
		map[string]any{"username": "reader", "email": "reader@example.com", "password": "secret"})

	assert.Equal(t, http.StatusOK, code)
	require.Empty(t, envelope.Errors)

	var data struct {
		AddUser struct {
			Token string `json:"token"`
			User  struct {
				ID string `json:"_id"`
			} `json:"user"`
		} `json:"addUser"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Equal(t, "fresh-token", data.AddUser.Token)
	assert.Equal(t, "7", data.AddUser.User.ID)
}

func TestGraphQL_SaveBook(t *testing.T) {
	var gotBook models.SavedBook
	shelf := &mockShelfService{
		saveBookFn: func(_ context.Context, identity models.Identity, book models.SavedBook) (models.User, error) {
			gotBook = book
			return models.User{UserID: identity.UserID, SavedBooks: []models.SavedBook{book}}, nil
		},
	}
	h := newHandlerWithServices(t, nil, shelf)
	identity := models.Identity{UserID: 42}

	code, envelope := executeGraphQL(t, h, &identity,
		`mutation Save($bookId: String!, $title: String!, $authors: [String]) {
			saveBook(bookId: $bookId, title: $title, authors: $authors) {
				bookCount savedBooks { bookId }
			}
		}`,
		map[string]any{"bookId": "vol1", "title": "Dune", "authors": []any{"Frank Herbert"}})

	assert.Equal(t, http.StatusOK, code)
	require.Empty(t, envelope.Errors)

	assert.Equal(t, "vol1", gotBook.BookID)
	assert.Equal(t, "Dune", gotBook.Title)
	assert.Equal(t, []string{"Frank Herbert"}, gotBook.Authors)

	var data struct {
		SaveBook struct {
			BookCount int `json:"bookCount"`
			Saved     []struct {
				BookID string `json:"bookId"`
			} `json:"savedBooks"`
		} `json:"saveBook"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Equal(t, 1, data.SaveBook.BookCount)
}

func TestGraphQL_SaveBookUnauthenticated(t *testing.T) {
	shelf := &mockShelfService{
		saveBookFn: func(context.Context, models.Identity, models.SavedBook) (models.User, error) {
			t.Fatal("service must not be reached without an identity")
			return models.User{}, nil
		},
	}
	h := newHandlerWithServices(t, nil, shelf)

	code, envelope := executeGraphQL(t, h, nil,
		`mutation { saveBook(bookId: "vol1", title: "Dune") { bookCount } }`, nil)

	assert.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, envelope.Errors)
	assert.Contains(t, firstErrorMessage(envelope), service.ErrNotAuthenticated.Error())
}

func TestGraphQL_RemoveBook(t *testing.T) {
	shelf := &mockShelfService{
		removeBookFn: func(_ context.Context, identity models.Identity, bookID string) (models.User, error) {
			assert.Equal(t, int64(42), identity.UserID)
			assert.Equal(t, "vol1", bookID)
			return models.User{UserID: 42}, nil
		},
	}
	h := newHandlerWithServices(t, nil, shelf)
	identity := models.Identity{UserID: 42}

	code, envelope := executeGraphQL(t, h, &identity,
		`mutation { removeBook(bookId: "vol1") { bookCount savedBooks { bookId } } }`, nil)

	assert.Equal(t, http.StatusOK, code)
	require.Empty(t, envelope.Errors)

	var data struct {
		RemoveBook struct {
			BookCount int `json:"bookCount"`
		} `json:"removeBook"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Equal(t, 0, data.RemoveBook.BookCount)
}
