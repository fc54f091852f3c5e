package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/bookshelf-app/bookshelf/internal/config"
	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/models"
	"github.com/go-resty/resty/v2"
)

// Operation documents sent to the server. The selection set mirrors what the
// web client asks for, so both clients exercise the same resolver paths.
const (
	userSelection = `_id username email bookCount savedBooks { bookId title authors description image link }`

	meQuery = `query Me { me { ` + userSelection + ` } }`

	loginMutation = `mutation Login($email: String!, $password: String!) {
  login(email: $email, password: $password) { token user { ` + userSelection + ` } }
}`

	addUserMutation = `mutation AddUser($username: String!, $email: String!, $password: String!) {
  addUser(username: $username, email: $email, password: $password) { token user { ` + userSelection + ` } }
}`

	saveBookMutation = `mutation SaveBook($bookId: String!, $title: String!, $authors: [String], $description: String, $image: String, $link: String) {
  saveBook(bookId: $bookId, title: $title, authors: $authors, description: $description, image: $image, link: $link) { ` + userSelection + ` }
}`

	removeBookMutation = `mutation RemoveBook($bookId: String!) {
  removeBook(bookId: $bookId) { ` + userSelection + ` }
}`
)

type graphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewGraphQLServerAdapter constructs a GraphQL-over-HTTP implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.ServerBaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.ServerBaseURL is empty or cannot be parsed as a
// valid URL.
func NewGraphQLServerAdapter(cfg config.Client, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &graphQLServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (g *graphQLServerAdapter) SetToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = strings.TrimSpace(token)
}

func (g *graphQLServerAdapter) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// Register implements [ServerAdapter] via the addUser mutation.
func (g *graphQLServerAdapter) Register(ctx context.Context, creds models.Credentials) (models.AuthPayload, error) {
	var data struct {
		AddUser models.AuthPayload `json:"addUser"`
	}

	err := g.do(ctx, "AddUser", addUserMutation, map[string]any{
		"username": creds.Username,
		"email":    creds.Email,
		"password": creds.Password,
	}, &data)
	if err != nil {
		return models.AuthPayload{}, err
	}

	g.SetToken(data.AddUser.Token)
	return data.AddUser, nil
}

// Login implements [ServerAdapter] via the login mutation.
func (g *graphQLServerAdapter) Login(ctx context.Context, email, password string) (models.AuthPayload, error) {
	var data struct {
		Login models.AuthPayload `json:"login"`
	}

	err := g.do(ctx, "Login", loginMutation, map[string]any{
		"email":    email,
		"password": password,
	}, &data)
	if err != nil {
		return models.AuthPayload{}, err
	}

	g.SetToken(data.Login.Token)
	return data.Login, nil
}

// Me implements [ServerAdapter] via the me query.
func (g *graphQLServerAdapter) Me(ctx context.Context) (models.User, error) {
	var data struct {
		Me models.User `json:"me"`
	}

	if err := g.do(ctx, "Me", meQuery, nil, &data); err != nil {
		return models.User{}, err
	}

	return data.Me, nil
}

// SaveBook implements [ServerAdapter] via the saveBook mutation.
func (g *graphQLServerAdapter) SaveBook(ctx context.Context, book models.SavedBook) (models.User, error) {
	var data struct {
		SaveBook models.User `json:"saveBook"`
	}

	err := g.do(ctx, "SaveBook", saveBookMutation, map[string]any{
		"bookId":      book.BookID,
		"title":       book.Title,
		"authors":     book.Authors,
		"description": book.Description,
		"image":       book.Image,
		"link":        book.Link,
	}, &data)
	if err != nil {
		return models.User{}, err
	}

	return data.SaveBook, nil
}

// RemoveBook implements [ServerAdapter] via the removeBook mutation.
func (g *graphQLServerAdapter) RemoveBook(ctx context.Context, bookID string) (models.User, error) {
	var data struct {
		RemoveBook models.User `json:"removeBook"`
	}

	err := g.do(ctx, "RemoveBook", removeBookMutation, map[string]any{
		"bookId": bookID,
	}, &data)
	if err != nil {
		return models.User{}, err
	}

	return data.RemoveBook, nil
}

// do posts one GraphQL operation to /graphql and decodes the data payload
// into out. Resolver failures arrive with HTTP 200 and a populated errors
// list, so both the HTTP status and the errors list are mapped before out is
// touched.
func (g *graphQLServerAdapter) do(ctx context.Context, operationName, query string, variables map[string]any, out any) error {
	req := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(graphQLRequest{Query: query, OperationName: operationName, Variables: variables})
	if token := g.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	resp, err := req.Post("/graphql")
	if err != nil {
		return fmt.Errorf("%s request: %w", operationName, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var envelope graphQLResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("decode %s response: %w", operationName, err)
	}
	if err = mapGraphQLErrors(envelope.Errors); err != nil {
		return err
	}

	if out != nil && len(envelope.Data) > 0 {
		if err = json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode %s data: %w", operationName, err)
		}
	}

	return nil
}
