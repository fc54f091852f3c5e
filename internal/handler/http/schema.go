package http

import (
	"strconv"

	"github.com/bookshelf-app/bookshelf/internal/service"
	"github.com/bookshelf-app/bookshelf/internal/utils"
	"github.com/bookshelf-app/bookshelf/models"
	"github.com/graphql-go/graphql"
)

// buildSchema assembles the GraphQL schema:
//
//	type Book { bookId, title, authors, description, image, link }
//	type User { _id, username, email, bookCount, savedBooks }
//	type Auth { token, user }
//	Query    { me }
//	Mutation { login, addUser, saveBook, removeBook }
//
// Authentication is conveyed via the Authorization header (resolved into the
// request context by the resolveIdentity middleware), never via schema
// arguments. login and addUser must stay reachable anonymously, so the
// authentication check lives inside each protected resolver rather than in
// a single gate above the schema.
func (h *Handler) buildSchema() (graphql.Schema, error) {
	bookType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Book",
		Fields: graphql.Fields{
			"bookId":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"title":       &graphql.Field{Type: graphql.String},
			"authors":     &graphql.Field{Type: graphql.NewList(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
			"image":       &graphql.Field{Type: graphql.String},
			"link":        &graphql.Field{Type: graphql.String},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"_id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, ok := p.Source.(models.User)
					if !ok {
						return nil, nil
					}
					return strconv.FormatInt(user.UserID, 10), nil
				},
			},
			"username": &graphql.Field{Type: graphql.String},
			"email":    &graphql.Field{Type: graphql.String},
			"bookCount": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, ok := p.Source.(models.User)
					if !ok {
						return 0, nil
					}
					return user.BookCount(), nil
				},
			},
			"savedBooks": &graphql.Field{Type: graphql.NewList(bookType)},
		},
	})

	authType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Auth",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"user":  &graphql.Field{Type: userType},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type:    userType,
				Resolve: h.resolveMe,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type: authType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: h.resolveLogin,
			},
			"addUser": &graphql.Field{
				Type: authType,
				Args: graphql.FieldConfigArgument{
					"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: h.resolveAddUser,
			},
			"saveBook": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"bookId":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"authors":     &graphql.ArgumentConfig{Type: graphql.NewList(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.String},
					"image":       &graphql.ArgumentConfig{Type: graphql.String},
					"link":        &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: h.resolveSaveBook,
			},
			"removeBook": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"bookId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: h.resolveRemoveBook,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func (h *Handler) resolveMe(p graphql.ResolveParams) (interface{}, error) {
	identity, ok := utils.IdentityFromContext(p.Context)
	if !ok {
		return nil, service.ErrNotAuthenticated
	}

	return h.services.ShelfService.Me(p.Context, identity)
}

func (h *Handler) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	email := stringArg(p, "email")
	password := stringArg(p, "password")

	user, err := h.services.AuthService.Login(p.Context, email, password)
	if err != nil {
		return nil, err
	}

	token, err := h.services.AuthService.CreateToken(p.Context, user)
	if err != nil {
		return nil, err
	}

	return models.AuthPayload{Token: token.SignedString, User: user}, nil
}

func (h *Handler) resolveAddUser(p graphql.ResolveParams) (interface{}, error) {
	user, err := h.services.AuthService.RegisterUser(p.Context, models.Credentials{
		Username: stringArg(p, "username"),
		Email:    stringArg(p, "email"),
		Password: stringArg(p, "password"),
	})
	if err != nil {
		return nil, err
	}

	token, err := h.services.AuthService.CreateToken(p.Context, user)
	if err != nil {
		return nil, err
	}

	return models.AuthPayload{Token: token.SignedString, User: user}, nil
}

func (h *Handler) resolveSaveBook(p graphql.ResolveParams) (interface{}, error) {
	identity, ok := utils.IdentityFromContext(p.Context)
	if !ok {
		return nil, service.ErrNotAuthenticated
	}

	book := models.SavedBook{
		BookID:      stringArg(p, "bookId"),
		Title:       stringArg(p, "title"),
		Authors:     stringListArg(p, "authors"),
		Description: stringArg(p, "description"),
		Image:       stringArg(p, "image"),
		Link:        stringArg(p, "link"),
	}

	return h.services.ShelfService.SaveBook(p.Context, identity, book)
}

func (h *Handler) resolveRemoveBook(p graphql.ResolveParams) (interface{}, error) {
	identity, ok := utils.IdentityFromContext(p.Context)
	if !ok {
		return nil, service.ErrNotAuthenticated
	}

	return h.services.ShelfService.RemoveBook(p.Context, identity, stringArg(p, "bookId"))
}

func stringArg(p graphql.ResolveParams, name string) string {
	value, _ := p.Args[name].(string)
	return value
}

func stringListArg(p graphql.ResolveParams, name string) []string {
	raw, ok := p.Args[name].([]interface{})
	if !ok {
		return nil
	}

	values := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}
