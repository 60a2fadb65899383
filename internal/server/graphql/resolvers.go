// Package graphql exposes the public operation surface: the schema, the
// resolvers behind it, and the HTTP server that carries them.
package graphql

import (
	"errors"

	"github.com/graphql-go/graphql"
	"github.com/readshelf/readshelf/internal/common"
	"github.com/readshelf/readshelf/internal/logging"
	"github.com/readshelf/readshelf/internal/server/models"
	"github.com/readshelf/readshelf/internal/server/services"
)

// Resolver implements the five operations over the user and book services.
// Operations that require authentication consult the request identity
// first, before touching any service, so an unauthorized request causes
// no store access at all.
type Resolver struct {
	users  *services.UserService
	books  *services.BookService
	logger logging.Logger
}

// NewResolver constructs a Resolver.
func NewResolver(us *services.UserService, bs *services.BookService, l logging.Logger) *Resolver {
	return &Resolver{users: us, books: bs, logger: l.With("module", "resolver")}
}

// callerSafe reduces an operation error to its sentinel so internal store
// detail never reaches the client.
var publicErrors = []error{
	common.ErrorNotLoggedIn,
	common.ErrorInvalidCredentials,
	common.ErrorUserCreate,
	common.ErrorUserFetch,
	common.ErrorBookSave,
	common.ErrorBookRemove,
}

func callerSafe(err error) error {
	for _, e := range publicErrors {
		if errors.Is(err, e) {
			return e
		}
	}
	return common.ErrorInternal
}

// Me returns the authenticated caller's own record.
func (r *Resolver) Me(p graphql.ResolveParams) (interface{}, error) {
	id, ok := IdentityFromContext(p.Context)
	if !ok {
		return nil, common.ErrorNotLoggedIn
	}

	user, err := r.users.GetByID(p.Context, id.UserID)
	if err != nil {
		r.logger.Error(p.Context, err.Error())
		return nil, callerSafe(err)
	}
	return user, nil
}

// AddUser registers an account and returns it with a fresh token.
func (r *Resolver) AddUser(p graphql.ResolveParams) (interface{}, error) {
	username := p.Args["username"].(string)
	email := p.Args["email"].(string)
	password := p.Args["password"].(string)

	result, err := r.users.Register(p.Context, username, email, password)
	if err != nil {
		r.logger.Error(p.Context, err.Error())
		return nil, callerSafe(err)
	}

	r.logger.Info(p.Context, "user registered", "username", username)
	return authPayload(result), nil
}

// Login verifies credentials and returns the user with a fresh token.
func (r *Resolver) Login(p graphql.ResolveParams) (interface{}, error) {
	email := p.Args["email"].(string)
	password := p.Args["password"].(string)

	result, err := r.users.Login(p.Context, email, password)
	if err != nil {
		r.logger.Error(p.Context, err.Error())
		return nil, callerSafe(err)
	}
	return authPayload(result), nil
}

// SaveBook adds a book to the caller's collection and returns the updated
// user. Saving an already-saved bookId leaves the collection as is.
func (r *Resolver) SaveBook(p graphql.ResolveParams) (interface{}, error) {
	id, ok := IdentityFromContext(p.Context)
	if !ok {
		return nil, common.ErrorNotLoggedIn
	}

	book := &models.Book{
		BookID:      p.Args["bookId"].(string),
		Title:       p.Args["title"].(string),
		Authors:     stringList(p.Args["authors"]),
		Description: optString(p.Args["description"]),
		Image:       optString(p.Args["image"]),
		Link:        optString(p.Args["link"]),
	}

	user, err := r.books.Save(p.Context, id.UserID, book)
	if err != nil {
		r.logger.Error(p.Context, err.Error())
		return nil, callerSafe(err)
	}
	return user, nil
}

// RemoveBook deletes a book from the caller's collection and returns the
// updated user. Removing an absent bookId is a no-op.
func (r *Resolver) RemoveBook(p graphql.ResolveParams) (interface{}, error) {
	id, ok := IdentityFromContext(p.Context)
	if !ok {
		return nil, common.ErrorNotLoggedIn
	}

	user, err := r.books.Remove(p.Context, id.UserID, p.Args["bookId"].(string))
	if err != nil {
		r.logger.Error(p.Context, err.Error())
		return nil, callerSafe(err)
	}
	return user, nil
}

func authPayload(result *services.AuthResult) map[string]interface{} {
	return map[string]interface{}{
		"token": result.Token,
		"user":  result.User,
	}
}

func optString(v any) string {
	s, _ := v.(string)
	return s
}

func stringList(v any) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
