package users

import (
	"context"

	"github.com/readshelf/readshelf/internal/server/models"
)

// Repository is the persistent-store contract for user accounts and their
// embedded saved-book collections.
type Repository interface {
	// Create inserts a new user and returns it with its assigned ID.
	// A duplicate email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByID loads a user and their saved books by primary key.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail loads a user and their saved books by email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// AddBook adds a book to the user's collection with set-by-key
	// semantics: if the bookId is already present the collection is left
	// unchanged. The check-and-insert is a single atomic statement.
	AddBook(ctx context.Context, userID string, book *models.Book) error

	// RemoveBook deletes the book with the given bookId from the user's
	// collection. Removing an absent bookId is a no-op, not an error.
	RemoveBook(ctx context.Context, userID, bookID string) error
}
