package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/readshelf/readshelf/internal/common"
	"github.com/readshelf/readshelf/internal/dbx"
	"github.com/readshelf/readshelf/internal/server/models"
	"github.com/readshelf/readshelf/internal/server/repositories/repomanager"
)

// BookService mutates a user's saved-book collection. Authorization is the
// caller's job; these operations assume a verified userID.
type BookService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewBookService constructs a BookService bound to the shared connection.
func NewBookService(db *sql.DB, m repomanager.RepositoryManager) *BookService {
	return &BookService{db: db, repomanager: m}
}

// Save adds the book to the user's collection (no-op if the bookId is
// already saved) and returns the updated user. The add and the reload run
// in one transaction so the result reflects the write.
func (s *BookService) Save(ctx context.Context, userID string, book *models.Book) (*models.User, error) {
	var user *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		if err := repo.AddBook(ctx, userID, book); err != nil {
			return err
		}
		var loadErr error
		user, loadErr = repo.GetByID(ctx, userID)
		return loadErr
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorBookSave, err)
	}
	return user, nil
}

// Remove deletes the book with the given bookId from the user's collection
// and returns the updated user. An absent bookId leaves the collection
// unchanged and is not an error.
func (s *BookService) Remove(ctx context.Context, userID, bookID string) (*models.User, error) {
	var user *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		if err := repo.RemoveBook(ctx, userID, bookID); err != nil {
			return err
		}
		var loadErr error
		user, loadErr = repo.GetByID(ctx, userID)
		return loadErr
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorBookRemove, err)
	}
	return user, nil
}
