// Package users provides the PostgreSQL-backed repository for user
// accounts and their saved-book collections.
package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/readshelf/readshelf/internal/common"
	"github.com/readshelf/readshelf/internal/dbx"
	"github.com/readshelf/readshelf/internal/server/models"
)

const pgUniqueViolation = "23505"

// PostgresRepository implements user storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the user under a freshly minted ID. The email uniqueness
// constraint maps to common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	user.ID = uuid.NewString()
	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

// GetByID loads a user and their saved books by primary key.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at FROM users
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

// GetByEmail loads a user and their saved books by email.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at FROM users
		WHERE email = $1
	`
	return r.getOne(ctx, query, email)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	books, err := r.selectBooks(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.SavedBooks = books

	return user, nil
}

// selectBooks returns the user's saved books in insertion order.
func (r *PostgresRepository) selectBooks(ctx context.Context, userID string) ([]models.Book, error) {
	query := `
		SELECT book_id, title, authors, description, image, link FROM saved_books
		WHERE user_id = $1
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select saved books: %w", err)
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		var book models.Book
		var authors []byte
		if err := rows.Scan(
			&book.BookID, &book.Title, &authors, &book.Description, &book.Image, &book.Link,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(authors, &book.Authors); err != nil {
			return nil, fmt.Errorf("failed to decode authors: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// AddBook inserts the book unless the (user, bookId) pair already exists.
// ON CONFLICT DO NOTHING makes the add-if-absent check a single atomic
// statement, so concurrent saves of the same book cannot duplicate it.
func (r *PostgresRepository) AddBook(ctx context.Context, userID string, book *models.Book) error {
	query := `
		INSERT INTO saved_books (user_id, book_id, title, authors, description, image, link)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, book_id) DO NOTHING
	`

	authors := book.Authors
	if authors == nil {
		authors = []string{}
	}
	encoded, err := json.Marshal(authors)
	if err != nil {
		return fmt.Errorf("failed to encode authors: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		userID, book.BookID, book.Title, encoded, book.Description, book.Image, book.Link)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

// RemoveBook deletes the matching collection entry. Zero rows affected is
// fine: removing an absent bookId is a no-op.
func (r *PostgresRepository) RemoveBook(ctx context.Context, userID, bookID string) error {
	query := `
		DELETE FROM saved_books
		WHERE user_id = $1 AND book_id = $2
	`
	if _, err := r.db.ExecContext(ctx, query, userID, bookID); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}
