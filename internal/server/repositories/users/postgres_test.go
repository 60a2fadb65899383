package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readshelf/readshelf/internal/common"
	"github.com/readshelf/readshelf/internal/server/models"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestCreate_AssignsIDAndCreatedAt(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewPostgresRepository(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	user, err := repo.Create(context.Background(), &models.User{
		Username: "bob", Email: "bob@example.com", PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, now, user.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.User{
		Username: "bob", Email: "bob@example.com", PasswordHash: "hash",
	})
	require.ErrorIs(t, err, common.ErrorAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func expectUserRow(mock sqlmock.Sqlmock, id string) {
	mock.ExpectQuery("SELECT id, username, email, password_hash, created_at FROM users").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "username", "email", "password_hash", "created_at"}).
			AddRow(id, "bob", "bob@example.com", "hash", time.Now()))
}

func TestGetByID_LoadsBooksInOrder(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewPostgresRepository(db)

	expectUserRow(mock, "u1")
	mock.ExpectQuery("SELECT book_id, title, authors, description, image, link FROM saved_books").
		WillReturnRows(sqlmock.NewRows(
			[]string{"book_id", "title", "authors", "description", "image", "link"}).
			AddRow("B1", "First", []byte(`["A1","A2"]`), "d1", "", "").
			AddRow("B2", "Second", []byte(`[]`), "d2", "img", "link"))

	user, err := repo.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, user.SavedBooks, 2)
	assert.Equal(t, "B1", user.SavedBooks[0].BookID)
	assert.Equal(t, []string{"A1", "A2"}, user.SavedBooks[0].Authors)
	assert.Equal(t, "B2", user.SavedBooks[1].BookID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT id, username, email, password_hash, created_at FROM users").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetByEmail_NotFound(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT id, username, email, password_hash, created_at FROM users").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAddBook_EncodesAuthors(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec("INSERT INTO saved_books").
		WithArgs("u1", "B1", "Title", []byte(`["A"]`), "desc", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AddBook(context.Background(), "u1", &models.Book{
		BookID: "B1", Title: "Title", Authors: []string{"A"}, Description: "desc",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddBook_NilAuthorsBecomeEmptyList(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec("INSERT INTO saved_books").
		WithArgs("u1", "B1", "Title", []byte(`[]`), "", "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AddBook(context.Background(), "u1", &models.Book{BookID: "B1", Title: "Title"})
	require.NoError(t, err)
}

func TestAddBook_DuplicateIsNoop(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewPostgresRepository(db)

	// ON CONFLICT DO NOTHING reports zero affected rows, which is fine
	mock.ExpectExec("INSERT INTO saved_books").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AddBook(context.Background(), "u1", &models.Book{BookID: "B1"})
	require.NoError(t, err)
}

func TestRemoveBook_AbsentIsNoop(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM saved_books").
		WithArgs("u1", "nope").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RemoveBook(context.Background(), "u1", "nope")
	require.NoError(t, err)
}

func TestRemoveBook_DBError(t *testing.T) {
	db, mock := newSQLMockDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM saved_books").
		WillReturnError(errors.New("connection reset"))

	err := repo.RemoveBook(context.Background(), "u1", "B1")
	require.Error(t, err)
	require.NotErrorIs(t, err, common.ErrorNotFound)
}
