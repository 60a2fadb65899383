// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, profile lookup, and
// minting the JWT returned alongside a registered or logged-in user.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/readshelf/readshelf/internal/common"
	"github.com/readshelf/readshelf/internal/server/auth"
	"github.com/readshelf/readshelf/internal/server/config"
	"github.com/readshelf/readshelf/internal/server/models"
	"github.com/readshelf/readshelf/internal/server/repositories/repomanager"
)

// AuthResult bundles a freshly minted token with the user it identifies.
type AuthResult struct {
	Token string
	User  *models.User
}

// UserService provides account operations:
// - Register: create users and mint a token
// - Login: verify credentials and mint a token
// - GetByID: fetch the authenticated user's own record
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new user with a hashed password and returns the user
// together with a token. Store rejections (duplicate email included)
// surface as the caller-safe common.ErrorUserCreate without detail.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	user := &models.User{Username: username, Email: email}
	if err := user.SetPassword(password); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUserCreate, err)
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUserCreate, err)
	}

	token, err := s.mintToken(u)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{Token: token, User: u}, nil
}

// Login verifies the email/password pair and, on success, returns the user
// with a new token. An unknown email and a wrong password both yield the
// identical common.ErrorInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !user.CheckPassword(password) {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := s.mintToken(user)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{Token: token, User: user}, nil
}

// GetByID loads the user behind an authenticated identity. Store failures
// collapse into common.ErrorUserFetch.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorUserFetch, err)
	}
	return user, nil
}

func (s *UserService) mintToken(user *models.User) (string, error) {
	return auth.GenerateToken(user.Username, user.Email, user.ID, s.jwtSecret, s.tokenValidityDuration)
}
