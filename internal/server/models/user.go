package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is a registered account together with its saved-book collection.
// The password hash is never serialized; API responses carry only the
// json-tagged fields.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	SavedBooks   []Book    `json:"savedBooks"`
	CreatedAt    time.Time `json:"-"`
}

// SetPassword stores a one-way bcrypt hash of the raw password. It is the
// only way a password enters a User, so every create path hashes.
func (u *User) SetPassword(raw string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether raw matches the stored hash.
func (u *User) CheckPassword(raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(raw)) == nil
}

// BookCount is the number of saved books, exposed as a derived field.
func (u *User) BookCount() int {
	return len(u.SavedBooks)
}
