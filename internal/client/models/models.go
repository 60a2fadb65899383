// Package models holds the client-side view of the API types.
package models

// Book mirrors the Book type returned by the API.
type Book struct {
	BookID      string   `json:"bookId"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Link        string   `json:"link"`
}

// User mirrors the User type returned by the API. The password never
// appears here; the server does not serialize it.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	BookCount  int    `json:"bookCount"`
	SavedBooks []Book `json:"savedBooks"`
}

// Auth is the payload of addUser and login.
type Auth struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
