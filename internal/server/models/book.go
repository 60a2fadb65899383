package models

// Book is a saved reference to an external catalog entry. It only exists
// embedded in a user's collection; BookID is the dedup key there.
type Book struct {
	BookID      string   `json:"bookId"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Link        string   `json:"link"`
}
