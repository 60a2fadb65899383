package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/readshelf/readshelf/internal/client/models"
)

// Me fetches and prints the current account.
func (a *App) Me(ctx context.Context) error {
	user, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s <%s> — %d saved book(s)\n", user.Username, user.Email, user.BookCount)
	return nil
}

// SaveBook prompts for book details and saves the book. Saving a bookId
// that is already on the list leaves the list unchanged.
func (a *App) SaveBook(ctx context.Context) error {
	bookID, err := GetSimpleText(a.reader, "Enter book id", a.out)
	if err != nil {
		return err
	}
	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	authors, err := GetSimpleText(a.reader, "Enter authors (comma separated)", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Enter description", a.out)
	if err != nil {
		return err
	}

	book := &models.Book{
		BookID:      bookID,
		Title:       title,
		Authors:     splitAuthors(authors),
		Description: description,
	}

	user, err := a.api.SaveBook(ctx, book)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "saved; %d book(s) on the list\n", user.BookCount)
	return nil
}

// RemoveBook prompts for a book id and removes it from the list.
func (a *App) RemoveBook(ctx context.Context) error {
	bookID, err := GetSimpleText(a.reader, "Enter book id", a.out)
	if err != nil {
		return err
	}

	user, err := a.api.RemoveBook(ctx, bookID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "removed; %d book(s) on the list\n", user.BookCount)
	return nil
}

// List prints the saved books in save order.
func (a *App) List(ctx context.Context) error {
	user, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	if len(user.SavedBooks) == 0 {
		fmt.Fprintln(a.out, "no saved books")
		return nil
	}
	for i, b := range user.SavedBooks {
		fmt.Fprintf(a.out, "%d. [%s] %s — %s\n", i+1, b.BookID, b.Title, strings.Join(b.Authors, ", "))
	}
	return nil
}

func splitAuthors(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
