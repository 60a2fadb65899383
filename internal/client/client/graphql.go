// Package client implements a thin GraphQL-over-HTTP client for the
// readshelf API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/readshelf/readshelf/internal/client/models"
)

const userFields = `id username email bookCount savedBooks { bookId title authors description image link }`

// Client talks to a readshelf server. The bearer token is held in memory
// for the lifetime of the session and attached to every request once set.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New constructs a Client for the given server base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken stores the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) { c.token = token }

// ClearToken drops the stored bearer token.
func (c *Client) ClearToken() { c.token = "" }

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// do posts the query and decodes the data envelope into out. A non-empty
// errors array is surfaced as a plain error with the server's message.
func (c *Client) do(ctx context.Context, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: vars})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/graphql", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope gqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return errors.New(envelope.Errors[0].Message)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode data: %w", err)
		}
	}
	return nil
}

// Register creates an account and remembers the returned token.
func (c *Client) Register(ctx context.Context, username, email, password string) (*models.Auth, error) {
	query := `mutation ($username: String!, $email: String!, $password: String!) {
		addUser(username: $username, email: $email, password: $password) {
			token user { ` + userFields + ` }
		}
	}`

	var out struct {
		AddUser models.Auth `json:"addUser"`
	}
	err := c.do(ctx, query, map[string]any{
		"username": username, "email": email, "password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	c.SetToken(out.AddUser.Token)
	return &out.AddUser, nil
}

// Login authenticates and remembers the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Auth, error) {
	query := `mutation ($email: String!, $password: String!) {
		login(email: $email, password: $password) {
			token user { ` + userFields + ` }
		}
	}`

	var out struct {
		Login models.Auth `json:"login"`
	}
	err := c.do(ctx, query, map[string]any{"email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	c.SetToken(out.Login.Token)
	return &out.Login, nil
}

// Me fetches the authenticated user's record.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	query := `query { me { ` + userFields + ` } }`

	var out struct {
		Me *models.User `json:"me"`
	}
	if err := c.do(ctx, query, nil, &out); err != nil {
		return nil, err
	}
	return out.Me, nil
}

// SaveBook adds a book to the saved list and returns the updated user.
func (c *Client) SaveBook(ctx context.Context, book *models.Book) (*models.User, error) {
	query := `mutation ($bookId: String!, $title: String!, $authors: [String], $description: String, $image: String, $link: String) {
		saveBook(bookId: $bookId, title: $title, authors: $authors, description: $description, image: $image, link: $link) {
			` + userFields + `
		}
	}`

	var out struct {
		SaveBook *models.User `json:"saveBook"`
	}
	err := c.do(ctx, query, map[string]any{
		"bookId":      book.BookID,
		"title":       book.Title,
		"authors":     book.Authors,
		"description": book.Description,
		"image":       book.Image,
		"link":        book.Link,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.SaveBook, nil
}

// RemoveBook removes a book from the saved list and returns the updated user.
func (c *Client) RemoveBook(ctx context.Context, bookID string) (*models.User, error) {
	query := `mutation ($bookId: String!) {
		removeBook(bookId: $bookId) { ` + userFields + ` }
	}`

	var out struct {
		RemoveBook *models.User `json:"removeBook"`
	}
	if err := c.do(ctx, query, map[string]any{"bookId": bookID}, &out); err != nil {
		return nil, err
	}
	return out.RemoveBook, nil
}
