// Package cli implements the interactive terminal client: a small REPL
// over the GraphQL API for registering, logging in, and managing the
// saved-book list.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/readshelf/readshelf/internal/client/client"
	"github.com/readshelf/readshelf/internal/client/config"
)

type App struct {
	config   *config.Config
	api      *client.Client
	userName string
	reader   *bufio.Reader
	out      *os.File
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		api:    client.New(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return "not logged in"
	}
	return a.userName
}

// Logout drops the session token; the server keeps no state to clear.
func (a *App) Logout(ctx context.Context) error {
	a.api.ClearToken()
	a.userName = ""
	return nil
}
