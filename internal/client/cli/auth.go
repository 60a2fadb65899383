package cli

import (
	"context"
	"fmt"
)

// Register prompts for account details and creates an account. On success
// the session is logged in with the returned token.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	auth, err := a.api.Register(ctx, username, email, password)
	if err != nil {
		return err
	}

	a.userName = auth.User.Username
	fmt.Fprintf(a.out, "registered as %s\n", a.userName)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	auth, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.userName = auth.User.Username
	fmt.Fprintf(a.out, "logged in as %s\n", a.userName)
	return nil
}
