package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// auth-specific errors
	ErrorNotLoggedIn        = errors.New("not logged in")
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorInvalidToken       = errors.New("invalid token")

	// caller-safe operation failures; the message is exactly what the
	// client sees, internal store detail never leaves the server
	ErrorUserCreate = errors.New("failed to create user")
	ErrorUserFetch  = errors.New("failed to fetch user data")
	ErrorBookSave   = errors.New("failed to save the book")
	ErrorBookRemove = errors.New("failed to remove the book")

	ErrorInternal = errors.New("internal error")
)
