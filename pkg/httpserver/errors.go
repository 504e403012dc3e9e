package httpserver

import "errors"

var (
	// ErrStart wraps listen failures and a second Run on a live server.
	ErrStart = errors.New("httpserver: cannot start form validation server")

	ErrShutdown = errors.New("httpserver: graceful shutdown failed")

	// ErrInvalidParam marks a bad validator query parameter such as min_length.
	ErrInvalidParam = errors.New("httpserver: invalid validator parameter")
)
