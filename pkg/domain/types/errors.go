package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrShape means a raw repository record lacks a required field or has a wrong type
	ErrShape = goerr.New("malformed repository record")

	// ErrSourceUnavailable means a whole repository source could not be read
	ErrSourceUnavailable = goerr.New("repository source unavailable")

	// ErrReadmeFetch means README content could not be fetched for a reason other than not found
	ErrReadmeFetch = goerr.New("failed to fetch README")

	ErrInvalidOption = goerr.New("invalid option")
	ErrNotFound      = goerr.New("not found")
)
