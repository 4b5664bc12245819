package domain

import "errors"

// Auth errors
var (
	ErrNoToken            = errors.New("no token provided")
	ErrInvalidToken       = errors.New("invalid token provided")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("access denied")
)

// Validation errors
var (
	ErrDuplicateEmail = errors.New("email already exists")
	ErrMissingField   = errors.New("missing required field")
)

// Resource errors
var (
	ErrArticleNotFound = errors.New("article with the given id not found")
	ErrGifNotFound     = errors.New("gif with the given id not found")
)
