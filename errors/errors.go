package mederrors

import (
	"errors"
)

var (
	// ErrPostNotFound is returned by the post locator operations
	// when no published post matches the given title or id.
	ErrPostNotFound = errors.New("post not found")
)
