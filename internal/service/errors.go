package service

import "errors"

// BadRequestError carries a message the client is allowed to see, such as a
// malformed or unknown identifier.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// ErrInternal is returned for any failure the client should not learn the
// details of. The underlying cause is logged, never returned.
var ErrInternal = errors.New("Something went wrong! Please try again.")
