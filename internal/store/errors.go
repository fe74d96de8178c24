package store

import (
	"errors"
	"fmt"
)

// ErrInvalidID marks failures caused by a malformed identifier or a
// reference to a record that does not exist. Callers can treat these as
// client errors; everything else the store returns is a server-side failure.
var ErrInvalidID = errors.New("invalid id")

func invalidIDError(detail string) error {
	return fmt.Errorf("%w: %s", ErrInvalidID, detail)
}
