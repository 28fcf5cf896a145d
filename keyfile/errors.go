package keyfile

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInputPath marks paths that are missing or not regular files.
	ErrInvalidInputPath = errors.New("input file must be a regular file")
	// ErrUnreadableFile marks files that exist but cannot be opened.
	ErrUnreadableFile = errors.New("the file exists, but it could not be opened")
)

// CardError reports a NODE, ELEMENT or PART card whose field/separator
// sequence does not match the expected grammar. Line is 1-based.
type CardError struct {
	Line int
	Msg  string
}

func (e *CardError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}
