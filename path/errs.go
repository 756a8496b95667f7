package path

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty        = errors.New("empty path")
	ErrUnterminated = errors.New("unterminated bracket")
	ErrBadIndex     = errors.New("bad index")
	ErrBadSlice     = errors.New("bad slice")
	ErrZeroStep     = errors.New("zero slice step")
	ErrBadField     = errors.New("bad field")
	ErrTrailing     = errors.New("trailing characters")
)

// ParseError reports malformed path text together with the byte
// offset where parsing failed.
type ParseError struct {
	Text   string
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v in %q at offset %d", e.Err, e.Text, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErr(text string, off int, err error) error {
	return &ParseError{Text: text, Offset: off, Err: err}
}
