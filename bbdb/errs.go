package bbdb

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrLineTooLong  = errors.New("line too long")
)

// MissingFieldError reports an absent required positional field.
type MissingFieldError struct {
	Index int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("index %d: %s", e.Index, ErrMissingField)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// FieldError locates a decoding failure within a record.  Path names the
// field, e.g. "phones[1].number" or "addresses[0].streets".
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func wrapField(path string, err error) error {
	if fe, ok := err.(*FieldError); ok {
		sep := "."
		if strings.HasPrefix(fe.Path, "[") {
			sep = ""
		}
		return &FieldError{Path: path + sep + fe.Path, Err: fe.Err}
	}
	return &FieldError{Path: path, Err: err}
}

// LineError attaches the 1-based line number to the failure of a line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
