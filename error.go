package mapvec

import (
	"errors"
	"fmt"
)

var (
	// ErrNoValue is returned when a source finishes without visiting a value.
	ErrNoValue = errors.New("source produced no value")
	// ErrTrailingData is returned when input continues after the decoded map.
	ErrTrailingData = errors.New("trailing data after map")
)

// InvalidTypeError is returned by a source that found a value of the wrong type.
type InvalidTypeError struct {
	// Got describes the value found in the input.
	Got string
	// Expected describes what the visitor accepts.
	Expected string
}

// Error returns the error message.
func (e InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid type: %s, expected %s", e.Got, e.Expected)
}

// NewInvalidTypeError returns an InvalidTypeError for a visitor that
// received a value described by got.
func NewInvalidTypeError(got string, visitor interface{ Expecting() string }) error {
	return InvalidTypeError{
		Got:      got,
		Expected: visitor.Expecting(),
	}
}

// EncodingError represents an error that occurs while a format writes a map.
type EncodingError struct {
	Format string
	Text   string
	Err    error
}

// Error returns the error message.
func (e EncodingError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("failed to encode %s map: %s", e.Format, e.Err)
	}

	return fmt.Sprintf("failed to encode %s map, %s: %s", e.Format, e.Text, e.Err)
}

func (e EncodingError) Unwrap() error {
	return e.Err
}

// NewEncodingError returns a new encoding error, or nil if err is nil.
func NewEncodingError(format, text string, err error) error {
	if err == nil {
		return nil
	}

	return EncodingError{
		Format: format,
		Text:   text,
		Err:    err,
	}
}

// DecodingError represents an error that occurs while a format reads a map.
type DecodingError struct {
	Format string
	Text   string
	Err    error
}

// Error returns the error message.
func (e DecodingError) Error() string {
	suffix := e.Format + " map"
	if e.Text != "" {
		suffix = fmt.Sprintf("%s, %s", suffix, e.Text)
	}

	return fmt.Sprintf("failed to decode %s: %s", suffix, e.Err)
}

func (e DecodingError) Unwrap() error {
	return e.Err
}

// NewDecodingError returns a new decoding error, or nil if err is nil.
func NewDecodingError(format, text string, err error) error {
	if err == nil {
		return nil
	}

	return DecodingError{
		Format: format,
		Text:   text,
		Err:    err,
	}
}
