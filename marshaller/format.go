// Package marshaller provides whole-document marshallers for ordered maps
// in every format the module supports.
package marshaller

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown format")

// Format names a document format.
type Format string

const (
	// FormatJSON is a JSON object.
	FormatJSON Format = "json"
	// FormatJSONC is a JSON object that may contain comments and trailing
	// commas. It is written as plain JSON.
	FormatJSONC Format = "jsonc"
	// FormatYAML is a YAML mapping document.
	FormatYAML Format = "yaml"
	// FormatMsgpack is a MessagePack map.
	FormatMsgpack Format = "msgpack"
	// FormatCBOR is a CBOR map.
	FormatCBOR Format = "cbor"
)

// Formats returns all supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatJSONC, FormatYAML, FormatMsgpack, FormatCBOR}
}

// ParseFormat returns the format with the given name. Names are case
// insensitive; "yml" and "mp" are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch normalized := Format(strings.ToLower(strings.TrimSpace(name))); normalized {
	case FormatJSON, FormatJSONC, FormatYAML, FormatMsgpack, FormatCBOR:
		return normalized, nil
	case "yml":
		return FormatYAML, nil
	case "mp":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// Set parses name into f, so *Format can be used as a command line flag value.
func (f *Format) Set(name string) error {
	parsed, err := ParseFormat(name)
	if err != nil {
		return err
	}

	*f = parsed

	return nil
}

// Type returns the flag value type name.
func (f *Format) Type() string {
	return "format"
}

// Binary reports whether documents of the format are not text.
func (f Format) Binary() bool {
	return f == FormatMsgpack || f == FormatCBOR
}
