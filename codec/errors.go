package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax reports bytes that are not a well-formed document
	ErrSyntax = errors.New("malformed document")
	// ErrMissingField reports an absent required field
	ErrMissingField = errors.New("missing required field")
	// ErrWrongType reports a field holding a value of the wrong type
	ErrWrongType = errors.New("wrong field type")
	// ErrOutOfRange reports a numeric value that does not fit u32
	ErrOutOfRange = errors.New("number out of u32 range")
	// ErrUnknownVariant reports an unrecognised enumeration discriminator
	ErrUnknownVariant = errors.New("unknown enumeration variant")
	// ErrKindMismatch reports a document whose kind differs from the expected format
	ErrKindMismatch = errors.New("document kind mismatch")
	// ErrUnsupportedFormat reports a format that cannot be decoded
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrUnsupportedFeature reports a value the requested schema version cannot represent
	ErrUnsupportedFeature = errors.New("unsupported by schema version")
)

// DecodeError reports the first structural violation found while decoding,
// Path locates the offending field (e.g. defs[2].sig.ident_start)
type DecodeError struct {
	Path   string
	Err    error
	Detail string
}

func (e *DecodeError) Error() string {
	path := e.Path
	if path == "" {
		path = "<root>"
	}
	if e.Detail == "" {
		return fmt.Sprintf("decode %s: %v", path, e.Err)
	}
	return fmt.Sprintf("decode %s: %v: %s", path, e.Err, e.Detail)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func newDecodeError(path string, err error, detail string, args ...interface{}) *DecodeError {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &DecodeError{Path: path, Err: err, Detail: detail}
}
