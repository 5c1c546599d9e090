// Package errs defines the typed error values surfaced by the geometry
// codec and its SQLite integration layer.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the wkb and geom packages. Wrap with
// errors.Is-compatible %w when adding context; never stringly-type
// these in calling code.
var (
	// ErrMalformedHeader is returned when a blob's magic, version, or
	// byte-order bit is invalid. Big-endian blobs hit this error.
	ErrMalformedHeader = errors.New("geopkg: malformed geometry header")

	// ErrUnsupportedEnvelopeCode is returned when the header's envelope
	// code field is 5, 6, or 7 (reserved).
	ErrUnsupportedEnvelopeCode = errors.New("geopkg: unsupported envelope code")

	// ErrWrongGeometryType is returned when a blob's WKB type code does
	// not match the variant the caller requested.
	ErrWrongGeometryType = errors.New("geopkg: wrong geometry type")

	// ErrTruncated is returned when a blob is shorter than its header,
	// envelope, or body implies.
	ErrTruncated = errors.New("geopkg: truncated geometry blob")

	// ErrInvalidCount is returned when a coordinate count would require
	// more bytes than remain in the blob.
	ErrInvalidCount = errors.New("geopkg: invalid coordinate count")

	// ErrInvalidInput is returned by the driver package's Scan methods
	// when the source value is not a []byte. The geom constructors take
	// fixed-width wkb.Coord values and never return it.
	ErrInvalidInput = errors.New("geopkg: invalid coordinate input")
)

// ParseError wraps a parse failure with the byte offset at which it
// occurred, per the "message includes the byte offset" requirement on
// standalone decode APIs.
type ParseError struct {
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Err, e.Offset)
}

func (e *ParseError) Unwrap() error { return e.Err }

// AtOffset wraps err as a ParseError carrying the given byte offset.
func AtOffset(offset int, err error) error {
	return &ParseError{Offset: offset, Err: err}
}
