// Package errs defines the sentinel errors returned by the nbt packages.
//
// Decode failures are reported as *DecodeError values that wrap one of the
// sentinels below, so callers can classify a failure with errors.Is while the
// message still names the field, tag and cursor offset that failed.
package errs

import (
	"errors"
	"fmt"
)

// Decoding errors.
var (
	// ErrInsufficientData is returned when the input ends before a required field or slice.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInvalidDiscriminant is returned for a tag byte outside 0-12, or End where a payload is required.
	ErrInvalidDiscriminant = errors.New("invalid tag discriminant")
	// ErrInvalidLength is returned when a decoded length field is negative.
	ErrInvalidLength = errors.New("invalid length")
	// ErrMaxDepthExceeded is returned when List/Compound nesting exceeds the configured maximum.
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")
	// ErrTrailingData is returned when bytes remain after the root tag and trailing data is not allowed.
	ErrTrailingData = errors.New("trailing data after root tag")
)

// Configuration errors.
var (
	ErrInvalidMaxDepth      = errors.New("max depth must be positive")
	ErrUnknownCompression   = errors.New("unknown compression type")
	ErrDecompressedTooLarge = errors.New("decompressed data exceeds size limit")
)

// DecodeError describes where a decode failed.
type DecodeError struct {
	// Op names the field being decoded, e.g. "list length" or "compound name".
	Op string
	// Tag is the tag whose payload was being decoded, as a display string.
	Tag string
	// Offset is the cursor offset when the failure was detected, or -1 when the
	// source cannot report its position.
	Offset int
	// Err is the underlying sentinel error.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("nbt: decode %s at offset %d: %v", e.Op, e.Offset, e.Err)
	}

	return fmt.Sprintf("nbt: decode %s (%s) at offset %d: %v", e.Op, e.Tag, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Wrap returns err wrapped in a *DecodeError, unless err already is one,
// in which case the innermost context is kept.
func Wrap(err error, op, tag string, offset int) error {
	if err == nil {
		return nil
	}

	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}

	return &DecodeError{Op: op, Tag: tag, Offset: offset, Err: err}
}
