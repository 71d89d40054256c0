package voxtype

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for vox decoding.
var (
	// ErrBadMagic is returned when the input does not start with the "VOX " marker.
	ErrBadMagic = errors.New("vox: missing or invalid magic")

	// ErrTruncated is returned when a header, length, or count claims more
	// bytes than remain in the input.
	ErrTruncated = errors.New("vox: truncated input")

	// ErrTrailingData is returned when a children range is not consumed
	// exactly by the chunks it contains.
	ErrTrailingData = errors.New("vox: trailing bytes in children range")

	// ErrInvalidText is returned when a length-prefixed string is not valid UTF-8.
	ErrInvalidText = errors.New("vox: invalid utf-8 string")

	// ErrNoMainChunk is returned when the root chunk is not MAIN.
	ErrNoMainChunk = errors.New("vox: root chunk is not MAIN")

	// ErrTooDeep is returned when chunk nesting exceeds the configured depth.
	ErrTooDeep = errors.New("vox: chunk nesting too deep")

	// ErrSizeOverflow is returned when byte counts exceed supported limits.
	ErrSizeOverflow = errors.New("vox: size overflow")

	// ErrUnpairedModel is returned in strict mode when SIZE and XYZI chunks
	// do not pair up.
	ErrUnpairedModel = errors.New("vox: unpaired SIZE or XYZI chunk")

	// ErrInvalidRotation is returned for rotation bytes that do not encode a
	// signed permutation matrix.
	ErrInvalidRotation = errors.New("vox: invalid rotation")

	// ErrDecompression is returned when a compressed input cannot be unwrapped.
	ErrDecompression = errors.New("vox: decompression failed")
)

// DecodeError describes a structural failure at a specific position.
//
// Tag is empty when the failure happened outside a chunk (magic, version,
// or a chunk header that could not be read).
type DecodeError struct {
	Op     string
	Tag    string
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	msg := e.Op
	if e.Tag != "" {
		msg += " " + strconv.Quote(e.Tag)
	}
	return fmt.Sprintf("%s at offset %d: %v", msg, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
