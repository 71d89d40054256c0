package vox

import "github.com/meigma/vox/internal/voxtype"

// Errors re-exported from internal/voxtype.
var (
	// ErrBadMagic is returned when the input does not start with "VOX ".
	ErrBadMagic = voxtype.ErrBadMagic

	// ErrTruncated is returned when a header, length, or count claims more
	// bytes than remain.
	ErrTruncated = voxtype.ErrTruncated

	// ErrTrailingData is returned when a children range is not consumed exactly.
	ErrTrailingData = voxtype.ErrTrailingData

	// ErrInvalidText is returned when a string is not valid UTF-8.
	ErrInvalidText = voxtype.ErrInvalidText

	// ErrNoMainChunk is returned when the root chunk is not MAIN.
	ErrNoMainChunk = voxtype.ErrNoMainChunk

	// ErrTooDeep is returned when chunk nesting exceeds the configured depth.
	ErrTooDeep = voxtype.ErrTooDeep

	// ErrSizeOverflow is returned when the input exceeds the configured size limit.
	ErrSizeOverflow = voxtype.ErrSizeOverflow

	// ErrUnpairedModel is returned in strict mode for unpaired SIZE or XYZI chunks.
	ErrUnpairedModel = voxtype.ErrUnpairedModel

	// ErrInvalidRotation is returned for rotation bytes that are not permutations.
	ErrInvalidRotation = voxtype.ErrInvalidRotation

	// ErrDecompression is returned when compressed input cannot be unwrapped.
	ErrDecompression = voxtype.ErrDecompression
)
