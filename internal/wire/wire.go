// Package wire reads the little-endian primitives of the vox format from an
// in-memory buffer.
//
// A Reader never reads past the end of its buffer. Every failure is a
// *voxtype.DecodeError carrying the absolute byte offset in the original
// input, so errors from nested payloads point at the right place in the file.
package wire

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/meigma/vox/internal/sizing"
	"github.com/meigma/vox/internal/voxtype"
)

// Reader is a forward-only cursor over a byte slice.
type Reader struct {
	buf  []byte
	pos  int
	base int
}

// NewReader returns a reader over buf. base is the absolute offset of buf[0]
// in the original input and is used only for error reporting.
func NewReader(buf []byte, base int) *Reader {
	return &Reader{buf: buf, base: base}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf) - r.pos
}

// Offset returns the absolute offset of the next unread byte.
func (r *Reader) Offset() int {
	return r.base + r.pos
}

// Rest returns the unread bytes without consuming them.
func (r *Reader) Rest() []byte {
	return r.buf[r.pos:]
}

func (r *Reader) truncated(op string, need uint64) error {
	return &voxtype.DecodeError{
		Op:     op,
		Offset: r.Offset(),
		Err:    fmt.Errorf("%w: need %d bytes, have %d", voxtype.ErrTruncated, need, r.Len()),
	}
}

// Bytes consumes n bytes and returns them. The result aliases the buffer.
func (r *Reader) Bytes(n uint32) ([]byte, error) {
	if !sizing.Fits(n, 1, r.Len()) {
		return nil, r.truncated("read bytes", uint64(n))
	}
	out := r.buf[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return out, nil
}

// U8 consumes one byte.
func (r *Reader) U8() (uint8, error) {
	if r.Len() < 1 {
		return 0, r.truncated("read u8", 1)
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

// U32 consumes a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	if r.Len() < 4 {
		return 0, r.truncated("read u32", 4)
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// I32 consumes a little-endian int32.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err //nolint:gosec // two's complement reinterpretation
}

// F32 consumes a little-endian IEEE-754 float32.
func (r *Reader) F32() (float32, error) {
	v, err := r.U32()
	return math.Float32frombits(v), err
}

// Count consumes a uint32 element count and checks that count elements of
// at least minWidth bytes can still follow.
func (r *Reader) Count(minWidth uint64) (uint32, error) {
	n, err := r.U32()
	if err != nil {
		return 0, err
	}
	if !sizing.Fits(n, minWidth, r.Len()) {
		need, ok := sizing.MulUint64(uint64(n), minWidth)
		if !ok {
			need = math.MaxUint64
		}
		return 0, r.truncated("read count", need)
	}
	return n, nil
}

// String consumes a uint32 length followed by that many UTF-8 bytes.
func (r *Reader) String() (string, error) {
	n, err := r.U32()
	if err != nil {
		return "", err
	}
	start := r.Offset()
	b, err := r.Bytes(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", &voxtype.DecodeError{Op: "read string", Offset: start, Err: voxtype.ErrInvalidText}
	}
	return string(b), nil
}

// Dict consumes a uint32 entry count followed by that many key/value strings.
func (r *Reader) Dict() (voxtype.Dict, error) {
	// Each entry holds at least two empty strings.
	n, err := r.Count(8)
	if err != nil {
		return voxtype.Dict{}, err
	}
	d := voxtype.NewDict(int(n))
	for range n {
		k, err := r.String()
		if err != nil {
			return voxtype.Dict{}, err
		}
		v, err := r.String()
		if err != nil {
			return voxtype.Dict{}, err
		}
		d.Set(k, v)
	}
	return d, nil
}
