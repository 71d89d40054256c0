package testutil

import (
	"encoding/binary"
	"math"
)

// Magic is the file marker every vox file starts with.
const Magic = "VOX "

// Cat concatenates byte slices.
func Cat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// U32 encodes a little-endian uint32.
func U32(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

// I32 encodes a little-endian int32.
func I32(v int32) []byte {
	return U32(uint32(v)) //nolint:gosec // two's complement reinterpretation
}

// F32 encodes a little-endian IEEE-754 float32.
func F32(v float32) []byte {
	return U32(math.Float32bits(v))
}

// String encodes a length-prefixed string.
func String(s string) []byte {
	return Cat(U32(uint32(len(s))), []byte(s)) //nolint:gosec // test data is small
}

// Dict encodes a dictionary from alternating keys and values.
func Dict(kv ...string) []byte {
	if len(kv)%2 != 0 {
		panic("testutil: Dict needs key/value pairs")
	}
	parts := [][]byte{U32(uint32(len(kv) / 2))} //nolint:gosec // test data is small
	for _, s := range kv {
		parts = append(parts, String(s))
	}
	return Cat(parts...)
}

// Frame encodes a chunk with the given content and pre-encoded children.
func Frame(tag string, content []byte, children ...[]byte) []byte {
	if len(tag) != 4 {
		panic("testutil: chunk tag must be 4 bytes")
	}
	kids := Cat(children...)
	return Cat(
		[]byte(tag),
		U32(uint32(len(content))), //nolint:gosec // test data is small
		U32(uint32(len(kids))),    //nolint:gosec // test data is small
		content,
		kids,
	)
}

// Main encodes a MAIN chunk holding children.
func Main(children ...[]byte) []byte {
	return Frame("MAIN", nil, children...)
}

// File encodes a complete file around a root chunk.
func File(version uint32, root []byte) []byte {
	return Cat([]byte(Magic), U32(version), root)
}

// Size encodes a SIZE chunk.
func Size(x, y, z uint32) []byte {
	return Frame("SIZE", Cat(U32(x), U32(y), U32(z)))
}

// XYZI encodes an XYZI chunk from (x, y, z, i) records.
func XYZI(voxels ...[4]byte) []byte {
	content := U32(uint32(len(voxels))) //nolint:gosec // test data is small
	for _, v := range voxels {
		content = append(content, v[:]...)
	}
	return Frame("XYZI", content)
}

// RGBA encodes an RGBA chunk where entry i is fill(i).
func RGBA(fill func(i int) [4]byte) []byte {
	content := make([]byte, 0, 256*4)
	for i := range 256 {
		c := fill(i)
		content = append(content, c[:]...)
	}
	return Frame("RGBA", content)
}
