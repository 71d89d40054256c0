package voxtype

import "fmt"

// Rotation is a row-major signed permutation matrix packed into one byte.
//
//	bits 0-1: column of the non-zero entry in row 0
//	bits 2-3: column of the non-zero entry in row 1
//	bit 4:    sign of row 0 (1 = negative)
//	bit 5:    sign of row 1
//	bit 6:    sign of row 2
//
// The column for row 2 is whichever of 0, 1, 2 rows 0 and 1 do not use.
// Only decoding is supported.
type Rotation uint8

// Identity is the rotation byte of the identity matrix.
const Identity Rotation = 0x04

func (r Rotation) columns() (c0, c1, c2 uint8) {
	c0 = uint8(r) & 0x03
	c1 = (uint8(r) >> 2) & 0x03
	return c0, c1, 3 - c0 - c1
}

// Validate reports whether r encodes a permutation.
func (r Rotation) Validate() error {
	c0, c1, _ := r.columns()
	if c0 > 2 || c1 > 2 || c0 == c1 {
		return fmt.Errorf("%w: 0x%02x", ErrInvalidRotation, uint8(r))
	}
	return nil
}

// Matrix expands r into a 3x3 matrix. Invalid rotations yield the zero matrix.
func (r Rotation) Matrix() [3][3]float32 {
	var m [3][3]float32
	if r.Validate() != nil {
		return m
	}
	cols := [3]uint8{}
	cols[0], cols[1], cols[2] = r.columns()
	for row, col := range cols {
		v := float32(1)
		if uint8(r)&(0x10<<row) != 0 {
			v = -1
		}
		m[row][col] = v
	}
	return m
}
