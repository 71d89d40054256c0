package wire

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/vox/internal/testutil"
	"github.com/meigma/vox/internal/voxtype"
)

func TestReaderPrimitives(t *testing.T) {
	t.Parallel()

	buf := testutil.Cat(
		[]byte{0x7f},
		testutil.U32(0xdeadbeef),
		testutil.I32(-1),
		testutil.F32(1.5),
	)
	r := NewReader(buf, 100)

	u8, err := r.U8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x7f), u8)

	u32, err := r.U32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), u32)

	i32, err := r.I32()
	require.NoError(t, err)
	assert.Equal(t, int32(-1), i32)

	f32, err := r.F32()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, f32, 0)

	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 113, r.Offset())
}

func TestReaderTruncated(t *testing.T) {
	t.Parallel()

	r := NewReader([]byte{1, 2, 3}, 40)
	_, err := r.U32()
	require.ErrorIs(t, err, voxtype.ErrTruncated)

	var de *voxtype.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 40, de.Offset)
	assert.Equal(t, 3, r.Len(), "failed read must not consume")
}

func TestReaderString(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		r := NewReader(testutil.String("héllo"), 0)
		s, err := r.String()
		require.NoError(t, err)
		assert.Equal(t, "héllo", s)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		r := NewReader(testutil.String(""), 0)
		s, err := r.String()
		require.NoError(t, err)
		assert.Empty(t, s)
	})

	t.Run("length exceeds buffer", func(t *testing.T) {
		t.Parallel()
		buf := testutil.Cat(testutil.U32(10), []byte("abc"))
		r := NewReader(buf, 0)
		_, err := r.String()
		assert.ErrorIs(t, err, voxtype.ErrTruncated)
	})

	t.Run("huge length", func(t *testing.T) {
		t.Parallel()
		r := NewReader(testutil.U32(math.MaxUint32), 0)
		_, err := r.String()
		assert.ErrorIs(t, err, voxtype.ErrTruncated)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		t.Parallel()
		buf := testutil.Cat(testutil.U32(2), []byte{0xc3, 0x28})
		r := NewReader(buf, 8)
		_, err := r.String()
		require.ErrorIs(t, err, voxtype.ErrInvalidText)

		var de *voxtype.DecodeError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, 12, de.Offset)
	})
}

func TestReaderDict(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		r := NewReader(testutil.Dict(), 0)
		d, err := r.Dict()
		require.NoError(t, err)
		assert.Equal(t, 0, d.Len())
	})

	t.Run("order and content", func(t *testing.T) {
		t.Parallel()
		r := NewReader(testutil.Dict("_type", "_metal", "_rough", "0.1"), 0)
		d, err := r.Dict()
		require.NoError(t, err)
		assert.Equal(t, []string{"_type", "_rough"}, d.Keys())
		v, _ := d.Get("_type")
		assert.Equal(t, "_metal", v)
		v, _ = d.Get("_rough")
		assert.Equal(t, "0.1", v)
		assert.Equal(t, 0, r.Len())
	})

	t.Run("count exceeds buffer", func(t *testing.T) {
		t.Parallel()
		r := NewReader(testutil.U32(1_000_000), 0)
		_, err := r.Dict()
		assert.ErrorIs(t, err, voxtype.ErrTruncated)
	})
}

func TestReaderBytesAndCount(t *testing.T) {
	t.Parallel()

	r := NewReader(testutil.Cat(testutil.U32(2), []byte{1, 2, 3, 4, 5, 6, 7, 8}), 0)
	n, err := r.Count(4)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), n)

	b, err := r.Bytes(8)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, b)
	assert.Empty(t, r.Rest())

	r = NewReader(testutil.Cat(testutil.U32(3), []byte{1, 2, 3, 4}), 0)
	_, err = r.Count(4)
	assert.ErrorIs(t, err, voxtype.ErrTruncated)
}
