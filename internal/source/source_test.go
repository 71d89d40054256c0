package source

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/vox/internal/testutil"
	"github.com/meigma/vox/internal/voxtype"
)

func sampleFile() []byte {
	return testutil.File(150, testutil.Main(testutil.Size(1, 1, 1), testutil.XYZI([4]byte{0, 0, 0, 1})))
}

func TestReadPlain(t *testing.T) {
	t.Parallel()

	want := sampleFile()
	got, comp, err := Read(bytes.NewReader(want), Options{})
	require.NoError(t, err)
	assert.Equal(t, CompressionNone, comp)
	assert.Equal(t, want, got)
}

func TestReadShortInput(t *testing.T) {
	t.Parallel()

	got, comp, err := Read(bytes.NewReader([]byte("VO")), Options{})
	require.NoError(t, err)
	assert.Equal(t, CompressionNone, comp)
	assert.Equal(t, []byte("VO"), got)
}

func TestReadZstd(t *testing.T) {
	t.Parallel()

	want := sampleFile()
	got, comp, err := Read(bytes.NewReader(testutil.Zstd(t, want)), Options{})
	require.NoError(t, err)
	assert.Equal(t, CompressionZstd, comp)
	assert.Equal(t, want, got)
}

func TestReadLimits(t *testing.T) {
	t.Parallel()

	want := sampleFile()

	_, _, err := Read(bytes.NewReader(want), Options{MaxSize: 8})
	require.ErrorIs(t, err, voxtype.ErrSizeOverflow)

	_, _, err = Read(bytes.NewReader(testutil.Zstd(t, want)), Options{MaxSize: 8})
	require.ErrorIs(t, err, voxtype.ErrSizeOverflow)
}

func TestReadCorruptZstd(t *testing.T) {
	t.Parallel()

	corrupt := append([]byte{0x28, 0xb5, 0x2f, 0xfd}, bytes.Repeat([]byte{0xaa}, 32)...)
	_, comp, err := Read(bytes.NewReader(corrupt), Options{})
	require.ErrorIs(t, err, voxtype.ErrDecompression)
	assert.Equal(t, CompressionZstd, comp)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	want := sampleFile()
	path := testutil.WriteFile(t, "model.vox.zst", testutil.Zstd(t, want))
	got, comp, err := ReadFile(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, CompressionZstd, comp)
	assert.Equal(t, want, got)

	_, _, err = ReadFile(path+".missing", Options{})
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
