// Package source acquires the raw bytes of a vox file.
//
// Input may be a plain vox stream or a zstd frame wrapping one; compressed
// input is detected by its magic number and unwrapped transparently. Both the
// compressed and the decompressed size are bounded.
package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/meigma/vox/internal/sizing"
	"github.com/meigma/vox/internal/voxtype"
)

// DefaultMaxSize is the input limit used when Options.MaxSize is zero.
const DefaultMaxSize = 256 << 20

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Compression identifies how the input was wrapped.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZstd
)

// String returns the human-readable name of the compression algorithm.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// Options bounds what Read accepts.
type Options struct {
	// MaxSize limits both the raw and the decompressed size. Zero means
	// DefaultMaxSize.
	MaxSize uint64

	// MaxDecoderMemory limits zstd decoder memory. Zero means no limit.
	MaxDecoderMemory uint64
}

func (o Options) maxSize() uint64 {
	if o.MaxSize == 0 {
		return DefaultMaxSize
	}
	return o.MaxSize
}

// Read returns the vox bytes from r, decompressing zstd input.
func Read(r io.Reader, opts Options) ([]byte, Compression, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, CompressionNone, err
	}

	if !bytes.Equal(head, zstdMagic) {
		data, err := sizing.ReadAllWithLimit(br, opts.maxSize(), voxtype.ErrSizeOverflow)
		return data, CompressionNone, err
	}

	dec, err := newDecoder(br, opts)
	if err != nil {
		return nil, CompressionZstd, fmt.Errorf("%w: %w", voxtype.ErrDecompression, err)
	}
	defer dec.Close()

	data, err := sizing.ReadAllWithLimit(dec, opts.maxSize(), voxtype.ErrSizeOverflow)
	if err != nil {
		if errors.Is(err, voxtype.ErrSizeOverflow) {
			return nil, CompressionZstd, err
		}
		return nil, CompressionZstd, fmt.Errorf("%w: %w", voxtype.ErrDecompression, err)
	}
	return data, CompressionZstd, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string, opts Options) ([]byte, Compression, error) {
	f, err := os.Open(path) //nolint:gosec // caller-selected path
	if err != nil {
		return nil, CompressionNone, err
	}
	defer f.Close()
	return Read(f, opts)
}

// newDecoder creates a zstd decoder with the configured memory limit.
func newDecoder(r io.Reader, opts Options) (*zstd.Decoder, error) {
	dopts := []zstd.DOption{
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
	}
	if opts.MaxDecoderMemory != 0 {
		dopts = append(dopts, zstd.WithDecoderMaxMemory(opts.MaxDecoderMemory))
	}
	return zstd.NewReader(r, dopts...)
}
