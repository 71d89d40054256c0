package vox

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/meigma/vox/internal/chunk"
	"github.com/meigma/vox/internal/source"
	"github.com/meigma/vox/internal/voxtype"
	"github.com/meigma/vox/internal/wire"
)

// Magic is the marker every vox file starts with.
const Magic = "VOX "

// headerSize is the magic plus the version.
const headerSize = 8

// Decode decodes a complete vox file held in memory.
//
// The returned document does not alias data.
func Decode(data []byte, opts ...Option) (*Document, error) {
	cfg := newConfig(opts)
	return decode(data, cfg)
}

// DecodeReader reads r to the end, unwrapping zstd compression, and decodes
// the result. Read errors are returned wrapped, not as structural errors.
func DecodeReader(r io.Reader, opts ...Option) (*Document, error) {
	cfg := newConfig(opts)
	data, comp, err := source.Read(r, cfg.sourceOptions())
	if err != nil {
		return nil, fmt.Errorf("read vox: %w", err)
	}
	cfg.logger.Debug("read vox input",
		slog.Int("bytes", len(data)),
		slog.String("compression", comp.String()))
	return decode(data, cfg)
}

// ReadFile reads and decodes the file at path, unwrapping zstd compression.
func ReadFile(path string, opts ...Option) (*Document, error) {
	cfg := newConfig(opts)
	data, comp, err := source.ReadFile(path, cfg.sourceOptions())
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	cfg.logger.Debug("read vox file",
		slog.String("path", path),
		slog.Int("bytes", len(data)),
		slog.String("compression", comp.String()))
	doc, err := decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}

func (c config) sourceOptions() source.Options {
	return source.Options{
		MaxSize:          c.maxInputSize,
		MaxDecoderMemory: c.maxDecoderMemory,
	}
}

func decode(data []byte, cfg config) (*Document, error) {
	r := wire.NewReader(data, 0)
	magic, err := r.Bytes(4)
	if err != nil || !bytes.Equal(magic, []byte(Magic)) {
		return nil, &voxtype.DecodeError{Op: "read header", Offset: 0, Err: voxtype.ErrBadMagic}
	}
	version, err := r.U32()
	if err != nil {
		return nil, err
	}

	p := chunk.Parser{MaxDepth: cfg.maxDepth}
	root, _, err := p.Parse(r.Rest(), headerSize)
	if err != nil {
		return nil, err
	}
	if _, ok := root.Value.(chunk.Main); !ok {
		return nil, &voxtype.DecodeError{
			Op:     "read root chunk",
			Tag:    root.ID,
			Offset: root.Offset,
			Err:    voxtype.ErrNoMainChunk,
		}
	}

	a := newAssembler(version, cfg)
	for i := range root.Children {
		if err := a.add(&root.Children[i]); err != nil {
			return nil, err
		}
	}
	return a.finish()
}
