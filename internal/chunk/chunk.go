package chunk

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/meigma/vox/internal/voxtype"
	"github.com/meigma/vox/internal/wire"
)

const (
	// HeaderSize is the size of a chunk header in bytes.
	HeaderSize = 12

	// DefaultMaxDepth bounds chunk nesting when Parser.MaxDepth is unset.
	DefaultMaxDepth = 64
)

// Chunk is one parsed frame.
type Chunk struct {
	// ID is the 4-byte tag.
	ID string

	// Offset is the absolute offset of the chunk header.
	Offset int

	ContentLen  uint32
	ChildrenLen uint32

	// Value is the decoded content. Its concrete type depends on ID:
	//
	//	MAIN  Main
	//	PACK  voxtype.Pack
	//	SIZE  voxtype.Size
	//	XYZI  []voxtype.Voxel
	//	RGBA  voxtype.Palette
	//	MATT  voxtype.MaterialV1
	//	MATL  voxtype.MaterialV2
	//	rOBJ  RenderObject
	//	rCAM  voxtype.Camera
	//	IMAP  voxtype.IndexMap
	//	NOTE  Note
	//	nTRN  *voxtype.TransformNode
	//	nGRP  *voxtype.GroupNode
	//	nSHP  *voxtype.ShapeNode
	//	LAYR  *voxtype.Layer
	//
	// Any other tag yields Unknown.
	Value any

	// Children holds the parsed child chunks in order.
	Children []Chunk

	childrenRaw []byte
}

// Size returns the number of bytes the chunk occupies, header included.
func (c *Chunk) Size() int {
	return HeaderSize + int(c.ContentLen) + int(c.ChildrenLen)
}

// ChildrenRaw returns the raw children range.
func (c *Chunk) ChildrenRaw() []byte {
	return c.childrenRaw
}

// Main is the value of a MAIN container chunk. Its content is unused.
type Main struct{}

// RenderObject is the attribute set of an rOBJ chunk.
type RenderObject voxtype.Dict

// Note is the string list of a NOTE chunk.
type Note []string

// Unknown is the value of a chunk with an unrecognized tag.
type Unknown struct {
	ID      string
	Content []byte
}

// Parser parses chunk frames.
type Parser struct {
	// MaxDepth is the deepest nesting level accepted. The root chunk is at
	// depth 0. Zero means DefaultMaxDepth.
	MaxDepth int
}

func (p Parser) maxDepth() int {
	if p.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return p.MaxDepth
}

// Parse reads one chunk from the start of buf. base is the absolute offset of
// buf[0]. It returns the chunk and the bytes that follow it.
func (p Parser) Parse(buf []byte, base int) (Chunk, []byte, error) {
	return p.parse(buf, base, 0)
}

func (p Parser) parse(buf []byte, base, depth int) (Chunk, []byte, error) {
	if depth > p.maxDepth() {
		return Chunk{}, nil, &voxtype.DecodeError{
			Op:     "parse chunk",
			Offset: base,
			Err:    fmt.Errorf("%w: limit %d", voxtype.ErrTooDeep, p.maxDepth()),
		}
	}

	r := wire.NewReader(buf, base)
	if r.Len() < HeaderSize {
		return Chunk{}, nil, &voxtype.DecodeError{
			Op:     "read chunk header",
			Offset: base,
			Err:    fmt.Errorf("%w: need %d bytes, have %d", voxtype.ErrTruncated, HeaderSize, r.Len()),
		}
	}
	tag, _ := r.Bytes(4)
	contentLen, _ := r.U32()
	childrenLen, _ := r.U32()

	c := Chunk{
		ID:          string(tag),
		Offset:      base,
		ContentLen:  contentLen,
		ChildrenLen: childrenLen,
	}

	contentOffset := r.Offset()
	content, err := r.Bytes(contentLen)
	if err != nil {
		return Chunk{}, nil, annotate(err, c.ID)
	}
	childrenOffset := r.Offset()
	c.childrenRaw, err = r.Bytes(childrenLen)
	if err != nil {
		return Chunk{}, nil, annotate(err, c.ID)
	}

	if childrenLen > 0 {
		c.Children, err = p.parseChildren(c.childrenRaw, childrenOffset, depth+1)
		if err != nil {
			return Chunk{}, nil, annotate(err, c.ID)
		}
	}

	c.Value, err = decodeContent(c.ID, content, contentOffset)
	if err != nil {
		return Chunk{}, nil, annotate(err, c.ID)
	}
	return c, r.Rest(), nil
}

// parseChildren parses buf as a sequence of sibling chunks that must consume
// it exactly.
func (p Parser) parseChildren(buf []byte, base, depth int) ([]Chunk, error) {
	var children []Chunk
	for len(buf) > 0 {
		if len(buf) < HeaderSize {
			return nil, &voxtype.DecodeError{
				Op:     "parse children",
				Offset: base,
				Err:    fmt.Errorf("%w: %d bytes left over", voxtype.ErrTrailingData, len(buf)),
			}
		}
		child, rest, err := p.parse(buf, base, depth)
		if err != nil {
			return nil, err
		}
		base += len(buf) - len(rest)
		buf = rest
		children = append(children, child)
	}
	return children, nil
}

func decodeContent(id string, content []byte, offset int) (any, error) {
	decode, ok := decoders[id]
	if !ok {
		return Unknown{ID: id, Content: bytes.Clone(content)}, nil
	}
	return decode(wire.NewReader(content, offset))
}

// annotate attaches the chunk tag to err unless an inner chunk already did.
func annotate(err error, tag string) error {
	var de *voxtype.DecodeError
	if errors.As(err, &de) {
		if de.Tag == "" {
			de.Tag = tag
		}
		return err
	}
	return &voxtype.DecodeError{Op: "decode chunk", Tag: tag, Err: err}
}
