package chunk

import (
	"github.com/meigma/vox/internal/voxtype"
	"github.com/meigma/vox/internal/wire"
)

// Chunk tags.
const (
	TagMain      = "MAIN"
	TagPack      = "PACK"
	TagSize      = "SIZE"
	TagXYZI      = "XYZI"
	TagRGBA      = "RGBA"
	TagMATT      = "MATT"
	TagMATL      = "MATL"
	TagRenderObj = "rOBJ"
	TagCamera    = "rCAM"
	TagIndexMap  = "IMAP"
	TagNote      = "NOTE"
	TagTransform = "nTRN"
	TagGroup     = "nGRP"
	TagShape     = "nSHP"
	TagLayer     = "LAYR"
)

type decodeFunc func(r *wire.Reader) (any, error)

var decoders = map[string]decodeFunc{
	TagMain:      func(*wire.Reader) (any, error) { return Main{}, nil },
	TagPack:      decodePack,
	TagSize:      decodeSize,
	TagXYZI:      decodeXYZI,
	TagRGBA:      decodeRGBA,
	TagMATT:      decodeMATT,
	TagMATL:      decodeMATL,
	TagRenderObj: decodeRenderObject,
	TagCamera:    decodeCamera,
	TagIndexMap:  decodeIndexMap,
	TagNote:      decodeNote,
	TagTransform: decodeTransform,
	TagGroup:     decodeGroup,
	TagShape:     decodeShape,
	TagLayer:     decodeLayer,
}

// Known reports whether tag has a semantic decoder.
func Known(tag string) bool {
	_, ok := decoders[tag]
	return ok
}

func decodePack(r *wire.Reader) (any, error) {
	n, err := r.U32()
	if err != nil {
		return nil, err
	}
	return voxtype.Pack{Models: n}, nil
}

func decodeSize(r *wire.Reader) (any, error) {
	var s voxtype.Size
	var err error
	if s.X, err = r.U32(); err != nil {
		return nil, err
	}
	if s.Y, err = r.U32(); err != nil {
		return nil, err
	}
	if s.Z, err = r.U32(); err != nil {
		return nil, err
	}
	return s, nil
}

func decodeXYZI(r *wire.Reader) (any, error) {
	n, err := r.Count(4)
	if err != nil {
		return nil, err
	}
	raw, err := r.Bytes(n * 4)
	if err != nil {
		return nil, err
	}
	voxels := make([]voxtype.Voxel, n)
	for i := range voxels {
		rec := raw[i*4 : i*4+4]
		voxels[i] = voxtype.Voxel{X: rec[0], Y: rec[1], Z: rec[2], I: rec[3]}
	}
	return voxels, nil
}

func decodeRGBA(r *wire.Reader) (any, error) {
	raw, err := r.Bytes(256 * 4)
	if err != nil {
		return nil, err
	}
	var p voxtype.Palette
	for i := range p {
		rec := raw[i*4 : i*4+4]
		p[i] = voxtype.Color{R: rec[0], G: rec[1], B: rec[2], A: rec[3]}
	}
	return p, nil
}

func decodeMATT(r *wire.Reader) (any, error) {
	var m voxtype.MaterialV1
	var err error
	if m.ID, err = r.U32(); err != nil {
		return nil, err
	}
	kind, err := r.U32()
	if err != nil {
		return nil, err
	}
	m.Kind = voxtype.MaterialKind(kind)
	if m.Weight, err = r.F32(); err != nil {
		return nil, err
	}
	props, err := r.U32()
	if err != nil {
		return nil, err
	}

	// Present fields follow the mask in bit order.
	fields := []struct {
		bit uint32
		dst **float32
	}{
		{voxtype.PropPlastic, &m.Plastic},
		{voxtype.PropRoughness, &m.Roughness},
		{voxtype.PropSpecular, &m.Specular},
		{voxtype.PropIOR, &m.IOR},
		{voxtype.PropAttenuation, &m.Attenuation},
		{voxtype.PropPower, &m.Power},
		{voxtype.PropGlow, &m.Glow},
	}
	for _, f := range fields {
		if props&f.bit == 0 {
			continue
		}
		v, err := r.F32()
		if err != nil {
			return nil, err
		}
		*f.dst = &v
	}
	m.IsTotalPower = props&voxtype.PropTotalPower != 0
	return m, nil
}

func decodeMATL(r *wire.Reader) (any, error) {
	id, err := r.U32()
	if err != nil {
		return nil, err
	}
	props, err := r.Dict()
	if err != nil {
		return nil, err
	}
	return voxtype.MaterialV2{ID: id, Properties: props}, nil
}

func decodeRenderObject(r *wire.Reader) (any, error) {
	d, err := r.Dict()
	if err != nil {
		return nil, err
	}
	return RenderObject(d), nil
}

func decodeCamera(r *wire.Reader) (any, error) {
	id, err := r.U32()
	if err != nil {
		return nil, err
	}
	attrs, err := r.Dict()
	if err != nil {
		return nil, err
	}
	return voxtype.Camera{ID: id, Attributes: attrs}, nil
}

func decodeIndexMap(r *wire.Reader) (any, error) {
	raw, err := r.Bytes(256)
	if err != nil {
		return nil, err
	}
	var m voxtype.IndexMap
	copy(m[:], raw)
	return m, nil
}

func decodeNote(r *wire.Reader) (any, error) {
	n, err := r.Count(4)
	if err != nil {
		return nil, err
	}
	notes := make(Note, 0, n)
	for range n {
		s, err := r.String()
		if err != nil {
			return nil, err
		}
		notes = append(notes, s)
	}
	return notes, nil
}

// nodeHeader reads the id and attributes every scene node starts with.
func nodeHeader(r *wire.Reader) (uint32, voxtype.Dict, error) {
	id, err := r.U32()
	if err != nil {
		return 0, voxtype.Dict{}, err
	}
	attrs, err := r.Dict()
	if err != nil {
		return 0, voxtype.Dict{}, err
	}
	return id, attrs, nil
}

func decodeTransform(r *wire.Reader) (any, error) {
	id, attrs, err := nodeHeader(r)
	if err != nil {
		return nil, err
	}
	n := &voxtype.TransformNode{ID: id, Attributes: attrs}
	if n.ChildID, err = r.U32(); err != nil {
		return nil, err
	}
	if n.Reserved, err = r.I32(); err != nil {
		return nil, err
	}
	if n.LayerID, err = r.U32(); err != nil {
		return nil, err
	}
	frames, err := r.Count(4)
	if err != nil {
		return nil, err
	}
	n.Frames = make([]voxtype.Dict, 0, frames)
	for range frames {
		d, err := r.Dict()
		if err != nil {
			return nil, err
		}
		n.Frames = append(n.Frames, d)
	}
	return n, nil
}

func decodeGroup(r *wire.Reader) (any, error) {
	id, attrs, err := nodeHeader(r)
	if err != nil {
		return nil, err
	}
	count, err := r.Count(4)
	if err != nil {
		return nil, err
	}
	n := &voxtype.GroupNode{ID: id, Attributes: attrs, Children: make([]uint32, count)}
	for i := range n.Children {
		if n.Children[i], err = r.U32(); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func decodeShape(r *wire.Reader) (any, error) {
	id, attrs, err := nodeHeader(r)
	if err != nil {
		return nil, err
	}
	// Each instance is a model id plus at least an empty dictionary.
	count, err := r.Count(8)
	if err != nil {
		return nil, err
	}
	n := &voxtype.ShapeNode{ID: id, Attributes: attrs, Models: make([]voxtype.ShapeModel, 0, count)}
	for range count {
		modelID, err := r.U32()
		if err != nil {
			return nil, err
		}
		d, err := r.Dict()
		if err != nil {
			return nil, err
		}
		n.Models = append(n.Models, voxtype.ShapeModel{ModelID: modelID, Attributes: d})
	}
	return n, nil
}

func decodeLayer(r *wire.Reader) (any, error) {
	id, attrs, err := nodeHeader(r)
	if err != nil {
		return nil, err
	}
	reserved, err := r.I32()
	if err != nil {
		return nil, err
	}
	return &voxtype.Layer{ID: id, Attributes: attrs, Reserved: reserved}, nil
}
