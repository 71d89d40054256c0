package voxtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPalette(t *testing.T) {
	t.Parallel()

	p := DefaultPalette()
	assert.Len(t, p, 256)
	assert.Equal(t, Color{}, p[0])
	assert.Equal(t, Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, p[1])
	assert.Equal(t, Color{R: 0xff, G: 0xcc, B: 0xff, A: 0xff}, p[2])
	assert.Equal(t, Color{R: 0xff, G: 0x11, B: 0x11, A: 0x11}, p[255])
}

func TestNewDocument(t *testing.T) {
	t.Parallel()

	doc := NewDocument(DefaultVersion)
	assert.Equal(t, uint32(150), doc.Version)
	assert.Equal(t, DefaultPalette(), doc.Palette)
	assert.False(t, doc.CustomPalette)
	assert.Empty(t, doc.Models)
	assert.Equal(t, 0, doc.Scene.Len())
}

func TestVoxelPaletteIndex(t *testing.T) {
	t.Parallel()

	idx, ok := Voxel{I: 5}.PaletteIndex()
	assert.True(t, ok)
	assert.Equal(t, uint8(4), idx)

	_, ok = Voxel{I: 0}.PaletteIndex()
	assert.False(t, ok)
}

func TestMaterialKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "diffuse", MaterialDiffuse.String())
	assert.Equal(t, "emissive", MaterialEmissive.String())
	assert.Equal(t, "unknown", MaterialKind(9).String())
}

func TestSceneGraph(t *testing.T) {
	t.Parallel()

	var g SceneGraph
	g.Add(&TransformNode{ID: 0, ChildID: 1, Reserved: NoReference})
	g.Add(&GroupNode{ID: 1, Children: []uint32{2, 99}})
	g.Add(&ShapeNode{ID: 2, Models: []ShapeModel{{ModelID: 0}}})
	g.Add(&Layer{ID: 0, Reserved: NoReference})

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 1, g.Count(NodeGroup))

	nodes := g.Nodes()
	kinds := make([]NodeKind, 0, len(nodes))
	for _, n := range nodes {
		kinds = append(kinds, n.Kind())
	}
	assert.Equal(t, []NodeKind{NodeTransform, NodeGroup, NodeShape, NodeLayer}, kinds)

	tr, ok := g.Transform(0)
	assert.True(t, ok)
	assert.Equal(t, uint32(1), tr.ChildID)

	layer, ok := g.Layer(0)
	assert.True(t, ok)
	assert.Equal(t, NoReference, layer.Reserved)

	grp, ok := g.Group(1)
	assert.True(t, ok)
	_, ok = g.Shape(grp.Children[1])
	assert.False(t, ok, "dangling child id resolves to nothing")
}
