package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/vox/internal/testutil"
	"github.com/meigma/vox/internal/voxtype"
)

// decodeValue frames content under tag, parses it, and returns the value.
func decodeValue(tb testing.TB, tag string, content []byte) any {
	tb.Helper()
	return mustParse(tb, testutil.Frame(tag, content)).Value
}

func TestDecodePackAndSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, voxtype.Pack{Models: 3}, decodeValue(t, TagPack, testutil.U32(3)))
	assert.Equal(t, voxtype.Size{X: 2, Y: 3, Z: 4},
		decodeValue(t, TagSize, testutil.Cat(testutil.U32(2), testutil.U32(3), testutil.U32(4))))
}

func TestDecodeXYZI(t *testing.T) {
	t.Parallel()

	t.Run("records", func(t *testing.T) {
		t.Parallel()
		content := testutil.Cat(testutil.U32(2), []byte{1, 2, 3, 4, 5, 6, 7, 8})
		got := decodeValue(t, TagXYZI, content)
		assert.Equal(t, []voxtype.Voxel{{X: 1, Y: 2, Z: 3, I: 4}, {X: 5, Y: 6, Z: 7, I: 8}}, got)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		got := decodeValue(t, TagXYZI, testutil.U32(0))
		assert.Equal(t, []voxtype.Voxel{}, got)
	})

	t.Run("count exceeds content", func(t *testing.T) {
		t.Parallel()
		content := testutil.Cat(testutil.U32(3), []byte{1, 2, 3, 4})
		_, _, err := Parser{}.Parse(testutil.Frame(TagXYZI, content), 0)
		assert.ErrorIs(t, err, voxtype.ErrTruncated)
	})
}

func TestDecodeRGBA(t *testing.T) {
	t.Parallel()

	t.Run("all zero", func(t *testing.T) {
		t.Parallel()
		got := decodeValue(t, TagRGBA, make([]byte, 1024))
		p, ok := got.(voxtype.Palette)
		require.True(t, ok)
		for i, c := range p {
			assert.Equal(t, voxtype.Color{}, c, "entry %d", i)
		}
	})

	t.Run("input order", func(t *testing.T) {
		t.Parallel()
		buf := testutil.RGBA(func(i int) [4]byte { return [4]byte{byte(i), 1, 2, 3} })
		p, ok := mustParse(t, buf).Value.(voxtype.Palette)
		require.True(t, ok)
		assert.Equal(t, voxtype.Color{R: 0, G: 1, B: 2, A: 3}, p[0])
		assert.Equal(t, voxtype.Color{R: 200, G: 1, B: 2, A: 3}, p[200])
	})

	t.Run("short", func(t *testing.T) {
		t.Parallel()
		_, _, err := Parser{}.Parse(testutil.Frame(TagRGBA, make([]byte, 1020)), 0)
		assert.ErrorIs(t, err, voxtype.ErrTruncated)
	})
}

func TestDecodeMATT(t *testing.T) {
	t.Parallel()

	t.Run("plastic and specular", func(t *testing.T) {
		t.Parallel()
		content := testutil.Cat(
			testutil.U32(7),
			testutil.U32(uint32(voxtype.MaterialMetal)),
			testutil.F32(0.5),
			testutil.U32(0x05),
			testutil.F32(0.25),
			testutil.F32(0.75),
		)
		m, ok := decodeValue(t, TagMATT, content).(voxtype.MaterialV1)
		require.True(t, ok)

		assert.Equal(t, uint32(7), m.ID)
		assert.Equal(t, voxtype.MaterialMetal, m.Kind)
		assert.InDelta(t, 0.5, m.Weight, 0)
		require.NotNil(t, m.Plastic)
		assert.InDelta(t, 0.25, *m.Plastic, 0)
		require.NotNil(t, m.Specular)
		assert.InDelta(t, 0.75, *m.Specular, 0)
		assert.Nil(t, m.Roughness)
		assert.Nil(t, m.IOR)
		assert.Nil(t, m.Attenuation)
		assert.Nil(t, m.Power)
		assert.Nil(t, m.Glow)
		assert.False(t, m.IsTotalPower)
	})

	t.Run("total power consumes no bytes", func(t *testing.T) {
		t.Parallel()
		content := testutil.Cat(
			testutil.U32(1),
			testutil.U32(uint32(voxtype.MaterialEmissive)),
			testutil.F32(1),
			testutil.U32(0x80|0x40),
			testutil.F32(2),
		)
		m, ok := decodeValue(t, TagMATT, content).(voxtype.MaterialV1)
		require.True(t, ok)
		require.NotNil(t, m.Glow)
		assert.InDelta(t, 2.0, *m.Glow, 0)
		assert.True(t, m.IsTotalPower)
	})

	t.Run("missing gated field", func(t *testing.T) {
		t.Parallel()
		content := testutil.Cat(testutil.U32(1), testutil.U32(0), testutil.F32(1), testutil.U32(0x03), testutil.F32(1))
		_, _, err := Parser{}.Parse(testutil.Frame(TagMATT, content), 0)
		assert.ErrorIs(t, err, voxtype.ErrTruncated)
	})
}

func TestDecodeDictionaryChunks(t *testing.T) {
	t.Parallel()

	matl, ok := decodeValue(t, TagMATL, testutil.Cat(testutil.U32(9), testutil.Dict("_type", "_glass", "_ior", "0.3"))).(voxtype.MaterialV2)
	require.True(t, ok)
	assert.Equal(t, uint32(9), matl.ID)
	typ, _ := matl.Type()
	assert.Equal(t, "_glass", typ)
	assert.Equal(t, []string{"_type", "_ior"}, matl.Properties.Keys())

	obj, ok := decodeValue(t, TagRenderObj, testutil.Dict("_type", "_bloom")).(RenderObject)
	require.True(t, ok)
	assert.Equal(t, 1, voxtype.Dict(obj).Len())

	cam, ok := decodeValue(t, TagCamera, testutil.Cat(testutil.U32(2), testutil.Dict("_mode", "pers"))).(voxtype.Camera)
	require.True(t, ok)
	assert.Equal(t, uint32(2), cam.ID)
	mode, _ := cam.Attributes.Get("_mode")
	assert.Equal(t, "pers", mode)
}

func TestDecodeIndexMapAndNote(t *testing.T) {
	t.Parallel()

	raw := make([]byte, 256)
	for i := range raw {
		raw[i] = byte(255 - i)
	}
	imap, ok := decodeValue(t, TagIndexMap, raw).(voxtype.IndexMap)
	require.True(t, ok)
	assert.Equal(t, uint8(255), imap[0])
	assert.Equal(t, uint8(0), imap[255])

	note, ok := decodeValue(t, TagNote, testutil.Cat(testutil.U32(2), testutil.String("a"), testutil.String("bc"))).(Note)
	require.True(t, ok)
	assert.Equal(t, Note{"a", "bc"}, note)
}

func TestDecodeSceneNodes(t *testing.T) {
	t.Parallel()

	t.Run("transform", func(t *testing.T) {
		t.Parallel()
		content := testutil.Cat(
			testutil.U32(0),
			testutil.Dict("_name", "root"),
			testutil.U32(1),
			testutil.I32(-1),
			testutil.U32(3),
			testutil.U32(2),
			testutil.Dict("_r", "4", "_t", "1 2 3"),
			testutil.Dict(),
		)
		n, ok := decodeValue(t, TagTransform, content).(*voxtype.TransformNode)
		require.True(t, ok)
		assert.Equal(t, uint32(0), n.ID)
		assert.Equal(t, uint32(1), n.ChildID)
		assert.Equal(t, voxtype.NoReference, n.Reserved)
		assert.Equal(t, uint32(3), n.LayerID)
		require.Len(t, n.Frames, 2)
		r, ok := n.Frames[0].Rotation()
		require.True(t, ok)
		assert.Equal(t, voxtype.Identity, r)
		assert.Equal(t, 0, n.Frames[1].Len())
	})

	t.Run("group", func(t *testing.T) {
		t.Parallel()
		content := testutil.Cat(testutil.U32(1), testutil.Dict(), testutil.U32(2), testutil.U32(2), testutil.U32(40))
		n, ok := decodeValue(t, TagGroup, content).(*voxtype.GroupNode)
		require.True(t, ok)
		assert.Equal(t, []uint32{2, 40}, n.Children)
	})

	t.Run("shape", func(t *testing.T) {
		t.Parallel()
		content := testutil.Cat(
			testutil.U32(2), testutil.Dict(),
			testutil.U32(2),
			testutil.U32(0), testutil.Dict("_f", "0"),
			testutil.U32(5), testutil.Dict(),
		)
		n, ok := decodeValue(t, TagShape, content).(*voxtype.ShapeNode)
		require.True(t, ok)
		require.Len(t, n.Models, 2)
		assert.Equal(t, uint32(0), n.Models[0].ModelID)
		f, ok := n.Models[0].Attributes.Frame()
		require.True(t, ok)
		assert.Equal(t, 0, f)
		assert.Equal(t, uint32(5), n.Models[1].ModelID)
	})

	t.Run("layer", func(t *testing.T) {
		t.Parallel()
		content := testutil.Cat(testutil.U32(4), testutil.Dict("_hidden", "1"), testutil.I32(-1))
		n, ok := decodeValue(t, TagLayer, content).(*voxtype.Layer)
		require.True(t, ok)
		assert.Equal(t, uint32(4), n.ID)
		assert.True(t, n.Attributes.Hidden())
		assert.Equal(t, voxtype.NoReference, n.Reserved)
	})

	t.Run("truncated frames", func(t *testing.T) {
		t.Parallel()
		content := testutil.Cat(
			testutil.U32(0), testutil.Dict(),
			testutil.U32(1), testutil.I32(-1), testutil.U32(0),
			testutil.U32(2), testutil.Dict(),
		)
		_, _, err := Parser{}.Parse(testutil.Frame(TagTransform, content), 0)
		assert.ErrorIs(t, err, voxtype.ErrTruncated)
	})
}
