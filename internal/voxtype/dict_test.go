package voxtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictOrder(t *testing.T) {
	t.Parallel()

	var d Dict
	d.Set("b", "2")
	d.Set("a", "1")
	d.Set("b", "3")

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []string{"b", "a"}, d.Keys())

	v, ok := d.Get("b")
	require.True(t, ok)
	assert.Equal(t, "3", v)

	var keys, values []string
	for k, v := range d.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal(t, []string{"b", "a"}, keys)
	assert.Equal(t, []string{"3", "1"}, values)
	assert.Equal(t, map[string]string{"a": "1", "b": "3"}, d.Map())
}

func TestDictZeroValue(t *testing.T) {
	t.Parallel()

	var d Dict
	_, ok := d.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.Keys())
	assert.False(t, d.Hidden())
}

func TestDictAccessors(t *testing.T) {
	t.Parallel()

	d := NewDict(6)
	d.Set(KeyName, "tree")
	d.Set(KeyHidden, "1")
	d.Set(KeyRotation, "105")
	d.Set(KeyTranslation, "-3 0 12")
	d.Set(KeyFrame, "2")
	d.Set("_rough", "0.25")

	name, ok := d.Name()
	require.True(t, ok)
	assert.Equal(t, "tree", name)
	assert.True(t, d.Hidden())

	r, ok := d.Rotation()
	require.True(t, ok)
	assert.Equal(t, Rotation(105), r)

	tr, ok := d.Translation()
	require.True(t, ok)
	assert.Equal(t, [3]int32{-3, 0, 12}, tr)

	f, ok := d.Frame()
	require.True(t, ok)
	assert.Equal(t, 2, f)

	rough, ok := d.Float("_rough")
	require.True(t, ok)
	assert.InDelta(t, 0.25, rough, 1e-6)
}

func TestDictAccessorsMalformed(t *testing.T) {
	t.Parallel()

	var d Dict
	d.Set(KeyRotation, "300")
	d.Set(KeyTranslation, "1 2")
	d.Set("_ior", "glass")

	_, ok := d.Rotation()
	assert.False(t, ok)
	_, ok = d.Translation()
	assert.False(t, ok)
	_, ok = d.Float("_ior")
	assert.False(t, ok)
	_, ok = d.Int("_ior")
	assert.False(t, ok)
}
