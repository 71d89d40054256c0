package voxtype

// DefaultVersion is the format version written by current editors.
const DefaultVersion = 150

// Document is a decoded vox file.
type Document struct {
	// Version is the format version from the file header.
	Version uint32

	// Models holds SIZE/XYZI pairs in the order they were completed.
	Models []Model

	// Palette is the RGBA table, or DefaultPalette when the file has none.
	Palette Palette

	// CustomPalette reports whether Palette came from an RGBA chunk.
	CustomPalette bool

	// Materials holds MATT and MATL records in arrival order.
	Materials []Material

	// Scene holds transform, group, shape, and layer records.
	Scene SceneGraph

	// Extras holds auxiliary chunks that do not map onto the fields above.
	Extras Extras
}

// NewDocument returns an empty document with the default palette.
func NewDocument(version uint32) *Document {
	return &Document{
		Version: version,
		Palette: DefaultPalette(),
	}
}

// Model is one sized voxel grid.
type Model struct {
	// ID is assigned sequentially from 0 as models are completed.
	ID uint32

	// Size is the model extent in voxels.
	Size Size

	// Voxels lists the occupied positions.
	Voxels []Voxel
}

// Size is the extent of a model in voxels.
type Size struct {
	X uint32 // width
	Y uint32 // height
	Z uint32 // depth
}

// Voxel is a single occupied position.
type Voxel struct {
	X, Y, Z uint8

	// I is the palette index as stored on disk. The format numbers colors
	// from 1, so I-1 addresses Document.Palette.
	I uint8
}

// PaletteIndex returns the 0-based index into Document.Palette.
// ok is false for I == 0, which does not reference a color.
func (v Voxel) PaletteIndex() (idx uint8, ok bool) {
	if v.I == 0 {
		return 0, false
	}
	return v.I - 1, true
}

// Color is an RGBA palette entry.
type Color struct {
	R, G, B, A uint8

	// Name is reserved and never populated by the decoder.
	Name string
}

// ColorFromUint32 unpacks a color stored as 0xRRGGBBAA.
func ColorFromUint32(v uint32) Color {
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}

// Palette is the 256-entry color table.
type Palette [256]Color

// Pack is the optional model count chunk.
type Pack struct {
	Models uint32
}

// Camera is an rCAM render camera.
type Camera struct {
	ID         uint32
	Attributes Dict
}

// IndexMap is the IMAP palette reordering table.
type IndexMap [256]uint8

// Unknown holds a top-level chunk whose tag was not recognized.
type Unknown struct {
	ID      string
	Content []byte

	// Children is the raw children range, already validated as a sequence
	// of well-formed chunks.
	Children []byte
}

// Extras holds decoded chunks that are kept for consumers but not folded
// into models, palette, materials, or scene graph.
type Extras struct {
	Pack          *Pack
	RenderObjects []Dict
	Cameras       []Camera
	IndexMap      *IndexMap
	Notes         []string
	Unknown       []Unknown
}
