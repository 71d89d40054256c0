package vox

import "github.com/meigma/vox/internal/voxtype"

// --- Re-exports from internal/voxtype ---

// Document is a decoded vox file.
type Document = voxtype.Document

// Model is one sized voxel grid.
type Model = voxtype.Model

// Size is the extent of a model in voxels.
type Size = voxtype.Size

// Voxel is a single occupied position with its on-disk palette index.
type Voxel = voxtype.Voxel

// Color is an RGBA palette entry.
type Color = voxtype.Color

// Palette is the 256-entry color table.
type Palette = voxtype.Palette

// Dict is an insertion-ordered string to string mapping.
type Dict = voxtype.Dict

// Material is either a MaterialV1 or a MaterialV2.
type Material = voxtype.Material

// MaterialV1 is a legacy MATT material.
type MaterialV1 = voxtype.MaterialV1

// MaterialV2 is a MATL material.
type MaterialV2 = voxtype.MaterialV2

// MaterialKind is the MATT surface type.
type MaterialKind = voxtype.MaterialKind

// SceneGraph stores scene records in arrival order.
type SceneGraph = voxtype.SceneGraph

// SceneNode is a transform, group, shape, or layer record.
type SceneNode = voxtype.SceneNode

// NodeKind identifies a scene graph record type.
type NodeKind = voxtype.NodeKind

// TransformNode positions a single child node.
type TransformNode = voxtype.TransformNode

// GroupNode collects child nodes.
type GroupNode = voxtype.GroupNode

// ShapeNode places one or more models.
type ShapeNode = voxtype.ShapeNode

// ShapeModel is one model instance of a shape node.
type ShapeModel = voxtype.ShapeModel

// Layer is a LAYR record.
type Layer = voxtype.Layer

// Rotation is a signed permutation matrix packed into one byte.
type Rotation = voxtype.Rotation

// Pack is the optional model count chunk.
type Pack = voxtype.Pack

// Camera is an rCAM render camera.
type Camera = voxtype.Camera

// IndexMap is the IMAP palette reordering table.
type IndexMap = voxtype.IndexMap

// Unknown holds a top-level chunk whose tag was not recognized.
type Unknown = voxtype.Unknown

// Extras holds auxiliary chunks kept for consumers.
type Extras = voxtype.Extras

// DecodeError describes a structural failure at a specific position.
type DecodeError = voxtype.DecodeError

// Material kinds.
const (
	MaterialDiffuse  = voxtype.MaterialDiffuse
	MaterialMetal    = voxtype.MaterialMetal
	MaterialGlass    = voxtype.MaterialGlass
	MaterialEmissive = voxtype.MaterialEmissive
)

// Scene node kinds.
const (
	NodeTransform = voxtype.NodeTransform
	NodeGroup     = voxtype.NodeGroup
	NodeShape     = voxtype.NodeShape
	NodeLayer     = voxtype.NodeLayer
)

// NoReference marks an unused signed reserved field.
const NoReference = voxtype.NoReference

// DefaultPalette returns the palette used when a file has no RGBA chunk.
func DefaultPalette() Palette {
	return voxtype.DefaultPalette()
}
