// Package vox decodes MagicaVoxel .vox files into an in-memory document.
//
// A vox file is a "VOX " marker, a format version, and one MAIN chunk whose
// children carry models (SIZE/XYZI pairs), the color palette (RGBA),
// materials (MATT, MATL), and an optional scene graph (nTRN, nGRP, nSHP,
// LAYR). Decoding is a pure function of the input bytes: it either returns a
// complete [Document] or fails with an error, never a partial result.
//
// # Quick Start
//
// Decode bytes that are already in memory:
//
//	doc, err := vox.Decode(data)
//	if err != nil {
//	    return err
//	}
//	for _, m := range doc.Models {
//	    fmt.Println(m.ID, m.Size, len(m.Voxels))
//	}
//
// Read a file from disk, optionally zstd-compressed:
//
//	doc, err := vox.ReadFile("castle.vox", vox.WithLogger(logger))
//
// # Palette indices
//
// Voxel color indices are kept exactly as stored on disk, where colors are
// numbered from 1. Use [Voxel.PaletteIndex] to address [Document.Palette].
//
// # Scene graph
//
// Scene records reference each other and models by integer id. The decoder
// stores them in arrival order and does not resolve ids; a reference with no
// matching record is valid and simply resolves to nothing.
//
// # Caching
//
// Package [github.com/meigma/vox/cache] memoizes decoded documents by content
// digest for callers that decode the same assets repeatedly.
package vox
