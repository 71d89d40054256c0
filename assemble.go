package vox

import (
	"bytes"
	"log/slog"

	"github.com/meigma/vox/internal/chunk"
	"github.com/meigma/vox/internal/voxtype"
)

// assembler folds the children of MAIN into a Document in a single pass.
type assembler struct {
	doc    *Document
	logger *slog.Logger
	strict bool

	// pending holds the last SIZE not yet paired with an XYZI.
	pending       *Size
	pendingOffset int
	nextModelID   uint32
}

func newAssembler(version uint32, cfg config) *assembler {
	return &assembler{
		doc:    voxtype.NewDocument(version),
		logger: cfg.logger,
		strict: cfg.strictModels,
	}
}

func (a *assembler) add(c *chunk.Chunk) error {
	switch v := c.Value.(type) {
	case chunk.Main:
		a.logger.Warn("ignoring nested MAIN chunk",
			slog.Int("offset", c.Offset),
			slog.Int("children", len(c.Children)))

	case voxtype.Size:
		if a.pending != nil {
			if err := a.unpaired(chunk.TagSize, a.pendingOffset); err != nil {
				return err
			}
		}
		a.pending = &v
		a.pendingOffset = c.Offset

	case []voxtype.Voxel:
		if a.pending == nil {
			return a.unpaired(chunk.TagXYZI, c.Offset)
		}
		a.doc.Models = append(a.doc.Models, Model{
			ID:     a.nextModelID,
			Size:   *a.pending,
			Voxels: v,
		})
		a.nextModelID++
		a.pending = nil

	case voxtype.Palette:
		a.doc.Palette = v
		a.doc.CustomPalette = true

	case voxtype.MaterialV1:
		a.doc.Materials = append(a.doc.Materials, v)

	case voxtype.MaterialV2:
		a.doc.Materials = append(a.doc.Materials, v)

	case voxtype.Pack:
		a.doc.Extras.Pack = &v

	case chunk.RenderObject:
		a.doc.Extras.RenderObjects = append(a.doc.Extras.RenderObjects, voxtype.Dict(v))

	case voxtype.Camera:
		a.doc.Extras.Cameras = append(a.doc.Extras.Cameras, v)

	case voxtype.IndexMap:
		a.doc.Extras.IndexMap = &v

	case chunk.Note:
		a.doc.Extras.Notes = append(a.doc.Extras.Notes, v...)

	case voxtype.SceneNode:
		a.doc.Scene.Add(v)

	case chunk.Unknown:
		a.logger.Debug("keeping unknown chunk",
			slog.String("tag", v.ID),
			slog.Int("offset", c.Offset))
		a.doc.Extras.Unknown = append(a.doc.Extras.Unknown, Unknown{
			ID:       v.ID,
			Content:  v.Content,
			Children: bytes.Clone(c.ChildrenRaw()),
		})
	}
	return nil
}

// unpaired handles a SIZE or XYZI chunk that did not form a model.
func (a *assembler) unpaired(tag string, offset int) error {
	if a.strict {
		return &voxtype.DecodeError{
			Op:     "assemble model",
			Tag:    tag,
			Offset: offset,
			Err:    voxtype.ErrUnpairedModel,
		}
	}
	a.logger.Debug("dropping unpaired model chunk",
		slog.String("tag", tag),
		slog.Int("offset", offset))
	return nil
}

func (a *assembler) finish() (*Document, error) {
	if a.pending != nil {
		if err := a.unpaired(chunk.TagSize, a.pendingOffset); err != nil {
			return nil, err
		}
	}
	a.logger.Debug("decoded vox document",
		slog.Int("version", int(a.doc.Version)),
		slog.Int("models", len(a.doc.Models)),
		slog.Int("materials", len(a.doc.Materials)),
		slog.Int("scene_nodes", a.doc.Scene.Len()))
	return a.doc, nil
}
