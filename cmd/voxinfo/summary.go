package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/meigma/vox"
)

type fileSummary struct {
	Path      string         `yaml:"path" cbor:"path"`
	Digest    string         `yaml:"digest" cbor:"digest"`
	Version   uint32         `yaml:"version" cbor:"version"`
	Palette   string         `yaml:"palette" cbor:"palette"`
	Models    []modelSummary `yaml:"models" cbor:"models"`
	Materials int            `yaml:"materials" cbor:"materials"`
	Scene     sceneSummary   `yaml:"scene" cbor:"scene"`
	Notes     []string       `yaml:"notes,omitempty" cbor:"notes,omitempty"`
	Unknown   []string       `yaml:"unknown_chunks,omitempty" cbor:"unknown_chunks,omitempty"`
}

type modelSummary struct {
	ID     uint32    `yaml:"id" cbor:"id"`
	Size   [3]uint32 `yaml:"size,flow" cbor:"size"`
	Voxels int       `yaml:"voxels" cbor:"voxels"`
}

type sceneSummary struct {
	Transforms int `yaml:"transforms" cbor:"transforms"`
	Groups     int `yaml:"groups" cbor:"groups"`
	Shapes     int `yaml:"shapes" cbor:"shapes"`
	Layers     int `yaml:"layers" cbor:"layers"`
	Cameras    int `yaml:"cameras" cbor:"cameras"`
}

func summarize(path, dgst string, doc *vox.Document) fileSummary {
	s := fileSummary{
		Path:      path,
		Digest:    dgst,
		Version:   doc.Version,
		Palette:   "default",
		Models:    make([]modelSummary, 0, len(doc.Models)),
		Materials: len(doc.Materials),
		Scene: sceneSummary{
			Transforms: doc.Scene.Count(vox.NodeTransform),
			Groups:     doc.Scene.Count(vox.NodeGroup),
			Shapes:     doc.Scene.Count(vox.NodeShape),
			Layers:     doc.Scene.Count(vox.NodeLayer),
			Cameras:    len(doc.Extras.Cameras),
		},
		Notes: doc.Extras.Notes,
	}
	if doc.CustomPalette {
		s.Palette = "custom"
	}
	for _, m := range doc.Models {
		s.Models = append(s.Models, modelSummary{
			ID:     m.ID,
			Size:   [3]uint32{m.Size.X, m.Size.Y, m.Size.Z},
			Voxels: len(m.Voxels),
		})
	}
	for _, u := range doc.Extras.Unknown {
		s.Unknown = append(s.Unknown, u.ID)
	}
	return s
}

type encoder interface {
	encode([]fileSummary) error
}

func newEncoder(format string, w io.Writer) (encoder, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return textEncoder{w: w}, nil
	case "yaml":
		return yamlEncoder{w: w}, nil
	case "cbor":
		mode, err := cbor.CoreDetEncOptions().EncMode()
		if err != nil {
			return nil, fmt.Errorf("cbor encoder: %w", err)
		}
		return cborEncoder{w: w, mode: mode}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text, yaml, or cbor)", format)
	}
}

type textEncoder struct {
	w io.Writer
}

func (e textEncoder) encode(files []fileSummary) error {
	tw := tabwriter.NewWriter(e.w, 0, 4, 2, ' ', 0)
	for i, f := range files {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "file:\t%s\n", f.Path)
		fmt.Fprintf(tw, "digest:\t%s\n", f.Digest)
		fmt.Fprintf(tw, "version:\t%d\n", f.Version)
		fmt.Fprintf(tw, "palette:\t%s\n", f.Palette)
		fmt.Fprintf(tw, "materials:\t%d\n", f.Materials)
		fmt.Fprintf(tw, "scene:\t%d transforms, %d groups, %d shapes, %d layers, %d cameras\n",
			f.Scene.Transforms, f.Scene.Groups, f.Scene.Shapes, f.Scene.Layers, f.Scene.Cameras)
		fmt.Fprintf(tw, "models:\t%d\n", len(f.Models))
		for _, m := range f.Models {
			fmt.Fprintf(tw, "  #%d\t%dx%dx%d\t%d voxels\n", m.ID, m.Size[0], m.Size[1], m.Size[2], m.Voxels)
		}
		if len(f.Unknown) > 0 {
			fmt.Fprintf(tw, "unknown chunks:\t%s\n", strings.Join(f.Unknown, ", "))
		}
	}
	return tw.Flush()
}

type yamlEncoder struct {
	w io.Writer
}

func (e yamlEncoder) encode(files []fileSummary) error {
	enc := yaml.NewEncoder(e.w)
	enc.SetIndent(2)
	if err := enc.Encode(files); err != nil {
		return err
	}
	return enc.Close()
}

type cborEncoder struct {
	w    io.Writer
	mode cbor.EncMode
}

func (e cborEncoder) encode(files []fileSummary) error {
	return e.mode.NewEncoder(e.w).Encode(files)
}
