// voxinfo decodes vox files and prints a summary of each: digest, format
// version, models, materials, scene graph, and palette.
//
// Output is human-readable text by default; --format yaml and --format cbor
// emit the same summary for other tools. Inputs may be zstd-compressed.
//
// With --cache-dir, every decoded file is kept in a content-addressed store
// and later runs may name a digest (sha256:...) instead of a path.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/spf13/pflag"

	"github.com/meigma/vox"
	"github.com/meigma/vox/cache"
	"github.com/meigma/vox/cache/disk"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	format   string
	verbose  bool
	strict   bool
	maxDepth int
	maxSize  uint64
	cacheDir string
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("voxinfo", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.format, "format", "f", "text", "output format: text, yaml, or cbor")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log decode details to stderr")
	flagSet.BoolVar(&opts.strict, "strict", false, "fail on SIZE or XYZI chunks that do not pair into a model")
	flagSet.IntVar(&opts.maxDepth, "max-depth", 0, "maximum chunk nesting depth (default 64)")
	flagSet.Uint64Var(&opts.maxSize, "max-size", 0, "maximum input size in bytes after decompression (default 256 MiB)")
	flagSet.StringVar(&opts.cacheDir, "cache-dir", "", "persist decoded files by digest in this directory")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}

	paths := flagSet.Args()
	if len(paths) == 0 {
		printHelp(stderr, flagSet)
		return errors.New("no input files")
	}

	enc, err := newEncoder(opts.format, stdout)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cacheOpts := []cache.Option{
		cache.WithLogger(logger),
		cache.WithMaxInputSize(opts.maxSize),
		cache.WithDecodeOptions(
			vox.WithLogger(logger),
			vox.WithMaxDepth(opts.maxDepth),
			vox.WithStrictModels(opts.strict),
		),
	}
	if opts.cacheDir != "" {
		store, err := disk.New(opts.cacheDir, disk.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("open cache dir: %w", err)
		}
		cacheOpts = append(cacheOpts, cache.WithStore(store))
	}
	c := cache.New(cacheOpts...)

	summaries := make([]fileSummary, 0, len(paths))
	for _, arg := range paths {
		doc, dgst, err := load(c, arg)
		if err != nil {
			return err
		}
		summaries = append(summaries, summarize(arg, dgst.String(), doc))
	}
	return enc.encode(summaries)
}

// load treats arg as a digest when it parses as one, and as a path otherwise.
func load(c *cache.Cache, arg string) (*vox.Document, digest.Digest, error) {
	if dgst, err := digest.Parse(arg); err == nil {
		doc, err := c.Load(dgst)
		if err != nil {
			return nil, dgst, err
		}
		return doc, dgst, nil
	}
	return c.ReadFile(arg)
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `voxinfo prints a summary of MagicaVoxel .vox files.

Usage:
  voxinfo [flags] FILE|DIGEST...

Files may be plain or zstd-compressed. A DIGEST argument (sha256:...) is
looked up in --cache-dir.

Flags:
%s`, flagSet.FlagUsages())
}
