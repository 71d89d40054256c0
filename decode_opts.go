package vox

import (
	"log/slog"

	"github.com/meigma/vox/internal/chunk"
)

// Option configures decoding.
type Option func(*config)

type config struct {
	logger           *slog.Logger
	maxDepth         int
	strictModels     bool
	maxInputSize     uint64
	maxDecoderMemory uint64
}

func newConfig(opts []Option) config {
	cfg := config{
		logger:   slog.New(slog.DiscardHandler),
		maxDepth: chunk.DefaultMaxDepth,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return cfg
}

// WithLogger sets a logger for decode anomalies such as a nested MAIN chunk
// or dropped voxel data. If nil, a discard logger is used (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMaxDepth limits chunk nesting (default: 64). The MAIN chunk is at
// depth 0. Values <= 0 restore the default.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = chunk.DefaultMaxDepth
		}
		c.maxDepth = n
	}
}

// WithStrictModels makes an XYZI chunk without a preceding SIZE, or a SIZE
// never followed by XYZI, fail with ErrUnpairedModel instead of being
// dropped (default: false).
func WithStrictModels(enabled bool) Option {
	return func(c *config) {
		c.strictModels = enabled
	}
}

// WithMaxInputSize limits how many bytes ReadFile and DecodeReader accept,
// after decompression (default: 256 MiB).
func WithMaxInputSize(limit uint64) Option {
	return func(c *config) {
		c.maxInputSize = limit
	}
}

// WithMaxDecoderMemory limits the memory used by the zstd decoder for
// compressed input. Set limit to 0 to disable the limit.
func WithMaxDecoderMemory(limit uint64) Option {
	return func(c *config) {
		c.maxDecoderMemory = limit
	}
}
