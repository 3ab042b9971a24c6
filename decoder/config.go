package decoder

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/nbt/errs"
	"github.com/arloliu/nbt/internal/options"
)

// DefaultMaxDepth is the default limit on List/Compound nesting, the same
// limit the game applies when reading NBT.
const DefaultMaxDepth = 512

// Config holds decoder settings. It is populated by Options and is immutable
// once the Decoder is built.
type Config struct {
	maxDepth      int
	unnamedRoot   bool
	allowTrailing bool
	interning     bool
	logger        *slog.Logger
}

func defaultConfig() Config {
	return Config{
		maxDepth:      DefaultMaxDepth,
		allowTrailing: true,
		interning:     true,
		logger:        slog.New(slog.DiscardHandler),
	}
}

// Option configures a Decoder.
type Option = options.Option[*Config]

// WithMaxDepth sets the maximum List/Compound nesting depth.
//
// The root compound is depth 1. Input nested deeper fails with
// errs.ErrMaxDepthExceeded instead of growing the stack without bound.
func WithMaxDepth(depth int) Option {
	return options.New(func(cfg *Config) error {
		if depth <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidMaxDepth, depth)
		}
		cfg.maxDepth = depth

		return nil
	})
}

// WithUnnamedRoot makes Decode read the root tag and payload without a name
// in between, as the Java network protocol does since 1.20.2.
func WithUnnamedRoot() Option {
	return options.NoError(func(cfg *Config) {
		cfg.unnamedRoot = true
	})
}

// WithTrailingData controls whether DecodeBytes accepts input with bytes left
// over after the root tag. Accepted by default.
func WithTrailingData(allow bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.allowTrailing = allow
	})
}

// WithNameInterning enables or disables deduplication of compound entry
// names within one document. Enabled by default.
func WithNameInterning(enabled bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.interning = enabled
	})
}

// WithLogger sets the logger for decode diagnostics, emitted at Debug level.
// A nil logger restores the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(cfg *Config) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		cfg.logger = logger
	})
}
