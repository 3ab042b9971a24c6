package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	depth  int
	named  bool
	called []string
}

var errNegative = errors.New("depth cannot be negative")

func withDepth(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n < 0 {
			return errNegative
		}
		c.depth = n
		c.called = append(c.called, "depth")

		return nil
	})
}

func withNamed(named bool) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.named = named
		c.called = append(c.called, "named")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withNamed(true), withDepth(8), withNamed(false))
		require.NoError(t, err)
		require.Equal(t, 8, cfg.depth)
		require.False(t, cfg.named, "last option wins")
		require.Equal(t, []string{"named", "depth", "named"}, cfg.called)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withDepth(-1), withNamed(true))
		require.ErrorIs(t, err, errNegative)
		require.False(t, cfg.named)
		require.Empty(t, cfg.called)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{depth: 3}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 3, cfg.depth)
	})

	t.Run("nil option is skipped", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withDepth(2)))
		require.Equal(t, 2, cfg.depth)
	})
}
