package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moleary1107/etownz-grants-sub008/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Run("parses env tags with defaults", func(t *testing.T) {
		config.Reset()
		type loadDefaults struct {
			Model string `env:"CFGTEST_MODEL" envDefault:"text-embedding-3-small"`
			Batch int    `env:"CFGTEST_BATCH" envDefault:"100"`
		}

		var cfg loadDefaults
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "text-embedding-3-small", cfg.Model)
		assert.Equal(t, 100, cfg.Batch)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		config.Reset()
		t.Setenv("CFGTEST_MODEL", "text-embedding-3-large")
		type loadOverride struct {
			Model string `env:"CFGTEST_MODEL" envDefault:"text-embedding-3-small"`
		}

		var cfg loadOverride
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "text-embedding-3-large", cfg.Model)
	})

	t.Run("caches per type until reset", func(t *testing.T) {
		config.Reset()
		t.Setenv("CFGTEST_CACHED", "first")
		type loadCached struct {
			Value string `env:"CFGTEST_CACHED"`
		}

		var first loadCached
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "first", first.Value)

		t.Setenv("CFGTEST_CACHED", "second")
		var second loadCached
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Value, "cached value should win")

		config.Reset()
		var third loadCached
		require.NoError(t, config.Load(&third))
		assert.Equal(t, "second", third.Value)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		config.Reset()
		type loadRequired struct {
			Secret string `env:"CFGTEST_ABSENT,required"`
		}

		var cfg loadRequired
		err := config.Load(&cfg)
		assert.True(t, errors.Is(err, config.ErrParsingConfig))
	})

	t.Run("nil pointer fails", func(t *testing.T) {
		var cfg *struct{}
		err := config.Load(cfg)
		assert.True(t, errors.Is(err, config.ErrNilPointer))
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		config.Reset()
		type mustLoadRequired struct {
			Secret string `env:"CFGTEST_ABSENT,required"`
		}

		assert.Panics(t, func() {
			var cfg mustLoadRequired
			config.MustLoad(&cfg)
		})
	})
}
