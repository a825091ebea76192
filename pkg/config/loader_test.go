package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchkit/punchkit/pkg/config"
)

type serverConfig struct {
	Addr      string `env:"TEST_SERVER_ADDR" envDefault:":8080"`
	LocaleDir string `env:"TEST_LOCALE_DIR"`
}

type requiredConfig struct {
	Secret string `env:"TEST_REQUIRED_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("parses env tags", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_SERVER_ADDR", ":9090")
		t.Setenv("TEST_LOCALE_DIR", "/tmp/locales")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, "/tmp/locales", cfg.LocaleDir)
	})

	t.Run("applies defaults", func(t *testing.T) {
		config.ResetCache()

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Empty(t, cfg.LocaleDir)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_SERVER_ADDR", ":7070")

		var first serverConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_SERVER_ADDR", ":1111")
		var second serverConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first, second)
	})

	t.Run("missing required variable", func(t *testing.T) {
		config.ResetCache()

		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		config.ResetCache()
		assert.ErrorIs(t, config.Load[serverConfig](nil), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		config.ResetCache()

		var cfg requiredConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("returns on success", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_REQUIRED_SECRET", "shh")

		var cfg requiredConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "shh", cfg.Secret)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("no paths is a no-op", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})

	t.Run("missing file", func(t *testing.T) {
		assert.ErrorIs(t, config.LoadEnv("testdata/does-not-exist.env"), config.ErrLoadingEnvFile)
	})
}
