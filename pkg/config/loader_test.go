package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
)

type ruleSettings struct {
	Timeout   time.Duration `env:"RULE_TIMEOUT" envDefault:"2s"`
	CacheSize int           `env:"CACHE_SIZE" envDefault:"1024"`
	Verbose   bool          `env:"VERBOSE"`
}

type requiredSettings struct {
	URL string `env:"URL,required"`
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	var s ruleSettings
	require.NoError(t, config.Load(&s, config.WithEnvironment(map[string]string{})))
	assert.Equal(t, 2*time.Second, s.Timeout)
	assert.Equal(t, 1024, s.CacheSize)
	assert.False(t, s.Verbose)
}

func TestLoad_ProcessEnvironment(t *testing.T) {
	t.Setenv("RULE_TIMEOUT", "750ms")
	t.Setenv("VERBOSE", "true")

	var s ruleSettings
	require.NoError(t, config.Load(&s))
	assert.Equal(t, 750*time.Millisecond, s.Timeout)
	assert.True(t, s.Verbose)
}

func TestLoad_Prefix(t *testing.T) {
	t.Parallel()
	vars := map[string]string{
		"APP_RULE_TIMEOUT": "5s",
		"RULE_TIMEOUT":     "9s",
	}

	var s ruleSettings
	require.NoError(t, config.Load(&s, config.WithEnvironment(vars), config.WithPrefix("APP_")))
	assert.Equal(t, 5*time.Second, s.Timeout)
}

func TestLoad_SameTypeDifferentPrefixes(t *testing.T) {
	t.Parallel()
	vars := map[string]string{"A_URL": "redis://a", "B_URL": "postgres://b"}

	var a, b requiredSettings
	require.NoError(t, config.Load(&a, config.WithEnvironment(vars), config.WithPrefix("A_")))
	require.NoError(t, config.Load(&b, config.WithEnvironment(vars), config.WithPrefix("B_")))
	assert.Equal(t, "redis://a", a.URL)
	assert.Equal(t, "postgres://b", b.URL)
}

func TestLoad_EnvFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("CACHE_SIZE=64\nRULE_TIMEOUT=3s\n"), 0o600))

	var s ruleSettings
	err := config.Load(&s,
		config.WithEnvironment(map[string]string{"RULE_TIMEOUT": "1s"}),
		config.WithEnvFiles(file),
	)
	require.NoError(t, err)
	assert.Equal(t, 64, s.CacheSize)
	assert.Equal(t, time.Second, s.Timeout, "environment wins over the file")
}

func TestLoad_MissingEnvFile(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "nope.env")

	var s ruleSettings
	err := config.Load(&s, config.WithEnvironment(map[string]string{}), config.WithEnvFiles(missing))
	assert.ErrorIs(t, err, config.ErrReadingEnvFile)

	err = config.Load(&s,
		config.WithEnvironment(map[string]string{}),
		config.WithEnvFiles(missing),
		config.WithOptionalFiles(),
	)
	assert.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	var nilPtr *requiredSettings
	assert.ErrorIs(t, config.Load(nilPtr), config.ErrNilPointer)

	var req requiredSettings
	assert.ErrorIs(t, config.Load(&req, config.WithEnvironment(map[string]string{})), config.ErrParsingConfig)

	var bad ruleSettings
	err := config.Load(&bad, config.WithEnvironment(map[string]string{"CACHE_SIZE": "lots"}))
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestMustLoad(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		var req requiredSettings
		config.MustLoad(&req, config.WithEnvironment(map[string]string{}))
	})
	assert.NotPanics(t, func() {
		var req requiredSettings
		config.MustLoad(&req, config.WithEnvironment(map[string]string{"URL": "x"}))
	})
}
