package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option adjusts how Load resolves variables.
type Option func(*loadOptions)

type loadOptions struct {
	prefix   string
	files    []string
	optional bool
	environ  map[string]string
}

// WithPrefix prepends prefix to every env tag, so a field tagged `env:"URL"`
// reads FORMCHECK_REDIS_URL under WithPrefix("FORMCHECK_REDIS_").
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) { o.prefix = prefix }
}

// WithEnvFiles reads additional dotenv files. Variables already present in
// the environment win over values from the files.
func WithEnvFiles(files ...string) Option {
	return func(o *loadOptions) { o.files = append(o.files, files...) }
}

// WithOptionalFiles ignores env files that do not exist.
func WithOptionalFiles() Option {
	return func(o *loadOptions) { o.optional = true }
}

// WithEnvironment replaces the process environment as the variable source.
func WithEnvironment(vars map[string]string) Option {
	return func(o *loadOptions) { o.environ = vars }
}

// Load parses environment variables into v according to its env tags.
// The process environment is the base source unless WithEnvironment is
// given; dotenv files named by WithEnvFiles fill in missing keys. The
// process environment is never modified.
//
// Example:
//
//	type Settings struct {
//		LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
//		Timeout  time.Duration `env:"RULE_TIMEOUT" envDefault:"2s"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithEnvFiles(".env"), config.WithOptionalFiles()); err != nil {
//		// handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	vars := o.environ
	if vars == nil {
		vars = env.ToMap(os.Environ())
	}
	vars, err := mergeFiles(vars, o.files, o.optional)
	if err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: vars,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func mergeFiles(base map[string]string, files []string, optional bool) (map[string]string, error) {
	if len(files) == 0 {
		return base, nil
	}

	merged := make(map[string]string, len(base))
	for k, v := range base {
		merged[k] = v
	}

	for _, file := range files {
		vars, err := godotenv.Read(file)
		if err != nil {
			if optional && errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, errors.Join(ErrReadingEnvFile, fmt.Errorf("%s: %w", file, err))
		}
		for k, v := range vars {
			if _, ok := merged[k]; !ok {
				merged[k] = v
			}
		}
	}
	return merged, nil
}
