// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct parsing and
// github.com/joho/godotenv for dotenv files. Each call parses afresh; the
// same struct type can be loaded several times under different prefixes,
// which is how formcheck reads its Redis and Postgres settings:
//
//	var redisCfg redis.Config
//	err := config.Load(&redisCfg,
//	    config.WithPrefix("FORMCHECK_REDIS_"),
//	    config.WithEnvFiles(".env"),
//	    config.WithOptionalFiles(),
//	)
//
// Dotenv files only fill in keys the environment does not already define,
// and the process environment is never modified. Tests can supply a fixed
// variable set with WithEnvironment.
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrReadingEnvFile and ErrNilPointer.
package config
