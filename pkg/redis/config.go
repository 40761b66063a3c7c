package redis

import "time"

// Config describes a Redis connection. Field tags are relative; the caller
// chooses the prefix (formcheck uses FORMCHECK_REDIS_).
type Config struct {
	URL            string        `env:"URL"`                             // redis://:password@localhost:6379/0; empty disables Redis-backed rules
	RetryAttempts  int           `env:"RETRY_ATTEMPTS" envDefault:"3"`   // connection attempts before giving up
	RetryInterval  time.Duration `env:"RETRY_INTERVAL" envDefault:"1s"`  // pause between attempts
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"` // overall budget for Connect
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.URL != ""
}
