package mongo

import "time"

// Config describes a MongoDB connection. Field tags are relative; formcheck
// loads it with the FORMCHECK_MONGO_ prefix.
type Config struct {
	URL             string        `env:"URL"`                               // mongodb://host:27017; empty disables Mongo-backed rules
	Database        string        `env:"DATABASE" envDefault:"formkit"`     // database holding the looked-up collections
	ConnectTimeout  time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize     uint64        `env:"MAX_POOL_SIZE" envDefault:"10"`
	MaxConnIdleTime time.Duration `env:"MAX_CONN_IDLE_TIME" envDefault:"5m"`
	RetryAttempts   int           `env:"RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval   time.Duration `env:"RETRY_INTERVAL" envDefault:"2s"`
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.URL != ""
}
