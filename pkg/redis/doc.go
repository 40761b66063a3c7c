// Package redis connects formkit to a Redis server for remote rule checks.
//
// Connect parses Config.URL, pings the server and retries according to the
// config. Healthcheck wraps a client into a func(context.Context) error probe.
// The returned *redis.Client satisfies remote.SetMember, so it can back the
// SetMembership rule routine directly:
//
//	var cfg redis.Config
//	if err := config.Load(&cfg, config.WithPrefix("FORMCHECK_REDIS_")); err != nil { ... }
//	if cfg.Enabled() {
//	    client, err := redis.Connect(ctx, cfg)
//	    ...
//	    reg.RegisterAsync("uniqueRedis", remote.SetMembership(client))
//	}
package redis
