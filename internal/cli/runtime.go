package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/formkit/pkg/cache"
	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/mongo"
	"github.com/dmitrymomot/formkit/pkg/pg"
	"github.com/dmitrymomot/formkit/pkg/redis"
	"github.com/dmitrymomot/formkit/pkg/remote"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Remote rule kinds registered when the matching backend is configured.
const (
	KindUnique      = "unique"
	KindUniqueRedis = "uniqueRedis"
	KindUniqueMongo = "uniqueMongo"
)

// Settings is the environment-driven configuration of formcheck.
type Settings struct {
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string        `env:"LOG_FORMAT" envDefault:"text"`
	CacheSize   int           `env:"FORMCHECK_CACHE_SIZE" envDefault:"1024"`
	CacheTTL    time.Duration `env:"FORMCHECK_CACHE_TTL" envDefault:"1m"`
	RuleTimeout time.Duration `env:"FORMCHECK_RULE_TIMEOUT" envDefault:"2s"`

	Redis redis.Config `envPrefix:"FORMCHECK_REDIS_"`
	PG    pg.Config    `envPrefix:"FORMCHECK_PG_"`
	Mongo mongo.Config `envPrefix:"FORMCHECK_MONGO_"`
}

// LoadSettings reads Settings from the environment and the env files named
// in opts. Missing env files are ignored.
func LoadSettings(opts *RootOptions) (Settings, error) {
	loadOpts := []config.Option{config.WithOptionalFiles()}
	if len(opts.EnvFiles) > 0 {
		loadOpts = append(loadOpts, config.WithEnvFiles(opts.EnvFiles...))
	}
	if opts.Environ != nil {
		loadOpts = append(loadOpts, config.WithEnvironment(opts.Environ))
	}

	var s Settings
	if err := config.Load(&s, loadOpts...); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Runtime holds the logger, the rule registry and the backend connections
// shared by one command invocation.
type Runtime struct {
	Log      *slog.Logger
	Registry *validator.Registry
	Checks   map[string]func(context.Context) error

	closers []func()
}

// NewRuntime builds the logger and registry. Backends with a configured URL
// are connected and their rule kinds registered.
func NewRuntime(ctx context.Context, s Settings, verbose bool, logOut io.Writer) (*Runtime, error) {
	log, err := newLogger(s, verbose, logOut)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		Log:      log,
		Registry: validator.DefaultRegistry(),
		Checks:   map[string]func(context.Context) error{},
	}

	var cacheOpts []cache.Option
	if s.CacheTTL > 0 {
		cacheOpts = append(cacheOpts, cache.WithTTL(s.CacheTTL))
	}
	remoteOpts := []remote.Option{remote.WithTimeout(s.RuleTimeout)}
	if s.CacheSize > 0 {
		remoteOpts = append(remoteOpts, remote.WithCache(cache.NewLRUCache[string, bool](s.CacheSize, cacheOpts...)))
	}

	if s.Redis.Enabled() {
		client, err := redis.Connect(ctx, s.Redis)
		if err != nil {
			rt.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		rt.useRedis(client, remoteOpts)
	}

	if s.PG.Enabled() {
		pool, err := pg.Connect(ctx, s.PG)
		if err != nil {
			rt.Close()
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		rt.usePostgres(pool, remoteOpts)
	}

	if s.Mongo.Enabled() {
		client, err := mongo.Connect(ctx, s.Mongo)
		if err != nil {
			rt.Close()
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		rt.useMongo(client, s.Mongo.Database, remoteOpts)
	}

	return rt, nil
}

func (rt *Runtime) useRedis(client *goredis.Client, opts []remote.Option) {
	rt.closers = append(rt.closers, func() { _ = client.Close() })
	rt.Checks["redis"] = redis.Healthcheck(client)
	_ = rt.Registry.RegisterAsync(KindUniqueRedis, remote.SetMembership(client, opts...))
	rt.Log.Debug("redis rules enabled", logger.RuleKind(KindUniqueRedis))
}

func (rt *Runtime) usePostgres(pool *pgxpool.Pool, opts []remote.Option) {
	rt.closers = append(rt.closers, pool.Close)
	rt.Checks["postgres"] = pg.Healthcheck(pool)
	_ = rt.Registry.RegisterAsync(KindUnique, remote.Exists(pool, opts...))
	rt.Log.Debug("postgres rules enabled", logger.RuleKind(KindUnique))
}

func (rt *Runtime) useMongo(client *mongodriver.Client, database string, opts []remote.Option) {
	rt.closers = append(rt.closers, func() { _ = client.Disconnect(context.Background()) })
	rt.Checks["mongo"] = mongo.Healthcheck(client)
	counter := mongo.NewCounter(client.Database(database))
	_ = rt.Registry.RegisterAsync(KindUniqueMongo, remote.DocumentExists(counter, opts...))
	rt.Log.Debug("mongo rules enabled", logger.RuleKind(KindUniqueMongo))
}

// Close releases backend connections in reverse order of creation.
func (rt *Runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i]()
	}
	rt.closers = nil
}

func newLogger(s Settings, verbose bool, out io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}

	format := logger.Format(s.LogFormat)
	if format != logger.FormatJSON && format != logger.FormatText {
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", s.LogFormat, logger.FormatJSON, logger.FormatText)
	}

	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(out),
		logger.WithAttr(slog.String("service", "formcheck")),
		logger.WithRunIDFromContext(),
	), nil
}
