// Package pg opens PostgreSQL pools for formkit's remote rule checks.
//
// Connect parses Config.URL with pgxpool, applies the pool limits and pings
// the server, retrying with linear backoff. The resulting *pgxpool.Pool
// satisfies remote.RowQuerier and can back the Exists rule routine:
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer pool.Close()
//	reg.RegisterAsync("unique", remote.Exists(pool))
//
// IsUndefinedTableError and IsUndefinedColumnError classify the errors a
// misconfigured rule produces so callers can log them distinctly.
package pg
