package remote_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/cache"
	"github.com/dmitrymomot/formkit/pkg/remote"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

type fakeSets struct {
	mu      sync.Mutex
	members map[string]map[string]bool
	err     error
	calls   int
}

func (f *fakeSets) SIsMember(_ context.Context, key string, member any) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	return redis.NewBoolResult(f.members[key][member.(string)], nil)
}

type fakeRow struct {
	found bool
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*bool) = r.found
	return nil
}

type fakeDB struct {
	mu      sync.Mutex
	rows    map[string]bool
	err     error
	queries []string
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, sql)
	return fakeRow{found: f.rows[args[0].(string)], err: f.err}
}

func rule(kv ...any) validator.Rule {
	r := validator.Rule{Kind: "unique", Message: "taken", Params: map[string]any{}}
	for i := 0; i+1 < len(kv); i += 2 {
		r.Params[kv[i].(string)] = kv[i+1]
	}
	return r
}

func TestSetMembership(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sets := &fakeSets{members: map[string]map[string]bool{"usernames": {"alice": true}}}
	check := remote.SetMembership(sets)

	t.Run("fails for existing member", func(t *testing.T) {
		failed, err := check(ctx, "alice", rule("set", "usernames"))
		require.NoError(t, err)
		assert.True(t, failed)
	})

	t.Run("passes for new member", func(t *testing.T) {
		failed, err := check(ctx, "bob", rule("set", "usernames"))
		require.NoError(t, err)
		assert.False(t, failed)
	})

	t.Run("mustExist inverts the outcome", func(t *testing.T) {
		failed, err := check(ctx, "bob", rule("set", "usernames", "mustExist", true))
		require.NoError(t, err)
		assert.True(t, failed)
	})

	t.Run("empty values are not looked up", func(t *testing.T) {
		before := sets.calls
		failed, err := check(ctx, "", rule("set", "usernames"))
		require.NoError(t, err)
		assert.False(t, failed)
		assert.Equal(t, before, sets.calls)
	})

	t.Run("missing set param", func(t *testing.T) {
		_, err := check(ctx, "alice", rule())
		assert.ErrorIs(t, err, validator.ErrInvalidParam)
	})
}

func TestSetMembershipBackendError(t *testing.T) {
	t.Parallel()
	boom := errors.New("connection refused")
	check := remote.SetMembership(&fakeSets{err: boom})

	_, err := check(context.Background(), "alice", rule("set", "usernames"))
	assert.ErrorIs(t, err, remote.ErrUnavailable)
	assert.ErrorIs(t, err, boom)
}

func TestSetMembershipCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sets := &fakeSets{members: map[string]map[string]bool{"usernames": {"alice": true}}}
	c := cache.NewLRUCache[string, bool](10)
	check := remote.SetMembership(sets, remote.WithCache(c))

	for range 3 {
		failed, err := check(ctx, "alice", rule("set", "usernames"))
		require.NoError(t, err)
		assert.True(t, failed)
	}
	assert.Equal(t, 1, sets.calls)

	_, err := check(ctx, "alice", rule("set", "emails"))
	require.NoError(t, err)
	assert.Equal(t, 2, sets.calls, "different sets use different cache keys")
}

func TestSetMembershipErrorsAreNotCached(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sets := &fakeSets{err: errors.New("down")}
	check := remote.SetMembership(sets, remote.WithCache(cache.NewLRUCache[string, bool](10)))

	_, err := check(ctx, "alice", rule("set", "usernames"))
	require.Error(t, err)

	sets.mu.Lock()
	sets.err = nil
	sets.members = map[string]map[string]bool{"usernames": {"alice": true}}
	sets.mu.Unlock()

	failed, err := check(ctx, "alice", rule("set", "usernames"))
	require.NoError(t, err)
	assert.True(t, failed)
}

func TestExists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := &fakeDB{rows: map[string]bool{"alice@example.com": true}}
	check := remote.Exists(db)

	failed, err := check(ctx, "alice@example.com", rule("table", "users", "column", "email"))
	require.NoError(t, err)
	assert.True(t, failed)

	failed, err = check(ctx, "bob@example.com", rule("table", "users", "column", "email"))
	require.NoError(t, err)
	assert.False(t, failed)

	require.NotEmpty(t, db.queries)
	assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM "users" WHERE "email" = $1)`, db.queries[0])
}

func TestExistsQuotesIdentifiers(t *testing.T) {
	t.Parallel()
	db := &fakeDB{}
	check := remote.Exists(db)

	_, err := check(context.Background(), "x", rule("table", "auth.users", "column", `na"me`))
	require.NoError(t, err)
	assert.Equal(t, `SELECT EXISTS (SELECT 1 FROM "auth"."users" WHERE "na""me" = $1)`, db.queries[0])
}

func TestExistsParamsAndErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, err := remote.Exists(&fakeDB{})(ctx, "x", rule("table", "users"))
	assert.ErrorIs(t, err, validator.ErrInvalidParam)

	_, err = remote.Exists(&fakeDB{err: pgx.ErrNoRows})(ctx, "x", rule("table", "users", "column", "email"))
	assert.ErrorIs(t, err, remote.ErrUnavailable)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	undefined := &pgconn.PgError{Code: "42P01", Message: `relation "users" does not exist`}
	_, err = remote.Exists(&fakeDB{err: undefined})(ctx, "x", rule("table", "users", "column", "email"))
	assert.ErrorIs(t, err, remote.ErrMisconfigured)
	assert.NotErrorIs(t, err, remote.ErrUnavailable)
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()
	blocking := &deadlineSets{}
	check := remote.SetMembership(blocking, remote.WithTimeout(10*time.Millisecond))

	_, err := check(context.Background(), "alice", rule("set", "usernames"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type deadlineSets struct{}

func (deadlineSets) SIsMember(ctx context.Context, _ string, _ any) *redis.BoolCmd {
	<-ctx.Done()
	return redis.NewBoolResult(false, ctx.Err())
}

func TestRegisteredRemoteRuleDegradesToPass(t *testing.T) {
	t.Parallel()
	reg := validator.DefaultRegistry(
		validator.WithAsyncCheck("unique", remote.SetMembership(&fakeSets{err: errors.New("down")})),
	)
	exec := validator.NewExecutor(reg)

	msgs := exec.EvaluateRules(context.Background(), []validator.Rule{
		rule("set", "usernames"),
		{Kind: validator.KindMinLength, Message: "too short", Params: map[string]any{"min": 10}},
	}, "alice")
	assert.Equal(t, []string{"too short"}, msgs)
}

type fakeCounter struct {
	docs  map[string]map[string]bool
	err   error
	limit int64
}

func (f *fakeCounter) CountEqual(_ context.Context, collection, field string, value any, limit int64) (int64, error) {
	f.limit = limit
	if f.err != nil {
		return 0, f.err
	}
	if f.docs[collection+"."+field][value.(string)] {
		return 1, nil
	}
	return 0, nil
}

func TestDocumentExists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	counter := &fakeCounter{docs: map[string]map[string]bool{"users.email": {"alice@example.com": true}}}
	check := remote.DocumentExists(counter)

	failed, err := check(ctx, "alice@example.com", rule("collection", "users", "field", "email"))
	require.NoError(t, err)
	assert.True(t, failed)
	assert.Equal(t, int64(1), counter.limit)

	failed, err = check(ctx, "bob@example.com", rule("collection", "users", "field", "email", "mustExist", true))
	require.NoError(t, err)
	assert.True(t, failed, "mustExist fails for absent documents")

	_, err = check(ctx, "x", rule("collection", "users"))
	assert.ErrorIs(t, err, validator.ErrInvalidParam)

	_, err = remote.DocumentExists(&fakeCounter{err: errors.New("no primary")})(ctx, "x", rule("collection", "users", "field", "email"))
	assert.ErrorIs(t, err, remote.ErrUnavailable)
}
