package validator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestRegistryRegister(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty kind", func(t *testing.T) {
		reg := validator.NewRegistry()
		err := reg.Register("", func(any, validator.Rule) bool { return true })
		assert.ErrorIs(t, err, validator.ErrEmptyKind)
		assert.ErrorIs(t, reg.RegisterAsync("", func(context.Context, any, validator.Rule) (bool, error) { return true, nil }), validator.ErrEmptyKind)
	})

	t.Run("rejects nil routines", func(t *testing.T) {
		reg := validator.NewRegistry()
		assert.ErrorIs(t, reg.Register("x", nil), validator.ErrNilRoutine)
		assert.ErrorIs(t, reg.RegisterAsync("x", nil), validator.ErrNilRoutine)
		assert.False(t, reg.Has("x"))
	})

	t.Run("later registration replaces earlier", func(t *testing.T) {
		reg := validator.NewRegistry(
			validator.WithCheck("flag", func(any, validator.Rule) bool { return false }),
			validator.WithCheck("flag", func(any, validator.Rule) bool { return true }),
		)
		failed, err := reg.Resolve("flag")(context.Background(), nil, validator.Rule{}).Await()
		require.NoError(t, err)
		assert.True(t, failed)
	})
}

func TestRegistryResolve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("sync routine resolves immediately", func(t *testing.T) {
		reg := validator.NewRegistry(validator.WithCheck("always", func(any, validator.Rule) bool { return true }))
		future := reg.Resolve("always")(ctx, "v", validator.Rule{Kind: "always"})
		require.True(t, future.IsComplete())
		failed, err := future.Await()
		require.NoError(t, err)
		assert.True(t, failed)
	})

	t.Run("async routine receives value and rule", func(t *testing.T) {
		var gotValue any
		var gotRule validator.Rule
		reg := validator.NewRegistry(validator.WithAsyncCheck("remote", func(_ context.Context, value any, rule validator.Rule) (bool, error) {
			gotValue = value
			gotRule = rule
			return true, nil
		}))
		rule := validator.Rule{Kind: "remote", Message: "m", Params: map[string]any{"set": "users"}}
		failed, err := reg.Resolve("remote")(ctx, "alice", rule).Await()
		require.NoError(t, err)
		assert.True(t, failed)
		assert.Equal(t, "alice", gotValue)
		assert.Equal(t, rule, gotRule)
	})

	t.Run("async routine errors are propagated", func(t *testing.T) {
		boom := errors.New("boom")
		reg := validator.NewRegistry(validator.WithAsyncCheck("remote", func(context.Context, any, validator.Rule) (bool, error) {
			return false, boom
		}))
		_, err := reg.Resolve("remote")(ctx, nil, validator.Rule{}).Await()
		assert.ErrorIs(t, err, boom)
	})

	t.Run("unknown kind never fails", func(t *testing.T) {
		reg := validator.NewRegistry()
		future := reg.Resolve("does-not-exist")(ctx, nil, validator.Rule{Kind: "does-not-exist"})
		require.True(t, future.IsComplete())
		failed, err := future.Await()
		require.NoError(t, err)
		assert.False(t, failed)
	})

	t.Run("nil registry never fails", func(t *testing.T) {
		var reg *validator.Registry
		failed, err := reg.Resolve("required")(ctx, nil, validator.Rule{}).Await()
		require.NoError(t, err)
		assert.False(t, failed)
	})
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()
	reg := validator.DefaultRegistry()

	for _, kind := range []string{
		validator.KindRequired, validator.KindMinLength, validator.KindMaxLength,
		validator.KindLength, validator.KindMin, validator.KindMax, validator.KindPattern,
		validator.KindEmail, validator.KindURL, validator.KindPhone, validator.KindEnum,
		validator.KindNotIn, validator.KindUUID,
	} {
		assert.True(t, reg.Has(kind), kind)
	}

	kinds := reg.Kinds()
	assert.IsIncreasing(t, kinds)
	assert.Contains(t, kinds, "required")
}

func TestDefaultRegistryExtension(t *testing.T) {
	t.Parallel()
	reg := validator.DefaultRegistry(
		validator.WithCheck(validator.KindRequired, func(any, validator.Rule) bool { return false }),
	)
	failed, err := reg.Resolve(validator.KindRequired)(context.Background(), nil, validator.Rule{}).Await()
	require.NoError(t, err)
	assert.False(t, failed, "options run after builtins and may override them")
}
