package linear_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzmitry-lahoda-forks/linear-type/pkg/linear"
)

func TestMapOkAppliesOnSuccess(t *testing.T) {
	t.Parallel()

	out := linear.MapOk(linear.New(linear.Ok(3)), func(x int) int { return x + 1 })
	assert.Equal(t, 4, linear.UnwrapOk(out))
}

func TestMapOkShortCircuitsOnFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	invoked := false
	out := linear.MapOk(linear.New(linear.Err[int](boom)), func(x int) int {
		invoked = true
		return x + 1
	})

	assert.False(t, invoked)

	r := out.IntoInner()
	assert.False(t, r.IsOk())
	assert.Equal(t, boom, r.Err())
}

func TestThenOkChains(t *testing.T) {
	t.Parallel()

	out := linear.ThenOk(linear.New(linear.Ok(2)), func(x int) (int, error) {
		return x * 10, nil
	})
	assert.Equal(t, 20, linear.UnwrapOk(out))
}

func TestThenOkConvertsErrorToFailureTrack(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	out := linear.ThenOk(linear.New(linear.Ok(2)), func(int) (int, error) {
		return 0, boom
	})

	r := out.IntoInner()
	assert.False(t, r.IsOk())
	assert.Equal(t, boom, r.Err())
}

func TestThenOkShortCircuitsOnFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	invoked := false
	out := linear.ThenOk(linear.New(linear.Err[int](boom)), func(int) (int, error) {
		invoked = true
		return 0, nil
	})

	assert.False(t, invoked)
	assert.Equal(t, boom, out.IntoInner().Err())
}

func TestUnwrapOkReturnsValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, linear.UnwrapOk(linear.New(linear.Ok(7))))
}

func TestUnwrapOkPanicsCarryingError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic on unwrap of failure")
		failure, ok := r.(*linear.UnwrapFailure)
		require.True(t, ok, "panic value %v is not *UnwrapFailure", r)
		assert.Equal(t, boom, failure.Err)
		assert.ErrorIs(t, failure, boom)
	}()

	_ = linear.UnwrapOk(linear.New(linear.Err[int](boom)))
}

func TestResultAccessors(t *testing.T) {
	t.Parallel()

	ok := linear.Ok("v")
	assert.True(t, ok.IsOk())
	assert.Equal(t, "v", ok.Value())
	assert.NoError(t, ok.Err())

	boom := errors.New("boom")
	fail := linear.Err[string](boom)
	assert.False(t, fail.IsOk())
	assert.Empty(t, fail.Value())
	assert.Equal(t, boom, fail.Err())
}
