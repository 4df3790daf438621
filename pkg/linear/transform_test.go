package linear_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dzmitry-lahoda-forks/linear-type/pkg/linear"
)

func TestMapTransformsValue(t *testing.T) {
	t.Parallel()

	doubled := linear.Map(linear.New(5), func(x int) int { return x * 2 })
	assert.Equal(t, 10, doubled.IntoInner())

	str := linear.Map(linear.New(123), strconv.Itoa)
	assert.Equal(t, "123", str.IntoInner())
}

func TestMapConsumesSource(t *testing.T) {
	t.Parallel()

	src := linear.New(1)
	out := linear.Map(src, func(x int) int { return x + 1 })

	assert.PanicsWithValue(t, "linear: value already consumed", func() {
		_ = src.IntoInner()
	})
	assert.Equal(t, 2, out.IntoInner())
}

func TestMapInvokesStepExactlyOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	out := linear.Map(linear.New("x"), func(s string) string {
		calls++
		return s + "y"
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, "xy", out.IntoInner())
	assert.Equal(t, 1, calls)
}

func TestTryMapSuccess(t *testing.T) {
	t.Parallel()

	out := linear.TryMap(linear.New("41"), strconv.Atoi)
	assert.Equal(t, 41, linear.UnwrapOk(out))
}

func TestTryMapError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	out := linear.TryMap(linear.New(1), func(int) (int, error) {
		return 0, boom
	})

	r := out.IntoInner()
	assert.False(t, r.IsOk())
	assert.Equal(t, boom, r.Err())
}

func TestSpliceForksIndependentObligations(t *testing.T) {
	t.Parallel()

	a, b := linear.Splice(linear.New(9))

	assert.Equal(t, 9, a.IntoInner())
	// The other half is still unconsumed and tracked on its own.
	assert.Equal(t, 9, b.IntoInner())
}

func TestSpliceConsumesSource(t *testing.T) {
	t.Parallel()

	src := linear.New(3)
	a, b := linear.Splice(src)
	assert.PanicsWithValue(t, "linear: value already consumed", func() {
		_ = src.IntoInner()
	})
	a.Destroy()
	b.Destroy()
}

func TestMergeJoinsValues(t *testing.T) {
	t.Parallel()

	p := linear.Merge(linear.New(1), linear.New("a")).IntoInner()
	assert.Equal(t, 1, p.First)
	assert.Equal(t, "a", p.Second)
}

func TestSpliceMergeRoundTrip(t *testing.T) {
	t.Parallel()

	left, right := linear.Splice(linear.New("v"))
	joined := linear.Merge(left, linear.Merge(right, linear.New("w")))

	p := joined.IntoInner()
	assert.Equal(t, "v", p.First)
	assert.Equal(t, "v", p.Second.First)
	assert.Equal(t, "w", p.Second.Second)
}

func TestMergeConsumesBothSources(t *testing.T) {
	t.Parallel()

	a := linear.New(1)
	b := linear.New(2)
	joined := linear.Merge(a, b)

	require.PanicsWithValue(t, "linear: value already consumed", func() {
		_ = a.IntoInner()
	})
	require.PanicsWithValue(t, "linear: value already consumed", func() {
		_ = b.IntoInner()
	})
	joined.Destroy()
}
