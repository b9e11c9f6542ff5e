package random

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weights []int

func (w weights) Len() int         { return len(w) }
func (w weights) Weight(i int) int { return w[i] }

func TestSample(t *testing.T) {
	numbers := []int64{10, 20, 30, 40, 50, 60}
	got := Sample(New(1), numbers, 3)
	require.Len(t, got, 3)
	seen := map[int64]bool{}
	for _, v := range got {
		assert.Contains(t, numbers, v)
		assert.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}
	assert.Equal(t, got, Sample(New(1), numbers, 3))
	assert.Equal(t, []int64{10, 20, 30, 40, 50, 60}, numbers)

	assert.Equal(t, numbers, Sample(New(1), numbers, 10))
	assert.Empty(t, Sample(New(1), nil, 2))
}

func TestShuffle(t *testing.T) {
	list := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	Shuffle(New(9), len(list), func(i, j int) { list[i], list[j] = list[j], list[i] })
	sorted := append([]int(nil), list...)
	sort.Ints(sorted)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, sorted)

	again := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	Shuffle(New(9), len(again), func(i, j int) { again[i], again[j] = again[j], again[i] })
	assert.Equal(t, list, again)
}

func TestPickWeighted(t *testing.T) {
	g := New(11)
	for i := 0; i < 200; i++ {
		got, err := PickWeighted(g, weights{0, 5, 0}, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, got)
	}

	got, err := PickWeighted(g, weights{3, 0, 1, 2}, 4)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 2, 3}, got)

	_, err = PickWeighted(g, weights{0, 0}, 1)
	assert.ErrorIs(t, err, ErrNoWeight)
	_, err = PickWeighted(g, weights{2, -1}, 1)
	assert.ErrorIs(t, err, ErrNoWeight)
}

func TestPickWeightedProportion(t *testing.T) {
	g := New(5)
	counts := make([]int, 2)
	for i := 0; i < 40000; i++ {
		got, err := PickWeighted(g, weights{1, 3}, 1)
		require.NoError(t, err)
		counts[got[0]]++
	}
	assert.InDelta(t, 0.75, float64(counts[1])/40000, 0.02)
}

func TestParseNumber(t *testing.T) {
	g := New(2)
	e, err := ParseNumber("12")
	require.NoError(t, err)
	assert.Equal(t, []int{12}, e.Eval(g, 1))

	e, err = ParseNumber("1~10")
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		v := e.Eval(g, 1)
		require.Len(t, v, 1)
		assert.True(t, v[0] >= 1 && v[0] <= 10)
	}

	e, err = ParseNumber("1,2,4")
	require.NoError(t, err)
	assert.Equal(t, 3, e.Len())
	assert.ElementsMatch(t, []int{1, 2, 4}, e.Eval(g, 5))

	e, err = ParseNumber("1:0, 7~9:50")
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		v := e.Eval(g, 1)
		require.Len(t, v, 1)
		assert.True(t, v[0] >= 7 && v[0] <= 9)
	}
	assert.Equal(t, 50, e.Weight(1))
}

func TestParseNumberErrors(t *testing.T) {
	for _, expr := range []string{"", "a", "3~1", "1~x", "1:x", "1:-1", "1:2,3", "1:0,2:0"} {
		_, err := ParseNumber(expr)
		assert.Error(t, err, expr)
	}
	_, err := ParseNumber("3~1")
	assert.ErrorIs(t, err, ErrInvalidExpr)
	_, err = ParseNumber("1:0")
	assert.ErrorIs(t, err, ErrNoWeight)
}

func TestNumbers(t *testing.T) {
	got, err := Numbers(New(8), "2~10:40#10:20,10~45:30,40~80:500#")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0] >= 2 && got[0] <= 10)
	assert.True(t, got[1] >= 10 && got[1] <= 80)

	again, err := Numbers(New(8), "2~10:40#10:20,10~45:30,40~80:500#")
	require.NoError(t, err)
	assert.Equal(t, got, again)

	_, err = Numbers(New(8), "1#x")
	assert.ErrorIs(t, err, ErrInvalidExpr)
}

func TestNegativeCount(t *testing.T) {
	g := New(1)
	assert.Empty(t, Sample(g, []int64{1, 2, 3}, -1))
	assert.Empty(t, Sample(g, []int64{1, 2, 3}, 0))

	got, err := PickWeighted(g, weights{1, 2}, -1)
	require.NoError(t, err)
	assert.Empty(t, got)

	e, err := ParseNumber("1:2,3:4")
	require.NoError(t, err)
	assert.Empty(t, e.Eval(g, -1))
	e, err = ParseNumber("1,2,3")
	require.NoError(t, err)
	assert.Empty(t, e.Eval(g, -1))
	assert.Equal(t, uint64(0), g.Draws())
}

func TestEvalFullRange(t *testing.T) {
	e, err := ParseNumber("-9223372036854775808~9223372036854775807")
	require.NoError(t, err)
	g := New(1234)
	distinct := map[int]bool{}
	for i := 0; i < 5; i++ {
		v := e.Eval(g, 1)
		require.Len(t, v, 1)
		distinct[v[0]] = true
	}
	assert.Len(t, distinct, 5)

	e, err = ParseNumber("9223372036854775806~9223372036854775807")
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		v := e.Eval(g, 1)
		assert.True(t, int64(v[0]) >= 9223372036854775806)
	}
}
