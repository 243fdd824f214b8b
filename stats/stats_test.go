package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	max, min, avg := Summary([]uint32{4, 9, 1, 6})
	assert.Equal(t, uint32(9), max)
	assert.Equal(t, uint32(1), min)
	assert.Equal(t, uint32(5), avg)

	max, min, avg = Summary(nil)
	assert.Zero(t, max)
	assert.Zero(t, min)
	assert.Zero(t, avg)
}

func TestSummaryNoOverflow(t *testing.T) {
	_, _, avg := Summary([]uint32{4294967295, 4294967295})
	assert.Equal(t, uint32(4294967295), avg)
}

func TestAnalyzeRange(t *testing.T) {
	e, o := AnalyzeRange(0, 10)
	assert.Equal(t, 5, e)
	assert.Equal(t, 5, o)

	e, o = AnalyzeRange(1, 4)
	assert.Equal(t, 1, e)
	assert.Equal(t, 2, o)

	e, o = AnalyzeRange(5, 5)
	assert.Zero(t, e+o)
}

func TestSafeDivAndElement(t *testing.T) {
	q, ok := SafeDiv(7, 2)
	assert.True(t, ok)
	assert.Equal(t, 3, q)
	_, ok = SafeDiv(1, 0)
	assert.False(t, ok)

	xs := []int{10, 20, 30}
	v, ok := Element(xs, 2)
	assert.True(t, ok)
	assert.Equal(t, 30, v)
	_, ok = Element(xs, 3)
	assert.False(t, ok)
	_, ok = Element(xs, -1)
	assert.False(t, ok)
}

func TestRunAppStats(t *testing.T) {
	assert.Equal(t, AppStats{Requests: 6, Errors: 1}, RunAppStats(5))
	assert.Equal(t, AppStats{Requests: 1, Errors: 1}, RunAppStats(0))
}
