package timeseries

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesStatistics(t *testing.T) {
	s := New("y", []float64{1, 2, math.NaN(), 3, 4, 5})

	assert.Equal(t, 6, s.Len())
	assert.Equal(t, 5, s.NObs())
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, s.Observed())
	assert.InDelta(t, 3, s.Mean(), 1e-12)
	assert.InDelta(t, 2.5, s.Variance(), 1e-12)
	assert.InDelta(t, math.Sqrt(2.5), s.Std(), 1e-12)

	empty := New("e", []float64{math.NaN()})
	assert.True(t, math.IsNaN(empty.Mean()))
	assert.Equal(t, 0.0, empty.Variance())
}

func TestLagIsAligned(t *testing.T) {
	s := New("y", []float64{1, 2, 3, 4})
	lag := s.Lag(2)

	require.Equal(t, s.Len(), lag.Len())
	assert.True(t, math.IsNaN(lag.Values[0]))
	assert.True(t, math.IsNaN(lag.Values[1]))
	assert.Equal(t, []float64{1, 2}, lag.Values[2:])
	assert.Equal(t, "y_lag", lag.Name)
	// The source is untouched.
	assert.Equal(t, []float64{1, 2, 3, 4}, s.Values)

	assert.Equal(t, s.Values, s.Lag(0).Values)
}

func TestDiffAndLog(t *testing.T) {
	s := New("y", []float64{1, 3, 6, -1})

	d := s.Diff()
	assert.True(t, math.IsNaN(d.Values[0]))
	assert.Equal(t, []float64{2, 3, -7}, d.Values[1:])

	l := s.Log()
	assert.InDelta(t, math.Log(3), l.Values[1], 1e-15)
	assert.True(t, math.IsNaN(l.Values[3]))
}

func TestSliceAndCopy(t *testing.T) {
	ts := []time.Time{
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	s, err := NewWithTimestamps("y", ts, []float64{1, 2, 3})
	require.NoError(t, err)

	sub := s.Slice(1, 10)
	assert.Equal(t, []float64{2, 3}, sub.Values)
	assert.Equal(t, ts[1:], sub.Timestamps)
	assert.Equal(t, 0, s.Slice(2, 1).Len())

	c := s.Copy()
	c.Values[0] = 100
	assert.Equal(t, 1.0, s.Values[0])

	_, err = NewWithTimestamps("y", ts[:1], []float64{1, 2})
	assert.ErrorIs(t, err, ErrLength)
}

func TestFrameDesign(t *testing.T) {
	f, err := NewFrame(nil,
		New("y", []float64{1, 2, 3, 4}),
		New("x", []float64{5, 6, 7, 8}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "x"}, f.Names())

	y, x, names, err := f.Design("y", []string{"x"}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, y)
	assert.Equal(t, []string{"x", "y.L1", "y.L2"}, names)
	require.Len(t, x, 4)
	assert.Equal(t, []float64{8, 3, 2}, x[3])
	assert.True(t, math.IsNaN(x[1][2]))

	y, x, names, err = f.Design("x", nil, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6, 7, 8}, y)
	assert.Nil(t, x)
	assert.Empty(t, names)

	_, _, _, err = f.Design("z", nil, 0)
	assert.ErrorIs(t, err, ErrColumnNotFound)

	assert.ErrorIs(t, f.Add(New("short", []float64{1})), ErrLength)
}
