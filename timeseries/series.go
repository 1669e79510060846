package timeseries

import (
	"errors"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrLength is returned when timestamps and values differ in length.
	ErrLength = errors.New("timeseries: timestamps and values must have the same length")
	// ErrColumnNotFound is returned when a named column does not exist.
	ErrColumnNotFound = errors.New("timeseries: column not found")
	// ErrNoData is returned when a CSV source has no data rows.
	ErrNoData = errors.New("timeseries: no data rows")
)

// Series represents a time series. NaN values are missing observations.
// Timestamps is either empty or as long as Values.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a named series without timestamps.
func New(name string, values []float64) *Series {
	return &Series{Name: name, Values: values}
}

// NewWithTimestamps creates a time series with explicit timestamps.
func NewWithTimestamps(name string, timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, ErrLength
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       name,
	}, nil
}

// Len returns the length of the series, missing values included.
func (s *Series) Len() int {
	return len(s.Values)
}

// NObs returns the number of non-missing values.
func (s *Series) NObs() int {
	n := 0
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Observed returns the non-missing values.
func (s *Series) Observed() []float64 {
	out := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Mean returns the mean of the non-missing values, NaN when there are none.
func (s *Series) Mean() float64 {
	obs := s.Observed()
	if len(obs) == 0 {
		return math.NaN()
	}
	return stat.Mean(obs, nil)
}

// Variance returns the sample variance of the non-missing values.
func (s *Series) Variance() float64 {
	obs := s.Observed()
	if len(obs) < 2 {
		return 0
	}
	return stat.Variance(obs, nil)
}

// Std returns the sample standard deviation of the non-missing values.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Lag returns the series shifted k periods forward, aligned with s: element t
// holds s[t-k] and the first k elements are missing.
func (s *Series) Lag(k int) *Series {
	out := s.Copy()
	out.Name = s.Name + "_lag"
	if k <= 0 {
		return out
	}
	for t := range out.Values {
		if t < k {
			out.Values[t] = math.NaN()
		} else {
			out.Values[t] = s.Values[t-k]
		}
	}
	return out
}

// Diff returns the first difference, aligned with s. The first element is
// missing.
func (s *Series) Diff() *Series {
	out := s.Copy()
	out.Name = s.Name + "_diff"
	for t := range out.Values {
		if t == 0 {
			out.Values[t] = math.NaN()
		} else {
			out.Values[t] = s.Values[t] - s.Values[t-1]
		}
	}
	return out
}

// Log applies the natural logarithm. Non-positive values become missing.
func (s *Series) Log() *Series {
	out := s.Copy()
	out.Name = s.Name + "_log"
	for i, v := range out.Values {
		if v > 0 {
			out.Values[i] = math.Log(v)
		} else {
			out.Values[i] = math.NaN()
		}
	}
	return out
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}, Name: s.Name}
	}

	out := &Series{
		Values: append([]float64(nil), s.Values[start:end]...),
		Name:   s.Name,
	}
	if len(s.Timestamps) == len(s.Values) {
		out.Timestamps = append([]time.Time(nil), s.Timestamps[start:end]...)
	}
	return out
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	out := &Series{
		Values: append([]float64(nil), s.Values...),
		Name:   s.Name,
	}
	if len(s.Timestamps) > 0 {
		out.Timestamps = append([]time.Time(nil), s.Timestamps...)
	}
	return out
}
