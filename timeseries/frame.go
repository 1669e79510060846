package timeseries

import (
	"fmt"
	"time"
)

// Frame is a set of aligned series sharing one index.
type Frame struct {
	Index   []time.Time
	columns []*Series
}

// NewFrame creates a frame from series of equal length. Index may be nil.
func NewFrame(index []time.Time, series ...*Series) (*Frame, error) {
	f := &Frame{Index: index}
	for _, s := range series {
		if err := f.Add(s); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	if len(f.columns) > 0 {
		return f.columns[0].Len()
	}
	return len(f.Index)
}

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name
	}
	return names
}

// Add appends a column. Its length must match the frame.
func (f *Frame) Add(s *Series) error {
	if len(f.columns) > 0 || len(f.Index) > 0 {
		if s.Len() != f.Len() {
			return fmt.Errorf("%w: column %q has %d rows, frame has %d", ErrLength, s.Name, s.Len(), f.Len())
		}
	}
	f.columns = append(f.columns, s)
	return nil
}

// Column returns the named column.
func (f *Frame) Column(name string) (*Series, error) {
	for _, c := range f.columns {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}

// Design builds regression inputs from the frame: the endog column, the named
// exog columns and lags 1..lags of endog, in that order. Lagged rows before
// the start of the sample are missing (NaN), so their observations drop out
// of estimation.
func (f *Frame) Design(endog string, exog []string, lags int) ([]float64, [][]float64, []string, error) {
	y, err := f.Column(endog)
	if err != nil {
		return nil, nil, nil, err
	}

	cols := make([]*Series, 0, len(exog)+lags)
	for _, name := range exog {
		c, err := f.Column(name)
		if err != nil {
			return nil, nil, nil, err
		}
		cols = append(cols, c)
	}
	for l := 1; l <= lags; l++ {
		c := y.Lag(l)
		c.Name = fmt.Sprintf("%s.L%d", endog, l)
		cols = append(cols, c)
	}

	names := make([]string, len(cols))
	for j, c := range cols {
		names[j] = c.Name
	}
	if len(cols) == 0 {
		return append([]float64(nil), y.Values...), nil, names, nil
	}

	x := make([][]float64, y.Len())
	for t := range x {
		row := make([]float64, len(cols))
		for j, c := range cols {
			row[j] = c.Values[t]
		}
		x[t] = row
	}
	return append([]float64(nil), y.Values...), x, names, nil
}
