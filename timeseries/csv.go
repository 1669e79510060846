package timeseries

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn string // Column name for dates (optional)
	DateFormat string // Date format (default: "2006-01-02")
	Delimiter  rune   // Field delimiter (default: ',')
	SkipRows   int    // Number of rows to skip before the header
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateFormat: "2006-01-02",
		Delimiter:  ',',
	}
}

// dateFormats are tried after CSVOptions.DateFormat.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
	"2006",
}

// LoadCSV loads every numeric column of a CSV file into a frame.
func LoadCSV(filename string, opts *CSVOptions) (*Frame, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadCSV(file, opts)
}

// ReadCSV reads a frame from CSV with a header row. Empty, NA, NaN and null
// cells are missing values. Columns holding any other non-numeric text are
// skipped, except the date column, which becomes the frame index when every
// row parses.
func ReadCSV(r io.Reader, opts *CSVOptions) (*Frame, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, err
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.Trim(h, "\""))
	}

	dateIdx := -1
	for i, h := range header {
		if (opts.DateColumn != "" && h == opts.DateColumn) ||
			(opts.DateColumn == "" && dateIdx == -1 && isDateHeader(h)) {
			dateIdx = i
		}
	}
	if opts.DateColumn != "" && dateIdx == -1 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, opts.DateColumn)
	}

	values := make([][]float64, len(header))
	numeric := make([]bool, len(header))
	for i := range numeric {
		numeric[i] = i != dateIdx
	}
	var index []time.Time
	datesOK := dateIdx >= 0

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows++

		for i := range header {
			cell := ""
			if i < len(record) {
				cell = strings.TrimSpace(strings.Trim(record[i], "\""))
			}
			if i == dateIdx {
				if datesOK {
					ts, ok := parseDate(cell, opts.DateFormat)
					datesOK = ok
					index = append(index, ts)
				}
				continue
			}
			if !numeric[i] {
				continue
			}
			v, ok := parseValue(cell)
			if !ok {
				numeric[i] = false
				continue
			}
			values[i] = append(values[i], v)
		}
	}
	if rows == 0 {
		return nil, ErrNoData
	}

	if !datesOK {
		index = nil
	}
	frame := &Frame{Index: index}
	for i, h := range header {
		if !numeric[i] {
			continue
		}
		s := &Series{Name: h, Values: values[i]}
		if index != nil {
			s.Timestamps = index
		}
		if err := frame.Add(s); err != nil {
			return nil, err
		}
	}
	return frame, nil
}

func isDateHeader(h string) bool {
	switch h {
	case "ds", "date", "Date", "Month", "Year", "qtr", "time":
		return true
	}
	return false
}

func parseDate(cell, format string) (time.Time, bool) {
	for _, f := range append([]string{format}, dateFormats...) {
		if f == "" {
			continue
		}
		if ts, err := time.Parse(f, cell); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func parseValue(cell string) (float64, bool) {
	switch strings.ToLower(cell) {
	case "", "na", "nan", "null", ".":
		return math.NaN(), true
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// WriteCSV writes the frame with a header row. Missing values are written as
// NA and the index, when present, as a leading ds column.
func WriteCSV(w io.Writer, f *Frame) error {
	bw := bufio.NewWriter(w)
	writer := csv.NewWriter(bw)

	header := f.Names()
	withIndex := len(f.Index) == f.Len() && f.Len() > 0
	if withIndex {
		header = append([]string{"ds"}, header...)
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for t := 0; t < f.Len(); t++ {
		row := make([]string, 0, len(header))
		if withIndex {
			row = append(row, f.Index[t].Format("2006-01-02"))
		}
		for _, c := range f.columns {
			v := c.Values[t]
			if math.IsNaN(v) {
				row = append(row, "NA")
			} else {
				row = append(row, strconv.FormatFloat(v, 'f', -1, 64))
			}
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return bw.Flush()
}

// SaveCSV writes the frame to a file.
func SaveCSV(f *Frame, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteCSV(file, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
