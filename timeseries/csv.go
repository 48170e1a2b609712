package timeseries

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
//
// The loader expects the first column to be an index (dates or sample
// numbers) and selects one value column, by name or by 0-based position
// among the non-index columns. When Column is empty the rightmost column is
// used.
type CSVOptions struct {
	Column     string  // value column: name or 0-based index (default: rightmost)
	DateFormat string  // date format for the index column (default: "2006-01-02")
	HasHeader  bool    // whether CSV has a header row (default: true)
	Delimiter  rune    // field delimiter (default: ',')
	Split      float64 // keep only the leading fraction (<=1) or count (>1) of rows
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateFormat: "2006-01-02",
		HasHeader:  true,
		Delimiter:  ',',
	}
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a time series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	valueIdx := -1
	name := opts.Column

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		valueIdx, name = resolveColumn(header, opts.Column)
		if valueIdx < 0 {
			return nil, errors.New("value column not found in CSV header")
		}
	}

	var values []float64
	var timestamps []time.Time

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if valueIdx < 0 {
			// headerless file: last column holds values
			valueIdx = len(record) - 1
		}
		if valueIdx >= len(record) {
			continue
		}

		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if valStr == "" || valStr == "NA" || valStr == "NaN" || valStr == "null" {
			continue
		}
		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			continue // skip non-numeric rows
		}
		values = append(values, val)

		if ts, ok := parseDate(record[0], opts.DateFormat); ok {
			timestamps = append(timestamps, ts)
		}
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	if n := splitIndex(opts.Split, len(values)); n < len(values) {
		values = values[:n]
		if len(timestamps) > n {
			timestamps = timestamps[:n]
		}
	}

	var series *Series
	if len(timestamps) == len(values) {
		series = &Series{Timestamps: timestamps, Values: values}
	} else {
		series = New(values)
	}
	series.Name = name
	return series, nil
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.Column = column
	return LoadCSV(filename, opts)
}

// resolveColumn maps a column selector (name, 0-based index string, or
// empty for rightmost) to a field index and display name. The first column
// is the index column and is never selected implicitly.
func resolveColumn(header []string, column string) (int, string) {
	clean := make([]string, len(header))
	for i, h := range header {
		clean[i] = strings.TrimSpace(strings.Trim(h, "\""))
	}

	if column == "" {
		idx := len(clean) - 1
		return idx, clean[idx]
	}
	for i, h := range clean {
		if h == column {
			return i, h
		}
	}
	if n, err := strconv.Atoi(column); err == nil {
		// numeric selector counts data columns, skipping the index column
		idx := n + 1
		if idx >= 1 && idx < len(clean) {
			return idx, clean[idx]
		}
	}
	return -1, column
}

// splitIndex converts a split setting (fraction for <=1, count for >1) to
// a row count.
func splitIndex(split float64, n int) int {
	switch {
	case split <= 0:
		return n
	case split > 1:
		return int(split)
	default:
		return int(split * float64(n))
	}
}

func parseDate(field, format string) (time.Time, bool) {
	dateStr := strings.TrimSpace(strings.Trim(field, "\""))
	formats := []string{
		format,
		"2006-01-02",
		"2006-01-02T15:04:05",
		"2006/01/02",
		"01/02/2006",
		"02-Jan-2006",
		"2006",
	}
	for _, f := range formats {
		if ts, err := time.Parse(f, dateStr); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
