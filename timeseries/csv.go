package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
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
	DateColumn  string // Column name for dates (default: first column)
	ValueColumn string // Column name for values (default: last column)
	DateFormat  string // Preferred date format, tried before the built-in ones
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
	KeepMissing bool   // Keep missing values as NaN instead of dropping them
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateFormat: "2006-01-02",
		HasHeader:  true,
		Delimiter:  ',',
	}
}

var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02-01-2006",
	"01/02/2006",
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
// Rows whose value is empty, NA, NaN or null are treated as missing.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	dateIdx, valueIdx := 0, 1
	name := opts.ValueColumn

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		valueIdx = len(header) - 1
		if opts.ValueColumn != "" {
			valueIdx = -1
		}
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case opts.ValueColumn != "" && h == opts.ValueColumn:
				valueIdx = i
			case opts.DateColumn != "" && h == opts.DateColumn:
				dateIdx = i
			}
		}
		if valueIdx == -1 {
			return nil, fmt.Errorf("value column %q not found", opts.ValueColumn)
		}
		if name == "" {
			name = strings.TrimSpace(strings.Trim(header[valueIdx], "\""))
		}
	}

	var values []float64
	var timestamps []time.Time

	line := opts.SkipRows
	if opts.HasHeader {
		line++
	}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		if dateIdx >= len(record) || valueIdx >= len(record) {
			return nil, fmt.Errorf("line %d: expected at least %d fields, got %d", line, max(dateIdx, valueIdx)+1, len(record))
		}

		val := math.NaN()
		valStr := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		switch valStr {
		case "", "NA", "NaN", "nan", "null":
		default:
			v, err := strconv.ParseFloat(valStr, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid value %q: %w", line, valStr, err)
			}
			val = v
		}
		if math.IsNaN(val) && !opts.KeepMissing {
			continue
		}

		ts, err := parseDate(strings.TrimSpace(strings.Trim(record[dateIdx], "\"")), opts.DateFormat)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		timestamps = append(timestamps, ts)
		values = append(values, val)
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	series, err := NewWithTimestamps(timestamps, values)
	if err != nil {
		return nil, err
	}
	series.Name = name
	return series, nil
}

func parseDate(s, preferred string) (time.Time, error) {
	if preferred != "" {
		if ts, err := time.Parse(preferred, s); err == nil {
			return ts, nil
		}
	}
	for _, layout := range dateFormats {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// SaveCSV saves a time series to a CSV file.
func SaveCSV(series *Series, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, series)
}

// WriteCSV writes a series as "date,<name>" rows. Missing values are written as NaN.
func WriteCSV(w io.Writer, series *Series) error {
	writer := bufio.NewWriter(w)

	name := series.Name
	if name == "" {
		name = "value"
	}
	if _, err := writer.WriteString("date," + name + "\n"); err != nil {
		return err
	}

	for i, v := range series.Values {
		writer.WriteString(series.Timestamps[i].Format("2006-01-02"))
		writer.WriteString(",")
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString("\n")
	}

	return writer.Flush()
}
