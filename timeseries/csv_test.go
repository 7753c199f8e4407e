package timeseries

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `date,y
2020-01-01,100
2020-01-02,101
2020-01-03,102
2020-01-04,103
2020-01-05,104`

	series, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 5 {
		t.Errorf("Expected 5 observations, got %d", series.Len())
	}

	expected := []float64{100, 101, 102, 103, 104}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}

	if series.Name != "y" {
		t.Errorf("Expected name taken from header, got %q", series.Name)
	}
}

func TestLoadCSVSemicolonFixture(t *testing.T) {
	csvData := `;Prec [m/d] 081_JOURE;Evap [m/d] 235_DE-KOOY;Head [m] B11C0329_EAGMARYP
1965-01-01;0.0012;0.0002;
1965-01-02;;0.0003;-0.41
1965-01-03;0.0;0.0001;-0.42`

	opts := DefaultCSVOptions()
	opts.Delimiter = ';'
	opts.ValueColumn = "Prec [m/d] 081_JOURE"

	prec, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if prec.Len() != 2 {
		t.Fatalf("Expected missing precipitation to be dropped, got %d observations", prec.Len())
	}
	if prec.Values[1] != 0 {
		t.Errorf("Expected explicit zero to be kept, got %f", prec.Values[1])
	}
	if !prec.Timestamps[1].Equal(time.Date(1965, 1, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected timestamp %s", prec.Timestamps[1])
	}

	opts.ValueColumn = "Head [m] B11C0329_EAGMARYP"
	opts.KeepMissing = true
	head, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	if head.Len() != 3 || !math.IsNaN(head.Values[0]) {
		t.Errorf("Expected 3 observations with a leading NaN, got %v", head.Values)
	}
}

func TestLoadCSVWithNAValues(t *testing.T) {
	csvData := `date,y
2020-01-01,100
2020-01-02,NA
2020-01-03,102
2020-01-04,NaN
2020-01-05,104`

	series, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	expected := []float64{100, 102, 104}
	if series.Len() != len(expected) {
		t.Fatalf("Expected %d observations (NA values skipped), got %d", len(expected), series.Len())
	}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}
}

func TestLoadCSVErrors(t *testing.T) {
	testCases := []struct {
		name    string
		csvData string
		column  string
	}{
		{"missing column", "date,y\n2020-01-01,1", "rain"},
		{"bad value", "date,y\n2020-01-01,abc", ""},
		{"bad date", "date,y\nyesterday,1", ""},
		{"unsorted", "date,y\n2020-01-02,1\n2020-01-01,2", ""},
		{"no data", "date,y\n2020-01-01,NA", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultCSVOptions()
			opts.ValueColumn = tc.column
			if _, err := LoadCSVFromReader(strings.NewReader(tc.csvData), opts); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestLoadCSVDateFormats(t *testing.T) {
	testCases := []struct {
		name    string
		csvData string
	}{
		{"ISO format", "date,y\n2020-01-01,100\n2020-01-02,101"},
		{"Datetime", "date,y\n2020-01-01 00:00:00,100\n2020-01-02 00:00:00,101"},
		{"Slashes", "date,y\n2020/01/01,100\n2020/01/02,101"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			series, err := LoadCSVFromReader(strings.NewReader(tc.csvData), DefaultCSVOptions())
			if err != nil {
				t.Fatalf("Failed to load CSV: %v", err)
			}
			if series.Len() != 2 {
				t.Errorf("Expected 2 observations, got %d", series.Len())
			}
		})
	}
}

func TestWriteCSV(t *testing.T) {
	s := NewDaily(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), []float64{0.5, -1.25})
	s.Name = "SPI"

	var buf bytes.Buffer
	if err := WriteCSV(&buf, s); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	expected := "date,SPI\n2020-01-01,0.5\n2020-01-02,-1.25\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}

	back, err := LoadCSVFromReader(&buf, DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to read written CSV: %v", err)
	}
	if back.Len() != 2 || back.Name != "SPI" {
		t.Errorf("Unexpected round trip: %+v", back)
	}
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	if opts.DateFormat != "2006-01-02" {
		t.Errorf("Expected default date format '2006-01-02', got '%s'", opts.DateFormat)
	}
	if !opts.HasHeader {
		t.Error("Expected HasHeader to be true by default")
	}
	if opts.Delimiter != ',' {
		t.Errorf("Expected default delimiter ',', got '%c'", opts.Delimiter)
	}
}
