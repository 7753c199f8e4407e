package timeseries

import (
	"math"
	"testing"
	"time"
)

func TestRollingSumDaily(t *testing.T) {
	values := make([]float64, 40)
	for i := range values {
		values[i] = 1
	}
	s := NewDaily(epoch, values)

	rolled, err := s.RollingSum(NewWindow(30*Day, 30))
	if err != nil {
		t.Fatalf("RollingSum failed: %v", err)
	}

	if rolled.Len() != s.Len() {
		t.Fatalf("Expected rolled length %d, got %d", s.Len(), rolled.Len())
	}
	for i := 0; i < 29; i++ {
		if !math.IsNaN(rolled.Values[i]) {
			t.Errorf("Expected NaN at index %d, got %f", i, rolled.Values[i])
		}
	}

	valid := rolled.DropNaN()
	if valid.Len() != 11 {
		t.Fatalf("Expected 11 aggregated points, got %d", valid.Len())
	}
	for i, v := range valid.Values {
		if v != 30 {
			t.Errorf("Expected window sum 30 at index %d, got %f", i, v)
		}
	}
	if !valid.Timestamps[0].Equal(epoch.AddDate(0, 0, 29)) {
		t.Errorf("Expected first valid window at day 29, got %s", valid.Timestamps[0])
	}
}

func TestRollingSumIsTimeBased(t *testing.T) {
	// Days 0, 1, 2, then a gap to day 10.
	timestamps := []time.Time{epoch, epoch.AddDate(0, 0, 1), epoch.AddDate(0, 0, 2), epoch.AddDate(0, 0, 10)}
	s, err := NewWithTimestamps(timestamps, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}

	rolled, err := s.RollingSum(NewWindow(3*Day, 1))
	if err != nil {
		t.Fatalf("RollingSum failed: %v", err)
	}

	expected := []float64{1, 3, 6, 4}
	for i, v := range rolled.Values {
		if math.Abs(v-expected[i]) > 1e-10 {
			t.Errorf("Expected %f at index %d, got %f", expected[i], i, v)
		}
	}
}

func TestRollingSumMissingValues(t *testing.T) {
	s := NewDaily(epoch, []float64{1, math.NaN(), 1, 1, 1})

	rolled, err := s.RollingSum(NewWindow(3*Day, 3))
	if err != nil {
		t.Fatalf("RollingSum failed: %v", err)
	}

	// Only the last window (days 2-4) holds three observations.
	for i := 0; i < 4; i++ {
		if !math.IsNaN(rolled.Values[i]) {
			t.Errorf("Expected NaN at index %d, got %f", i, rolled.Values[i])
		}
	}
	if rolled.Values[4] != 3 {
		t.Errorf("Expected 3 at index 4, got %f", rolled.Values[4])
	}
	if s.Count() != 4 {
		t.Error("RollingSum modified the input series")
	}
}

func TestRollingSumDrySpellIsExactlyZero(t *testing.T) {
	dry := func(wet []float64, days int) []float64 {
		return append(append([]float64(nil), wet...), make([]float64, days)...)
	}

	tests := []struct {
		name   string
		values []float64
		window Window
	}{
		{"short window", dry([]float64{0.1, 0.2, 0.3}, 40), NewWindow(3*Day, 3)},
		{"m/d precipitation", dry([]float64{1.3e-3, 7e-4, 2.9e-3, 1e-4, 4.4e-3}, 60), NewWindow(30*Day, 30)},
		{"wet then dry repeatedly", []float64{0.7, 0.01, 0, 0, 0, 0, 0, 0.3, 0.1, 0, 0, 0, 0, 0}, NewWindow(5*Day, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rolled, err := NewDaily(epoch, tt.values).RollingSum(tt.window)
			if err != nil {
				t.Fatalf("RollingSum failed: %v", err)
			}

			last := rolled.Values[len(rolled.Values)-1]
			if last != 0 {
				t.Errorf("Expected exactly 0 for a dry window, got %g", last)
			}
			for i, v := range rolled.Values {
				if v < 0 {
					t.Errorf("Negative sum %g at index %d of a non-negative series", v, i)
				}
			}
		})
	}
}

func TestRollingSumAlternatingDrySpells(t *testing.T) {
	values := make([]float64, 3000)
	for i := range values {
		if (i/60)%2 == 1 {
			values[i] = float64((i*37)%11) * 3.1e-4
		}
	}

	rolled, err := NewDaily(epoch, values).RollingSum(NewWindow(30*Day, 30))
	if err != nil {
		t.Fatalf("RollingSum failed: %v", err)
	}

	zeros := 0
	for i, v := range rolled.DropNaN().Values {
		switch {
		case v < 0:
			t.Fatalf("Negative sum %g at index %d", v, i)
		case v == 0:
			zeros++
		case v < 1e-12:
			t.Fatalf("Residual sum %g at index %d", v, i)
		}
	}
	if zeros == 0 {
		t.Error("Expected fully dry windows to sum to 0")
	}
}

func TestWindowValidate(t *testing.T) {
	tests := []struct {
		name    string
		window  Window
		wantErr bool
	}{
		{"valid", NewWindow(30*Day, 30), false},
		{"zero length", NewWindow(0, 1), true},
		{"zero periods", NewWindow(30*Day, 0), true},
		{"too many periods", NewWindow(30*Day, 31), true},
		{"hourly unit", Window{Length: 2 * Day, MinPeriods: 48, Unit: time.Hour}, false},
		{"default unit", Window{Length: 2 * Day, MinPeriods: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.window.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"30D", 30 * Day, false},
		{"30d", 30 * Day, false},
		{"D", Day, false},
		{"2W", 14 * Day, false},
		{"12H", 12 * time.Hour, false},
		{"90min", 90 * time.Minute, false},
		{"720h", 720 * time.Hour, false},
		{"", 0, true},
		{"30Y", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseWindow(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseWindow(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWindow(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
