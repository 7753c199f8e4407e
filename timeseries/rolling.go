package timeseries

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Day is the default sampling unit for rolling windows.
const Day = 24 * time.Hour

// Window describes a time-based rolling aggregation.
type Window struct {
	Length     time.Duration // Window length, observations in (t-Length, t] are aggregated
	MinPeriods int           // Minimum non-missing observations for a valid window
	Unit       time.Duration // Sampling unit of the underlying series (default: Day)
}

// NewWindow creates a window with the default daily sampling unit.
func NewWindow(length time.Duration, minPeriods int) Window {
	return Window{Length: length, MinPeriods: minPeriods, Unit: Day}
}

// Validate checks the window parameters.
func (w Window) Validate() error {
	if w.Length <= 0 {
		return fmt.Errorf("window length must be positive, got %s", w.Length)
	}
	if w.MinPeriods < 1 {
		return fmt.Errorf("min periods must be at least 1, got %d", w.MinPeriods)
	}
	unit := w.unit()
	if maxPeriods := int(w.Length / unit); w.MinPeriods > maxPeriods {
		return fmt.Errorf("min periods %d exceeds the %d sampling units in a %s window", w.MinPeriods, maxPeriods, w.Length)
	}
	return nil
}

func (w Window) unit() time.Duration {
	if w.Unit <= 0 {
		return Day
	}
	return w.Unit
}

// RollingSum computes, for every timestamp t, the sum of the non-missing
// values with timestamps in (t-Length, t]. Windows holding fewer than
// MinPeriods non-missing values yield NaN; use DropNaN to discard them.
func (s *Series) RollingSum(w Window) (*Series, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	result := make([]float64, len(s.Values))
	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	var sum compensatedSum
	count, nonzero := 0, 0
	start := 0
	for i, t := range s.Timestamps {
		if v := s.Values[i]; !math.IsNaN(v) {
			sum.add(v)
			count++
			if v != 0 {
				nonzero++
			}
		}

		lower := t.Add(-w.Length)
		for start <= i && !s.Timestamps[start].After(lower) {
			if v := s.Values[start]; !math.IsNaN(v) {
				sum.add(-v)
				count--
				if v != 0 {
					nonzero--
				}
			}
			start++
		}

		// A window of zeros sums to exactly zero, whatever rounding the
		// values that left it accumulated.
		if nonzero == 0 {
			sum = compensatedSum{}
		}

		if count < w.MinPeriods {
			result[i] = math.NaN()
			continue
		}
		result[i] = sum.value()
	}

	return &Series{
		Timestamps: timestamps,
		Values:     result,
		Name:       s.Name,
	}, nil
}

// compensatedSum is a running sum with Kahan-Babuska error compensation.
type compensatedSum struct {
	sum, comp float64
}

func (k *compensatedSum) add(v float64) {
	t := k.sum + v
	if math.Abs(k.sum) >= math.Abs(v) {
		k.comp += (k.sum - t) + v
	} else {
		k.comp += (v - t) + k.sum
	}
	k.sum = t
}

func (k *compensatedSum) value() float64 {
	return k.sum + k.comp
}

// ParseWindow parses a window length. It accepts pandas-style offsets
// ("30D", "12H", "2W", "90min") as well as Go durations ("720h").
func ParseWindow(str string) (time.Duration, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return 0, errors.New("empty window")
	}

	if d, err := time.ParseDuration(str); err == nil {
		return d, nil
	}

	i := 0
	for i < len(str) && (str[i] >= '0' && str[i] <= '9') {
		i++
	}
	n := 1
	if i > 0 {
		v, err := strconv.Atoi(str[:i])
		if err != nil {
			return 0, fmt.Errorf("invalid window %q: %w", str, err)
		}
		n = v
	}

	var unit time.Duration
	switch strings.ToUpper(str[i:]) {
	case "D":
		unit = Day
	case "W":
		unit = 7 * Day
	case "H":
		unit = time.Hour
	case "MIN", "T":
		unit = time.Minute
	case "S":
		unit = time.Second
	default:
		return 0, fmt.Errorf("invalid window %q: unknown unit %q", str, str[i:])
	}

	return time.Duration(n) * unit, nil
}
