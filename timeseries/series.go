// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// ErrInvalidSeries is returned when a series violates its structural invariants.
var ErrInvalidSeries = errors.New("invalid series")

// Series represents a time series with timestamps and values.
// Missing observations are stored as NaN.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// NewDaily creates a daily time series starting at start.
func NewDaily(start time.Time, values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	for i := range timestamps {
		timestamps[i] = start.AddDate(0, 0, i)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a time series with explicit timestamps.
// Timestamps must be strictly increasing.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	s := &Series{
		Timestamps: timestamps,
		Values:     values,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that timestamps and values line up and that timestamps
// are strictly increasing.
func (s *Series) Validate() error {
	if len(s.Timestamps) != len(s.Values) {
		return fmt.Errorf("%w: %d timestamps for %d values", ErrInvalidSeries, len(s.Timestamps), len(s.Values))
	}
	for i := 1; i < len(s.Timestamps); i++ {
		if !s.Timestamps[i].After(s.Timestamps[i-1]) {
			return fmt.Errorf("%w: timestamp %s at index %d does not follow %s",
				ErrInvalidSeries, s.Timestamps[i].Format(time.RFC3339), i, s.Timestamps[i-1].Format(time.RFC3339))
		}
	}
	return nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Count returns the number of non-missing values.
func (s *Series) Count() int {
	n := 0
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Mean calculates the arithmetic mean of the non-missing values.
func (s *Series) Mean() float64 {
	sum := 0.0
	n := 0
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Variance calculates the sample variance of the non-missing values.
func (s *Series) Variance() float64 {
	n := s.Count()
	if n < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(n-1)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum non-missing value in the series.
func (s *Series) Min() float64 {
	min := math.NaN()
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum non-missing value in the series.
func (s *Series) Max() float64 {
	max := math.NaN()
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return max
}

// Median returns the median of the non-missing values.
func (s *Series) Median() float64 {
	sorted := make([]float64, 0, len(s.Values))
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		return math.NaN()
	}
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// DropNaN returns a new series without missing observations.
func (s *Series) DropNaN() *Series {
	timestamps := make([]time.Time, 0, len(s.Values))
	values := make([]float64, 0, len(s.Values))
	for i, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		timestamps = append(timestamps, s.Timestamps[i])
		values = append(values, v)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Scale multiplies every value by factor, e.g. 1e3 to go from m/d to mm/d.
func (s *Series) Scale(factor float64) *Series {
	out := s.Copy()
	for i := range out.Values {
		out.Values[i] *= factor
	}
	return out
}

// Rename returns a copy of the series with a new name.
func (s *Series) Rename(name string) *Series {
	out := s.Copy()
	out.Name = name
	return out
}

// Sub returns s - other on the timestamps both series share.
// Timestamps present in only one of the series are dropped.
func (s *Series) Sub(other *Series) *Series {
	timestamps := make([]time.Time, 0, min(s.Len(), other.Len()))
	values := make([]float64, 0, cap(timestamps))

	i, j := 0, 0
	for i < s.Len() && j < other.Len() {
		a, b := s.Timestamps[i], other.Timestamps[j]
		switch {
		case a.Before(b):
			i++
		case b.Before(a):
			j++
		default:
			timestamps = append(timestamps, a)
			values = append(values, s.Values[i]-other.Values[j])
			i++
			j++
		}
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Between returns the observations with from <= t <= to.
func (s *Series) Between(from, to time.Time) *Series {
	start := sort.Search(len(s.Timestamps), func(i int) bool {
		return !s.Timestamps[i].Before(from)
	})
	end := sort.Search(len(s.Timestamps), func(i int) bool {
		return s.Timestamps[i].After(to)
	})
	return s.Slice(start, end)
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
		return &Series{Timestamps: []time.Time{}, Values: []float64{}, Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	timestamps := make([]time.Time, len(values))
	copy(timestamps, s.Timestamps[start:end])

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}
