package timeseries

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Grouping selects the periodic key used to partition a series.
type Grouping string

// Supported groupings.
const (
	GroupMonth     Grouping = "month"     // Calendar month, 1-12
	GroupQuarter   Grouping = "quarter"   // Calendar quarter, 1-4
	GroupWeek      Grouping = "week"      // ISO week, 1-53
	GroupDayOfYear Grouping = "dayofyear" // Day of year, 1-366
	GroupNone      Grouping = "none"      // Single group with key 0
)

// ParseGrouping parses a grouping name. The empty string means GroupMonth.
func ParseGrouping(s string) (Grouping, error) {
	switch g := Grouping(strings.ToLower(strings.TrimSpace(s))); g {
	case "":
		return GroupMonth, nil
	case GroupMonth, GroupQuarter, GroupWeek, GroupDayOfYear, GroupNone:
		return g, nil
	default:
		return "", fmt.Errorf("unknown grouping %q", s)
	}
}

// Key returns the group key of t.
func (g Grouping) Key(t time.Time) int {
	switch g {
	case GroupQuarter:
		return (int(t.Month())-1)/3 + 1
	case GroupWeek:
		_, week := t.ISOWeek()
		return week
	case GroupDayOfYear:
		return t.YearDay()
	case GroupNone:
		return 0
	default:
		return int(t.Month())
	}
}

// Groups maps a group key to the indices of the observations in that group.
type Groups map[int][]int

// Keys returns the group keys in ascending order.
func (g Groups) Keys() []int {
	keys := make([]int, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// GroupBy partitions the series by g. Every index belongs to exactly one group
// and indices within a group stay in time order.
func (s *Series) GroupBy(g Grouping) Groups {
	groups := make(Groups)
	for i, t := range s.Timestamps {
		k := g.Key(t)
		groups[k] = append(groups[k], i)
	}
	return groups
}

// ValuesAt returns the values at the given indices.
func (s *Series) ValuesAt(indices []int) []float64 {
	values := make([]float64, len(indices))
	for i, idx := range indices {
		values[i] = s.Values[idx]
	}
	return values
}
