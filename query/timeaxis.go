package query

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Academic years start on the 1st of September
const (
	academicYearStartMonth = time.September
	academicYearStartDay   = 1
)

// Years whose 1st of September falls inside the nanosecond timestamp range
// used by the charting front end
const (
	minPeriodYear = 1678
	maxPeriodYear = 2261
)

// ParsePeriod maps a period label to the start of its academic year. "2024/2025"
// and "2024" both map to 1 September 2024; anything else is an invalid point.
func ParsePeriod(label string) Point {
	year := label
	if i := strings.Index(label, "/"); i >= 0 {
		year = label[:i]
	}

	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil || y < minPeriodYear || y > maxPeriodYear {
		return Point{}
	}
	return Point{
		Time:  time.Date(y, academicYearStartMonth, academicYearStartDay, 0, 0, 0, 0, time.UTC),
		Valid: true,
	}
}

// ToChronological parses every row's period label and returns the rows sorted
// ascending by time. Rows with equal times keep their order and rows with an
// unparseable period are kept at the end.
func ToChronological(t *Table) *Table {
	out := &Table{
		IndicatorID:      t.IndicatorID,
		FilterDimensions: t.FilterDimensions,
		Rows:             make([]Row, len(t.Rows)),
		Chronological:    true,
	}
	copy(out.Rows, t.Rows)
	for i := range out.Rows {
		out.Rows[i].Time = ParsePeriod(out.Rows[i].TimePeriod)
	}
	sort.SliceStable(out.Rows, func(i, j int) bool {
		return out.Rows[i].Time.Before(out.Rows[j].Time)
	})
	return out
}
