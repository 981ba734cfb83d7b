package query

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Column names exposed to chart and export consumers
const (
	ColumnTimePeriod      = "time_period"
	ColumnGeographicLevel = "geographic_level"
	ColumnLocationName    = "location_name"
	FilterColumnPrefix    = "filter_"
)

// ValueKind says which of the Value fields is meaningful
type ValueKind int

// Kinds of indicator value
const (
	ValueAbsent ValueKind = iota
	ValueNumber
	ValueString
)

// Value is an indicator value. Upstream values are numeric where possible and
// otherwise kept verbatim, e.g. "suppressed" or "N/A".
type Value struct {
	Kind   ValueKind
	Number float64
	Text   string
}

// NumberValue returns a numeric indicator value
func NumberValue(f float64) Value {
	return Value{Kind: ValueNumber, Number: f}
}

// StringValue returns a non numeric indicator value
func StringValue(s string) Value {
	return Value{Kind: ValueString, Text: s}
}

// Float returns the numeric value, and false when the value is not a finite number
func (v Value) Float() (float64, bool) {
	if v.Kind != ValueNumber || math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
		return 0, false
	}
	return v.Number, true
}

func (v Value) String() string {
	switch v.Kind {
	case ValueNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case ValueString:
		return v.Text
	}
	return ""
}

// MarshalJSON encodes numbers as numbers, text as strings and anything else as null
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueNumber:
		if f, ok := v.Float(); ok {
			return json.Marshal(f)
		}
	case ValueString:
		return json.Marshal(v.Text)
	}
	return []byte("null"), nil
}

// Point is a position on the chronological axis. Invalid points sort last.
type Point struct {
	Time  time.Time
	Valid bool
}

// Before reports whether p sorts strictly before o
func (p Point) Before(o Point) bool {
	switch {
	case p.Valid && o.Valid:
		return p.Time.Before(o.Time)
	case p.Valid:
		return true
	}
	return false
}

// MarshalJSON encodes the point as an RFC 3339 date or null
func (p Point) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Time.Format(time.RFC3339))
}

// Row is one normalised result record
type Row struct {
	TimePeriod      string
	Time            Point
	GeographicLevel string
	LocationName    string
	Value           Value
	// Filters maps filter dimension id to the raw "id :: label" composite value
	Filters map[string]string
}

// Table is an ordered set of rows for a single indicator
type Table struct {
	IndicatorID string
	// FilterDimensions lists the filter columns in order of first appearance
	FilterDimensions []string
	Rows             []Row
	// Chronological is set once rows carry parsed time points and are sorted
	Chronological bool
}

// Len returns the number of rows
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Columns returns the column names of the table in display order
func (t *Table) Columns() []string {
	cols := []string{ColumnTimePeriod, ColumnGeographicLevel, ColumnLocationName, t.IndicatorID}
	for _, dim := range t.FilterDimensions {
		cols = append(cols, FilterColumnPrefix+dim)
	}
	return cols
}

// Copy returns a deep copy of the table
func (t *Table) Copy() *Table {
	if t == nil {
		return nil
	}
	c := &Table{
		IndicatorID:      t.IndicatorID,
		FilterDimensions: append([]string(nil), t.FilterDimensions...),
		Chronological:    t.Chronological,
	}
	if t.Rows != nil {
		c.Rows = make([]Row, len(t.Rows))
		for i, r := range t.Rows {
			c.Rows[i] = r
			if r.Filters != nil {
				c.Rows[i].Filters = make(map[string]string, len(r.Filters))
				for k, v := range r.Filters {
					c.Rows[i].Filters[k] = v
				}
			}
		}
	}
	return c
}

// Records returns the rows keyed by column name. time_period is the parsed
// point once the table is chronological and the raw label before that.
func (t *Table) Records() []map[string]interface{} {
	records := make([]map[string]interface{}, 0, len(t.Rows))
	for _, r := range t.Rows {
		rec := map[string]interface{}{
			ColumnGeographicLevel: r.GeographicLevel,
			ColumnLocationName:    r.LocationName,
			t.IndicatorID:         r.Value,
		}
		if t.Chronological {
			rec[ColumnTimePeriod] = r.Time
		} else {
			rec[ColumnTimePeriod] = r.TimePeriod
		}
		for _, dim := range t.FilterDimensions {
			if v, ok := r.Filters[dim]; ok {
				rec[FilterColumnPrefix+dim] = v
			} else {
				rec[FilterColumnPrefix+dim] = nil
			}
		}
		records = append(records, rec)
	}
	return records
}

// MarshalJSON encodes the table as its columns and records
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Indicator string                   `json:"indicator"`
		Columns   []string                 `json:"columns"`
		Records   []map[string]interface{} `json:"records"`
	}{
		Indicator: t.IndicatorID,
		Columns:   t.Columns(),
		Records:   t.Records(),
	})
}
