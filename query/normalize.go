package query

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ONSdigital/dp-frontend-ees-dashboard/ees"
	"github.com/tidwall/gjson"
)

// Unknown is used for any row attribute missing from a record
const Unknown = "Unknown"

// Normalize flattens raw result records into a table for indicatorID. Records
// without a value for the indicator are dropped; the order of the remaining
// records is preserved.
func Normalize(records []ees.RawRecord, indicatorID string) *Table {
	t := &Table{IndicatorID: indicatorID, Rows: make([]Row, 0, len(records))}
	seenDims := make(map[string]struct{})

	for _, rec := range records {
		row, dims, ok := normalizeRecord(rec, indicatorID)
		if !ok {
			continue
		}
		for _, dim := range dims {
			if _, seen := seenDims[dim]; !seen {
				seenDims[dim] = struct{}{}
				t.FilterDimensions = append(t.FilterDimensions, dim)
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// normalizeRecord flattens a single record, also returning its filter dimensions
// in document order. It returns false when the record has no non-null value for
// the indicator.
func normalizeRecord(rec ees.RawRecord, indicatorID string) (Row, []string, bool) {
	doc := gjson.ParseBytes(rec)

	value, ok := indicatorValue(doc.Get("values"), indicatorID)
	if !ok {
		return Row{}, nil, false
	}

	row := Row{
		TimePeriod:      stringOr(doc.Get("timePeriod.period"), Unknown),
		GeographicLevel: stringOr(doc.Get("geographicLevel"), Unknown),
		LocationName:    Unknown,
		Value:           value,
	}

	doc.Get("locations").ForEach(func(_, loc gjson.Result) bool {
		row.LocationName = stringOr(loc, Unknown)
		return false
	})

	var dims []string
	doc.Get("filters").ForEach(func(dim, v gjson.Result) bool {
		if v.Type == gjson.Null {
			return true
		}
		if row.Filters == nil {
			row.Filters = make(map[string]string)
		}
		row.Filters[dim.String()] = v.String()
		dims = append(dims, dim.String())
		return true
	})

	return row, dims, true
}

// indicatorValue finds the first values entry whose composite "id :: label" key
// contains indicatorID. Keys always carry label text, so this is a substring
// match rather than an exact one.
func indicatorValue(values gjson.Result, indicatorID string) (Value, bool) {
	var (
		found bool
		val   gjson.Result
	)
	values.ForEach(func(key, v gjson.Result) bool {
		if strings.Contains(key.String(), indicatorID) {
			found, val = true, v
			return false
		}
		return true
	})
	if !found {
		return Value{}, false
	}
	return parseValue(val)
}

func parseValue(v gjson.Result) (Value, bool) {
	switch v.Type {
	case gjson.Null:
		return Value{}, false
	case gjson.Number:
		return NumberValue(v.Num), true
	case gjson.True:
		return NumberValue(1), true
	case gjson.False:
		return NumberValue(0), true
	case gjson.String:
		if f, ok := parseFloat(v.Str); ok {
			return NumberValue(f), true
		}
		return StringValue(v.Str), true
	}
	return StringValue(v.Raw), true
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err == nil {
		return f, true
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		return f, true
	}
	return 0, false
}

func stringOr(r gjson.Result, def string) string {
	if !r.Exists() || r.Type == gjson.Null {
		return def
	}
	return r.String()
}
