package query

import (
	"strings"
)

// CompositeSeparator separates the id from the label in composite values
const CompositeSeparator = " :: "

// ExtractFilterID returns the id part of an "id :: label" composite value, or
// the whole value when it has no separator
func ExtractFilterID(value string) string {
	if i := strings.Index(value, CompositeSeparator); i >= 0 {
		return value[:i]
	}
	return value
}

// ExtractFilterLabel returns the label part of an "id :: label" composite value,
// or the whole value when it has no separator
func ExtractFilterLabel(value string) string {
	if i := strings.Index(value, CompositeSeparator); i >= 0 {
		return value[i+len(CompositeSeparator):]
	}
	return value
}

// filterColumn finds the first filter column whose name starts with the
// column name of dimension
func filterColumn(t *Table, dimension string) (string, bool) {
	prefix := FilterColumnPrefix + dimension
	for _, dim := range t.FilterDimensions {
		if strings.HasPrefix(FilterColumnPrefix+dim, prefix) {
			return dim, true
		}
	}
	return "", false
}

// FilterColumn returns the filter dimension of the table whose column serves
// dimension, matched the same way filters are
func (t *Table) FilterColumn(dimension string) (string, bool) {
	if t == nil {
		return "", false
	}
	return filterColumn(t, dimension)
}

// ApplyFilters keeps the rows matching every filter. The statistics api does not
// apply filters reliably, so they are applied again here. A filter whose
// dimension has no column in the table is ignored.
func ApplyFilters(t *Table, filters map[string]Filter) *Table {
	if len(filters) == 0 || t.Len() == 0 {
		return t
	}

	out := &Table{
		IndicatorID:      t.IndicatorID,
		FilterDimensions: t.FilterDimensions,
		Rows:             t.Rows,
		Chronological:    t.Chronological,
	}
	for _, dimension := range sortedDimensions(filters) {
		column, ok := filterColumn(out, dimension)
		if !ok {
			continue
		}
		out.Rows = filterRows(out.Rows, column, filters[dimension])
	}
	return out
}

// ValidateFilters returns a ValidationError for the first filter whose dimension
// has no column in a non-empty table
func ValidateFilters(t *Table, filters map[string]Filter) error {
	if t.Len() == 0 {
		return nil
	}
	for _, dimension := range sortedDimensions(filters) {
		if _, ok := filterColumn(t, dimension); !ok {
			return &ValidationError{Field: "filter " + dimension, Message: "no such filter column in the query result"}
		}
	}
	return nil
}

func filterRows(rows []Row, column string, f Filter) []Row {
	keep := make([]Row, 0, len(rows))
	for _, r := range rows {
		v, ok := r.Filters[column]
		if !ok {
			continue
		}
		if f.matches(ExtractFilterID(v)) {
			keep = append(keep, r)
		}
	}
	return keep
}

func (f Filter) matches(id string) bool {
	switch f.Operator {
	case OperatorIn:
		for _, v := range f.Values {
			if v == id {
				return true
			}
		}
	case OperatorEq:
		return len(f.Values) > 0 && f.Values[0] == id
	}
	return false
}
