package query

import (
	"encoding/json"
	"sort"
)

// Filter operators supported by the client side filter
const (
	OperatorIn = "in"
	OperatorEq = "eq"
)

// Filter restricts one filter dimension to a set of option ids
type Filter struct {
	Operator string   `json:"operator"`
	Values   []string `json:"values"`
}

// In keeps rows whose option id is one of values
func In(values ...string) Filter {
	return Filter{Operator: OperatorIn, Values: values}
}

// Eq keeps rows whose option id equals value
func Eq(value string) Filter {
	return Filter{Operator: OperatorEq, Values: []string{value}}
}

// Criteria describes one dataset query. Two criteria that differ only in the
// ordering of their set-like fields are the same query.
type Criteria struct {
	DatasetID        string
	IndicatorID      string
	GeographicLevels []string
	TimePeriods      []string
	Filters          map[string]Filter
}

// NewCriteria builds criteria with its set-like fields sorted and de-duplicated
func NewCriteria(datasetID, indicatorID string, geoLevels, periods []string, filters map[string]Filter) Criteria {
	c := Criteria{
		DatasetID:        datasetID,
		IndicatorID:      indicatorID,
		GeographicLevels: sortedSet(geoLevels),
		TimePeriods:      sortedSet(periods),
	}
	if len(filters) > 0 {
		c.Filters = make(map[string]Filter, len(filters))
		for dim, f := range filters {
			c.Filters[dim] = f.canonical()
		}
	}
	return c
}

// Validate checks the criteria can be sent to the statistics api
func (c Criteria) Validate() error {
	if c.DatasetID == "" {
		return &ValidationError{Field: "dataset", Message: "a dataset id is required"}
	}
	if c.IndicatorID == "" {
		return &ValidationError{Field: "indicator", Message: "an indicator id is required"}
	}
	if len(c.TimePeriods) == 0 {
		return &ValidationError{Field: "periods", Message: "at least one time period is required"}
	}
	for dim, f := range c.Filters {
		switch f.Operator {
		case OperatorIn:
		case OperatorEq:
			if len(f.Values) != 1 {
				return &ValidationError{Field: "filter " + dim, Message: "eq requires exactly one value"}
			}
		default:
			return &ValidationError{Field: "filter " + dim, Message: "unsupported operator " + f.Operator}
		}
	}
	return nil
}

type filterKey struct {
	Dimension string   `json:"d"`
	Operator  string   `json:"o"`
	Values    []string `json:"v"`
}

type criteriaKey struct {
	DatasetID        string      `json:"ds"`
	IndicatorID      string      `json:"ind"`
	GeographicLevels []string    `json:"geo"`
	TimePeriods      []string    `json:"tp"`
	Filters          []filterKey `json:"f"`
}

// Key returns the canonical cache key of the criteria
func (c Criteria) Key() string {
	k := criteriaKey{
		DatasetID:        c.DatasetID,
		IndicatorID:      c.IndicatorID,
		GeographicLevels: sortedSet(c.GeographicLevels),
		TimePeriods:      sortedSet(c.TimePeriods),
	}
	for _, dim := range sortedDimensions(c.Filters) {
		f := c.Filters[dim].canonical()
		k.Filters = append(k.Filters, filterKey{Dimension: dim, Operator: f.Operator, Values: f.Values})
	}

	// marshalling strings and slices of strings cannot fail
	b, _ := json.Marshal(k)
	return string(b)
}

// sortedDimensions returns the filtered dimension ids in a stable order
func sortedDimensions(filters map[string]Filter) []string {
	dims := make([]string, 0, len(filters))
	for dim := range filters {
		dims = append(dims, dim)
	}
	sort.Strings(dims)
	return dims
}

func (f Filter) canonical() Filter {
	if f.Operator == OperatorIn {
		return Filter{Operator: f.Operator, Values: sortedSet(f.Values)}
	}
	return Filter{Operator: f.Operator, Values: append([]string{}, f.Values...)}
}

func sortedSet(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
