package ees

import "encoding/json"

// Option is a generic id/code + label pair used throughout the dataset metadata
type Option struct {
	ID    string `json:"id,omitempty"`
	Code  string `json:"code,omitempty"`
	Label string `json:"label,omitempty"`
}

// Indicator is a numeric metric exposed by a dataset
type Indicator struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Column string `json:"column,omitempty"`
	Unit   string `json:"unit,omitempty"`
}

// FilterDimension is a categorical axis of a dataset together with its options
type FilterDimension struct {
	ID      string   `json:"id,omitempty"`
	Key     string   `json:"key,omitempty"`
	Label   string   `json:"label,omitempty"`
	Name    string   `json:"name,omitempty"`
	Column  string   `json:"column,omitempty"`
	Options []Option `json:"options,omitempty"`
}

// Identifier returns the id of the dimension, falling back to its key
func (f FilterDimension) Identifier() string {
	if f.ID != "" {
		return f.ID
	}
	return f.Key
}

// DisplayName returns the most descriptive name available for the dimension
func (f FilterDimension) DisplayName() string {
	switch {
	case f.Name != "":
		return f.Name
	case f.Label != "":
		return f.Label
	case f.Identifier() != "":
		return f.Identifier()
	}
	return "Unknown Filter"
}

// Location is either a flat location option or a group of options for one geographic level
type Location struct {
	ID      string   `json:"id,omitempty"`
	Code    string   `json:"code,omitempty"`
	Label   string   `json:"label,omitempty"`
	Level   *Option  `json:"level,omitempty"`
	Options []Option `json:"options,omitempty"`
}

// TimePeriod pairs an API time identifier code with its human readable period label
type TimePeriod struct {
	Code   string `json:"code"`
	Period string `json:"period"`
	Label  string `json:"label,omitempty"`
}

// DatasetMetadata describes what can be queried from a dataset. It is treated as
// immutable once fetched.
type DatasetMetadata struct {
	Filters          []FilterDimension `json:"filters"`
	Indicators       []Indicator       `json:"indicators"`
	GeographicLevels []Option          `json:"geographicLevels"`
	Locations        []Location        `json:"locations"`
	TimePeriods      []TimePeriod      `json:"timePeriods"`
}

// Indicator returns the indicator with the given id
func (m *DatasetMetadata) Indicator(id string) (Indicator, bool) {
	for _, ind := range m.Indicators {
		if ind.ID == id {
			return ind, true
		}
	}
	return Indicator{}, false
}

// Filter returns the filter dimension with the given id or key
func (m *DatasetMetadata) Filter(id string) (FilterDimension, bool) {
	for _, f := range m.Filters {
		if f.Identifier() == id {
			return f, true
		}
	}
	return FilterDimension{}, false
}

// TimePeriod returns the time period whose period label matches exactly
func (m *DatasetMetadata) TimePeriod(period string) (TimePeriod, bool) {
	for _, tp := range m.TimePeriods {
		if tp.Period == period {
			return tp, true
		}
	}
	return TimePeriod{}, false
}

// InCondition is an inclusion condition on a query criteria field
type InCondition[T any] struct {
	In []T `json:"in"`
}

// TimePeriodRef is a time period reference inside a query request
type TimePeriodRef struct {
	Code   string `json:"code"`
	Period string `json:"period"`
}

// QueryCriteria holds the server side criteria of a query request
type QueryCriteria struct {
	GeographicLevels InCondition[string]        `json:"geographicLevels"`
	TimePeriods      InCondition[TimePeriodRef] `json:"timePeriods"`
}

// QueryRequest is the body posted to the data-sets/{id}/query endpoint
type QueryRequest struct {
	Criteria   QueryCriteria `json:"criteria"`
	Indicators []string      `json:"indicators"`
	Debug      bool          `json:"debug"`
	Page       int           `json:"page"`
}

// Warning is a non fatal message attached to a query response
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Paging holds the pagination metadata of a query response
type Paging struct {
	Page         int  `json:"page"`
	PageSize     int  `json:"pageSize,omitempty"`
	TotalResults int  `json:"totalResults,omitempty"`
	TotalPages   *int `json:"totalPages,omitempty"`
}

// RawRecord is one undecoded result record. Records are heterogeneous and key
// order inside them matters, so they are kept as raw JSON.
type RawRecord []byte

// ResultPage is one page of a query response
type ResultPage struct {
	Records  []RawRecord
	Page     int
	Paging   *Paging
	Warnings []Warning
}

// TotalPages returns the total page count reported by the response, or 1 when absent
func (p *ResultPage) TotalPages() int {
	if p.Paging == nil || p.Paging.TotalPages == nil {
		return 1
	}
	return *p.Paging.TotalPages
}

// HasWarning reports whether the page carries a warning with the given code
func (p *ResultPage) HasWarning(code string) bool {
	for _, w := range p.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

type queryResponse struct {
	Results  []json.RawMessage `json:"results"`
	Paging   *Paging           `json:"paging"`
	Warnings []Warning         `json:"warnings"`
}

func (r queryResponse) toPage(page int) *ResultPage {
	records := make([]RawRecord, 0, len(r.Results))
	for _, res := range r.Results {
		records = append(records, RawRecord(res))
	}
	return &ResultPage{
		Records:  records,
		Page:     page,
		Paging:   r.Paging,
		Warnings: r.Warnings,
	}
}
