package models

// DatasetPage is the page model of a dataset dashboard
type DatasetPage struct {
	Page
	Data Dataset `json:"data"`
}

// Dataset holds the dropdown options and default selections of a dataset dashboard
type Dataset struct {
	Key              string    `json:"key"`
	ID               string    `json:"id"`
	Indicators       []Option  `json:"indicators"`
	TimePeriods      []Option  `json:"time_periods"`
	FilterDimensions []Option  `json:"filter_dimensions"`
	FilterValues     []Option  `json:"filter_values"`
	Selected         Selection `json:"selected"`
	ChartURI         string    `json:"chart_uri"`
	TableURI         string    `json:"table_uri"`
	ExportURI        string    `json:"export_uri"`
}

// Option is one entry of a dropdown
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Selection is the current choice of the dashboard controls
type Selection struct {
	Indicator string   `json:"indicator"`
	Periods   []string `json:"periods"`
	Dimension string   `json:"dimension"`
	Values    []string `json:"values"`
}
