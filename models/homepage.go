package models

// HomepagePage is the page model of the dashboard homepage
type HomepagePage struct {
	Page
	Data Homepage `json:"data"`
}

// Homepage lists the datasets the dashboard can chart
type Homepage struct {
	Items []DatasetItem `json:"items"`
}

// DatasetItem is a link to one dataset page
type DatasetItem struct {
	Key   string `json:"key"`
	ID    string `json:"id"`
	Title string `json:"title"`
	URI   string `json:"uri"`
}
