package models

// ErrorResponse is the JSON body of a failed api request
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// FilterOptionsResponse lists the options of one filter dimension
type FilterOptionsResponse struct {
	Dimension string   `json:"dimension"`
	Label     string   `json:"label"`
	Options   []Option `json:"options"`
}
